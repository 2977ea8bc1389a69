// Package server provides the HTTP REST API for the cover letter agent.
package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/jonathan/coverletter-agent/internal/config"
	"github.com/jonathan/coverletter-agent/internal/letter"
	"github.com/jonathan/coverletter-agent/internal/llm"
	"github.com/jonathan/coverletter-agent/internal/matching"
)

// Server represents the HTTP server
type Server struct {
	httpServer *http.Server
	cfg        *config.Config
	logger     *zap.Logger
	generator  *letter.Generator
	matcher    *matching.Matcher
	client     llm.Client
	validate   *validator.Validate
}

// New creates a new server instance. When no provider key is configured
// the server still starts and serves letters from the fallback template.
func New(cfg *config.Config, logger *zap.Logger) (*Server, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	client, err := newProviderClient(cfg)
	if err != nil {
		return nil, err
	}
	if client == nil {
		logger.Warn("no LLM provider configured, serving fallback letters only")
	}

	matchCfg := matching.DefaultConfig()
	matchCfg.FuzzyThreshold = cfg.FuzzyThreshold

	s := &Server{
		cfg:       cfg,
		logger:    logger,
		generator: letter.New(client, logger),
		matcher:   matching.New(nil, matchCfg),
		client:    client,
		validate:  validator.New(),
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /", s.handleRoot)
	mux.HandleFunc("GET /api/health", s.handleHealth)
	mux.HandleFunc("POST /api/generate-cover-letter", s.handleGenerateCoverLetter)
	mux.HandleFunc("POST /api/analyze-skills", s.handleAnalyzeSkills)
	mux.HandleFunc("POST /api/parse-resume", s.handleParseResume)
	mux.HandleFunc("POST /api/analyze-job", s.handleAnalyzeJob)
	mux.HandleFunc("GET /api/templates", s.handleTemplates)

	s.httpServer = &http.Server{
		Addr:         cfg.Addr(),
		Handler:      s.withLogging(s.withCORS(mux)),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 120 * time.Second, // provider calls can be slow
		IdleTimeout:  60 * time.Second,
	}
	return s, nil
}

// newProviderClient picks the LLM provider from the configured keys,
// preferring Gemini. A nil client with nil error means fallback-only
// operation.
func newProviderClient(cfg *config.Config) (llm.Client, error) {
	switch {
	case cfg.GeminiAPIKey != "":
		return llm.NewClient(context.Background(), llm.DefaultGeminiConfig(), cfg.GeminiAPIKey)
	case cfg.OpenAIAPIKey != "":
		return llm.NewClient(context.Background(), llm.DefaultOpenAIConfig(), cfg.OpenAIAPIKey)
	default:
		return nil, nil
	}
}

// Start begins listening for requests and blocks until shutdown.
func (s *Server) Start() error {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		s.logger.Info("server starting", zap.String("addr", s.httpServer.Addr))
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			s.logger.Fatal("server error", zap.Error(err))
		}
	}()

	<-stop
	s.logger.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}
	if s.client != nil {
		_ = s.client.Close()
	}
	s.logger.Info("server stopped")
	return nil
}

// withCORS adds CORS headers, honoring the configured origin allowlist.
func (s *Server) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", s.allowOrigin(r.Header.Get("Origin")))
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (s *Server) allowOrigin(origin string) string {
	if len(s.cfg.AllowedOrigins) == 0 {
		return "*"
	}
	for _, allowed := range s.cfg.AllowedOrigins {
		if strings.EqualFold(allowed, origin) {
			return origin
		}
	}
	return s.cfg.AllowedOrigins[0]
}

// withLogging tags each request with an ID and logs its outcome.
func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		requestID := uuid.NewString()
		w.Header().Set("X-Request-ID", requestID)

		next.ServeHTTP(w, r)

		s.logger.Info("request completed",
			zap.String("request_id", requestID),
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Duration("duration", time.Since(start)))
	})
}

// jsonResponse writes a JSON response
func (s *Server) jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		s.logger.Error("failed to encode JSON response", zap.Error(err))
	}
}

// errorResponse writes an error JSON response
func (s *Server) errorResponse(w http.ResponseWriter, status int, message string) {
	s.jsonResponse(w, status, map[string]any{
		"success": false,
		"error":   message,
	})
}
