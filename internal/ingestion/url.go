package ingestion

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/jonathan/coverletter-agent/internal/fetch"
)

// IngestFromURL fetches a job posting page and reduces it to clean text.
// Platform detection picks selector tables tuned for known job boards.
// When useBrowser is set and the HTTP fetch yields too little text, the
// page is re-rendered in a headless browser before extraction.
func IngestFromURL(ctx context.Context, urlStr string, useBrowser bool, logger *zap.Logger) (string, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	platform := fetch.DetectPlatform(urlStr)
	logger.Debug("fetching job posting",
		zap.String("url", urlStr),
		zap.String("platform", string(platform)))

	result, err := fetch.URL(ctx, urlStr, nil)
	if err != nil {
		return "", fmt.Errorf("fetch failed: %w", err)
	}

	contentSelectors := fetch.PlatformContentSelectors(platform)
	noiseSelectors := fetch.PlatformNoiseSelectors(platform)

	text, err := fetch.ExtractMainText(result.HTML, contentSelectors, noiseSelectors...)
	if err != nil {
		return "", fmt.Errorf("content extraction failed: %w", err)
	}

	if useBrowser && fetch.ShouldUseBrowser(text) {
		logger.Debug("content too short, rendering in headless browser",
			zap.Int("chars", len(text)))
		browserHTML, browserErr := fetch.BrowserSimple(ctx, urlStr)
		if browserErr != nil {
			logger.Warn("browser rendering failed, keeping HTTP content", zap.Error(browserErr))
		} else if rendered, extractErr := fetch.ExtractMainText(browserHTML, contentSelectors, noiseSelectors...); extractErr == nil {
			text = rendered
		}
	}

	return CleanText(text), nil
}
