// Package ingestion turns uploaded documents into clean plain text ready
// for extraction.
package ingestion

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/gen2brain/go-fitz"
)

// SupportedExtensions lists the upload formats the pipeline accepts.
var SupportedExtensions = []string{".pdf", ".docx", ".doc", ".txt"}

// Supported reports whether the file name has an accepted extension.
func Supported(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	for _, supported := range SupportedExtensions {
		if ext == supported {
			return true
		}
	}
	return false
}

// ExtractFile reads a document and returns its cleaned plain text.
// The format is chosen by file extension.
func ExtractFile(path string) (string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".pdf":
		return extractPDF(path)
	case ".docx", ".doc":
		return extractDOCX(path)
	case ".txt":
		return extractTXT(path)
	default:
		return "", fmt.Errorf("unsupported file format: %s", filepath.Ext(path))
	}
}

// extractPDF concatenates the text of every page. Pages that fail to
// render are skipped rather than failing the whole document.
func extractPDF(path string) (string, error) {
	doc, err := fitz.New(path)
	if err != nil {
		return "", fmt.Errorf("failed to open PDF: %w", err)
	}
	defer doc.Close()

	var b strings.Builder
	for i := 0; i < doc.NumPage(); i++ {
		pageText, err := doc.Text(i)
		if err != nil {
			continue
		}
		b.WriteString(pageText)
		b.WriteString("\n")
	}
	return CleanText(b.String()), nil
}

// extractTXT reads a plain text file, decoding it as Latin-1 when it is
// not valid UTF-8.
func extractTXT(path string) (string, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read text file: %w", err)
	}
	if !utf8.Valid(content) {
		content = decodeLatin1(content)
	}
	return CleanText(string(content)), nil
}

// decodeLatin1 maps each byte to the corresponding code point, which is
// exactly the ISO 8859-1 decoding.
func decodeLatin1(data []byte) []byte {
	runes := make([]rune, len(data))
	for i, b := range data {
		runes[i] = rune(b)
	}
	return []byte(string(runes))
}
