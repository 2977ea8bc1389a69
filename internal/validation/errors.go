// Package validation checks user-supplied documents before they enter the
// extraction pipeline.
package validation

import "fmt"

// ContentError reports input that fails a content plausibility check.
type ContentError struct {
	Field   string
	Message string
}

func (e *ContentError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
}

// FileSizeError reports an upload outside the accepted size range.
type FileSizeError struct {
	Size int64
	Max  int64
}

func (e *FileSizeError) Error() string {
	return fmt.Sprintf("file size %d bytes outside accepted range (max %d)", e.Size, e.Max)
}
