package server

import (
	"errors"
	"net/http"

	"github.com/jonathan/coverletter-agent/internal/fetch"
	"github.com/jonathan/coverletter-agent/internal/validation"
)

// HTTPStatus maps domain errors to HTTP status codes.
func HTTPStatus(err error) int {
	var contentErr *validation.ContentError
	var sizeErr *validation.FileSizeError
	var fetchErr *fetch.Error

	switch {
	case errors.As(err, &contentErr):
		return http.StatusBadRequest
	case errors.As(err, &sizeErr):
		return http.StatusRequestEntityTooLarge
	case errors.As(err, &fetchErr):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
