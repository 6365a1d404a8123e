package handlers

import (
	"errors"
	"net/http"

	"github.com/fedstack/federation-registry/pkg/repository"
)

// StatusFromError maps the repository error taxonomy to HTTP status codes.
// Domain packages with additional error kinds layer their own mapping on top.
func StatusFromError(err error) int {
	var (
		notFound     *repository.NotFoundError
		noUpdate     *repository.NoItemToUpdateError
		notNull      *repository.NotNullError
		conflict     *repository.ConflictError
		deleteFailed *repository.DeleteFailedError
	)

	switch {
	case errors.As(err, &notFound):
		return http.StatusNotFound
	case errors.As(err, &noUpdate):
		return http.StatusNotFound
	case errors.As(err, &notNull):
		return http.StatusUnprocessableEntity
	case errors.As(err, &conflict):
		return http.StatusConflict
	case errors.As(err, &deleteFailed):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
