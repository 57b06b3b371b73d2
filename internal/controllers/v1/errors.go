package v1

import (
	"errors"
	"net/http"

	"github.com/coreflow-app/backend/internal/models"
)

type httpError struct {
	Error string `json:"error" example:"An ID specified in the query string was not a valid UUID"`
}

// status returns the appropriate HTTP status for an error
func status(err error) int {
	if errors.Is(err, models.ErrGeneral) {
		return http.StatusInternalServerError
	}

	if errors.Is(err, models.ErrResourceNotFound) {
		return http.StatusNotFound
	}

	return http.StatusBadRequest
}

var (
	errDurationNotPositive = errors.New("the projection duration must be at least one month")
	errDurationTooLong     = errors.New("the projection duration must be 1200 months or less")
)
