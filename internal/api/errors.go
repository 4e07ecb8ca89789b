package api

import (
	"errors"
	"net/http"

	"github.com/alexanderramin/babylog/internal/domain"
	"github.com/alexanderramin/babylog/internal/repository"
	"github.com/gin-gonic/gin"
)

func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, repository.ErrNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// writeError responds with {"error": ...}. Storage faults are attached to
// the gin context for the request logger and reported generically.
func writeError(c *gin.Context, err error) {
	status := statusFor(err)
	msg := err.Error()
	if status == http.StatusInternalServerError {
		_ = c.Error(err)
		msg = "internal error"
	}
	c.JSON(status, gin.H{"error": msg})
}

func badRequest(c *gin.Context, field, msg string) {
	writeError(c, &domain.ValidationError{Field: field, Msg: msg})
}
