package handlers

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/yoxaz-verse/obaol-rate-service/internal/domain"
	"github.com/yoxaz-verse/obaol-rate-service/internal/infrastructure/logger"
)

type errorResponse struct {
	Error string `json:"error"`
}

// respondError maps an error to its HTTP category. Validation errors are 400,
// missing records 404, cooldown rejections 409, everything else 500. Internal
// errors are persisted with request context for later tracing.
func respondError(c *gin.Context, errLogger logger.ErrorEventLogger, component string, err error) {
	var ce *domain.CooldownError
	switch {
	case domain.IsValidation(err):
		c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	case domain.IsNotFound(err):
		c.JSON(http.StatusNotFound, errorResponse{Error: err.Error()})
	case errors.As(err, &ce):
		c.JSON(http.StatusConflict, gin.H{
			"error":        ce.Error(),
			"next_edit_at": ce.NextEditAt.Format(time.RFC3339),
		})
	default:
		logInternalError(c, errLogger, component, err)
		c.JSON(http.StatusInternalServerError, errorResponse{Error: "internal error"})
	}
}

func logInternalError(c *gin.Context, errLogger logger.ErrorEventLogger, component string, err error) {
	slog.Error("request failed",
		"component", component,
		"method", c.Request.Method,
		"path", c.Request.URL.Path,
		"error", err)
	if errLogger == nil {
		return
	}

	var body string
	if c.Request.Body != nil {
		if raw, readErr := io.ReadAll(io.LimitReader(c.Request.Body, 4096)); readErr == nil {
			body = string(raw)
		}
	}
	event := logger.ErrorEvent{
		RequestID: c.GetHeader("X-Request-Id"),
		Method:    c.Request.Method,
		Path:      c.Request.URL.Path,
		Component: component,
		Body:      body,
		Message:   err.Error(),
		Timestamp: time.Now(),
	}
	if logErr := errLogger.LogError(context.WithoutCancel(c.Request.Context()), event); logErr != nil {
		slog.Error("failed to persist error event", "error", logErr)
	}
}
