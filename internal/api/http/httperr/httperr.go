// Package httperr переводит доменные ошибки в HTTP-ответы.
package httperr

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"cryptoTracker/internal/api/http/middlewares"
	"cryptoTracker/internal/domain"
)

// Response это тело ответа с ошибкой.
type Response struct {
	Error     string `json:"error"`
	RequestID string `json:"request_id,omitempty"`
}

// Status возвращает HTTP-статус для ошибки: 400, 404, 502 или 500.
func Status(err error) int {
	switch {
	case errors.Is(err, domain.ErrInvalidArgument):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrUpstream):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// Write пишет ошибку в ответ и в лог. Клиентские ошибки логируются как Warn, остальные как Error.
func Write(ctx *gin.Context, log *slog.Logger, op string, err error) {
	status := Status(err)
	if status >= http.StatusInternalServerError {
		log.Error(op+" failed", "error", err, "status", status)
	} else {
		log.Warn(op+" rejected", "error", err, "status", status)
	}
	ctx.JSON(status, Response{Error: err.Error(), RequestID: ctx.GetString(middlewares.RequestIDKey)})
}
