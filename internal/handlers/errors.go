package handlers

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barberia-reservas/internal/httperr"
	"github.com/BruksfildServices01/barberia-reservas/internal/middleware"
)

// statusForCode maps a business error code to its HTTP status.
func statusForCode(code string) int {
	switch {
	case strings.HasSuffix(code, "_not_found"):
		return http.StatusNotFound
	case code == "time_conflict", code == "email_taken":
		return http.StatusConflict
	case code == "invalid_credentials":
		return http.StatusUnauthorized
	case code == "account_inactive":
		return http.StatusForbidden
	case code == "photo_storage_disabled":
		return http.StatusServiceUnavailable
	default:
		return http.StatusBadRequest
	}
}

// writeError renders business errors with their code and hides everything
// else behind internal_error after logging it.
func writeError(c *gin.Context, log *slog.Logger, err error) {
	if code, ok := httperr.BusinessCode(err); ok {
		httperr.Write(c, statusForCode(code), code, "")
		return
	}

	log.Error("request failed",
		slog.String("path", c.FullPath()),
		slog.String("request_id", c.GetString(middleware.ContextRequestID)),
		slog.Any("error", err),
	)
	httperr.Internal(c, "internal_error", "")
}
