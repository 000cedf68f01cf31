package handlers

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barberia-reservas/internal/auth"
	"github.com/BruksfildServices01/barberia-reservas/internal/httperr"
	"github.com/BruksfildServices01/barberia-reservas/internal/middleware"
	"github.com/BruksfildServices01/barberia-reservas/internal/timezone"
)

func principal(c *gin.Context) (auth.Principal, bool) {
	p, ok := middleware.PrincipalFrom(c)
	if !ok {
		httperr.Unauthorized(c, "missing_credentials", "")
	}
	return p, ok
}

func parseID(s string) (uint, bool) {
	n, err := strconv.ParseUint(s, 10, 64)
	if err != nil || n == 0 {
		return 0, false
	}
	return uint(n), true
}

// dateOrToday reads a YYYY-MM-DD value, defaulting to today in tz.
func dateOrToday(raw, tz string) (time.Time, bool) {
	if raw == "" {
		return timezone.TodayIn(tz), true
	}
	d, err := timezone.ParseDate(raw)
	return d, err == nil
}
