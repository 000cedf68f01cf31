package middleware

import (
	"log/slog"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barberia-reservas/internal/auth"
	"github.com/BruksfildServices01/barberia-reservas/internal/authz"
	"github.com/BruksfildServices01/barberia-reservas/internal/httperr"
)

const ContextPrincipal = "principal"

// AuthMiddleware resolves the caller from a Bearer header or, for browser
// form posts, the session cookie.
func AuthMiddleware(tokens *auth.TokenIssuer, revoker auth.Revoker, cookieName string, log *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw, ok := bearerOrCookie(c, cookieName)
		if !ok {
			httperr.Unauthorized(c, "missing_credentials", "")
			return
		}

		p, err := tokens.Parse(raw)
		if err != nil {
			httperr.Unauthorized(c, "invalid_token", "")
			return
		}

		revoked, err := revoker.IsRevoked(c.Request.Context(), p.TokenID)
		if err != nil {
			log.Error("revocation check failed", slog.Any("error", err))
			httperr.Internal(c, "internal_error", "")
			return
		}
		if revoked {
			httperr.Unauthorized(c, "token_revoked", "")
			return
		}

		c.Set(ContextPrincipal, p)
		c.Next()
	}
}

func bearerOrCookie(c *gin.Context, cookieName string) (string, bool) {
	if h := c.GetHeader("Authorization"); h != "" {
		parts := strings.SplitN(h, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
			return "", false
		}
		return parts[1], true
	}

	if cookieName != "" {
		if v, err := c.Cookie(cookieName); err == nil && v != "" {
			return v, true
		}
	}
	return "", false
}

func PrincipalFrom(c *gin.Context) (auth.Principal, bool) {
	v, ok := c.Get(ContextPrincipal)
	if !ok {
		return auth.Principal{}, false
	}
	p, ok := v.(auth.Principal)
	return p, ok
}

// RequirePermission must run after AuthMiddleware.
func RequirePermission(perm authz.Permission) gin.HandlerFunc {
	return func(c *gin.Context) {
		p, ok := PrincipalFrom(c)
		if !ok {
			httperr.Unauthorized(c, "missing_credentials", "")
			return
		}
		if !authz.Can(p.Role, perm) {
			httperr.Forbidden(c, "forbidden", "")
			return
		}
		c.Next()
	}
}
