package middleware

import (
	"github.com/labstack/echo/v4"

	"github.com/sarah-habibi/blog-api/internal/core/auth"
	"github.com/sarah-habibi/blog-api/internal/core/domain"
)

// AccessTokenCookie is the cookie slot the session token travels in.
const AccessTokenCookie = "access_token"

// claimsKey is the echo context key the verified claims are stored under.
const claimsKey = "claims"

// Auth is the access guard: it reads the session token from the access_token
// cookie, verifies it, and attaches the claims to the request context. A
// missing or invalid token short-circuits the pipeline with 401; the guard
// never mutates persisted state.
func Auth(issuer *auth.TokenIssuer) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cookie, err := c.Cookie(AccessTokenCookie)
			if err != nil || cookie.Value == "" {
				return domain.Unauthorized("Unauthorized")
			}

			claims, err := issuer.Verify(cookie.Value)
			if err != nil {
				return domain.Unauthorized("Unauthorized")
			}

			c.Set(claimsKey, claims)
			return next(c)
		}
	}
}

// ClaimsFrom returns the claims the access guard attached to the request.
// ok is false on routes the guard did not run for.
func ClaimsFrom(c echo.Context) (auth.Claims, bool) {
	claims, ok := c.Get(claimsKey).(auth.Claims)
	return claims, ok
}
