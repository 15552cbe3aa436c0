package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/sarah-habibi/blog-api/internal/api/middleware"
	"github.com/sarah-habibi/blog-api/internal/core/auth"
	"github.com/sarah-habibi/blog-api/internal/core/domain"
)

// ctxClaims extracts the claims the access guard attached to the request.
// A protected handler reached without them means the guard did not run;
// reject rather than proceed with an empty identity.
func ctxClaims(c echo.Context) (auth.Claims, error) {
	claims, ok := middleware.ClaimsFrom(c)
	if !ok || claims.UserID == "" {
		return auth.Claims{}, domain.Unauthorized("Unauthorized")
	}
	return claims, nil
}
