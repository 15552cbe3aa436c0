package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/sarah-habibi/blog-api/internal/api/metrics"
	"github.com/sarah-habibi/blog-api/internal/api/middleware"
	"github.com/sarah-habibi/blog-api/internal/core/ports"
)

// AuthHandler handles signup, signin, and Google signin.
type AuthHandler struct {
	authService ports.AuthService
}

func NewAuthHandler(authService ports.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Signup creates a new account.
//
// @Summary      Register a new user
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      signupRequest  true  "Registration details"
// @Success      200   {string}  string
// @Failure      400   {object}  map[string]any
// @Failure      409   {object}  map[string]any
// @Router       /api/auth/signup [post]
func (h *AuthHandler) Signup(c echo.Context) error {
	var req signupRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	if err := h.authService.Signup(c.Request().Context(), ports.SignupInput{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
	}); err != nil {
		return err
	}

	metrics.SignupsTotal.Inc()
	return c.JSON(http.StatusOK, "Successful Signup")
}

// Signin authenticates by email and password, setting the session cookie.
//
// @Summary      Sign in
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      signinRequest  true  "Credentials"
// @Success      200   {object}  userResponse
// @Failure      400   {object}  map[string]any
// @Router       /api/auth/signin [post]
func (h *AuthHandler) Signin(c echo.Context) error {
	var req signinRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	token, user, err := h.authService.Signin(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return err
	}

	setSessionCookie(c, token)
	metrics.SigninsTotal.WithLabelValues("local").Inc()
	return c.JSON(http.StatusOK, toUserResponse(user))
}

// Google signs in (or auto-provisions) an account asserted by Google.
//
// @Summary      Sign in with Google
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      googleRequest  true  "Provider-asserted identity"
// @Success      200   {object}  userResponse
// @Failure      400   {object}  map[string]any
// @Router       /api/auth/google [post]
func (h *AuthHandler) Google(c echo.Context) error {
	var req googleRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	token, user, err := h.authService.Google(c.Request().Context(), ports.GoogleSigninInput{
		Username:       req.Username,
		Email:          req.Email,
		GooglePhotoURL: req.GooglePhotoURL,
	})
	if err != nil {
		return err
	}

	setSessionCookie(c, token)
	metrics.SigninsTotal.WithLabelValues("google").Inc()
	return c.JSON(http.StatusOK, toUserResponse(user))
}

// setSessionCookie places the token in the httpOnly access_token cookie. No
// Max-Age: the session lives until the signing secret rotates.
func setSessionCookie(c echo.Context, token string) {
	c.SetCookie(&http.Cookie{
		Name:     middleware.AccessTokenCookie,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
	})
}

// clearSessionCookie expires the access_token cookie.
func clearSessionCookie(c echo.Context) {
	c.SetCookie(&http.Cookie{
		Name:     middleware.AccessTokenCookie,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		MaxAge:   -1,
	})
}
