package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/sarah-habibi/blog-api/internal/core/ports"
)

// UserHandler handles profile management and the admin user listing.
type UserHandler struct {
	userService ports.UserService
}

func NewUserHandler(userService ports.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// Update changes the caller's own profile.
//
// @Summary      Update a user profile
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        userId  path      string             true  "User id"
// @Param        body    body      updateUserRequest  true  "Fields to change"
// @Success      200     {object}  userResponse
// @Failure      400     {object}  map[string]any
// @Failure      403     {object}  map[string]any
// @Router       /api/user/update/{userId} [put]
func (h *UserHandler) Update(c echo.Context) error {
	claims, err := ctxClaims(c)
	if err != nil {
		return err
	}

	var req updateUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	user, err := h.userService.Update(c.Request().Context(), claims, ports.UpdateUserInput{
		UserID:         c.Param("userId"),
		Username:       req.Username,
		Email:          req.Email,
		Password:       req.Password,
		ProfilePicture: req.ProfilePicture,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toUserResponse(user))
}

// Delete removes the caller's own account.
//
// @Summary      Delete own account
// @Tags         users
// @Produce      json
// @Param        userId  path      string  true  "User id"
// @Success      200     {object}  map[string]string
// @Failure      400     {object}  map[string]any
// @Router       /api/user/delete/{userId} [delete]
func (h *UserHandler) Delete(c echo.Context) error {
	claims, err := ctxClaims(c)
	if err != nil {
		return err
	}

	if err := h.userService.DeleteAccount(c.Request().Context(), claims, c.Param("userId")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Account deleted!"})
}

// Signout clears the session cookie. Stateless tokens cannot be revoked, so
// this only forgets the cookie on the client.
//
// @Summary      Sign out
// @Tags         users
// @Produce      json
// @Success      200  {string}  string
// @Router       /api/user/signout [post]
func (h *UserHandler) Signout(c echo.Context) error {
	clearSessionCookie(c)
	return c.JSON(http.StatusOK, "User has been signed out")
}

// GetUsers lists accounts for the admin dashboard.
//
// @Summary      List users
// @Tags         users
// @Produce      json
// @Param        startIndex  query     int     false  "Offset"
// @Param        limit       query     int     false  "Page size"  default(9)
// @Param        sort        query     string  false  "asc or desc"
// @Success      200  {object}  allUsersResponse
// @Failure      403  {object}  map[string]any
// @Router       /api/user/getusers [get]
func (h *UserHandler) GetUsers(c echo.Context) error {
	claims, err := ctxClaims(c)
	if err != nil {
		return err
	}

	result, err := h.userService.List(c.Request().Context(), claims, ports.ListUsersQuery{
		StartIndex: queryInt(c, "startIndex", 0),
		Limit:      queryInt(c, "limit", 0),
		SortAsc:    c.QueryParam("sort") == "asc",
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, allUsersResponse{
		Users:           toUsersResponse(result.Users),
		LastMonthsUsers: result.LastMonthsUsers,
		TotalUsers:      result.TotalUsers,
	})
}

// DeleteUser removes any account. Admin only.
//
// @Summary      Delete a user
// @Tags         users
// @Produce      json
// @Param        userId  path      string  true  "User id"
// @Success      200     {string}  string
// @Failure      403     {object}  map[string]any
// @Router       /api/user/deleteuser/{userId} [delete]
func (h *UserHandler) DeleteUser(c echo.Context) error {
	claims, err := ctxClaims(c)
	if err != nil {
		return err
	}

	if err := h.userService.AdminDelete(c.Request().Context(), claims, c.Param("userId")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, "User has been deleted")
}

// Get returns a public profile, for rendering comment authors.
//
// @Summary      Get a user
// @Tags         users
// @Produce      json
// @Param        userId  path      string  true  "User id"
// @Success      200     {object}  userResponse
// @Failure      404     {object}  map[string]any
// @Router       /api/user/{userId} [get]
func (h *UserHandler) Get(c echo.Context) error {
	user, err := h.userService.Get(c.Request().Context(), c.Param("userId"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toUserResponse(user))
}

// queryInt parses an integer query parameter, falling back on absence or junk.
func queryInt(c echo.Context, name string, fallback int) int {
	raw := c.QueryParam(name)
	if raw == "" {
		return fallback
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return n
}
