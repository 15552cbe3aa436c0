package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/sarah-habibi/blog-api/internal/core/auth"
	"github.com/sarah-habibi/blog-api/internal/core/domain"
	"github.com/sarah-habibi/blog-api/internal/core/ports"
)

type stubUserService struct {
	updateFn      func(ctx context.Context, caller auth.Claims, input ports.UpdateUserInput) (*domain.User, error)
	deleteFn      func(ctx context.Context, caller auth.Claims, userID string) error
	listFn        func(ctx context.Context, caller auth.Claims, query ports.ListUsersQuery) (*ports.ListUsersResult, error)
	adminDeleteFn func(ctx context.Context, caller auth.Claims, userID string) error
	getFn         func(ctx context.Context, userID string) (*domain.User, error)
}

func (s *stubUserService) Update(ctx context.Context, caller auth.Claims, input ports.UpdateUserInput) (*domain.User, error) {
	return s.updateFn(ctx, caller, input)
}

func (s *stubUserService) DeleteAccount(ctx context.Context, caller auth.Claims, userID string) error {
	return s.deleteFn(ctx, caller, userID)
}

func (s *stubUserService) List(ctx context.Context, caller auth.Claims, query ports.ListUsersQuery) (*ports.ListUsersResult, error) {
	return s.listFn(ctx, caller, query)
}

func (s *stubUserService) AdminDelete(ctx context.Context, caller auth.Claims, userID string) error {
	return s.adminDeleteFn(ctx, caller, userID)
}

func (s *stubUserService) Get(ctx context.Context, userID string) (*domain.User, error) {
	return s.getFn(ctx, userID)
}

func TestUserHandler_Update_Success(t *testing.T) {
	e := echo.New()
	e.Validator = NewValidator()
	stub := &stubUserService{
		updateFn: func(ctx context.Context, caller auth.Claims, input ports.UpdateUserInput) (*domain.User, error) {
			if input.UserID != "u1" || input.Username != "newname" {
				t.Fatalf("input not forwarded: %+v", input)
			}
			return &domain.User{ID: "u1", Username: "newname", Email: "a@example.com"}, nil
		},
	}
	handler := NewUserHandler(stub)

	body := strings.NewReader(`{"username":"newname"}`)
	req := httptest.NewRequest(http.MethodPut, "/api/user/update/u1", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := authedContext(e, req, rec, auth.Claims{UserID: "u1"})
	c.SetParamNames("userId")
	c.SetParamValues("u1")

	if err := handler.Update(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["username"] != "newname" {
		t.Fatalf("unexpected payload: %+v", resp)
	}
}

func TestUserHandler_Update_RejectsNonURLProfilePicture(t *testing.T) {
	e := echo.New()
	e.Validator = NewValidator()
	stub := &stubUserService{
		updateFn: func(ctx context.Context, caller auth.Claims, input ports.UpdateUserInput) (*domain.User, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	handler := NewUserHandler(stub)

	body := strings.NewReader(`{"profilePicture":"not a url"}`)
	req := httptest.NewRequest(http.MethodPut, "/api/user/update/u1", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := authedContext(e, req, rec, auth.Claims{UserID: "u1"})
	c.SetParamNames("userId")
	c.SetParamValues("u1")

	err := handler.Update(c)
	var de *domain.Error
	if !errors.As(err, &de) || de.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400 domain error, got %v", err)
	}
	if !strings.Contains(de.Message, "profilepicture") {
		t.Fatalf("unexpected message: %s", de.Message)
	}
}

func TestUserHandler_Update_ForbiddenPassesThrough(t *testing.T) {
	e := echo.New()
	e.Validator = NewValidator()
	stub := &stubUserService{
		updateFn: func(ctx context.Context, caller auth.Claims, input ports.UpdateUserInput) (*domain.User, error) {
			return nil, domain.Forbidden("You are not allowed to update this user")
		},
	}
	handler := NewUserHandler(stub)

	req := httptest.NewRequest(http.MethodPut, "/api/user/update/u2", strings.NewReader(`{"username":"x"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := authedContext(e, req, rec, auth.Claims{UserID: "u1"})
	c.SetParamNames("userId")
	c.SetParamValues("u2")

	err := handler.Update(c)
	var de *domain.Error
	if !errors.As(err, &de) || de.StatusCode != http.StatusForbidden {
		t.Fatalf("expected 403 domain error, got %v", err)
	}
}

func TestUserHandler_Signout_ClearsCookie(t *testing.T) {
	e := echo.New()
	e.Validator = NewValidator()
	handler := NewUserHandler(&stubUserService{})

	req := httptest.NewRequest(http.MethodPost, "/api/user/signout", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.Signout(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !strings.Contains(rec.Body.String(), "User has been signed out") {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}

	cookie := findCookie(rec.Result().Cookies(), "access_token")
	if cookie == nil {
		t.Fatalf("expected an expiring access_token cookie")
	}
	if cookie.Value != "" || cookie.MaxAge >= 0 {
		t.Fatalf("cookie not cleared: value=%q maxage=%d", cookie.Value, cookie.MaxAge)
	}
}

func TestUserHandler_GetUsers_ForwardsPagingAndSort(t *testing.T) {
	e := echo.New()
	e.Validator = NewValidator()
	stub := &stubUserService{
		listFn: func(ctx context.Context, caller auth.Claims, query ports.ListUsersQuery) (*ports.ListUsersResult, error) {
			if query.StartIndex != 5 || !query.SortAsc {
				t.Fatalf("query not forwarded: %+v", query)
			}
			return &ports.ListUsersResult{
				Users:           []domain.User{{ID: "u1", Username: "frankwrite"}},
				TotalUsers:      11,
				LastMonthsUsers: 2,
			}, nil
		},
	}
	handler := NewUserHandler(stub)

	req := httptest.NewRequest(http.MethodGet, "/api/user/getusers?startIndex=5&sort=asc", nil)
	rec := httptest.NewRecorder()
	c := authedContext(e, req, rec, auth.Claims{UserID: "admin1", IsAdmin: true})

	if err := handler.GetUsers(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["totalUsers"] != float64(11) || resp["lastMonthsUsers"] != float64(2) {
		t.Fatalf("unexpected totals: %+v", resp)
	}
}

func TestUserHandler_Get_NotFound(t *testing.T) {
	e := echo.New()
	e.Validator = NewValidator()
	stub := &stubUserService{
		getFn: func(ctx context.Context, userID string) (*domain.User, error) {
			return nil, domain.NotFound("User not found!")
		},
	}
	handler := NewUserHandler(stub)

	req := httptest.NewRequest(http.MethodGet, "/api/user/ghost", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("userId")
	c.SetParamValues("ghost")

	err := handler.Get(c)
	var de *domain.Error
	if !errors.As(err, &de) || de.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404 domain error, got %v", err)
	}
}
