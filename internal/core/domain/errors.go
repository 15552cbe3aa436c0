package domain

import (
	"errors"
	"net/http"
)

// Sentinel errors returned by repositories. Services translate them into
// statusCoded errors with the message the route contract requires.
var (
	ErrUserNotFound    = errors.New("user not found")
	ErrUserExists      = errors.New("user already exists")
	ErrPostNotFound    = errors.New("post not found")
	ErrPostExists      = errors.New("post already exists")
	ErrCommentNotFound = errors.New("comment not found")
)

// Error is an error carrying the HTTP status code it should surface with.
// The centralized error handler renders it inside the uniform
// {success,statusCode,message} envelope.
type Error struct {
	StatusCode int
	Message    string
}

func (e *Error) Error() string { return e.Message }

// E builds a statusCoded error.
func E(statusCode int, message string) *Error {
	return &Error{StatusCode: statusCode, Message: message}
}

// Common constructors used across services.

func BadRequest(message string) *Error {
	return E(http.StatusBadRequest, message)
}

func Unauthorized(message string) *Error {
	return E(http.StatusUnauthorized, message)
}

func Forbidden(message string) *Error {
	return E(http.StatusForbidden, message)
}

func NotFound(message string) *Error {
	return E(http.StatusNotFound, message)
}
