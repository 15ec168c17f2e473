// Package response renders the JSON envelope shared by every API route.
package response

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// internalMessage is all a caller learns about an unexpected failure.
const internalMessage = "Internal server error, please try again later"

// Response is the envelope every endpoint answers with.
type Response struct {
	Success bool       `json:"success"`
	Code    int        `json:"code"`
	Message string     `json:"message"`
	Data    any        `json:"data,omitempty"`
	Error   *ErrorInfo `json:"error,omitempty"`
}

// ErrorInfo carries the business error code, e.g. "PAYMENT_NOT_FOUND".
type ErrorInfo struct {
	Code    string `json:"code"`
	Details string `json:"details,omitempty"`
}

// Success writes data with message, "Success" when empty.
func Success(c echo.Context, status int, data any, message string) error {
	if message == "" {
		message = "Success"
	}

	return c.JSON(status, Response{
		Success: true,
		Code:    status,
		Message: message,
		Data:    data,
	})
}

func OK(c echo.Context, data any, message string) error {
	return Success(c, http.StatusOK, data, message)
}

func Created(c echo.Context, data any, message string) error {
	return Success(c, http.StatusCreated, data, message)
}

// Error writes a failure. Details of 5xx responses are never sent.
func Error(c echo.Context, status int, code, message, details string) error {
	if message == "" {
		message = http.StatusText(status)
	}

	info := &ErrorInfo{Code: code}
	if status < http.StatusInternalServerError {
		info.Details = details
	}

	return c.JSON(status, Response{
		Code:    status,
		Message: message,
		Error:   info,
	})
}

func Unauthorized(c echo.Context, code, message string) error {
	return Error(c, http.StatusUnauthorized, code, message, "")
}

// Internal hides err from the caller; log it before calling.
func Internal(c echo.Context) error {
	return Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", internalMessage, "")
}
