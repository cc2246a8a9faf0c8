package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
)

// SuccessResponse writes an already encoded JSON document as the body with
// status 200. The bytes are sent as is.
func SuccessResponse(c echo.Context, doc json.RawMessage) error {
	return c.JSONBlob(http.StatusOK, doc)
}

// ErrorResponse writes {"error": message} with the given status.
func ErrorResponse(c echo.Context, status int, message string) error {
	return c.JSON(status, ErrorBody{Error: message})
}

// InternalServerErrorResponse writes a generic 500.
func InternalServerErrorResponse(c echo.Context) error {
	return ErrorResponse(c, http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError))
}

// AppErrorResponse writes application error response. Errors that are not
// *AppError collapse into a generic 500.
func AppErrorResponse(c echo.Context, err error) error {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return ErrorResponse(c, appErr.Status, appErr.Message)
	}
	return InternalServerErrorResponse(c)
}
