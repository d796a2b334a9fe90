package controller

import (
	stdErrors "errors"
	"net/http"
	"time"

	"meca-api/core/errors"
	"meca-api/core/logger"

	"github.com/labstack/echo/v4"
)

type (
	SuccessResponse struct {
		Status    int       `json:"status"`
		Message   string    `json:"message"`
		Data      any       `json:"data,omitempty"`
		Timestamp time.Time `json:"timestamp"`
	}

	ErrorResponse struct {
		Status    string           `json:"status"`
		Code      errors.ErrorCode `json:"code"`
		Message   string           `json:"message"`
		Details   any              `json:"details,omitempty"`
		RequestID string           `json:"request_id,omitempty"`
		Timestamp time.Time        `json:"timestamp"`
	}

	ValidationError struct {
		Field   string `json:"field"`
		Message string `json:"message"`
	}
)

// BaseController is embedded by every module controller.
type BaseController interface {
	BadRequest(appErrCode errors.ErrorCode, message string, details ...any) *echo.HTTPError
	Forbidden(appErrCode errors.ErrorCode, message string, details ...any) *echo.HTTPError
	InternalServerError(appErrCode errors.ErrorCode, message string, details ...any) *echo.HTTPError
	SuccessResponse(c echo.Context, data any, message string) error
	CreatedResponse(c echo.Context, data any, message string) error
	ErrorResponse(c echo.Context, err error) error
}

type responseHandler struct{}

func NewBaseController() BaseController {
	return &responseHandler{}
}

var statusByCode = map[errors.ErrorCode]int{
	errors.ErrInvalidInput:       http.StatusBadRequest,
	errors.ErrInvalidRequestData: http.StatusBadRequest,
	errors.ErrInvalidState:       http.StatusBadRequest,

	errors.ErrUnauthorized:               http.StatusUnauthorized,
	errors.ErrTokenExpired:               http.StatusUnauthorized,
	errors.ErrInvalidTokenFormat:         http.StatusUnauthorized,
	errors.ErrMissingAuthorizationHeader: http.StatusUnauthorized,

	errors.ErrForbidden:     http.StatusForbidden,
	errors.ErrNotFound:      http.StatusNotFound,
	errors.ErrAlreadyExists: http.StatusConflict,
	errors.ErrConflict:      http.StatusConflict,
}

// StatusFor maps an application error code to its HTTP status. Unknown codes are 500.
func StatusFor(code errors.ErrorCode) int {
	if status, ok := statusByCode[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}

func NewSuccessResponse(httpStatusCode int, data any, message string) *SuccessResponse {
	return &SuccessResponse{
		Status:    httpStatusCode,
		Message:   message,
		Data:      data,
		Timestamp: time.Now(),
	}
}

// NewErrorResponse builds an error echo renders as the ErrorResponse body.
func NewErrorResponse(httpStatusCode int, appErrCode errors.ErrorCode, message string, details ...any) *echo.HTTPError {
	body := &ErrorResponse{
		Status:    "error",
		Code:      appErrCode,
		Message:   message,
		Timestamp: time.Now(),
	}
	if len(details) > 0 {
		body.Details = details[0]
	}
	return echo.NewHTTPError(httpStatusCode, body)
}

func NewValidationError(field, message string) ValidationError {
	return ValidationError{Field: field, Message: message}
}

func (h *responseHandler) BadRequest(appErrCode errors.ErrorCode, message string, details ...any) *echo.HTTPError {
	return NewErrorResponse(http.StatusBadRequest, appErrCode, message, details...)
}

func (h *responseHandler) Forbidden(appErrCode errors.ErrorCode, message string, details ...any) *echo.HTTPError {
	return NewErrorResponse(http.StatusForbidden, appErrCode, message, details...)
}

func (h *responseHandler) InternalServerError(appErrCode errors.ErrorCode, message string, details ...any) *echo.HTTPError {
	return NewErrorResponse(http.StatusInternalServerError, appErrCode, message, details...)
}

func (h *responseHandler) SuccessResponse(c echo.Context, data any, message string) error {
	return c.JSON(http.StatusOK, NewSuccessResponse(http.StatusOK, data, message))
}

func (h *responseHandler) CreatedResponse(c echo.Context, data any, message string) error {
	return c.JSON(http.StatusCreated, NewSuccessResponse(http.StatusCreated, data, message))
}

// ErrorResponse renders a service error. *errors.AppError carries its own
// code; anything else is reported as an internal error.
func (h *responseHandler) ErrorResponse(c echo.Context, err error) error {
	body := &ErrorResponse{
		Status:    "error",
		Code:      errors.ErrInternalServer,
		Message:   "internal server error",
		RequestID: c.Response().Header().Get(echo.HeaderXRequestID),
		Timestamp: time.Now(),
	}

	var appErr *errors.AppError
	switch {
	case stdErrors.As(err, &appErr) && appErr != nil:
		body.Code = appErr.Code
		if appErr.Message != "" {
			body.Message = appErr.Message
		}
	case err != nil && err.Error() != "":
		body.Message = err.Error()
	}

	status := StatusFor(body.Code)
	if status >= http.StatusInternalServerError {
		logger.Error("BaseController:ErrorResponse", "status", status, "code", body.Code, "request_id", body.RequestID, "error", err)
	} else {
		logger.Warn("BaseController:ErrorResponse", "status", status, "code", body.Code, "request_id", body.RequestID, "message", body.Message)
	}
	return c.JSON(status, body)
}
