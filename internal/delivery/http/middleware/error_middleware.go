package middleware

import (
	"log/slog"
	"net/http"

	"vhiem/internal/delivery/http/response"
	domainerrors "vhiem/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ErrorMiddleware error handling middleware
type ErrorMiddleware struct {
	logger *slog.Logger
}

// NewErrorMiddleware creates a new error handling middleware
func NewErrorMiddleware(logger *slog.Logger) *ErrorMiddleware {
	return &ErrorMiddleware{
		logger: logger,
	}
}

// HandleHTTPError handles errors as Echo's HTTPErrorHandler
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	// Modeled failures carry their own status and business code.
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		_ = c.JSON(appErr.HTTPCode(), response.Response{
			Success: false,
			Code:    appErr.HTTPCode(),
			Message: appErr.Message(),
			Error: &response.ErrorInfo{
				Code:    appErr.ErrorCode(),
				Details: appErr.Details(),
			},
		})

		return
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		message := http.StatusText(httpErr.Code)
		if msg, ok := httpErr.Message.(string); ok {
			message = msg
		}
		_ = c.JSON(httpErr.Code, response.Response{
			Success: false,
			Code:    httpErr.Code,
			Message: message,
			Error: &response.ErrorInfo{
				Code:    "HTTP_ERROR",
				Details: message,
			},
		})

		return
	}

	// Anything else is an unmodeled failure; log it and return a generic 500.
	m.logger.Error("Unhandled error",
		"error", err.Error(),
		"path", c.Request().URL.Path,
		"method", c.Request().Method,
	)

	_ = c.JSON(http.StatusInternalServerError, response.Response{
		Success: false,
		Code:    http.StatusInternalServerError,
		Message: "Internal server error",
		Error: &response.ErrorInfo{
			Code:    "INTERNAL_ERROR",
			Details: err.Error(),
		},
	})
}
