package middleware

import (
	"fmt"
	"log/slog"
	"net/http"

	domainerrors "lazycook/internal/domain/errors"

	"github.com/go-playground/validator/v10"
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

	// Domain errors carry their own HTTP status and user-facing message.
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		_ = c.JSON(appErr.HTTPCode(), domainerrors.Response{
			Success: false,
			Code:    appErr.HTTPCode(),
			Message: appErr.Message(),
			Error: &domainerrors.ErrorInfo{
				Code:    appErr.ErrorCode(),
				Details: appErr.Details(),
			},
		})

		return
	}

	// Struct validation failures from the request validator.
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		_ = c.JSON(http.StatusBadRequest, domainerrors.Response{
			Success: false,
			Code:    http.StatusBadRequest,
			Message: domainerrors.ErrValidationFailed.Message(),
			Error: &domainerrors.ErrorInfo{
				Code:    domainerrors.ErrValidationFailed.ErrorCode(),
				Details: validationErrs.Error(),
			},
		})

		return
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		_ = c.JSON(httpErr.Code, domainerrors.Response{
			Success: false,
			Code:    httpErr.Code,
			Message: fmt.Sprintf("%v", httpErr.Message),
			Error: &domainerrors.ErrorInfo{
				Code:    "HTTP_ERROR",
				Details: fmt.Sprintf("%v", httpErr.Message),
			},
		})

		return
	}

	// Anything else is unexpected; keep the detail in the logs.
	m.logger.Error("Unhandled error",
		slog.String("error", err.Error()),
		slog.String("path", c.Request().URL.Path),
		slog.String("method", c.Request().Method),
	)

	_ = c.JSON(http.StatusInternalServerError, domainerrors.Response{
		Success: false,
		Code:    http.StatusInternalServerError,
		Message: "Interner Fehler",
		Error: &domainerrors.ErrorInfo{
			Code: "INTERNAL_ERROR",
		},
	})
}
