// Package middleware contains the HTTP cross-cutting concerns.
package middleware

import (
	"log/slog"
	"net/http"

	deliverycontext "sandy/internal/delivery/context"
	"sandy/internal/delivery/http/response"
	domainerrors "sandy/internal/domain/errors"

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

// HandleHTTPError handles errors as Echo's HTTPErrorHandler.
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	// Prefer the request-scoped logger so error logs carry the request id.
	logger := deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger)
	requestID := deliverycontext.GetRequestID(c)

	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		if appErr.HTTPCode() >= http.StatusInternalServerError {
			logger.Error("Request failed",
				slog.String("request_id", requestID),
				slog.String("code", appErr.ErrorCode()),
				slog.String("details", appErr.Details()),
				slog.String("path", c.Request().URL.Path),
				slog.String("method", c.Request().Method),
			)
		}

		//nolint:errcheck // the response writer error has nowhere to go
		response.Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), appErr.Details())

		return
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		message := http.StatusText(httpErr.Code)
		if msg, ok := httpErr.Message.(string); ok {
			message = msg
		}

		//nolint:errcheck
		response.Error(c, httpErr.Code, "HTTP_ERROR", message, message)

		return
	}

	// Anything unclassified is an internal error; log it and keep the body
	// generic.
	logger.Error("Unhandled error",
		slog.String("request_id", requestID),
		slog.Any("error", err),
		slog.String("path", c.Request().URL.Path),
		slog.String("method", c.Request().Method),
	)

	//nolint:errcheck
	response.InternalServerError(c, "INTERNAL_ERROR", "Internal server error")
}
