package http

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"grubdash/internal/core/domain/validation"
	"grubdash/internal/generated/servers"
	"grubdash/internal/pkg/metrics"

	"github.com/labstack/echo/v4"
)

const msgInternal = "Internal server error"

// NewErrorHandler renders every error as {"code","message"}.
//
//   - validation failures: their own status and message
//   - an undecodable body: 400 "Invalid request body"
//   - unknown paths: 404 "Path not found: <path>"
//   - known paths with another method: 405 "<METHOD> not allowed for <path>"
//   - anything else: logged, 500 "Internal server error"
func NewErrorHandler(logger *slog.Logger, failures metrics.Validation) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		status, message := classify(err, c)
		if f, ok := validation.AsFailure(err); ok {
			failures.Failure(f.Kind.String())
		} else if status >= http.StatusInternalServerError {
			logger.ErrorContext(c.Request().Context(), "request failed",
				"method", c.Request().Method,
				"path", c.Request().URL.Path,
				"error", err,
			)
		}

		if c.Request().Method == http.MethodHead {
			err = c.NoContent(status)
		} else {
			err = c.JSON(status, servers.Error{Code: status, Message: message})
		}
		if err != nil {
			logger.Error("failed to write error response", "error", err)
		}
	}
}

func classify(err error, c echo.Context) (int, string) {
	if f, ok := validation.AsFailure(err); ok {
		return f.Status(), f.Message
	}

	if errors.Is(err, ErrInvalidBody) {
		return http.StatusBadRequest, ErrInvalidBody.Error()
	}

	var he *echo.HTTPError
	if errors.As(err, &he) {
		path := c.Request().URL.Path
		switch he.Code {
		case http.StatusNotFound:
			return http.StatusNotFound, "Path not found: " + path
		case http.StatusMethodNotAllowed:
			return http.StatusMethodNotAllowed, fmt.Sprintf("%s not allowed for %s", c.Request().Method, path)
		case http.StatusInternalServerError:
			return http.StatusInternalServerError, msgInternal
		default:
			return he.Code, fmt.Sprint(he.Message)
		}
	}

	return http.StatusInternalServerError, msgInternal
}
