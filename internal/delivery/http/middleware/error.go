package middleware

import (
	"errors"
	"log"

	"job-board/internal/pkg/response"

	"github.com/gofiber/fiber/v3"
)

// AppError carries the classified outcome for the client. Message is a curated
// client-facing string; Cause stays in the logs and never reaches the wire.
type AppError struct {
	StatusCode int
	Message    string
	Cause      error
}

func (e *AppError) Error() string {
	if e == nil {
		return ""
	}
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Cause
}

func NewAppError(statusCode int, message string, cause error) *AppError {
	return &AppError{StatusCode: statusCode, Message: message, Cause: cause}
}

type ErrorMiddleware struct {
	logger *log.Logger
}

func NewErrorMiddleware(logger *log.Logger) *ErrorMiddleware {
	if logger == nil {
		logger = log.Default()
	}
	return &ErrorMiddleware{logger: logger}
}

func (m *ErrorMiddleware) Middleware() fiber.Handler {
	return func(c fiber.Ctx) (err error) {
		defer func() {
			if r := recover(); r != nil {
				m.logger.Printf("panic recovered: %v", r)
				err = response.Error(c, fiber.StatusInternalServerError, response.MessageInternalServerError)
			}
		}()

		err = c.Next()
		if err == nil {
			return nil
		}

		status, msg := m.normalizeError(c, err)
		return response.Error(c, status, msg)
	}
}

func (m *ErrorMiddleware) normalizeError(c fiber.Ctx, err error) (int, string) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		status := appErr.StatusCode
		if status <= 0 {
			status = fiber.StatusInternalServerError
		}
		if status >= 500 {
			m.logger.Printf("request failed | method=%s path=%s status=%d cause=%v",
				c.Method(), c.OriginalURL(), status, appErr.Cause)
		}
		return status, appErr.Message
	}

	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		status := fiberErr.Code
		if status <= 0 {
			status = fiber.StatusInternalServerError
		}
		if status >= 500 {
			m.logger.Printf("request failed | method=%s path=%s status=%d cause=%v",
				c.Method(), c.OriginalURL(), status, fiberErr)
			return status, response.MessageInternalServerError
		}
		return status, fiberErr.Message
	}

	m.logger.Printf("request failed | method=%s path=%s cause=%v", c.Method(), c.OriginalURL(), err)
	return fiber.StatusInternalServerError, response.MessageInternalServerError
}
