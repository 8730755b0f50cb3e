package response

import "github.com/gofiber/fiber/v3"

// The public contract uses bare payloads ({"jobs": [...]}, {"job": ...}) and
// {"error": "..."} for every failure, so there is no envelope here.

type ErrorBody struct {
	Error string `json:"error"`
}

const (
	MessageBadRequest          = "Bad request"
	MessageNotFound            = "Not found"
	MessageInternalServerError = "Internal server error"
)

func JSON(c fiber.Ctx, status int, payload any) error {
	return c.Status(normalizeStatus(status)).JSON(payload)
}

func Error(c fiber.Ctx, status int, message string) error {
	st := normalizeStatus(status)
	if message == "" {
		message = defaultMessageForStatus(st)
	}
	return c.Status(st).JSON(ErrorBody{Error: message})
}

func normalizeStatus(status int) int {
	if status < 100 || status > 599 {
		return fiber.StatusInternalServerError
	}
	return status
}

func defaultMessageForStatus(status int) string {
	switch status {
	case fiber.StatusBadRequest:
		return MessageBadRequest
	case fiber.StatusNotFound:
		return MessageNotFound
	default:
		return MessageInternalServerError
	}
}
