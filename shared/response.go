package shared

import (
	"errors"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
)

type Response struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// JSONAPI is the sonic configuration shared by the fiber app
// (JSONEncoder/JSONDecoder) and the response helpers.
var JSONAPI = sonic.Config{
	UseNumber:        true,
	EscapeHTML:       false,
	SortMapKeys:      false,
	CompactMarshaler: true,
}.Froze()

func ResponseJSON(c *fiber.Ctx, httpCode int, message string, data interface{}) error {
	return c.Status(httpCode).JSON(Response{
		Code:    httpCode,
		Message: message,
		Data:    data,
	})
}

func ResponseOK(c *fiber.Ctx, data interface{}) error {
	return ResponseJSON(c, fiber.StatusOK, "Success", data)
}

func ResponseCreated(c *fiber.Ctx, data interface{}) error {
	return ResponseJSON(c, fiber.StatusCreated, "Created", data)
}

func ResponseNoContent(c *fiber.Ctx) error {
	return c.SendStatus(fiber.StatusNoContent)
}

// ErrorHandler is the app-level fiber error handler. It translates AppError
// values into their status codes and hides everything else behind a 500.
func ErrorHandler(c *fiber.Ctx, err error) error {
	if appErr, ok := GetAppError(err); ok {
		return ResponseJSON(c, appErr.StatusCode, appErr.Message, nil)
	}

	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		return ResponseJSON(c, fiberErr.Code, fiberErr.Message, nil)
	}

	return ResponseJSON(c, fiber.StatusInternalServerError, "Internal Server Error", nil)
}
