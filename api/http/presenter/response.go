package presenter

import "github.com/gofiber/fiber/v2"

// ErrorResponse is the error envelope: a short message, never internal detail.
type ErrorResponse struct {
	Message string `json:"message"`
}

// MessageResponse is the success envelope for operations without a payload.
type MessageResponse struct {
	Message string `json:"message"`
}

func JSON(c *fiber.Ctx, status int, v any) error {
	return c.Status(status).JSON(v)
}

func Message(c *fiber.Ctx, status int, message string) error {
	return JSON(c, status, MessageResponse{Message: message})
}

func Error(c *fiber.Ctx, status int, message string) error {
	return JSON(c, status, ErrorResponse{Message: message})
}
