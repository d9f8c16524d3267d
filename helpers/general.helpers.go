package helpers

import (
	"campushub_server/schemas"
	"crypto/rand"
	"encoding/hex"

	"github.com/gofiber/fiber/v2"
)

// RandomTokenString generates random hex token
func RandomTokenString(n int) (string, error) {
	bytes := make([]byte, n)
	if _, err := rand.Read(bytes); err != nil {
		return "", err
	}
	return hex.EncodeToString(bytes), nil
}

// OKResponse sends a successful request/response
func OKResponse(c *fiber.Ctx) error {
	return c.JSON(schemas.Message{
		Message: "OK",
	})
}

// MessageResponse sends a human-readable success message
func MessageResponse(c *fiber.Ctx, message string) error {
	return c.JSON(schemas.Message{
		Message: message,
	})
}
