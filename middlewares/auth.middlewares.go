package middlewares

import (
	"campushub_server/errors"
	"campushub_server/global"
	"campushub_server/helpers"
	"campushub_server/store"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
)

// Authenticate resolves the request credential to a stored user and makes
// it available to the handler chain
func Authenticate(c *fiber.Ctx) error {

	user, err := helpers.ResolveIdentity(c)
	if err != nil {
		return errors.HandleOperationError(c, err)
	}

	c.Locals("username", user.Username)
	c.Locals("user", user)
	return c.Next()
}

// AuthenticateStream authenticates websocket upgrade requests with a
// query token
func AuthenticateStream(c *fiber.Ctx) error {

	if websocket.IsWebSocketUpgrade(c) {
		token := c.Query("token")
		if token == "" {
			return errors.HandleUnauthenticatedError(c)
		}

		username, err := helpers.ParseJWT(token)
		if err != nil || username == "expired" {
			return errors.HandleUnauthorizedError(c, "invalid")
		}

		if _, err := global.Users.GetUser(global.Context, username); err != nil {
			if err == store.ErrNotFound {
				return errors.HandleInvalidRequestError(c, "User", "not found")
			}
			return errors.HandleInternalError(c, "users", err.Error())
		}

		c.Locals("username", username)
		return c.Next()
	}

	return errors.HandleInternalError(c, "websocket_upgrade", fiber.ErrUpgradeRequired.Error())
}
