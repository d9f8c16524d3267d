package routes

import (
	"campushub_server/config"
	"campushub_server/middlewares"
	"campushub_server/socket"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/websocket/v2"
)

// SetRoutes sets all routes of server
func SetRoutes(app *fiber.App) {
	api := app.Group(config.Config.Version)
	app.Use(cors.New(cors.Config{
		AllowCredentials: true,
	}))

	app.Use("/stream", middlewares.AuthenticateStream, websocket.New(socket.Stream))

	userRoutes(api)
	catalogRoutes(api)
}
