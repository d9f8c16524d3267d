package routes

import (
	"campushub_server/helpers"
	"campushub_server/middlewares"
	"campushub_server/services"

	"github.com/gofiber/fiber/v2"
)

func userRoutes(api fiber.Router) {
	users := api.Group("/users")

	users.Get("/", services.GetAllUsers)
	users.Post("/register", services.Register)
	users.Post("/login", services.Login)
	users.Post("/refresh", services.Refresh)
	users.Get("/example-images", services.ExampleImages)

	users.Get("/authorize", middlewares.Authenticate, helpers.OKResponse)
	users.Get("/profile", middlewares.Authenticate, services.GetProfileImage)
	users.Post("/profile", middlewares.Authenticate, services.SetProfileImage)

	friendRoutes(users)
	timetableRoutes(users)
}
