package routes

import (
	"campushub_server/services"

	"github.com/gofiber/fiber/v2"
)

func catalogRoutes(api fiber.Router) {
	times := api.Group("/times")

	times.Get("/search", services.SearchCourses)
	times.Get("/:number", services.GetCourse)
}
