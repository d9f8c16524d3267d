package routes

import (
	"campushub_server/middlewares"
	"campushub_server/services"

	"github.com/gofiber/fiber/v2"
)

func timetableRoutes(users fiber.Router) {
	timetable := users.Group("/timetable")
	timetable.Use(middlewares.Authenticate)

	timetable.Get("/", services.GetTimetable)
	timetable.Post("/add", services.AddCourse)
	timetable.Post("/remove", services.RemoveCourse)
}
