package services

import (
	"campushub_server/errors"
	"campushub_server/global"
	"campushub_server/helpers"
	"campushub_server/schemas"

	"github.com/gofiber/fiber/v2"
)

// AddCourse adds a catalog course to the caller's timetable, rejecting
// duplicates and time conflicts
func AddCourse(c *fiber.Ctx) error {

	req := new(schemas.AddCourseSchema)

	if err := c.BodyParser(req); err != nil {
		return errors.HandleBadJsonError(c)
	}

	if err := global.Validator.Struct(req); err != nil {
		return errors.HandleValidatorError(c, err)
	}

	user := c.Locals("user").(*schemas.UserSchema)

	timetable, err := helpers.AddCourse(global.Context, global.Users, global.Catalog, user, req.Number)
	if err != nil {
		return errors.HandleOperationError(c, err)
	}

	return c.JSON(schemas.TimetableSchema{
		Timetable: timetable,
	})
}

// RemoveCourse drops a course from the caller's timetable
func RemoveCourse(c *fiber.Ctx) error {

	req := new(schemas.RemoveCourseSchema)

	if err := c.BodyParser(req); err != nil {
		return errors.HandleBadJsonError(c)
	}

	if err := global.Validator.Struct(req); err != nil {
		return errors.HandleValidatorError(c, err)
	}

	user := c.Locals("user").(*schemas.UserSchema)

	timetable, err := helpers.RemoveCourse(global.Context, global.Users, user, req.Number)
	if err != nil {
		return errors.HandleOperationError(c, err)
	}

	return c.JSON(schemas.TimetableSchema{
		Timetable: timetable,
	})
}

// GetTimetable returns the caller's stored timetable verbatim
func GetTimetable(c *fiber.Ctx) error {

	user := c.Locals("user").(*schemas.UserSchema)

	timetable := user.Timetable
	if timetable == nil {
		timetable = []schemas.ScheduleEntrySchema{}
	}

	return c.JSON(schemas.TimetableSchema{
		Timetable: timetable,
	})
}
