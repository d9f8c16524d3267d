package services

import (
	"campushub_server/errors"
	"campushub_server/global"
	"campushub_server/store"

	"github.com/gofiber/fiber/v2"
)

// SearchCourses returns catalog entries whose name contains the query
func SearchCourses(c *fiber.Ctx) error {

	name := c.Query("timename")
	if name == "" {
		return errors.HandleBadRequestError(c, "timename", "missing")
	}

	courses, err := global.Catalog.SearchCourses(global.Context, name)
	if err != nil {
		return errors.HandleInternalError(c, "courses", "ScyllaDB: "+err.Error())
	}

	return c.JSON(courses)
}

// GetCourse looks up one catalog entry by course number
func GetCourse(c *fiber.Ctx) error {

	number := c.Params("number")

	course, err := global.Catalog.GetCourse(global.Context, number)
	if err != nil {
		if err == store.ErrNotFound {
			return errors.HandleInvalidRequestError(c, "Course", "not found")
		}
		return errors.HandleInternalError(c, "courses", "ScyllaDB: "+err.Error())
	}

	return c.JSON(course)
}
