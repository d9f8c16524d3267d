package services

import (
	"fmt"
	"time"

	"campushub_server/errors"
	"campushub_server/global"
	"campushub_server/schemas"

	"github.com/gofiber/fiber/v2"
)

// GetAllUsers lists the public directory of registered users
func GetAllUsers(c *fiber.Ctx) error {

	users, err := global.Users.ListUsers(global.Context)
	if err != nil {
		return errors.HandleInternalError(c, "users", "ScyllaDB: "+err.Error())
	}

	return c.JSON(users)
}

// GetProfileImage returns the caller's profile image reference
func GetProfileImage(c *fiber.Ctx) error {

	user := c.Locals("user").(*schemas.UserSchema)

	return c.JSON(struct {
		ProfileImage string
	}{
		ProfileImage: user.ProfileImage,
	})
}

// SetProfileImage switches the caller's profile image to one of the
// example images
func SetProfileImage(c *fiber.Ctx) error {

	req := new(schemas.SetProfileImageSchema)

	if err := c.BodyParser(req); err != nil {
		return errors.HandleBadJsonError(c)
	}

	if err := global.Validator.Struct(req); err != nil {
		return errors.HandleValidatorError(c, err)
	}

	user := c.Locals("user").(*schemas.UserSchema)
	user.ProfileImage = fmt.Sprintf("/images/%d.jpg", req.ImageID)

	if err := global.Users.PutUser(global.Context, user); err != nil {
		return errors.HandleInternalError(c, "users", "ScyllaDB: "+err.Error())
	}

	return c.JSON(struct {
		Message  string
		ImageURL string
	}{
		Message:  "profile image updated",
		ImageURL: user.ProfileImage,
	})
}

// ExampleImages lists the selectable profile images as presigned bucket
// links
func ExampleImages(c *fiber.Ctx) error {

	images := make([]schemas.ExampleImageSchema, 0, 5)
	for i := 1; i <= 5; i++ {
		object := fmt.Sprintf("%d.jpg", i)
		url, err := global.MinIOClient.PresignedGetObject(global.Context, global.ProfileImageBucket, object, time.Hour, nil)
		if err != nil {
			return errors.HandleInternalError(c, "profile_images", "MinIO: "+err.Error())
		}
		images = append(images, schemas.ExampleImageSchema{
			ID:  i,
			URL: url.String(),
		})
	}

	return c.JSON(images)
}
