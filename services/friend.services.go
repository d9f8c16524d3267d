package services

import (
	"campushub_server/errors"
	"campushub_server/global"
	"campushub_server/helpers"
	"campushub_server/schemas"

	"github.com/gofiber/fiber/v2"
)

// AddFriend links the caller with the user matching the requested name
// and student id, both ways
func AddFriend(c *fiber.Ctx) error {

	req := new(schemas.AddFriendSchema)

	if err := c.BodyParser(req); err != nil {
		return errors.HandleBadJsonError(c)
	}

	if err := global.Validator.Struct(req); err != nil {
		return errors.HandleValidatorError(c, err)
	}

	caller := c.Locals("user").(*schemas.UserSchema)

	target, already, err := helpers.AddFriend(global.Context, global.Users, caller, req.Name, req.StudentID)
	if err != nil {
		return errors.HandleOperationError(c, err)
	}

	if already {
		return helpers.MessageResponse(c, "already friends with '"+target.Name+"'")
	}
	return helpers.MessageResponse(c, "now friends with '"+target.Name+"'")
}

// RemoveFriend unlinks the caller and the named friend, both ways
func RemoveFriend(c *fiber.Ctx) error {

	req := new(schemas.RemoveFriendSchema)

	if err := c.BodyParser(req); err != nil {
		return errors.HandleBadJsonError(c)
	}

	if err := global.Validator.Struct(req); err != nil {
		return errors.HandleValidatorError(c, err)
	}

	caller := c.Locals("user").(*schemas.UserSchema)

	target, err := helpers.RemoveFriend(global.Context, global.Users, caller, req.Username)
	if err != nil {
		return errors.HandleOperationError(c, err)
	}

	return helpers.MessageResponse(c, "removed friend '"+target.Name+"'")
}

// MyFriendList resolves the caller's friend list to current display
// attributes
func MyFriendList(c *fiber.Ctx) error {

	caller := c.Locals("user").(*schemas.UserSchema)

	friends, err := helpers.ListFriends(global.Context, global.Users, caller)
	if err != nil {
		return errors.HandleOperationError(c, err)
	}

	return c.JSON(schemas.FriendListSchema{
		Friends: friends,
	})
}
