package services

import (
	"regexp"
	"time"

	"campushub_server/errors"
	"campushub_server/global"
	"campushub_server/helpers"
	"campushub_server/schemas"
	"campushub_server/store"

	"github.com/aidarkhanov/nanoid/v2"
	"github.com/go-redis/redis/v8"
	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
)

var validUsername = regexp.MustCompile(`^[a-zA-Z0-9_]+$`)

// Register creates a new user account
func Register(c *fiber.Ctx) error {

	req := new(schemas.RegisterSchema)

	if err := c.BodyParser(req); err != nil {
		return errors.HandleBadJsonError(c)
	}

	if err := global.Validator.Struct(req); err != nil {
		return errors.HandleValidatorError(c, err)
	}

	if !validUsername.MatchString(req.Username) {
		return errors.HandleBadRequestError(c, "Username", "regex")
	}

	if req.Password != req.ConfirmPassword {
		return errors.HandleBadRequestError(c, "ConfirmPassword", "mismatch")
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return errors.HandleInternalError(c, "password", "hashing error")
	}

	user := &schemas.UserSchema{
		Username:     req.Username,
		Name:         req.Name,
		StudentID:    req.StudentID,
		PasswordHash: string(passwordHash),
		ProfileImage: "/images/default.jpg",
		FriendList:   []string{},
		Timetable:    []schemas.ScheduleEntrySchema{},
		Created:      time.Now().UTC(),
	}

	if err := global.Users.CreateUser(global.Context, user); err != nil {
		if err == store.ErrExists {
			return errors.HandleInvalidRequestError(c, "Username", "exists")
		}
		return errors.HandleInternalError(c, "users", "ScyllaDB: "+err.Error())
	}

	return c.Status(fiber.StatusCreated).JSON(struct {
		Message string
		User    schemas.PublicUserSchema
	}{
		Message: "register success",
		User:    user.Public(),
	})
}

// Login checks credentials and issues tokens
func Login(c *fiber.Ctx) error {

	req := new(schemas.LoginSchema)

	if err := c.BodyParser(req); err != nil {
		return errors.HandleBadJsonError(c)
	}

	if err := global.Validator.Struct(req); err != nil {
		return errors.HandleValidatorError(c, err)
	}

	user, err := global.Users.GetUser(global.Context, req.Username)
	if err != nil {
		if err == store.ErrNotFound {
			return errors.HandleInvalidRequestError(c, "Username", "invalid")
		}
		return errors.HandleInternalError(c, "users", "ScyllaDB: "+err.Error())
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return errors.HandleInvalidRequestError(c, "Password", "invalid")
	}

	sessionID, err := nanoid.New()
	if err != nil {
		return errors.HandleInternalError(c, "session_id", err.Error())
	}
	c.Response().Header.Add("x-session-id", sessionID)

	accessToken, err := helpers.GenerateAndRefreshTokens(c, user.Username, sessionID)
	if accessToken == "" {
		return err
	}

	return c.JSON(schemas.LoginResponseSchema{
		Message: user.Name + " logged in",
		User:    user.Public(),
		Token:   accessToken,
	})
}

// Refresh exchanges a stored refresh token for a new access token
func Refresh(c *fiber.Ctx) error {

	sessionID := string(c.Request().Header.Peek("x-session-id"))
	refreshToken := string(c.Request().Header.Peek("x-refresh-token"))
	if sessionID == "" || refreshToken == "" {
		return errors.HandleUnauthenticatedError(c)
	}

	record, err := global.RedisClient.HGetAll(global.Context, "refreshtokens:"+sessionID).Result()
	if err != nil {
		if err == redis.Nil {
			return errors.HandleInvalidRequestError(c, "RefreshToken", "invalid")
		}
		return errors.HandleInternalError(c, "get_refresh_tokens", "Redis: "+err.Error())
	}

	if record["token"] == "" || record["token"] != refreshToken {
		return errors.HandleInvalidRequestError(c, "RefreshToken", "invalid")
	}

	accessToken, err := helpers.GenerateJWT(record["username"])
	if err != nil {
		return errors.HandleInternalError(c, "jwt", "jwt: "+err.Error())
	}

	c.Response().Header.Add("x-access-token", accessToken)
	return c.JSON(struct {
		Token string
	}{
		Token: accessToken,
	})
}
