package helpers

import (
	Errors "errors"
	"fmt"
	"strings"
	"time"

	"campushub_server/errors"
	"campushub_server/global"
	"campushub_server/schemas"
	"campushub_server/store"

	"github.com/go-redis/redis/v8"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt"
)

// GenerateJWT generates a jwt token with a username claim
func GenerateJWT(username string) (string, error) {
	claims := jwt.MapClaims{}
	claims["username"] = username
	claims["exp"] = time.Now().Add(global.AccessTokenDuration).Unix()
	jt := jwt.NewWithClaims(jwt.SigningMethodRS256, claims)
	return jt.SignedString(global.JwtKey)
}

// ParseJWT parses a jwt to its username claim. An expired token returns
// the "expired" sentinel with no error.
func ParseJWT(jwtString string) (string, error) {
	token, err := jwt.Parse(jwtString, func(token *jwt.Token) (interface{}, error) {
		return global.JwtParseKey, nil
	})
	if err != nil {
		if validationErr, ok := err.(*jwt.ValidationError); ok && validationErr.Errors&jwt.ValidationErrorExpired != 0 {
			return "expired", nil
		}
		return "", err
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return "", Errors.New("invalid claims")
	}
	username, ok := claims["username"].(string)
	if !ok {
		return "", Errors.New("missing username claim")
	}
	return username, nil
}

// BearerToken extracts the request credential from the token header or
// the Authorization header, tolerating a scheme prefix on either.
func BearerToken(c *fiber.Ctx) string {
	token := string(c.Request().Header.Peek("token"))
	if token == "" {
		token = string(c.Request().Header.Peek("Authorization"))
	}
	if cut := strings.TrimPrefix(token, "Bearer "); cut != token {
		return cut
	}
	return token
}

// ResolveIdentity maps a request credential to a stored user record.
func ResolveIdentity(c *fiber.Ctx) (*schemas.UserSchema, error) {

	token := BearerToken(c)
	if token == "" {
		return nil, errors.Operation(errors.KindUnauthenticated, "Token", "missing")
	}

	username, err := ParseJWT(token)
	if err != nil {
		return nil, errors.Operation(errors.KindUnauthorized, "Token", "invalid")
	}
	if username == "expired" {
		return nil, errors.Operation(errors.KindUnauthorized, "Token", "expired")
	}

	user, err := global.Users.GetUser(global.Context, username)
	if err != nil {
		if err == store.ErrNotFound {
			return nil, errors.Operation(errors.KindNotFound, "User", "not found")
		}
		return nil, errors.Operation(errors.KindStoreFailure, "users", err.Error())
	}
	return user, nil
}

// GenerateAndRefreshTokens stores a fresh refresh token in redis under the
// session and sets the token response headers
func GenerateAndRefreshTokens(c *fiber.Ctx, username string, sessionID string) (string, error) {

	refreshToken, err := RandomTokenString(40)
	if err != nil {
		return "", errors.HandleInternalError(c, "refresh_token", "hex token error")
	}
	expireAt := time.Now().UTC().Add(global.RefreshTokenDuration).Unix()

	record := map[string]interface{}{
		"token":    refreshToken,
		"username": username,
		"ip":       c.IP(),
	}

	_, err = global.RedisClient.Pipelined(global.Context, func(pipe redis.Pipeliner) error {
		if err := pipe.HSet(global.Context, "refreshtokens:"+sessionID, record).Err(); err != nil {
			return err
		}
		return pipe.Expire(global.Context, "refreshtokens:"+sessionID, global.RefreshTokenDuration).Err()
	})
	if err != nil {
		return "", errors.HandleInternalError(c, "set_refresh_tokens", "Redis: "+err.Error())
	}

	accessToken, err := GenerateJWT(username)
	if err != nil {
		return "", errors.HandleInternalError(c, "jwt", "jwt: "+err.Error())
	}

	c.Response().Header.Add("x-refresh-token", refreshToken)
	c.Response().Header.Add("x-refresh-token-expire", fmt.Sprint(expireAt))
	c.Response().Header.Add("x-access-token", accessToken)
	return accessToken, nil
}
