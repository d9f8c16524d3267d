package global

import (
	"context"
	"crypto/rsa"
	"log"
	"time"

	"campushub_server/store"

	"github.com/go-playground/validator/v10"
	"github.com/go-redis/redis/v8"
	"github.com/gocql/gocql"
	minio "github.com/minio/minio-go/v7"
)

// InternalLogger for errors that should never happen in normal circumstances
var InternalLogger *log.Logger

// MonitorLogger for expected client-side failures worth watching
var MonitorLogger *log.Logger

// Session for global cassandra cql session
var Session *gocql.Session

// RedisClient for global redis queries
var RedisClient *redis.Client

// MinIOClient for global min io access
var MinIOClient *minio.Client

// Users is the user record store
var Users store.UserStore

// Catalog is the read-only course catalog
var Catalog store.CourseStore

// JwtKey used to sign jwt tokens
var JwtKey *rsa.PrivateKey

// JwtParseKey used to parse jwt tokens
var JwtParseKey *rsa.PublicKey

// AccessTokenDuration determines the length of an access token
var AccessTokenDuration time.Duration = time.Hour * 1

// RefreshTokenDuration determines the length of a refresh token (60 days)
var RefreshTokenDuration time.Duration = time.Hour * 24 * 60

// ProfileImageBucket holds the selectable profile images
var ProfileImageBucket = "profile-images"

// Context is the default context
var Context = context.Background()

// Validator validates incoming bodys of data
var Validator = validator.New()
