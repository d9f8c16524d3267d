package store

import (
	"context"
	Errors "errors"

	"campushub_server/schemas"
)

// ErrNotFound reports an absent record, distinct from a store failure.
var ErrNotFound = Errors.New("store: record not found")

// ErrExists reports a create that lost to an existing record.
var ErrExists = Errors.New("store: record already exists")

// UserStore is the record-store contract for user records. Every put
// persists the whole record; there is no partial-column update and no
// cross-record transaction.
type UserStore interface {
	GetUser(ctx context.Context, username string) (*schemas.UserSchema, error)
	FindUserByNameID(ctx context.Context, name string, studentID string) (*schemas.UserSchema, error)
	ListUsers(ctx context.Context) ([]schemas.PublicUserSchema, error)
	CreateUser(ctx context.Context, user *schemas.UserSchema) error
	PutUser(ctx context.Context, user *schemas.UserSchema) error
}

// CourseStore is the read-only catalog contract.
type CourseStore interface {
	GetCourse(ctx context.Context, number string) (*schemas.CourseSchema, error)
	SearchCourses(ctx context.Context, name string) ([]schemas.CourseSchema, error)
}
