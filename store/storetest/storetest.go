// Package storetest provides in-memory store implementations for tests.
package storetest

import (
	"context"
	"strings"
	"sync"

	"campushub_server/schemas"
	"campushub_server/store"
)

// Store is an in-memory UserStore and CourseStore. Records are copied on
// the way in and out so callers cannot mutate stored state by aliasing.
type Store struct {
	mu      sync.Mutex
	users   map[string]*schemas.UserSchema
	courses map[string]*schemas.CourseSchema

	// PutUserErr, when set, is consulted before every PutUser to let a
	// test fail one side of a two-record update.
	PutUserErr func(username string) error
}

// New builds an empty Store
func New() *Store {
	return &Store{
		users:   make(map[string]*schemas.UserSchema),
		courses: make(map[string]*schemas.CourseSchema),
	}
}

func copyUser(user *schemas.UserSchema) *schemas.UserSchema {
	clone := *user
	clone.FriendList = append([]string(nil), user.FriendList...)
	clone.Timetable = append([]schemas.ScheduleEntrySchema(nil), user.Timetable...)
	return &clone
}

// AddUser seeds a user record
func (s *Store) AddUser(user *schemas.UserSchema) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users[user.Username] = copyUser(user)
}

// AddCourse seeds a catalog entry
func (s *Store) AddCourse(course *schemas.CourseSchema) {
	s.mu.Lock()
	defer s.mu.Unlock()
	clone := *course
	s.courses[course.Number] = &clone
}

// GetUser implements store.UserStore
func (s *Store) GetUser(ctx context.Context, username string) (*schemas.UserSchema, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	user, ok := s.users[username]
	if !ok {
		return nil, store.ErrNotFound
	}
	return copyUser(user), nil
}

// FindUserByNameID implements store.UserStore
func (s *Store) FindUserByNameID(ctx context.Context, name string, studentID string) (*schemas.UserSchema, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, user := range s.users {
		if user.Name == name && user.StudentID == studentID {
			return copyUser(user), nil
		}
	}
	return nil, store.ErrNotFound
}

// ListUsers implements store.UserStore
func (s *Store) ListUsers(ctx context.Context) ([]schemas.PublicUserSchema, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	users := []schemas.PublicUserSchema{}
	for _, user := range s.users {
		users = append(users, user.Public())
	}
	return users, nil
}

// CreateUser implements store.UserStore
func (s *Store) CreateUser(ctx context.Context, user *schemas.UserSchema) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.users[user.Username]; ok {
		return store.ErrExists
	}
	s.users[user.Username] = copyUser(user)
	return nil
}

// PutUser implements store.UserStore
func (s *Store) PutUser(ctx context.Context, user *schemas.UserSchema) error {
	if s.PutUserErr != nil {
		if err := s.PutUserErr(user.Username); err != nil {
			return err
		}
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users[user.Username] = copyUser(user)
	return nil
}

// GetCourse implements store.CourseStore
func (s *Store) GetCourse(ctx context.Context, number string) (*schemas.CourseSchema, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	course, ok := s.courses[number]
	if !ok {
		return nil, store.ErrNotFound
	}
	clone := *course
	return &clone, nil
}

// SearchCourses implements store.CourseStore
func (s *Store) SearchCourses(ctx context.Context, name string) ([]schemas.CourseSchema, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	matches := []schemas.CourseSchema{}
	for _, course := range s.courses {
		if strings.Contains(course.Name, name) {
			matches = append(matches, *course)
		}
	}
	return matches, nil
}
