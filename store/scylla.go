package store

import (
	"context"
	"strings"
	"time"

	"campushub_server/schemas"

	"github.com/gocql/gocql"
	jsoniter "github.com/json-iterator/go"
	cache "github.com/patrickmn/go-cache"
)

const catalogListKey = "catalog:list"

// ScyllaUserStore implements UserStore on a ScyllaDB session.
type ScyllaUserStore struct {
	session *gocql.Session
}

// NewScyllaUserStore wraps a session
func NewScyllaUserStore(session *gocql.Session) *ScyllaUserStore {
	return &ScyllaUserStore{session: session}
}

const userColumns = "username, name, student_id, password_hash, profile_image, friend_list, timetable, created"

func scanUser(scanner interface {
	Scan(dest ...interface{}) error
}) (*schemas.UserSchema, error) {
	var (
		user      schemas.UserSchema
		timetable string
	)
	err := scanner.Scan(
		&user.Username,
		&user.Name,
		&user.StudentID,
		&user.PasswordHash,
		&user.ProfileImage,
		&user.FriendList,
		&timetable,
		&user.Created,
	)
	if err != nil {
		if err == gocql.ErrNotFound {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if timetable != "" {
		if err := jsoniter.UnmarshalFromString(timetable, &user.Timetable); err != nil {
			return nil, err
		}
	}
	return &user, nil
}

// GetUser reads one user record by username
func (s *ScyllaUserStore) GetUser(ctx context.Context, username string) (*schemas.UserSchema, error) {
	query := s.session.Query(`
		SELECT `+userColumns+` FROM users WHERE username = ? LIMIT 1;`,
		username,
	).WithContext(ctx)
	return scanUser(query)
}

// FindUserByNameID reads one user record by display name and student id
func (s *ScyllaUserStore) FindUserByNameID(ctx context.Context, name string, studentID string) (*schemas.UserSchema, error) {
	query := s.session.Query(`
		SELECT `+userColumns+` FROM users WHERE name = ? AND student_id = ? LIMIT 1 ALLOW FILTERING;`,
		name,
		studentID,
	).WithContext(ctx)
	return scanUser(query)
}

// ListUsers reads the public columns of every user record
func (s *ScyllaUserStore) ListUsers(ctx context.Context) ([]schemas.PublicUserSchema, error) {
	iter := s.session.Query(`
		SELECT username, name, student_id, profile_image FROM users;`,
	).WithContext(ctx).Iter()

	users := []schemas.PublicUserSchema{}
	var user schemas.PublicUserSchema
	for iter.Scan(&user.Username, &user.Name, &user.StudentID, &user.ProfileImage) {
		users = append(users, user)
	}
	if err := iter.Close(); err != nil {
		return nil, err
	}
	return users, nil
}

// CreateUser inserts a new user record, refusing to clobber an existing
// username
func (s *ScyllaUserStore) CreateUser(ctx context.Context, user *schemas.UserSchema) error {
	timetable, err := jsoniter.MarshalToString(user.Timetable)
	if err != nil {
		return err
	}

	applied, err := s.session.Query(`
		INSERT INTO users (`+userColumns+`)
		VALUES(?,?,?,?,?,?,?,?)
		IF NOT EXISTS;`,
		user.Username,
		user.Name,
		user.StudentID,
		user.PasswordHash,
		user.ProfileImage,
		user.FriendList,
		timetable,
		user.Created,
	).WithContext(ctx).MapScanCAS(make(map[string]interface{}))

	if err != nil {
		return err
	}
	if !applied {
		return ErrExists
	}
	return nil
}

// PutUser upserts the whole user record
func (s *ScyllaUserStore) PutUser(ctx context.Context, user *schemas.UserSchema) error {
	timetable, err := jsoniter.MarshalToString(user.Timetable)
	if err != nil {
		return err
	}

	return s.session.Query(`
		INSERT INTO users (`+userColumns+`)
		VALUES(?,?,?,?,?,?,?,?);`,
		user.Username,
		user.Name,
		user.StudentID,
		user.PasswordHash,
		user.ProfileImage,
		user.FriendList,
		timetable,
		user.Created,
	).WithContext(ctx).Exec()
}

// ScyllaCourseStore implements CourseStore on a ScyllaDB session. The
// catalog is immutable reference data, so reads go through a short-lived
// in-process cache.
type ScyllaCourseStore struct {
	session *gocql.Session
	cache   *cache.Cache
}

// NewScyllaCourseStore wraps a session
func NewScyllaCourseStore(session *gocql.Session) *ScyllaCourseStore {
	return &ScyllaCourseStore{
		session: session,
		cache:   cache.New(10*time.Minute, 30*time.Minute),
	}
}

const courseColumns = "number, credits, name, grade, category, time, location, department, professor, language"

// GetCourse reads one catalog entry by course number
func (s *ScyllaCourseStore) GetCourse(ctx context.Context, number string) (*schemas.CourseSchema, error) {
	if cached, ok := s.cache.Get("course:" + number); ok {
		course := cached.(schemas.CourseSchema)
		return &course, nil
	}

	var course schemas.CourseSchema
	err := s.session.Query(`
		SELECT `+courseColumns+` FROM courses WHERE number = ? LIMIT 1;`,
		number,
	).WithContext(ctx).Scan(
		&course.Number,
		&course.Credits,
		&course.Name,
		&course.Grade,
		&course.Category,
		&course.Time,
		&course.Location,
		&course.Department,
		&course.Professor,
		&course.Language,
	)
	if err != nil {
		if err == gocql.ErrNotFound {
			return nil, ErrNotFound
		}
		return nil, err
	}

	s.cache.SetDefault("course:"+number, course)
	return &course, nil
}

// SearchCourses returns catalog entries whose name contains the pattern.
// The match is case-sensitive. The full catalog scan is cached; Scylla has
// no substring predicate, so filtering happens here.
func (s *ScyllaCourseStore) SearchCourses(ctx context.Context, name string) ([]schemas.CourseSchema, error) {
	courses, err := s.listCourses(ctx)
	if err != nil {
		return nil, err
	}

	matches := []schemas.CourseSchema{}
	for _, course := range courses {
		if strings.Contains(course.Name, name) {
			matches = append(matches, course)
		}
	}
	return matches, nil
}

func (s *ScyllaCourseStore) listCourses(ctx context.Context) ([]schemas.CourseSchema, error) {
	if cached, ok := s.cache.Get(catalogListKey); ok {
		return cached.([]schemas.CourseSchema), nil
	}

	iter := s.session.Query(`
		SELECT ` + courseColumns + ` FROM courses;`,
	).WithContext(ctx).Iter()

	courses := []schemas.CourseSchema{}
	var course schemas.CourseSchema
	for iter.Scan(
		&course.Number,
		&course.Credits,
		&course.Name,
		&course.Grade,
		&course.Category,
		&course.Time,
		&course.Location,
		&course.Department,
		&course.Professor,
		&course.Language,
	) {
		courses = append(courses, course)
	}
	if err := iter.Close(); err != nil {
		return nil, err
	}

	s.cache.SetDefault(catalogListKey, courses)
	return courses, nil
}
