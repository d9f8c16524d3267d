package schemas

import "time"

// UserSchema is the stored user record, keyed by username
type UserSchema struct {
	Username     string
	Name         string
	StudentID    string
	PasswordHash string `json:"-"`
	ProfileImage string
	FriendList   []string
	Timetable    []ScheduleEntrySchema
	Created      time.Time
}

// PublicUserSchema struct
type PublicUserSchema struct {
	Username     string
	Name         string
	StudentID    string
	ProfileImage string
}

// Public strips the private columns off a user record
func (u *UserSchema) Public() PublicUserSchema {
	return PublicUserSchema{
		Username:     u.Username,
		Name:         u.Name,
		StudentID:    u.StudentID,
		ProfileImage: u.ProfileImage,
	}
}

// FriendSchema is one resolved entry of a friend list
type FriendSchema struct {
	Username     string
	Name         string
	StudentID    string
	ProfileImage string
}

// AddFriendSchema struct
type AddFriendSchema struct {
	Name      string `validate:"required,max=20"`
	StudentID string `validate:"required,max=20"`
}

// RemoveFriendSchema struct
type RemoveFriendSchema struct {
	Username string `validate:"required,max=20"`
}

// FriendListSchema struct
type FriendListSchema struct {
	Friends []FriendSchema
}

// SetProfileImageSchema struct
type SetProfileImageSchema struct {
	ImageID int `validate:"required,min=1,max=5"`
}

// ExampleImageSchema struct
type ExampleImageSchema struct {
	ID  int
	URL string
}
