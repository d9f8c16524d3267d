package schemas

// RegisterSchema struct
type RegisterSchema struct {
	Name            string `validate:"required,max=20"`
	StudentID       string `validate:"required,max=20"`
	Username        string `validate:"required,max=20"`
	Password        string `validate:"required,min=8,max=72"`
	ConfirmPassword string `validate:"required"`
}

// LoginSchema struct
type LoginSchema struct {
	Username string `validate:"required,max=20"`
	Password string `validate:"required"`
}

// LoginResponseSchema struct
type LoginResponseSchema struct {
	Message string
	User    PublicUserSchema
	Token   string
}
