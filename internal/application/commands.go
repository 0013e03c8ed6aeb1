package application

// RegisterCommand creates a new account. Password bounds follow the server's
// bcrypt limit.
type RegisterCommand struct {
	Email       string `validate:"required,email"`
	Password    string `validate:"required,min=8,max=72"`
	DisplayName string `validate:"required,min=1,max=60"`
}

type LoginCommand struct {
	Email    string `validate:"required,email"`
	Password string `validate:"required"`
}

type UpdateDisplayNameCommand struct {
	DisplayName string `validate:"required,min=1,max=60"`
}

type ChangePasswordCommand struct {
	Current string `validate:"required"`
	Next    string `validate:"required,min=8,max=72,nefield=Current"`
}
