package user

import "errors"

var (
	// ErrNotFound is returned when no user matches the given credentials.
	ErrNotFound = errors.New("user not found")
	// ErrAlreadyExists is returned when the username or email is already taken.
	ErrAlreadyExists = errors.New("user already exists")
)

// User is a registered account. Password holds a bcrypt hash.
type User struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"-"`
}
