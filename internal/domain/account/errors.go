package account

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrUsernameExists     = errors.New("username already taken")
	ErrUserNotFound       = errors.New("user not found")
)
