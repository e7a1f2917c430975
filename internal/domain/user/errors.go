package user

import "errors"

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrDuplicateID        = errors.New("user id already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidPIN         = errors.New("pin must be exactly 4 digits")
	ErrInvalidRole        = errors.New("invalid role")
	ErrNotAllowed         = errors.New("not allowed")
	ErrSelfDelete         = errors.New("cannot delete own account")
)
