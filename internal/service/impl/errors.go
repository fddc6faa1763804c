package impl

import "errors"

var (
	ErrEmptyPassword = errors.New("empty password")
	ErrBadHashFormat = errors.New("malformed password hash")
)
