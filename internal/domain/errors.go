package domain

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailTaken         = errors.New("email already registered")

	ErrStudentNotFound    = errors.New("student not found")
	ErrSelfLinkNotAllowed = errors.New("cannot track yourself")
	ErrDuplicateLink      = errors.New("student already linked")
	ErrLinkNotFound       = errors.New("tracking link not found")
	ErrRequestResolved    = errors.New("request already resolved")
	ErrNotYourRequest     = errors.New("request belongs to another student")
	ErrNotYourLink        = errors.New("link belongs to another guardian")
)
