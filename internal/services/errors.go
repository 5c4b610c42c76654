package services

import "errors"

// Sentinel errors returned by the services. Handlers map these to HTTP
// statuses; anything else becomes a 500 with the raw message.
var (
	ErrNotFound             = errors.New("resource not found")
	ErrForbidden            = errors.New("unauthorized")
	ErrEmailTaken           = errors.New("user already exists")
	ErrBadCredentials       = errors.New("invalid email or password")
	ErrDuplicateApplication = errors.New("already applied for this job")
	ErrInvalidStatus        = errors.New("invalid application status")
)
