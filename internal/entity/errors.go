package entity

import "errors"

var (
	// Image errors
	ErrImageNotFound       = errors.New("image not found")
	ErrInvalidParameters   = errors.New("invalid parameters")
	ErrUpstreamUnavailable = errors.New("upstream unavailable")
	ErrEmptyUpload         = errors.New("image file is required")

	// User errors
	ErrUserNotFound       = errors.New("user not found")
	ErrUserAlreadyExists  = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("wrong username or password")

	// General errors
	ErrUnauthorized = errors.New("unauthorized access")
)
