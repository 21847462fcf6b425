package service

import "errors"

var (
	ErrInvalidInput       = errors.New("invalid input")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUnknownUser        = errors.New("unknown user")
	ErrCodeExpired        = errors.New("two-steps code expired")
	ErrCodeIncorrect      = errors.New("two-steps code incorrect")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrUploadFailed       = errors.New("image upload failed")
)
