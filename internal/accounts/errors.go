package accounts

import "errors"

var (
	// repository errors
	ErrNotFound      = errors.New("account not found")
	ErrAlreadyExists = errors.New("account already exists")

	// service errors
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrValidation         = errors.New("invalid request")
	ErrInternal           = errors.New("internal error")
)
