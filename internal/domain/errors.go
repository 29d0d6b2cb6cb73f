package domain

import "errors"

var (
	ErrSlotNotFound       = errors.New("slot not found")
	ErrNotFound           = errors.New("not found")
	ErrInvalidCredentials = errors.New("email and password are required")
	ErrInvalidInput       = errors.New("invalid input")
	ErrNoSession          = errors.New("no authenticated session")
	ErrSlotUnavailable    = errors.New("slot storage unavailable")
)
