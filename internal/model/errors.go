package model

import "errors"

// Common errors used across the application
var (
	// User errors
	ErrUserNotFound  = errors.New("user not found")
	ErrUsernameTaken = errors.New("username already exists")
	ErrEmailTaken    = errors.New("email already exists")

	// Game record errors
	ErrInvalidDifficulty = errors.New("invalid difficulty")
	ErrInvalidRecord     = errors.New("invalid game record")
)
