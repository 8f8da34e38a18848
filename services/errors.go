package services

import "errors"

var (
	// ErrNotFound is returned when an entity lookup by id or username misses
	ErrNotFound = errors.New("record not found")
	// ErrInvalidCredentials is returned on a failed login attempt
	ErrInvalidCredentials = errors.New("invalid username or password")
	// ErrUsernameTaken is returned when registering a duplicate username
	ErrUsernameTaken = errors.New("username already taken")
	// ErrEmailTaken is returned when registering a duplicate email
	ErrEmailTaken = errors.New("email already registered")
	// ErrNoSession is returned when a session cookie no longer maps to a
	// live server-side session
	ErrNoSession = errors.New("session expired or revoked")
)
