package core

import "errors"

// Identity errors
var (
	ErrOmangTaken         = errors.New("user already exists with this omang number") // 409 Conflict
	ErrUserNotFound       = errors.New("user not found")                             // 404 Not Found
	ErrInvalidCredentials = errors.New("invalid omang number or password")           // 401 Unauthorized
)

// Session errors
var (
	ErrSessionNotFound  = errors.New("no persisted session") // resolved to the anonymous state
	ErrNotAuthenticated = errors.New("no user is signed in") // 401
)

// Validation errors (client input)
var (
	ErrOmangRequired    = errors.New("omang number is required")          // 400
	ErrPasswordRequired = errors.New("password is required")              // 400
	ErrPasswordTooShort = errors.New("password is too short")             // 400
	ErrPasswordTooLong  = errors.New("password is too long")              // 400
	ErrNameRequired     = errors.New("first and last name are required") // 400
)

const (
	minPasswordLength = 6
	maxPasswordLength = 128
)
