package core

import "context"

// Ports define interfaces for external dependencies

// UserStorage is the keyed user table. Implementations must enforce omang
// uniqueness atomically in CreateUser; the manager additionally serializes
// mutating operations so interleaved read-modify-write cycles cannot race.
type UserStorage interface {
	// CreateUser inserts a new record. Returns ErrOmangTaken if a record
	// with the same omang number already exists.
	CreateUser(ctx context.Context, u *User) error

	GetUserByID(ctx context.Context, id string) (*User, error)
	GetUserByOmang(ctx context.Context, omang string) (*User, error)

	// UpdateUser overwrites the record with the matching ID.
	// Returns ErrUserNotFound if it does not exist.
	UpdateUser(ctx context.Context, u *User) error

	// DeleteUser removes the record and its omang index entry.
	DeleteUser(ctx context.Context, id string) error
}

// SessionStorage persists the single current-session slot. The stored record
// is always sanitized; the password hash never reaches this table.
type SessionStorage interface {
	SaveCurrent(ctx context.Context, u *User) error

	// LoadCurrent returns ErrSessionNotFound when no session is persisted.
	// Any other error indicates a storage failure and must not be collapsed
	// into "not found".
	LoadCurrent(ctx context.Context) (*User, error)

	// ClearCurrent is idempotent; clearing an absent session is not an error.
	ClearCurrent(ctx context.Context) error
}

// Storage is the full persistence surface required by the Manager.
type Storage interface {
	UserStorage
	SessionStorage
}
