// Package leapauth is the identity and session core of the LEAP
// youth-development platform: registration, sign-in, a single persisted
// local session, profile updates, and the navigation gate that chooses
// between the authenticated and unauthenticated flows.
package leapauth

import (
	"go.uber.org/zap"

	"github.com/leapbw/leapauth/core"
	"github.com/leapbw/leapauth/pkg/crypto"
	"github.com/leapbw/leapauth/pkg/kv"
)

// interfaces
type (
	Storage        = core.Storage
	UserStorage    = core.UserStorage
	SessionStorage = core.SessionStorage

	Store = kv.Store

	PasswordHandler = crypto.PasswordHandler
)

// structs
type (
	Manager = core.Manager
	Gate    = core.Gate

	User          = core.User
	Progress      = core.Progress
	State         = core.State
	RegisterInput = core.RegisterInput
	ProfileUpdate = core.ProfileUpdate
)

type Graph = core.Graph

const (
	GraphLoading         = core.GraphLoading
	GraphUnauthenticated = core.GraphUnauthenticated
	GraphAuthenticated   = core.GraphAuthenticated
)

const defaultBasePath = "/api/auth"

// Constructors & helpers (convenience re-exports)
var (
	NewManager = core.NewManager
	NewGate    = core.NewGate
	NewArgon2  = crypto.NewArgon2
	Decide     = core.Decide
)

var (
	ErrOmangTaken         = core.ErrOmangTaken
	ErrUserNotFound       = core.ErrUserNotFound
	ErrInvalidCredentials = core.ErrInvalidCredentials
)

var (
	ErrSessionNotFound  = core.ErrSessionNotFound
	ErrNotAuthenticated = core.ErrNotAuthenticated
)

var (
	ErrOmangRequired    = core.ErrOmangRequired
	ErrPasswordRequired = core.ErrPasswordRequired
	ErrPasswordTooShort = core.ErrPasswordTooShort
	ErrPasswordTooLong  = core.ErrPasswordTooLong
	ErrNameRequired     = core.ErrNameRequired
)

var (
	ErrKeyNotFound = kv.ErrKeyNotFound
)

// HTTPAdapter mounts the auth routes on a host framework.
type HTTPAdapter interface {
	RegisterRoutes(a *Auth) error
}

// Config wires the library together. Storage is required; everything else
// has a sensible default.
type Config struct {
	Storage core.Storage

	// Optional config
	PasswordHasher crypto.PasswordHandler
	Logger         *zap.Logger
	HTTP           HTTPAdapter
	BasePath       string
}

// Auth bundles the session manager and navigation gate for one process.
type Auth struct {
	Manager  *core.Manager
	Gate     *core.Gate
	BasePath string
}

// New validates the configuration, applies defaults, and mounts HTTP routes
// when an adapter is provided. Callers must invoke Auth.Manager.Resolve once
// at process start to restore any persisted session.
func New(config Config) (*Auth, error) {
	if config.Storage == nil {
		return nil, ErrStorageRequired
	}

	// Set Defaults

	passwordHasher := config.PasswordHasher
	if passwordHasher == nil {
		passwordHasher = crypto.NewArgon2()
	}

	basePath := config.BasePath
	if basePath == "" {
		basePath = defaultBasePath
	}

	manager := core.NewManager(config.Storage, passwordHasher, config.Logger)

	auth := &Auth{
		Manager:  manager,
		Gate:     core.NewGate(manager),
		BasePath: basePath,
	}

	if config.HTTP != nil {
		if err := config.HTTP.RegisterRoutes(auth); err != nil {
			return nil, err
		}
	}

	return auth, nil
}
