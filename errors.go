package leapauth

import "errors"

// Config errors (host-side wiring)
var (
	ErrStorageRequired = errors.New("storage adapter is required")
)
