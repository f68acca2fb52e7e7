// Package kvstore implements the core storage ports on top of any kv.Store.
//
// Layout: each user is its own key (per-key atomic upsert, no whole-table
// read-modify-write), an index key maps omang numbers to user IDs, and a
// single key holds the sanitized current-session record.
//
//	users/<id>      -> core.User (with password hash)
//	omang/<omang>   -> user ID
//	session/current -> sanitized core.User
//
// CreateUser's existence check and insert span two keys and are therefore
// not atomic at the kv layer; the manager serializes mutating operations,
// which restores the uniqueness invariant.
package kvstore

import (
	"github.com/leapbw/leapauth/core"
	"github.com/leapbw/leapauth/pkg/kv"
)

const (
	userKeyPrefix  = "users/"
	omangKeyPrefix = "omang/"
	currentKey     = "session/current"
)

var _ core.Storage = (*Adapter)(nil)

type Adapter struct {
	store kv.Store
}

func New(store kv.Store) *Adapter {
	return &Adapter{store: store}
}

func userKey(id string) string {
	return userKeyPrefix + id
}

func omangKey(omang string) string {
	return omangKeyPrefix + omang
}
