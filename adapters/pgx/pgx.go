// Package pgx implements the core storage ports on PostgreSQL, for
// deployments where the identity store is shared rather than on-device.
package pgx

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/leapbw/leapauth/core"
)

var _ core.Storage = (*Adapter)(nil)

type Adapter struct {
	pool *pgxpool.Pool
}

func New(pool *pgxpool.Pool) *Adapter {
	return &Adapter{pool: pool}
}

// Migrate creates the tables if they do not exist. The full record is stored
// as jsonb; id and omang are lifted into columns so the database enforces
// omang uniqueness.
func (a *Adapter) Migrate(ctx context.Context) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS leap_users (
			id     text PRIMARY KEY,
			omang  text NOT NULL UNIQUE,
			record jsonb NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS leap_session (
			slot   int PRIMARY KEY DEFAULT 1 CHECK (slot = 1),
			record jsonb NOT NULL
		)`,
	}
	for _, stmt := range statements {
		if _, err := a.pool.Exec(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}
