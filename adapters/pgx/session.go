package pgx

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/leapbw/leapauth/core"
)

func (a *Adapter) SaveCurrent(ctx context.Context, u *core.User) error {
	record, err := json.Marshal(u)
	if err != nil {
		return fmt.Errorf("failed to encode session: %w", err)
	}

	q := `INSERT INTO leap_session (slot, record) VALUES (1, $1)
	      ON CONFLICT (slot) DO UPDATE SET record = EXCLUDED.record`
	_, err = a.pool.Exec(ctx, q, record)
	return err
}

func (a *Adapter) LoadCurrent(ctx context.Context) (*core.User, error) {
	var record []byte
	err := a.pool.QueryRow(ctx, `SELECT record FROM leap_session WHERE slot = 1`).Scan(&record)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, core.ErrSessionNotFound
		}
		return nil, err
	}

	user := &core.User{}
	if err := json.Unmarshal(record, user); err != nil {
		return nil, fmt.Errorf("failed to decode session: %w", err)
	}
	return user, nil
}

func (a *Adapter) ClearCurrent(ctx context.Context) error {
	_, err := a.pool.Exec(ctx, `DELETE FROM leap_session WHERE slot = 1`)
	return err
}
