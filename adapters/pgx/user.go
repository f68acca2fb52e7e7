package pgx

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/leapbw/leapauth/core"
)

// uniqueViolation is the PostgreSQL error code for a unique constraint hit.
const uniqueViolation = "23505"

func (a *Adapter) CreateUser(ctx context.Context, u *core.User) error {
	record, err := json.Marshal(u)
	if err != nil {
		return fmt.Errorf("failed to encode user: %w", err)
	}

	q := `INSERT INTO leap_users (id, omang, record) VALUES ($1, $2, $3)`
	if _, err := a.pool.Exec(ctx, q, u.ID, u.Omang, record); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return core.ErrOmangTaken
		}
		return err
	}
	return nil
}

func (a *Adapter) GetUserByID(ctx context.Context, id string) (*core.User, error) {
	return a.getUser(ctx, `SELECT record FROM leap_users WHERE id = $1`, id)
}

func (a *Adapter) GetUserByOmang(ctx context.Context, omang string) (*core.User, error) {
	return a.getUser(ctx, `SELECT record FROM leap_users WHERE omang = $1`, omang)
}

func (a *Adapter) getUser(ctx context.Context, query, arg string) (*core.User, error) {
	var record []byte
	err := a.pool.QueryRow(ctx, query, arg).Scan(&record)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, core.ErrUserNotFound
		}
		return nil, err
	}

	user := &core.User{}
	if err := json.Unmarshal(record, user); err != nil {
		return nil, fmt.Errorf("failed to decode user: %w", err)
	}
	return user, nil
}

func (a *Adapter) UpdateUser(ctx context.Context, u *core.User) error {
	record, err := json.Marshal(u)
	if err != nil {
		return fmt.Errorf("failed to encode user: %w", err)
	}

	q := `UPDATE leap_users SET omang = $1, record = $2 WHERE id = $3`
	tag, err := a.pool.Exec(ctx, q, u.Omang, record, u.ID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return core.ErrUserNotFound
	}
	return nil
}

func (a *Adapter) DeleteUser(ctx context.Context, id string) error {
	_, err := a.pool.Exec(ctx, `DELETE FROM leap_users WHERE id = $1`, id)
	return err
}
