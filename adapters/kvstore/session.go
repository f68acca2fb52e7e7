package kvstore

import (
	"context"
	"errors"
	"fmt"

	"github.com/leapbw/leapauth/core"
	"github.com/leapbw/leapauth/pkg/kv"
)

func (a *Adapter) SaveCurrent(ctx context.Context, u *core.User) error {
	if err := a.store.Set(ctx, currentKey, u); err != nil {
		return fmt.Errorf("failed to write session: %w", err)
	}
	return nil
}

func (a *Adapter) LoadCurrent(ctx context.Context) (*core.User, error) {
	user := &core.User{}
	if err := a.store.Get(ctx, currentKey, user); err != nil {
		if errors.Is(err, kv.ErrKeyNotFound) {
			return nil, core.ErrSessionNotFound
		}
		return nil, fmt.Errorf("failed to read session: %w", err)
	}
	return user, nil
}

func (a *Adapter) ClearCurrent(ctx context.Context) error {
	if err := a.store.Remove(ctx, currentKey); err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	return nil
}
