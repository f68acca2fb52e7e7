package kvstore

import (
	"context"
	"errors"
	"fmt"

	"github.com/leapbw/leapauth/core"
	"github.com/leapbw/leapauth/pkg/kv"
)

func (a *Adapter) CreateUser(ctx context.Context, u *core.User) error {
	var existingID string
	err := a.store.Get(ctx, omangKey(u.Omang), &existingID)
	switch {
	case err == nil:
		return core.ErrOmangTaken
	case !errors.Is(err, kv.ErrKeyNotFound):
		return fmt.Errorf("failed to check omang index: %w", err)
	}

	if err := a.store.Set(ctx, userKey(u.ID), u); err != nil {
		return fmt.Errorf("failed to write user: %w", err)
	}
	if err := a.store.Set(ctx, omangKey(u.Omang), u.ID); err != nil {
		return fmt.Errorf("failed to write omang index: %w", err)
	}
	return nil
}

func (a *Adapter) GetUserByID(ctx context.Context, id string) (*core.User, error) {
	user := &core.User{}
	if err := a.store.Get(ctx, userKey(id), user); err != nil {
		if errors.Is(err, kv.ErrKeyNotFound) {
			return nil, core.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to read user: %w", err)
	}
	return user, nil
}

func (a *Adapter) GetUserByOmang(ctx context.Context, omang string) (*core.User, error) {
	var id string
	if err := a.store.Get(ctx, omangKey(omang), &id); err != nil {
		if errors.Is(err, kv.ErrKeyNotFound) {
			return nil, core.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to read omang index: %w", err)
	}
	return a.GetUserByID(ctx, id)
}

func (a *Adapter) UpdateUser(ctx context.Context, u *core.User) error {
	existing := &core.User{}
	if err := a.store.Get(ctx, userKey(u.ID), existing); err != nil {
		if errors.Is(err, kv.ErrKeyNotFound) {
			return core.ErrUserNotFound
		}
		return fmt.Errorf("failed to read user: %w", err)
	}
	if err := a.store.Set(ctx, userKey(u.ID), u); err != nil {
		return fmt.Errorf("failed to write user: %w", err)
	}
	return nil
}

func (a *Adapter) DeleteUser(ctx context.Context, id string) error {
	user := &core.User{}
	err := a.store.Get(ctx, userKey(id), user)
	switch {
	case errors.Is(err, kv.ErrKeyNotFound):
		return nil
	case err != nil:
		return fmt.Errorf("failed to read user: %w", err)
	}

	if err := a.store.Remove(ctx, userKey(id)); err != nil {
		return fmt.Errorf("failed to remove user: %w", err)
	}
	if err := a.store.Remove(ctx, omangKey(user.Omang)); err != nil {
		return fmt.Errorf("failed to remove omang index: %w", err)
	}
	return nil
}
