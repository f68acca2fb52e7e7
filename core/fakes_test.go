package core

import (
	"context"
	"sync"
)

// FakeStorage is a test-only in-memory implementation of Storage. It stores
// deep copies and exposes error fields for behavior injection.
type FakeStorage struct {
	mu      sync.RWMutex
	users   map[string]*User  // by ID
	byOmang map[string]string // omang -> ID
	current *User

	createErr      error
	getErr         error
	updateErr      error
	deleteErr      error
	saveCurrentErr error
	loadCurrentErr error
	clearErr       error
}

func NewFakeStorage() *FakeStorage {
	return &FakeStorage{
		users:   make(map[string]*User),
		byOmang: make(map[string]string),
	}
}

func cloneUser(u *User) *User {
	if u == nil {
		return nil
	}
	out := *u
	out.Progress.EnrolledPrograms = append([]string(nil), u.Progress.EnrolledPrograms...)
	return &out
}

func (f *FakeStorage) CreateUser(ctx context.Context, u *User) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.createErr != nil {
		return f.createErr
	}
	if _, taken := f.byOmang[u.Omang]; taken {
		return ErrOmangTaken
	}
	f.users[u.ID] = cloneUser(u)
	f.byOmang[u.Omang] = u.ID
	return nil
}

func (f *FakeStorage) GetUserByID(ctx context.Context, id string) (*User, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()

	if f.getErr != nil {
		return nil, f.getErr
	}
	u, ok := f.users[id]
	if !ok {
		return nil, ErrUserNotFound
	}
	return cloneUser(u), nil
}

func (f *FakeStorage) GetUserByOmang(ctx context.Context, omang string) (*User, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()

	if f.getErr != nil {
		return nil, f.getErr
	}
	id, ok := f.byOmang[omang]
	if !ok {
		return nil, ErrUserNotFound
	}
	return cloneUser(f.users[id]), nil
}

func (f *FakeStorage) UpdateUser(ctx context.Context, u *User) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.updateErr != nil {
		return f.updateErr
	}
	if _, ok := f.users[u.ID]; !ok {
		return ErrUserNotFound
	}
	f.users[u.ID] = cloneUser(u)
	return nil
}

func (f *FakeStorage) DeleteUser(ctx context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.deleteErr != nil {
		return f.deleteErr
	}
	if u, ok := f.users[id]; ok {
		delete(f.byOmang, u.Omang)
		delete(f.users, id)
	}
	return nil
}

func (f *FakeStorage) SaveCurrent(ctx context.Context, u *User) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.saveCurrentErr != nil {
		return f.saveCurrentErr
	}
	f.current = cloneUser(u)
	return nil
}

func (f *FakeStorage) LoadCurrent(ctx context.Context) (*User, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()

	if f.loadCurrentErr != nil {
		return nil, f.loadCurrentErr
	}
	if f.current == nil {
		return nil, ErrSessionNotFound
	}
	return cloneUser(f.current), nil
}

func (f *FakeStorage) ClearCurrent(ctx context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.clearErr != nil {
		return f.clearErr
	}
	f.current = nil
	return nil
}

// test helpers

func (f *FakeStorage) UserCount() int {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return len(f.users)
}

func (f *FakeStorage) StoredUser(id string) *User {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return cloneUser(f.users[id])
}

func (f *FakeStorage) CurrentRecord() *User {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return cloneUser(f.current)
}
