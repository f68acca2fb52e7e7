package core

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
)

// Register creates a new account and signs it in.
func (m *Manager) Register(ctx context.Context, input RegisterInput) (*User, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	hash, err := m.passwords.Hash(input.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	id, err := m.ids.Generate()
	if err != nil {
		return nil, fmt.Errorf("failed to generate user ID: %w", err)
	}

	now := time.Now()
	user := &User{
		ID:           id,
		Omang:        input.Omang,
		PasswordHash: hash,

		FirstName:  input.FirstName,
		MiddleName: input.MiddleName,
		LastName:   input.LastName,
		Age:        input.Age,

		District:    input.District,
		Village:     input.Village,
		Ward:        input.Ward,
		PhoneNumber: input.PhoneNumber,

		EducationLevel: input.EducationLevel,
		Institution:    input.Institution,
		FieldOfStudy:   input.FieldOfStudy,
		GraduationYear: input.GraduationYear,

		EmploymentStatus:  input.EmploymentStatus,
		CurrentEmployer:   input.CurrentEmployer,
		JobTitle:          input.JobTitle,
		YearsOfExperience: input.YearsOfExperience,

		Progress: Progress{EnrolledPrograms: []string{}},

		CreatedAt: now,
		UpdatedAt: now,
	}

	// CreateUser enforces omang uniqueness atomically; nothing is persisted
	// when the omang number is already taken.
	if err := m.storage.CreateUser(ctx, user); err != nil {
		if errors.Is(err, ErrOmangTaken) {
			return nil, ErrOmangTaken
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	// Auto-login after registration.
	sanitized := user.Sanitized()
	if err := m.storage.SaveCurrent(ctx, sanitized); err != nil {
		return nil, fmt.Errorf("failed to persist session: %w", err)
	}

	m.setState(State{User: sanitized})
	m.log.Info("user registered", zap.String("user_id", user.ID))
	return sanitized, nil
}

// Login authenticates by omang number and password.
//
// A storage failure surfaces as a distinct error, never as
// ErrInvalidCredentials; "storage is broken" must not read as "wrong
// password".
func (m *Manager) Login(ctx context.Context, omang, password string) (*User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	user, err := m.storage.GetUserByOmang(ctx, omang)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	ok, err := m.passwords.Verify(password, user.PasswordHash)
	if err != nil {
		return nil, fmt.Errorf("failed to verify password: %w", err)
	}
	if !ok {
		return nil, ErrInvalidCredentials
	}

	sanitized := user.Sanitized()
	if err := m.storage.SaveCurrent(ctx, sanitized); err != nil {
		return nil, fmt.Errorf("failed to persist session: %w", err)
	}

	m.setState(State{User: sanitized})
	m.log.Info("user signed in", zap.String("user_id", user.ID))
	return sanitized, nil
}

// Logout clears the persisted session and transitions to the anonymous
// state. The in-memory transition happens even if clearing the persisted
// slot fails; the error is still returned so the caller knows the session
// may be restored on the next start.
func (m *Manager) Logout(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	err := m.storage.ClearCurrent(ctx)
	m.setState(State{User: nil})
	if err != nil {
		m.log.Warn("failed to clear persisted session", zap.Error(err))
		return fmt.Errorf("failed to clear session: %w", err)
	}
	return nil
}

// UpdateProfile applies a partial patch to the signed-in user's profile,
// writing through to the user table and the current-session slot. Returns
// ErrNotAuthenticated while anonymous.
func (m *Manager) UpdateProfile(ctx context.Context, patch ProfileUpdate) (*User, error) {
	return m.mutateCurrent(ctx, func(u *User) {
		patch.apply(u)
	})
}

// EnrollProgram adds a program to the signed-in user's enrolled programs.
// Enrolling twice in the same program is a no-op.
func (m *Manager) EnrollProgram(ctx context.Context, programID string) (*User, error) {
	return m.mutateCurrent(ctx, func(u *User) {
		for _, p := range u.Progress.EnrolledPrograms {
			if p == programID {
				return
			}
		}
		u.Progress.EnrolledPrograms = append(u.Progress.EnrolledPrograms, programID)
	})
}

// CompleteCourse increments the signed-in user's completed-course count and
// awards the given points.
func (m *Manager) CompleteCourse(ctx context.Context, points int) (*User, error) {
	return m.mutateCurrent(ctx, func(u *User) {
		u.Progress.CompletedCourses++
		u.Progress.Points += points
	})
}

// DeleteAccount permanently removes the signed-in user's record and clears
// the session.
func (m *Manager) DeleteAccount(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	current := m.currentLocked()
	if current == nil {
		return ErrNotAuthenticated
	}

	if err := m.storage.DeleteUser(ctx, current.ID); err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	if err := m.storage.ClearCurrent(ctx); err != nil {
		// The record is gone; a dangling session is cleared on next Resolve.
		m.log.Warn("failed to clear session after account deletion", zap.Error(err))
	}

	m.setState(State{User: nil})
	m.log.Info("account deleted", zap.String("user_id", current.ID))
	return nil
}

// mutateCurrent re-reads the signed-in user's full record from the table,
// applies the mutation, and writes the table first and the session slot
// second. If the second write fails the two copies diverge until the next
// Resolve, which re-reads the table.
func (m *Manager) mutateCurrent(ctx context.Context, apply func(*User)) (*User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	current := m.currentLocked()
	if current == nil {
		return nil, ErrNotAuthenticated
	}

	stored, err := m.storage.GetUserByID(ctx, current.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load user: %w", err)
	}

	apply(stored)
	stored.UpdatedAt = time.Now()

	if err := m.storage.UpdateUser(ctx, stored); err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}

	sanitized := stored.Sanitized()
	if err := m.storage.SaveCurrent(ctx, sanitized); err != nil {
		return nil, fmt.Errorf("failed to persist session: %w", err)
	}

	m.setState(State{User: sanitized})
	return sanitized, nil
}
