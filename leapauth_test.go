package leapauth

import (
	"context"
	"errors"
	"testing"

	"github.com/leapbw/leapauth/adapters/kvstore"
	"github.com/leapbw/leapauth/pkg/crypto"
	"github.com/leapbw/leapauth/pkg/kv/memory"
)

// low-cost hasher keeps the end-to-end test fast
func testHasher() *crypto.Argon2 {
	return &crypto.Argon2{Memory: 8 * 1024, Iterations: 1, Parallelism: 1, SaltLength: 16, KeyLength: 32}
}

// Requirement: New rejects a configuration without a storage adapter.
func TestNew_RequiresStorage(t *testing.T) {
	if _, err := New(Config{}); !errors.Is(err, ErrStorageRequired) {
		t.Fatalf("New() error = %v, want ErrStorageRequired", err)
	}
}

// Requirement: New applies defaults and the resulting Auth supports the full
// register, restart, login, update, logout cycle over a kv-backed store.
func TestNew_EndToEnd(t *testing.T) {
	ctx := context.Background()
	store := memory.New()

	auth, err := New(Config{Storage: kvstore.New(store), PasswordHasher: testHasher()})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if auth.BasePath != "/api/auth" {
		t.Errorf("BasePath = %q, want default /api/auth", auth.BasePath)
	}

	if err := auth.Manager.Resolve(ctx); err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if auth.Gate.Current() != GraphUnauthenticated {
		t.Fatalf("Gate.Current() = %v, want unauthenticated", auth.Gate.Current())
	}

	user, err := auth.Manager.Register(ctx, RegisterInput{
		Omang:     "123456789",
		Password:  "SecurePass123!",
		FirstName: "Kago",
		LastName:  "Mokoena",
		District:  "Gaborone",
	})
	if err != nil {
		t.Fatalf("Register() error = %v", err)
	}
	if auth.Gate.Current() != GraphAuthenticated {
		t.Error("Gate should report authenticated after registration")
	}

	// simulate restart over the same store
	restarted, err := New(Config{Storage: kvstore.New(store), PasswordHasher: testHasher()})
	if err != nil {
		t.Fatalf("New() after restart error = %v", err)
	}
	if err := restarted.Manager.Resolve(ctx); err != nil {
		t.Fatalf("Resolve() after restart error = %v", err)
	}
	restored := restarted.Manager.Current()
	if restored == nil || restored.ID != user.ID {
		t.Fatalf("restart restored = %+v, want user %q", restored, user.ID)
	}

	if err := restarted.Manager.Logout(ctx); err != nil {
		t.Fatalf("Logout() error = %v", err)
	}

	if _, err := restarted.Manager.Login(ctx, "123456789", "wrong-password"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("Login() with wrong password error = %v, want ErrInvalidCredentials", err)
	}
	signedIn, err := restarted.Manager.Login(ctx, "123456789", "SecurePass123!")
	if err != nil {
		t.Fatalf("Login() error = %v", err)
	}
	if signedIn.PasswordHash != "" {
		t.Error("Login() should return a sanitized record")
	}
}
