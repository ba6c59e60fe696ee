package services

import (
	"errors"
	"testing"
	"time"

	"github.com/jcoronel/bantay/core"
	"github.com/jcoronel/bantay/pkg/crypto"
)

func newTestAuth(t *testing.T) (*AuthService, *FakeSessionStore, *TestClock) {
	t.Helper()

	directory, err := NewDirectory([]core.SeedAccount{seedAlice()}, crypto.NewArgon2())
	if err != nil {
		t.Fatalf("NewDirectory() unexpected error: %v", err)
	}

	sessions := NewFakeSessionStore()
	clock := NewTestClock(time.Date(2026, 8, 30, 9, 0, 0, 0, time.UTC))
	return NewAuthService(directory, sessions, crypto.NewArgon2(), clock.Now), sessions, clock
}

// Requirement: Authenticate trims inputs and rejects blank credentials before
// touching the directory.
func TestAuthService_EmptyCredentials(t *testing.T) {
	tests := []struct {
		name     string
		username string
		password string
	}{
		{name: "both empty", username: "", password: ""},
		{name: "whitespace username", username: "   ", password: "SecurePass123!"},
		{name: "whitespace password", username: "alice", password: "\t\n"},
	}

	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			service, _, _ := newTestAuth(t)

			_, err := service.Authenticate("ctx-1", test.username, test.password)
			if !errors.Is(err, core.ErrEmptyCredentials) {
				t.Fatalf("Authenticate() error = %v, want ErrEmptyCredentials", err)
			}
		})
	}
}

// Requirement: unknown usernames and wrong passwords are indistinguishable -
// same error kind, same message text - so responses cannot enumerate accounts.
func TestAuthService_EnumerationProof(t *testing.T) {
	service, _, _ := newTestAuth(t)

	_, unknownErr := service.Authenticate("ctx-1", "nouser", "x")
	_, wrongErr := service.Authenticate("ctx-1", "alice", "WrongPass!")

	if !errors.Is(unknownErr, core.ErrInvalidCredentials) {
		t.Fatalf("unknown user error = %v, want ErrInvalidCredentials", unknownErr)
	}
	if !errors.Is(wrongErr, core.ErrInvalidCredentials) {
		t.Fatalf("wrong password error = %v, want ErrInvalidCredentials", wrongErr)
	}
	if unknownErr.Error() != wrongErr.Error() {
		t.Errorf("error messages differ: %q vs %q", unknownErr, wrongErr)
	}
}

// Requirement: successful authentication returns a descriptor mirroring the
// account, stamps the login time, and installs the session slot.
func TestAuthService_Success(t *testing.T) {
	service, sessions, clock := newTestAuth(t)

	descriptor, err := service.Authenticate("ctx-1", "alice", "SecurePass123!")
	if err != nil {
		t.Fatalf("Authenticate() unexpected error: %v", err)
	}

	if descriptor.Username != "alice" || descriptor.Role != "Administrator" || descriptor.DisplayName != "Alice Admin" {
		t.Errorf("descriptor = %+v, should mirror the account", descriptor)
	}
	if !descriptor.LoginAt.Equal(clock.Now()) {
		t.Errorf("LoginAt = %v, want %v", descriptor.LoginAt, clock.Now())
	}

	stored, err := sessions.Get("ctx-1")
	if err != nil || stored != descriptor {
		t.Errorf("session slot should hold the returned descriptor, got %v (%v)", stored, err)
	}

	if _, ok := service.CurrentSession("ctx-1"); !ok {
		t.Error("CurrentSession() should report the new session")
	}
}

// Requirement: re-authenticating refreshes the login time and supersedes the
// previous descriptor; the recorded time never decreases.
func TestAuthService_ReAuthenticateSupersedes(t *testing.T) {
	service, sessions, clock := newTestAuth(t)

	first, err := service.Authenticate("ctx-1", "alice", "SecurePass123!")
	if err != nil {
		t.Fatalf("Authenticate() unexpected error: %v", err)
	}

	clock.Advance(time.Minute)

	second, err := service.Authenticate("ctx-1", "alice", "SecurePass123!")
	if err != nil {
		t.Fatalf("Authenticate() unexpected error: %v", err)
	}

	if !second.LoginAt.After(first.LoginAt) {
		t.Errorf("second LoginAt %v should be after first %v", second.LoginAt, first.LoginAt)
	}

	stored, _ := sessions.Get("ctx-1")
	if stored != second {
		t.Error("session slot should hold the superseding descriptor")
	}
}

// Requirement: Logout empties the slot; a repeated logout is harmless.
func TestAuthService_Logout(t *testing.T) {
	service, _, _ := newTestAuth(t)

	if _, err := service.Authenticate("ctx-1", "alice", "SecurePass123!"); err != nil {
		t.Fatalf("Authenticate() unexpected error: %v", err)
	}

	if err := service.Logout("ctx-1"); err != nil {
		t.Fatalf("Logout() unexpected error: %v", err)
	}
	if _, ok := service.CurrentSession("ctx-1"); ok {
		t.Error("CurrentSession() should be empty after logout")
	}
	if err := service.Logout("ctx-1"); err != nil {
		t.Errorf("second Logout() should be a no-op, got %v", err)
	}
}

// Requirement: sessions are scoped per caller context; logging in on one
// context never touches another context's slot.
func TestAuthService_ContextIsolation(t *testing.T) {
	service, _, _ := newTestAuth(t)

	if _, err := service.Authenticate("ctx-a", "alice", "SecurePass123!"); err != nil {
		t.Fatalf("Authenticate() unexpected error: %v", err)
	}

	if _, ok := service.CurrentSession("ctx-b"); ok {
		t.Error("ctx-b should have no session")
	}
	if _, ok := service.CurrentSession("ctx-a"); !ok {
		t.Error("ctx-a should keep its session")
	}
}
