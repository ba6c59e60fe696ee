package services

import (
	"errors"
	"testing"
	"time"

	"github.com/jcoronel/bantay/core"
)

// Requirement: RequireSession denies iff the context's slot is empty, and the
// denial carries the login redirect location.
func TestGuard_RequireSession(t *testing.T) {
	descriptor := &core.SessionDescriptor{
		Username:    "alice",
		Role:        "Administrator",
		DisplayName: "Alice Admin",
		LoginAt:     time.Now(),
	}

	tests := []struct {
		name         string
		loginPath    string
		setup        func(*FakeSessionStore)
		contextID    string
		wantDenied   bool
		wantLocation string
	}{
		{
			name:      "allows context with active session",
			contextID: "ctx-1",
			setup: func(store *FakeSessionStore) {
				_ = store.Put("ctx-1", descriptor)
			},
		},
		{
			name:         "denies empty context with default location",
			contextID:    "ctx-1",
			wantDenied:   true,
			wantLocation: "/login",
		},
		{
			name:         "denies with configured location",
			loginPath:    "/auth/sign-in",
			contextID:    "ctx-1",
			wantDenied:   true,
			wantLocation: "/auth/sign-in",
		},
		{
			name:      "denies other contexts even when one is logged in",
			contextID: "ctx-2",
			setup: func(store *FakeSessionStore) {
				_ = store.Put("ctx-1", descriptor)
			},
			wantDenied:   true,
			wantLocation: "/login",
		},
	}

	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			// Arrange
			store := NewFakeSessionStore()
			if test.setup != nil {
				test.setup(store)
			}
			guard := NewGuard(store, test.loginPath)

			// Act
			got, err := guard.RequireSession(test.contextID)

			// Assert
			if test.wantDenied {
				var denied *core.AccessDenied
				if !errors.As(err, &denied) {
					t.Fatalf("RequireSession() error = %v, want *AccessDenied", err)
				}
				if denied.Location != test.wantLocation {
					t.Errorf("denial location = %q, want %q", denied.Location, test.wantLocation)
				}
				if got != nil {
					t.Error("denied call must not return a descriptor")
				}
				return
			}

			if err != nil {
				t.Fatalf("RequireSession() unexpected error: %v", err)
			}
			if got != descriptor {
				t.Errorf("RequireSession() = %v, want the active descriptor", got)
			}
		})
	}
}

// Requirement: clearing the slot flips the guard back to denial.
func TestGuard_DeniesAfterClear(t *testing.T) {
	store := NewFakeSessionStore()
	guard := NewGuard(store, "")

	_ = store.Put("ctx-1", &core.SessionDescriptor{Username: "alice"})
	if _, err := guard.RequireSession("ctx-1"); err != nil {
		t.Fatalf("RequireSession() unexpected error: %v", err)
	}

	_ = store.Clear("ctx-1")

	var denied *core.AccessDenied
	if _, err := guard.RequireSession("ctx-1"); !errors.As(err, &denied) {
		t.Fatalf("RequireSession() after clear error = %v, want *AccessDenied", err)
	}
}
