package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jcoronel/bantay/core"
	"github.com/jcoronel/bantay/pkg/crypto"
)

// AuthService validates credentials against the directory and manages the
// caller's session slot.
type AuthService struct {
	directory *Directory
	sessions  core.SessionStore
	passwords crypto.PasswordHandler
	clock     core.Clock
}

func NewAuthService(directory *Directory, sessions core.SessionStore, passwords crypto.PasswordHandler, clock core.Clock) *AuthService {
	return &AuthService{
		directory: directory,
		sessions:  sessions,
		passwords: passwords,
		clock:     clock,
	}
}

// Authenticate checks the credential pair and, on success, records the login
// time and installs a fresh descriptor in the caller's session slot,
// superseding any previous one.
//
// Unknown usernames and wrong passwords both fail with ErrInvalidCredentials -
// same kind, same message - so responses cannot be used to enumerate accounts.
func (s *AuthService) Authenticate(contextID, username, password string) (*core.SessionDescriptor, error) {
	username = strings.TrimSpace(username)
	password = strings.TrimSpace(password)

	if username == "" || password == "" {
		return nil, core.ErrEmptyCredentials
	}

	account, err := s.directory.Lookup(username)
	if err != nil {
		if errors.Is(err, core.ErrAccountNotFound) {
			return nil, core.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to look up account: %w", err)
	}

	valid, err := s.passwords.Verify(password, account.PasswordHash)
	if err != nil {
		return nil, fmt.Errorf("failed to verify password: %w", err)
	}
	if !valid {
		return nil, core.ErrInvalidCredentials
	}

	now := s.clock()
	if err := s.directory.RecordLogin(username, now); err != nil {
		return nil, fmt.Errorf("failed to record login: %w", err)
	}

	descriptor := &core.SessionDescriptor{
		Username:    account.Username,
		Role:        account.Role,
		DisplayName: account.DisplayName,
		LoginAt:     now,
	}

	if err := s.sessions.Put(contextID, descriptor); err != nil {
		return nil, fmt.Errorf("failed to store session: %w", err)
	}

	return descriptor, nil
}

// CurrentSession reports the caller's active descriptor, if any.
func (s *AuthService) CurrentSession(contextID string) (*core.SessionDescriptor, bool) {
	descriptor, err := s.sessions.Get(contextID)
	if err != nil || descriptor == nil {
		return nil, false
	}
	return descriptor, true
}

// Logout empties the caller's session slot. Logging out twice is harmless.
func (s *AuthService) Logout(contextID string) error {
	if err := s.sessions.Clear(contextID); err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	return nil
}
