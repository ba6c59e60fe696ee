package services

import (
	"fmt"
	"sync"
	"time"

	"github.com/jcoronel/bantay/core"
	"github.com/jcoronel/bantay/pkg/crypto"
)

// Directory is the in-memory registry of known accounts. All accounts are
// created at construction from a fixed seed set; the only runtime mutation
// is RecordLogin.
type Directory struct {
	mu       sync.RWMutex
	accounts map[string]*core.Account
}

// NewDirectory hashes each seed password and builds the registry.
func NewDirectory(seeds []core.SeedAccount, passwords crypto.PasswordHandler) (*Directory, error) {
	if len(seeds) == 0 {
		return nil, core.ErrNoSeedAccounts
	}

	accounts := make(map[string]*core.Account, len(seeds))
	for _, seed := range seeds {
		if _, exists := accounts[seed.Username]; exists {
			return nil, fmt.Errorf("%w: %q", core.ErrDuplicateSeedAccount, seed.Username)
		}

		hash, err := passwords.Hash(seed.Password)
		if err != nil {
			return nil, fmt.Errorf("failed to hash password for %q: %w", seed.Username, err)
		}

		accounts[seed.Username] = &core.Account{
			Username:     seed.Username,
			PasswordHash: hash,
			Role:         seed.Role,
			DisplayName:  seed.DisplayName,
			Email:        seed.Email,
		}
	}

	return &Directory{accounts: accounts}, nil
}

// Lookup returns a copy of the account, or core.ErrAccountNotFound. Callers
// must not distinguish this from a wrong-password failure in anything they
// surface externally.
func (d *Directory) Lookup(username string) (*core.Account, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	account, ok := d.accounts[username]
	if !ok {
		return nil, core.ErrAccountNotFound
	}

	copied := *account
	if account.LastLoginAt != nil {
		at := *account.LastLoginAt
		copied.LastLoginAt = &at
	}
	return &copied, nil
}

// RecordLogin stamps the account's last-login time. The timestamp never moves
// backwards, so concurrent logins settle on the most recent one.
func (d *Directory) RecordLogin(username string, at time.Time) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	account, ok := d.accounts[username]
	if !ok {
		return core.ErrAccountNotFound
	}

	if account.LastLoginAt == nil || at.After(*account.LastLoginAt) {
		stamped := at
		account.LastLoginAt = &stamped
	}
	return nil
}

// Snapshot counts accounts and how many have logged in at least once.
func (d *Directory) Snapshot() core.HealthSnapshot {
	d.mu.RLock()
	defer d.mu.RUnlock()

	withHistory := 0
	for _, account := range d.accounts {
		if account.LastLoginAt != nil {
			withHistory++
		}
	}

	return core.HealthSnapshot{
		AccountCount:          len(d.accounts),
		UsersWithLoginHistory: withHistory,
	}
}
