package bantay

import (
	"time"

	"github.com/jcoronel/bantay/core"
	"github.com/jcoronel/bantay/pkg/cache"
	"github.com/jcoronel/bantay/pkg/crypto"
	"github.com/jcoronel/bantay/services"
)

// interfaces
type (
	SessionStore = core.SessionStore

	PasswordHandler = crypto.PasswordHandler
)

// structs
type (
	Account           = core.Account
	SeedAccount       = core.SeedAccount
	SessionDescriptor = core.SessionDescriptor
	ContactFields     = core.ContactFields
	ContactSubmission = core.ContactSubmission
	HealthSnapshot    = core.HealthSnapshot
	DashboardData     = core.DashboardData

	AccessDenied    = core.AccessDenied
	ValidationError = core.ValidationError
)

const (
	AnonymousSubmitter = core.AnonymousSubmitter

	defaultSessionTTL = 24 * time.Hour
)

// Constructors & helpers (convenience re-exports)
var (
	NewSessionStore = cache.NewSessionStore
	NewArgon2       = crypto.NewArgon2
)

var (
	ErrEmptyCredentials   = core.ErrEmptyCredentials
	ErrInvalidCredentials = core.ErrInvalidCredentials
	ErrNoSession          = core.ErrNoSession
)

var (
	ErrNoSeedAccounts       = core.ErrNoSeedAccounts
	ErrDuplicateSeedAccount = core.ErrDuplicateSeedAccount
)

// Config assembles a portal core. Accounts is the only required field.
type Config struct {
	// Accounts seeds the user directory. Passwords are hashed during New and
	// never retained in plain form.
	Accounts []SeedAccount

	// Optional config
	Sessions       SessionStore
	SessionTTL     time.Duration // used by the default session store
	PasswordHasher PasswordHandler
	Clock          core.Clock
	LoginPath      string // where denied callers are redirected, default "/login"
}

// Bantay bundles the portal core: directory, authenticator, guard, validator
// and ledger, sharing one session store. Construct it once at process start
// and hand it to the transport layer.
type Bantay struct {
	Directory *services.Directory
	Auth      *services.AuthService
	Guard     *services.Guard
	Validator services.ContactValidator
	Ledger    *services.MessageLedger
	Sessions  SessionStore
	LoginPath string
}

func New(config Config) (*Bantay, error) {
	if len(config.Accounts) == 0 {
		return nil, ErrNoSeedAccounts
	}

	// Set Defaults

	clock := config.Clock
	if clock == nil {
		clock = time.Now
	}

	passwordHasher := config.PasswordHasher
	if passwordHasher == nil {
		passwordHasher = crypto.NewArgon2()
	}

	sessions := config.Sessions
	if sessions == nil {
		ttl := config.SessionTTL
		if ttl == 0 {
			ttl = defaultSessionTTL
		}
		sessions = cache.NewSessionStore(cache.Config{TTL: ttl})
	}

	loginPath := config.LoginPath
	if loginPath == "" {
		loginPath = "/login"
	}

	directory, err := services.NewDirectory(config.Accounts, passwordHasher)
	if err != nil {
		return nil, err
	}

	return &Bantay{
		Directory: directory,
		Auth:      services.NewAuthService(directory, sessions, passwordHasher, clock),
		Guard:     services.NewGuard(sessions, loginPath),
		Validator: services.ContactValidator{},
		Ledger:    services.NewMessageLedger(clock),
		Sessions:  sessions,
		LoginPath: loginPath,
	}, nil
}

// Authenticate validates the credential pair and installs a session for the
// caller context on success.
func (b *Bantay) Authenticate(contextID, username, password string) (*SessionDescriptor, error) {
	return b.Auth.Authenticate(contextID, username, password)
}

// CurrentSession reports the caller's active session, if any.
func (b *Bantay) CurrentSession(contextID string) (*SessionDescriptor, bool) {
	return b.Auth.CurrentSession(contextID)
}

// Logout empties the caller's session slot.
func (b *Bantay) Logout(contextID string) error {
	return b.Auth.Logout(contextID)
}

// RequireSession gates protected resources; denial carries the login redirect.
func (b *Bantay) RequireSession(contextID string) (*SessionDescriptor, error) {
	return b.Guard.RequireSession(contextID)
}

// ValidateContactForm returns nil when the fields are accepted, or a
// *ValidationError listing every violation in field order.
func (b *Bantay) ValidateContactForm(fields ContactFields) error {
	if violations := b.Validator.Validate(fields); len(violations) > 0 {
		return &ValidationError{Violations: violations}
	}
	return nil
}

// SubmitContact validates the fields and, if accepted, appends them to the
// ledger attributed to the caller's session (or anonymously).
func (b *Bantay) SubmitContact(contextID string, fields ContactFields) (*ContactSubmission, error) {
	fields = b.Validator.Normalize(fields)

	if violations := b.Validator.Validate(fields); len(violations) > 0 {
		return nil, &ValidationError{Violations: violations}
	}

	submitter := ""
	if descriptor, ok := b.Auth.CurrentSession(contextID); ok {
		submitter = descriptor.Username
	}

	return b.Ledger.Append(fields, submitter), nil
}

// HealthSnapshot summarizes directory state for health checks.
func (b *Bantay) HealthSnapshot() HealthSnapshot {
	return b.Directory.Snapshot()
}

// Dashboard assembles the protected dashboard figures for the caller.
func (b *Bantay) Dashboard(contextID string) (*DashboardData, error) {
	descriptor, err := b.Guard.RequireSession(contextID)
	if err != nil {
		return nil, err
	}

	account, err := b.Directory.Lookup(descriptor.Username)
	if err != nil {
		return nil, err
	}

	snapshot := b.Directory.Snapshot()
	return &DashboardData{
		TotalUsers:    snapshot.AccountCount,
		Role:          descriptor.Role,
		LoginTime:     descriptor.LoginAt,
		PreviousLogin: account.LastLoginAt,
	}, nil
}

// Profile returns the caller's account, gated by the guard.
func (b *Bantay) Profile(contextID string) (*Account, error) {
	descriptor, err := b.Guard.RequireSession(contextID)
	if err != nil {
		return nil, err
	}
	return b.Directory.Lookup(descriptor.Username)
}
