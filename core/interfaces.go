package core

import "time"

// Ports define interfaces for external dependencies

// ============================================
// SESSION STORE PORT
// ============================================

// SessionStore holds at most one SessionDescriptor per caller context.
//
// The context id is an opaque token minted by the transport layer (cookie,
// header); the core never interprets it. Putting a descriptor into an occupied
// slot supersedes the previous one. Implementations are free to expire slots
// on their own schedule - callers must treat an expired slot exactly like an
// empty one.
type SessionStore interface {
	Put(contextID string, d *SessionDescriptor) error
	Get(contextID string) (*SessionDescriptor, error)
	Clear(contextID string) error
}

// ============================================
// CLOCK PORT
// ============================================

// Clock supplies wall-clock time so tests can pin it.
type Clock func() time.Time
