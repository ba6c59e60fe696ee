package services

import (
	"sync"

	"github.com/jcoronel/bantay/core"
)

// MessageLedger is the append-only log of accepted contact submissions.
// Sequence ids start at 1, are assigned under the lock, and are never reused,
// so concurrent appends always produce a gapless permutation of 1..N.
type MessageLedger struct {
	mu      sync.RWMutex
	entries []*core.ContactSubmission
	clock   core.Clock
}

func NewMessageLedger(clock core.Clock) *MessageLedger {
	return &MessageLedger{clock: clock}
}

// Append stores a validated submission attributed to submitter, or to the
// anonymous sentinel when submitter is empty. Callers are responsible for
// validating fields first; the ledger itself accepts anything.
func (l *MessageLedger) Append(fields core.ContactFields, submitter string) *core.ContactSubmission {
	if submitter == "" {
		submitter = core.AnonymousSubmitter
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	submission := &core.ContactSubmission{
		ID:          len(l.entries) + 1,
		Name:        fields.Name,
		Email:       fields.Email,
		Subject:     fields.Subject,
		Message:     fields.Message,
		SubmittedAt: l.clock(),
		Submitter:   submitter,
	}

	l.entries = append(l.entries, submission)
	return submission
}

// Submissions returns a snapshot of the ledger in append order. Entries are
// never mutated after acceptance, so sharing the pointers is safe.
func (l *MessageLedger) Submissions() []*core.ContactSubmission {
	l.mu.RLock()
	defer l.mu.RUnlock()

	snapshot := make([]*core.ContactSubmission, len(l.entries))
	copy(snapshot, l.entries)
	return snapshot
}

// Len reports the number of accepted submissions.
func (l *MessageLedger) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.entries)
}
