package core

import "time"

// AnonymousSubmitter attributes ledger entries created without an active session.
const AnonymousSubmitter = "Anonymous"

// ContactFields is one contact-form submission as received from the caller.
type ContactFields struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// ContactSubmission is a validated, accepted contact message held by the ledger.
//
// IDs are assigned by the ledger, start at 1, and are never reused.
type ContactSubmission struct {
	ID          int       `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Subject     string    `json:"subject"`
	Message     string    `json:"message"`
	SubmittedAt time.Time `json:"submittedAt"`
	Submitter   string    `json:"submitter"`
}
