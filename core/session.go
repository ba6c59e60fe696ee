package core

import "time"

// SessionDescriptor is proof of a successful authentication
//
// It is scoped to a single caller context: one connected client holds at most
// one descriptor at a time, and a new login supersedes the previous one.
type SessionDescriptor struct {
	Username    string    `json:"username"`
	Role        string    `json:"role"`
	DisplayName string    `json:"displayName"`
	LoginAt     time.Time `json:"loginAt"`
}
