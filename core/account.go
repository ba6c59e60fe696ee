package core

import "time"

// Account represents one registered identity in the user directory
//
// This is the "identity" - who someone is
type Account struct {
	Username     string     `json:"username"`
	PasswordHash string     `json:"-"` // Never expose in JSON
	Role         string     `json:"role"`
	DisplayName  string     `json:"displayName"`
	Email        string     `json:"email"`
	LastLoginAt  *time.Time `json:"lastLoginAt,omitempty"`
}

// SeedAccount is the plaintext declaration an account starts from.
// The directory hashes Password at construction and never keeps it around.
type SeedAccount struct {
	Username    string
	Password    string
	Role        string
	DisplayName string
	Email       string
}
