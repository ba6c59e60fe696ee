package crypto

import (
	"crypto/sha256"
	"encoding/hex"
)

const (
	// DefaultTokenLength is the character length of a minted context token.
	DefaultTokenLength = 43 // ~258 bits over the 64-char alphabet
)

// TokenPair carries the two forms of a caller-context token: the raw value
// handed to the client (cookie) and the hash the server keys its state by.
// The raw token never touches server-side storage.
type TokenPair struct {
	Token string // value returned to client
	Hash  string // value used as context id server-side
}

// MintContextToken generates a fresh caller-context token pair.
func MintContextToken() (*TokenPair, error) {
	gen, err := NewNanoID("")
	if err != nil {
		return nil, err
	}

	token, err := gen.Generate(DefaultTokenLength)
	if err != nil {
		return nil, err
	}

	return &TokenPair{
		Token: token,
		Hash:  HashToken(token),
	}, nil
}

// HashToken derives the server-side context id from a raw client token. The
// store is keyed by this hash, so lookups need no separate verification step.
func HashToken(token string) string {
	hash := sha256.Sum256([]byte(token))
	return hex.EncodeToString(hash[:])
}
