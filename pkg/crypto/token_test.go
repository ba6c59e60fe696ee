package crypto

import "testing"

// Requirement: a minted pair links the raw token to its server-side hash, and
// the raw token never equals the hash.
func TestMintContextToken(t *testing.T) {
	pair, err := MintContextToken()
	if err != nil {
		t.Fatalf("MintContextToken() unexpected error: %v", err)
	}

	if len(pair.Token) != DefaultTokenLength {
		t.Errorf("token length = %d, want %d", len(pair.Token), DefaultTokenLength)
	}
	if pair.Hash == pair.Token {
		t.Error("hash must differ from the raw token")
	}
	if HashToken(pair.Token) != pair.Hash {
		t.Error("hash should be derivable from the raw token")
	}
}

// Requirement: two mints never collide.
func TestMintContextToken_Unique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		pair, err := MintContextToken()
		if err != nil {
			t.Fatalf("MintContextToken() unexpected error: %v", err)
		}
		if seen[pair.Token] {
			t.Fatalf("duplicate token minted after %d iterations", i)
		}
		seen[pair.Token] = true
	}
}
