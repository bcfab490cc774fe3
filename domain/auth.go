package domain

import "context"

// Credential is the single editor identity, injected from configuration at
// startup. PasswordHash is a bcrypt hash, never the plaintext.
type Credential struct {
	Username     string
	PasswordHash string
}

// Identity is the authenticated caller extracted from a verified token.
type Identity struct {
	Username string
}

type AuthUsecase interface {
	// Login verifies the credential pair and returns a signed bearer token
	// valid for one hour.
	// Returns ErrBadParamInput if either field is empty.
	// Returns ErrInvalidCredentials on any mismatch, with no hint about
	// which field was wrong.
	Login(ctx context.Context, username, password string) (string, error)
}

// TokenVerifier validates an inbound bearer token. Verification is pure
// computation, it never touches storage.
type TokenVerifier interface {
	// Verify returns ErrNoToken for an empty token and ErrInvalidToken for
	// a token with a bad signature, wrong algorithm, or past expiry.
	Verify(token string) (Identity, error)
}
