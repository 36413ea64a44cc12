package auth

import (
	"errors"
	"fmt"
)

var (
	// ErrHashing covers failures of the hashing algorithm itself, including
	// structurally invalid digests. Distinct from a plain password mismatch.
	ErrHashing = errors.New("password hashing failed")

	// ErrInvalidToken is the single condition exposed at API boundaries for
	// any token-validation failure. The sub-kinds below all wrap it, so
	// callers can report one generic message while diagnostics keep the
	// distinction.
	ErrInvalidToken = errors.New("invalid or expired token")

	ErrTokenMalformed = fmt.Errorf("%w: malformed", ErrInvalidToken)
	ErrTokenSignature = fmt.Errorf("%w: bad signature", ErrInvalidToken)
	ErrTokenExpired   = fmt.Errorf("%w: expired", ErrInvalidToken)

	// ErrUnauthenticated means no verified claim was presented at all.
	ErrUnauthenticated = errors.New("unauthenticated")

	// ErrForbidden means the claim is valid but its role does not permit
	// the operation.
	ErrForbidden = errors.New("forbidden")

	// ErrMissingSecret is startup-fatal: token operations must never run
	// with an empty signing key.
	ErrMissingSecret = errors.New("signing secret is not set")
)
