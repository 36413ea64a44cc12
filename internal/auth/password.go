package auth

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// Hasher computes and verifies salted one-way password digests with bcrypt.
// The cost is a work factor and comes from configuration, not a compile-time
// constant.
type Hasher struct {
	cost int
}

// NewHasher returns a Hasher with the given bcrypt cost. A zero cost selects
// bcrypt.DefaultCost; out-of-range values are clamped to bcrypt's limits.
func NewHasher(cost int) *Hasher {
	switch {
	case cost == 0:
		cost = bcrypt.DefaultCost
	case cost < bcrypt.MinCost:
		cost = bcrypt.MinCost
	case cost > bcrypt.MaxCost:
		cost = bcrypt.MaxCost
	}
	return &Hasher{cost: cost}
}

// Hash returns the bcrypt digest of plaintext. Failures of the algorithm
// itself are wrapped in ErrHashing and are not recoverable for the calling
// operation.
func (h *Hasher) Hash(plaintext string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(plaintext), h.cost)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrHashing, err)
	}
	return string(digest), nil
}

// Verify reports whether plaintext matches digest. A mismatch is (false, nil);
// only a structurally invalid digest produces an error, wrapped in ErrHashing
// so callers can tell it apart from "password incorrect".
func (h *Hasher) Verify(plaintext, digest string) (bool, error) {
	err := bcrypt.CompareHashAndPassword([]byte(digest), []byte(plaintext))
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return false, nil
	default:
		return false, fmt.Errorf("%w: %v", ErrHashing, err)
	}
}
