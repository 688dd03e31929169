// Package cryptox implements one-way hashing of account secrets with bcrypt.
package cryptox

import (
	"errors"

	"github.com/dmitrijs2005/croissant/internal/common"
	"golang.org/x/crypto/bcrypt"
)

// MaxSecretLen is the number of secret bytes bcrypt takes into account.
// Longer secrets are truncated before hashing and verifying.
const MaxSecretLen = 72

// DefaultCost matches bcrypt's own default work factor.
const DefaultCost = bcrypt.DefaultCost

// Hasher hashes and verifies secrets with a fixed bcrypt cost.
type Hasher struct {
	cost int
}

func NewHasher(cost int) *Hasher {
	return &Hasher{cost: cost}
}

// Hash returns a salted bcrypt hash of secret. It fails only on internal
// faults, such as a cost outside bcrypt's accepted range.
func (h *Hasher) Hash(secret []byte) (string, error) {
	if h.cost < bcrypt.MinCost || h.cost > bcrypt.MaxCost {
		return "", common.HashError(bcrypt.InvalidCostError(h.cost))
	}

	hash, err := bcrypt.GenerateFromPassword(truncate(secret), h.cost)
	if err != nil {
		return "", common.HashError(err)
	}

	return string(hash), nil
}

// Verify reports whether secret matches hash. A mismatch is (false, nil);
// an error is returned only when hash is not a well-formed bcrypt hash.
func (h *Hasher) Verify(secret []byte, hash string) (bool, error) {
	err := bcrypt.CompareHashAndPassword([]byte(hash), truncate(secret))

	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return false, nil
	default:
		return false, common.VerifyError(err)
	}
}

func truncate(secret []byte) []byte {
	if len(secret) > MaxSecretLen {
		return secret[:MaxSecretLen]
	}
	return secret
}

// Wipe overwrites b with zeros. Use it on secret buffers once hashed or
// verified.
func Wipe(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
