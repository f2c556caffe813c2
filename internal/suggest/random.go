// Package suggest generates templated secure-password suggestions from
// fixed word, digit, and symbol pools.
package suggest

import (
	"crypto/rand"
	"math/big"
)

// Chooser supplies uniform random selection. Injecting it keeps the
// generator testable with a deterministic fake while production use draws
// from a cryptographically secure source.
type Chooser interface {
	// IntN returns a uniform random int in [0, n). n must be positive.
	IntN(n int) (int, error)
}

// CryptoChooser draws from crypto/rand.
type CryptoChooser struct{}

// IntN implements Chooser.
func (CryptoChooser) IntN(n int) (int, error) {
	v, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		return 0, err
	}
	return int(v.Int64()), nil
}
