package pkg

import (
	"crypto/rand"
	"math/big"
)

const base36Alphabet = "0123456789abcdefghijklmnopqrstuvwxyz"

// ShortID returns an n-character base36 identifier drawn from a CSPRNG.
//
// Collisions are not checked here; writers guard with an
// attribute_not_exists condition and surface a conflict on the
// (astronomically rare) clash so the client can retry.
func ShortID(n int) string {
	max := big.NewInt(int64(len(base36Alphabet)))
	out := make([]byte, n)
	for i := range out {
		idx, err := rand.Int(rand.Reader, max)
		if err != nil {
			// crypto/rand only fails if the platform entropy source is
			// broken; there is no sensible recovery path.
			panic(err)
		}
		out[i] = base36Alphabet[idx.Int64()]
	}
	return string(out)
}
