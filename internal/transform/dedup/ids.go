package dedup

import (
	"crypto/rand"
	"math"
	"math/big"
)

// IDGenerator yields surrogate address keys.
type IDGenerator func() (int64, error)

var maxBigint = big.NewInt(math.MaxInt64)

// RandomBigint returns a uniformly random non-negative value below the
// PostgreSQL BIGINT maximum. Uniqueness is enforced by the store.
func RandomBigint() (int64, error) {
	n, err := rand.Int(rand.Reader, maxBigint)
	if err != nil {
		return 0, err
	}

	return n.Int64(), nil
}
