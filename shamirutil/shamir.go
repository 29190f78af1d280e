package shamirutil

import (
	"math/big"
	"math/rand"

	"github.com/renproject/sharecheck"
	"github.com/renproject/sharecheck/poly"
)

// maxIndex bounds the random indices so that test polynomials of moderate
// degree stay fast to evaluate.
const maxIndex = 1 << 20

// RandomIndices initialises and returns a slice of n distinct, positive,
// random indices.
func RandomIndices(n int) []*big.Int {
	seen := make(map[int64]bool, n)
	indices := make([]*big.Int, 0, n)
	for len(indices) < n {
		x := rand.Int63n(maxIndex) + 1
		if seen[x] {
			continue
		}
		seen[x] = true
		indices = append(indices, big.NewInt(x))
	}
	return indices
}

// SequentialIndices initialises and returns a slice of n indices, where the
// slice index i is equal to i+1.
func SequentialIndices(n int) []*big.Int {
	indices := make([]*big.Int, n)
	for i := range indices {
		indices[i] = big.NewInt(int64(i) + 1)
	}
	return indices
}

// SharesOf evaluates the polynomial at the indices 1, ..., n and returns the
// resulting shares.
//
// Panics: The polynomial must take whole number values at every positive
// integer, otherwise this function will panic.
func SharesOf(p poly.Poly, n int) sharecheck.Shares {
	var shares sharecheck.Shares
	for i := 1; i <= n; i++ {
		y := p.Evaluate(big.NewInt(int64(i)))
		if !y.IsInt() {
			panic("polynomial value is not a whole number")
		}
		shares.Set(sharecheck.NewShare(uint64(i), y.Num()))
	}
	return shares
}

// PerturbValue returns a copy of the shares where the value at the given
// index has been altered by a random non-zero amount.
func PerturbValue(shares sharecheck.Shares, index uint64) sharecheck.Shares {
	y, ok := shares.Get(index)
	if !ok {
		panic("no share with the given index")
	}
	delta := big.NewInt(rand.Int63n(1000) + 1)
	if rand.Intn(2) == 0 {
		delta.Neg(delta)
	}

	altered := shares.Clone()
	altered.Set(sharecheck.NewShare(index, new(big.Int).Add(y, delta)))
	return altered
}

// RandomSubset returns n distinct indices picked at random from the shares.
func RandomSubset(shares sharecheck.Shares, n int) []uint64 {
	indices := shares.Indices()
	rand.Shuffle(len(indices), func(i, j int) {
		indices[i], indices[j] = indices[j], indices[i]
	})
	res := make([]uint64, n)
	for i := range res {
		res[i] = indices[i].Uint64()
	}
	return res
}
