package sharecheck

import (
	"fmt"
	"math/big"
	"sort"
	"strings"
)

// Share is a single data point (x, y) of a sharing. The index x is a positive
// integer key, and the value y is the decoded magnitude of the point.
type Share struct {
	Index uint64
	Value *big.Int
}

// NewShare constructs a share from an index and a copy of the value.
func NewShare(index uint64, value *big.Int) Share {
	return Share{Index: index, Value: new(big.Int).Set(value)}
}

// Eq returns true if the two shares are equal, and false otherwise.
func (s Share) Eq(other Share) bool {
	return s.Index == other.Index && s.Value.Cmp(other.Value) == 0
}

// String implements the Stringer interface.
func (s Share) String() string {
	return fmt.Sprintf("(%v, %v)", s.Index, s.Value)
}

// Shares is an ordered mapping from index to value. The shares are always
// sorted by ascending index and no two shares have the same index. The zero
// value is an empty mapping ready to use.
//
// Shares are filled once, with Set, during ingestion and are only read
// afterwards.
type Shares struct {
	list []Share
}

// NewShares constructs an ordered mapping from the given shares. When several
// shares have the same index, the last one wins.
func NewShares(shares ...Share) Shares {
	var res Shares
	for _, s := range shares {
		res.Set(s)
	}
	return res
}

// Set inserts the share at the position given by its index, replacing any
// share that already has the same index.
//
// Panics: This function will panic if the value of the share is nil. Use
// NewShare to construct shares.
func (shares *Shares) Set(s Share) {
	if s.Value == nil {
		panic(fmt.Sprintf("share %v has no value", s.Index))
	}
	i := sort.Search(len(shares.list), func(i int) bool {
		return shares.list[i].Index >= s.Index
	})
	if i < len(shares.list) && shares.list[i].Index == s.Index {
		shares.list[i] = s
		return
	}
	shares.list = append(shares.list, Share{})
	copy(shares.list[i+1:], shares.list[i:])
	shares.list[i] = s
}

// Get returns the value stored for the index, and whether there is one.
func (shares Shares) Get(index uint64) (*big.Int, bool) {
	i := sort.Search(len(shares.list), func(i int) bool {
		return shares.list[i].Index >= index
	})
	if i < len(shares.list) && shares.list[i].Index == index {
		return shares.list[i].Value, true
	}
	return nil, false
}

// Len returns the number of shares.
func (shares Shares) Len() int {
	return len(shares.list)
}

// At returns the `i`th share in ascending index order.
//
// NOTE: This function will panic if `i` is out of range.
func (shares Shares) At(i int) Share {
	return shares.list[i]
}

// Clone returns an independent copy of the mapping.
func (shares Shares) Clone() Shares {
	list := make([]Share, len(shares.list))
	for i, s := range shares.list {
		list[i] = NewShare(s.Index, s.Value)
	}
	return Shares{list}
}

// Indices returns the indices, in ascending order, as integers ready for
// exact arithmetic.
func (shares Shares) Indices() []*big.Int {
	xs := make([]*big.Int, len(shares.list))
	for i, s := range shares.list {
		xs[i] = new(big.Int).SetUint64(s.Index)
	}
	return xs
}

// Values returns the values in ascending index order.
func (shares Shares) Values() []*big.Int {
	ys := make([]*big.Int, len(shares.list))
	for i, s := range shares.list {
		ys[i] = s.Value
	}
	return ys
}

// Select returns the first k shares in ascending index order. Selection only
// ever depends on the order of the indices, never on the values. If k is less
// than 1, ErrInvalidThreshold is returned, and if there are fewer than k
// shares, an *InsufficientPointsError is returned.
func (shares Shares) Select(k int) (Shares, error) {
	if k < 1 {
		return Shares{}, fmt.Errorf("%w: k = %v", ErrInvalidThreshold, k)
	}
	if len(shares.list) < k {
		return Shares{}, &InsufficientPointsError{Have: len(shares.list), Need: k}
	}
	return Shares{shares.list[:k:k]}, nil
}

// String implements the Stringer interface.
func (shares Shares) String() string {
	parts := make([]string, len(shares.list))
	for i, s := range shares.list {
		parts[i] = s.String()
	}
	return "{" + strings.Join(parts, ", ") + "}"
}
