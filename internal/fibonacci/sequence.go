package fibonacci

import (
	"fmt"
	"iter"
	"math/big"
)

// Sequence is an ordered run of Fibonacci numbers starting at F(0).
type Sequence []*big.Int

// String renders the sequence in Go's default slice notation, e.g. "[0 1 1 2]".
func (s Sequence) String() string {
	return fmt.Sprint([]*big.Int(s))
}

// Terms yields the first n Fibonacci numbers as (index, value) pairs.
// Each yielded value is a fresh *big.Int owned by the caller.
// A non-positive n yields nothing.
func Terms(n int) iter.Seq2[int, *big.Int] {
	return func(yield func(int, *big.Int) bool) {
		a, b := big.NewInt(0), big.NewInt(1)
		for i := 0; i < n; i++ {
			if !yield(i, new(big.Int).Set(a)) {
				return
			}
			// a, b = b, a+b, reusing a's storage for the sum.
			a.Add(a, b)
			a, b = b, a
		}
	}
}

// maxPrealloc bounds the capacity reserved up front, so that a huge count
// grows the slice as terms arrive instead of failing in make.
const maxPrealloc = 1 << 16

// initialCap returns the capacity Generate reserves for n terms.
func initialCap(n int) int {
	return min(max(n, 0), maxPrealloc)
}

// Generate returns the first n Fibonacci numbers.
//
// Negative counts are not rejected: like a zero count they produce an empty
// sequence. The result is never nil.
func Generate(n int) Sequence {
	seq := make(Sequence, 0, initialCap(n))
	for _, v := range Terms(n) {
		seq = append(seq, v)
	}
	return seq
}
