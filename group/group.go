package group

import (
	"cmp"
	"errors"
	"fmt"
)

// ErrNotComparable is returned by ordering methods when the operands
// belong to different families and have no defined order. It is not the
// same as "unequal".
var ErrNotComparable = errors.New("values are not comparable")

// Pair is an integer pair (U, V). Pairs order lexicographically.
type Pair struct {
	U int
	V int
}

// Compare returns -1, 0 or +1 depending on whether p sorts before, equal
// to, or after q.
func (p Pair) Compare(q Pair) int {
	if c := cmp.Compare(p.U, q.U); c != 0 {
		return c
	}
	return cmp.Compare(p.V, q.V)
}

// Scale returns (s*U, s*V).
func (p Pair) Scale(s int) Pair {
	return Pair{U: s * p.U, V: s * p.V}
}

// String formats the pair as "(u, v)".
func (p Pair) String() string {
	return fmt.Sprintf("(%d, %d)", p.U, p.V)
}

// SeedTriple is one entry of a group's first-coordinate reduction data.
// For a residue u modulo the level N:
//
//	A is the canonical residue of the orbit of u
//	B is gcd(u, N)
//	H is a multiplier with H*u = A (mod N)
//
// Entries with B == 1 are exactly the units, so their A values form a set
// of representatives for the units modulo the subgroup.
type SeedTriple struct {
	A int
	B int
	H int
}

// Group is a congruence subgroup of SL_2(Z) exposed through its coset
// reduction oracle.
//
// Implementations must be immutable after construction; all methods may be
// called concurrently.
type Group interface {
	// Level returns the level N >= 1.
	Level() int
	// CosetReductionSeed returns the first-coordinate reduction data, one
	// triple per residue modulo N.
	CosetReductionSeed() ([]SeedTriple, error)
	// Reduce maps (u, v) with gcd(u, v, N) = 1 to its canonical coset
	// representative. It must be total, deterministic and idempotent.
	Reduce(u, v int) Pair
	// Compare orders the receiver against other. It returns
	// ErrNotComparable when other is not of a compatible kind.
	Compare(other Group) (int, error)
	// String describes the group.
	String() string
}

// PairEnumerator produces the canonical primitive residue pairs modulo n:
// one pair (x, y) with gcd(x, y, n) = 1 per class of the enumerator's own
// equivalence.
type PairEnumerator interface {
	Pairs(n int) ([]Pair, error)
}

// PairEnumeratorFunc adapts an ordinary function to [PairEnumerator].
type PairEnumeratorFunc func(n int) ([]Pair, error)

// Pairs calls f(n).
func (f PairEnumeratorFunc) Pairs(n int) ([]Pair, error) {
	return f(n)
}
