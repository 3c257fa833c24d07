package p1list

import (
	"errors"
	"fmt"
	"slices"

	"github.com/bits-and-blooms/bitset"
	"github.com/f3rmion/modsym/group"
	"github.com/f3rmion/modsym/internal/arith"
)

var (
	// ErrInvalidModulus is returned when the modulus is smaller than 1.
	ErrInvalidModulus = errors.New("p1list: modulus must be at least 1")
	// ErrModulusTooLarge is returned when the modulus exceeds MaxModulus.
	ErrModulusTooLarge = errors.New("p1list: modulus too large")
)

// MaxModulus is the largest modulus New enumerates.
const MaxModulus = arith.MaxModulus

// Normalize returns the canonical representative of the class of (u, v) in
// P^1(Z/nZ). Pairs that are not primitive modulo n normalize to (0, 0), as
// does every pair when n == 1.
func Normalize(n, u, v int) group.Pair {
	if n == 1 {
		return group.Pair{}
	}
	u = arith.Mod(u, n)
	v = arith.Mod(v, n)
	if u == 0 {
		if arith.GCD(v, n) == 1 {
			return group.Pair{U: 0, V: 1}
		}
		return group.Pair{}
	}

	// s*u = g (mod n)
	g, s, _ := arith.XGCD(u, n)
	s = arith.Mod(s, n)
	if g != 1 && arith.GCD(g, v) != 1 {
		return group.Pair{}
	}
	if g != 1 {
		d := n / g
		for arith.GCD(s, n) != 1 {
			s = (s + d) % n
		}
	}

	v = (s * v) % n
	minV := v
	if g != 1 {
		// the units t = 1 (mod n/g) fix g; they shift v by multiples of v*n/g
		ng := n / g
		vng := (v * ng) % n
		t := 1
		for k := 2; k <= g; k++ {
			v = (v + vng) % n
			t = (t + ng) % n
			if v < minV && arith.GCD(t, n) == 1 {
				minV = v
			}
		}
	}
	return group.Pair{U: g, V: minV}
}

// List is the sorted list of canonical representatives of P^1(Z/nZ).
// A List is immutable and safe for concurrent use.
type List struct {
	n     int
	pairs []group.Pair
}

// New enumerates P^1(Z/nZ).
func New(n int) (*List, error) {
	if n < 1 {
		return nil, ErrInvalidModulus
	}
	if n > MaxModulus {
		return nil, fmt.Errorf("%w: %d > %d", ErrModulusTooLarge, n, MaxModulus)
	}

	// Canonical pairs have both coordinates in [0, n), so u*n+v indexes
	// them in sorted order.
	seen := bitset.New(uint(n * n))
	for u := 0; u < n; u++ {
		for v := 0; v < n; v++ {
			if arith.GCD(arith.GCD(u, v), n) != 1 {
				continue
			}
			p := Normalize(n, u, v)
			seen.Set(uint(p.U*n + p.V))
		}
	}

	pairs := make([]group.Pair, 0, seen.Count())
	for i, ok := seen.NextSet(0); ok; i, ok = seen.NextSet(i + 1) {
		pairs = append(pairs, group.Pair{U: int(i) / n, V: int(i) % n})
	}
	return &List{n: n, pairs: pairs}, nil
}

// N returns the modulus.
func (l *List) N() int {
	return l.n
}

// Len returns the number of points of P^1(Z/nZ).
func (l *List) Len() int {
	return len(l.pairs)
}

// Pairs returns the representatives in increasing order. The slice is
// shared; do not modify it.
func (l *List) Pairs() []group.Pair {
	return l.pairs
}

// Index returns the position of the class of (u, v) in the list, or false
// when (u, v) is not primitive.
func (l *List) Index(u, v int) (int, bool) {
	if arith.GCD(arith.GCD(u, v), l.n) != 1 {
		return 0, false
	}
	p := Normalize(l.n, u, v)
	return slices.BinarySearchFunc(l.pairs, p, group.Pair.Compare)
}

// Enumerator implements [group.PairEnumerator] over P^1(Z/nZ).
type Enumerator struct{}

// Pairs returns the canonical representatives of P^1(Z/nZ).
func (Enumerator) Pairs(n int) ([]group.Pair, error) {
	l, err := New(n)
	if err != nil {
		return nil, err
	}
	return l.pairs, nil
}
