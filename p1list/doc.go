// Package p1list enumerates the projective line P^1(Z/NZ): the primitive
// residue pairs (u, v) with gcd(u, v, N) = 1, taken up to multiplication by
// units of Z/NZ.
//
// Each class has a canonical representative, computed by [Normalize]:
//
//   - (0, v) normalizes to (0, 1)
//   - otherwise the pair is scaled by a unit s with s*u = gcd(u, N), and
//     v is minimized over the units that fix that first coordinate
//
// A [List] holds every canonical representative in increasing order, so
// its length is N * prod_{p|N} (1 + 1/p):
//
//	l, _ := p1list.New(6)
//	l.Len()     // 12
//	l.Pairs()   // [(0, 1) (1, 0) (1, 1) ... (3, 2)]
//
// [Enumerator] adapts the package to [group.PairEnumerator].
package p1list
