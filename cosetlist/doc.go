// Package cosetlist computes the canonical coset representatives of a
// congruence subgroup of SL_2(Z), for use in modular symbols computations.
//
// A [CosetList] is built once from a [group.Group] and never changes.
// Construction walks every canonical primitive pair (x, y) modulo the level
// and every unit representative s of the group's seed data, reduces
// (s*x, s*y) through the group's oracle, and keeps the sorted set of
// results:
//
//	g, _ := gammah.New(4)
//	l, _ := cosetlist.New(g)
//	l.Len()     // 12
//	l.List()    // [(0, 1) (0, 3) (1, 0) (1, 1) ... (3, 3)]
//
// # Equality
//
// Two lists compare exactly as their groups do; the representatives are
// never looked at. Comparing a list with any other kind of value returns
// [ErrNotComparable], which callers must not read as "unequal".
//
// # Indexing
//
// [CosetList.Item] accepts positions in [0, Len()). Negative positions are
// not supported and return [ErrIndexOutOfRange], as does Len().
package cosetlist
