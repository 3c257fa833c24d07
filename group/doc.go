// Package group defines the abstract interfaces that coset enumeration
// is written against.
//
// The package provides the contracts a congruence subgroup must satisfy
// for its cosets in SL_2(Z) to be listed and canonicalized:
//
//   - [Pair]: an integer pair (u, v), the bottom row of a matrix in SL_2(Z)
//     taken modulo the level
//   - [SeedTriple]: one entry of the first-coordinate reduction data
//   - [Group]: the reduction oracle (level, seed data, reduce, ordering)
//   - [PairEnumerator]: a source of canonical primitive pairs modulo N
//
// # Design Philosophy
//
// Coset enumeration only needs the group's reduction function and its
// ordering. Keeping both behind an interface lets the enumeration be
// verified against small test doubles, independently of the group-theoretic
// arithmetic of any particular subgroup:
//
//	g, _ := gammah.New(24, 17, 19)
//	l, _ := cosetlist.New(g)
//	l.Normalize(17, 6) // (1, 6)
//
// # Implementing a Group
//
// To implement [Group] for a new family of subgroups:
//
//  1. Precompute whatever tables Reduce needs in the constructor, so the
//     value is immutable afterwards
//  2. Make Reduce total on all integer pairs, deterministic, and idempotent
//     on its own outputs
//  3. Define Compare so that group-theoretically equal subgroups compare 0
//
// See the gammah package for a complete implementation of Gamma_H(N).
//
// # Preconditions
//
// Callers rely on, and never check, the following:
//
//   - Reduce(u, v) == Reduce(u', v') iff (u, v) and (u', v') are equivalent
//   - Reduce(Reduce(u, v)) == Reduce(u, v)
//   - every method is safe for concurrent use once the Group is built
package group
