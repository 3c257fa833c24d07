// Package gammah implements the congruence subgroups Gamma_H(N) of SL_2(Z)
// as a [group.Group].
//
// For a level N and a subgroup H of the units (Z/NZ)^*, Gamma_H(N) is the
// set of matrices [[a, b], [c, d]] in SL_2(Z) with c = 0 (mod N) and
// d mod N in H. Gamma0(N) (H is every unit) and Gamma1(N) (H is trivial)
// are the two extreme cases.
//
// Right cosets of Gamma_H(N) correspond to primitive pairs (u, v) modulo N
// up to multiplication by elements of H. [Group.Reduce] picks a canonical
// pair from each class using two precomputed tables:
//
//   - the first-coordinate data, a [group.SeedTriple] per residue u that
//     gives the smallest residue in the H-orbit of u and a multiplier
//     reaching it
//   - the second-coordinate data, which for each divisor d of N holds the
//     elements of H fixing a first coordinate of gcd d
//
// # Usage
//
//	g, err := gammah.New(24, 17, 19)
//	if err != nil {
//	    return err
//	}
//	g.Reduce(17, 6) // (1, 6)
//
// Groups are ordered by level, then by the order of H, then
// lexicographically by the elements of H, so that
// Gamma1(N) < Gamma_H(N) < Gamma0(N) for every proper nontrivial H.
package gammah
