package gammah

import (
	"cmp"
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/bits-and-blooms/bitset"
	"github.com/f3rmion/modsym/group"
	"github.com/f3rmion/modsym/internal/arith"
)

var (
	// ErrInvalidLevel is returned when the level is smaller than 1.
	ErrInvalidLevel = errors.New("gammah: level must be at least 1")
	// ErrLevelTooLarge is returned when the level exceeds MaxLevel.
	ErrLevelTooLarge = errors.New("gammah: level too large")
	// ErrNotUnit is returned when a generator is not a unit modulo the level.
	ErrNotUnit = errors.New("gammah: generator is not a unit")
)

// MaxLevel is the largest level New accepts.
const MaxLevel = arith.MaxModulus

func checkLevel(level int) error {
	switch {
	case level < 1:
		return fmt.Errorf("%w: %d", ErrInvalidLevel, level)
	case level > MaxLevel:
		return fmt.Errorf("%w: %d > %d", ErrLevelTooLarge, level, MaxLevel)
	}
	return nil
}

// Group is the congruence subgroup Gamma_H(N). It implements [group.Group].
//
// All reduction tables are computed by [New]; a Group is immutable and
// safe for concurrent use.
type Group struct {
	level int
	gens  []int // normalized generators of H
	elems []int // elements of H, increasing
	inH   *bitset.BitSet

	first  []group.SeedTriple
	second map[int][]int
}

var _ group.Group = (*Group)(nil)

// New returns Gamma_H(level) where H is the subgroup of (Z/level Z)^*
// generated by gens. Generators are taken modulo level. The level must lie
// in [1, MaxLevel].
func New(level int, gens ...int) (*Group, error) {
	if err := checkLevel(level); err != nil {
		return nil, err
	}
	for _, h := range gens {
		if arith.GCD(h, level) != 1 {
			return nil, fmt.Errorf("%w: %d mod %d", ErrNotUnit, h, level)
		}
	}

	g := &Group{
		level: level,
		gens:  normalizeGens(level, gens),
	}
	g.elems, g.inH = generate(level, g.gens)
	g.first = g.firstCoordinateData()
	g.second = g.secondCoordinateData()
	return g, nil
}

// Gamma0 returns Gamma0(level), where H is every unit.
func Gamma0(level int) (*Group, error) {
	if err := checkLevel(level); err != nil {
		return nil, err
	}
	var units []int
	for u := 1; u < level; u++ {
		if arith.GCD(u, level) == 1 {
			units = append(units, u)
		}
	}
	return New(level, units...)
}

// Gamma1 returns Gamma1(level), where H is trivial.
func Gamma1(level int) (*Group, error) {
	return New(level)
}

// normalizeGens reduces gens modulo n, drops the identity and sorts.
func normalizeGens(n int, gens []int) []int {
	out := make([]int, 0, len(gens))
	for _, h := range gens {
		h = arith.Mod(h, n)
		if h == 1%n {
			continue
		}
		out = append(out, h)
	}
	slices.Sort(out)
	return slices.Compact(out)
}

// generate returns the sorted elements of the subgroup generated by gens,
// together with a membership set.
func generate(n int, gens []int) ([]int, *bitset.BitSet) {
	in := bitset.New(uint(n))
	in.Set(uint(1 % n))
	elems := []int{1 % n}
	for _, h := range gens {
		if in.Test(uint(h)) {
			continue
		}
		cyclic := []int{h}
		for hk := h; hk != 1%n; {
			hk = hk * h % n
			cyclic = append(cyclic, hk)
		}
		for _, x := range elems {
			for _, c := range cyclic {
				in.Set(uint(x * c % n))
			}
		}
		elems = elems[:0]
		for i, ok := in.NextSet(0); ok; i, ok = in.NextSet(i + 1) {
			elems = append(elems, int(i))
		}
	}
	return elems, in
}

func (g *Group) inverse(x int) int {
	inv, _ := arith.Inverse(x, g.level)
	return inv
}

// firstCoordinateData fills one triple per residue u. The smallest
// unprocessed residue of each H-orbit becomes its canonical
// representative.
func (g *Group) firstCoordinateData() []group.SeedTriple {
	n := g.level
	if n == 1 {
		return []group.SeedTriple{{A: 0, B: 1, H: 0}}
	}

	data := make([]group.SeedTriple, n)
	done := bitset.New(uint(n))
	data[0] = group.SeedTriple{A: 0, B: n, H: 0}
	done.Set(0)
	for _, h := range g.elems {
		data[h] = group.SeedTriple{A: 1, B: 1, H: g.inverse(h)}
		done.Set(uint(h))
	}

	// u*x mod n only depends on x mod n/gcd(u, n), so one element of H
	// per residue class mod n/d is enough.
	reps := make(map[int][]int)
	for _, d := range arith.Divisors(n) {
		if d == n {
			reps[d] = []int{1}
			break
		}
		nd := n / d
		seen := bitset.New(uint(nd))
		z := []int{1}
		for _, x := range g.elems {
			if r := uint(x % nd); !seen.Test(r) {
				seen.Set(r)
				z = append(z, x)
			}
		}
		reps[d] = z
	}

	for u := 1; u < n; u++ {
		if done.Test(uint(u)) {
			continue
		}
		d := arith.GCD(u, n)
		for _, x := range reps[d] {
			e := u * x % n
			data[e] = group.SeedTriple{A: u, B: d, H: g.inverse(x)}
			done.Set(uint(e))
		}
	}
	return data
}

// secondCoordinateData maps each divisor d of the level to the elements
// h of H with h = 1 (mod N/d).
func (g *Group) secondCoordinateData() map[int][]int {
	n := g.level
	divs := arith.Divisors(n)
	v := make(map[int][]int, len(divs))
	v[1] = []int{1}
	v[n] = g.elems
	for _, h := range g.elems {
		for _, d := range divs {
			if d > 1 && d < n && h%(n/d) == 1 {
				v[d] = append(v[d], h)
			}
		}
	}
	return v
}

// Level returns N.
func (g *Group) Level() int {
	return g.level
}

// Generators returns the normalized generators of H: reduced modulo N,
// without 1, sorted and deduplicated.
func (g *Group) Generators() []int {
	return slices.Clone(g.gens)
}

// Elements returns the elements of H in increasing order.
func (g *Group) Elements() []int {
	return slices.Clone(g.elems)
}

// Contains reports whether h mod N is in H.
func (g *Group) Contains(h int) bool {
	return g.inH.Test(uint(arith.Mod(h, g.level)))
}

// Index returns the number of cosets of the group in SL_2(Z), which is
// J_2(N) / |H|.
func (g *Group) Index() int {
	return arith.JordanTotient2(g.level) / len(g.elems)
}

// IsGamma0 reports whether H is every unit.
func (g *Group) IsGamma0() bool {
	return len(g.elems) == arith.Totient(g.level)
}

// IsGamma1 reports whether H is trivial.
func (g *Group) IsGamma1() bool {
	return len(g.elems) == 1
}

// CosetReductionSeed returns the first-coordinate reduction data. The
// entry at index u describes the residue u modulo N.
func (g *Group) CosetReductionSeed() ([]group.SeedTriple, error) {
	return slices.Clone(g.first), nil
}

// Stabilizer returns the elements h of H with h = 1 (mod N/d), for a
// divisor d of N. It returns nil when d does not divide N.
func (g *Group) Stabilizer(d int) []int {
	return slices.Clone(g.second[d])
}

// Reduce returns the canonical representative of the coset of (uu, vv).
// Pairs with gcd(uu, vv, N) != 1 reduce to (0, 0).
func (g *Group) Reduce(uu, vv int) group.Pair {
	n := g.level
	u := arith.Mod(uu, n)
	v := arith.Mod(vv, n)
	fu, fv := g.first[u], g.first[v]

	if arith.GCD(fu.B, fv.B) != 1 {
		return group.Pair{}
	}
	if u == 0 {
		return group.Pair{U: 0, V: fv.A}
	}
	if v == 0 {
		return group.Pair{U: fu.A, V: 0}
	}

	newV := fu.H * v % n
	best := newV
	for _, h := range g.second[fu.B] {
		if w := newV * h % n; w < best {
			best = w
		}
	}
	return group.Pair{U: fu.A, V: best}
}

// Compare orders g against other by level, then by the order of H, then
// lexicographically by the elements of H. It returns
// [group.ErrNotComparable] if other is not a *Group.
func (g *Group) Compare(other group.Group) (int, error) {
	o, ok := other.(*Group)
	if !ok || o == nil {
		return 0, group.ErrNotComparable
	}
	if c := cmp.Compare(g.level, o.level); c != 0 {
		return c, nil
	}
	if c := cmp.Compare(len(g.elems), len(o.elems)); c != 0 {
		return c, nil
	}
	return slices.Compare(g.elems, o.elems), nil
}

// Equal reports whether g and other define the same subgroup.
func (g *Group) Equal(other *Group) bool {
	c, err := g.Compare(other)
	return err == nil && c == 0
}

// Key returns a canonical string identifying the subgroup: the level and
// the elements of H. Equal groups have equal keys.
func (g *Group) Key() string {
	var b strings.Builder
	b.WriteString(strconv.Itoa(g.level))
	b.WriteByte(':')
	for i, h := range g.elems {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.Itoa(h))
	}
	return b.String()
}

func (g *Group) String() string {
	switch {
	case g.IsGamma0():
		return fmt.Sprintf("Congruence Subgroup Gamma0(%d)", g.level)
	case g.IsGamma1():
		return fmt.Sprintf("Congruence Subgroup Gamma1(%d)", g.level)
	}
	gens := make([]string, len(g.gens))
	for i, h := range g.gens {
		gens[i] = strconv.Itoa(h)
	}
	return fmt.Sprintf("Congruence Subgroup Gamma_H(%d) with H generated by [%s]",
		g.level, strings.Join(gens, ", "))
}
