package cosetlist

import (
	"errors"
	"fmt"
	"slices"

	"go.uber.org/zap"

	"github.com/f3rmion/modsym/group"
	"github.com/f3rmion/modsym/p1list"
)

var (
	// ErrNilGroup is returned by New when no group is given.
	ErrNilGroup = errors.New("cosetlist: nil group")
	// ErrIndexOutOfRange is returned by Item for positions outside [0, Len()).
	ErrIndexOutOfRange = errors.New("cosetlist: index out of range")
	// ErrNotComparable is returned by Compare when the other value is not
	// a *CosetList, or when the two groups cannot be ordered.
	ErrNotComparable = group.ErrNotComparable
)

// CosetList is the sorted list of canonical coset representatives of a
// group. It is immutable and safe for concurrent use.
type CosetList struct {
	group group.Group
	reps  []group.Pair
}

type options struct {
	enumerator group.PairEnumerator
	logger     *zap.Logger
}

// Option configures New.
type Option func(*options)

// WithEnumerator sets the source of primitive pairs. The default
// enumerates P^1(Z/NZ) with the p1list package.
func WithEnumerator(e group.PairEnumerator) Option {
	return func(o *options) {
		o.enumerator = e
	}
}

// WithLogger sets the logger used to report construction.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// New computes the coset representatives of g.
//
// Errors from the group's seed data or from the enumerator are returned
// wrapped; New does not attempt to recover from them.
func New(g group.Group, opts ...Option) (*CosetList, error) {
	if g == nil {
		return nil, ErrNilGroup
	}
	o := options{
		enumerator: p1list.Enumerator{},
		logger:     zap.NewNop(),
	}
	for _, opt := range opts {
		opt(&o)
	}

	seed, err := g.CosetReductionSeed()
	if err != nil {
		return nil, fmt.Errorf("coset reduction seed of %v: %w", g, err)
	}
	seeds := unitRepresentatives(seed)

	pairs, err := o.enumerator.Pairs(g.Level())
	if err != nil {
		return nil, fmt.Errorf("primitive pairs mod %d: %w", g.Level(), err)
	}

	set := make(map[group.Pair]struct{}, len(pairs)*len(seeds))
	for _, s := range seeds {
		for _, p := range pairs {
			q := p.Scale(s)
			set[g.Reduce(q.U, q.V)] = struct{}{}
		}
	}
	reps := make([]group.Pair, 0, len(set))
	for p := range set {
		reps = append(reps, p)
	}
	slices.SortFunc(reps, group.Pair.Compare)

	o.logger.Debug("built coset list",
		zap.Stringer("group", g),
		zap.Int("level", g.Level()),
		zap.Int("seeds", len(seeds)),
		zap.Int("pairs", len(pairs)),
		zap.Int("representatives", len(reps)),
	)
	return &CosetList{group: g, reps: reps}, nil
}

// unitRepresentatives returns the distinct A of the triples with B == 1,
// in increasing order.
func unitRepresentatives(seed []group.SeedTriple) []int {
	var out []int
	for _, t := range seed {
		if t.B == 1 {
			out = append(out, t.A)
		}
	}
	slices.Sort(out)
	return slices.Compact(out)
}

// Group returns the group the list was built from.
func (l *CosetList) Group() group.Group {
	return l.group
}

// Len returns the number of representatives, which is the index of the
// group in SL_2(Z).
func (l *CosetList) Len() int {
	return len(l.reps)
}

// Item returns the representative at position i.
func (l *CosetList) Item(i int) (group.Pair, error) {
	if i < 0 || i >= len(l.reps) {
		return group.Pair{}, fmt.Errorf("%w: %d not in [0, %d)", ErrIndexOutOfRange, i, len(l.reps))
	}
	return l.reps[i], nil
}

// List returns the representatives in increasing order.
//
// The slice is shared with l. Do not modify it; use slices.Clone for a
// private copy.
func (l *CosetList) List() []group.Pair {
	return l.reps
}

// Index returns the position of p in the list.
func (l *CosetList) Index(p group.Pair) (int, bool) {
	return slices.BinarySearchFunc(l.reps, p, group.Pair.Compare)
}

// Contains reports whether p is one of the representatives.
func (l *CosetList) Contains(p group.Pair) bool {
	_, ok := l.Index(p)
	return ok
}

// Normalize returns the representative equivalent to (u, v).
//
// The result is only meaningful when gcd(u, v, N) = 1; otherwise it need
// not be an element of the list.
func (l *CosetList) Normalize(u, v int) group.Pair {
	return l.group.Reduce(u, v)
}

// Compare orders l against other by comparing the underlying groups.
// It returns ErrNotComparable if other is not a *CosetList.
func (l *CosetList) Compare(other any) (int, error) {
	o, ok := other.(*CosetList)
	if !ok || o == nil {
		return 0, ErrNotComparable
	}
	return l.group.Compare(o.group)
}

// Equal reports whether other is a *CosetList over an equal group.
func (l *CosetList) Equal(other any) bool {
	c, err := l.Compare(other)
	return err == nil && c == 0
}

func (l *CosetList) String() string {
	return "List of coset representatives for " + l.group.String()
}
