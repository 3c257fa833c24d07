package p1list

import (
	"errors"
	"slices"
	"testing"

	"github.com/f3rmion/modsym/group"
	"github.com/f3rmion/modsym/internal/arith"
)

func pr(u, v int) group.Pair { return group.Pair{U: u, V: v} }

func TestNormalize(t *testing.T) {
	cases := []struct {
		n, u, v int
		want    group.Pair
	}{
		{1, 5, 7, pr(0, 0)},
		{4, 0, 3, pr(0, 1)},
		{4, 0, 2, pr(0, 0)},
		{4, 3, 2, pr(1, 2)},
		{12, 4, 3, pr(4, 3)},
		{12, 8, 9, pr(4, 3)},
		{12, 6, 5, pr(6, 1)},
		{12, -1, 5, pr(1, 7)},
		{6, 2, 4, pr(0, 0)},
	}
	for _, c := range cases {
		if got := Normalize(c.n, c.u, c.v); got != c.want {
			t.Errorf("Normalize(%d, %d, %d) = %v, want %v", c.n, c.u, c.v, got, c.want)
		}
	}
}

func TestNormalizeIsClassInvariant(t *testing.T) {
	for n := 2; n <= 30; n++ {
		for u := 0; u < n; u++ {
			for v := 0; v < n; v++ {
				if arith.GCD(arith.GCD(u, v), n) != 1 {
					continue
				}
				p := Normalize(n, u, v)
				if Normalize(n, p.U, p.V) != p {
					t.Fatalf("n=%d: Normalize not idempotent on %v", n, p)
				}
				for s := 1; s < n; s++ {
					if arith.GCD(s, n) != 1 {
						continue
					}
					if q := Normalize(n, s*u, s*v); q != p {
						t.Fatalf("n=%d: (%d, %d) -> %v but scaled by %d -> %v", n, u, v, p, s, q)
					}
				}
			}
		}
	}
}

func TestList(t *testing.T) {
	t.Run("Level4", func(t *testing.T) {
		l, err := New(4)
		if err != nil {
			t.Fatal(err)
		}
		want := []group.Pair{pr(0, 1), pr(1, 0), pr(1, 1), pr(1, 2), pr(1, 3), pr(2, 1)}
		if !slices.Equal(l.Pairs(), want) {
			t.Errorf("Pairs() = %v, want %v", l.Pairs(), want)
		}
		if l.N() != 4 {
			t.Errorf("N() = %d", l.N())
		}
	})

	t.Run("Level1", func(t *testing.T) {
		l, err := New(1)
		if err != nil {
			t.Fatal(err)
		}
		if !slices.Equal(l.Pairs(), []group.Pair{pr(0, 0)}) {
			t.Errorf("Pairs() = %v", l.Pairs())
		}
	})

	t.Run("SizeMatchesFormula", func(t *testing.T) {
		for n := 1; n <= 60; n++ {
			l, err := New(n)
			if err != nil {
				t.Fatal(err)
			}
			if l.Len() != arith.ProjectiveLineSize(n) {
				t.Errorf("n=%d: Len() = %d, want %d", n, l.Len(), arith.ProjectiveLineSize(n))
			}
			if !slices.IsSortedFunc(l.Pairs(), group.Pair.Compare) {
				t.Errorf("n=%d: pairs not sorted", n)
			}
		}
	})

	t.Run("InvalidModulus", func(t *testing.T) {
		if _, err := New(0); !errors.Is(err, ErrInvalidModulus) {
			t.Errorf("New(0) err = %v", err)
		}
	})

	t.Run("ModulusTooLarge", func(t *testing.T) {
		if _, err := New(MaxModulus + 1); !errors.Is(err, ErrModulusTooLarge) {
			t.Errorf("New(MaxModulus+1) err = %v", err)
		}
	})
}

func TestIndex(t *testing.T) {
	l, err := New(12)
	if err != nil {
		t.Fatal(err)
	}
	i, ok := l.Index(8, 9)
	if !ok {
		t.Fatal("(8, 9) should be in P^1(Z/12)")
	}
	if l.Pairs()[i] != pr(4, 3) {
		t.Errorf("Pairs()[%d] = %v, want (4, 3)", i, l.Pairs()[i])
	}
	if _, ok := l.Index(2, 4); ok {
		t.Error("(2, 4) is not primitive mod 12")
	}
}

func TestEnumerator(t *testing.T) {
	var e group.PairEnumerator = Enumerator{}
	ps, err := e.Pairs(6)
	if err != nil {
		t.Fatal(err)
	}
	want := []group.Pair{
		pr(0, 1), pr(1, 0), pr(1, 1), pr(1, 2), pr(1, 3), pr(1, 4),
		pr(1, 5), pr(2, 1), pr(2, 3), pr(2, 5), pr(3, 1), pr(3, 2),
	}
	if !slices.Equal(ps, want) {
		t.Errorf("Pairs(6) = %v, want %v", ps, want)
	}
	if _, err := e.Pairs(-3); err == nil {
		t.Error("expected error for negative modulus")
	}
}
