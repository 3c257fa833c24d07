package archive

import (
	"testing"

	"github.com/fxamacker/cbor/v2"
	"github.com/stretchr/testify/require"

	"github.com/f3rmion/modsym/cosetlist"
	"github.com/f3rmion/modsym/gammah"
	"github.com/f3rmion/modsym/group"
)

func newList(t *testing.T, level int, gens ...int) *cosetlist.CosetList {
	t.Helper()
	g, err := gammah.New(level, gens...)
	require.NoError(t, err)
	l, err := cosetlist.New(g)
	require.NoError(t, err)
	return l
}

func TestRoundTrip(t *testing.T) {
	for _, gs := range [][]int{{4}, {18, 13}, {24, 17, 19}, {1}} {
		l := newList(t, gs[0], gs[1:]...)

		data, err := Encode(l)
		require.NoError(t, err)

		v, err := Version(data)
		require.NoError(t, err)
		require.Equal(t, VersionCurrent, v)

		got, err := Decode(data)
		require.NoError(t, err)
		require.True(t, got.Equal(l), "decoded %v, want %v", got, l)
		require.Equal(t, l.List(), got.List())
	}
}

func TestEqualGroupsDecodeEqual(t *testing.T) {
	a, err := Encode(newList(t, 18, 11))
	require.NoError(t, err)
	g0, err := gammah.Gamma0(18)
	require.NoError(t, err)
	l0, err := cosetlist.New(g0)
	require.NoError(t, err)
	b, err := Encode(l0)
	require.NoError(t, err)

	la, err := Decode(a)
	require.NoError(t, err)
	lb, err := Decode(b)
	require.NoError(t, err)
	require.True(t, la.Equal(lb))
}

func TestLegacy(t *testing.T) {
	l := newList(t, 18, 13)
	old, err := EncodeLegacy(l)
	require.NoError(t, err)

	v, err := Version(old)
	require.NoError(t, err)
	require.Equal(t, VersionLegacy, v)

	t.Run("Decode", func(t *testing.T) {
		got, err := Decode(old)
		require.NoError(t, err)
		require.True(t, got.Equal(l))
	})

	t.Run("Upgrade", func(t *testing.T) {
		up, err := Upgrade(old)
		require.NoError(t, err)
		v, err := Version(up)
		require.NoError(t, err)
		require.Equal(t, VersionCurrent, v)
		require.Less(t, len(up), len(old))

		got, err := Decode(up)
		require.NoError(t, err)
		require.True(t, got.Equal(l))
	})

	t.Run("Corrupt", func(t *testing.T) {
		data, err := cbor.Marshal(record{
			Version:         VersionLegacy,
			Level:           4,
			Representatives: [][2]int{{0, 1}, {1, 0}},
		})
		require.NoError(t, err)
		_, err = Decode(data)
		require.ErrorIs(t, err, ErrCorrupt)
	})
}

func TestDecodeErrors(t *testing.T) {
	t.Run("UnknownVersion", func(t *testing.T) {
		data, err := cbor.Marshal(record{Version: 9, Level: 4})
		require.NoError(t, err)
		_, err = Decode(data)
		require.ErrorIs(t, err, ErrUnsupportedVersion)
	})

	t.Run("BadGroup", func(t *testing.T) {
		data, err := cbor.Marshal(record{Version: VersionCurrent, Level: 24, Generators: []int{6}})
		require.NoError(t, err)
		_, err = Decode(data)
		require.ErrorIs(t, err, gammah.ErrNotUnit)
	})

	t.Run("LevelTooLarge", func(t *testing.T) {
		data, err := cbor.Marshal(record{Version: VersionLegacy, Level: 1 << 30, Generators: []int{}})
		require.NoError(t, err)
		_, err = Decode(data)
		require.ErrorIs(t, err, gammah.ErrLevelTooLarge)
	})

	t.Run("CurrentWithRepresentatives", func(t *testing.T) {
		data, err := cbor.Marshal(record{
			Version:         VersionCurrent,
			Level:           4,
			Representatives: [][2]int{{0, 1}},
		})
		require.NoError(t, err)
		_, err = Decode(data)
		require.ErrorIs(t, err, ErrCorrupt)
	})

	t.Run("Garbage", func(t *testing.T) {
		_, err := Decode([]byte{0xff, 0x00})
		require.Error(t, err)
	})
}

type otherGroup struct{}

func (otherGroup) Level() int { return 1 }

func (otherGroup) CosetReductionSeed() ([]group.SeedTriple, error) {
	return []group.SeedTriple{{A: 0, B: 1}}, nil
}

func (otherGroup) Reduce(int, int) group.Pair { return group.Pair{} }

func (otherGroup) Compare(group.Group) (int, error) { return 0, group.ErrNotComparable }

func (otherGroup) String() string { return "other" }

func TestEncodeUnsupportedGroup(t *testing.T) {
	l, err := cosetlist.New(otherGroup{})
	require.NoError(t, err)
	_, err = Encode(l)
	require.ErrorIs(t, err, ErrUnsupportedGroup)
	_, err = EncodeLegacy(l)
	require.ErrorIs(t, err, ErrUnsupportedGroup)
}
