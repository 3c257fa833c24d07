package archive

import (
	"errors"
	"fmt"
	"slices"

	"github.com/fxamacker/cbor/v2"

	"github.com/f3rmion/modsym/cosetlist"
	"github.com/f3rmion/modsym/gammah"
	"github.com/f3rmion/modsym/group"
)

// Format versions.
const (
	VersionLegacy  uint = 1
	VersionCurrent uint = 2
)

var (
	// ErrUnsupportedGroup is returned by Encode for lists whose group is
	// not a *gammah.Group.
	ErrUnsupportedGroup = errors.New("archive: group cannot be encoded")
	// ErrUnsupportedVersion is returned for unknown format versions.
	ErrUnsupportedVersion = errors.New("archive: unsupported format version")
	// ErrCorrupt is returned when a legacy record's representatives do not
	// match its group, or when a current record carries representatives.
	ErrCorrupt = errors.New("archive: corrupt record")
)

type record struct {
	Version         uint     `cbor:"1,keyasint"`
	Level           int      `cbor:"2,keyasint"`
	Generators      []int    `cbor:"3,keyasint"`
	Representatives [][2]int `cbor:"4,keyasint,omitempty"`
}

var encMode cbor.EncMode

func init() {
	var err error
	encMode, err = cbor.CanonicalEncOptions().EncMode()
	if err != nil {
		panic(err)
	}
}

// Encode serializes l in the current format.
func Encode(l *cosetlist.CosetList) ([]byte, error) {
	g, ok := l.Group().(*gammah.Group)
	if !ok {
		return nil, fmt.Errorf("%w: %T", ErrUnsupportedGroup, l.Group())
	}
	return encMode.Marshal(record{
		Version:    VersionCurrent,
		Level:      g.Level(),
		Generators: g.Generators(),
	})
}

// EncodeLegacy serializes l in the version 1 format, representatives
// included. It exists for interoperating with readers that predate
// version 2.
func EncodeLegacy(l *cosetlist.CosetList) ([]byte, error) {
	g, ok := l.Group().(*gammah.Group)
	if !ok {
		return nil, fmt.Errorf("%w: %T", ErrUnsupportedGroup, l.Group())
	}
	reps := make([][2]int, l.Len())
	for i, p := range l.List() {
		reps[i] = [2]int{p.U, p.V}
	}
	return encMode.Marshal(record{
		Version:         VersionLegacy,
		Level:           g.Level(),
		Generators:      g.Generators(),
		Representatives: reps,
	})
}

// Decode rebuilds a coset list from data in any supported version.
// Group errors from the gammah package, such as gammah.ErrLevelTooLarge,
// are returned wrapped.
func Decode(data []byte, opts ...cosetlist.Option) (*cosetlist.CosetList, error) {
	var r record
	if err := cbor.Unmarshal(data, &r); err != nil {
		return nil, fmt.Errorf("archive: decode: %w", err)
	}

	switch r.Version {
	case VersionLegacy, VersionCurrent:
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedVersion, r.Version)
	}
	if r.Version == VersionCurrent && r.Representatives != nil {
		return nil, fmt.Errorf("%w: version %d stores no representatives", ErrCorrupt, r.Version)
	}

	g, err := gammah.New(r.Level, r.Generators...)
	if err != nil {
		return nil, fmt.Errorf("archive: rebuild group: %w", err)
	}
	l, err := cosetlist.New(g, opts...)
	if err != nil {
		return nil, err
	}

	if r.Version == VersionLegacy {
		stored := make([]group.Pair, len(r.Representatives))
		for i, p := range r.Representatives {
			stored[i] = group.Pair{U: p[0], V: p[1]}
		}
		if !slices.Equal(stored, l.List()) {
			return nil, fmt.Errorf("%w: representatives do not match %v", ErrCorrupt, g)
		}
	}
	return l, nil
}

// Version reports the format version of data without rebuilding the list.
func Version(data []byte) (uint, error) {
	var r struct {
		Version uint `cbor:"1,keyasint"`
	}
	if err := cbor.Unmarshal(data, &r); err != nil {
		return 0, fmt.Errorf("archive: decode: %w", err)
	}
	return r.Version, nil
}

// Upgrade decodes data and re-encodes it in the current version.
func Upgrade(data []byte) ([]byte, error) {
	l, err := Decode(data)
	if err != nil {
		return nil, err
	}
	return Encode(l)
}
