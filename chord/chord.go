package chord

import (
	"strings"

	"github.com/pkg/errors"

	"github.com/jsphweid/chordscales/note"
	"github.com/jsphweid/chordscales/util"
)

var (
	ErrUnknownChord   = errors.New("unknown chord")
	ErrUnknownQuality = errors.New("unknown chord quality")
)

type Quality int

const (
	Major Quality = iota
	Minor
	Diminished
	HalfDiminished
	DominantSeventh
	MajorSeventh
	MinorSeventh
)

func (q Quality) String() string {
	switch q {
	case Major:
		return "major"
	case Minor:
		return "minor"
	case Diminished:
		return "diminished"
	case HalfDiminished:
		return "half-diminished"
	case DominantSeventh:
		return "dominant-seventh"
	case MajorSeventh:
		return "major-seventh"
	case MinorSeventh:
		return "minor-seventh"
	}
	return "unknown"
}

// IsMajor reports whether the quality is written with an uppercase numeral.
func (q Quality) IsMajor() bool {
	return q == Major || q == MajorSeventh
}

func (q Quality) IsDiminished() bool {
	return q == Diminished || q == HalfDiminished
}

// NOTE: longer suffixes first so "maj7" never matches as "7"
var suffixes = []struct {
	suffix  string
	quality Quality
}{
	{"half-dim7", HalfDiminished},
	{"m7b5", HalfDiminished},
	{"maj7", MajorSeventh},
	{"dom7", DominantSeventh},
	{"maj", Major},
	{"dim", Diminished},
	{"m7", MinorSeventh},
	{"7", DominantSeventh},
	{"m", Minor},
}

type Chord struct {
	Label   string
	Quality Quality
	// root first
	Notes []string
}

// Root returns the label's root note name, e.g. "Bb" for "Bbhalf-dim7".
func Root(label string) string {
	if label == "" {
		return ""
	}
	i := 1
	for i < len(label) && (label[i] == '#' || label[i] == 'b') {
		i++
	}
	return label[:i]
}

func ParseQuality(label string) (Quality, error) {
	root := Root(label)
	if root == "" || !strings.ContainsRune("ABCDEFG", rune(root[0])) {
		return 0, errors.Wrapf(ErrUnknownQuality, "%q has no root", label)
	}
	rest := label[len(root):]
	for _, s := range suffixes {
		if rest == s.suffix {
			return s.quality, nil
		}
	}
	return 0, errors.Wrapf(ErrUnknownQuality, "%q", label)
}

func newTable(spellings map[string][]string) map[string]Chord {
	res := make(map[string]Chord, len(spellings))
	for label, notes := range spellings {
		q, err := ParseQuality(label)
		if err != nil {
			panic("Bad chord table entry: " + err.Error())
		}
		res[label] = Chord{Label: label, Quality: q, Notes: notes}
	}
	return res
}

func Lookup(label string) (Chord, error) {
	c, ok := Table[label]
	if !ok {
		return Chord{}, errors.Wrapf(ErrUnknownChord, "%q", label)
	}
	return c, nil
}

// Labels returns every chord label in the table, sorted.
func Labels() []string {
	return util.GetSortedKeys(Table)
}

// Floor carries pitch-resolution state across the chords of one scale.
// The zero value resolves a chord in isolation.
type Floor struct {
	// base pitch of the scale's own root
	Lowest int
	// resolved root of the previously voiced chord, 0 before the first one
	PrevRoot int
}

// Voice resolves the chord's notes to concrete pitches. The root is placed
// at or above its base pitch, the scale's lowest note and the previous
// root; every other note is placed at or above the resolved root.
func (f *Floor) Voice(c Chord) ([]int, error) {
	if len(c.Notes) == 0 {
		return nil, errors.Errorf("chord %q has no notes", c.Label)
	}
	base, err := note.Pitch(c.Notes[0])
	if err != nil {
		return nil, errors.Wrapf(err, "chord %q", c.Label)
	}
	root := note.Lift(base, util.Max(base, util.Max(f.Lowest, f.PrevRoot)))

	pitches := make([]int, 0, len(c.Notes))
	pitches = append(pitches, root)
	for _, n := range c.Notes[1:] {
		p, err := note.Resolve(n, root)
		if err != nil {
			return nil, errors.Wrapf(err, "chord %q", c.Label)
		}
		pitches = append(pitches, p)
	}

	f.PrevRoot = root
	return pitches, nil
}

// Pitches voices the chord in isolation, using only its own root as floor.
func (c Chord) Pitches() ([]int, error) {
	var f Floor
	return f.Voice(c)
}
