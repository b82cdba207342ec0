package file

import (
	"github.com/pkg/errors"

	"github.com/jsphweid/chordscales/chord"
	"github.com/jsphweid/chordscales/midi"
	"github.com/jsphweid/chordscales/model"
	"github.com/jsphweid/chordscales/note"
	"github.com/jsphweid/chordscales/scale"
)

// Rendered is one midi file ready to be written.
type Rendered struct {
	// track name, also used as file stem
	Name  string
	Bytes []byte
	// chords left out of the file, one error per chord
	Skipped []error
}

func isSkippable(err error) bool {
	return errors.Is(err, chord.ErrUnknownChord) ||
		errors.Is(err, note.ErrUnknownNote) ||
		errors.Is(err, midi.ErrPitchRange)
}

// RenderScale writes every chord of s back-to-back into one track, each
// chord voiced at or above the previous chord's root. A scale whose own
// name is not a known chord can't be voiced at all.
func RenderScale(s scale.Scale, settings model.Settings) (Rendered, error) {
	res := Rendered{Name: s.Name}

	seed, err := chord.Lookup(s.Name)
	if err != nil {
		return res, errors.Wrapf(err, "scale %q", s.Name)
	}
	lowest, err := note.Pitch(seed.Notes[0])
	if err != nil {
		return res, errors.Wrapf(err, "scale %q", s.Name)
	}

	floor := chord.Floor{Lowest: lowest}
	track := midi.NewTrack(s.Name, settings)
	for _, label := range s.Chords {
		if err := addChord(track, &floor, label); err != nil {
			if !isSkippable(err) {
				return res, err
			}
			res.Skipped = append(res.Skipped, err)
		}
	}

	res.Bytes, err = track.Bytes()
	return res, err
}

// RenderChord writes a single chord, voiced on its own root, into a track
// named after its degree within the scale. Unknown chords still produce a
// track with no notes.
func RenderChord(degree int, label string, settings model.Settings) (Rendered, error) {
	res := Rendered{Name: chord.TrackName(degree, label)}

	var floor chord.Floor
	track := midi.NewTrack(res.Name, settings)
	if err := addChord(track, &floor, label); err != nil {
		if !isSkippable(err) {
			return res, err
		}
		res.Skipped = append(res.Skipped, err)
	}

	var err error
	res.Bytes, err = track.Bytes()
	return res, err
}

func addChord(track *midi.Track, floor *chord.Floor, label string) error {
	c, err := chord.Lookup(label)
	if err != nil {
		return err
	}
	pitches, err := floor.Voice(c)
	if err != nil {
		return err
	}
	return errors.Wrapf(track.AddChord(pitches), "chord %q", label)
}
