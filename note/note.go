package note

import (
	"github.com/pkg/errors"
)

// ErrUnknownNote is returned when a note name has no base pitch.
var ErrUnknownNote = errors.New("unknown note")

// Octave is the number of semitones between two enharmonic pitches.
const Octave = 12

// Pitches maps a note name to its base MIDI pitch, anchored around middle C.
var Pitches = map[string]int{
	"Ab":  68,
	"A":   69,
	"A#":  70,
	"Bb":  70,
	"B":   71,
	"B#":  72,
	"Cb":  59,
	"C":   60,
	"C#":  61,
	"Db":  61,
	"D":   62,
	"D#":  63,
	"Eb":  63,
	"E":   64,
	"E#":  65,
	"Fb":  64,
	"F":   65,
	"F#":  66,
	"F##": 67,
	"Gb":  66,
	"G":   67,
	"G#":  68,
}

// Pitch returns the base pitch of a note name.
func Pitch(name string) (int, error) {
	p, ok := Pitches[name]
	if !ok {
		return 0, errors.Wrapf(ErrUnknownNote, "%q", name)
	}
	return p, nil
}

// Lift raises pitch by whole octaves until it is at least floor.
// There is no upper bound.
func Lift(pitch, floor int) int {
	for pitch < floor {
		pitch += Octave
	}
	return pitch
}

// Resolve returns the lowest pitch >= floor that is enharmonically
// equivalent to the base pitch of name.
func Resolve(name string, floor int) (int, error) {
	p, err := Pitch(name)
	if err != nil {
		return 0, err
	}
	return Lift(p, floor), nil
}
