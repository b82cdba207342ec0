package midi

import (
	"bytes"
	"fmt"
	"os"
	"time"

	"github.com/pkg/errors"
	gomidi "gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"

	"github.com/jsphweid/chordscales/constants"
	"github.com/jsphweid/chordscales/model"
)

var ErrPitchRange = errors.New("pitch outside of 0-127")

const channel = 0

var clock = smf.MetricTicks(constants.TicksPerQuarter)

// DurationTicks converts the seconds a chord is held into ticks at the
// settings' tempo.
func DurationTicks(s model.Settings) uint32 {
	return clock.Ticks(float64(s.Tempo), time.Duration(s.Seconds)*time.Second)
}

// Track is a single named track that chords are appended to back-to-back.
type Track struct {
	track    smf.Track
	duration uint32
	velocity uint8
}

func NewTrack(name string, s model.Settings) *Track {
	t := &Track{
		duration: DurationTicks(s),
		velocity: uint8(s.Velocity),
	}
	t.track.Add(0, smf.MetaTrackSequenceName(name))
	t.track.Add(0, smf.MetaTempo(float64(s.Tempo)))
	return t
}

// AddChord strikes every pitch at once and releases them all after the
// track's duration. The first note-off carries the duration, the others
// follow at zero delta. Nothing is added if any pitch is out of range.
func (t *Track) AddChord(pitches []int) error {
	for _, p := range pitches {
		if p < 0 || p > 127 {
			return errors.Wrapf(ErrPitchRange, "got %v", p)
		}
	}

	for _, p := range pitches {
		t.track.Add(0, gomidi.NoteOn(channel, uint8(p), t.velocity))
	}
	for i, p := range pitches {
		var delta uint32
		if i == 0 {
			delta = t.duration
		}
		t.track.Add(delta, gomidi.NoteOffVelocity(channel, uint8(p), t.velocity))
	}
	return nil
}

// Bytes closes the track and serializes it as a standard midi file.
func (t *Track) Bytes() ([]byte, error) {
	t.track.Close(0)
	s := smf.New()
	s.TimeFormat = clock
	if err := s.Add(t.track); err != nil {
		return nil, errors.Wrap(err, "could not add track")
	}

	var buf bytes.Buffer
	if _, err := s.WriteTo(&buf); err != nil {
		return nil, errors.Wrap(err, "could not encode midi")
	}
	return buf.Bytes(), nil
}

func ReadMidiFile(filepath string) (s *smf.SMF, e error) {
	var blank smf.SMF

	// handle panics
	// https://github.com/gomidi/midi/issues/20
	defer func() {
		if r, ok := recover().(string); ok {
			e = errors.New(r)
		}
	}()

	dat, err := os.ReadFile(filepath)
	if err != nil {
		return &blank, errors.Wrap(err, "Error reading midi file...")
	}

	res, err := smf.ReadFrom(bytes.NewReader(dat))
	if err != nil {
		return &blank, errors.Wrap(err, "Error parsing midi file...")
	}

	return res, nil
}

// Summarize collects the name, tempo and note events of the first track.
func Summarize(s *smf.SMF) (model.TrackSummary, error) {
	var res model.TrackSummary
	if len(s.Tracks) == 0 {
		return res, errors.New("midi file has no tracks")
	}

	var absTicks uint64
	for _, event := range s.Tracks[0] {
		absTicks += uint64(event.Delta)
		var ch, key, velocity uint8
		var text string
		var bpm float64
		switch {
		case event.Message.GetMetaTrackName(&text):
			res.Name = text
		case event.Message.GetMetaTempo(&bpm):
			res.Tempo = bpm
		case event.Message.GetNoteOn(&ch, &key, &velocity):
			res.Events = append(res.Events, model.NoteEvent{
				AbsTicks: absTicks,
				Key:      key,
				Velocity: velocity,
			})
		case event.Message.GetNoteOff(&ch, &key, &velocity):
			res.Events = append(res.Events, model.NoteEvent{
				AbsTicks:  absTicks,
				Key:       key,
				Velocity:  velocity,
				IsNoteOff: true,
			})
		}
	}
	return res, nil
}

// FormatEvent renders one note event on a single line.
func FormatEvent(e model.NoteEvent) string {
	kind := "on "
	if e.IsNoteOff {
		kind = "off"
	}
	return fmt.Sprintf("%8d %v key=%-3d vel=%d", e.AbsTicks, kind, e.Key, e.Velocity)
}
