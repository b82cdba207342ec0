package model

// NoteEvent is a note-on or note-off read back from a track.
type NoteEvent struct {
	AbsTicks  uint64
	Key       uint8
	Velocity  uint8
	IsNoteOff bool
}

// TrackSummary is what a single generated track holds.
type TrackSummary struct {
	Name   string
	Tempo  float64
	Events []NoteEvent
}
