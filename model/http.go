package model

type ScaleResult struct {
	Name   string   `json:"name"`
	Chords []string `json:"chords"`
}

type ChordResult struct {
	Label   string   `json:"label"`
	Quality string   `json:"quality"`
	Notes   []string `json:"notes"`
}

type ErrorResponse struct {
	Error string `json:"detail"`
}
