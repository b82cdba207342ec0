package chord

import (
	"fmt"
	"strings"
)

var numerals = [...]string{"I", "II", "III", "IV", "V", "VI", "VII"}

// Numeral returns the roman numeral for a 1-based scale degree.
func Numeral(degree int) string {
	if degree < 1 || degree > len(numerals) {
		return fmt.Sprint(degree)
	}
	return numerals[degree-1]
}

// Decorate renders the degree of a chord label within its scale, e.g.
// "I", "ii", "vii°" or "IVmaj". Labels with no recognizable quality are
// written lowercase without decoration.
func Decorate(degree int, label string) string {
	q, err := ParseQuality(label)
	numeral := Numeral(degree)
	if err != nil {
		return strings.ToLower(numeral)
	}
	if !q.IsMajor() {
		numeral = strings.ToLower(numeral)
	}
	switch {
	case q == MajorSeventh:
		numeral += "maj"
	case q.IsDiminished():
		numeral += "°"
	}
	return numeral
}

// TrackName is the track name and file stem of a single chord file, e.g.
// "7 - vii° - Bdim".
func TrackName(degree int, label string) string {
	return fmt.Sprintf("%d - %s - %s", degree, Decorate(degree, label), label)
}
