package chord

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecorate(t *testing.T) {
	cases := []struct {
		degree int
		label  string
		want   string
	}{
		{1, "Cmaj", "I"},
		{2, "Dm", "ii"},
		{7, "Bdim", "vii°"},
		{1, "Cmaj7", "Imaj"},
		{2, "Dm7", "ii"},
		{5, "G7", "v"},
		{7, "Bhalf-dim7", "vii°"},
		{2, "Ddim", "ii°"},
		{3, "Dmm", "iii"},
	}

	for _, c := range cases {
		t.Run(c.label, func(t *testing.T) {
			assert.Equal(t, c.want, Decorate(c.degree, c.label))
		})
	}
}

func TestTrackName(t *testing.T) {
	assert.Equal(t, "7 - vii° - Bdim", TrackName(7, "Bdim"))
	assert.Equal(t, "4 - IVmaj - Fmaj7", TrackName(4, "Fmaj7"))
}

func TestNumeralOutOfRange(t *testing.T) {
	assert.Equal(t, "8", Numeral(8))
}
