package note

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPitchMiddleC(t *testing.T) {
	p, err := Pitch("C")
	require.NoError(t, err)
	assert.Equal(t, 60, p)
}

func TestPitchUnknown(t *testing.T) {
	_, err := Pitch("H")
	assert.True(t, errors.Is(err, ErrUnknownNote))
}

func TestLiftKeepsPitchAtOrAboveFloor(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(64, Lift(64, 60))
	assert.Equal(64, Lift(64, 64))
	assert.Equal(72, Lift(60, 61))
	assert.Equal(84, Lift(60, 73))
}

func TestResolveIsEnharmonicAndAboveFloor(t *testing.T) {
	for name, base := range Pitches {
		for _, floor := range []int{0, 59, 60, 71, 72, 90} {
			got, err := Resolve(name, floor)
			require.NoError(t, err)
			assert.GreaterOrEqual(t, got, floor, name)
			if got > base {
				assert.Less(t, got-Octave, floor, name)
			}
			assert.Equal(t, 0, (got-base)%Octave, name)
		}
	}
}
