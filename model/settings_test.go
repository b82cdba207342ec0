package model

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSettingsDefaults(t *testing.T) {
	s, err := ParseSettings(nil)
	require.NoError(t, err)
	assert.Equal(t, Settings{Tempo: 120, Seconds: 1, Velocity: 127}, s)
}

func TestParseSettingsThreeArgs(t *testing.T) {
	s, err := ParseSettings([]string{"90", "2", "100"})
	require.NoError(t, err)
	assert.Equal(t, Settings{Tempo: 90, Seconds: 2, Velocity: 100}, s)
}

func TestParseSettingsUsageErrors(t *testing.T) {
	cases := [][]string{
		{"120"},
		{"120", "1"},
		{"120", "1", "127", "4"},
		{"fast", "1", "127"},
		{"120", "1", "128"},
		{"0", "1", "127"},
		{"120", "-1", "127"},
	}
	for _, args := range cases {
		_, err := ParseSettings(args)
		assert.True(t, errors.Is(err, ErrUsage), "%v", args)
	}
}
