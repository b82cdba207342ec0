//go:build e2e
// +build e2e

package e2e_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/jsphweid/chordscales/cmd"
	"github.com/jsphweid/chordscales/model"
	"github.com/jsphweid/chordscales/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func generate(t *testing.T, settings model.Settings) map[string][]byte {
	dir := t.TempDir()
	require.NoError(t, cmd.Generate(context.Background(), dir, settings, 4))

	paths, err := util.GatherAllMidiPaths(dir, 0)
	require.NoError(t, err)

	res := make(map[string][]byte)
	for _, path := range paths {
		rel, err := filepath.Rel(dir, path)
		require.NoError(t, err)
		b, err := os.ReadFile(path)
		require.NoError(t, err)
		res[rel] = b
	}
	return res
}

func TestDefaultRunIsReproducible(t *testing.T) {
	first := generate(t, model.DefaultSettings())
	second := generate(t, model.DefaultSettings())

	assert := assert.New(t)
	assert.Len(first, 464)
	assert.Equal(first, second)
	assert.Contains(first, filepath.Join("Cmaj", "Cmaj Scale.mid"))
	assert.Contains(first, filepath.Join("Cmaj7", "7 - vii° - Bhalf-dim7.mid"))
	assert.Contains(first, filepath.Join("Abmaj7", "1 - Imaj - Abmaj7.mid"))
}

func TestSettingsChangeTheBytes(t *testing.T) {
	a := generate(t, model.DefaultSettings())
	b := generate(t, model.Settings{Tempo: 120, Seconds: 2, Velocity: 127})

	key := filepath.Join("Cmaj", "1 - I - Cmaj.mid")
	assert.NotEqual(t, a[key], b[key])
}
