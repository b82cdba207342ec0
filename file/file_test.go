package file

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/jsphweid/chordscales/chord"
	"github.com/jsphweid/chordscales/midi"
	"github.com/jsphweid/chordscales/model"
	"github.com/jsphweid/chordscales/scale"
	"github.com/jsphweid/chordscales/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gitlab.com/gomidi/midi/v2/smf"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func summarize(t *testing.T, b []byte) model.TrackSummary {
	t.Helper()
	s, err := smf.ReadFrom(bytes.NewReader(b))
	require.NoError(t, err)
	summary, err := midi.Summarize(s)
	require.NoError(t, err)
	return summary
}

// groups splits a track into the pitches of each struck chord, pairing
// every run of note-ons with the run of note-offs that follows it.
func groups(t *testing.T, events []model.NoteEvent) [][]uint8 {
	t.Helper()
	var res [][]uint8
	var on, off []uint8
	flush := func() {
		if len(on) == 0 {
			return
		}
		require.Equal(t, on, off, "note-offs must mirror note-ons")
		res = append(res, on)
		on, off = nil, nil
	}
	for _, e := range events {
		if e.IsNoteOff {
			off = append(off, e.Key)
			continue
		}
		if len(off) > 0 {
			flush()
		}
		on = append(on, e.Key)
	}
	flush()
	return res
}

func TestRenderScaleCmaj(t *testing.T) {
	s, err := scale.Lookup("Cmaj")
	require.NoError(t, err)
	rendered, err := RenderScale(s, model.DefaultSettings())
	require.NoError(t, err)
	assert.Empty(t, rendered.Skipped)

	summary := summarize(t, rendered.Bytes)
	assert.Equal(t, "Cmaj", summary.Name)
	assert.Equal(t, [][]uint8{
		{60, 64, 67},
		{62, 65, 69},
		{64, 67, 71},
		{65, 69, 72},
		{67, 71, 74},
		{69, 72, 76},
		{71, 74, 77},
	}, groups(t, summary.Events))
}

func TestRenderScaleRootsNeverDescend(t *testing.T) {
	for _, s := range scale.All {
		t.Run(s.Name, func(t *testing.T) {
			rendered, err := RenderScale(s, model.DefaultSettings())
			require.NoError(t, err)
			require.Empty(t, rendered.Skipped)

			chords := groups(t, summarize(t, rendered.Bytes).Events)
			require.Len(t, chords, scale.Degrees)
			for i := 1; i < len(chords); i++ {
				assert.LessOrEqual(t, chords[i-1][0], chords[i][0])
			}
			for _, c := range chords {
				for _, p := range c {
					assert.GreaterOrEqual(t, p, c[0])
				}
			}
		})
	}
}

func TestRenderScaleUnknownSeed(t *testing.T) {
	s := scale.Scale{Name: "Hmaj", Chords: [scale.Degrees]string{"Cmaj"}}
	_, err := RenderScale(s, model.DefaultSettings())
	assert.True(t, errors.Is(err, chord.ErrUnknownChord))
}

func TestRenderChordUsesOwnRootOnly(t *testing.T) {
	rendered, err := RenderChord(4, "Fmaj", model.DefaultSettings())
	require.NoError(t, err)
	assert.Equal(t, "4 - IV - Fmaj", rendered.Name)

	summary := summarize(t, rendered.Bytes)
	assert.Equal(t, "4 - IV - Fmaj", summary.Name)
	assert.Equal(t, [][]uint8{{65, 69, 72}}, groups(t, summary.Events))
}

func TestRenderChordUnknown(t *testing.T) {
	rendered, err := RenderChord(2, "Dmm", model.DefaultSettings())
	require.NoError(t, err)
	require.Len(t, rendered.Skipped, 1)
	assert.True(t, errors.Is(rendered.Skipped[0], chord.ErrUnknownChord))
	assert.Empty(t, summarize(t, rendered.Bytes).Events)
}

func TestWriteScaleLayout(t *testing.T) {
	dir := t.TempDir()
	s, err := scale.Lookup("Cmaj")
	require.NoError(t, err)
	require.NoError(t, NewWriter(dir, model.DefaultSettings(), nil).WriteScale(s))

	paths, err := util.GatherAllMidiPaths(dir, 0)
	require.NoError(t, err)

	var names []string
	for _, p := range paths {
		assert.Equal(t, filepath.Join(dir, "Cmaj"), filepath.Dir(p))
		names = append(names, filepath.Base(p))
	}
	assert.ElementsMatch(t, []string{
		"Cmaj Scale.mid",
		"1 - I - Cmaj.mid",
		"2 - ii - Dm.mid",
		"3 - iii - Em.mid",
		"4 - IV - Fmaj.mid",
		"5 - V - Gmaj.mid",
		"6 - vi - Am.mid",
		"7 - vii° - Bdim.mid",
	}, names)
}

func TestWriteScaleKeepsGoingPastUnknownChord(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	dir := t.TempDir()
	s := scale.Scale{
		Name:   "Cmaj",
		Chords: [scale.Degrees]string{"Cmaj", "Dmm", "Em", "Fmaj", "Gmaj", "Am", "Bdim"},
	}
	require.NoError(t, NewWriter(dir, model.DefaultSettings(), zap.New(core)).WriteScale(s))

	assert.Equal(t, 1, logs.FilterMessage("Error at 2 - ii - Dmm").Len())

	b, err := os.ReadFile(filepath.Join(dir, "Cmaj", "2 - ii - Dmm.mid"))
	require.NoError(t, err)
	summary := summarize(t, b)
	assert.Equal(t, "2 - ii - Dmm", summary.Name)
	assert.Empty(t, summary.Events)

	b, err = os.ReadFile(filepath.Join(dir, "Cmaj", "3 - iii - Em.mid"))
	require.NoError(t, err)
	assert.Len(t, summarize(t, b).Events, 6)

	b, err = os.ReadFile(filepath.Join(dir, "Cmaj", "Cmaj Scale.mid"))
	require.NoError(t, err)
	assert.Len(t, groups(t, summarize(t, b).Events), 6)
}

func readTree(t *testing.T, dir string) map[string][]byte {
	t.Helper()
	paths, err := util.GatherAllMidiPaths(dir, 0)
	require.NoError(t, err)
	res := make(map[string][]byte)
	for _, p := range paths {
		rel, err := filepath.Rel(dir, p)
		require.NoError(t, err)
		b, err := os.ReadFile(p)
		require.NoError(t, err)
		res[rel] = b
	}
	return res
}

func TestWriteAllIsDeterministic(t *testing.T) {
	settings := model.Settings{Tempo: 90, Seconds: 2, Velocity: 100}
	first, second := t.TempDir(), t.TempDir()

	require.NoError(t, NewWriter(first, settings, nil).WriteAll(context.Background(), scale.All, 1))
	require.NoError(t, NewWriter(second, settings, nil).WriteAll(context.Background(), scale.All, 4))

	a, b := readTree(t, first), readTree(t, second)
	assert.Len(t, a, len(scale.All)*(scale.Degrees+1))
	assert.Equal(t, a, b)

	// running again over an existing tree rewrites the same bytes
	require.NoError(t, NewWriter(first, settings, nil).WriteAll(context.Background(), scale.All, 2))
	assert.Equal(t, a, readTree(t, first))
}

func TestWriteAllRejectsNoWorkers(t *testing.T) {
	err := NewWriter(t.TempDir(), model.DefaultSettings(), nil).WriteAll(context.Background(), scale.All, 0)
	assert.Error(t, err)
}

func TestWriteAllStopsOnFatalScale(t *testing.T) {
	scales := []scale.Scale{{Name: "Hmaj"}}
	err := NewWriter(t.TempDir(), model.DefaultSettings(), nil).WriteAll(context.Background(), scales, 1)
	assert.True(t, errors.Is(err, chord.ErrUnknownChord))
}

func TestWriteAllCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := NewWriter(t.TempDir(), model.DefaultSettings(), nil).WriteAll(ctx, scale.All, 1)
	assert.True(t, errors.Is(err, context.Canceled))
}
