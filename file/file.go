package file

import (
	"context"
	"os"
	"path/filepath"
	"sync"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/jsphweid/chordscales/constants"
	"github.com/jsphweid/chordscales/model"
	"github.com/jsphweid/chordscales/scale"
	"github.com/jsphweid/chordscales/util"
)

// Writer lays scales out on disk, one folder per scale.
type Writer struct {
	OutDir   string
	Settings model.Settings
	Log      *zap.Logger
}

func NewWriter(outDir string, settings model.Settings, log *zap.Logger) *Writer {
	if log == nil {
		log = zap.NewNop()
	}
	return &Writer{OutDir: outDir, Settings: settings, Log: log}
}

func ScaleDir(outDir string, s scale.Scale) string {
	return filepath.Join(outDir, s.Name)
}

func ScaleFileName(s scale.Scale) string {
	return s.Name + constants.ScaleFileStem + constants.MidiFileSuffix
}

func (w *Writer) save(dir string, filename string, data []byte) error {
	path := filepath.Join(dir, filename)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.Wrapf(err, "could not write %v", path)
	}
	w.Log.Debug("wrote midi file", zap.String("path", path), zap.Int("bytes", len(data)))
	return nil
}

// WriteScale writes the scale file and one file per chord of s. Chords that
// can't be voiced are reported and left empty without stopping the others.
func (w *Writer) WriteScale(s scale.Scale) error {
	dir := ScaleDir(w.OutDir, s)
	if err := util.EnsureDir(dir); err != nil {
		return err
	}

	rendered, err := RenderScale(s, w.Settings)
	if err != nil {
		return err
	}
	for _, skipped := range rendered.Skipped {
		w.Log.Debug("chord left out of scale file", zap.String("scale", s.Name), zap.Error(skipped))
	}
	if err := w.save(dir, ScaleFileName(s), rendered.Bytes); err != nil {
		return err
	}

	for i, label := range s.Chords {
		rendered, err := RenderChord(i+1, label, w.Settings)
		if err != nil {
			return err
		}
		for _, skipped := range rendered.Skipped {
			w.Log.Error("Error at "+rendered.Name, zap.String("scale", s.Name), zap.Error(skipped))
		}
		if err := w.save(dir, rendered.Name+constants.MidiFileSuffix, rendered.Bytes); err != nil {
			return err
		}
	}

	w.Log.Info("wrote scale", zap.String("scale", s.Name), zap.String("dir", dir))
	return nil
}

// WriteAll writes every scale using up to workers goroutines. Scales are
// independent, so the files written don't depend on the number of workers.
// The first error stops scheduling further scales.
func (w *Writer) WriteAll(ctx context.Context, scales []scale.Scale, workers int) error {
	if workers <= 0 {
		return errors.Errorf("workers must be > 0, got %v", workers)
	}
	if err := util.EnsureDir(w.OutDir); err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		firstErr error
	)
	fail := func(err error) {
		mu.Lock()
		defer mu.Unlock()
		if firstErr == nil {
			firstErr = err
			cancel()
		}
	}

	goroutines := make(chan struct{}, workers)
loop:
	for _, s := range scales {
		select {
		case goroutines <- struct{}{}:
		case <-ctx.Done():
			break loop
		}
		if ctx.Err() != nil {
			<-goroutines
			break loop
		}

		wg.Add(1)
		go func(s scale.Scale) {
			defer wg.Done()
			defer func() { <-goroutines }()
			if err := w.WriteScale(s); err != nil {
				fail(errors.Wrapf(err, "scale %q", s.Name))
			}
		}(s)
	}
	wg.Wait()

	if firstErr != nil {
		return firstErr
	}
	return ctx.Err()
}
