package cmd

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jsphweid/chordscales/constants"
	"github.com/jsphweid/chordscales/midi"
	"github.com/jsphweid/chordscales/util"
)

func init() {
	rootCmd.AddCommand(reportCmd)
}

var reportCmd = &cobra.Command{
	Use:   "report [dir]",
	Short: "Creates a report",
	Long:  `Counts the scale folders, midi files and note events under an output directory.`,
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dir := constants.GetOutDir()
		if len(args) == 1 {
			dir = args[0]
		}
		r, err := analyze(dir)
		if err != nil {
			return err
		}
		r.print(cmd.OutOrStdout())
		return nil
	},
}

type outputReport struct {
	numScales     int
	numFiles      int
	numEmptyFiles int
	// note-on count per file
	notesPerFile []int
}

func analyze(dir string) (outputReport, error) {
	var report outputReport

	paths, err := util.GatherAllMidiPaths(dir, 0)
	if err != nil {
		return report, err
	}

	scales := make(map[string]bool)
	for _, path := range paths {
		s, err := midi.ReadMidiFile(path)
		if err != nil {
			log.Warn("Skipping file", zap.String("path", path), zap.Error(err))
			continue
		}
		summary, err := midi.Summarize(s)
		if err != nil {
			log.Warn("Skipping file", zap.String("path", path), zap.Error(err))
			continue
		}

		var notes int
		for _, e := range summary.Events {
			if !e.IsNoteOff {
				notes++
			}
		}

		scales[filepath.Dir(path)] = true
		report.numFiles++
		report.notesPerFile = append(report.notesPerFile, notes)
		if notes == 0 {
			report.numEmptyFiles++
		}
	}
	report.numScales = len(scales)
	return report, nil
}

func (r outputReport) print(w io.Writer) {
	fmt.Fprintf(w, "scales: %v\n", r.numScales)
	fmt.Fprintf(w, "files: %v\n", r.numFiles)
	fmt.Fprintf(w, "files without notes: %v\n", r.numEmptyFiles)
	fmt.Fprintf(w, "notes: %v\n", util.Sum(r.notesPerFile))
}
