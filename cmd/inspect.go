package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jsphweid/chordscales/midi"
)

func init() {
	rootCmd.AddCommand(inspectCmd)
}

var inspectCmd = &cobra.Command{
	Use:   "inspect <file.mid>",
	Short: "Prints the track of a generated midi file",
	Long:  `Prints the track name, tempo and every note event of a generated midi file.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return inspect(cmd, args[0])
	},
}

func inspect(cmd *cobra.Command, path string) error {
	s, err := midi.ReadMidiFile(path)
	if err != nil {
		return err
	}
	summary, err := midi.Summarize(s)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "name:  %v\n", summary.Name)
	fmt.Fprintf(out, "tempo: %v\n", summary.Tempo)
	fmt.Fprintf(out, "notes: %v\n", len(summary.Events))
	for _, e := range summary.Events {
		fmt.Fprintln(out, midi.FormatEvent(e))
	}
	return nil
}
