package cmd

import (
	"context"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jsphweid/chordscales/constants"
	"github.com/jsphweid/chordscales/file"
	"github.com/jsphweid/chordscales/logger"
	"github.com/jsphweid/chordscales/model"
	"github.com/jsphweid/chordscales/scale"
)

var (
	outDir  string
	workers int
	verbose bool

	log = zap.NewNop()
)

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log every file written")
	rootCmd.Flags().StringVarP(&outDir, "out", "o", constants.GetOutDir(), "directory the scale folders are written to (env OUTPUT_DIR)")
	rootCmd.Flags().IntVarP(&workers, "workers", "w", 1, "number of scales written in parallel")
}

var rootCmd = &cobra.Command{
	Use:   "chordscales [bpm] [seconds] [velocity]",
	Short: "Writes midi files for every chord scale",
	Long: `Writes one midi file per chord scale and one per chord of each scale,
organized into a folder per scale. With no arguments every chord is held
for 1 second at 120 bpm with velocity 127.`,
	Example: "  chordscales\n  chordscales 120 2 127",
	Args: func(cmd *cobra.Command, args []string) error {
		_, err := model.ParseSettings(args)
		return err
	},
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		l, err := logger.New(verbose)
		if err != nil {
			return err
		}
		log = l
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true
		settings, err := model.ParseSettings(args)
		if err != nil {
			return err
		}
		return Generate(cmd.Context(), outDir, settings, workers)
	},
}

// Generate writes every scale under dir.
func Generate(ctx context.Context, dir string, settings model.Settings, workers int) error {
	log.Info("generating chord scales",
		zap.String("out", dir),
		zap.Int("tempo", settings.Tempo),
		zap.Int("seconds", settings.Seconds),
		zap.Int("velocity", settings.Velocity),
		zap.Int("scales", len(scale.All)),
	)
	w := file.NewWriter(dir, settings, log)
	return w.WriteAll(ctx, scale.All, workers)
}

func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	log.Sync()
	cobra.CheckErr(err)
}
