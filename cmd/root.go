package cmd

import (
	"context"
	"os"

	"github.com/charmbracelet/log"
	"github.com/jsphweid/midnote/constants"
	"github.com/jsphweid/midnote/logger"
	"github.com/spf13/cobra"
)

var logLevel string

var rootCmd = &cobra.Command{
	Use:   "midnote",
	Short: "Describes and plays MIDI files",
	Long: `midnote reports the instruments, channels, ports, tempi and note counts
of a Standard MIDI File, and can play it on a MIDI output device.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		l, err := logger.New(os.Stderr, logLevel)
		if err != nil {
			return err
		}
		log.SetDefault(l)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", constants.GetLogLevel(), "debug, info, warn or error")
}

// withLogger hands the configured logger to library code through the context.
func withLogger(ctx context.Context) context.Context {
	return logger.WithContext(ctx, log.Default())
}

func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}
