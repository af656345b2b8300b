package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/jsphweid/midnote/constants"
	"github.com/jsphweid/midnote/logger"
	"github.com/jsphweid/midnote/midi"
	"github.com/jsphweid/midnote/model"
	"github.com/jsphweid/midnote/player"
	"github.com/jsphweid/midnote/sink"
	"github.com/jsphweid/midnote/timer"
	"github.com/spf13/cobra"
	_ "gitlab.com/gomidi/midi/v2/drivers/rtmididrv" // autoregisters driver
)

var deviceIndex int

func addDeviceFlag(c *cobra.Command) {
	c.Flags().IntVarP(&deviceIndex, "device", "d", constants.GetDeviceIndex(), "index of the MIDI output port (see ports)")
}

func init() {
	addDeviceFlag(playCmd)
	rootCmd.AddCommand(playCmd)
}

var playCmd = &cobra.Command{
	Use:   "play <file>",
	Short: "Plays a MIDI file on an output device",
	Long:  `Plays a MIDI file on an output device. Ctrl+C stops playback.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := midi.ReadMidiFile(args[0])
		if err != nil {
			return err
		}
		return play(withLogger(cmd.Context()), f, deviceIndex)
	},
}

func play(ctx context.Context, f *model.File, device int) error {
	l := logger.FromContext(ctx)

	t, s, err := player.Prepare(f)
	if err != nil {
		return err
	}
	if f.Timing.Kind == model.Metrical {
		tm := timer.TempoMapFromSheet(f.Timing.TicksPerBeat, s)
		l.Info("prepared sheet", "format", f.Format, "timing", f.Timing, "events", len(s),
			"tempo_changes", len(tm.Changes()), "length", tm.At(s.End()))
	}

	defer sink.CloseDriver()
	conn, err := sink.Connect(ctx, sink.Ports(), device)
	if err != nil {
		return err
	}

	l.Info("playing", "port", conn.Name(), "device", device)

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	return <-player.New(t, conn).Start(ctx, s)
}
