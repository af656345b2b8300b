package cmd

import (
	"fmt"
	"io"

	"github.com/jsphweid/midnote/info"
	"github.com/jsphweid/midnote/midi"
	"github.com/jsphweid/midnote/model"
	"github.com/spf13/cobra"
)

var (
	inspectJSON bool
	inspectPlay bool
)

func init() {
	inspectCmd.Flags().BoolVar(&inspectJSON, "json", false, "print the report as JSON")
	inspectCmd.Flags().BoolVarP(&inspectPlay, "play", "p", false, "play the file after reporting")
	addDeviceFlag(inspectCmd)
	rootCmd.AddCommand(inspectCmd)
}

var inspectCmd = &cobra.Command{
	Use:   "inspect <file>",
	Short: "Reports what a MIDI file contains",
	Long:  `Reports track count, tempi and per track instruments, channels, ports and note counts.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return inspect(cmd, args[0])
	},
}

func inspect(cmd *cobra.Command, path string) error {
	f, err := Report(cmd.OutOrStdout(), path, inspectJSON)
	if err != nil {
		return err
	}
	if !inspectPlay {
		return nil
	}
	return play(withLogger(cmd.Context()), f, deviceIndex)
}

// Report decodes the file at path and writes its metadata report to w.
func Report(w io.Writer, path string, asJSON bool) (*model.File, error) {
	f, err := midi.ReadMidiFile(path)
	if err != nil {
		return nil, err
	}

	mi := info.GetMidiInfo(f.Tracks)
	if asJSON {
		return f, info.DisplayJSON(w, mi)
	}
	fmt.Fprintf(w, "MIDI filepath: %v\n", path)
	info.Display(w, mi)
	return f, nil
}
