package cmd

import (
	"fmt"

	"github.com/jsphweid/midnote/sink"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(portsCmd)
}

var portsCmd = &cobra.Command{
	Use:   "ports",
	Short: "Lists MIDI output ports",
	Long:  `Lists MIDI output ports with the index to pass to --device.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		defer sink.CloseDriver()
		ports := sink.Ports()
		if len(ports) == 0 {
			return sink.ErrNoDevice
		}
		for i, port := range ports {
			fmt.Fprintf(cmd.OutOrStdout(), "%v: %v\n", i, port)
		}
		return nil
	},
}
