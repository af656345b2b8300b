package info

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/jsphweid/midnote/model"
	"github.com/jsphweid/midnote/util"
)

var (
	headerStyle    = lipgloss.NewStyle().Bold(true)
	separatorStyle = lipgloss.NewStyle().Faint(true)
)

const separator = "--------------------------"

// Display prints the human readable report. Tracks come out in ascending
// order.
func Display(w io.Writer, info model.MidiInfo) {
	fmt.Fprintln(w, headerStyle.Render(fmt.Sprintf("the file has %v tracks", info.NumTracks)))
	fmt.Fprintf(w, "num tempi: %v\n", len(info.Tempi))
	fmt.Fprintf(w, "tempi: %v\n", formatTempi(info.Tempi))

	for n := 1; n <= len(info.Tracks); n++ {
		track, _ := info.Track(n)
		fmt.Fprintf(w, "track %v instruments: %v\n", n, formatNames(track.Instruments))
		fmt.Fprintf(w, "track %v channels: %v\n", n, track.Channels)
		fmt.Fprintf(w, "track %v ports: %v\n", n, track.Ports)
		fmt.Fprintf(w, "track %v number of notes: %v\n", n, track.NumNotes)
		fmt.Fprintln(w, separatorStyle.Render(separator))
	}

	fmt.Fprintf(w, "total number of notes: %v\n", util.Sum(noteCounts(info)))
}

func DisplayJSON(w io.Writer, info model.MidiInfo) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(info)
}

func noteCounts(info model.MidiInfo) []int {
	counts := make([]int, 0, len(info.Tracks))
	for _, t := range info.Tracks {
		counts = append(counts, t.NumNotes)
	}
	return counts
}

func formatTempi(tempi []float64) string {
	parts := make([]string, 0, len(tempi))
	for _, t := range tempi {
		parts = append(parts, fmt.Sprintf("%g", t))
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

func formatNames(names []string) string {
	parts := make([]string, 0, len(names))
	for _, n := range names {
		parts = append(parts, fmt.Sprintf("%q", n))
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
