package model

// TrackInfo holds what the aggregator saw on a single track. Lists keep
// encounter order and duplicates.
type TrackInfo struct {
	Number      int      `json:"track"`
	Instruments []string `json:"instruments"`
	Channels    []int    `json:"channels"`
	Ports       []int    `json:"ports"`
	NumNotes    int      `json:"num_notes"`
}

type MidiInfo struct {
	NumTracks int `json:"num_tracks"`
	// Tempi are in BPM, in encounter order across all tracks.
	Tempi []float64 `json:"tempi"`
	// Tracks is indexed by file position; Tracks[0] is track 1.
	Tracks []TrackInfo `json:"tracks"`
}

// Track returns the info for the 1-based track number n.
func (m MidiInfo) Track(n int) (TrackInfo, bool) {
	if n < 1 || n > len(m.Tracks) {
		return TrackInfo{}, false
	}
	return m.Tracks[n-1], true
}
