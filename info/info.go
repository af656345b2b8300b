package info

import (
	"github.com/jsphweid/midnote/constants"
	"github.com/jsphweid/midnote/instrument"
	"github.com/jsphweid/midnote/model"
)

// GetMidiInfo walks every track once and collects per-track and file-wide
// statistics. Unrecognized events are skipped.
func GetMidiInfo(tracks []model.Track) model.MidiInfo {
	info := model.MidiInfo{
		NumTracks: len(tracks),
		Tempi:     []float64{},
		Tracks:    make([]model.TrackInfo, len(tracks)),
	}

	for i, track := range tracks {
		ti := model.TrackInfo{
			Number:      i + 1,
			Instruments: []string{},
			Channels:    []int{},
			Ports:       []int{},
		}

		for _, evt := range track {
			switch evt.Kind {
			case model.ChannelEvent:
				msg := evt.Channel
				switch {
				case msg.Type == model.ProgramChange:
					ti.Instruments = append(ti.Instruments, instrument.Name(msg.Program()))
				case msg.IsNoteStart():
					// velocity 0 note-ons are note-offs and don't count
					ti.NumNotes += 1
				}
			case model.MetaEvent:
				switch evt.Meta.Type {
				case model.MetaMidiChannel:
					ti.Channels = append(ti.Channels, int(evt.Meta.Value))
				case model.MetaMidiPort:
					ti.Ports = append(ti.Ports, int(evt.Meta.Value))
				case model.MetaTempo:
					// tempo is file-wide no matter which track carries it
					if bpm, ok := BPM(evt.Meta.Tempo); ok {
						info.Tempi = append(info.Tempi, bpm)
					}
				}
			}
		}

		info.Tracks[i] = ti
	}

	return info
}

// BPM converts microseconds per beat to beats per minute. A zero tempo has
// no BPM.
func BPM(microsPerBeat uint32) (float64, bool) {
	if microsPerBeat == 0 {
		return 0, false
	}
	return float64(constants.MicrosPerMinute) / float64(microsPerBeat), true
}
