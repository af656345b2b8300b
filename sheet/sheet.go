package sheet

import (
	"github.com/jsphweid/midnote/model"
	"github.com/pkg/errors"
)

var ErrMissingEndOfTrack = errors.New("track has no end-of-track event")

type Entry struct {
	// Tick is the absolute position from the start of the sheet.
	Tick  uint64
	Track int // 1-based
	Event model.Event
}

// Sheet is the merged, time ordered event stream of one playback.
type Sheet []Entry

// Delta is the number of ticks between entry i and the one before it.
func (s Sheet) Delta(i int) uint64 {
	if i <= 0 {
		return s[0].Tick
	}
	return s[i].Tick - s[i-1].Tick
}

// End is the tick of the last entry.
func (s Sheet) End() uint64 {
	if len(s) == 0 {
		return 0
	}
	return s[len(s)-1].Tick
}

// ForFormat picks the merge that matches the file's declared format.
func ForFormat(format model.Format, tracks []model.Track) (Sheet, error) {
	switch format {
	case model.SingleTrack, model.Sequential:
		return Sequential(tracks)
	case model.Parallel:
		return Parallel(tracks), nil
	}
	return nil, errors.Errorf("unknown file format %v", format)
}

// Sequential plays tracks one after another. Each track must be closed by an
// end-of-track event; the next track starts on the tick after it.
func Sequential(tracks []model.Track) (Sheet, error) {
	var res Sheet
	var offset uint64

	for i, track := range tracks {
		absTicks := offset
		closed := false
		for _, evt := range track {
			absTicks += uint64(evt.Delta)
			res = append(res, Entry{Tick: absTicks, Track: i + 1, Event: evt})
			if evt.IsEndOfTrack() {
				closed = true
				break
			}
		}
		if !closed {
			return nil, errors.Wrapf(ErrMissingEndOfTrack, "sequential merge of track %v", i+1)
		}
		offset = absTicks + 1
	}

	return res, nil
}

// Parallel starts every track at tick 0 and interleaves them by absolute
// tick. Ties go to the lower track.
func Parallel(tracks []model.Track) Sheet {
	// trackPos is the index of the NEXT event of each track,
	// trackTime the time of the LAST event taken from it.
	trackPos := make([]int, len(tracks))
	trackTime := make([]uint64, len(tracks))
	done := make([]bool, len(tracks))

	var res Sheet
	for {
		earliest := -1
		var earliestTime uint64
		for i, track := range tracks {
			if done[i] || trackPos[i] >= len(track) {
				continue
			}
			t := trackTime[i] + uint64(track[trackPos[i]].Delta)
			if earliest < 0 || t < earliestTime {
				earliest = i
				earliestTime = t
			}
		}
		if earliest < 0 {
			return res
		}

		evt := tracks[earliest][trackPos[earliest]]
		res = append(res, Entry{Tick: earliestTime, Track: earliest + 1, Event: evt})
		trackPos[earliest]++
		trackTime[earliest] = earliestTime
		if evt.IsEndOfTrack() {
			done[earliest] = true
		}
	}
}
