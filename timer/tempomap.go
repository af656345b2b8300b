package timer

import (
	"time"

	"github.com/jsphweid/midnote/constants"
	"github.com/jsphweid/midnote/model"
	"github.com/jsphweid/midnote/sheet"
	"golang.org/x/exp/slices"
)

type TempoChange struct {
	Tick          uint64
	MicrosPerBeat uint32
}

// TempoMap answers "how long from the start until tick T" for metrical
// files. It always has an entry at tick 0.
type TempoMap struct {
	ticksPerBeat uint16
	changes      []TempoChange
}

func NewTempoMap(ticksPerBeat uint16, changes []TempoChange) *TempoMap {
	sorted := make([]TempoChange, 0, len(changes)+1)
	for _, c := range changes {
		if c.MicrosPerBeat > 0 {
			sorted = append(sorted, c)
		}
	}
	slices.SortStableFunc(sorted, func(a, b TempoChange) bool {
		return a.Tick < b.Tick
	})
	if len(sorted) == 0 || sorted[0].Tick != 0 {
		sorted = append([]TempoChange{{Tick: 0, MicrosPerBeat: constants.DefaultMicrosPerBeat}}, sorted...)
	}
	return &TempoMap{ticksPerBeat: ticksPerBeat, changes: sorted}
}

// TempoMapFromSheet collects the tempo events of a merged sheet, whichever
// track they came from.
func TempoMapFromSheet(ticksPerBeat uint16, s sheet.Sheet) *TempoMap {
	var changes []TempoChange
	for _, e := range s {
		if e.Event.IsMeta(model.MetaTempo) {
			changes = append(changes, TempoChange{Tick: e.Tick, MicrosPerBeat: e.Event.Meta.Tempo})
		}
	}
	return NewTempoMap(ticksPerBeat, changes)
}

func (m *TempoMap) Changes() []TempoChange {
	return m.changes
}

// At integrates the map over [0, tick).
func (m *TempoMap) At(tick uint64) time.Duration {
	if m.ticksPerBeat == 0 {
		return 0
	}
	var total time.Duration
	for i, c := range m.changes {
		if c.Tick >= tick {
			break
		}
		end := tick
		if i+1 < len(m.changes) && m.changes[i+1].Tick < tick {
			end = m.changes[i+1].Tick
		}
		total = addDurations(total, ticksToDuration(end-c.Tick, c.MicrosPerBeat, m.ticksPerBeat))
	}
	return total
}
