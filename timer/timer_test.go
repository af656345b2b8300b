package timer

import (
	"math"
	"testing"
	"time"

	"github.com/jsphweid/midnote/model"
	"github.com/jsphweid/midnote/sheet"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	cases := []struct {
		name   string
		timing model.Timing
		ok     bool
	}{
		{"metrical", model.MetricalTiming(480), true},
		{"timecode", model.TimecodeTiming(25, 40), true},
		{"zero ticks per beat", model.MetricalTiming(0), false},
		{"zero fps", model.TimecodeTiming(0, 40), false},
		{"zero ticks per frame", model.TimecodeTiming(30, 0), false},
		{"unknown", model.Timing{}, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			timer, err := New(c.timing)
			if c.ok {
				assert.NoError(t, err)
				assert.NotNil(t, timer)
				return
			}
			assert.True(t, errors.Is(err, ErrTimingUnsupported))
		})
	}
}

func TestTickerDefaultsTo120BPM(t *testing.T) {
	ticker := NewTicker(480)
	assert := assert.New(t)
	assert.Equal(uint32(500000), ticker.Tempo())
	assert.Equal(500*time.Millisecond, ticker.SleepDuration(480))
	assert.Equal(time.Duration(0), ticker.SleepDuration(0))
}

func TestTickerTempoChangeOnlyAffectsLaterTicks(t *testing.T) {
	ticker := NewTicker(480)
	before := ticker.SleepDuration(480)
	ticker.ChangeTempo(250000)
	after := ticker.SleepDuration(240)

	assert := assert.New(t)
	assert.Equal(500*time.Millisecond, before)
	assert.Equal(125*time.Millisecond, after)
	assert.InDelta(480*(500000.0/480)/1e6+240*(250000.0/480)/1e6, (before + after).Seconds(), 1e-9)

	ticker.ChangeTempo(0)
	assert.Equal(uint32(250000), ticker.Tempo())
}

func TestTimecode(t *testing.T) {
	assert := assert.New(t)

	tc := NewTimecode(25, 40)
	assert.Equal(time.Second, tc.SleepDuration(1000))
	tc.ChangeTempo(250000)
	assert.Equal(time.Second, tc.SleepDuration(1000))

	drop := NewTimecode(29, 1)
	assert.InDelta(float64(100*time.Second), float64(drop.SleepDuration(2997)), float64(time.Microsecond))
	assert.InDelta(float64(time.Second)*100/29.97, float64(drop.SleepDuration(100)), float64(time.Microsecond))
}

func TestTempoMapAt(t *testing.T) {
	m := NewTempoMap(480, []TempoChange{
		{Tick: 0, MicrosPerBeat: 500000},
		{Tick: 480, MicrosPerBeat: 250000},
	})

	want := 480*(500000.0/480)/1e6 + 240*(250000.0/480)/1e6
	assert := assert.New(t)
	assert.InDelta(want, m.At(720).Seconds(), 1e-9)
	assert.Equal(500*time.Millisecond, m.At(480))
	assert.Equal(250*time.Millisecond, m.At(240))
	assert.Equal(time.Duration(0), m.At(0))
}

func TestTempoMapDefaultsAndOrdering(t *testing.T) {
	m := NewTempoMap(480, []TempoChange{
		{Tick: 960, MicrosPerBeat: 1000000},
		{Tick: 480, MicrosPerBeat: 0},
	})

	assert := assert.New(t)
	assert.Equal([]TempoChange{
		{Tick: 0, MicrosPerBeat: 500000},
		{Tick: 960, MicrosPerBeat: 1000000},
	}, m.Changes())
	assert.Equal(time.Second+time.Second, m.At(1440))
}

func TestTempoMapFromSheet(t *testing.T) {
	conductor := model.Track{
		model.TempoEvent(0, 500000),
		model.EndOfTrackEvent(0),
	}
	melody := model.Track{
		model.NoteOnEvent(0, 0, 60, 100),
		model.TempoEvent(480, 250000),
		model.NoteOffEvent(240, 0, 60),
		model.EndOfTrackEvent(0),
	}
	m := TempoMapFromSheet(480, sheet.Parallel([]model.Track{conductor, melody}))

	assert := assert.New(t)
	assert.Equal([]TempoChange{
		{Tick: 0, MicrosPerBeat: 500000},
		{Tick: 480, MicrosPerBeat: 250000},
	}, m.Changes())
	assert.Equal(625*time.Millisecond, m.At(720))
}

func TestTickerMatchesTempoMap(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	properties.Property("stepping a ticker through tempo changes equals integrating the map", prop.ForAll(
		func(gaps []uint32, tempos []uint32) bool {
			n := len(gaps)
			if len(tempos) < n {
				n = len(tempos)
			}
			ticker := NewTicker(96)
			var changes []TempoChange
			var tick uint64
			var elapsed time.Duration
			for i := 0; i < n; i++ {
				elapsed += ticker.SleepDuration(uint64(gaps[i]))
				tick += uint64(gaps[i])
				ticker.ChangeTempo(tempos[i])
				changes = append(changes, TempoChange{Tick: tick, MicrosPerBeat: tempos[i]})
			}
			m := NewTempoMap(96, changes)
			diff := m.At(tick) - elapsed
			return diff > -time.Microsecond && diff < time.Microsecond
		},
		gen.SliceOf(gen.UInt32Range(0, 2000)),
		gen.SliceOf(gen.UInt32Range(1, 2000000)),
	))

	properties.TestingRun(t)
}

func TestTickerIsATimer(t *testing.T) {
	timer, err := New(model.MetricalTiming(96))
	require.NoError(t, err)
	_, ok := timer.(*Ticker)
	assert.True(t, ok)
}

func TestTickerLongGaps(t *testing.T) {
	assert := assert.New(t)

	// the intermediate product overflows 64 bits, the result does not
	ticker := NewTicker(96)
	ticker.ChangeTempo(0xFFFFFF)
	assert.Equal(time.Duration(750599893155840000), ticker.SleepDuration(1<<32))

	slow := NewTicker(1)
	slow.ChangeTempo(0xFFFFFF)
	assert.Equal(time.Duration(math.MaxInt64), slow.SleepDuration(1<<40))
	assert.Equal(time.Duration(math.MaxInt64), slow.SleepDuration(math.MaxUint32))

	m := NewTempoMap(1, []TempoChange{{Tick: 0, MicrosPerBeat: 0xFFFFFF}, {Tick: 1 << 40, MicrosPerBeat: 0xFFFFFF}})
	assert.Equal(time.Duration(math.MaxInt64), m.At(1<<41))
}

func TestTimecodeLongGaps(t *testing.T) {
	tc := NewTimecode(24, 1)
	assert.Equal(t, time.Duration(math.MaxInt64), tc.SleepDuration(math.MaxUint64))
}
