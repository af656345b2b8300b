package timer

import (
	"math"
	"math/bits"
	"time"

	"github.com/jsphweid/midnote/constants"
	"github.com/jsphweid/midnote/model"
	"github.com/pkg/errors"
)

var ErrTimingUnsupported = errors.New("unsupported timing")

const maxDuration = time.Duration(math.MaxInt64)

// Timer turns tick gaps into wall-clock durations.
type Timer interface {
	SleepDuration(ticks uint64) time.Duration
	// ChangeTempo affects every duration computed afterwards, never the
	// ones already handed out.
	ChangeTempo(microsPerBeat uint32)
}

func New(t model.Timing) (Timer, error) {
	switch t.Kind {
	case model.Metrical:
		if t.TicksPerBeat == 0 {
			return nil, errors.Wrap(ErrTimingUnsupported, "metrical timing with 0 ticks per beat")
		}
		return NewTicker(t.TicksPerBeat), nil
	case model.Timecode:
		if t.FramesPerSecond == 0 || t.TicksPerFrame == 0 {
			return nil, errors.Wrapf(ErrTimingUnsupported, "timecode timing %v", t)
		}
		return NewTimecode(t.FramesPerSecond, t.TicksPerFrame), nil
	}
	return nil, errors.Wrapf(ErrTimingUnsupported, "timing kind %v", t.Kind)
}

// Ticker is the metrical timer, driven by ticks per beat and the active tempo.
type Ticker struct {
	TicksPerBeat  uint16
	microsPerBeat uint32
}

func NewTicker(ticksPerBeat uint16) *Ticker {
	return &Ticker{TicksPerBeat: ticksPerBeat, microsPerBeat: constants.DefaultMicrosPerBeat}
}

func (t *Ticker) SleepDuration(ticks uint64) time.Duration {
	return ticksToDuration(ticks, t.microsPerBeat, t.TicksPerBeat)
}

func (t *Ticker) ChangeTempo(microsPerBeat uint32) {
	if microsPerBeat == 0 {
		return
	}
	t.microsPerBeat = microsPerBeat
}

func (t *Ticker) Tempo() uint32 {
	return t.microsPerBeat
}

// Timecode has a fixed tick length; tempo changes don't apply.
type Timecode struct {
	framesPerSecond float64
	ticksPerFrame   uint8
}

func NewTimecode(fps, ticksPerFrame uint8) *Timecode {
	rate := float64(fps)
	if fps == 29 {
		// 29 means 30 drop-frame
		rate = 29.97
	}
	return &Timecode{framesPerSecond: rate, ticksPerFrame: ticksPerFrame}
}

func (t *Timecode) SleepDuration(ticks uint64) time.Duration {
	ticksPerSecond := t.framesPerSecond * float64(t.ticksPerFrame)
	nanos := float64(ticks) * float64(time.Second) / ticksPerSecond
	if nanos >= float64(maxDuration) {
		return maxDuration
	}
	return time.Duration(nanos)
}

func (t *Timecode) ChangeTempo(uint32) {}

// ticksToDuration saturates at maxDuration instead of wrapping.
func ticksToDuration(ticks uint64, microsPerBeat uint32, ticksPerBeat uint16) time.Duration {
	hi, lo := bits.Mul64(ticks, uint64(microsPerBeat)*uint64(time.Microsecond))
	if hi >= uint64(ticksPerBeat) {
		return maxDuration
	}
	nanos, _ := bits.Div64(hi, lo, uint64(ticksPerBeat))
	if nanos > uint64(maxDuration) {
		return maxDuration
	}
	return time.Duration(nanos)
}

func addDurations(a, b time.Duration) time.Duration {
	if a > maxDuration-b {
		return maxDuration
	}
	return a + b
}
