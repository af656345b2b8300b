package model

import "fmt"

type Format uint8

const (
	SingleTrack Format = iota
	Parallel
	Sequential
)

func (f Format) String() string {
	switch f {
	case SingleTrack:
		return "single track"
	case Parallel:
		return "parallel"
	case Sequential:
		return "sequential"
	}
	return fmt.Sprintf("format(%d)", uint8(f))
}

type TimingKind uint8

const (
	UnknownTiming TimingKind = iota
	Metrical
	Timecode
)

// Timing is the file's fixed time division. Metrical files use TicksPerBeat,
// timecode files use FramesPerSecond and TicksPerFrame.
type Timing struct {
	Kind            TimingKind
	TicksPerBeat    uint16
	FramesPerSecond uint8
	TicksPerFrame   uint8
}

func MetricalTiming(ticksPerBeat uint16) Timing {
	return Timing{Kind: Metrical, TicksPerBeat: ticksPerBeat}
}

func TimecodeTiming(fps, ticksPerFrame uint8) Timing {
	return Timing{Kind: Timecode, FramesPerSecond: fps, TicksPerFrame: ticksPerFrame}
}

func (t Timing) String() string {
	switch t.Kind {
	case Metrical:
		return fmt.Sprintf("%d ticks per beat", t.TicksPerBeat)
	case Timecode:
		return fmt.Sprintf("%d fps, %d ticks per frame", t.FramesPerSecond, t.TicksPerFrame)
	}
	return "unknown timing"
}

type File struct {
	Format Format
	Timing Timing
	Tracks []Track
}
