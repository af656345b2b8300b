package model

type EventKind uint8

const (
	ChannelEvent EventKind = iota
	MetaEvent
	SysExEvent
)

type MessageType uint8

// Channel message status nibbles.
const (
	NoteOff           MessageType = 0x80
	NoteOn            MessageType = 0x90
	PolyAftertouch    MessageType = 0xA0
	ControlChange     MessageType = 0xB0
	ProgramChange     MessageType = 0xC0
	ChannelAftertouch MessageType = 0xD0
	PitchBend         MessageType = 0xE0
)

type MetaType uint8

const (
	MetaTrackNumber    MetaType = 0x00
	MetaText           MetaType = 0x01
	MetaTrackName      MetaType = 0x03
	MetaInstrumentName MetaType = 0x04
	MetaMidiChannel    MetaType = 0x20
	MetaMidiPort       MetaType = 0x21
	MetaEndOfTrack     MetaType = 0x2F
	MetaTempo          MetaType = 0x51
	MetaTimeSignature  MetaType = 0x58
	MetaKeySignature   MetaType = 0x59
	// MetaOther is any meta kind not listed above.
	MetaOther MetaType = 0xFF
)

type ChannelMessage struct {
	Channel uint8
	Type    MessageType
	Data1   uint8
	Data2   uint8
}

// Key and Velocity are only meaningful for note and poly aftertouch messages.
func (m ChannelMessage) Key() uint8      { return m.Data1 }
func (m ChannelMessage) Velocity() uint8 { return m.Data2 }

// Program is only meaningful for program changes.
func (m ChannelMessage) Program() uint8 { return m.Data1 }

// IsNoteStart reports a note-on that actually sounds. A note-on with
// velocity 0 is a note-off.
func (m ChannelMessage) IsNoteStart() bool {
	return m.Type == NoteOn && m.Data2 > 0
}

type MetaMessage struct {
	Type MetaType
	// Tempo is in microseconds per beat, set for MetaTempo.
	Tempo uint32
	// Value holds the single data byte of MetaMidiChannel and MetaMidiPort.
	Value uint8
	Text  string
	// Data holds the raw bytes of a SysExEvent.
	Data []byte
}

type Event struct {
	// Delta is the number of ticks since the previous event on the same track.
	Delta   uint32
	Kind    EventKind
	Channel ChannelMessage
	Meta    MetaMessage
}

func (e Event) IsMeta(t MetaType) bool {
	return e.Kind == MetaEvent && e.Meta.Type == t
}

func (e Event) IsEndOfTrack() bool {
	return e.IsMeta(MetaEndOfTrack)
}

type Track = []Event

func NoteOnEvent(delta uint32, channel, key, velocity uint8) Event {
	return channelEvent(delta, ChannelMessage{Channel: channel, Type: NoteOn, Data1: key, Data2: velocity})
}

func NoteOffEvent(delta uint32, channel, key uint8) Event {
	return channelEvent(delta, ChannelMessage{Channel: channel, Type: NoteOff, Data1: key})
}

func ProgramChangeEvent(delta uint32, channel, program uint8) Event {
	return channelEvent(delta, ChannelMessage{Channel: channel, Type: ProgramChange, Data1: program})
}

func ControlChangeEvent(delta uint32, channel, controller, value uint8) Event {
	return channelEvent(delta, ChannelMessage{Channel: channel, Type: ControlChange, Data1: controller, Data2: value})
}

func TempoEvent(delta uint32, microsPerBeat uint32) Event {
	return Event{Delta: delta, Kind: MetaEvent, Meta: MetaMessage{Type: MetaTempo, Tempo: microsPerBeat}}
}

func MidiPortEvent(delta uint32, port uint8) Event {
	return Event{Delta: delta, Kind: MetaEvent, Meta: MetaMessage{Type: MetaMidiPort, Value: port}}
}

func MidiChannelEvent(delta uint32, channel uint8) Event {
	return Event{Delta: delta, Kind: MetaEvent, Meta: MetaMessage{Type: MetaMidiChannel, Value: channel}}
}

func TrackNameEvent(delta uint32, name string) Event {
	return Event{Delta: delta, Kind: MetaEvent, Meta: MetaMessage{Type: MetaTrackName, Text: name}}
}

func EndOfTrackEvent(delta uint32) Event {
	return Event{Delta: delta, Kind: MetaEvent, Meta: MetaMessage{Type: MetaEndOfTrack}}
}

func channelEvent(delta uint32, m ChannelMessage) Event {
	return Event{Delta: delta, Kind: ChannelEvent, Channel: m}
}
