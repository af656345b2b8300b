package sink

import (
	"context"

	"github.com/jsphweid/midnote/logger"
	"github.com/jsphweid/midnote/model"
	"github.com/pkg/errors"
	"gitlab.com/gomidi/midi/v2"
)

var (
	ErrDeviceUnavailable = errors.New("MIDI output device unavailable")
	ErrNoDevice          = errors.Wrap(ErrDeviceUnavailable, "no MIDI output device detected")
	ErrIndexOutOfRange   = errors.Wrap(ErrDeviceUnavailable, "device index out of range")
	ErrConnection        = errors.New("could not connect to MIDI output device")
)

// Port is the part of a driver output port we need. gomidi's drivers.Out
// satisfies it.
type Port interface {
	Open() error
	Close() error
	Send(data []byte) error
	String() string
}

// Ports lists the output ports of the registered driver. Importing a driver
// package (rtmididrv in cmd) is what registers one.
func Ports() []Port {
	outs := midi.GetOutPorts()
	res := make([]Port, 0, len(outs))
	for _, out := range outs {
		res = append(res, out)
	}
	return res
}

// CloseDriver releases the driver. Call it once, when the program is done
// with every port.
func CloseDriver() {
	midi.CloseDriver()
}

// Conn is an open output port. It is not safe for concurrent use; a single
// playback owns it for its whole lifetime.
type Conn struct {
	port Port
	name string
}

// Connect opens ports[index].
func Connect(ctx context.Context, ports []Port, index int) (*Conn, error) {
	log := logger.FromContext(ctx)

	if len(ports) == 0 {
		return nil, ErrNoDevice
	}
	if index < 0 || index >= len(ports) {
		return nil, errors.Wrapf(ErrIndexOutOfRange, "requested device %v but only %v MIDI devices detected", index, len(ports))
	}

	log.Info("MIDI output ports available", "count", len(ports))

	port := ports[index]
	name := port.String()
	log.Info("connecting", "port", name, "index", index)

	if err := port.Open(); err != nil {
		return nil, errors.Wrapf(ErrConnection, "opening port %v (%q): %v", index, name, err)
	}

	return &Conn{port: port, name: name}, nil
}

func (c *Conn) Name() string {
	return c.name
}

func (c *Conn) Send(msg model.ChannelMessage) error {
	if err := c.port.Send(Message(msg)); err != nil {
		return errors.Wrapf(err, "sending to %q", c.name)
	}
	return nil
}

func (c *Conn) Close() error {
	return c.port.Close()
}

// Message translates a channel message to its wire form.
func Message(m model.ChannelMessage) midi.Message {
	ch := m.Channel & 0x0F
	switch m.Type {
	case model.NoteOn:
		return midi.NoteOn(ch, m.Data1, m.Data2)
	case model.NoteOff:
		return midi.NoteOffVelocity(ch, m.Data1, m.Data2)
	case model.PolyAftertouch:
		return midi.PolyAfterTouch(ch, m.Data1, m.Data2)
	case model.ControlChange:
		return midi.ControlChange(ch, m.Data1, m.Data2)
	case model.ProgramChange:
		return midi.ProgramChange(ch, m.Data1)
	case model.ChannelAftertouch:
		return midi.AfterTouch(ch, m.Data1)
	case model.PitchBend:
		raw := int16(m.Data2)<<7 | int16(m.Data1)
		return midi.Pitchbend(ch, raw-8192)
	}
	return midi.Message{byte(m.Type) | ch, m.Data1, m.Data2}
}
