package midi

import (
	"bytes"
	"os"

	"github.com/jsphweid/midnote/model"
	"github.com/pkg/errors"
	"gitlab.com/gomidi/midi/v2/smf"
)

var ErrDecode = errors.New("could not decode MIDI data")

func ReadMidiFile(path string) (*model.File, error) {
	dat, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading midi file %v", path)
	}

	f, err := Decode(dat)
	if err != nil {
		return nil, errors.Wrapf(err, "parsing midi file %v", path)
	}
	return f, nil
}

// Decode parses a Standard MIDI File into typed tracks.
func Decode(data []byte) (f *model.File, e error) {
	// smf can panic on some malformed input
	// https://github.com/gomidi/midi/issues/20
	defer func() {
		if r := recover(); r != nil {
			f = nil
			e = errors.Wrapf(ErrDecode, "%v", r)
		}
	}()

	parsed, err := smf.ReadFrom(bytes.NewReader(data))
	if err != nil {
		return nil, errors.Wrapf(ErrDecode, "%v", err)
	}

	format, err := convertFormat(parsed.Format())
	if err != nil {
		return nil, err
	}

	res := &model.File{
		Format: format,
		Timing: convertTiming(parsed.TimeFormat),
		Tracks: make([]model.Track, 0, len(parsed.Tracks)),
	}
	for _, track := range parsed.Tracks {
		events := make(model.Track, 0, len(track))
		for _, evt := range track {
			events = append(events, ConvertEvent(evt.Delta, evt.Message))
		}
		res.Tracks = append(res.Tracks, events)
	}

	return res, nil
}

func convertFormat(format uint16) (model.Format, error) {
	switch format {
	case 0:
		return model.SingleTrack, nil
	case 1:
		return model.Parallel, nil
	case 2:
		return model.Sequential, nil
	}
	return 0, errors.Wrapf(ErrDecode, "unknown SMF format %v", format)
}

func convertTiming(tf smf.TimeFormat) model.Timing {
	switch t := tf.(type) {
	case smf.MetricTicks:
		return model.MetricalTiming(uint16(t))
	case smf.TimeCode:
		return model.TimecodeTiming(t.FramesPerSecond, t.SubFrames)
	}
	// left to the timer to reject
	return model.Timing{}
}
