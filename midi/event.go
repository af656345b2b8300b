package midi

import (
	"math"

	"github.com/jsphweid/midnote/model"
	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"
)

var metaTypes = map[midi.Type]model.MetaType{
	smf.MetaSeqNumberMsg:  model.MetaTrackNumber,
	smf.MetaTextMsg:       model.MetaText,
	smf.MetaTrackNameMsg:  model.MetaTrackName,
	smf.MetaInstrumentMsg: model.MetaInstrumentName,
	smf.MetaChannelMsg:    model.MetaMidiChannel,
	smf.MetaPortMsg:       model.MetaMidiPort,
	smf.MetaEndOfTrackMsg: model.MetaEndOfTrack,
	smf.MetaTempoMsg:      model.MetaTempo,
	smf.MetaTimeSigMsg:    model.MetaTimeSignature,
	smf.MetaKeySigMsg:     model.MetaKeySignature,
}

// ConvertEvent types an smf message. Anything that is neither a channel
// nor a meta message is kept as a SysExEvent with its bytes.
func ConvertEvent(delta uint32, msg smf.Message) model.Event {
	var ch, d1, d2 uint8
	var bend uint16

	switch {
	case msg.GetNoteOn(&ch, &d1, &d2):
		return channelEvent(delta, ch, model.NoteOn, d1, d2)
	case msg.GetNoteOff(&ch, &d1, &d2):
		return channelEvent(delta, ch, model.NoteOff, d1, d2)
	case msg.GetPolyAfterTouch(&ch, &d1, &d2):
		return channelEvent(delta, ch, model.PolyAftertouch, d1, d2)
	case msg.GetControlChange(&ch, &d1, &d2):
		return channelEvent(delta, ch, model.ControlChange, d1, d2)
	case msg.GetProgramChange(&ch, &d1):
		return channelEvent(delta, ch, model.ProgramChange, d1, 0)
	case msg.GetAfterTouch(&ch, &d1):
		return channelEvent(delta, ch, model.ChannelAftertouch, d1, 0)
	case msg.GetPitchBend(&ch, nil, &bend):
		return channelEvent(delta, ch, model.PitchBend, uint8(bend&0x7F), uint8(bend>>7))
	case msg.IsMeta():
		return model.Event{Delta: delta, Kind: model.MetaEvent, Meta: convertMeta(msg)}
	}

	return model.Event{
		Delta: delta,
		Kind:  model.SysExEvent,
		Meta:  model.MetaMessage{Data: append([]byte(nil), msg.Bytes()...)},
	}
}

func channelEvent(delta uint32, ch uint8, typ model.MessageType, d1, d2 uint8) model.Event {
	return model.Event{
		Delta:   delta,
		Kind:    model.ChannelEvent,
		Channel: model.ChannelMessage{Channel: ch, Type: typ, Data1: d1, Data2: d2},
	}
}

func convertMeta(msg smf.Message) model.MetaMessage {
	typ, ok := metaTypes[msg.Type()]
	if !ok {
		return model.MetaMessage{Type: model.MetaOther}
	}

	meta := model.MetaMessage{Type: typ}
	switch typ {
	case model.MetaTempo:
		var bpm float64
		if msg.GetMetaTempo(&bpm) && bpm > 0 {
			// smf only hands out BPM; the payload is a whole number of micros
			meta.Tempo = uint32(math.Round(60_000_000 / bpm))
		}
	case model.MetaMidiChannel:
		msg.GetMetaChannel(&meta.Value)
	case model.MetaMidiPort:
		msg.GetMetaPort(&meta.Value)
	case model.MetaText:
		msg.GetMetaText(&meta.Text)
	case model.MetaTrackName:
		msg.GetMetaTrackName(&meta.Text)
	case model.MetaInstrumentName:
		msg.GetMetaInstrument(&meta.Text)
	}
	return meta
}
