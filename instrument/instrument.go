package instrument

import "strconv"

// General MIDI program numbers (0-based) of the instruments we care about.
// https://www.recordingblogs.com/wiki/midi-program-change-message
var names = map[uint8]string{
	0:  "acoustic grand piano",
	9:  "glockenspiel",
	11: "vibraphone",
	12: "marimba",
	14: "tubular bell",
	24: "guitar",
	40: "violin",
	41: "viola",
	42: "cello",
	43: "contrabass",
	44: "tremolo strings",
	45: "pizzicato strings",
	46: "harp",
	47: "timpani",
	48: "string ensemble 1",
	56: "trumpet",
	57: "trombone",
	58: "tuba",
	60: "french horn",
	68: "oboe",
	69: "english horn",
	70: "bassoon",
	71: "clarinet",
	72: "piccolo",
	73: "flute",
	74: "recorder",
}

// Name resolves a program number; unknown programs come back as the number itself.
func Name(program uint8) string {
	if name, ok := names[program]; ok {
		return name
	}
	return strconv.Itoa(int(program))
}

