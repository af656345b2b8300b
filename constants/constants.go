package constants

import (
	"os"
	"strconv"
)

const MicrosPerMinute = 60_000_000

// 120 BPM, the tempo of any file that never sets one
const DefaultMicrosPerBeat = 500_000

const DefaultLogLevel = "info"

// GetDeviceIndex defaults to the first output port, which is what the
// player always used before the index became selectable.
func GetDeviceIndex() int {
	raw := os.Getenv("MIDNOTE_DEVICE")
	if raw == "" {
		return 0
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return 0
	}
	return n
}

func GetLogLevel() string {
	level := os.Getenv("MIDNOTE_LOG_LEVEL")
	if level != "" {
		return level
	}
	return DefaultLogLevel
}

