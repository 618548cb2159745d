package constants

import (
	"os"
	"strconv"
)

const DefaultAddr = ":8080"

func GetAddr() string {
	addr := os.Getenv("TONAL_ADDR")
	if addr != "" {
		return addr
	}
	return DefaultAddr
}

func GetLogLevel() string {
	level := os.Getenv("TONAL_LOG_LEVEL")
	if level != "" {
		return level
	}
	return "info"
}

// GetPreferFlats decides the default enharmonic spelling for output.
// Unparseable values fall back to sharps.
func GetPreferFlats() bool {
	val, err := strconv.ParseBool(os.Getenv("TONAL_PREFER_FLATS"))
	if err != nil {
		return false
	}
	return val
}

func GetTuning() string {
	tuning := os.Getenv("TONAL_TUNING")
	if tuning != "" {
		return tuning
	}
	return "standard"
}

// 12 tone equal temperament
const SemitonesPerOctave = 12

// A4 in the absolute pitch space (C0 = 0)
const ConcertPitchPos = 57
const ConcertPitchHz = 440.0

// absolute pitch 0 (C0) is MIDI note 12
const MidiOffset = 12

const MaxAccidentals = 3
