package constants

import "os"

const (
	DefaultTempo    = 120
	DefaultSeconds  = 1
	DefaultVelocity = 127

	// resolution of every written file
	TicksPerQuarter = 480

	DefaultOutDir  = "Chord_Scales"
	DefaultAddr    = ":8080"
	ScaleFileStem  = " Scale"
	MidiFileSuffix = ".mid"
)

func GetOutDir() string {
	path := os.Getenv("OUTPUT_DIR")
	if path != "" {
		return path
	}
	return DefaultOutDir
}

func GetAddr() string {
	addr := os.Getenv("ADDR")
	if addr != "" {
		return addr
	}
	return DefaultAddr
}
