package parameter

import "time"

// Audio Hardware Settings
const (
	AudioSampleRate = 44100

	// AudioBufferDuration determines speaker latency
	AudioBufferDuration = 100 * time.Millisecond
)

// Cue Sounds
const (
	// CaptureCueDuration is the length of the cat capture chirp
	CaptureCueDuration = 120 * time.Millisecond
	CaptureCueFreq     = 880.0

	// HitCueDuration is the length of the enemy hit buzz
	HitCueDuration = 250 * time.Millisecond
	HitCueFreq     = 140.0

	// JingleNoteDuration is the length of each win/lose jingle note
	JingleNoteDuration = 180 * time.Millisecond

	// MusicVolume is the background loop attenuation (beep effects.Volume, base 2)
	MusicVolume = -2.0
)
