package parameter

import "time"

// Audio Hardware Settings
const (
	AudioSampleRate = 44100

	// AudioBufferDuration determines latency of the speaker
	AudioBufferDuration = 100 * time.Millisecond
)

// Feedback tones
const (
	ConfirmToneFreq     = 880.0
	ConfirmToneDuration = 90 * time.Millisecond
	CancelToneFreq      = 220.0
	CancelToneDuration  = 70 * time.Millisecond
	OpenToneFreq        = 660.0
	OpenToneDuration    = 40 * time.Millisecond
	ToneAttack          = 5 * time.Millisecond
	ToneRelease         = 20 * time.Millisecond
	ToneVolume          = 0.3
)
