package audio

// Sound identifies a feedback tone
type Sound uint8

const (
	SoundOpen Sound = iota
	SoundConfirm
	SoundCancel
)

// String returns the sound name
func (s Sound) String() string {
	switch s {
	case SoundOpen:
		return "open"
	case SoundConfirm:
		return "confirm"
	case SoundCancel:
		return "cancel"
	default:
		return "unknown"
	}
}

// SoundRequest asks the feedback system to play a sound
// Trigger: dialog and picker systems | Consumer: feedback system
type SoundRequest struct {
	Sound Sound
}

// Player plays feedback sounds; Play reports whether the sound was started
type Player interface {
	Play(Sound) bool
}

// Silent is a Player that never makes a sound
type Silent struct{}

// Play implements Player
func (Silent) Play(Sound) bool { return false }
