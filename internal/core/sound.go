package core

// Sound identifies a sound effect the platform may play.
type Sound int

const (
	SoundJump      Sound = iota // Button press: jump, start, restart
	SoundCrash                  // Collision with an obstacle
	SoundMilestone              // Distance achievement reached
)

// String returns a human-readable name for the sound.
func (s Sound) String() string {
	switch s {
	case SoundJump:
		return "jump"
	case SoundCrash:
		return "crash"
	case SoundMilestone:
		return "milestone"
	default:
		return "unknown"
	}
}
