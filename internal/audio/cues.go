// Package audio plays the short sound cues of the maze game: a buzz when
// the player walks into a wall and a chime on escape.
package audio

// Cues is what the platform calls when a game reports a bump or an escape.
// Implementations must not block the update loop.
type Cues interface {
	Bump()
	Escape()
}

// Nop is a silent Cues, used for SSH sessions and when no audio device
// is available.
type Nop struct{}

func (Nop) Bump()   {}
func (Nop) Escape() {}
