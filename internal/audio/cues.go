package audio

import (
	"time"

	"github.com/gopxl/beep"

	"github.com/vovakirdan/echoes/internal/core"
)

// Cue is a short sound tied to something that happened in the game.
type Cue int

const (
	CueChime   Cue = iota // A gem changed hands
	CueBuzz               // Something was refused
	CueSweep              // The world changed: new zone, revival, enlightenment
	CueVictory            // The game was won
)

// String returns the cue name.
func (c Cue) String() string {
	switch c {
	case CueChime:
		return "chime"
	case CueBuzz:
		return "buzz"
	case CueSweep:
		return "sweep"
	case CueVictory:
		return "victory"
	default:
		return "unknown"
	}
}

// CueFor returns the cue played for an event kind, if any.
func CueFor(kind core.EventKind) (Cue, bool) {
	switch kind {
	case core.EventGemCollected, core.EventGemGiven:
		return CueChime, true
	case core.EventHelpRejected, core.EventWrongExit, core.EventVictoryBlocked:
		return CueBuzz, true
	case core.EventZoneEntered, core.EventNPCRevived, core.EventEnlightenment, core.EventNPCHelped:
		return CueSweep, true
	case core.EventVictory:
		return CueVictory, true
	default:
		return 0, false
	}
}

// Streamer builds a fresh, finite streamer for the cue.
func (c Cue) Streamer() beep.Streamer {
	switch c {
	case CueChime:
		// A5 then E6
		return beep.Seq(
			note(880, 80*time.Millisecond, WaveSine),
			note(1318.51, 120*time.Millisecond, WaveSine),
		)
	case CueBuzz:
		return withVolume(note(110, 150*time.Millisecond, WaveSquare), 0.4)
	case CueSweep:
		d := 300 * time.Millisecond
		return Fade(Glide(220, 660, d, sampleRate), d, 20*time.Millisecond, 100*time.Millisecond, sampleRate)
	case CueVictory:
		// C major arpeggio
		return beep.Seq(
			note(523.25, 120*time.Millisecond, WaveSine),
			note(659.25, 120*time.Millisecond, WaveSine),
			note(783.99, 120*time.Millisecond, WaveSine),
			note(1046.5, 300*time.Millisecond, WaveSine),
		)
	default:
		return nil
	}
}
