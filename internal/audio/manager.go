package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/echoes/internal/core"
)

// Manager mixes cues onto the speaker. Until Init succeeds every Play call is
// a no-op, so a Manager is always safe to use.
type Manager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	volume      float64
	initialized bool
}

// NewManager creates a manager at the given linear volume (0 to 1).
func NewManager(volume float64) *Manager {
	return &Manager{
		mixer:  &beep.Mixer{},
		volume: core.ClampF(volume, 0, 1),
	}
}

// Init opens the speaker.
func (m *Manager) Init() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return fmt.Errorf("audio: cannot open speaker: %w", err)
	}
	speaker.Play(m.mixer)
	m.initialized = true
	return nil
}

// Close silences everything still playing.
func (m *Manager) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.initialized {
		return
	}
	speaker.Lock()
	m.mixer.Clear()
	speaker.Unlock()
	m.initialized = false
}

// Play plays the cue for an event kind, if it has one.
func (m *Manager) Play(kind core.EventKind) {
	if cue, ok := CueFor(kind); ok {
		m.PlayCue(cue)
	}
}

// PlayCue plays a cue.
func (m *Manager) PlayCue(c Cue) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.initialized {
		return
	}
	s := c.Streamer()
	if s == nil {
		return
	}
	speaker.Lock()
	m.mixer.Add(withVolume(s, m.volume))
	speaker.Unlock()
}
