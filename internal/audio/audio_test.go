package audio

import (
	"math"
	"testing"
	"time"

	"github.com/gopxl/beep"

	"github.com/vovakirdan/echoes/internal/core"
)

// drain streams s to the end and returns the number of samples produced.
func drain(t *testing.T, s beep.Streamer, limit int) int {
	t.Helper()
	buf := make([][2]float64, 512)
	total := 0
	for {
		n, ok := s.Stream(buf)
		for i := 0; i < n; i++ {
			if buf[i][0] < -1 || buf[i][0] > 1 {
				t.Fatalf("sample %d out of range: %f", total+i, buf[i][0])
			}
		}
		total += n
		if !ok {
			return total
		}
		if total > limit {
			t.Fatalf("stream did not end within %d samples", limit)
		}
	}
}

// tone builds a tone or fails the test.
func tone(t *testing.T, freq float64, d time.Duration, wave Wave, rate beep.SampleRate) beep.Streamer {
	t.Helper()
	s, err := Tone(freq, d, wave, rate)
	if err != nil {
		t.Fatalf("Tone(%v): %v", freq, err)
	}
	return s
}

func TestToneLength(t *testing.T) {
	rate := beep.SampleRate(1000)
	s := tone(t, 100, 250*time.Millisecond, WaveSine, rate)

	if got := drain(t, s, 10000); got != 250 {
		t.Errorf("expected 250 samples, got %d", got)
	}
	if s.Err() != nil {
		t.Errorf("unexpected error: %v", s.Err())
	}
}

func TestToneRejectsInaudiblePitch(t *testing.T) {
	if _, err := Tone(600, time.Second, WaveSine, beep.SampleRate(1000)); err == nil {
		t.Error("expected an error above the Nyquist frequency")
	}
}

func TestToneSquareSwings(t *testing.T) {
	s := tone(t, 220, 50*time.Millisecond, WaveSquare, sampleRate)
	buf := make([][2]float64, 400)
	n, ok := s.Stream(buf)
	if !ok || n != 400 {
		t.Fatalf("expected 400 samples, got %d ok=%v", n, ok)
	}

	var pos, neg bool
	for i := 0; i < n; i++ {
		pos = pos || buf[i][0] > 0.5
		neg = neg || buf[i][0] < -0.5
	}
	if !pos || !neg {
		t.Errorf("square wave should swing both ways (pos=%v neg=%v)", pos, neg)
	}
}

func TestGlideLength(t *testing.T) {
	rate := beep.SampleRate(1000)
	if got := drain(t, Glide(100, 300, 120*time.Millisecond, rate), 10000); got != 120 {
		t.Errorf("expected 120 samples, got %d", got)
	}
}

func TestFadeStartsAndEndsQuiet(t *testing.T) {
	rate := beep.SampleRate(1000)
	d := 100 * time.Millisecond

	raw := make([][2]float64, 100)
	if n, _ := tone(t, 50, d, WaveSquare, rate).Stream(raw); n != 100 {
		t.Fatalf("expected 100 raw samples, got %d", n)
	}

	s := Fade(tone(t, 50, d, WaveSquare, rate), d, 10*time.Millisecond, 10*time.Millisecond, rate)
	buf := make([][2]float64, 200)
	if n := drain(t, Fade(tone(t, 50, d, WaveSquare, rate), d, 10*time.Millisecond, 10*time.Millisecond, rate), 1000); n != 100 {
		t.Fatalf("faded tone should keep its length, got %d samples", n)
	}
	n, _ := s.Stream(buf)
	if n != 100 {
		t.Fatalf("expected 100 samples, got %d", n)
	}

	if buf[0][0] != 0 {
		t.Errorf("first sample should be silent, got %f", buf[0][0])
	}
	if buf[50][0] != raw[50][0] {
		t.Errorf("sustain should be untouched: got %f, want %f", buf[50][0], raw[50][0])
	}
	if math.Abs(buf[99][0]) > 0.11*math.Abs(raw[99][0])+1e-9 {
		t.Errorf("last sample should be nearly silent, got %f of %f", buf[99][0], raw[99][0])
	}
}

func TestCueStreamsEnd(t *testing.T) {
	tests := []struct {
		cue    Cue
		maxDur time.Duration
	}{
		{CueChime, 200 * time.Millisecond},
		{CueBuzz, 150 * time.Millisecond},
		{CueSweep, 300 * time.Millisecond},
		{CueVictory, 660 * time.Millisecond},
	}

	for _, tc := range tests {
		t.Run(tc.cue.String(), func(t *testing.T) {
			s := tc.cue.Streamer()
			if s == nil {
				t.Fatal("expected a streamer")
			}
			got := drain(t, s, sampleRate.N(2*time.Second))
			if got == 0 || got > sampleRate.N(tc.maxDur)+4 {
				t.Errorf("unexpected length %d samples", got)
			}
		})
	}
}

func TestCueFor(t *testing.T) {
	tests := []struct {
		kind core.EventKind
		cue  Cue
		ok   bool
	}{
		{core.EventGemCollected, CueChime, true},
		{core.EventGemGiven, CueChime, true},
		{core.EventHelpRejected, CueBuzz, true},
		{core.EventWrongExit, CueBuzz, true},
		{core.EventVictoryBlocked, CueBuzz, true},
		{core.EventZoneEntered, CueSweep, true},
		{core.EventNPCRevived, CueSweep, true},
		{core.EventVictory, CueVictory, true},
		{core.EventChoiceMade, 0, false},
		{core.EventRestart, 0, false},
	}

	for _, tc := range tests {
		t.Run(tc.kind.String(), func(t *testing.T) {
			cue, ok := CueFor(tc.kind)
			if ok != tc.ok {
				t.Fatalf("CueFor(%s) ok = %v, want %v", tc.kind, ok, tc.ok)
			}
			if ok && cue != tc.cue {
				t.Errorf("CueFor(%s) = %s, want %s", tc.kind, cue, tc.cue)
			}
		})
	}
}

func TestManagerWithoutSpeaker(t *testing.T) {
	m := NewManager(2)
	if m.volume != 1 {
		t.Errorf("volume should be clamped to 1, got %f", m.volume)
	}
	if m.initialized {
		t.Error("manager should start inactive")
	}

	// Must not panic or block without a speaker
	m.Play(core.EventVictory)
	m.PlayCue(CueBuzz)
	m.Close()

	if m.mixer.Len() != 0 {
		t.Errorf("nothing should be mixed before Init, got %d", m.mixer.Len())
	}
}
