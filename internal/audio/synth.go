// Package audio plays short synthesised cues for game events.
package audio

import (
	"fmt"
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
)

const sampleRate = beep.SampleRate(44100)

// Wave is an oscillator shape.
type Wave int

const (
	WaveSine Wave = iota
	WaveSquare
)

// Tone returns a streamer playing freq for d.
func Tone(freq float64, d time.Duration, wave Wave, rate beep.SampleRate) (beep.Streamer, error) {
	var (
		osc beep.Streamer
		err error
	)
	switch wave {
	case WaveSquare:
		osc, err = generators.SquareTone(rate, freq)
	default:
		osc, err = generators.SineTone(rate, freq)
	}
	if err != nil {
		return nil, fmt.Errorf("audio: cannot make %.2f Hz tone: %w", freq, err)
	}
	return beep.Take(rate.N(d), osc), nil
}

// glide is a sine wave whose frequency moves linearly from one value to
// another over a fixed number of samples.
type glide struct {
	from, to float64
	phase    float64
	pos      int
	length   int
	rate     beep.SampleRate
}

// Glide returns a sine streamer sweeping from one frequency to another over d.
func Glide(from, to float64, d time.Duration, rate beep.SampleRate) beep.Streamer {
	return &glide{from: from, to: to, length: rate.N(d), rate: rate}
}

func (g *glide) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if g.pos >= g.length {
			return i, i > 0
		}
		v := math.Sin(2 * math.Pi * g.phase)
		samples[i][0] = v
		samples[i][1] = v

		freq := g.from + (g.to-g.from)*float64(g.pos)/float64(g.length)
		g.phase += freq / float64(g.rate)
		g.phase -= math.Floor(g.phase)
		g.pos++
	}
	return len(samples), true
}

func (g *glide) Err() error { return nil }

// Fade shapes s, which lasts d, with a linear attack and release.
func Fade(s beep.Streamer, d, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(d)
	in := min(rate.N(attack), total)
	out := min(rate.N(release), total-in)

	return beep.Seq(
		effects.Transition(beep.Take(in, s), in, 0, 1, effects.TransitionLinear),
		beep.Take(total-in-out, s),
		effects.Transition(beep.Take(out, s), out, 1, 0, effects.TransitionLinear),
	)
}

// withVolume scales s linearly. Zero or less is silent.
func withVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// note is a faded tone, the building block of every cue. Cue pitches are
// all audible, so a tone error only happens with a broken sample rate and
// plays as silence.
func note(freq float64, d time.Duration, wave Wave) beep.Streamer {
	s, err := Tone(freq, d, wave, sampleRate)
	if err != nil {
		return beep.Silence(sampleRate.N(d))
	}
	return Fade(s, d, 5*time.Millisecond, d/2, sampleRate)
}
