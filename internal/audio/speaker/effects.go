package speaker

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

const (
	bumpDuration = 150 * time.Millisecond
	bumpAttack   = 5 * time.Millisecond
	bumpRelease  = 80 * time.Millisecond

	chimeNoteDuration = 90 * time.Millisecond
	chimeLastDuration = 260 * time.Millisecond
	chimeAttack       = 4 * time.Millisecond
	chimeRelease      = 60 * time.Millisecond
	chimeLastRelease  = 200 * time.Millisecond
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
)

// oscillator generates a fixed-length raw wave
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator creates a new oscillator for wave generation
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			val = 1.0
			if o.phase >= 0.5 {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies a linear attack and release to a stream
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	totalSamples   int
}

// NewEnvelope wraps s with an attack/release envelope over duration.
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		streamer:       s,
		attackSamples:  rate.N(attack),
		releaseSamples: rate.N(release),
		totalSamples:   rate.N(duration),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	releaseStart := e.totalSamples - e.releaseSamples
	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, i > 0
		}

		vol := 1.0
		if e.attackSamples > 0 && e.position < e.attackSamples {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		if e.releaseSamples > 0 && e.position >= releaseStart {
			vol = math.Max(0, float64(e.totalSamples-e.position)/float64(e.releaseSamples))
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume scales a stream linearly. math.Log2(0) is -Inf, so 0 is silent.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// CreateBumpSound generates the short low buzz played on a wall bump.
func CreateBumpSound(rate beep.SampleRate, volume float64) beep.Streamer {
	osc := NewOscillator(110.0, bumpDuration, WaveSaw, rate)
	shaped := NewEnvelope(osc, bumpDuration, bumpAttack, bumpRelease, rate)
	return newVolume(shaped, volume*0.5)
}

// CreateEscapeSound generates a rising three-note chime (C5, E5, G5).
func CreateEscapeSound(rate beep.SampleRate, volume float64) beep.Streamer {
	note := func(freq float64, d, release time.Duration) beep.Streamer {
		osc := NewOscillator(freq, d, WaveSquare, rate)
		return NewEnvelope(osc, d, chimeAttack, release, rate)
	}

	seq := beep.Seq(
		note(523.25, chimeNoteDuration, chimeRelease),
		note(659.25, chimeNoteDuration, chimeRelease),
		note(783.99, chimeLastDuration, chimeLastRelease),
	)
	return newVolume(seq, volume*0.3)
}
