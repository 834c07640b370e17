package speaker

import (
	"testing"
	"time"

	"github.com/gopxl/beep"

	"github.com/vovakirdan/maze-escape/internal/audio"
)

// drain streams s to completion and returns the sample count and peak.
func drain(t *testing.T, s beep.Streamer) (int, float64) {
	t.Helper()
	buf := make([][2]float64, 512)
	total, peak := 0, 0.0
	for i := 0; i < 10000; i++ {
		n, ok := s.Stream(buf)
		for _, smp := range buf[:n] {
			if smp[0] > peak {
				peak = smp[0]
			}
			if -smp[0] > peak {
				peak = -smp[0]
			}
		}
		total += n
		if !ok {
			return total, peak
		}
	}
	t.Fatal("streamer never ended")
	return 0, 0
}

func TestOscillatorLength(t *testing.T) {
	rate := beep.SampleRate(8000)
	osc := NewOscillator(440, 100*time.Millisecond, WaveSine, rate)

	n, peak := drain(t, osc)
	if n != rate.N(100*time.Millisecond) {
		t.Errorf("streamed %d samples, expected %d", n, rate.N(100*time.Millisecond))
	}
	if peak > 1.0 {
		t.Errorf("sine peak %f out of range", peak)
	}
	if osc.Err() != nil {
		t.Errorf("unexpected error: %v", osc.Err())
	}
}

func TestOscillatorSquareValues(t *testing.T) {
	osc := NewOscillator(220, 20*time.Millisecond, WaveSquare, beep.SampleRate(8000))

	buf := make([][2]float64, 64)
	n, _ := osc.Stream(buf)
	for i := 0; i < n; i++ {
		if v := buf[i][0]; v != 1.0 && v != -1.0 {
			t.Fatalf("square sample %d = %f, expected ±1", i, v)
		}
	}
}

func TestEnvelopeRamps(t *testing.T) {
	rate := beep.SampleRate(1000)
	osc := NewOscillator(0, 100*time.Millisecond, WaveSquare, rate) // constant 1.0
	env := NewEnvelope(osc, 100*time.Millisecond, 10*time.Millisecond, 10*time.Millisecond, rate)

	buf := make([][2]float64, 100)
	n, _ := env.Stream(buf)
	if n != 100 {
		t.Fatalf("streamed %d samples, expected 100", n)
	}
	if buf[0][0] != 0 {
		t.Errorf("attack should start silent, got %f", buf[0][0])
	}
	if buf[50][0] != 1.0 {
		t.Errorf("sustain should be full volume, got %f", buf[50][0])
	}
	if buf[99][0] >= buf[90][0] {
		t.Errorf("release should fade out: %f >= %f", buf[99][0], buf[90][0])
	}
}

func TestCueSoundsEnd(t *testing.T) {
	rate := beep.SampleRate(8000)

	n, peak := drain(t, CreateBumpSound(rate, 1))
	if n != rate.N(bumpDuration) {
		t.Errorf("bump length %d, expected %d", n, rate.N(bumpDuration))
	}
	if peak == 0 {
		t.Error("bump should be audible")
	}

	n, _ = drain(t, CreateEscapeSound(rate, 1))
	want := 2*rate.N(chimeNoteDuration) + rate.N(chimeLastDuration)
	if n != want {
		t.Errorf("chime length %d, expected %d", n, want)
	}
}

func TestSilentVolume(t *testing.T) {
	_, peak := drain(t, CreateBumpSound(beep.SampleRate(8000), 0))
	if peak != 0 {
		t.Errorf("zero volume should be silent, peak %f", peak)
	}
}

func TestSoundManagerWithoutInit(t *testing.T) {
	sm := NewSoundManager(0.5)

	defer func() {
		if r := recover(); r != nil {
			t.Errorf("cues panicked without initialization: %v", r)
		}
	}()

	sm.Bump()
	sm.Escape()
	sm.Cleanup()
}

func TestOpenDisabled(t *testing.T) {
	cues, closeFn, err := Open(false, 1)
	if err != nil {
		t.Fatalf("Open(false) failed: %v", err)
	}
	if _, ok := cues.(audio.Nop); !ok {
		t.Errorf("disabled audio should be Nop, got %T", cues)
	}
	closeFn()
}

var _ audio.Cues = (*SoundManager)(nil)
