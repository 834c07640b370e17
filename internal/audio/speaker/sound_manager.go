// Package speaker plays the audio cues through the system sound device.
// It needs cgo and the platform audio libraries; the rest of the game
// only depends on the audio.Cues interface.
package speaker

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	beepspeaker "github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/maze-escape/internal/audio"
)

const sampleRate = beep.SampleRate(44100)

// SoundManager plays cues through the system speaker.
// All methods are safe to call before Initialize; they do nothing then.
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	volume      float64
	initialized bool
}

// NewSoundManager creates a sound manager with the given volume in [0, 1].
func NewSoundManager(volume float64) *SoundManager {
	if volume < 0 {
		volume = 0
	}
	if volume > 1 {
		volume = 1
	}
	return &SoundManager{
		mixer:  &beep.Mixer{},
		volume: volume,
	}
}

// Initialize opens the speaker. It fails on machines without an audio
// device; callers fall back to audio.Nop.
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	if err := beepspeaker.Init(sampleRate, sampleRate.N(50*time.Millisecond)); err != nil {
		return err
	}

	beepspeaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup silences all playing cues.
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	beepspeaker.Lock()
	sm.mixer.Clear()
	beepspeaker.Unlock()
	sm.initialized = false
}

// Bump plays the wall buzz.
func (sm *SoundManager) Bump() {
	sm.play(CreateBumpSound(sampleRate, sm.volume))
}

// Escape plays the exit chime.
func (sm *SoundManager) Escape() {
	sm.play(CreateEscapeSound(sampleRate, sm.volume))
}

// play adds a one-shot streamer to the mixer. The speaker pulls from the
// mixer on its own goroutine, so the add happens under the speaker lock.
func (sm *SoundManager) play(s beep.Streamer) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || sm.volume == 0 {
		return
	}

	beepspeaker.Lock()
	sm.mixer.Add(s)
	beepspeaker.Unlock()
}

// Open returns a speaker-backed Cues, or audio.Nop when audio is disabled or the
// device cannot be opened. The returned close function is always non-nil.
func Open(enabled bool, volume float64) (audio.Cues, func(), error) {
	if !enabled {
		return audio.Nop{}, func() {}, nil
	}
	sm := NewSoundManager(volume)
	if err := sm.Initialize(); err != nil {
		return audio.Nop{}, func() {}, err
	}
	return sm, sm.Cleanup, nil
}
