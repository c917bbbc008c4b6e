// Package audio plays the game's cues through a beep mixer.
package audio

import (
	"log"
	"sync"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/zombie-conga/engine"
	"github.com/lixenwraith/zombie-conga/events"
	"github.com/lixenwraith/zombie-conga/parameter"
)

const sampleRate = beep.SampleRate(parameter.AudioSampleRate)

// SoundManager owns the speaker mixer and the background music control
// Every method is safe before Initialize and after Cleanup; without a
// speaker the game simply runs silent
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	music       *beep.Ctrl
	initialized bool

	musicEnabled bool
}

func NewSoundManager(musicEnabled bool) *SoundManager {
	return &SoundManager{
		mixer:        &beep.Mixer{},
		musicEnabled: musicEnabled,
	}
}

// Initialize opens the speaker and starts the mixer
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(parameter.AudioBufferDuration)); err != nil {
		return err
	}
	speaker.Play(sm.mixer)
	sm.initialized = true
	log.Printf("audio: speaker at %d Hz", sampleRate)
	return nil
}

// Cleanup silences everything; the speaker stays open for reuse
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	sm.stopMusicLocked()
	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	sm.initialized = false
}

func (sm *SoundManager) Initialized() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.initialized
}

func (sm *SoundManager) play(s beep.Streamer) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
}

func (sm *SoundManager) PlayCapture() {
	sm.play(CaptureCue(sampleRate))
}

func (sm *SoundManager) PlayHit() {
	sm.play(HitCue(sampleRate))
}

func (sm *SoundManager) PlayJingle(won bool) {
	sm.play(Jingle(sampleRate, won))
}

// StartMusic begins the background loop unless it is already playing
func (sm *SoundManager) StartMusic() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || !sm.musicEnabled {
		return
	}
	if sm.music != nil && !sm.music.Paused {
		return
	}

	ctrl := &beep.Ctrl{Streamer: Music(sampleRate)}
	speaker.Lock()
	sm.music = ctrl
	sm.mixer.Add(ctrl)
	speaker.Unlock()
}

func (sm *SoundManager) StopMusic() {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.stopMusicLocked()
}

func (sm *SoundManager) stopMusicLocked() {
	if sm.music == nil {
		return
	}
	if sm.initialized {
		speaker.Lock()
	}
	// A paused Ctrl still occupies the mixer; dropping its streamer lets
	// the mixer discard it on the next pass
	sm.music.Paused = true
	sm.music.Streamer = nil
	if sm.initialized {
		speaker.Unlock()
	}
	sm.music = nil
}

// MusicPlaying reports whether the background loop is active
func (sm *SoundManager) MusicPlaying() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.music != nil && !sm.music.Paused
}

// HandleEvent maps simulation cues to sounds
func (sm *SoundManager) HandleEvent(_ *engine.Snapshot, ev events.GameEvent) {
	switch ev.Type {
	case events.EventCatCaptured:
		sm.PlayCapture()
	case events.EventEnemyHit:
		sm.PlayHit()
	case events.EventMusicStart:
		sm.StartMusic()
	case events.EventMusicStop:
		sm.StopMusic()
	case events.EventRoundEnded:
		if p, ok := ev.Payload.(*events.RoundEndedPayload); ok {
			sm.PlayJingle(p.Won)
		}
	}
}

func (sm *SoundManager) EventTypes() []events.EventType {
	return []events.EventType{
		events.EventCatCaptured,
		events.EventEnemyHit,
		events.EventMusicStart,
		events.EventMusicStop,
		events.EventRoundEnded,
	}
}
