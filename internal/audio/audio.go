// Package audio provides procedural sound effects and background music for
// the runner via oto. Every trigger is fire-and-forget: a missing device or
// a failed playback is logged and degrades to silence, never reaching the
// simulation.
package audio

import (
	"io"
	"sync"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/oto/v2"

	"github.com/mkositsyn/temprun/internal/config"
)

const (
	SampleRate   = 44100
	ChannelCount = 2
	BitDepth     = 0 // 32-bit float (oto.FormatFloat32LE)
)

// Named sound effects consumed by the session.
const (
	SoundJump      = "jump"
	SoundCoin      = "coin"
	SoundCollision = "collision"
	SoundGameOver  = "game_over"
	SoundStart     = "start"
)

// Player is the audio collaborator surface. Nop implements it for machines
// without an output device.
type Player interface {
	// Play triggers a named sound. volume is in [0, 1]; preventOverlap
	// skips the trigger while an instance of the same sound is playing.
	Play(name string, volume float64, preventOverlap bool)

	PauseMusic()
	ResumeMusic()

	// ToggleMute flips the global mute and returns the new state.
	ToggleMute() bool

	Close() error
}

// System is the oto-backed Player.
type System struct {
	ctx    *oto.Context
	ready  chan struct{}
	logger *log.Logger
	cfg    config.AudioConfig

	muted atomic.Bool

	// Per-sound active instance counts for the prevent-overlap flag.
	mu     sync.Mutex
	active map[string]int

	samples map[string][]byte

	musicMu     sync.Mutex
	musicPlayer oto.Player
}

// New initializes the audio device and synthesizes all effect samples.
// The returned error means no device is available; the caller should fall
// back to Nop.
func New(cfg config.AudioConfig, logger *log.Logger) (*System, error) {
	ctx, ready, err := oto.NewContext(SampleRate, ChannelCount, BitDepth)
	if err != nil {
		return nil, err
	}

	s := &System{
		ctx:     ctx,
		ready:   ready,
		logger:  logger,
		cfg:     cfg,
		active:  make(map[string]int),
		samples: generateAll(),
	}
	s.startMusic()
	return s, nil
}

// NewOrNop returns the oto-backed system, or the silent fallback with a
// warning when the device cannot be opened or audio is disabled.
func NewOrNop(cfg config.AudioConfig, logger *log.Logger) Player {
	if !cfg.Enabled {
		return Nop{}
	}
	s, err := New(cfg, logger)
	if err != nil {
		logger.Warn("audio unavailable, continuing silently", "error", err)
		return Nop{}
	}
	return s
}

// Play triggers a named sound effect. Unknown names are logged once per
// call and dropped.
func (s *System) Play(name string, volume float64, preventOverlap bool) {
	if s.muted.Load() {
		return
	}
	select {
	case <-s.ready:
	default:
		return // Device still warming up; drop rather than block.
	}

	data, ok := s.samples[name]
	if !ok {
		s.logger.Warn("unknown sound", "name", name)
		return
	}

	if preventOverlap {
		s.mu.Lock()
		if s.active[name] > 0 {
			s.mu.Unlock()
			return
		}
		s.active[name]++
		s.mu.Unlock()
	}

	vol := clamp01(volume) * clamp01(s.cfg.SoundVolume)
	go func() {
		if preventOverlap {
			defer func() {
				s.mu.Lock()
				s.active[name]--
				s.mu.Unlock()
			}()
		}
		p := s.ctx.NewPlayer(&sampleReader{data: data})
		p.SetVolume(vol)
		p.Play()
		for p.IsPlaying() {
			time.Sleep(10 * time.Millisecond)
		}
		p.Close()
	}()
}

// startMusic begins the looping background track.
func (s *System) startMusic() {
	select {
	case <-s.ready:
	case <-time.After(2 * time.Second):
		s.logger.Warn("audio device not ready, music disabled")
		return
	}

	s.musicMu.Lock()
	defer s.musicMu.Unlock()
	s.musicPlayer = s.ctx.NewPlayer(&loopReader{data: generateMusicLoop()})
	s.musicPlayer.SetVolume(clamp01(s.cfg.MusicVolume))
	s.musicPlayer.Play()
}

// PauseMusic suspends the background track.
func (s *System) PauseMusic() {
	s.musicMu.Lock()
	defer s.musicMu.Unlock()
	if s.musicPlayer != nil {
		s.musicPlayer.Pause()
	}
}

// ResumeMusic restarts the background track after a pause.
func (s *System) ResumeMusic() {
	s.musicMu.Lock()
	defer s.musicMu.Unlock()
	if s.musicPlayer != nil && !s.muted.Load() {
		s.musicPlayer.Play()
	}
}

// ToggleMute flips the global mute and returns the new state.
// Muting silences both effects and music.
func (s *System) ToggleMute() bool {
	muted := !s.muted.Load()
	s.muted.Store(muted)

	s.musicMu.Lock()
	defer s.musicMu.Unlock()
	if s.musicPlayer != nil {
		if muted {
			s.musicPlayer.Pause()
		} else {
			s.musicPlayer.Play()
		}
	}
	return muted
}

// Close stops the music player. In-flight effects finish on their own.
func (s *System) Close() error {
	s.musicMu.Lock()
	defer s.musicMu.Unlock()
	if s.musicPlayer != nil {
		s.musicPlayer.Close()
		s.musicPlayer = nil
	}
	return nil
}

// Nop is the silent Player used when no audio device is available.
type Nop struct{}

func (Nop) Play(string, float64, bool) {}
func (Nop) PauseMusic()                {}
func (Nop) ResumeMusic()               {}
func (Nop) ToggleMute() bool           { return true }
func (Nop) Close() error               { return nil }

// sampleReader streams a pre-rendered sample buffer once.
type sampleReader struct {
	data []byte
	pos  int
}

func (r *sampleReader) Read(p []byte) (int, error) {
	if r.pos >= len(r.data) {
		return 0, io.EOF
	}
	n := copy(p, r.data[r.pos:])
	r.pos += n
	return n, nil
}

// loopReader streams a sample buffer forever, wrapping at the end.
type loopReader struct {
	data []byte
	pos  int
}

func (r *loopReader) Read(p []byte) (int, error) {
	if len(r.data) == 0 {
		return 0, io.EOF
	}
	n := 0
	for n < len(p) {
		c := copy(p[n:], r.data[r.pos:])
		n += c
		r.pos += c
		if r.pos >= len(r.data) {
			r.pos = 0
		}
	}
	return n, nil
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
