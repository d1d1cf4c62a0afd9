package game

import (
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/mkositsyn/temprun/internal/config"
	"github.com/mkositsyn/temprun/internal/core"
	"github.com/mkositsyn/temprun/internal/gesture"
)

// State is the session lifecycle phase. Transitions:
// Menu -> Playing -> {Paused <-> Playing, GameOver -> Playing}.
type State int

const (
	StateMenu State = iota
	StatePlaying
	StatePaused
	StateGameOver
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case StateMenu:
		return "menu"
	case StatePlaying:
		return "playing"
	case StatePaused:
		return "paused"
	case StateGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Sound effect names the session triggers. The audio collaborator maps
// them to actual samples.
const (
	soundJump      = "jump"
	soundCoin      = "coin"
	soundCollision = "collision"
	soundGameOver  = "game_over"
	soundStart     = "start"
)

// SoundPlayer is the audio surface the session drives. All calls are
// fire-and-forget; failures never reach the simulation.
type SoundPlayer interface {
	Play(name string, volume float64, preventOverlap bool)
	PauseMusic()
	ResumeMusic()
	ToggleMute() bool
}

// nopSound is the default when no audio collaborator is injected.
type nopSound struct{}

func (nopSound) Play(string, float64, bool) {}
func (nopSound) PauseMusic()                {}
func (nopSound) ResumeMusic()               {}
func (nopSound) ToggleMute() bool           { return true }

// Progress is the persisted pair surfaced on the menu and game-over screens.
type Progress struct {
	HighScore  int
	TotalCoins int
}

// RunRecord describes one finished run for persistence.
type RunRecord struct {
	Score    int
	Coins    int
	Duration float64 // Seconds spent in the Playing state
}

// ProgressStore persists run records. A nil store disables persistence.
type ProgressStore interface {
	Load() (Progress, error)
	SaveRun(RunRecord) error
}

// Deps are the session's injected collaborators. Zero values are safe:
// missing sound and store degrade to silence and no persistence.
type Deps struct {
	Sounds  SoundPlayer
	Store   ProgressStore
	Gesture gesture.Controller
	Logger  *log.Logger
}

// Session is the top-level game state machine. It owns the player and the
// obstacle manager, routes input by state, advances the simulation, and
// finalizes runs exactly once.
type Session struct {
	cfg  *config.Config
	deps Deps

	state   State
	player  *Player
	manager *ObstacleManager

	coinsCollected int
	runDuration    float64

	// Transient feedback on collision. Decay runs every frame in every
	// state so effects settle even while paused or on the game-over screen.
	cameraShake float64
	screenFlash float64

	highScore  int
	totalCoins int

	gestureEnabled bool
	muted          bool

	baseSeed int64
	runCount int64
	rng      *rand.Rand
}

// NewSession creates a session in the Menu state with persisted progress
// loaded from the store.
func NewSession(cfg *config.Config, seed int64, deps Deps) *Session {
	if deps.Sounds == nil {
		deps.Sounds = nopSound{}
	}
	if deps.Logger == nil {
		deps.Logger = log.Default()
	}

	s := &Session{
		cfg:            cfg,
		deps:           deps,
		state:          StateMenu,
		baseSeed:       seed,
		rng:            rand.New(rand.NewSource(seed)),
		gestureEnabled: cfg.Gesture.Enabled && deps.Gesture != nil,
	}
	s.player = NewPlayer(*cfg, rand.New(rand.NewSource(seed)))
	s.manager = NewObstacleManager(cfg, seed)

	if deps.Store != nil {
		progress, err := deps.Store.Load()
		if err != nil {
			deps.Logger.Warn("cannot load saved progress", "error", err)
		} else {
			s.highScore = progress.HighScore
			s.totalCoins = progress.TotalCoins
		}
	}
	return s
}

// Handle routes one input action through the state machine. Actions that
// do not apply to the current state are ignored.
func (s *Session) Handle(action core.Action) {
	switch s.state {
	case StateMenu:
		switch action {
		case core.ActionStart, core.ActionJump:
			s.startRun()
		case core.ActionMute:
			s.toggleMute()
		case core.ActionToggleGesture:
			s.toggleGesture()
		}

	case StatePlaying:
		switch action {
		case core.ActionJump:
			if s.player.Jump() {
				s.deps.Sounds.Play(soundJump, 1.0, true)
			}
		case core.ActionPause:
			s.state = StatePaused
			s.deps.Sounds.PauseMusic()
		case core.ActionMute:
			s.toggleMute()
		case core.ActionToggleGesture:
			s.toggleGesture()
		}

	case StatePaused:
		switch action {
		case core.ActionPause, core.ActionStart:
			s.state = StatePlaying
			s.deps.Sounds.ResumeMusic()
		case core.ActionMute:
			s.toggleMute()
		}

	case StateGameOver:
		switch action {
		case core.ActionRestart, core.ActionStart:
			s.startRun()
		case core.ActionMute:
			s.toggleMute()
		}
	}
}

// startRun resets the player and the manager for a fresh run. Each run gets
// a distinct seed so replays within one session differ.
func (s *Session) startRun() {
	s.runCount++
	seed := s.baseSeed + s.runCount

	s.player = NewPlayer(*s.cfg, rand.New(rand.NewSource(seed)))
	s.manager.Reset(seed)
	s.coinsCollected = 0
	s.runDuration = 0
	s.cameraShake = 0
	s.screenFlash = 0
	s.state = StatePlaying
	s.deps.Sounds.Play(soundStart, 0.8, false)
	s.deps.Sounds.ResumeMusic()
}

// Advance moves the session forward by dt seconds. Outside the Playing
// state only effect decay runs, so the simulation is frozen but feedback
// still settles.
func (s *Session) Advance(dt float64) {
	if dt < 0 {
		dt = 0
	}
	// A stalled frame is dropped to one large-but-sane step instead of
	// teleporting entities through the player.
	if dt > 0.25 {
		dt = 0.25
	}

	if s.state == StatePlaying {
		s.advancePlaying(dt)
	}

	s.decayEffects()
}

func (s *Session) advancePlaying(dt float64) {
	s.runDuration += dt

	if s.gestureEnabled && s.deps.Gesture != nil {
		if kind := s.deps.Gesture.Poll(); kind == gesture.KindJump {
			if s.player.Jump() {
				s.deps.Sounds.Play(soundJump, 1.0, true)
			}
		}
	}

	s.player.Update(dt)

	bounds := s.player.Bounds()
	if !bounds.IsFinite() {
		// Degraded frame: keep the world moving but skip hit tests until
		// the kinematics are sane again.
		s.deps.Logger.Warn("non-finite player bounds, skipping hit tests",
			"x", s.player.X, "y", s.player.Y)
		s.manager.Update(dt)
		return
	}

	s.manager.Update(dt)

	if s.manager.CheckCollision(bounds) {
		s.finishRun()
		return
	}

	if n := s.manager.CheckCoinCollection(bounds); n > 0 {
		s.coinsCollected += n
		s.deps.Sounds.Play(soundCoin, 0.7, false)
	}
}

// finishRun performs the one-shot Playing -> GameOver transition: feedback
// effects, sounds, progress update, and exactly one persisted record.
func (s *Session) finishRun() {
	s.state = StateGameOver

	s.cameraShake = s.cfg.Effects.ShakeIntensity
	s.screenFlash = s.cfg.Effects.FlashIntensity
	s.player.AddScreenShake(s.cfg.Effects.ShakeIntensity)

	s.deps.Sounds.Play(soundCollision, 0.8, false)
	s.deps.Sounds.Play(soundGameOver, 0.6, false)
	s.deps.Sounds.PauseMusic()

	score := s.manager.ScoreInt()
	if score > s.highScore {
		s.highScore = score
	}
	s.totalCoins += s.coinsCollected

	if s.deps.Store != nil {
		record := RunRecord{
			Score:    score,
			Coins:    s.coinsCollected,
			Duration: s.runDuration,
		}
		if err := s.deps.Store.SaveRun(record); err != nil {
			s.deps.Logger.Warn("cannot save run", "error", err, "score", score)
		}
	}
}

// decayEffects applies one tick of geometric decay to camera shake and
// screen flash, snapping to zero below the configured floors.
func (s *Session) decayEffects() {
	s.cameraShake *= s.cfg.Effects.ShakeDecay
	if s.cameraShake < s.cfg.Effects.ShakeFloor {
		s.cameraShake = 0
	}

	s.screenFlash *= s.cfg.Effects.FlashDecay
	if s.screenFlash < s.cfg.Effects.FlashFloor {
		s.screenFlash = 0
	}

	s.player.DecayShake()
}

func (s *Session) toggleMute() {
	s.muted = s.deps.Sounds.ToggleMute()
}

func (s *Session) toggleGesture() {
	if s.deps.Gesture == nil {
		return
	}
	s.gestureEnabled = !s.gestureEnabled
}

// State returns the current lifecycle phase.
func (s *Session) State() State { return s.state }

// Player returns the live player.
func (s *Session) Player() *Player { return s.player }

// Manager returns the live obstacle manager.
func (s *Session) Manager() *ObstacleManager { return s.manager }

// CoinsCollected returns the coin count of the current run.
func (s *Session) CoinsCollected() int { return s.coinsCollected }

// HighScore returns the best score seen, persisted or from this session.
func (s *Session) HighScore() int { return s.highScore }

// TotalCoins returns the lifetime coin total including the current run's
// finalized coins.
func (s *Session) TotalCoins() int { return s.totalCoins }

// RunDuration returns seconds spent in the Playing state this run.
func (s *Session) RunDuration() float64 { return s.runDuration }

// ScreenFlash returns the current flash intensity in [0, FlashIntensity].
func (s *Session) ScreenFlash() float64 { return s.screenFlash }

// CameraOffset returns a fresh random offset pair scaled by the current
// shake magnitude. Purely visual; never fed back into collision.
func (s *Session) CameraOffset() (float64, float64) {
	if s.cameraShake == 0 {
		return 0, 0
	}
	return (s.rng.Float64()*2 - 1) * s.cameraShake,
		(s.rng.Float64()*2 - 1) * s.cameraShake
}

// Muted reports the audio mute state.
func (s *Session) Muted() bool { return s.muted }

// GestureEnabled reports whether gesture input is currently active.
func (s *Session) GestureEnabled() bool { return s.gestureEnabled }

// GestureName returns the active gesture backend name, or empty when no
// gesture controller is wired.
func (s *Session) GestureName() string {
	if s.deps.Gesture == nil {
		return ""
	}
	return s.deps.Gesture.Name()
}

// FeedGestureKey forwards a raw key rune to the gesture backend when it is
// keyboard-driven. Returns false when the backend does not accept keys.
func (s *Session) FeedGestureKey(r rune) bool {
	kb, ok := s.deps.Gesture.(*gesture.Keyboard)
	if !ok {
		return false
	}
	return kb.SetKey(r)
}
