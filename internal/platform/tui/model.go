package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/mkositsyn/temprun/internal/config"
	"github.com/mkositsyn/temprun/internal/core"
	"github.com/mkositsyn/temprun/internal/game"
	"github.com/mkositsyn/temprun/internal/gesture"
	"github.com/mkositsyn/temprun/internal/storage"
)

// Options bundles everything a playable model needs.
type Options struct {
	Config  *config.Config
	Runtime core.RuntimeConfig
	Store   *storage.Store // May be nil: persistence disabled
	Sounds  game.SoundPlayer
	Gesture gesture.Controller
	Logger  *log.Logger
}

// storeAdapter bridges the sqlite store to the session's persistence
// surface.
type storeAdapter struct {
	store *storage.Store
}

func (a storeAdapter) Load() (game.Progress, error) {
	p, err := a.store.Load()
	if err != nil {
		return game.Progress{}, err
	}
	return game.Progress{HighScore: p.HighScore, TotalCoins: p.TotalCoins}, nil
}

func (a storeAdapter) SaveRun(r game.RunRecord) error {
	_, err := a.store.SaveRun(r.Score, r.Coins, r.Duration)
	return err
}

// actionOrder fixes the order buffered actions are applied in on a tick, so
// a frame carrying several keys resolves deterministically.
var actionOrder = []core.Action{
	core.ActionStart,
	core.ActionJump,
	core.ActionDuck,
	core.ActionPause,
	core.ActionRestart,
	core.ActionMute,
	core.ActionToggleGesture,
}

// Model is the Bubble Tea model driving one runner session.
type Model struct {
	session    *game.Session
	screen     *core.Screen
	keyMapper  *KeyMapper
	runtime    core.RuntimeConfig
	inputFrame core.InputFrame

	// Wall-clock time of the previous tick. The simulation consumes real
	// elapsed time, so a slow terminal slows rendering without slowing the
	// world inconsistently.
	lastTick time.Time

	quitting bool
}

// NewModel creates a model wired to a fresh session.
func NewModel(opts Options) Model {
	if opts.Runtime.Seed == 0 {
		opts.Runtime.Seed = time.Now().UnixNano()
	}
	if opts.Runtime.TickRate <= 0 {
		opts.Runtime.TickRate = 60
	}
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}

	deps := game.Deps{
		Sounds:  opts.Sounds,
		Gesture: opts.Gesture,
		Logger:  opts.Logger,
	}
	if opts.Store != nil {
		deps.Store = storeAdapter{store: opts.Store}
	}

	return Model{
		session:    game.NewSession(opts.Config, opts.Runtime.Seed, deps),
		screen:     core.NewScreen(opts.Runtime.ScreenW, opts.Runtime.ScreenH),
		keyMapper:  NewKeyMapper(),
		runtime:    opts.Runtime,
		inputFrame: core.NewInputFrame(),
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.runtime.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.runtime.ScreenW = msg.Width
		m.runtime.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey routes keyboard input into the session. Single runes also feed
// the keyboard gesture backend so F/I/O work while gestures are enabled.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action, isQuit := m.keyMapper.MapKey(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}

	if m.session.GestureEnabled() {
		if r := m.keyMapper.GestureRune(msg); r != 0 && m.session.FeedGestureKey(r) {
			return m, nil
		}
	}

	if action != core.ActionNone {
		m.inputFrame.Set(action)
	}
	return m, nil
}

// handleTick applies the actions buffered since the last tick, advances the
// simulation by the real elapsed time, and schedules the next frame.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	dt := 0.0
	if !m.lastTick.IsZero() {
		dt = now.Sub(m.lastTick).Seconds()
	}
	m.lastTick = now

	for _, action := range actionOrder {
		if m.inputFrame.Has(action) {
			m.session.Handle(action)
		}
	}
	m.inputFrame.Clear()

	m.session.Advance(dt)

	return m, tickCmd(m.runtime.TickRate)
}

// View renders the current frame.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.session.Render(m.screen)
	return RenderScreen(m.screen)
}

// Run starts the Bubble Tea program with the given options and blocks until
// the player quits.
func Run(opts Options) error {
	p := tea.NewProgram(
		NewModel(opts),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
