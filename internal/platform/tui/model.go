package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-runner/internal/core"
	"github.com/vovakirdan/tui-runner/internal/registry"
	"github.com/vovakirdan/tui-runner/internal/storage"
)

// Terminals report key presses and repeats but never releases. A move key
// that has not repeated for this many ticks counts as released.
const releaseAfterTicks = 8

// maxElapsed caps the measured frame time so a stalled terminal does not
// release a burst of interval spawns.
const maxElapsed = 250 * time.Millisecond

// CuePlayer receives the cues emitted by each step.
type CuePlayer interface {
	Play(cues ...core.Cue)
}

// Model is the Bubble Tea model for running a game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	sound      CuePlayer
	config     core.RuntimeConfig
	keyMapper  *KeyMapper
	inputFrame core.InputFrame
	gameState  core.GameState

	paused     bool
	moving     bool // A move key is considered held
	idleTicks  int  // Ticks since the last move key event
	lastTick   time.Time
	embedded   bool   // Hosted by a session: Back returns to the menu
	player     string // Recorded with saved runs
	quitting   bool
	backToMenu bool
	scoreSaved bool // Whether the run has been saved for current game over
}

// NewModel creates a new Bubble Tea model for the given game. store and
// sound may be nil.
func NewModel(game registry.Game, store *storage.Store, sound CuePlayer, cfg core.RuntimeConfig) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		sound:      sound,
		config:     cfg,
		keyMapper:  NewKeyMapper(),
		inputFrame: core.NewInputFrame(),
	}
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	// Note: gameState will be set on first tick (value receiver limitation)

	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	action, isQuit := m.keyMapper.MapKey(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}

	switch action {
	case core.ActionNone:
		return m, nil

	case core.ActionPause:
		if !m.gameState.GameOver {
			m.paused = !m.paused
		}
		return m, nil

	case core.ActionBack:
		if m.embedded && (m.gameState.GameOver || m.paused) {
			m.backToMenu = true
			return m, nil
		}
		if !m.gameState.GameOver {
			m.paused = !m.paused
		}
		return m, nil

	case core.ActionRestart:
		if m.gameState.GameOver {
			m.restart()
		}
		return m, nil
	}

	if m.paused {
		return m, nil
	}
	if IsMove(action) {
		m.moving = true
		m.idleTicks = 0
	}
	m.inputFrame.Set(action)
	return m, nil
}

// restart begins a fresh run with a new seed.
func (m *Model) restart() {
	m.config.Seed = time.Now().UnixNano()
	m.game.Reset(m.config)
	m.gameState = m.game.State()
	m.scoreSaved = false
	m.paused = false
	m.moving = false
	m.inputFrame.Clear()
}

// handleResize processes window resize events. The run continues; only
// the cell mapping changes.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)

	if r, ok := m.game.(registry.Resizer); ok {
		r.Resize(msg.Width, msg.Height)
	}

	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	if m.paused {
		// Paused time does not count toward spawn intervals.
		m.lastTick = time.Time{}
		m.inputFrame.Clear()
		return m, tickCmd(m.config.TickRate)
	}

	if m.moving {
		m.idleTicks++
		if m.idleTicks >= releaseAfterTicks {
			m.inputFrame.Set(core.ActionStop)
			m.moving = false
		}
	}

	if !m.lastTick.IsZero() {
		m.inputFrame.Elapsed = min(now.Sub(m.lastTick), maxElapsed)
	}
	m.lastTick = now

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	if m.sound != nil && len(result.Cues) > 0 {
		m.sound.Play(result.Cues...)
	}

	// Save run on game over (once)
	if m.gameState.GameOver && !m.scoreSaved {
		m.saveRun()
		m.scoreSaved = true
	}

	m.inputFrame.Clear()
	return m, tickCmd(m.config.TickRate)
}

// saveRun records the finished run. Best-effort: the game continues
// regardless.
func (m *Model) saveRun() {
	if m.store == nil || m.gameState.Score <= 0 {
		return
	}
	rec := storage.NewRunRecord(m.game.ID(), m.config.Seed, m.gameState)
	rec.Player = m.player
	if _, err := m.store.SaveRun(rec); err != nil {
		log.Warn("could not save run", "game", m.game.ID(), "err", err)
	}
}

// saveScreenshot writes the current screen to a text file. Local play also
// puts it on the clipboard; in an SSH session that would be the server's.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)
	shot := m.screen.String()

	dir := filepath.Join(os.Getenv("HOME"), ".arcade", "screenshots")
	name := fmt.Sprintf("%s_%s.txt", m.game.ID(), time.Now().Format("20060102_150405"))
	if err := os.MkdirAll(dir, 0o755); err == nil {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(shot), 0o600); err != nil {
			log.Debug("screenshot not saved", "err", err)
		}
	}

	if !m.embedded && !clipboard.Unsupported {
		if err := clipboard.WriteAll(shot); err != nil {
			log.Debug("screenshot not copied", "err", err)
		}
	}
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	if m.paused {
		drawPaused(m.screen)
	}

	return RenderScreen(m.screen)
}

// drawPaused overlays the pause banner.
func drawPaused(s *core.Screen) {
	const title = "PAUSED"
	const hint = "P: resume  |  Q: quit"
	w := max(len(title), len(hint)) + 4
	r := core.NewRect((s.Width()-w)/2, (s.Height()-5)/2, w, 5)
	s.DrawRect(r, ' ')
	s.DrawBox(r)
	s.DrawTextColored(r.X+(w-len(title))/2, r.Y+1, title, core.ColorBrightYellow)
	s.DrawText(r.X+(w-len(hint))/2, r.Y+3, hint)
}

// State returns the last observed game state with the driver's pause flag.
func (m Model) State() core.GameState {
	st := m.gameState
	st.Paused = m.paused
	return st
}

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// Run starts the Bubble Tea program with the given model.
func Run(game registry.Game, store *storage.Store, sound CuePlayer, cfg core.RuntimeConfig) error {
	model := NewModel(game, store, sound, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
