package tui

import (
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/moti-runner/internal/config"
	"github.com/vovakirdan/moti-runner/internal/core"
	"github.com/vovakirdan/moti-runner/internal/storage"
)

// Game is the simulation driven by the UI loop.
type Game interface {
	Reset(runtime core.RuntimeConfig)
	Step(in core.InputFrame, dt float64) core.StepResult
	Render(dst *core.Screen)
	State() core.GameState
	Title() string
}

// ScoreStore is the persistence the UI needs. *storage.Store satisfies it.
type ScoreStore interface {
	SaveScore(name string, score int) (int64, error)
	HighScore() (int, error)
	TopScores(limit int) ([]storage.ScoreEntry, error)
	GetStats() (*storage.Stats, error)
}

// SoundToggle switches sound on and off. *audio.Mixer satisfies it.
type SoundToggle interface {
	ToggleSound() bool
	Enabled() bool
	Volume() float64
}

// ConfigReloader accepts a new runner config while playing.
// *runner.Game satisfies it.
type ConfigReloader interface {
	QueueConfig(cfg config.RunnerConfig)
}

// Options are the collaborators of a play session. Every field is optional.
type Options struct {
	Player string
	Store  ScoreStore
	Sound  SoundToggle
	Logger *log.Logger
	Width  int // Initial terminal size in cells
	Height int

	// ConfigUpdates delivers reloaded configs. They reach the game only
	// if it implements ConfigReloader.
	ConfigUpdates <-chan config.RunnerConfig
}

// Model is the Bubble Tea model for the game screen.
type Model struct {
	game       Game
	screen     *core.Screen
	clock      *core.Clock
	keys       *KeyMapper
	help       help.Model
	store      ScoreStore
	sound      SoundToggle
	logger     *log.Logger
	player     string
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	gameState  core.GameState
	best       int
	status     string
	quitting   bool
	wantScores bool
	scoreSaved bool // Whether score has been saved for current game over
	updates    <-chan config.RunnerConfig
}

// NewModel creates the game screen and resets the game.
func NewModel(game Game, cfg core.RuntimeConfig, opts Options) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if opts.Player == "" {
		opts.Player = "Player1"
	}

	w, h := opts.Width, opts.Height
	if w <= 0 || h <= 0 {
		w, h = 80, 24
	}

	m := Model{
		game:       game,
		screen:     core.NewScreen(w, playfieldHeight(h)),
		clock:      core.NewClock(cfg.TickRate),
		keys:       NewKeyMapper(),
		help:       help.New(),
		store:      opts.Store,
		sound:      opts.Sound,
		logger:     opts.Logger,
		player:     opts.Player,
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		updates:    opts.ConfigUpdates,
	}

	game.Reset(cfg)
	m.gameState = game.State()
	m.refreshBest()
	m.logger.Info("session started", "player", m.player, "seed", cfg.Seed,
		"speed", cfg.InitialSpeed, "difficulty", cfg.Difficulty)

	return m
}

// playfieldHeight leaves one terminal row for the status line.
func playfieldHeight(termH int) int {
	return max(termH-1, 1)
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tea.Batch(tickCmd(m.clock.Interval()), waitForConfig(m.updates))
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

	case ConfigMsg:
		return m.handleConfig(msg)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.keys.IsScreenshot(msg) {
		m.saveScreenshot()
		return m, nil
	}

	action, isQuit := m.keys.MapKey(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}

	switch action {
	case core.ActionMute:
		m.toggleSound()
	case core.ActionScores:
		m.wantScores = true
		m.pause()
	case core.ActionRestart:
		if m.gameState.GameOver {
			m.inputFrame.Set(core.ActionRestart)
		}
	case core.ActionNone, core.ActionBack:
	default:
		m.inputFrame.Set(action)
	}

	return m, nil
}

func (m *Model) toggleSound() {
	if m.sound == nil {
		m.status = "sound unavailable"
		return
	}
	if m.sound.ToggleSound() {
		m.status = "sound on"
	} else {
		m.status = "sound off"
	}
}

// pause queues a pause for the next tick if the game is running.
func (m *Model) pause() {
	if !m.gameState.Paused && !m.gameState.GameOver && !m.inputFrame.Has(core.ActionPause) {
		m.inputFrame.Set(core.ActionPause)
	}
}

// handleResize processes window resize events. The world keeps its size;
// only the projection grid changes.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.screen.Resize(msg.Width, playfieldHeight(msg.Height))
	return m, nil
}

// handleConfig hands a reloaded config to the game and waits for the next.
func (m Model) handleConfig(msg ConfigMsg) (tea.Model, tea.Cmd) {
	if r, ok := m.game.(ConfigReloader); ok {
		r.QueueConfig(msg.Config)
		m.status = "config reloaded, applies on restart"
		m.logger.Info("config reloaded")
	} else {
		m.logger.Warn("game does not accept config reloads")
	}
	return m, waitForConfig(m.updates)
}

// handleTick processes simulation ticks.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	dt := m.clock.Tick(now)
	wasOver := m.gameState.GameOver

	result := m.game.Step(m.inputFrame, dt)
	m.gameState = result.State
	m.inputFrame.Clear()

	if wasOver && !m.gameState.GameOver {
		m.scoreSaved = false
		m.status = ""
		m.logger.Info("restarted", "player", m.player)
	}

	if m.gameState.GameOver && !m.scoreSaved {
		m.finishRun()
	}

	return m, tickCmd(m.clock.Interval())
}

// finishRun saves the score once per game over. A failed save is logged
// and shown in the status line; the session goes on.
func (m *Model) finishRun() {
	m.scoreSaved = true
	s := m.gameState
	m.logger.Info("game over", "player", m.player, "score", s.Score,
		"max_speed", s.MaxSpeed, "time", fmt.Sprintf("%.1fs", s.Elapsed))

	if m.store == nil || s.Score <= 0 {
		return
	}
	if _, err := m.store.SaveScore(m.player, s.Score); err != nil {
		m.logger.Error("cannot save score", "err", err)
		m.status = "score not saved: " + err.Error()
		return
	}
	if s.Score > m.best {
		m.status = fmt.Sprintf("new best: %d", s.Score)
	} else {
		m.status = fmt.Sprintf("saved %d for %s", s.Score, m.player)
	}
	m.refreshBest()
}

func (m *Model) refreshBest() {
	if m.store == nil {
		return
	}
	best, err := m.store.HighScore()
	if err != nil {
		m.logger.Warn("cannot read high score", "err", err)
		return
	}
	m.best = best
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.status = "screenshot failed: " + err.Error()
		return
	}
	dir := filepath.Join(home, ".moti", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.status = "screenshot failed: " + err.Error()
		return
	}

	filename := fmt.Sprintf("runner_%s.txt", time.Now().Format("20060102_150405"))
	path := filepath.Join(dir, filename)
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.status = "screenshot failed: " + err.Error()
		return
	}
	m.status = "screenshot saved to " + path
	m.logger.Debug("screenshot", "path", path)
}

// statusLine is the text below the playfield.
func (m Model) statusLine() string {
	sound := "off"
	if m.sound != nil && m.sound.Enabled() {
		sound = fmt.Sprintf("on %d%%", int(math.Round(m.sound.Volume()*100)))
	}
	line := fmt.Sprintf(" %s  best %d  sound %s  |  %s", m.player, m.best, sound,
		m.help.ShortHelpView(m.keys.Keys().ShortHelp()))
	if m.status != "" {
		line += "  |  " + m.status
	}
	return line
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + statusStyle.Render(m.statusLine())
}

// State returns the last observed game state.
func (m Model) State() core.GameState {
	return m.gameState
}

// IsQuitting returns true if the user asked to quit.
func (m Model) IsQuitting() bool {
	return m.quitting
}
