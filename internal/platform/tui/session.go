package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/moti-runner/internal/core"
)

// SessionModel manages the play session flow: game -> scoreboard -> game.
// Ticks and config reloads always reach the game so the loop keeps running
// while the scoreboard is shown; the game is paused meanwhile.
type SessionModel struct {
	game       Model
	board      ScoreboardModel
	showScores bool
	width      int
	height     int
	quitting   bool
}

// NewSessionModel creates a new session model.
func NewSessionModel(game Game, cfg core.RuntimeConfig, opts Options) SessionModel {
	w, h := opts.Width, opts.Height
	if w <= 0 || h <= 0 {
		w, h = 80, 24
	}
	return SessionModel{
		game:   NewModel(game, cfg, opts),
		width:  w,
		height: h,
	}
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return m.game.Init()
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.width = wsm.Width
		m.height = wsm.Height
		if m.showScores {
			// The game screen must follow the terminal too.
			m.game = m.updateGameModel(msg)
		}
	}

	if m.showScores {
		switch msg.(type) {
		case TickMsg, ConfigMsg:
			next, cmd := m.game.Update(msg)
			m.game = next.(Model)
			return m, cmd
		}
	}

	if m.showScores {
		return m.updateScores(msg)
	}
	return m.updateGame(msg)
}

func (m SessionModel) updateGameModel(msg tea.Msg) Model {
	next, _ := m.game.Update(msg)
	return next.(Model)
}

// updateGame handles updates when the game screen is shown.
func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.game.Update(msg)
	m.game = next.(Model)

	if m.game.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if m.game.wantScores {
		m.game.wantScores = false
		m.board = NewScoreboardModel(m.game.store, m.width, m.height)
		m.board.embedded = true
		m.showScores = true
	}

	return m, cmd
}

// updateScores handles updates when the scoreboard is shown.
func (m SessionModel) updateScores(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.board.Update(msg)
	m.board = next.(ScoreboardModel)

	if m.board.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}
	if m.board.IsGoingBack() {
		m.showScores = false
		return m, nil
	}

	return m, cmd
}

// View renders the current view.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}
	if m.showScores {
		return m.board.View()
	}
	return m.game.View()
}

// State returns the last observed game state.
func (m SessionModel) State() core.GameState {
	return m.game.State()
}

// Run starts the play session and returns the final game state.
func Run(game Game, cfg core.RuntimeConfig, opts Options) (core.GameState, error) {
	p := tea.NewProgram(
		NewSessionModel(game, cfg, opts),
		tea.WithAltScreen(),
	)

	final, err := p.Run()
	if err != nil {
		return game.State(), err
	}
	if s, ok := final.(SessionModel); ok {
		return s.State(), nil
	}
	return game.State(), nil
}
