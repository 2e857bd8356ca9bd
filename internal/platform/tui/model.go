package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/trex-runner/internal/core"
	"github.com/vovakirdan/trex-runner/internal/games/dino"
	"github.com/vovakirdan/trex-runner/internal/storage"
)

// Model is the Bubble Tea model for one runner session.
type Model struct {
	game     *dino.Game
	screen   *core.Screen
	store    *storage.Store
	logger   *log.Logger
	config   core.RuntimeConfig
	player   string
	keys     *KeyMapper
	latch    *core.HoldLatch
	state    core.GameState
	board    *ScoreboardModel // open overlay, nil while playing
	quitting bool
	saved    int // Runs written to the ledger this session
}

// NewModel creates a model driving game. Finished runs are recorded in store
// under player; store may be nil.
func NewModel(game *dino.Game, store *storage.Store, cfg core.RuntimeConfig, player string, logger *log.Logger) Model {
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	return Model{
		game:   game,
		screen: core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:  store,
		logger: logger,
		config: cfg,
		player: player,
		keys:   NewKeyMapper(),
		latch:  NewLatch(cfg.TickRate),
		state:  game.State(),
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.board != nil {
			return m.updateBoard(msg)
		}
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	action, _ := m.keys.MapKey(msg)
	switch action {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	case core.ActionBack:
		// The ledger only opens while no run is in motion.
		if !m.state.Playing || m.state.Paused {
			board := NewScoreboardModel(m.store, m.player, m.config.ScreenW, m.config.ScreenH)
			m.board = &board
		}
		return m, nil
	}

	m.keys.MapKeyToLatch(msg, m.latch)
	return m, nil
}

func (m Model) updateBoard(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.board.Update(msg)
	board, ok := next.(ScoreboardModel)
	if !ok {
		return m, cmd
	}
	switch {
	case board.IsQuitting():
		m.quitting = true
		return m, tea.Quit
	case board.Closed():
		m.board = nil
	default:
		m.board = &board
	}
	return m, cmd
}

// handleResize adapts the screen. The world keeps its size; only the cell mapping changes.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	if m.board != nil {
		return m.updateBoard(msg)
	}
	return m, nil
}

// handleTick advances the simulation by one frame.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	input := m.latch.Frame()
	if m.board != nil {
		input.Clear()
	}

	result := m.game.Step(input)
	m.state = result.State

	if result.Collision {
		m.saveRun(result)
	}
	if result.Quit {
		m.quitting = true
		return m, tea.Quit
	}

	return m, tickCmd(m.config.TickRate)
}

// saveRun records the crashed run in the ledger.
func (m *Model) saveRun(result core.StepResult) {
	if m.store == nil {
		return
	}
	run := storage.Run{
		Player:     m.player,
		Seed:       m.game.Seed(),
		Score:      result.State.Score,
		Distance:   result.Distance,
		DurationMs: m.game.RunningTime(),
		Jumps:      m.game.TRex().JumpCount(),
	}
	id, err := m.store.SaveRun(run)
	if err != nil {
		m.logger.Warn("could not save run", "player", m.player, "error", err)
		return
	}
	m.saved++
	m.logger.Debug("run saved", "id", id, "player", m.player, "score", run.Score)
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	dir := filepath.Join(os.Getenv("HOME"), ".trex-runner", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("could not create screenshot directory", "error", err)
		return
	}

	filename := fmt.Sprintf("trex_%s.txt", time.Now().Format("20060102_150405"))
	path := filepath.Join(dir, filename)
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("could not save screenshot", "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.board != nil {
		return m.board.View()
	}

	m.game.Render(m.screen)
	if m.state.Inverted {
		return RenderScreenInverted(m.screen)
	}
	return RenderScreen(m.screen)
}

// State returns the game state as of the last tick.
func (m Model) State() core.GameState {
	return m.state
}

// SavedRuns returns how many runs this model recorded.
func (m Model) SavedRuns() int {
	return m.saved
}

// Run starts the Bubble Tea program for game on the local terminal.
func Run(game *dino.Game, store *storage.Store, cfg core.RuntimeConfig, player string, logger *log.Logger) error {
	model := NewModel(game, store, cfg, player, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
