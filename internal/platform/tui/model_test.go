package tui

import (
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"

	"github.com/vovakirdan/trex-runner/internal/config"
	"github.com/vovakirdan/trex-runner/internal/core"
	"github.com/vovakirdan/trex-runner/internal/games/dino"
	"github.com/vovakirdan/trex-runner/internal/storage"
)

func newTestModel(t *testing.T, store *storage.Store) Model {
	t.Helper()
	game, err := dino.NewGame(config.DefaultRunnerConfig(), dino.WithSeed(7))
	if err != nil {
		t.Fatalf("NewGame() failed: %v", err)
	}
	return NewModel(game, store, core.DefaultConfig(), "tester", nil)
}

func send(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	mm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T, expected Model", next)
	}
	return mm, cmd
}

func tick(t *testing.T, m Model) Model {
	t.Helper()
	m, _ = send(t, m, TickMsg(time.Time{}))
	return m
}

// runUntilCrash starts a run and lets the character run into the first obstacle.
func runUntilCrash(t *testing.T, m Model) Model {
	t.Helper()
	m, _ = send(t, m, keyMsg("enter"))
	m = tick(t, m)
	if !m.State().Playing {
		t.Fatal("enter should start the run")
	}
	for i := 0; i < 3000 && !m.State().GameOver; i++ {
		m = tick(t, m)
	}
	if !m.State().GameOver {
		t.Fatal("an idle runner should crash eventually")
	}
	return m
}

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

func TestModelWaitsForStart(t *testing.T) {
	m := newTestModel(t, nil)
	for i := 0; i < 10; i++ {
		m = tick(t, m)
	}
	if m.State().Playing {
		t.Error("the run should not start without input")
	}
	if !strings.Contains(ansi.Strip(m.View()), "T-REX RUNNER") {
		t.Error("waiting screen should show the title")
	}
}

func TestModelRecordsCrash(t *testing.T) {
	store, err := storage.Open("")
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	m := runUntilCrash(t, newTestModel(t, store))
	if m.SavedRuns() != 1 {
		t.Fatalf("SavedRuns() = %d, expected 1", m.SavedRuns())
	}

	// Further ticks on the game over screen do not save again.
	for i := 0; i < 30; i++ {
		m = tick(t, m)
	}

	runs, err := store.TopRuns(10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("expected 1 run in the ledger, got %d", len(runs))
	}
	r := runs[0]
	if r.Player != "tester" || r.Seed != 7 || r.Score != m.State().Score {
		t.Errorf("unexpected run %+v (state %+v)", r, m.State())
	}
	if r.DurationMs <= 3000 {
		t.Errorf("run should outlast the clear time, got %gms", r.DurationMs)
	}
}

func TestModelWithoutStore(t *testing.T) {
	m := runUntilCrash(t, newTestModel(t, nil))
	if m.SavedRuns() != 0 {
		t.Errorf("nothing should be saved without a store")
	}
	if !strings.Contains(ansi.Strip(m.View()), "G A M E  O V E R") {
		t.Error("crash screen should be shown")
	}
}

func TestModelScoreboardOverlay(t *testing.T) {
	store, err := storage.Open("")
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	m := newTestModel(t, store)
	m, _ = send(t, m, keyMsg("enter"))
	m = tick(t, m)

	m, _ = send(t, m, keyMsg("tab"))
	if m.board != nil {
		t.Fatal("the ledger should not open during a run")
	}

	m = runUntilCrash(t, m)
	m, _ = send(t, m, keyMsg("tab"))
	if m.board == nil {
		t.Fatal("the ledger should open after a crash")
	}
	if !strings.Contains(ansi.Strip(m.View()), "RUN LEDGER") {
		t.Error("overlay should replace the game view")
	}

	// Keys go to the overlay, not the game.
	m, _ = send(t, m, keyMsg("enter"))
	m = tick(t, m)
	if !m.State().GameOver {
		t.Error("enter in the overlay should not restart the run")
	}

	m, _ = send(t, m, keyMsg("esc"))
	if m.board != nil {
		t.Error("esc should close the overlay")
	}
}

func TestModelQuit(t *testing.T) {
	m := newTestModel(t, nil)
	m, cmd := send(t, m, keyMsg("q"))
	if !isQuit(cmd) {
		t.Error("q should quit")
	}
	if m.View() != "" {
		t.Error("view should be empty after quitting")
	}
}

func TestModelResize(t *testing.T) {
	m := newTestModel(t, nil)
	m, _ = send(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})
	m = tick(t, m)

	lines := strings.Split(ansi.Strip(m.View()), "\n")
	if len(lines) != 30 {
		t.Fatalf("expected 30 lines, got %d", len(lines))
	}
	if n := utf8.RuneCountInString(lines[0]); n != 100 {
		t.Errorf("expected 100 columns, got %d", n)
	}
}
