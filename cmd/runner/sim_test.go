package main

import (
	"bytes"
	"errors"
	"io"
	"reflect"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/trex-runner/internal/config"
	"github.com/vovakirdan/trex-runner/internal/storage"
)

func openStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(storage.MemoryDSN)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestSimulateRecordsRuns(t *testing.T) {
	store := openStore(t)

	results, err := simulate(config.DefaultRunnerConfig(), 3, 2, 6000, store, log.New(io.Discard))
	if err != nil {
		t.Fatalf("simulate() failed: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}

	for i, r := range results {
		if r.Seed != int64(3+i) {
			t.Errorf("run %d seed = %d, expected %d", i, r.Seed, 3+i)
		}
		if !r.Crashed && r.Frames != 6000 {
			t.Errorf("run %d ended after %d frames without crashing", i, r.Frames)
		}
		if r.Jumps == 0 {
			t.Errorf("run %d: the autopilot should have jumped", i)
		}
	}

	stats, err := store.Stats(simPlayer)
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if stats.Runs != 2 {
		t.Errorf("expected 2 ledger runs, got %d", stats.Runs)
	}
}

func TestSimulateDeterministic(t *testing.T) {
	a, err := simulate(config.DefaultRunnerConfig(), 11, 2, 3000, nil, log.New(io.Discard))
	if err != nil {
		t.Fatal(err)
	}
	b, err := simulate(config.DefaultRunnerConfig(), 11, 2, 3000, nil, log.New(io.Discard))
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(a, b) {
		t.Errorf("same seed should give the same runs:\n%+v\n%+v", a, b)
	}
}

func TestSimulateLogsRuns(t *testing.T) {
	var buf bytes.Buffer
	logger := log.New(&buf)

	if _, err := simulate(config.DefaultRunnerConfig(), 1, 1, 600, nil, logger); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "run finished") {
		t.Errorf("expected a run log line, got %q", buf.String())
	}
}

func TestPrintSimReport(t *testing.T) {
	store := openStore(t)
	store.SaveRun(storage.Run{Player: simPlayer, Score: 250, Jumps: 7})

	var buf bytes.Buffer
	results := []simResult{{Seed: 9, Score: 250, Frames: 900, Jumps: 7, DurationMs: 15000, Crashed: true}}
	if err := printSimReport(&buf, results, store); err != nil {
		t.Fatalf("printSimReport() failed: %v", err)
	}

	out := buf.String()
	for _, want := range []string{"00250", "15.0s", "crash", "Best: 00250"} {
		if !strings.Contains(out, want) {
			t.Errorf("report should contain %q:\n%s", want, out)
		}
	}
}

func TestLoadConfig(t *testing.T) {
	cfg, err := loadConfig("", "fixed")
	if err != nil {
		t.Fatalf("loadConfig() failed: %v", err)
	}
	if cfg.Game.Acceleration != 0 {
		t.Errorf("fixed preset not applied: acceleration %g", cfg.Game.Acceleration)
	}

	if _, err := loadConfig("", "nightmare"); !errors.Is(err, config.ErrInvalidConfig) {
		t.Errorf("unknown preset should be rejected, got %v", err)
	}
}

func TestNewLoggerRejectsLevel(t *testing.T) {
	old := flagLogLevel
	t.Cleanup(func() { flagLogLevel = old })

	flagLogLevel = "loud"
	if _, _, err := newLogger(io.Discard, "test"); err == nil {
		t.Error("expected an error for an unknown level")
	}

	flagLogLevel = "debug"
	logger, closeLog, err := newLogger(io.Discard, "test")
	if err != nil {
		t.Fatalf("newLogger() failed: %v", err)
	}
	defer closeLog()
	if logger.GetLevel() != log.DebugLevel {
		t.Errorf("level = %v, expected debug", logger.GetLevel())
	}
}

func TestSimSeed(t *testing.T) {
	tests := []struct {
		flag int64
		want int64
	}{
		{0, 1},
		{1, 1},
		{42, 42},
		{-7, -7},
	}

	for _, tt := range tests {
		if got := simSeed(tt.flag); got != tt.want {
			t.Errorf("simSeed(%d) = %d, expected %d", tt.flag, got, tt.want)
		}
	}
	if !strings.Contains(simCmd.Long, "--seed 0") {
		t.Error("sim help should say what --seed 0 does")
	}
}

func TestServeHasNoLedgerFileFlag(t *testing.T) {
	for _, name := range []string{"db", "database", "ledger"} {
		if serveCmd.Flags().Lookup(name) != nil {
			t.Errorf("serve should not accept --%s; the ledger lives in memory", name)
		}
	}
}
