package main

import (
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/trex-runner/internal/core"
	"github.com/vovakirdan/trex-runner/internal/games/dino"
	"github.com/vovakirdan/trex-runner/internal/platform/tui"
	"github.com/vovakirdan/trex-runner/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in this terminal",
	Long: `Start a run in the current terminal.

Controls:
  Space/W/Up  - Jump (hold for a higher jump)
  S/Down      - Duck, or drop fast while airborne
  Enter       - Start, restart after a crash
  P/Esc       - Pause
  Tab/B       - Run ledger (while not running)
  Ctrl+S      - Screenshot
  Q/Ctrl+C    - Quit

Difficulty options:
  easy   - Slower start and lower top speed
  normal - The configured values
  hard   - Faster start, tighter gaps
  fixed  - No acceleration, stays at the starting speed

Examples:
  runner play
  runner play --difficulty easy
  runner play --config ./my-runner.yaml
  runner play --log-file trex.log --log-level debug`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, _ []string) {
	cfg, err := loadConfig(flagConfig, flagDifficulty)
	if err != nil {
		exitErr("%v", err)
	}

	// The alt screen owns the terminal; logs only go to --log-file.
	logger, closeLog, err := newLogger(io.Discard, "trex")
	if err != nil {
		exitErr("%v", err)
	}
	defer closeLog()

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	rt := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     seed,
	}

	game, err := dino.NewGame(cfg,
		dino.WithClock(core.NewWallClock()),
		dino.WithSeed(seed),
		dino.WithLogger(logger),
	)
	if err != nil {
		exitErr("creating game: %v", err)
	}

	store, err := storage.Open(storage.MemoryDSN)
	if err != nil {
		logger.Warn("could not open run ledger", "error", err)
		// Continue without storage - game still works
		store = nil
	}

	player := os.Getenv("USER")
	if player == "" {
		player = "local"
	}

	runErr := tui.Run(game, store, rt, player, logger)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		exitErr("running game: %v", runErr)
	}
}
