package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/trex-runner/internal/config"
	"github.com/vovakirdan/trex-runner/internal/games/dino"
	"github.com/vovakirdan/trex-runner/internal/storage"
)

const simPlayer = "autopilot"

var (
	flagRuns      int
	flagMaxFrames int
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Let the autopilot play headless runs",
	Long: `Play runs without a terminal UI. The autopilot reads the game state every
frame and jumps or ducks; time advances by exactly one frame per step, so a
seed always produces the same runs.

Each run uses seed+i. A run ends at the first crash or after --max-frames.
Unlike play, sim never picks a time-based seed: --seed 0 (the default) runs
from seed 1, so repeated invocations match.

Examples:
  runner sim
  runner sim --runs 20 --seed 42
  runner sim --difficulty hard --log-level debug`,
	Args: cobra.NoArgs,
	Run:  runSim,
}

func init() {
	simCmd.Flags().IntVar(&flagRuns, "runs", 5, "Number of runs")
	simCmd.Flags().IntVar(&flagMaxFrames, "max-frames", 60*60*5, "Frame limit per run")
}

// simResult is the outcome of one autopilot run.
type simResult struct {
	Seed       int64
	Score      int
	Frames     int
	Jumps      int
	DurationMs float64
	Crashed    bool
}

// simSeed maps the --seed flag to the first run's seed. Zero means 1.
func simSeed(flag int64) int64 {
	if flag == 0 {
		return 1
	}
	return flag
}

// simulate plays runs with the autopilot and records each one in store.
func simulate(cfg config.RunnerConfig, seed int64, runs, maxFrames int, store *storage.Store, logger *log.Logger) ([]simResult, error) {
	game, err := dino.NewGame(cfg, dino.WithSeed(seed), dino.WithLogger(logger))
	if err != nil {
		return nil, err
	}

	results := make([]simResult, 0, runs)
	for i := 0; i < runs; i++ {
		runSeed := seed + int64(i)
		if i > 0 {
			if err := game.Reset(runSeed); err != nil {
				return results, err
			}
		}

		pilot := dino.NewAutopilot()
		res := simResult{Seed: runSeed}
		for res.Frames < maxFrames {
			step := game.Step(pilot.Next(game.Observe()))
			res.Frames++
			if step.Collision {
				res.Crashed = true
				break
			}
		}
		res.Score = game.State().Score
		res.Jumps = game.TRex().JumpCount()
		res.DurationMs = game.RunningTime()

		if store != nil {
			if _, err := store.SaveRun(storage.Run{
				Player:     simPlayer,
				Seed:       runSeed,
				Score:      res.Score,
				Distance:   game.Distance(),
				DurationMs: res.DurationMs,
				Jumps:      res.Jumps,
			}); err != nil {
				return results, err
			}
		}

		logger.Info("run finished",
			"run", i+1,
			"seed", runSeed,
			"score", res.Score,
			"frames", res.Frames,
			"crashed", res.Crashed,
		)
		results = append(results, res)
	}
	return results, nil
}

func runSim(cmd *cobra.Command, _ []string) {
	if flagRuns <= 0 || flagMaxFrames <= 0 {
		exitErr("--runs and --max-frames must be positive")
	}

	cfg, err := loadConfig(flagConfig, flagDifficulty)
	if err != nil {
		exitErr("%v", err)
	}

	logger, closeLog, err := newLogger(os.Stderr, "trex-sim")
	if err != nil {
		exitErr("%v", err)
	}
	defer closeLog()

	store, err := storage.Open(storage.MemoryDSN)
	if err != nil {
		exitErr("opening run ledger: %v", err)
	}
	defer store.Close()

	results, err := simulate(cfg, simSeed(flagSeed), flagRuns, flagMaxFrames, store, logger)
	if err != nil {
		exitErr("%v", err)
	}

	if err := printSimReport(cmd.OutOrStdout(), results, store); err != nil {
		exitErr("%v", err)
	}
}

// printSimReport writes the per-run table and the ledger summary.
func printSimReport(w io.Writer, results []simResult, store *storage.Store) error {
	fmt.Fprintf(w, "  %-4s  %-20s  %-6s  %-8s  %-6s  %s\n", "Run", "Seed", "Score", "Time", "Jumps", "End")
	fmt.Fprintf(w, "  %-4s  %-20s  %-6s  %-8s  %-6s  %s\n", "---", "----", "-----", "----", "-----", "---")
	for i, r := range results {
		end := "limit"
		if r.Crashed {
			end = "crash"
		}
		fmt.Fprintf(w, "  %-4d  %-20d  %05d   %7.1fs  %-6d  %s\n",
			i+1, r.Seed, r.Score, r.DurationMs/1000, r.Jumps, end)
	}

	stats, err := store.Stats(simPlayer)
	if err != nil {
		return err
	}
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Best: %05d  Average: %.1f  Jumps: %d\n", stats.HighScore, stats.AvgScore, stats.Jumps)
	return nil
}
