package main

import (
	"fmt"
	"os"
	"time"

	"github.com/LarryWang2718/cubesolver/internal/config"
	"github.com/LarryWang2718/cubesolver/pkg/cubesolver/cubeerr"
	"github.com/LarryWang2718/cubesolver/pkg/cubesolver/move"
	"github.com/LarryWang2718/cubesolver/pkg/cubesolver/search"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

func runSolve(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}

	level := zerolog.InfoLevel
	if flagVerbose {
		level = zerolog.DebugLevel
	}
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).
		With().Timestamp().Logger().Level(level)

	pdbDir := resolvePDBDir(flagPDBDir, os.Getenv("CUBESOLVER_PDB_DIR"), cfg)
	scrambleLen := resolveScramble(flagScramble, cfg)
	maxIterations := resolveMaxIterations(flagMaxIterations, cfg)
	seed := flagSeed
	if !cmd.Flags().Changed("seed") {
		seed = cfg.DefaultSeed
	}

	initial, err := buildInitialState(flagMoves, scrambleLen, seed)
	if err != nil {
		return err
	}
	if err := initial.Validate(); err != nil {
		return err
	}

	korf, err := loadOrBuildKorf(pdbDir, cfg.BuildPDBIfMissing, logger)
	if err != nil {
		return err
	}

	solver := search.IDAStar{
		Heuristic: korf,
		OnIteration: func(iteration, threshold int) {
			logger.Debug().Int("iteration", iteration).Int("threshold", threshold).Msg("ida* iteration")
		},
	}

	start := time.Now()
	solution, found, stats := solver.Solve(initial, maxIterations)
	elapsed := time.Since(start)

	if !found {
		logger.Info().Int("iterations", stats.Iterations).Msg("search exhausted max-iterations")
		return fmt.Errorf("solving within %d iterations: %w", maxIterations, cubeerr.ErrNoSolution)
	}

	fmt.Printf("Solution found (%d moves):\n  %s\n", len(solution), move.FormatSolution(solution))
	fmt.Printf("Nodes expanded: %d\n", stats.NodesExpanded)
	fmt.Printf("Time: %.3f seconds\n", elapsed.Seconds())

	logger.Info().
		Int("moves", len(solution)).
		Int("nodes_expanded", stats.NodesExpanded).
		Int("iterations", stats.Iterations).
		Dur("elapsed", elapsed).
		Msg("solve complete")

	return nil
}
