package main

import (
	"fmt"
	"strings"

	"github.com/LarryWang2718/cubesolver/internal/config"
	"github.com/LarryWang2718/cubesolver/pkg/cubesolver/cube"
	"github.com/LarryWang2718/cubesolver/pkg/cubesolver/move"
)

// resolvePDBDir applies the documented precedence: --pdb-dir flag, then
// CUBESOLVER_PDB_DIR, then cubesolver.yaml, then the built-in default.
func resolvePDBDir(flagVal, envVal string, cfg *config.Config) string {
	if flagVal != "" {
		return flagVal
	}
	if envVal != "" {
		return envVal
	}
	return cfg.PDBDir
}

// resolveScramble applies the flag-over-config precedence for --scramble.
func resolveScramble(flagVal int, cfg *config.Config) int {
	if flagVal >= 0 {
		return flagVal
	}
	return cfg.DefaultScramble
}

// resolveMaxIterations applies the flag-over-config precedence for
// --max-iterations.
func resolveMaxIterations(flagVal int, cfg *config.Config) int {
	if flagVal >= 0 {
		return flagVal
	}
	return cfg.DefaultMaxIter
}

// buildInitialState produces the state to solve from either a literal
// --moves scramble or a random --scramble of the given length. Only the
// state is returned, not the move sequence that produced it.
func buildInitialState(movesFlag string, scrambleLen int, seed int64) (cube.State, error) {
	movesFlag = strings.TrimSpace(movesFlag)
	if movesFlag != "" {
		names, err := parseMoveList(movesFlag)
		if err != nil {
			return cube.State{}, err
		}
		return move.ApplySequence(cube.Solved(), names), nil
	}

	s, _ := move.Scramble(cube.Solved(), scrambleLen, seed)
	return s, nil
}

// parseMoveList parses a whitespace-separated move sequence, e.g. "U R F2".
func parseMoveList(s string) ([]move.Name, error) {
	fields := strings.Fields(s)
	names := make([]move.Name, len(fields))
	for i, f := range fields {
		n, err := move.ParseName(f)
		if err != nil {
			return nil, fmt.Errorf("parsing move %d (%q): %w", i, f, err)
		}
		names[i] = n
	}
	return names, nil
}
