package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "cubesolver",
	Short: "Solve a scrambled Rubik's Cube with Korf's IDA* algorithm",
	RunE:  runSolve,
}

var (
	flagScramble      int
	flagSeed          int64
	flagMoves         string
	flagMaxIterations int
	flagConfig        string
	flagPDBDir        string
	flagVerbose       bool
)

func init() {
	rootCmd.Flags().IntVar(&flagScramble, "scramble", -1, "apply N random moves (default 25)")
	rootCmd.Flags().Int64Var(&flagSeed, "seed", 0, "seed for the random scramble")
	rootCmd.Flags().StringVar(&flagMoves, "moves", "", `apply a literal scramble, e.g. "U R F2"`)
	rootCmd.Flags().IntVar(&flagMaxIterations, "max-iterations", -1, "cap IDA* iterations (default 50)")
	rootCmd.Flags().StringVar(&flagConfig, "config", "cubesolver.yaml", "path to cubesolver.yaml")
	rootCmd.Flags().StringVar(&flagPDBDir, "pdb-dir", "", "PDB cache directory (overrides config and CUBESOLVER_PDB_DIR)")
	rootCmd.Flags().BoolVar(&flagVerbose, "verbose", false, "log one line per IDA* iteration")
}

// Execute runs the root command, exiting with status 1 on any error
// (including NoSolution and invalid-state errors surfaced from runSolve).
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
