package main

import (
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/viant/orthonorm/basis"
	"github.com/viant/orthonorm/vector"
)

var benchIterations int

// benchCmd implements the 'orthonorm bench' command: a wall-clock timing
// loop over the canonical demo basis using the in-place convention.
var benchCmd = &cobra.Command{
	Use:   "bench",
	Short: "Time repeated orthonormalization of the demo basis",
	Long: `Repeatedly orthonormalize the canonical 4-dimensional demo basis and report
wall-clock timing.

Examples:
  orthonorm bench
  orthonorm bench --iterations 100000`,
	RunE: runBench,
}

func init() {
	rootCmd.AddCommand(benchCmd)
	benchCmd.Flags().IntVar(&benchIterations, "iterations", 1_000_000, "number of orthonormalization passes")
}

func runBench(cmd *cobra.Command, args []string) error {
	if benchIterations <= 0 {
		return fmt.Errorf("orthonorm: iterations must be positive, got %d", benchIterations)
	}

	demo := vectorsFromRows[[4]float64](demoRows())
	buf := make([]vector.Vec4, len(demo))

	start := time.Now()
	for i := 0; i < benchIterations; i++ {
		copy(buf, demo)
		basis.Orthonormalize(buf)
	}
	elapsed := time.Since(start)

	log.Info().
		Int("iterations", benchIterations).
		Dur("elapsed", elapsed).
		Dur("per_pass", elapsed/time.Duration(benchIterations)).
		Msg("orthonormalization benchmark complete")
	return nil
}
