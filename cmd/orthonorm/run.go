package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var (
	runInput   string
	runInPlace bool
)

// runCmd implements the 'orthonorm run' command.
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Orthonormalize a basis and print the result",
	Long: `Orthonormalize a basis and print the resulting vectors, one per line.

Without --input the canonical 4-dimensional demo basis is used.

Examples:
  orthonorm run                       # canonical demo basis
  orthonorm run --input basis.yaml    # basis loaded from a YAML file
  orthonorm run --in-place            # use the mutating calling convention`,
	RunE: runOrthonormalize,
}

func init() {
	rootCmd.AddCommand(runCmd)
	runCmd.Flags().StringVar(&runInput, "input", "", "YAML file with a 'basis:' list of vectors")
	runCmd.Flags().BoolVar(&runInPlace, "in-place", false, "use the in-place calling convention")
}

func runOrthonormalize(cmd *cobra.Command, args []string) error {
	rows := demoRows()
	if runInput != "" {
		loaded, err := loadBasis(runInput)
		if err != nil {
			return err
		}
		rows = loaded
	}

	out, err := orthonormalizeRows(rows, runInPlace)
	if err != nil {
		return err
	}
	for _, row := range out {
		fmt.Fprintln(cmd.OutOrStdout(), formatRow(row))
	}
	return nil
}

// demoRows returns the canonical demonstration basis.
func demoRows() [][]float64 {
	return [][]float64{
		{1, 1, 1, 1},
		{0, 1, 0, 1},
		{0, 0, 1, 1},
		{0, 0, 0, 1},
	}
}

func formatRow(row []float64) string {
	parts := make([]string, len(row))
	for i, c := range row {
		parts[i] = fmt.Sprintf("% .6f", c)
	}
	return "[" + strings.Join(parts, " ") + "]"
}
