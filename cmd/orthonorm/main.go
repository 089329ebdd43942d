package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// rootCmd is the base command for the orthonorm CLI.
var rootCmd = &cobra.Command{
	Use:   "orthonorm",
	Short: "Gram-Schmidt orthonormalization of fixed-dimension bases",
	Long: `orthonorm demonstrates the github.com/viant/orthonorm library: it turns an
ordered basis of 2-, 3- or 4-dimensional float64 vectors into an orthonormal
one with the modified Gram-Schmidt process.

Available commands:
  run    - orthonormalize a basis and print the result
  bench  - time repeated orthonormalization of the demo basis`,
}

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
