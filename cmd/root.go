package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/phonolab/phonovar/internal/cmudict"
	"github.com/phonolab/phonovar/internal/sampling"
	"github.com/spf13/cobra"
)

func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "phonovar",
		Short: "Phonotactic score variance measurement over seeded CMU dictionary samples",
		Long: `Phonovar draws reproducible random samples of phonemic transcriptions from
the CMU Pronouncing Dictionary, scores them with the UCI phonotactic
calculator, and measures how the scoring metric varies across seeds.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Load .env file if present (ignore errors)
			_ = godotenv.Load()
		},
	}

	// Add subcommands
	cmd.AddCommand(newSampleCmd())
	cmd.AddCommand(newVarianceCmd())

	return cmd
}

// setupLogging points slog at stderr so JSON output on stdout stays clean
func setupLogging(verbose bool) {
	logLevel := slog.LevelInfo
	if verbose {
		logLevel = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))
	slog.SetDefault(logger)
}

// resolveSetting picks the flag value, then the environment variable, then
// the built-in default.
func resolveSetting(flagValue, envVar, fallback string) string {
	if flagValue != "" {
		return flagValue
	}
	if v := os.Getenv(envVar); v != "" {
		return v
	}
	return fallback
}

// loadCandidatePool loads the dictionary and filters it into the shared
// candidate pool. Any failure here is fatal to the whole run: no seed can
// proceed without a valid pool.
func loadCandidatePool(dictPath string) ([]sampling.Candidate, error) {
	slog.Info("Loading pronunciation dictionary", "path", dictPath)

	entries, err := cmudict.NewLoader(dictPath).Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load dictionary: %w", err)
	}

	pool := sampling.BuildPool(entries)
	if len(pool) == 0 {
		return nil, fmt.Errorf("no eligible candidates in %s", dictPath)
	}

	slog.Info("Candidate pool built", "entries", len(entries), "candidates", len(pool))

	return pool, nil
}
