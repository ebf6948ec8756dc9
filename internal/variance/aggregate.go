// Package variance measures how a phonotactic metric varies across repeated
// seeded samples of the candidate pool.
package variance

import (
	"context"
	"log/slog"
	"sort"
	"strings"

	"github.com/phonolab/phonovar/internal/sampling"
	"github.com/phonolab/phonovar/internal/scoring"
)

// Scorer scores a batch of transcriptions and returns one row per input
// line. Satisfied by scoring.Calculator; narrow on purpose so the process
// boundary can be swapped for an in-process or network call.
type Scorer interface {
	Score(ctx context.Context, transcriptions []string, metric string) ([]scoring.ScoreRow, error)
}

// Config carries the fixed inputs of a variance run.
type Config struct {
	Seeds      []int64
	SampleSize int
	Metric     string
}

// SeedSummary aggregates one seed's metric values. Never mutated after
// computation.
type SeedSummary struct {
	Seed   int64   `json:"seed" yaml:"seed"`
	Mean   float64 `json:"mean" yaml:"mean"`
	Median float64 `json:"median" yaml:"median"`
	Min    float64 `json:"min" yaml:"min"`
	Max    float64 `json:"max" yaml:"max"`
	Count  int     `json:"count" yaml:"count"`
}

// SeedResult is one seed's outcome: either a summary or the error that
// replaced it.
type SeedResult struct {
	Seed    int64
	Summary *SeedSummary
	Err     error
}

// Run executes the sampling-and-scoring pipeline once per seed, in order
// and strictly sequentially. The candidate pool is computed once by the
// caller and shared read-only so every seed draws from the same basis.
// A failing seed is reported in its SeedResult and does not stop later
// seeds; that keeps one calculator hiccup from wasting the whole run.
func Run(ctx context.Context, pool []sampling.Candidate, scorer Scorer, cfg Config) []SeedResult {
	results := make([]SeedResult, 0, len(cfg.Seeds))
	for _, seed := range cfg.Seeds {
		summary, err := runSeed(ctx, pool, scorer, seed, cfg)
		if err != nil {
			slog.Warn("Seed failed", "seed", seed, "err", err)
		}
		results = append(results, SeedResult{Seed: seed, Summary: summary, Err: err})
	}
	return results
}

func runSeed(ctx context.Context, pool []sampling.Candidate, scorer Scorer, seed int64, cfg Config) (*SeedSummary, error) {
	sample, err := sampling.Sample(pool, seed, cfg.SampleSize)
	if err != nil {
		return nil, err
	}

	transcriptions := make([]string, len(sample))
	for i, c := range sample {
		transcriptions[i] = strings.Join(c.Arpabet, " ")
	}

	slog.Info("Scoring sample", "seed", seed, "words", len(transcriptions))

	rows, err := scorer.Score(ctx, transcriptions, cfg.Metric)
	if err != nil {
		return nil, err
	}

	values := make([]float64, len(rows))
	for i, row := range rows {
		values[i] = row.Value
	}

	return Summarize(seed, values), nil
}

// Summarize reduces metric values to order statistics. The median is the
// upper median: sort ascending and take index n/2, even counts do not
// average the middle pair. That matches the reference baseline output and
// must not be "fixed".
func Summarize(seed int64, values []float64) *SeedSummary {
	if len(values) == 0 {
		return &SeedSummary{Seed: seed}
	}

	sorted := append([]float64(nil), values...)
	sort.Float64s(sorted)

	sum := 0.0
	for _, v := range sorted {
		sum += v
	}

	return &SeedSummary{
		Seed:   seed,
		Mean:   sum / float64(len(sorted)),
		Median: sorted[len(sorted)/2],
		Min:    sorted[0],
		Max:    sorted[len(sorted)-1],
		Count:  len(sorted),
	}
}
