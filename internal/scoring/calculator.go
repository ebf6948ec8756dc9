// Package scoring invokes the external phonotactic calculator over its
// file-based protocol and parses its tabular output.
package scoring

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"strings"
	"time"
)

var (
	// ErrUnknownMetric indicates the requested metric column is absent
	// from the calculator's output header.
	ErrUnknownMetric = errors.New("unknown metric column")

	// ErrMalformedOutput indicates structurally invalid calculator output,
	// a non-numeric metric value, or a row count that does not match the
	// number of input transcriptions.
	ErrMalformedOutput = errors.New("malformed calculator output")

	// ErrScoringTimeout indicates the calculator did not finish within the
	// allotted time. Partial output is never trusted.
	ErrScoringTimeout = errors.New("calculator timed out")
)

// Calculator scores transcriptions by invoking the phonotactic calculator
// binary as `calc <corpus> <input> <output>`, where input holds one
// stress-stripped transcription per line and output is a CSV table.
type Calculator struct {
	Binary  string
	Corpus  string
	Timeout time.Duration

	// TempDir overrides the directory for transient input/output files.
	// Empty means the system default.
	TempDir string
}

// NewCalculator creates a calculator adapter for the given binary and
// reference corpus.
func NewCalculator(binary, corpus string, timeout time.Duration) *Calculator {
	return &Calculator{
		Binary:  binary,
		Corpus:  corpus,
		Timeout: timeout,
	}
}

// Score writes the transcriptions to a temporary input file, runs the
// calculator against the reference corpus, and parses one ScoreRow per
// input line with the named metric extracted. Temporary files are removed
// on every exit path.
func (c *Calculator) Score(ctx context.Context, transcriptions []string, metric string) ([]ScoreRow, error) {
	input, err := os.CreateTemp(c.TempDir, "phonovar-in-*.csv")
	if err != nil {
		return nil, fmt.Errorf("failed to create input file: %w", err)
	}
	defer os.Remove(input.Name())

	if _, err := input.WriteString(strings.Join(transcriptions, "\n") + "\n"); err != nil {
		input.Close()
		return nil, fmt.Errorf("failed to write input file: %w", err)
	}
	if err := input.Close(); err != nil {
		return nil, fmt.Errorf("failed to write input file: %w", err)
	}

	output, err := os.CreateTemp(c.TempDir, "phonovar-out-*.csv")
	if err != nil {
		return nil, fmt.Errorf("failed to create output file: %w", err)
	}
	output.Close()
	defer os.Remove(output.Name())

	ctx, cancel := context.WithTimeout(ctx, c.Timeout)
	defer cancel()

	slog.Debug("Invoking calculator",
		"binary", c.Binary,
		"corpus", c.Corpus,
		"transcriptions", len(transcriptions),
		"timeout", c.Timeout)

	cmd := exec.CommandContext(ctx, c.Binary, c.Corpus, input.Name(), output.Name())
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	start := time.Now()
	if err := cmd.Run(); err != nil {
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return nil, fmt.Errorf("%w after %s", ErrScoringTimeout, c.Timeout)
		}
		return nil, fmt.Errorf("calculator failed: %w: %s", err, strings.TrimSpace(stderr.String()))
	}

	slog.Debug("Calculator finished", "elapsed", time.Since(start))

	data, err := os.ReadFile(output.Name())
	if err != nil {
		return nil, fmt.Errorf("failed to read calculator output: %w", err)
	}

	rows, err := ParseOutput(data, metric)
	if err != nil {
		return nil, err
	}

	// Row-count contract: one row per input line, or the run is invalid.
	if len(rows) != len(transcriptions) {
		return nil, fmt.Errorf("%w: %d rows for %d transcriptions",
			ErrMalformedOutput, len(rows), len(transcriptions))
	}

	return rows, nil
}
