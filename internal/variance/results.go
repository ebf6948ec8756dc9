package variance

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// PrintResults writes one line per seed: the summary statistics, or the
// error that took its place.
func PrintResults(w io.Writer, results []SeedResult) {
	for _, r := range results {
		if r.Err != nil {
			fmt.Fprintf(w, "Seed %5d: error: %v\n", r.Seed, r.Err)
			continue
		}
		s := r.Summary
		fmt.Fprintf(w, "Seed %5d: mean=%7.2f  median=%7.2f  min=%7.2f  max=%7.2f  n=%d\n",
			s.Seed, s.Mean, s.Median, s.Min, s.Max, s.Count)
	}
}

// RunConfig is the configuration section of a persisted variance run.
type RunConfig struct {
	DictPath   string `json:"dictpath" yaml:"dictpath"`
	CorpusPath string `json:"corpuspath" yaml:"corpuspath"`
	Metric     string `json:"metric" yaml:"metric"`
	SampleSize int    `json:"samplesize" yaml:"samplesize"`
	Timestamp  string `json:"timestamp" yaml:"timestamp"`
}

// SeedReport is one seed's persisted outcome.
type SeedReport struct {
	Seed    int64        `json:"seed" yaml:"seed"`
	Error   string       `json:"error,omitempty" yaml:"error,omitempty"`
	Summary *SeedSummary `json:"summary,omitempty" yaml:"summary,omitempty"`
}

// RunReport is the complete persisted form of a variance run.
type RunReport struct {
	Config RunConfig    `json:"config" yaml:"config"`
	Seeds  []SeedReport `json:"seeds" yaml:"seeds"`
}

// NewRunReport converts in-memory seed results into their persisted form.
func NewRunReport(cfg RunConfig, results []SeedResult) RunReport {
	report := RunReport{
		Config: cfg,
		Seeds:  make([]SeedReport, 0, len(results)),
	}

	for _, r := range results {
		entry := SeedReport{Seed: r.Seed, Summary: r.Summary}
		if r.Err != nil {
			entry.Error = r.Err.Error()
		}
		report.Seeds = append(report.Seeds, entry)
	}

	return report
}

// SaveToJSON saves the report to a JSON file
func (r RunReport) SaveToJSON(path string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")

	if err := encoder.Encode(r); err != nil {
		return fmt.Errorf("failed to encode results to JSON: %w", err)
	}

	return nil
}
