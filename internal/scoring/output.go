package scoring

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"
	"strings"
)

// ScoreRow is one row of the calculator's output table: every column keyed
// by its header name, plus the requested metric parsed as a float.
type ScoreRow struct {
	Fields map[string]string
	Value  float64
}

// ParseOutput parses the calculator's comma-separated output: a header row
// of metric-column names followed by one data row per scored transcription.
// The metric name is an opaque lookup key into the header; the calculator
// encodes its whole scoring configuration in it.
func ParseOutput(data []byte, metric string) ([]ScoreRow, error) {
	reader := csv.NewReader(bytes.NewReader(data))

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedOutput, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("%w: empty output", ErrMalformedOutput)
	}

	header := records[0]
	col := -1
	for i, name := range header {
		if name == metric {
			col = i
			break
		}
	}
	if col < 0 {
		return nil, fmt.Errorf("%w: %q", ErrUnknownMetric, metric)
	}

	rows := make([]ScoreRow, 0, len(records)-1)
	for i, record := range records[1:] {
		raw := strings.TrimSpace(record[col])
		if raw == "" {
			return nil, fmt.Errorf("%w: missing %q value on line %d", ErrMalformedOutput, metric, i+2)
		}

		value, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: non-numeric %q value %q on line %d", ErrMalformedOutput, metric, raw, i+2)
		}

		fields := make(map[string]string, len(header))
		for j, name := range header {
			fields[name] = record[j]
		}

		rows = append(rows, ScoreRow{Fields: fields, Value: value})
	}

	return rows, nil
}
