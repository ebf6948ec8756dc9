// Package cmudict loads pronunciation dictionaries in the CMU Pronouncing
// Dictionary format and a couple of derived interchange formats.
package cmudict

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/parquet-go/parquet-go"
)

// Loader handles loading of a pronunciation dictionary
type Loader struct {
	dictPath string
}

// NewLoader creates a new dictionary loader
func NewLoader(dictPath string) *Loader {
	return &Loader{
		dictPath: dictPath,
	}
}

// Load loads dictionary entries from a file (.dict, JSONL or Parquet).
// Entries are returned in file order with variants of the same word grouped
// under one entry; a stable order is what keeps seeded samples reproducible
// across runs.
func (l *Loader) Load() ([]Entry, error) {
	ext := strings.ToLower(filepath.Ext(l.dictPath))

	switch ext {
	case ".dict", ".txt":
		return l.loadDict()
	case ".jsonl", ".json":
		return l.loadJSONL()
	case ".parquet":
		return l.loadParquet()
	default:
		return nil, fmt.Errorf("unsupported dictionary format: %s (supported: .dict, .jsonl, .parquet)", ext)
	}
}

// loadDict loads the cmudict plain-text format: one variant per line,
// "word S Y M1 B OL0 S", alternate pronunciations as "word(2) ...",
// comment lines starting with ";;;".
func (l *Loader) loadDict() ([]Entry, error) {
	slog.Debug("Opening dictionary file", "path", l.dictPath)

	file, err := os.Open(l.dictPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open dictionary file: %w", err)
	}
	defer file.Close()

	var entries []Entry
	index := make(map[string]int)

	scanner := bufio.NewScanner(file)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())

		if line == "" || strings.HasPrefix(line, ";;;") {
			continue
		}

		fields := strings.Fields(line)
		if len(fields) < 2 {
			return nil, fmt.Errorf("malformed dictionary line %d: %q", lineNum, line)
		}

		word := fields[0]
		// Alternate pronunciations are written as word(2), word(3), ...
		if i := strings.IndexByte(word, '('); i >= 0 {
			word = word[:i]
		}
		word = strings.ToLower(word)

		appendVariant(&entries, index, word, fields[1:])

		if lineNum%50000 == 0 {
			slog.Debug("Reading dictionary", "lines_read", lineNum)
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading dictionary: %w", err)
	}

	slog.Debug("Finished reading dictionary", "total_entries", len(entries), "total_lines", lineNum)

	return entries, nil
}

// loadJSONL loads entries from a JSONL file, one variant per line:
// {"word": "hello", "phones": ["HH", "AH0", "L", "OW1"]}
func (l *Loader) loadJSONL() ([]Entry, error) {
	slog.Debug("Opening JSONL dictionary", "path", l.dictPath)

	file, err := os.Open(l.dictPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open dictionary file: %w", err)
	}
	defer file.Close()

	var entries []Entry
	index := make(map[string]int)

	scanner := bufio.NewScanner(file)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := scanner.Bytes()

		if len(line) == 0 {
			continue
		}

		var record struct {
			Word   string   `json:"word"`
			Phones []string `json:"phones"`
		}
		if err := json.Unmarshal(line, &record); err != nil {
			return nil, fmt.Errorf("failed to parse JSON at line %d: %w", lineNum, err)
		}
		if record.Word == "" || len(record.Phones) == 0 {
			return nil, fmt.Errorf("incomplete dictionary record at line %d", lineNum)
		}

		appendVariant(&entries, index, strings.ToLower(record.Word), record.Phones)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading dictionary: %w", err)
	}

	slog.Debug("Finished reading JSONL dictionary", "total_entries", len(entries), "total_lines", lineNum)

	return entries, nil
}

// parquetRecord is one dictionary row in parquet form. Phones are stored as
// a single space-separated symbol string.
type parquetRecord struct {
	Word   string `parquet:"word"`
	Phones string `parquet:"phones"`
}

// loadParquet loads entries from a Parquet file, one variant per row
func (l *Loader) loadParquet() ([]Entry, error) {
	slog.Debug("Opening Parquet dictionary", "path", l.dictPath)

	file, err := os.Open(l.dictPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open parquet file: %w", err)
	}
	defer file.Close()

	info, err := file.Stat()
	if err != nil {
		return nil, fmt.Errorf("failed to stat file: %w", err)
	}

	pf, err := parquet.OpenFile(file, info.Size())
	if err != nil {
		return nil, fmt.Errorf("failed to open parquet: %w", err)
	}

	slog.Debug("Parquet file opened", "num_rows", pf.NumRows(), "num_row_groups", len(pf.RowGroups()))

	reader := parquet.NewGenericReader[parquetRecord](pf)
	defer reader.Close()

	var entries []Entry
	index := make(map[string]int)
	rows := make([]parquetRecord, 128) // Read in batches

	totalRead := 0
	for {
		n, err := reader.Read(rows)
		for _, row := range rows[:n] {
			phones := strings.Fields(row.Phones)
			if row.Word == "" || len(phones) == 0 {
				return nil, fmt.Errorf("incomplete dictionary record at row %d", totalRead)
			}
			appendVariant(&entries, index, strings.ToLower(row.Word), phones)
			totalRead++
		}
		if err != nil {
			// A truncated pool would silently change every seeded sample,
			// so anything other than EOF is fatal.
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, fmt.Errorf("error reading parquet dictionary: %w", err)
		}
	}

	slog.Debug("Finished reading Parquet dictionary", "total_entries", len(entries), "total_rows", totalRead)

	return entries, nil
}

// appendVariant attaches one pronunciation variant to the word's entry,
// creating the entry at the next position on first sight of the word.
func appendVariant(entries *[]Entry, index map[string]int, word string, phones []string) {
	variant := append([]string(nil), phones...)
	if i, ok := index[word]; ok {
		(*entries)[i].Variants = append((*entries)[i].Variants, variant)
		return
	}
	index[word] = len(*entries)
	*entries = append(*entries, Entry{Word: word, Variants: [][]string{variant}})
}
