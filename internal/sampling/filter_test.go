package sampling

import (
	"errors"
	"reflect"
	"testing"

	"github.com/phonolab/phonovar/internal/cmudict"
)

func TestIsEligible(t *testing.T) {
	tests := []struct {
		name     string
		entry    cmudict.Entry
		expected bool
	}{
		{
			name: "single variant, two syllables, alphabetic",
			entry: cmudict.Entry{
				Word:     "hello",
				Variants: [][]string{{"HH", "AH0", "L", "OW1"}},
			},
			expected: true,
		},
		{
			name: "multiple pronunciations are skipped",
			entry: cmudict.Entry{
				Word:     "read",
				Variants: [][]string{{"R", "EH1", "D"}, {"R", "IY1", "D"}},
			},
			expected: false,
		},
		{
			name: "zero syllables are skipped",
			entry: cmudict.Entry{
				Word:     "shh",
				Variants: [][]string{{"SH"}},
			},
			expected: false,
		},
		{
			name: "five syllables are skipped",
			entry: cmudict.Entry{
				Word:     "unimaginable",
				Variants: [][]string{{"AH2", "N", "IH0", "M", "AE1", "JH", "AH0", "N", "AH0", "B"}},
			},
			expected: false,
		},
		{
			name: "four syllables pass",
			entry: cmudict.Entry{
				Word:     "alligator",
				Variants: [][]string{{"AE1", "L", "AH0", "G", "EY2", "T", "ER0"}},
			},
			expected: true,
		},
		{
			name: "non-alphabetic word is skipped",
			entry: cmudict.Entry{
				Word:     "o'clock",
				Variants: [][]string{{"AH0", "K", "L", "AA1", "K"}},
			},
			expected: false,
		},
		{
			name: "no variants",
			entry: cmudict.Entry{
				Word: "ghost",
			},
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := IsEligible(tt.entry)
			if result != tt.expected {
				t.Errorf("IsEligible(%q) = %v, want %v", tt.entry.Word, result, tt.expected)
			}
		})
	}
}

func TestToCandidate(t *testing.T) {
	entry := cmudict.Entry{
		Word:     "hello",
		Variants: [][]string{{"HH", "AH0", "L", "OW1"}},
	}

	candidate, err := ToCandidate(entry)
	if err != nil {
		t.Fatalf("ToCandidate failed: %v", err)
	}

	if candidate.Word != "hello" {
		t.Errorf("Expected word hello, got %s", candidate.Word)
	}

	expected := []string{"HH", "AH", "L", "OW"}
	if !reflect.DeepEqual(candidate.Arpabet, expected) {
		t.Errorf("Expected stress-stripped arpabet %v, got %v", expected, candidate.Arpabet)
	}

	if candidate.Syllables != 2 {
		t.Errorf("Expected 2 syllables, got %d", candidate.Syllables)
	}
}

func TestToCandidateMalformed(t *testing.T) {
	entry := cmudict.Entry{
		Word:     "read",
		Variants: [][]string{{"R", "EH1", "D"}, {"R", "IY1", "D"}},
	}

	_, err := ToCandidate(entry)
	if !errors.Is(err, ErrMalformedEntry) {
		t.Errorf("Expected ErrMalformedEntry, got %v", err)
	}
}

func TestBuildPool(t *testing.T) {
	entries := []cmudict.Entry{
		{Word: "hello", Variants: [][]string{{"HH", "AH0", "L", "OW1"}}},
		{Word: "read", Variants: [][]string{{"R", "EH1", "D"}, {"R", "IY1", "D"}}},
		{Word: "o'clock", Variants: [][]string{{"AH0", "K", "L", "AA1", "K"}}},
		{Word: "cat", Variants: [][]string{{"K", "AE1", "T"}}},
	}

	pool := BuildPool(entries)

	if len(pool) != 2 {
		t.Fatalf("Expected 2 candidates, got %d", len(pool))
	}

	// Entry order is preserved
	if pool[0].Word != "hello" || pool[1].Word != "cat" {
		t.Errorf("Expected pool order [hello cat], got [%s %s]", pool[0].Word, pool[1].Word)
	}

	// Every candidate honors the filter invariants
	for _, c := range pool {
		if c.Syllables < 1 || c.Syllables > 4 {
			t.Errorf("Candidate %q has syllable count %d outside [1,4]", c.Word, c.Syllables)
		}
		if !isAlphabetic(c.Word) {
			t.Errorf("Candidate %q is not purely alphabetic", c.Word)
		}
	}
}
