// Package sampling selects reproducible random samples of eligible
// dictionary entries for phonotactic scoring.
package sampling

import (
	"errors"
	"fmt"
	"unicode"

	"github.com/phonolab/phonovar/internal/cmudict"
	"github.com/phonolab/phonovar/internal/phonetics"
)

var (
	// ErrMalformedEntry indicates a dictionary entry violated the filter
	// invariants when converted to a candidate.
	ErrMalformedEntry = errors.New("malformed dictionary entry")

	// ErrInsufficientCandidates indicates an empty candidate pool.
	ErrInsufficientCandidates = errors.New("no eligible candidates")
)

// Words outside this syllable range are either degenerate (no vowel) or
// long enough to blow up calculator runtime; 1-4 covers common vocabulary.
const (
	minSyllables = 1
	maxSyllables = 4
)

// Candidate is a filtered, normalized dictionary entry eligible for
// sampling: the word, its sole pronunciation with stress stripped, and the
// syllable count derived before normalization.
type Candidate struct {
	Word      string
	Arpabet   []string
	Syllables int
}

// IsEligible reports whether an entry can be sampled: exactly one
// pronunciation variant, 1-4 syllables, and a purely alphabetic word.
// Multi-pronunciation words are skipped to avoid ambiguity over which
// phonetic form would be scored.
func IsEligible(entry cmudict.Entry) bool {
	if len(entry.Variants) != 1 {
		return false
	}
	syllables := phonetics.SyllableCount(entry.Variants[0])
	if syllables < minSyllables || syllables > maxSyllables {
		return false
	}
	return isAlphabetic(entry.Word)
}

// ToCandidate converts an eligible entry into a candidate. Callers are
// expected to pre-filter with IsEligible; an ineligible entry returns
// ErrMalformedEntry.
func ToCandidate(entry cmudict.Entry) (Candidate, error) {
	if !IsEligible(entry) {
		return Candidate{}, fmt.Errorf("%w: %q", ErrMalformedEntry, entry.Word)
	}

	variant := entry.Variants[0]
	return Candidate{
		Word:      entry.Word,
		Arpabet:   phonetics.StripStress(variant),
		Syllables: phonetics.SyllableCount(variant),
	}, nil
}

// BuildPool filters entries into the candidate pool. Entry order is
// preserved so a fixed dictionary always yields the same pool, which is
// what makes seeded samples reproducible across runs.
func BuildPool(entries []cmudict.Entry) []Candidate {
	var pool []Candidate
	for _, entry := range entries {
		if !IsEligible(entry) {
			continue
		}
		candidate, err := ToCandidate(entry)
		if err != nil {
			continue
		}
		pool = append(pool, candidate)
	}
	return pool
}

func isAlphabetic(word string) bool {
	if word == "" {
		return false
	}
	for _, r := range word {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}
