// Package phonetics provides helpers for working with ARPABET phonetic
// transcriptions from the CMU Pronouncing Dictionary.
package phonetics

import "strings"

// StripStress removes the trailing stress digit (0, 1, or 2) from each
// ARPABET symbol. Symbols without a stress digit pass through unchanged.
// The UCI phonotactic calculator's reference corpus is stress-neutral,
// so transcriptions must be normalized before scoring.
func StripStress(symbols []string) []string {
	stripped := make([]string, len(symbols))
	for i, s := range symbols {
		stripped[i] = strings.TrimRight(s, "012")
	}
	return stripped
}

// SyllableCount counts the vowel symbols in a transcription. ARPABET vowels
// carry a stress digit, so this must run before StripStress.
func SyllableCount(symbols []string) int {
	count := 0
	for _, s := range symbols {
		if len(s) > 0 && isDigit(s[len(s)-1]) {
			count++
		}
	}
	return count
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}
