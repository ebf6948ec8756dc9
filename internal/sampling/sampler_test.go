package sampling

import (
	"errors"
	"fmt"
	"reflect"
	"testing"
)

func testPool(n int) []Candidate {
	pool := make([]Candidate, n)
	for i := range pool {
		pool[i] = Candidate{
			Word:      fmt.Sprintf("word%03d", i),
			Arpabet:   []string{"W", "ER", "D"},
			Syllables: 1,
		}
	}
	return pool
}

func TestSampleDeterministic(t *testing.T) {
	pool := testPool(100)

	first, err := Sample(pool, 42, 10)
	if err != nil {
		t.Fatalf("Sample failed: %v", err)
	}

	second, err := Sample(pool, 42, 10)
	if err != nil {
		t.Fatalf("Sample failed: %v", err)
	}

	if !reflect.DeepEqual(first, second) {
		t.Errorf("Same seed produced different samples:\n%v\n%v", first, second)
	}
}

func TestSampleScenarioSeedOne(t *testing.T) {
	pool := []Candidate{
		{Word: "aa", Arpabet: []string{"AA"}, Syllables: 1},
		{Word: "bb", Arpabet: []string{"B", "AA", "B"}, Syllables: 2},
		{Word: "cc", Arpabet: []string{"S", "IY", "S", "IY"}, Syllables: 3},
	}

	first, err := Sample(pool, 1, 2)
	if err != nil {
		t.Fatalf("Sample failed: %v", err)
	}

	if len(first) != 2 {
		t.Fatalf("Expected 2 candidates, got %d", len(first))
	}

	if first[0].Word == first[1].Word {
		t.Errorf("Sample contains duplicate candidate %q", first[0].Word)
	}

	second, err := Sample(pool, 1, 2)
	if err != nil {
		t.Fatalf("Sample failed: %v", err)
	}

	if !reflect.DeepEqual(first, second) {
		t.Errorf("Seed 1 did not reproduce the identical subset and order:\n%v\n%v", first, second)
	}
}

func TestSampleDifferentSeeds(t *testing.T) {
	pool := testPool(100)

	a, err := Sample(pool, 42, 10)
	if err != nil {
		t.Fatalf("Sample failed: %v", err)
	}

	b, err := Sample(pool, 1337, 10)
	if err != nil {
		t.Fatalf("Sample failed: %v", err)
	}

	if reflect.DeepEqual(a, b) {
		t.Errorf("Seeds 42 and 1337 produced the identical sample %v", a)
	}
}

func TestSampleWithoutReplacement(t *testing.T) {
	pool := testPool(50)

	sample, err := Sample(pool, 7, 50)
	if err != nil {
		t.Fatalf("Sample failed: %v", err)
	}

	seen := make(map[string]bool)
	for _, c := range sample {
		if seen[c.Word] {
			t.Errorf("Candidate %q sampled more than once", c.Word)
		}
		seen[c.Word] = true
	}
}

func TestSampleCapsAtPoolSize(t *testing.T) {
	pool := testPool(3)

	sample, err := Sample(pool, 42, 100)
	if err != nil {
		t.Fatalf("Sample failed: %v", err)
	}

	if len(sample) != 3 {
		t.Errorf("Expected sample capped at 3, got %d", len(sample))
	}
}

func TestSampleEmptyPool(t *testing.T) {
	_, err := Sample(nil, 42, 10)
	if !errors.Is(err, ErrInsufficientCandidates) {
		t.Errorf("Expected ErrInsufficientCandidates, got %v", err)
	}
}
