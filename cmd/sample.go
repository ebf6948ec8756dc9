package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/phonolab/phonovar/internal/sampling"
	"github.com/spf13/cobra"
)

const (
	defaultSeed = 42
	sampleSize  = 100
	defaultDict = "cmudict.dict"
	dictEnvVar  = "PHONOVAR_DICT"
)

// sampledWord is the JSON shape of one sampled word: the orthographic form
// and its stress-stripped ARPABET transcription.
type sampledWord struct {
	Word    string `json:"word"`
	Arpabet string `json:"arpabet"`
}

func newSampleCmd() *cobra.Command {
	var dictPath string
	var verbose bool

	cmd := &cobra.Command{
		Use:   "sample [seed]",
		Short: "Print a reproducible random sample of dictionary words as ARPABET",
		Long: `Sample 100 random words from the CMU Pronouncing Dictionary and print them
as a JSON array of {word, arpabet} objects.

Candidates are restricted to single-pronunciation words of 1-4 syllables
with purely alphabetic spellings. Stress markers are stripped since the
phonotactic calculator's reference corpus does not use them. The same seed
always reproduces the same sample.`,
		Example: `  # Sample with the default seed (42)
  phonovar sample

  # Sample with an explicit seed
  phonovar sample 1337`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			seed := int64(defaultSeed)
			if len(args) == 1 {
				parsed, err := strconv.ParseInt(args[0], 10, 64)
				if err != nil {
					return fmt.Errorf("invalid seed %q: %w", args[0], err)
				}
				seed = parsed
			}

			setupLogging(verbose)

			dictPath = resolveSetting(dictPath, dictEnvVar, defaultDict)
			pool, err := loadCandidatePool(dictPath)
			if err != nil {
				return err
			}

			sample, err := sampling.Sample(pool, seed, sampleSize)
			if err != nil {
				return err
			}

			words := make([]sampledWord, len(sample))
			for i, c := range sample {
				words[i] = sampledWord{
					Word:    c.Word,
					Arpabet: strings.Join(c.Arpabet, " "),
				}
			}

			encoder := json.NewEncoder(os.Stdout)
			encoder.SetIndent("", "  ")
			return encoder.Encode(words)
		},
	}

	cmd.Flags().StringVar(&dictPath, "dict", "", "Path to the pronunciation dictionary (defaults to $PHONOVAR_DICT)")
	cmd.Flags().BoolVar(&verbose, "verbose", false, "Verbose logging")

	return cmd
}
