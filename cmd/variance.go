package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/phonolab/phonovar/internal/scoring"
	"github.com/phonolab/phonovar/internal/variance"
	"github.com/spf13/cobra"
)

// Reference configuration of the baseline variance measurement. The metric
// column name encodes the calculator's scoring configuration; it is only a
// lookup key here.
const (
	baselineMetric = "ngram_n2_pos_none_bound_both_smooth_laplace_weight_none_prob_conditional_agg_prod"
	scoringTimeout = 60 * time.Second

	defaultCorpus     = "english.csv"
	corpusEnvVar      = "PHONOVAR_CORPUS"
	defaultCalculator = "uci-phonotactic-calculator"
	calculatorEnvVar  = "PHONOVAR_CALCULATOR"
)

var baselineSeeds = []int64{42, 123, 456, 789, 1337}

func newVarianceCmd() *cobra.Command {
	var dictPath string
	var corpusPath string
	var calculatorPath string
	var outputJSON string
	var outputYAML string
	var verbose bool

	cmd := &cobra.Command{
		Use:   "variance",
		Short: "Measure phonotactic score variance across seeded dictionary samples",
		Long: `Run the baseline scoring pipeline once per seed (42, 123, 456, 789, 1337),
each time drawing a fresh 100-word sample from the same candidate pool,
scoring it with the UCI phonotactic calculator, and printing per-seed
summary statistics of the bigram conditional-probability metric.

A seed whose scoring fails is reported inline and does not stop the
remaining seeds.`,
		Example: `  # Measure variance with collaborators from flags
  phonovar variance --dict cmudict.dict --corpus english.csv --calculator uci-phonotactic-calculator

  # Persist the per-seed summaries alongside the stdout report
  phonovar variance --output-json run.json --output-yaml run.yaml`,
		RunE: func(cmd *cobra.Command, args []string) error {
			setupLogging(verbose)

			dictPath = resolveSetting(dictPath, dictEnvVar, defaultDict)
			corpusPath = resolveSetting(corpusPath, corpusEnvVar, defaultCorpus)
			calculatorPath = resolveSetting(calculatorPath, calculatorEnvVar, defaultCalculator)

			pool, err := loadCandidatePool(dictPath)
			if err != nil {
				return err
			}

			scorer := scoring.NewCalculator(calculatorPath, corpusPath, scoringTimeout)
			cfg := variance.Config{
				Seeds:      baselineSeeds,
				SampleSize: sampleSize,
				Metric:     baselineMetric,
			}

			results := variance.Run(cmd.Context(), pool, scorer, cfg)
			variance.PrintResults(os.Stdout, results)

			if outputJSON == "" && outputYAML == "" {
				return nil
			}

			report := variance.NewRunReport(variance.RunConfig{
				DictPath:   dictPath,
				CorpusPath: corpusPath,
				Metric:     baselineMetric,
				SampleSize: sampleSize,
				Timestamp:  time.Now().Format("2006-01-02_15-04-05"),
			}, results)

			if outputJSON != "" {
				if err := report.SaveToJSON(outputJSON); err != nil {
					fmt.Printf("Warning: Failed to save JSON results: %v\n", err)
				} else {
					fmt.Printf("Results saved to: %s\n", outputJSON)
				}
			}

			if outputYAML != "" {
				if err := report.SaveToYAML(outputYAML); err != nil {
					fmt.Printf("Warning: Failed to save YAML results: %v\n", err)
				} else {
					fmt.Printf("Results saved to: %s\n", outputYAML)
				}
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&dictPath, "dict", "", "Path to the pronunciation dictionary (defaults to $PHONOVAR_DICT)")
	cmd.Flags().StringVar(&corpusPath, "corpus", "", "Path to the calculator's reference corpus (defaults to $PHONOVAR_CORPUS)")
	cmd.Flags().StringVar(&calculatorPath, "calculator", "", "Path to the phonotactic calculator binary (defaults to $PHONOVAR_CALCULATOR)")
	cmd.Flags().StringVar(&outputJSON, "output-json", "", "Save per-seed summaries to a JSON file")
	cmd.Flags().StringVar(&outputYAML, "output-yaml", "", "Save per-seed summaries to a YAML file")
	cmd.Flags().BoolVar(&verbose, "verbose", false, "Verbose logging")

	return cmd
}
