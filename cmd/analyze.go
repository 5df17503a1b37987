package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/toyinlola/clausecheck/pkg/category"
	"github.com/toyinlola/clausecheck/pkg/cli"
	"github.com/toyinlola/clausecheck/pkg/interfaces"
	"github.com/toyinlola/clausecheck/pkg/report"
	"github.com/toyinlola/clausecheck/pkg/scorer"
)

var (
	inputFile string
	noEnhance bool
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Score classified clauses and generate a contract risk report",
	Long: `Analyze reads classifier output (one JSON array of clause predictions),
scores every clause, and produces a contract risk report.

Expected input format:
  [{"clause": "...", "label": "Uncapped Liability", "confidence": 0.91}, ...]

Labels may be fine-grained taxonomy labels or high-level risk categories;
both are resolved through the category mapper before scoring.`,
	RunE: runAnalyze,
}

func init() {
	analyzeCmd.Flags().StringVarP(&inputFile, "input", "i", "", "path to classifier output JSON (use - for stdin)")
	analyzeCmd.Flags().BoolVar(&noEnhance, "no-enhance", false, "skip text-based label enhancement")
	_ = analyzeCmd.MarkFlagRequired("input")
	rootCmd.AddCommand(analyzeCmd)
}

// formatter writes a structured report to a writer.
type formatter interface {
	Format(w io.Writer, report *interfaces.Report) error
}

// clausePrediction is one entry of the external classifier's output.
// Missing fields coerce to safe defaults: empty label maps to Neutral,
// missing confidence is 0.0.
type clausePrediction struct {
	Clause     string  `json:"clause"`
	Label      string  `json:"label"`
	Confidence float64 `json:"confidence"`
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	// 1. Load configuration.
	cfg, err := cli.LoadConfig(cfgFile)
	if err != nil {
		return fmt.Errorf("analyze: %w", err)
	}

	slog.Debug("config loaded",
		"thresholds.red", cfg.Thresholds.Red,
		"thresholds.yellow", cfg.Thresholds.Yellow,
		"calibration", cfg.Calibration.IsEnabled(),
	)

	// 2. Read classifier output.
	predictions, err := readPredictions(inputFile)
	if err != nil {
		return fmt.Errorf("analyze: %w", err)
	}

	slog.Info("predictions loaded", "clauses", len(predictions))

	// 3. Resolve labels through the category mapper.
	clauses := resolveClauses(predictions)

	// 4. Score all clauses.
	engine := scorer.NewEngine(
		scorer.WithCalibration(cfg.Calibration.IsEnabled()),
	)
	assessments, err := engine.Analyze(ctx, clauses)
	if err != nil {
		return fmt.Errorf("analyze: scoring clauses: %w", err)
	}

	breakdown := scorer.Aggregate(assessments)

	// 5. Generate report.
	gen := report.NewGenerator(
		report.WithRatingThresholds(cfg.Thresholds.Red, cfg.Thresholds.Yellow),
	)
	rpt := gen.Generate(assessments, breakdown)

	// 6. Select formatter and write output.
	f := selectFormatter(format)

	var w io.Writer = os.Stdout
	if output != "" {
		file, fileErr := os.Create(output)
		if fileErr != nil {
			return fmt.Errorf("analyze: creating output file: %w", fileErr)
		}
		defer file.Close() // best-effort cleanup
		w = file
	}

	if err := f.Format(w, rpt); err != nil {
		return fmt.Errorf("analyze: writing report: %w", err)
	}

	// 7. Exit with code 1 for RED rating.
	if rpt.Rating == interfaces.RatingRed {
		os.Exit(1)
	}

	return nil
}

// readPredictions loads the classifier output JSON from a file or stdin.
func readPredictions(path string) ([]clausePrediction, error) {
	var data []byte
	var err error

	if path == "-" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("reading predictions: %w", err)
	}

	var predictions []clausePrediction
	if err := json.Unmarshal(data, &predictions); err != nil {
		return nil, fmt.Errorf("parsing predictions: %w", err)
	}
	return predictions, nil
}

// resolveClauses maps raw classifier labels to risk categories, applying
// text-based label enhancement unless disabled.
func resolveClauses(predictions []clausePrediction) []interfaces.ClauseInput {
	clauses := make([]interfaces.ClauseInput, len(predictions))
	for i, p := range predictions {
		label := category.Map(p.Label)
		confidence := p.Confidence

		if !noEnhance {
			var reason string
			label, confidence, reason = category.Enhance(p.Label, p.Clause, p.Confidence)
			if label != category.Map(p.Label) || confidence != p.Confidence {
				slog.Debug("label enhanced",
					"clause", i,
					"original", p.Label,
					"label", label,
					"confidence", confidence,
					"reason", reason,
				)
			}
		}

		clauses[i] = interfaces.ClauseInput{
			Text:       p.Clause,
			Label:      label,
			Confidence: confidence,
		}
	}
	return clauses
}

// selectFormatter returns the appropriate report formatter for the given
// format name.
func selectFormatter(name string) formatter {
	switch name {
	case "json":
		return report.NewJSONFormatter()
	case "markdown":
		return report.NewMarkdownFormatter()
	default:
		return report.NewTerminalFormatter()
	}
}
