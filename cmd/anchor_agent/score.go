package main

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/jonathan/anchor-insight/internal/observability"
	"github.com/jonathan/anchor-insight/internal/questionbank"
	"github.com/jonathan/anchor-insight/internal/scoring"
)

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Score raw assessment answers",
	Long:  "Scores a JSON answers file against the embedded question bank and prints the scoring envelope (normalized anchor scores plus derived analytics) to stdout.",
	RunE:  runScore,
}

var (
	scoreAnswersPath string
	scoreIntakePath  string
	scoreVerbose     bool
)

func init() {
	scoreCmd.Flags().StringVar(&scoreAnswersPath, "answers", "", "Path to JSON answers file, e.g. {\"Q1\": 4, ...} (required)")
	scoreCmd.Flags().StringVar(&scoreIntakePath, "intake", "", "Path to JSON intake file (optional)")
	scoreCmd.Flags().BoolVarP(&scoreVerbose, "verbose", "v", false, "Print a human-readable score summary to stderr")

	if err := scoreCmd.MarkFlagRequired("answers"); err != nil {
		panic(fmt.Sprintf("failed to mark answers flag as required: %v", err))
	}

	rootCmd.AddCommand(scoreCmd)
}

func runScore(_ *cobra.Command, _ []string) error {
	answers, err := os.ReadFile(scoreAnswersPath)
	if err != nil {
		return fmt.Errorf("failed to read answers file: %w", err)
	}

	body := map[string]json.RawMessage{"answers": answers}
	if scoreIntakePath != "" {
		intake, err := os.ReadFile(scoreIntakePath)
		if err != nil {
			return fmt.Errorf("failed to read intake file: %w", err)
		}
		body["intake"] = intake
	}

	raw, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("failed to assemble score request: %w", err)
	}

	// Run the exact same request contract the HTTP API enforces.
	req, err := scoring.ParseScoreRequest(raw)
	if err != nil {
		return fmt.Errorf("invalid score request: %w", err)
	}

	bank, err := questionbank.Get()
	if err != nil {
		return fmt.Errorf("failed to load question bank: %w", err)
	}

	envelope, err := scoring.Score(bank, req, time.Now())
	if err != nil {
		return fmt.Errorf("scoring failed: %w", err)
	}

	if scoreVerbose {
		observability.NewPrinter(os.Stderr).PrintScores(envelope)
	}

	return printJSON(envelope)
}

func printJSON(v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode output: %w", err)
	}
	fmt.Println(string(out))
	return nil
}
