package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/anchor-insight/internal/observability"
	"github.com/jonathan/anchor-insight/internal/report"
	"github.com/jonathan/anchor-insight/internal/types"
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Generate a narrative report from a scoring envelope",
	Long:  "Feeds a scoring envelope (the output of the score command) into LLM report generation for the chosen market and prints the report envelope to stdout.",
	RunE:  runReport,
}

var (
	reportMarket    string
	reportInputPath string
	reportTone      string
	reportDepth     string
	reportLanguage  string
	reportVerbose   bool
)

func init() {
	reportCmd.Flags().StringVar(&reportMarket, "market", "", "Target market: B2C, B2B_EDU, or HR_CORP (required)")
	reportCmd.Flags().StringVar(&reportInputPath, "input", "", "Path to scoring envelope JSON file (required)")
	reportCmd.Flags().StringVar(&reportTone, "tone", "warm", "Report tone")
	reportCmd.Flags().StringVar(&reportDepth, "depth", "standard", "Report depth")
	reportCmd.Flags().StringVar(&reportLanguage, "language", "ko", "Report language")
	reportCmd.Flags().BoolVarP(&reportVerbose, "verbose", "v", false, "Print generation metadata to stderr")

	if err := reportCmd.MarkFlagRequired("market"); err != nil {
		panic(fmt.Sprintf("failed to mark market flag as required: %v", err))
	}
	if err := reportCmd.MarkFlagRequired("input"); err != nil {
		panic(fmt.Sprintf("failed to mark input flag as required: %v", err))
	}

	rootCmd.AddCommand(reportCmd)
}

func runReport(_ *cobra.Command, _ []string) error {
	market, err := types.ParseMarket(reportMarket)
	if err != nil {
		return err
	}

	raw, err := os.ReadFile(reportInputPath)
	if err != nil {
		return fmt.Errorf("failed to read input file: %w", err)
	}

	var envelope struct {
		Input   json.RawMessage `json:"input"`
		Derived json.RawMessage `json:"derived"`
	}
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return fmt.Errorf("input file is not a scoring envelope: %w", err)
	}
	if envelope.Input == nil || envelope.Derived == nil {
		return fmt.Errorf("input file is not a scoring envelope: input and derived are required")
	}

	request, err := json.Marshal(map[string]any{
		"market":  market,
		"input":   json.RawMessage(envelope.Input),
		"derived": json.RawMessage(envelope.Derived),
		"report_options": map[string]any{
			"tone":        reportTone,
			"depth":       reportDepth,
			"language":    reportLanguage,
			"strict_json": true,
		},
	})
	if err != nil {
		return fmt.Errorf("failed to assemble generation request: %w", err)
	}

	result, err := report.New(nil).Generate(context.Background(), request)
	if err != nil {
		return fmt.Errorf("report generation failed: %w", err)
	}

	if reportVerbose {
		observability.NewPrinter(os.Stderr).PrintReportMeta(result)
	}

	return printJSON(result)
}
