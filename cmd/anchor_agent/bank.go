package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/anchor-insight/internal/questionbank"
)

var bankCmd = &cobra.Command{
	Use:   "bank",
	Short: "Print the embedded question bank",
	RunE:  runBank,
}

func init() {
	rootCmd.AddCommand(bankCmd)
}

func runBank(_ *cobra.Command, _ []string) error {
	bank, err := questionbank.Get()
	if err != nil {
		return fmt.Errorf("failed to load question bank: %w", err)
	}
	return printJSON(bank)
}
