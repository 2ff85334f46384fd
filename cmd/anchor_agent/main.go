// Package main provides the entry point for the anchor-insight scoring and
// report generation service.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "anchor_agent",
	Short: "Career anchor scoring and report generation",
	Long:  "anchor_agent scores career-anchor assessments into normalized anchor profiles and generates market-specific narrative reports through an LLM provider, via CLI or REST API.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
