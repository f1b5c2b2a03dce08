// Package main provides the riskscope CLI entry point.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var version = "dev"

func main() {
	rootCmd := &cobra.Command{
		Use:   "riskscope",
		Short: "Credit risk scoring for customer batches",
		Long: `RiskScope scores customers from three normalized financial signals,
classifies them into risk tiers, and produces aggregate reports.`,
		Version: version,
	}

	rootCmd.AddCommand(
		newEvaluateCmd(),
		newReportCmd(),
		newValidateCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
