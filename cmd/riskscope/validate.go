package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/riskscope/riskscope/pkg/customer"
	"github.com/riskscope/riskscope/pkg/scoring"
)

func newValidateCmd() *cobra.Command {
	var input string

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Check a customer file without aborting on bad records",
		Long: `Evaluates every record independently and lists the invalid ones,
so a batch can be cleaned up before a strict evaluation run.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(input)
		},
	}

	cmd.Flags().StringVar(&input, "input", "", "Path to customers JSON file (required)")
	_ = cmd.MarkFlagRequired("input")

	return cmd
}

func runValidate(input string) error {
	profiles, err := customer.LoadProfiles(input)
	if err != nil {
		return err
	}

	engine := scoring.NewEngine(loadWeights(input))
	outcomes := engine.EvaluateEach(profiles)

	bad := 0
	for _, o := range outcomes {
		if o.Err != nil {
			bad++
			fmt.Fprintf(os.Stderr, "  customer %d: %v\n", o.CustomerID, o.Err)
		}
	}

	if bad > 0 {
		return fmt.Errorf("%d of %d records invalid", bad, len(outcomes))
	}

	fmt.Fprintf(os.Stderr, "All %d records valid\n", len(outcomes))
	return nil
}
