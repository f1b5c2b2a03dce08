package main

import (
	"github.com/spf13/cobra"

	"github.com/riskscope/riskscope/pkg/report"
	"github.com/riskscope/riskscope/pkg/scoring"
)

func newReportCmd() *cobra.Command {
	var (
		input     string
		outputFmt string
		highRisk  bool
	)

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Re-render a saved report snapshot",
		RunE: func(cmd *cobra.Command, args []string) error {
			rep, err := report.Load(input)
			if err != nil {
				return err
			}
			if highRisk {
				rep.Results = scoring.FilterHighRisk(rep.Results)
				rep.Summary = report.Summarize(rep.Results)
			}
			return render(outputFmt, rep)
		},
	}

	cmd.Flags().StringVar(&input, "input", "", "Path to report JSON file (required)")
	cmd.Flags().StringVar(&outputFmt, "output", "text", "Output format: text or json")
	cmd.Flags().BoolVar(&highRisk, "high-risk", false, "Limit the report to high-risk customers")
	_ = cmd.MarkFlagRequired("input")

	return cmd
}
