package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/riskscope/riskscope/pkg/config"
	"github.com/riskscope/riskscope/pkg/customer"
	"github.com/riskscope/riskscope/pkg/report"
	"github.com/riskscope/riskscope/pkg/scoring"
	"github.com/riskscope/riskscope/pkg/surface"
)

func newEvaluateCmd() *cobra.Command {
	var (
		input     string
		outputFmt string
		highRisk  bool
		save      bool
	)

	cmd := &cobra.Command{
		Use:   "evaluate",
		Short: "Score a batch of customers and render the report",
		Long:  `Loads customer profiles from a JSON file, scores and classifies each, and renders an aggregate report.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEvaluate(evaluateOpts{
				input:     input,
				outputFmt: outputFmt,
				highRisk:  highRisk,
				save:      save,
			})
		},
	}

	cmd.Flags().StringVar(&input, "input", "", "Path to customers JSON file (required)")
	cmd.Flags().StringVar(&outputFmt, "output", "text", "Output format: text or json")
	cmd.Flags().BoolVar(&highRisk, "high-risk", false, "Limit the report to high-risk customers")
	cmd.Flags().BoolVar(&save, "save", false, "Persist the report snapshot to the local cache")
	_ = cmd.MarkFlagRequired("input")

	return cmd
}

type evaluateOpts struct {
	input     string
	outputFmt string
	highRisk  bool
	save      bool
}

func runEvaluate(opts evaluateOpts) error {
	profiles, err := customer.LoadProfiles(opts.input)
	if err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "Loaded %d customers from %s\n", len(profiles), opts.input)

	engine := scoring.NewEngine(loadWeights(opts.input))

	results, err := engine.EvaluateAll(profiles)
	if err != nil {
		return fmt.Errorf("evaluating batch: %w", err)
	}

	if opts.highRisk {
		results = scoring.FilterHighRisk(results)
	}

	rep := report.New(opts.input, results)

	if opts.save {
		path := filepath.Join(config.ReportDir(opts.input), rep.ID+".json")
		if err := report.Save(path, rep); err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "Report saved to %s\n", path)
	}

	return render(opts.outputFmt, rep)
}

func render(format string, rep *report.Report) error {
	var renderer surface.Renderer
	switch format {
	case "json":
		renderer = &surface.JSONRenderer{}
	default:
		renderer = &surface.TerminalRenderer{}
	}
	if err := renderer.Render(os.Stdout, rep); err != nil {
		return fmt.Errorf("rendering: %w", err)
	}
	return nil
}

// loadWeights resolves scoring weights from the nearest config file, falling
// back to the model defaults.
func loadWeights(inputPath string) scoring.Weights {
	dir := filepath.Dir(inputPath)
	if abs, err := filepath.Abs(dir); err == nil {
		dir = abs
	}

	cfgFile := config.FindConfigFile(dir)
	if cfgFile == "" {
		return scoring.Defaults()
	}

	cfg, err := config.Load(cfgFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to load config: %v\n", err)
		return scoring.Defaults()
	}
	return cfg.Weights()
}
