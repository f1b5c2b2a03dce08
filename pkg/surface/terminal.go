package surface

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/riskscope/riskscope/pkg/report"
	"github.com/riskscope/riskscope/pkg/scoring"
)

// TerminalRenderer renders a Report as colored terminal output.
type TerminalRenderer struct{}

// ANSI color codes
const (
	colorReset = "\033[0m"
	colorRed   = "\033[31m"
	colorGreen = "\033[32m"
	colorBold  = "\033[1m"
	colorDim   = "\033[2m"
)

func tierColor(t scoring.RiskTier) string {
	if noColor() {
		return ""
	}
	if t == scoring.HighRisk {
		return colorRed
	}
	return colorGreen
}

func noColor() bool {
	_, ok := os.LookupEnv("NO_COLOR")
	return ok
}

func bold(s string) string {
	if noColor() {
		return s
	}
	return colorBold + s + colorReset
}

func dim(s string) string {
	if noColor() {
		return s
	}
	return colorDim + s + colorReset
}

func colored(s, color string) string {
	if noColor() || color == "" {
		return s
	}
	return color + s + colorReset
}

func (r *TerminalRenderer) Render(w io.Writer, rep *report.Report) error {
	// Header
	fmt.Fprintf(w, "%s\n", bold(fmt.Sprintf("RiskScope: %d customers — average score %.2f",
		rep.Summary.Total, rep.Summary.AverageScore)))
	if !rep.GeneratedAt.IsZero() {
		fmt.Fprintf(w, "%s\n", dim("Generated "+rep.GeneratedAt.Format(time.RFC3339)))
	}
	fmt.Fprintln(w)

	// Tier counts
	fmt.Fprintf(w, "  %s %d  %s %d\n\n",
		colored("High Risk:", tierColor(scoring.HighRisk)), rep.Summary.HighRisk,
		colored("Low Risk:", tierColor(scoring.LowRisk)), rep.Summary.LowRisk)

	if len(rep.Results) == 0 {
		fmt.Fprintln(w, "No customers.")
		return nil
	}

	// Per-customer lines, already ordered by the evaluator
	fmt.Fprintln(w, "Results:")
	for _, res := range rep.Results {
		fmt.Fprintf(w, "  %3d  %s  %s\n",
			res.CreditScore,
			colored(res.RiskTier.String(), tierColor(res.RiskTier)),
			bold(fmt.Sprintf("%s (#%d)", res.Name, res.CustomerID)))
	}
	fmt.Fprintln(w)

	return nil
}
