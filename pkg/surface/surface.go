// Package surface defines output rendering interfaces for RiskScope reports.
// Implementations handle different output targets: terminal and JSON.
package surface

import (
	"io"

	"github.com/riskscope/riskscope/pkg/report"
)

// Renderer produces formatted output from a Report.
type Renderer interface {
	// Render writes the formatted report to the writer.
	Render(w io.Writer, rep *report.Report) error
}
