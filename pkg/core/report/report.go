// Package report renders the strategy-comparison report: markdown for the
// terminal, HTML for sharing.
package report

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"

	"deal_analyzer/pkg/core/format"
	"deal_analyzer/pkg/core/metrics"
)

// md renders GFM; the comparison report is table-heavy and pipe tables are
// not part of CommonMark.
var md = goldmark.New(
	goldmark.WithExtensions(extension.GFM),
	goldmark.WithRendererOptions(html.WithUnsafe()),
)

// Comparison builds the markdown comparison report for one property.
func Comparison(address string, ms []metrics.StrategyMetric, best metrics.StrategyMetric) string {
	var b strings.Builder

	b.WriteString("# Deal Analysis")
	if address != "" {
		b.WriteString(": " + address)
	}
	b.WriteString("\n\n")

	if best.Strategy != "" {
		fmt.Fprintf(&b, "**Best strategy: %s** (%s %s, rated %s)\n\n",
			strings.ToUpper(string(best.Strategy)), best.PrimaryLabel, best.Primary, best.Rating)
	}

	b.WriteString("| Strategy | Key Metric | Value | Secondary | Rating | Score |\n")
	b.WriteString("|---|---|---|---|---|---|\n")
	for _, m := range ms {
		fmt.Fprintf(&b, "| %s | %s | %s | %s: %s | %s | %s |\n",
			strings.ToUpper(string(m.Strategy)),
			m.PrimaryLabel, m.Primary,
			m.SecondaryLabel, m.Secondary,
			m.Rating, format.Percent(m.Score/100, 0))
	}

	return b.String()
}

// RenderHTML converts a markdown report to a standalone HTML fragment.
func RenderHTML(markdown string) (string, error) {
	var buf bytes.Buffer
	if err := md.Convert([]byte(markdown), &buf); err != nil {
		return "", fmt.Errorf("render report: %w", err)
	}
	return buf.String(), nil
}
