package ui

import (
	"fmt"
	"strings"

	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"

	"randlab/domain/randstat"
)

// summaryMarkdown builds a markdown digest of a finished report.
func summaryMarkdown(report *randstat.Report) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Analysis Report %s\n\n", report.ID)
	fmt.Fprintf(&b, "- Generator: `%s`\n", report.GeneratorID)
	fmt.Fprintf(&b, "- Domain size (N): %d\n", report.Config.DomainSize)
	fmt.Fprintf(&b, "- Sample size: %d\n", report.Config.SampleSize)
	fmt.Fprintf(&b, "- Seed: %d\n", report.Config.Seed)
	fmt.Fprintf(&b, "- Completed: %s\n\n", report.CompletedAt)

	for _, result := range report.Results {
		fmt.Fprintf(&b, "## %s\n\n", result.CheckName)
		if result.Description != "" {
			fmt.Fprintf(&b, "%s\n\n", result.Description)
		}
		for _, line := range result.Text {
			fmt.Fprintf(&b, "- %s\n", line)
		}
		b.WriteString("\n")
	}
	return b.String()
}

// renderSummaryHTML converts the markdown digest into an HTML page body.
func renderSummaryHTML(report *randstat.Report) []byte {
	p := parser.NewWithExtensions(parser.CommonExtensions)
	renderer := html.NewRenderer(html.RendererOptions{Flags: html.CommonFlags})
	return markdown.ToHTML([]byte(summaryMarkdown(report)), p, renderer)
}
