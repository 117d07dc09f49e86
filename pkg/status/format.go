package status

import (
	"fmt"

	"github.com/fatih/color"
)

// Formatter defines how per-file reports are rendered for the console.
type Formatter interface {
	// FormatFileReport formats one file report as a single line
	FormatFileReport(report FileReport) string

	// FormatError formats a standalone error message
	FormatError(err error) string
}

// ColorFormatter renders reports with colored classification tags.
type ColorFormatter struct{}

// NewColorFormatter creates a new ColorFormatter
func NewColorFormatter() *ColorFormatter {
	return &ColorFormatter{}
}

// FormatFileReport formats a report as "[Modified] path/to/file".
func (f *ColorFormatter) FormatFileReport(report FileReport) string {
	var tagColor color.Attribute
	switch {
	case report.Outcome == OutcomeFailed:
		tagColor = color.FgRed
	case report.Classification == ClassAdded:
		tagColor = color.FgGreen
	case report.Classification == ClassRemoved:
		tagColor = color.FgYellow
	default:
		tagColor = color.FgBlue
	}

	tag := color.New(tagColor).Sprintf("[%s]", report.Classification)

	switch {
	case report.Outcome == OutcomeFailed:
		return fmt.Sprintf("%s %s: %v", tag, report.Path, report.Err)
	case report.Outcome == OutcomeRewritten:
		return fmt.Sprintf("%s %s (copyright updated, %d match(es))", tag, report.Path, report.Replacements)
	default:
		return fmt.Sprintf("%s %s", tag, report.Path)
	}
}

// FormatError formats an error message
func (f *ColorFormatter) FormatError(err error) string {
	if err == nil {
		return ""
	}
	return color.New(color.FgRed).Sprintf("error: %v", err)
}
