package seo

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

var (
	okColor   = color.New(color.FgGreen)
	warnColor = color.New(color.FgYellow)
	errColor  = color.New(color.FgRed, color.Bold)
	dimColor  = color.New(color.FgHiBlack)
)

// PrintReport writes the human-readable validation summary to w.
func PrintReport(w io.Writer, report *Report) {
	fmt.Fprintln(w, "Starting SEO length validation...")
	fmt.Fprintln(w)

	for _, warning := range report.Warnings {
		warnColor.Fprintf(w, "WARN  [%s] %s in %s\n", warning.Locale, warning.Message, warning.File)
	}

	for _, res := range report.Results {
		label := fieldLabel(res.Field)
		switch {
		case res.OK:
			okColor.Fprintf(w, "OK    [%s] %s length OK: %d chars\n", res.Locale, label, res.Length)
		case res.Field == FieldFile:
			errColor.Fprintf(w, "FAIL  [%s] %s\n", res.Locale, res.Reason)
		case res.Value == "":
			errColor.Fprintf(w, "FAIL  [%s] Missing 'seo.%s'\n", res.Locale, res.Field)
		default:
			errColor.Fprintf(w, "FAIL  [%s] %s length invalid: %d chars (expected %s)\n", res.Locale, label, res.Length, res.Range)
			dimColor.Fprintf(w, "      Content: %q\n", res.Value)
		}
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, strings.Repeat("-", 40))

	if report.Files == 0 {
		warnColor.Fprintln(w, "No locale files found.")
	}
	if report.Passed() {
		okColor.Fprintln(w, "SEO validation passed!")
		return
	}
	errColor.Fprintf(w, "SEO validation failed with %d problem(s). Please fix the errors above.\n", len(report.Failures()))
}

func fieldLabel(field string) string {
	switch field {
	case FieldTitle:
		return "Title"
	case FieldDescription:
		return "Description"
	default:
		return field
	}
}
