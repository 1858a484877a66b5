// Package seo checks per-locale SEO metadata against search-result length limits.
package seo

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"seo-go/pkg/logger"
)

const (
	FieldTitle       = "title"
	FieldDescription = "description"
	FieldFile        = "file"
)

// Range is an inclusive length range.
type Range struct {
	Min int `mapstructure:"min"`
	Max int `mapstructure:"max"`
}

func (r Range) Contains(n int) bool {
	return n >= r.Min && n <= r.Max
}

func (r Range) String() string {
	return fmt.Sprintf("%d-%d", r.Min, r.Max)
}

// Rules configures the validator.
type Rules struct {
	Title       Range
	Description Range
	Extension   string
}

func DefaultRules() Rules {
	return Rules{
		Title:       Range{Min: 50, Max: 60},
		Description: Range{Min: 140, Max: 150},
		Extension:   ".json",
	}
}

// FieldResult is the outcome of one check for one locale.
type FieldResult struct {
	Locale string
	Field  string
	OK     bool
	Length int
	Reason string // empty when OK
	Value  string
	Range  Range
}

// Warning is reported to the operator but never fails validation.
type Warning struct {
	Locale  string
	File    string
	Message string
}

type Report struct {
	Files    int
	Results  []FieldResult
	Warnings []Warning
}

// Passed reports whether no check failed.
func (r *Report) Passed() bool {
	for _, res := range r.Results {
		if !res.OK {
			return false
		}
	}
	return true
}

func (r *Report) Failures() []FieldResult {
	var out []FieldResult
	for _, res := range r.Results {
		if !res.OK {
			out = append(out, res)
		}
	}
	return out
}

type Validator struct {
	rules Rules
	log   *logger.Logger
}

func NewValidator(rules Rules) *Validator {
	if rules.Extension == "" {
		rules.Extension = DefaultRules().Extension
	}
	if !strings.HasPrefix(rules.Extension, ".") {
		rules.Extension = "." + rules.Extension
	}
	return &Validator{
		rules: rules,
		log:   logger.GetLogger().WithField("component", "seo_validator"),
	}
}

// Validate scans every locale file in dir. Only an unreadable directory is
// returned as an error; per-file problems are recorded in the report.
func (v *Validator) Validate(dir string) (*Report, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read locale content directory %s: %w", dir, err)
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), v.rules.Extension) {
			continue
		}
		names = append(names, e.Name())
	}
	sort.Strings(names)

	report := &Report{}
	for _, name := range names {
		report.Files++
		locale := LocaleFromFile(name, v.rules.Extension)

		content, err := LoadLocaleContent(filepath.Join(dir, name))
		if err != nil {
			v.log.WithError(err).WithField("locale", locale).Error("Failed to load locale file")
			report.Results = append(report.Results, FieldResult{
				Locale: locale,
				Field:  FieldFile,
				Reason: err.Error(),
			})
			continue
		}

		results, warning := v.Check(locale, content)
		if warning != nil {
			warning.File = name
			v.log.WithField("locale", locale).Warn(warning.Message)
			report.Warnings = append(report.Warnings, *warning)
			continue
		}
		report.Results = append(report.Results, results...)
	}

	v.log.WithFields(map[string]interface{}{
		"files":    report.Files,
		"failures": len(report.Failures()),
		"warnings": len(report.Warnings),
	}).Debug("SEO validation finished")

	return report, nil
}

// Check validates one locale. A missing seo section yields a warning and no results.
func (v *Validator) Check(locale string, content LocaleContent) ([]FieldResult, *Warning) {
	if content.SEO == nil {
		return nil, &Warning{Locale: locale, Message: "Missing 'seo' section"}
	}
	return []FieldResult{
		checkField(locale, FieldTitle, content.SEO.Title, v.rules.Title),
		checkField(locale, FieldDescription, content.SEO.Description, v.rules.Description),
	}, nil
}

func checkField(locale, field, value string, r Range) FieldResult {
	res := FieldResult{Locale: locale, Field: field, Value: value, Range: r}
	if value == "" {
		res.Reason = fmt.Sprintf("missing 'seo.%s'", field)
		return res
	}

	res.Length = Length(value)
	if !r.Contains(res.Length) {
		res.Reason = fmt.Sprintf("%s length invalid: %d chars (expected %s)", field, res.Length, r)
		return res
	}

	res.OK = true
	return res
}
