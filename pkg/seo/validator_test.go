package seo

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeLocaleFile(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
}

func seoJSON(title, description string) string {
	return `{"common": {"home": "Home"}, "seo": {"title": "` + title + `", "description": "` + description + `"}}`
}

func TestValidator_Passes(t *testing.T) {
	dir := t.TempDir()
	writeLocaleFile(t, dir, "en.json", seoJSON(strings.Repeat("t", 55), strings.Repeat("d", 145)))

	report, err := NewValidator(DefaultRules()).Validate(dir)
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if !report.Passed() {
		t.Fatalf("Expected validation to pass, failures: %+v", report.Failures())
	}
	if len(report.Results) != 2 {
		t.Errorf("Expected 2 results, got: %d", len(report.Results))
	}
	if report.Results[0].Length != 55 || report.Results[1].Length != 145 {
		t.Errorf("Expected lengths 55/145, got %d/%d", report.Results[0].Length, report.Results[1].Length)
	}
}

func TestValidator_BoundariesAreInclusive(t *testing.T) {
	dir := t.TempDir()
	writeLocaleFile(t, dir, "a.json", seoJSON(strings.Repeat("t", 50), strings.Repeat("d", 140)))
	writeLocaleFile(t, dir, "b.json", seoJSON(strings.Repeat("t", 60), strings.Repeat("d", 150)))

	report, err := NewValidator(DefaultRules()).Validate(dir)
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if !report.Passed() {
		t.Errorf("Expected boundary lengths to pass, failures: %+v", report.Failures())
	}
}

func TestValidator_LengthFailures(t *testing.T) {
	dir := t.TempDir()
	writeLocaleFile(t, dir, "en.json", seoJSON(strings.Repeat("t", 40), strings.Repeat("d", 145)))
	writeLocaleFile(t, dir, "zh.json", seoJSON(strings.Repeat("t", 55), strings.Repeat("d", 160)))

	report, err := NewValidator(DefaultRules()).Validate(dir)
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if report.Passed() {
		t.Fatal("Expected validation to fail")
	}

	failures := report.Failures()
	if len(failures) != 2 {
		t.Fatalf("Expected 2 failures, got: %+v", failures)
	}
	if failures[0].Locale != "en" || failures[0].Field != FieldTitle || failures[0].Length != 40 {
		t.Errorf("Expected en title failure with length 40, got: %+v", failures[0])
	}
	if failures[1].Locale != "zh" || failures[1].Field != FieldDescription || failures[1].Length != 160 {
		t.Errorf("Expected zh description failure with length 160, got: %+v", failures[1])
	}
	for _, f := range failures {
		if f.Reason == "" {
			t.Errorf("Expected a reason for %+v", f)
		}
	}
}

func TestValidator_MissingSEOSectionWarns(t *testing.T) {
	dir := t.TempDir()
	writeLocaleFile(t, dir, "en.json", seoJSON(strings.Repeat("t", 55), strings.Repeat("d", 145)))
	writeLocaleFile(t, dir, "fr.json", `{"common": {"home": "Accueil"}}`)

	report, err := NewValidator(DefaultRules()).Validate(dir)
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if !report.Passed() {
		t.Errorf("Expected missing seo section not to fail, failures: %+v", report.Failures())
	}
	if len(report.Warnings) != 1 || report.Warnings[0].Locale != "fr" {
		t.Errorf("Expected one warning for fr, got: %+v", report.Warnings)
	}
	if report.Warnings[0].File != "fr.json" {
		t.Errorf("Expected warning to name fr.json, got: %s", report.Warnings[0].File)
	}
}

func TestValidator_MissingFields(t *testing.T) {
	dir := t.TempDir()
	writeLocaleFile(t, dir, "en.json", `{"seo": {}}`)

	report, err := NewValidator(DefaultRules()).Validate(dir)
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	failures := report.Failures()
	if len(failures) != 2 {
		t.Fatalf("Expected missing title and description, got: %+v", failures)
	}
	if !strings.Contains(failures[0].Reason, "seo.title") || !strings.Contains(failures[1].Reason, "seo.description") {
		t.Errorf("Expected reasons to name the missing fields, got: %q / %q", failures[0].Reason, failures[1].Reason)
	}
}

func TestValidator_OneBadLocaleDoesNotHideOthers(t *testing.T) {
	dir := t.TempDir()
	writeLocaleFile(t, dir, "de.json", `{"seo": `)
	writeLocaleFile(t, dir, "en.json", seoJSON(strings.Repeat("t", 10), strings.Repeat("d", 145)))

	report, err := NewValidator(DefaultRules()).Validate(dir)
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if report.Files != 2 {
		t.Errorf("Expected 2 files scanned, got: %d", report.Files)
	}
	failures := report.Failures()
	if len(failures) != 2 {
		t.Fatalf("Expected parse failure and title failure, got: %+v", failures)
	}
	if failures[0].Locale != "de" || failures[0].Field != FieldFile {
		t.Errorf("Expected de parse failure first, got: %+v", failures[0])
	}
	if failures[1].Locale != "en" || failures[1].Field != FieldTitle {
		t.Errorf("Expected en title failure, got: %+v", failures[1])
	}
}

func TestValidator_IgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()
	writeLocaleFile(t, dir, "README.md", "not a locale")
	if err := os.Mkdir(filepath.Join(dir, "nested.json"), 0755); err != nil {
		t.Fatalf("Mkdir failed: %v", err)
	}

	report, err := NewValidator(DefaultRules()).Validate(dir)
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if report.Files != 0 || len(report.Results) != 0 {
		t.Errorf("Expected nothing scanned, got: %+v", report)
	}
	if !report.Passed() {
		t.Errorf("Expected empty report to pass")
	}
}

func TestValidator_YAMLContent(t *testing.T) {
	dir := t.TempDir()
	writeLocaleFile(t, dir, "ja.yaml", "seo:\n  title: \""+strings.Repeat("t", 55)+"\"\n  description: \""+strings.Repeat("d", 70)+"\"\n")

	rules := DefaultRules()
	rules.Extension = "yaml"
	report, err := NewValidator(rules).Validate(dir)
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	failures := report.Failures()
	if len(failures) != 1 || failures[0].Locale != "ja" || failures[0].Field != FieldDescription {
		t.Errorf("Expected ja description failure, got: %+v", failures)
	}
}

func TestValidator_UnreadableDirectory(t *testing.T) {
	_, err := NewValidator(DefaultRules()).Validate(filepath.Join(t.TempDir(), "missing"))
	if err == nil {
		t.Fatal("Expected error for missing directory, got nil")
	}
}

func TestLength_NormalizesAndCountsRunes(t *testing.T) {
	composed := "caf\u00e9"
	decomposed := "cafe\u0301"
	if Length(composed) != 4 || Length(decomposed) != 4 {
		t.Errorf("Expected both spellings to measure 4, got %d and %d", Length(composed), Length(decomposed))
	}
	if Length("你好世界") != 4 {
		t.Errorf("Expected 4 code points for CJK text, got %d", Length("你好世界"))
	}
}

func TestPrintReport(t *testing.T) {
	report := &Report{
		Files: 2,
		Results: []FieldResult{
			{Locale: "en", Field: FieldTitle, OK: true, Length: 55, Value: "x", Range: Range{50, 60}},
			{Locale: "en", Field: FieldDescription, Length: 160, Value: "too long", Reason: "x", Range: Range{140, 150}},
		},
		Warnings: []Warning{{Locale: "fr", File: "fr.json", Message: "Missing 'seo' section"}},
	}

	var buf bytes.Buffer
	PrintReport(&buf, report)
	out := buf.String()

	for _, want := range []string{
		"[fr] Missing 'seo' section in fr.json",
		"[en] Title length OK: 55 chars",
		"[en] Description length invalid: 160 chars (expected 140-150)",
		`Content: "too long"`,
		"SEO validation failed",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("Expected output to contain %q, got:\n%s", want, out)
		}
	}
}
