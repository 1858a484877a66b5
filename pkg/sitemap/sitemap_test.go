package sitemap

import (
	"bytes"
	"encoding/xml"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"seo-go/pkg/locale"
)

var fixedNow = time.Date(2026, 10, 17, 9, 30, 0, 0, time.UTC)

func TestGenerator_Entries(t *testing.T) {
	g, err := NewGenerator("https://example.com", locale.MustNewSet([]string{"en", "zh", "ja"}, "en"), []string{"/blog"})
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	entries := g.Entries(fixedNow)
	expected := []struct {
		loc      string
		priority float64
	}{
		{"https://example.com", 1.0},
		{"https://example.com/zh", 0.8},
		{"https://example.com/ja", 0.8},
		{"https://example.com/blog", 0.6},
	}

	if len(entries) != len(expected) {
		t.Fatalf("Expected %d entries, got %d: %+v", len(expected), len(entries), entries)
	}
	for i, e := range expected {
		if entries[i].Loc != e.loc || entries[i].Priority != e.priority {
			t.Errorf("Entry %d: expected %s@%.1f, got %s@%.1f", i, e.loc, e.priority, entries[i].Loc, entries[i].Priority)
		}
		if entries[i].LastMod != "2026-10-17" {
			t.Errorf("Entry %d: expected lastmod 2026-10-17, got %s", i, entries[i].LastMod)
		}
		if entries[i].ChangeFreq != "daily" {
			t.Errorf("Entry %d: expected daily, got %s", i, entries[i].ChangeFreq)
		}
	}
}

func TestGenerator_Write(t *testing.T) {
	g, _ := NewGenerator("https://example.com", locale.MustNewSet([]string{"en", "zh"}, "en"), nil)

	var buf bytes.Buffer
	if err := g.Write(&buf, fixedNow); err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if !strings.HasPrefix(buf.String(), xml.Header) {
		t.Errorf("Expected XML header, got: %s", buf.String())
	}

	var parsed urlSet
	if err := xml.Unmarshal(buf.Bytes(), &parsed); err != nil {
		t.Fatalf("Expected valid XML, got: %v", err)
	}
	if !strings.Contains(buf.String(), `xmlns="`+Namespace+`"`) {
		t.Errorf("Expected sitemap namespace, got: %s", buf.String())
	}
	if len(parsed.URLs) != 2 {
		t.Errorf("Expected one url per locale, got %d", len(parsed.URLs))
	}
}

func TestGenerator_WriteFile(t *testing.T) {
	g, _ := NewGenerator("https://example.com", locale.MustNewSet([]string{"en"}, "en"), nil)
	path := filepath.Join(t.TempDir(), "public", "sitemap.xml")

	if err := g.WriteFile(path, fixedNow); err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Expected sitemap file, got: %v", err)
	}
	if !strings.Contains(string(data), "<loc>https://example.com</loc>") {
		t.Errorf("Expected root loc in sitemap, got: %s", data)
	}
}

func TestNewGenerator_MissingBaseURL(t *testing.T) {
	if _, err := NewGenerator("", locale.MustNewSet([]string{"en"}, "en"), nil); err == nil {
		t.Fatal("Expected error for missing base URL, got nil")
	}
}
