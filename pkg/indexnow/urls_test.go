package indexnow

import (
	"errors"
	"reflect"
	"testing"

	"seo-go/pkg/locale"
)

func TestURLBuilder_AllLocales(t *testing.T) {
	tests := []struct {
		base     string
		locales  []string
		def      string
		expected []string
	}{
		{
			"https://example.com", []string{"en", "zh"}, "en",
			[]string{"https://example.com", "https://example.com/zh"},
		},
		{
			"https://example.com", []string{"zh", "en", "ja"}, "en",
			[]string{"https://example.com", "https://example.com/zh", "https://example.com/ja"},
		},
		{
			"https://example.com/site", []string{"en"}, "en",
			[]string{"https://example.com/site"},
		},
	}

	for _, test := range tests {
		builder, err := NewURLBuilder(test.base, locale.MustNewSet(test.locales, test.def))
		if err != nil {
			t.Fatalf("Expected no error, got: %v", err)
		}

		urls := builder.Build("")
		if !reflect.DeepEqual(urls, test.expected) {
			t.Errorf("Expected %v, got %v", test.expected, urls)
		}
		if len(urls) != len(test.locales) {
			t.Errorf("Expected one URL per locale (%d), got %d", len(test.locales), len(urls))
		}

		seen := map[string]bool{}
		for _, u := range urls {
			if seen[u] {
				t.Errorf("Duplicate URL %s", u)
			}
			seen[u] = true
		}
	}
}

func TestURLBuilder_CustomPath(t *testing.T) {
	builder, err := NewURLBuilder("https://example.com", locale.MustNewSet([]string{"en", "zh"}, "en"))
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	tests := []struct {
		input    string
		expected string
	}{
		{"/zh", "https://example.com/zh"},
		{"zh/blog", "https://example.com/zh/blog"},
		{"https://other.com/x", "https://other.com/x"},
		{"http://other.com", "http://other.com"},
		{"HTTPS://other.com/y", "HTTPS://other.com/y"},
		{"http-guide", "https://example.com/http-guide"},
		{"httpdocs/x", "https://example.com/httpdocs/x"},
		{"/https-setup", "https://example.com/https-setup"},
	}

	for _, test := range tests {
		urls := builder.Build(test.input)
		if !reflect.DeepEqual(urls, []string{test.expected}) {
			t.Errorf("For %q expected [%s], got %v", test.input, test.expected, urls)
		}
	}
}

func TestURLBuilder_MissingBaseURL(t *testing.T) {
	_, err := NewURLBuilder("", locale.MustNewSet([]string{"en"}, "en"))
	if !errors.Is(err, ErrMissingBaseURL) {
		t.Errorf("Expected ErrMissingBaseURL, got: %v", err)
	}
}

func TestURLBuilder_BuildPages(t *testing.T) {
	builder, _ := NewURLBuilder("https://example.com", locale.MustNewSet([]string{"en", "zh"}, "en"))

	urls := builder.BuildPages([]string{"/blog", "zh/blog", "/zh", "", "/blog"})
	expected := []string{
		"https://example.com",
		"https://example.com/zh",
		"https://example.com/blog",
		"https://example.com/zh/blog",
	}
	if !reflect.DeepEqual(urls, expected) {
		t.Errorf("Expected %v, got %v", expected, urls)
	}
}
