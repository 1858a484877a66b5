// Package sitemap renders sitemap.xml for a multi-locale site.
package sitemap

import (
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"seo-go/pkg/indexnow"
	"seo-go/pkg/locale"
)

const (
	Namespace = "http://www.sitemaps.org/schemas/sitemap/0.9"

	rootPriority   = 1.0
	localePriority = 0.8
	pagePriority   = 0.6
	changeFreq     = "daily"
)

type urlSet struct {
	XMLName xml.Name `xml:"urlset"`
	XMLNS   string   `xml:"xmlns,attr"`
	URLs    []Entry  `xml:"url"`
}

// Entry is one <url> element.
type Entry struct {
	Loc        string  `xml:"loc"`
	LastMod    string  `xml:"lastmod,omitempty"`
	ChangeFreq string  `xml:"changefreq,omitempty"`
	Priority   float64 `xml:"priority,omitempty"`
}

// Generator lists the site root, the locale roots and any extra pages.
type Generator struct {
	urls  *indexnow.URLBuilder
	pages []string
}

func NewGenerator(baseURL string, locales locale.Set, pages []string) (*Generator, error) {
	urls, err := indexnow.NewURLBuilder(baseURL, locales)
	if err != nil {
		return nil, err
	}
	return &Generator{urls: urls, pages: pages}, nil
}

// Entries returns the sitemap entries in submission order.
func (g *Generator) Entries(now time.Time) []Entry {
	lastMod := now.UTC().Format("2006-01-02")
	localeRoots := len(g.urls.Build(""))

	all := g.urls.BuildPages(g.pages)
	entries := make([]Entry, 0, len(all))
	for i, loc := range all {
		priority := pagePriority
		switch {
		case i == 0:
			priority = rootPriority
		case i < localeRoots:
			priority = localePriority
		}
		entries = append(entries, Entry{
			Loc:        loc,
			LastMod:    lastMod,
			ChangeFreq: changeFreq,
			Priority:   priority,
		})
	}
	return entries
}

func (g *Generator) Write(w io.Writer, now time.Time) error {
	set := urlSet{
		XMLNS: Namespace,
		URLs:  g.Entries(now),
	}
	if _, err := io.WriteString(w, xml.Header); err != nil {
		return err
	}
	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	if err := enc.Encode(set); err != nil {
		return fmt.Errorf("failed to encode sitemap: %w", err)
	}
	_, err := io.WriteString(w, "\n")
	return err
}

// WriteFile writes the sitemap to path, creating parent directories.
func (g *Generator) WriteFile(path string, now time.Time) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create sitemap directory: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create sitemap %s: %w", path, err)
	}
	if err := g.Write(f, now); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
