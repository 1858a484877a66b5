package indexnow

import (
	"strings"

	"seo-go/pkg/locale"
)

// URLBuilder enumerates the canonical URLs of a multi-locale site.
// The default locale lives at the bare base URL; other locales under /{locale}.
type URLBuilder struct {
	baseURL string
	locales locale.Set
}

func NewURLBuilder(baseURL string, locales locale.Set) (*URLBuilder, error) {
	if strings.TrimSpace(baseURL) == "" {
		return nil, ErrMissingBaseURL
	}
	return &URLBuilder{baseURL: baseURL, locales: locales}, nil
}

// Build returns the single normalized customPath when given, otherwise one
// URL per locale with the default locale first.
func (b *URLBuilder) Build(customPath string) []string {
	if customPath != "" {
		return []string{b.Resolve(customPath)}
	}

	urls := make([]string, 0, b.locales.Len())
	urls = append(urls, b.baseURL)
	for _, l := range b.locales.Others() {
		urls = append(urls, b.baseURL+"/"+l)
	}
	return urls
}

// BuildPages returns the locale roots followed by the given page paths,
// skipping any URL already present.
func (b *URLBuilder) BuildPages(paths []string) []string {
	urls := b.Build("")
	seen := make(map[string]bool, len(urls)+len(paths))
	for _, u := range urls {
		seen[u] = true
	}
	for _, p := range paths {
		if strings.TrimSpace(p) == "" {
			continue
		}
		u := b.Resolve(p)
		if seen[u] {
			continue
		}
		seen[u] = true
		urls = append(urls, u)
	}
	return urls
}

// Resolve turns a path into an absolute URL on the site. Values that
// already carry an http:// or https:// scheme are returned unchanged.
func (b *URLBuilder) Resolve(path string) string {
	if hasHTTPScheme(path) {
		return path
	}
	if strings.HasPrefix(path, "/") {
		return b.baseURL + path
	}
	return b.baseURL + "/" + path
}

func hasHTTPScheme(path string) bool {
	lower := strings.ToLower(path)
	return strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://")
}
