// Package locale describes the set of locales a site is published in.
package locale

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrNoLocales       = errors.New("locale set is empty")
	ErrEmptyLocale     = errors.New("locale identifier is empty")
	ErrUnknownDefault  = errors.New("default locale is not in the locale set")
	ErrDuplicateLocale = errors.New("duplicate locale")
)

// Set is an ordered list of locales with one default.
// The default locale is served from the site root without a prefix.
type Set struct {
	locales       []string
	defaultLocale string
}

// NewSet validates and builds a locale set.
func NewSet(locales []string, defaultLocale string) (Set, error) {
	if len(locales) == 0 {
		return Set{}, ErrNoLocales
	}

	seen := make(map[string]bool, len(locales))
	cleaned := make([]string, 0, len(locales))
	for _, l := range locales {
		l = strings.TrimSpace(l)
		if l == "" {
			return Set{}, ErrEmptyLocale
		}
		if seen[l] {
			return Set{}, fmt.Errorf("%w: %s", ErrDuplicateLocale, l)
		}
		seen[l] = true
		cleaned = append(cleaned, l)
	}

	defaultLocale = strings.TrimSpace(defaultLocale)
	if !seen[defaultLocale] {
		return Set{}, fmt.Errorf("%w: %q not in %v", ErrUnknownDefault, defaultLocale, cleaned)
	}

	return Set{locales: cleaned, defaultLocale: defaultLocale}, nil
}

// MustNewSet is NewSet for static configuration; it panics on invalid input.
func MustNewSet(locales []string, defaultLocale string) Set {
	s, err := NewSet(locales, defaultLocale)
	if err != nil {
		panic(err)
	}
	return s
}

func (s Set) Default() string {
	return s.defaultLocale
}

// All returns the locales in declared order.
func (s Set) All() []string {
	out := make([]string, len(s.locales))
	copy(out, s.locales)
	return out
}

// Others returns every non-default locale in declared order.
func (s Set) Others() []string {
	out := make([]string, 0, len(s.locales))
	for _, l := range s.locales {
		if l != s.defaultLocale {
			out = append(out, l)
		}
	}
	return out
}

func (s Set) Contains(locale string) bool {
	for _, l := range s.locales {
		if l == locale {
			return true
		}
	}
	return false
}

func (s Set) Len() int {
	return len(s.locales)
}
