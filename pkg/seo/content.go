package seo

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
	"gopkg.in/yaml.v3"
)

// Section holds the page metadata every locale file must define.
type Section struct {
	Title       string `json:"title" yaml:"title"`
	Description string `json:"description" yaml:"description"`
}

// LocaleContent is the subset of a locale message file this package reads.
// Other keys in the file are ignored.
type LocaleContent struct {
	SEO *Section `json:"seo" yaml:"seo"`
}

// LoadLocaleContent decodes a locale file as YAML when its extension is
// .yaml or .yml and as JSON otherwise.
func LoadLocaleContent(path string) (LocaleContent, error) {
	var content LocaleContent

	data, err := os.ReadFile(path)
	if err != nil {
		return content, fmt.Errorf("failed to read %s: %w", path, err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &content)
	default:
		err = json.Unmarshal(data, &content)
	}
	if err != nil {
		return content, fmt.Errorf("failed to parse %s: %w", filepath.Base(path), err)
	}
	return content, nil
}

// LocaleFromFile strips ext from a file name: "zh.json" -> "zh".
func LocaleFromFile(name, ext string) string {
	return strings.TrimSuffix(filepath.Base(name), ext)
}

// Length counts code points of the NFC form, so precomposed and combining
// spellings of the same text measure the same. Characters outside the Basic
// Multilingual Plane, such as most emoji, count once here where a UTF-16
// length would count them twice.
func Length(s string) int {
	return utf8.RuneCountInString(norm.NFC.String(s))
}
