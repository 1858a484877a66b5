package config

import (
	"fmt"
	"time"

	"seo-go/pkg/indexnow"
	"seo-go/pkg/locale"
	"seo-go/pkg/logger"
	"seo-go/pkg/seo"
)

type Config struct {
	Site     SiteConfig     `mapstructure:"site"`
	IndexNow IndexNowConfig `mapstructure:"indexnow"`
	SEO      SEOConfig      `mapstructure:"seo"`
	Logger   logger.Config  `mapstructure:"logger"`
}

type SiteConfig struct {
	BaseURL       string   `mapstructure:"base_url"`
	Locales       []string `mapstructure:"locales"`
	DefaultLocale string   `mapstructure:"default_locale"`
	PublicDir     string   `mapstructure:"public_dir"`
	Pages         []string `mapstructure:"pages"`
}

type IndexNowConfig struct {
	Endpoint string        `mapstructure:"endpoint"`
	Key      string        `mapstructure:"key"`
	KeyFile  string        `mapstructure:"key_file"`
	Timeout  time.Duration `mapstructure:"timeout"`
}

type SEOConfig struct {
	MessagesDir string    `mapstructure:"messages_dir"`
	Extension   string    `mapstructure:"extension"`
	Title       seo.Range `mapstructure:"title"`
	Description seo.Range `mapstructure:"description"`
}

type Manager interface {
	Load(configPath string) (*Config, error)
	GetConfig() *Config
	ConfigFileUsed() string
}

// LocaleSet builds the validated locale set from the site section.
func (c *Config) LocaleSet() (locale.Set, error) {
	set, err := locale.NewSet(c.Site.Locales, c.Site.DefaultLocale)
	if err != nil {
		return locale.Set{}, fmt.Errorf("invalid site locales: %w", err)
	}
	return set, nil
}

func (c *Config) KeyConfig() indexnow.KeyConfig {
	return indexnow.KeyConfig{
		Dir:      c.Site.PublicDir,
		FileName: c.IndexNow.KeyFile,
		Override: c.IndexNow.Key,
	}
}

func (c *Config) ClientConfig() indexnow.ClientConfig {
	return indexnow.ClientConfig{
		Endpoint:    c.IndexNow.Endpoint,
		BaseURL:     c.Site.BaseURL,
		KeyFileName: c.IndexNow.KeyFile,
		Timeout:     c.IndexNow.Timeout,
	}
}

func (c *Config) Rules() seo.Rules {
	return seo.Rules{
		Title:       c.SEO.Title,
		Description: c.SEO.Description,
		Extension:   c.SEO.Extension,
	}
}
