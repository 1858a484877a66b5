package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"seo-go/pkg/indexnow"
	"seo-go/pkg/logger"
	"seo-go/pkg/seo"
)

// DefaultConfigName is looked up in the working directory when no config path is given.
const DefaultConfigName = "seo-go"

// DotenvFiles are loaded in order; variables already set are never overridden,
// so earlier files win over later ones.
var DotenvFiles = []string{".env.local", ".env"}

// envBindings maps config keys to the environment variable names the site already uses.
var envBindings = map[string][]string{
	"site.base_url":     {"NEXT_PUBLIC_APP_URL", "SEO_SITE_BASE_URL"},
	"indexnow.key":      {"INDEXNOW_KEY"},
	"indexnow.endpoint": {"INDEXNOW_ENDPOINT"},
	"indexnow.timeout":  {"INDEXNOW_TIMEOUT"},
	"seo.messages_dir":  {"SEO_MESSAGES_DIR"},
	"logger.level":      {"LOG_LEVEL"},
	"logger.format":     {"LOG_FORMAT"},
	"logger.output":     {"LOG_OUTPUT"},
}

type manager struct {
	mu     sync.RWMutex
	config *Config
	viper  *viper.Viper
}

func NewManager() Manager {
	return &manager{
		viper: viper.New(),
	}
}

// LoadDotenv loads the given files into the process environment, skipping missing ones.
func LoadDotenv(files ...string) error {
	for _, f := range files {
		if _, err := os.Stat(f); err != nil {
			continue
		}
		if err := godotenv.Load(f); err != nil {
			return fmt.Errorf("failed to load %s: %w", f, err)
		}
	}
	return nil
}

func (m *manager) Load(configPath string) (*Config, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.setupViper(configPath); err != nil {
		return nil, fmt.Errorf("failed to setup viper: %w", err)
	}

	if err := m.viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configPath != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var config Config
	if err := m.viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	config.Site.BaseURL = strings.TrimSpace(config.Site.BaseURL)
	if os.Getenv("DEBUG") == "true" {
		config.Logger.Level = "debug"
	}

	if err := m.validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	m.config = &config
	return &config, nil
}

func (m *manager) GetConfig() *Config {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.config
}

func (m *manager) ConfigFileUsed() string {
	return m.viper.ConfigFileUsed()
}

func (m *manager) setupViper(configPath string) error {
	if configPath != "" {
		m.viper.SetConfigFile(configPath)
	} else {
		m.viper.SetConfigName(DefaultConfigName)
		m.viper.SetConfigType("yaml")
		m.viper.AddConfigPath(".")
	}

	defaults := seo.DefaultRules()
	log := logger.DefaultConfig()
	m.viper.SetDefault("site.base_url", "")
	m.viper.SetDefault("site.locales", []string{"en", "zh"})
	m.viper.SetDefault("site.default_locale", "en")
	m.viper.SetDefault("site.public_dir", indexnow.DefaultKeyDir)
	m.viper.SetDefault("site.pages", []string{})
	m.viper.SetDefault("indexnow.endpoint", indexnow.DefaultEndpoint)
	m.viper.SetDefault("indexnow.key", "")
	m.viper.SetDefault("indexnow.key_file", indexnow.DefaultKeyFileName)
	m.viper.SetDefault("indexnow.timeout", indexnow.DefaultTimeout)
	m.viper.SetDefault("seo.messages_dir", "messages")
	m.viper.SetDefault("seo.extension", defaults.Extension)
	m.viper.SetDefault("seo.title.min", defaults.Title.Min)
	m.viper.SetDefault("seo.title.max", defaults.Title.Max)
	m.viper.SetDefault("seo.description.min", defaults.Description.Min)
	m.viper.SetDefault("seo.description.max", defaults.Description.Max)
	m.viper.SetDefault("logger.level", log.Level)
	m.viper.SetDefault("logger.format", log.Format)
	m.viper.SetDefault("logger.output", log.Output)

	m.viper.SetEnvPrefix("SEO")
	m.viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	m.viper.AutomaticEnv()

	for key, envs := range envBindings {
		input := append([]string{key}, envs...)
		if err := m.viper.BindEnv(input...); err != nil {
			return fmt.Errorf("failed to bind %s: %w", key, err)
		}
	}

	return nil
}

func (m *manager) validateConfig(config *Config) error {
	if _, err := config.LocaleSet(); err != nil {
		return err
	}

	if config.IndexNow.Timeout <= 0 {
		return fmt.Errorf("indexnow.timeout must be positive")
	}

	if config.IndexNow.KeyFile == "" || strings.ContainsAny(config.IndexNow.KeyFile, `/\`) {
		return fmt.Errorf("indexnow.key_file must be a plain file name, got %q", config.IndexNow.KeyFile)
	}

	for name, r := range map[string]seo.Range{"seo.title": config.SEO.Title, "seo.description": config.SEO.Description} {
		if r.Min < 0 || r.Min > r.Max {
			return fmt.Errorf("%s range %s is invalid", name, r)
		}
	}

	if config.SEO.MessagesDir == "" {
		return fmt.Errorf("seo.messages_dir cannot be empty")
	}

	return nil
}
