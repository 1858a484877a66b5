package indexnow

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"seo-go/pkg/logger"
)

const generatedKeyBytes = 16

var keyFormat = regexp.MustCompile(`^[a-zA-Z0-9-]{8,128}$`)

// ValidateKey reports whether key matches the format IndexNow documents.
func ValidateKey(key string) bool {
	return keyFormat.MatchString(key)
}

// KeyProvider resolves the submission key and keeps the public key file in sync.
type KeyProvider struct {
	config KeyConfig
	random func([]byte) (int, error)
	log    *logger.Logger
}

func NewKeyProvider(config KeyConfig) *KeyProvider {
	if config.Dir == "" {
		config.Dir = DefaultKeyDir
	}
	if config.FileName == "" {
		config.FileName = DefaultKeyFileName
	}
	return &KeyProvider{
		config: config,
		random: rand.Read,
		log:    logger.GetLogger().WithField("component", "key_provider"),
	}
}

// Path is the local path of the key file.
func (p *KeyProvider) Path() string {
	return filepath.Join(p.config.Dir, p.config.FileName)
}

// KeyLocation is the public URL the remote service fetches to verify the key.
func (p *KeyProvider) KeyLocation(baseURL string) string {
	return KeyLocation(baseURL, p.config.FileName)
}

// KeyLocation joins baseURL and the key file name.
func KeyLocation(baseURL, fileName string) string {
	return baseURL + "/" + fileName
}

// GetOrCreate returns the override key, the persisted key, or a newly
// generated one, in that order. It writes the key file at most once.
func (p *KeyProvider) GetOrCreate() (Key, error) {
	path := p.Path()

	if override := strings.TrimSpace(p.config.Override); override != "" {
		p.log.Info("Using key from environment")
		if !ValidateKey(override) {
			logger.GetSecurityLogger().SafeWarn("Key does not match the IndexNow format (8-128 chars of a-z, A-Z, 0-9, '-')", map[string]interface{}{
				"component": "key_provider",
				"key":       override,
				"length":    len(override),
			})
		}

		exists, err := fileExists(path)
		if err != nil {
			return "", err
		}
		if !exists {
			if err := p.write(override); err != nil {
				return "", err
			}
			p.log.WithField("file", path).Info("Created key file")
		}
		return Key(override), nil
	}

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		key := strings.TrimSpace(string(data))
		if key == "" {
			return "", fmt.Errorf("%w: %s", ErrEmptyKeyFile, path)
		}
		p.log.WithField("file", path).Info("Using existing key file")
		return Key(key), nil
	case !errors.Is(err, fs.ErrNotExist):
		return "", fmt.Errorf("failed to read key file %s: %w", path, err)
	}

	key, err := p.generate()
	if err != nil {
		return "", err
	}
	if err := p.write(key); err != nil {
		return "", err
	}
	p.log.WithField("file", path).Info("Generated new key")
	p.log.Warn("Commit the key file and make sure it is reachable at {base_url}/" + p.config.FileName + " after deploy")

	return Key(key), nil
}

func (p *KeyProvider) generate() (string, error) {
	buf := make([]byte, generatedKeyBytes)
	if _, err := p.random(buf); err != nil {
		return "", fmt.Errorf("failed to generate key: %w", err)
	}
	return hex.EncodeToString(buf), nil
}

func (p *KeyProvider) write(key string) error {
	if err := os.MkdirAll(p.config.Dir, 0755); err != nil {
		return fmt.Errorf("failed to create key directory %s: %w", p.config.Dir, err)
	}
	if err := os.WriteFile(p.Path(), []byte(key), 0644); err != nil {
		return fmt.Errorf("failed to write key file %s: %w", p.Path(), err)
	}
	return nil
}

func fileExists(path string) (bool, error) {
	_, err := os.Stat(path)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	return false, fmt.Errorf("failed to stat key file %s: %w", path, err)
}
