// Package indexnow provisions IndexNow keys, builds the URL list for a
// multi-locale site and submits it to an IndexNow endpoint.
package indexnow

import (
	"errors"
	"time"
)

const (
	DefaultEndpoint    = "https://api.indexnow.org/indexnow"
	DefaultKeyFileName = "indexnow-key.txt"
	DefaultKeyDir      = "public"
	DefaultTimeout     = 30 * time.Second

	contentTypeJSON = "application/json; charset=utf-8"
)

var (
	ErrMissingBaseURL = errors.New("base URL is not configured - set NEXT_PUBLIC_APP_URL")
	ErrInvalidBaseURL = errors.New("base URL is not a valid absolute URL")
	ErrEmptyKeyFile   = errors.New("key file is empty")
)

// Key is an IndexNow submission key.
type Key string

func (k Key) String() string {
	return string(k)
}

// Payload is the JSON body accepted by IndexNow endpoints.
type Payload struct {
	Host        string   `json:"host"`
	Key         string   `json:"key"`
	KeyLocation string   `json:"keyLocation"`
	URLList     []string `json:"urlList"`
}

// KeyConfig locates the persisted key artifact.
type KeyConfig struct {
	Dir      string // directory served at the site root, usually public/
	FileName string
	Override string // externally supplied key, e.g. INDEXNOW_KEY
}

// ClientConfig holds submission client configuration
type ClientConfig struct {
	Endpoint    string
	BaseURL     string
	KeyFileName string
	Timeout     time.Duration
}
