package indexnow

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"time"

	"github.com/valyala/fasthttp"
	"seo-go/pkg/logger"
)

// Client submits URL lists to an IndexNow endpoint. It makes exactly one
// attempt per Submit call.
type Client struct {
	config     ClientConfig
	host       string
	client     *fasthttp.Client
	log        *logger.Logger
	lastStatus int
}

// NewClient validates the base URL and creates a submission client
func NewClient(config ClientConfig) (*Client, error) {
	if config.BaseURL == "" {
		return nil, ErrMissingBaseURL
	}
	if config.Endpoint == "" {
		config.Endpoint = DefaultEndpoint
	}
	if config.KeyFileName == "" {
		config.KeyFileName = DefaultKeyFileName
	}
	if config.Timeout == 0 {
		config.Timeout = DefaultTimeout
	}

	host, err := parseHost(config.BaseURL)
	if err != nil {
		return nil, err
	}

	return &Client{
		config: config,
		host:   host,
		client: &fasthttp.Client{
			Name:         "seo-go/1.0",
			ReadTimeout:  config.Timeout,
			WriteTimeout: config.Timeout,
		},
		log: logger.GetLogger().WithField("component", "indexnow_client"),
	}, nil
}

func parseHost(baseURL string) (string, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return "", fmt.Errorf("%w: %q: %v", ErrInvalidBaseURL, baseURL, err)
	}
	if u.Scheme == "" || u.Hostname() == "" {
		return "", fmt.Errorf("%w: %q", ErrInvalidBaseURL, baseURL)
	}
	return u.Hostname(), nil
}

// Host is the hostname sent in the payload.
func (c *Client) Host() string {
	return c.host
}

// LastStatus is the HTTP status of the previous Submit, 0 if no response was received.
func (c *Client) LastStatus() int {
	return c.lastStatus
}

// NewPayload builds the request body for urls and key.
func (c *Client) NewPayload(urls []string, key Key) Payload {
	return Payload{
		Host:        c.host,
		Key:         key.String(),
		KeyLocation: KeyLocation(c.config.BaseURL, c.config.KeyFileName),
		URLList:     urls,
	}
}

// Submit posts urls and reports whether the endpoint accepted them
// (HTTP 200 or 202). Failures are logged, never returned.
func (c *Client) Submit(ctx context.Context, urls []string, key Key) bool {
	c.lastStatus = 0
	if err := ctx.Err(); err != nil {
		c.log.WithError(err).Error("Submission cancelled before sending")
		return false
	}
	payload := c.NewPayload(urls, key)

	body, err := json.Marshal(payload)
	if err != nil {
		c.log.WithError(err).Error("Failed to encode payload")
		return false
	}

	c.log.WithFields(map[string]interface{}{
		"url_count":    len(urls),
		"host":         c.host,
		"key_location": payload.KeyLocation,
	}).Info("Submitting URLs to IndexNow")
	for _, u := range urls {
		c.log.WithField("url", u).Debug("Queued URL")
	}

	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(c.config.Endpoint)
	req.Header.SetMethod(fasthttp.MethodPost)
	req.Header.SetContentType(contentTypeJSON)
	req.SetBody(body)

	if err := c.client.DoDeadline(req, resp, c.deadline(ctx)); err != nil {
		c.log.WithError(err).WithField("endpoint", c.config.Endpoint).Error("Network error while submitting to IndexNow")
		return false
	}

	c.lastStatus = resp.StatusCode()
	switch c.lastStatus {
	case fasthttp.StatusOK, fasthttp.StatusAccepted:
		c.log.WithFields(map[string]interface{}{
			"status":    c.lastStatus,
			"url_count": len(urls),
		}).Info("Submission accepted")
		return true
	default:
		c.log.WithFields(map[string]interface{}{
			"status":   c.lastStatus,
			"response": string(resp.Body()),
		}).Error("Submission rejected")
		return false
	}
}

func (c *Client) deadline(ctx context.Context) time.Time {
	d := time.Now().Add(c.config.Timeout)
	if ctxDeadline, ok := ctx.Deadline(); ok && ctxDeadline.Before(d) {
		return ctxDeadline
	}
	return d
}
