package nylas

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"golang.org/x/oauth2"
)

const (
	defaultAPIURL  = "https://api.us.nylas.com"
	defaultTimeout = 30 * time.Second
)

var (
	ErrMissingAPIKey = errors.New("nylas api key is required")
	ErrMissingGrant  = errors.New("nylas grant id is required")
)

// ClientConfig holds what the Client needs to reach the API.
type ClientConfig struct {
	APIKey  string
	GrantID string
	APIURL  string
	Timeout time.Duration
	// Transport overrides the base round tripper, mainly for tests.
	Transport http.RoundTripper
}

// Client is the HTTP RequestSender for the Nylas v3 API. Requests carry the
// API key as a bearer token.
type Client struct {
	rest    *resty.Client
	grantID string
}

// NewClient creates a new Nylas API client
func NewClient(cfg ClientConfig) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, ErrMissingAPIKey
	}
	if cfg.GrantID == "" {
		return nil, ErrMissingGrant
	}
	if cfg.APIURL == "" {
		cfg.APIURL = defaultAPIURL
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}
	base := cfg.Transport
	if base == nil {
		base = http.DefaultTransport
	}

	tokens := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: cfg.APIKey, TokenType: "Bearer"})
	httpClient := &http.Client{
		Timeout:   cfg.Timeout,
		Transport: &oauth2.Transport{Source: tokens, Base: base},
	}

	rest := resty.NewWithClient(httpClient).
		SetBaseURL(strings.TrimRight(cfg.APIURL, "/")+"/v3").
		SetHeader("Accept", "application/json")

	return &Client{rest: rest, grantID: cfg.GrantID}, nil
}

// Send performs one request. No retries are made.
func (c *Client) Send(ctx context.Context, path string, opts RequestOptions) (Response, error) {
	method := opts.Method
	if method == "" {
		method = http.MethodGet
	}
	target := path
	if !opts.WithoutGrant {
		target = "/grants/" + url.PathEscape(c.grantID) + path
	}

	req := c.rest.R().SetContext(ctx)
	if opts.Body != nil {
		req.SetHeader("Content-Type", "application/json").SetBody(opts.Body)
	}

	resp, err := req.Execute(method, target)
	if err != nil {
		return nil, fmt.Errorf("failed to send %s %s: %w", method, path, err)
	}
	return NewResponse(resp.StatusCode(), resp.Body()), nil
}
