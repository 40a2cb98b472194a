package pratikode

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"
)

// Client is a Pratik Ödeme merchant API client. A Client owns one Session;
// use one Client per logged-in merchant.
type Client struct {
	config     *ClientConfig
	httpClient *http.Client
	session    *Session
	logger     *zap.Logger
	recorder   Recorder
	now        func() time.Time
}

// NewClient creates a new Pratik Ödeme API client
func NewClient(config *ClientConfig) *Client {
	if config.Timeout == 0 {
		config.Timeout = DefaultTimeout
	}
	return NewClientWithHTTPClient(config, newHTTPClient(config))
}

// NewClientWithHTTPClient creates a new client with a custom HTTP client.
// Timeout and TLS settings in config are ignored in favour of httpClient's.
func NewClientWithHTTPClient(config *ClientConfig, httpClient *http.Client) *Client {
	logger := config.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	now := config.Now
	if now == nil {
		now = time.Now
	}
	return &Client{
		config:     config,
		httpClient: httpClient,
		session:    &Session{},
		logger:     logger.Named("pratikode"),
		recorder:   config.Recorder,
		now:        now,
	}
}

// Session returns the client's session state.
func (c *Client) Session() *Session {
	return c.session
}

// BaseURL returns the configured API base URL.
func (c *Client) BaseURL() string {
	return c.config.BaseURL
}

// ChannelID returns the configured channel ID.
func (c *Client) ChannelID() string {
	return c.config.ChannelID
}

// Execute posts body to endpoint and returns the classified response. Values
// delivered in side-channel headers are available under SideChannelKey.
func (c *Client) Execute(ctx context.Context, endpoint string, body map[string]any) (Response, error) {
	return c.ExecuteWithHeaders(ctx, endpoint, body, nil)
}

// ExecuteWithHeaders is Execute with extra request headers. Extra headers are
// added after the defaults and do not replace them.
func (c *Client) ExecuteWithHeaders(ctx context.Context, endpoint string, body map[string]any, extra http.Header) (Response, error) {
	raw, err := c.send(ctx, endpoint, body, extra)
	if err != nil {
		return nil, err
	}

	decoded, err := decodeBody(endpoint, raw.Body)
	if err != nil {
		return nil, err
	}

	if side := ExtractSideChannel(HeaderLines(raw.Header)); len(side) > 0 {
		decoded[SideChannelKey] = side
	}

	return Classify(decoded)
}

func decodeBody(endpoint string, body []byte) (Response, error) {
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()

	var out Response
	if err := dec.Decode(&out); err != nil {
		return nil, &DecodeError{Endpoint: endpoint, Body: body, Err: err}
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, &DecodeError{Endpoint: endpoint, Body: body, Err: errors.New("unexpected data after JSON object")}
	}
	if out == nil {
		return nil, &DecodeError{Endpoint: endpoint, Body: body, Err: errors.New("response is not a JSON object")}
	}
	return out, nil
}
