package pratikode

import (
	"bytes"
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"go.uber.org/zap"
)

// Request header names fixed by the provider.
const (
	headerChannelID   = "channelID"
	headerAccessToken = "accessToken"
)

type rawResponse struct {
	StatusCode int
	Header     http.Header
	Body       []byte
}

func newHTTPClient(config *ClientConfig) *http.Client {
	transport := http.DefaultTransport.(*http.Transport).Clone()
	transport.TLSClientConfig = &tls.Config{
		MinVersion:         tls.VersionTLS12,
		InsecureSkipVerify: config.InsecureSkipVerify, //nolint:gosec // explicit opt-out for test hosts
	}
	return &http.Client{
		Timeout:   config.Timeout,
		Transport: transport,
	}
}

// joinURL joins base and endpoint with exactly one slash between them.
func joinURL(base, endpoint string) string {
	return strings.TrimRight(base, "/") + "/" + strings.TrimLeft(endpoint, "/")
}

// send performs one POST and returns the raw response. Non-200 statuses are
// reported as *HTTPStatusError before anything is decoded.
func (c *Client) send(ctx context.Context, endpoint string, body map[string]any, extra http.Header) (*rawResponse, error) {
	if body == nil {
		body = map[string]any{}
	}
	bodyBytes, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("pratikode: %s: failed to marshal request: %w", endpoint, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, joinURL(c.config.BaseURL, endpoint), bytes.NewReader(bodyBytes))
	if err != nil {
		return nil, &TransportError{Endpoint: endpoint, Err: err}
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(headerChannelID, c.config.ChannelID)
	if token := c.session.Token(); token != "" {
		req.Header.Set(headerAccessToken, token)
	}
	for k, values := range extra {
		for _, v := range values {
			req.Header.Add(k, v)
		}
	}

	start := c.now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Debug("request failed", zap.String("endpoint", endpoint), zap.Error(err))
		return nil, &TransportError{Endpoint: endpoint, Err: err}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &TransportError{Endpoint: endpoint, Err: fmt.Errorf("failed to read response: %w", err)}
	}

	c.logger.Debug("request completed",
		zap.String("endpoint", endpoint),
		zap.Int("status", resp.StatusCode),
		zap.Duration("duration", c.now().Sub(start)))

	if resp.StatusCode != http.StatusOK {
		return nil, &HTTPStatusError{Endpoint: endpoint, StatusCode: resp.StatusCode, Body: respBody}
	}

	return &rawResponse{
		StatusCode: resp.StatusCode,
		Header:     resp.Header,
		Body:       respBody,
	}, nil
}
