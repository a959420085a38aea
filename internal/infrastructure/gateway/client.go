// Package gateway provides HTTP clients for the external stock and payment services.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

const defaultTimeout = 5 * time.Second

// ErrUnexpectedStatus is returned when a service answers outside the 2xx range.
var ErrUnexpectedStatus = errors.New("gateway: unexpected status")

// NewHTTPClient returns an HTTP client whose requests carry trace context.
//
// Parameters:
//   - timeout: bound for a whole request, defaults to 5s when not positive
//
// Returns:
//   - *http.Client: instrumented client
func NewHTTPClient(timeout time.Duration) *http.Client {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &http.Client{
		Timeout:   timeout,
		Transport: otelhttp.NewTransport(http.DefaultTransport),
	}
}

// jsonClient posts JSON documents to a base URL.
type jsonClient struct {
	baseURL string
	http    *http.Client
}

func newJSONClient(baseURL string, httpClient *http.Client) jsonClient {
	if httpClient == nil {
		httpClient = NewHTTPClient(0)
	}
	return jsonClient{
		baseURL: strings.TrimRight(strings.TrimSpace(baseURL), "/"),
		http:    httpClient,
	}
}

// post sends body to the path joined from elems and decodes the answer into
// out. A nil out discards the response body.
func (c jsonClient) post(ctx context.Context, body, out any, elems ...string) error {
	endpoint, err := url.JoinPath(c.baseURL, elems...)
	if err != nil {
		return err
	}
	payload, err := json.Marshal(body)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("%w %d from %s: %s", ErrUnexpectedStatus, resp.StatusCode, endpoint, drainError(resp.Body))
	}
	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response from %s: %w", endpoint, err)
	}
	return nil
}

func drainError(r io.Reader) string {
	b, _ := io.ReadAll(io.LimitReader(r, 256))
	return strings.TrimSpace(string(b))
}
