package toolkit

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"fnctl/pkg/logging"

	"github.com/google/uuid"
)

const subsystem = "Toolkit"

// DefaultTimeout bounds a single backend request.
const DefaultTimeout = 30 * time.Second

// Options configures a Client.
type Options struct {
	ServerURL   string
	ServiceRoot string
	// AuthToken is sent as "Authorization: Basic <token>".
	AuthToken  string
	Timeout    time.Duration
	HTTPClient *http.Client
}

// Client talks to the toolkit OData service.
type Client struct {
	baseURL    string
	authToken  string
	httpClient *http.Client
	requestID  func() string
}

// NewClient creates a client for the service rooted at ServerURL + ServiceRoot.
func NewClient(opts Options) (*Client, error) {
	if strings.TrimSpace(opts.ServerURL) == "" {
		return nil, ErrNotConfigured
	}
	httpClient := opts.HTTPClient
	if httpClient == nil {
		timeout := opts.Timeout
		if timeout <= 0 {
			timeout = DefaultTimeout
		}
		httpClient = &http.Client{Timeout: timeout}
	}
	return &Client{
		baseURL:    joinBase(opts.ServerURL, opts.ServiceRoot),
		authToken:  opts.AuthToken,
		httpClient: httpClient,
		requestID:  uuid.NewString,
	}, nil
}

// BaseURL returns the service root requests are resolved against.
func (c *Client) BaseURL() string {
	return c.baseURL
}

func joinBase(serverURL, serviceRoot string) string {
	base := strings.TrimRight(serverURL, "/") + "/"
	if root := strings.Trim(serviceRoot, "/"); root != "" {
		base += root + "/"
	}
	return base
}

// do issues one request. body is JSON-encoded when non-nil; out is decoded
// from a non-empty 2xx response when non-nil.
func (c *Client) do(ctx context.Context, method, resource string, query Query, body, out interface{}) error {
	target := c.baseURL + resource
	if q := query.Encode(); q != "" {
		target += "?" + q
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode %s body: %w", resource, err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.authToken != "" {
		req.Header.Set("Authorization", "Basic "+c.authToken)
	}
	reqID := c.requestID()
	req.Header.Set("X-Request-ID", reqID)

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		logging.Debug(subsystem, "%s %s failed after %s (request %s): %v", method, resource, time.Since(start), reqID, err)
		return fmt.Errorf("%s %s: %w", method, resource, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read %s response: %w", resource, err)
	}
	logging.Debug(subsystem, "%s %s -> %d in %s (request %s)", method, resource, resp.StatusCode, time.Since(start), reqID)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return parseError(resp.StatusCode, data)
	}
	if out == nil || len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("failed to decode %s response: %w", resource, err)
	}
	return nil
}

// collection accepts both a bare JSON array and the OData {"value": [...]}
// envelope.
type collection[T any] struct {
	Items []T
}

func (c *collection[T]) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		return json.Unmarshal(trimmed, &c.Items)
	}
	if bytes.Equal(trimmed, []byte("null")) {
		c.Items = nil
		return nil
	}
	var env struct {
		Value json.RawMessage `json:"value"`
	}
	if err := json.Unmarshal(trimmed, &env); err != nil {
		return err
	}
	// RawMessage stays nil only when the key is missing; "value": null
	// decodes to no items below.
	if env.Value == nil {
		return fmt.Errorf("response is not a collection")
	}
	c.Items = nil
	return json.Unmarshal(env.Value, &c.Items)
}

// entity unwraps the OData verbose {"d": {...}} envelope when present.
type entity[T any] struct {
	Item T
}

func (e *entity[T]) UnmarshalJSON(data []byte) error {
	var env struct {
		D json.RawMessage `json:"d"`
	}
	if err := json.Unmarshal(data, &env); err == nil && len(env.D) > 0 {
		return json.Unmarshal(env.D, &e.Item)
	}
	return json.Unmarshal(data, &e.Item)
}
