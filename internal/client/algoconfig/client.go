package algoconfig

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"algoconfig/internal/models"
)

// DefaultTimeout bounds every request so a hung server surfaces as a
// connectivity failure instead of blocking the caller.
const DefaultTimeout = 8 * time.Second

type Client struct {
	host       string
	httpClient *http.Client
}

// APIError is a failure the server answered: either a single message
// or per-field validation errors, never both.
type APIError struct {
	Status      int
	Message     string
	FieldErrors map[string]string
}

func (e *APIError) Error() string {
	if len(e.FieldErrors) > 0 {
		return fmt.Sprintf("API error (%d): %d field errors", e.Status, len(e.FieldErrors))
	}
	return fmt.Sprintf("API error (%d): %s", e.Status, e.Message)
}

func NewClient(httpClient *http.Client, host string) *Client {
	if host == "" {
		host = "http://localhost:4000"
	}
	host = strings.TrimRight(host, "/")
	if httpClient == nil {
		httpClient = &http.Client{Timeout: DefaultTimeout}
	}
	return &Client{
		host:       host,
		httpClient: httpClient,
	}
}

type listEnvelope struct {
	Data  []models.AlgoConfig `json:"data"`
	Count int                 `json:"count"`
}

type itemEnvelope struct {
	Data models.AlgoConfig `json:"data"`
}

type errorEnvelope struct {
	Error  string            `json:"error"`
	Errors map[string]string `json:"errors"`
}

func (c *Client) doRequest(ctx context.Context, method, path string, payload any) ([]byte, error) {
	var body io.Reader
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("failed to encode payload: %w", err)
		}
		body = bytes.NewReader(b)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.host+path, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()
	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}
	if resp.StatusCode >= 400 {
		apiErr := &APIError{Status: resp.StatusCode}
		var env errorEnvelope
		if json.Unmarshal(raw, &env) == nil {
			apiErr.Message = env.Error
			apiErr.FieldErrors = env.Errors
		}
		if apiErr.Message == "" && len(apiErr.FieldErrors) == 0 {
			apiErr.Message = strings.TrimSpace(string(raw))
		}
		return nil, apiErr
	}
	return raw, nil
}

func (c *Client) FetchConfigs(ctx context.Context) ([]models.AlgoConfig, error) {
	raw, err := c.doRequest(ctx, http.MethodGet, "/configs", nil)
	if err != nil {
		return nil, err
	}
	var env listEnvelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, fmt.Errorf("failed to decode list response: %w", err)
	}
	return env.Data, nil
}

func (c *Client) FetchConfig(ctx context.Context, id string) (*models.AlgoConfig, error) {
	raw, err := c.doRequest(ctx, http.MethodGet, "/configs/"+id, nil)
	if err != nil {
		return nil, err
	}
	var env itemEnvelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, fmt.Errorf("failed to decode config response: %w", err)
	}
	return &env.Data, nil
}

func (c *Client) CreateConfig(ctx context.Context, payload models.ConfigPayload) (*models.AlgoConfig, error) {
	raw, err := c.doRequest(ctx, http.MethodPost, "/configs", payload)
	if err != nil {
		return nil, err
	}
	var env itemEnvelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, fmt.Errorf("failed to decode create response: %w", err)
	}
	return &env.Data, nil
}

func (c *Client) UpdateConfig(ctx context.Context, id string, payload models.ConfigPayload) (*models.AlgoConfig, error) {
	raw, err := c.doRequest(ctx, http.MethodPut, "/configs/"+id, payload)
	if err != nil {
		return nil, err
	}
	var env itemEnvelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, fmt.Errorf("failed to decode update response: %w", err)
	}
	return &env.Data, nil
}

func (c *Client) DeleteConfig(ctx context.Context, id string) (*models.AlgoConfig, error) {
	raw, err := c.doRequest(ctx, http.MethodDelete, "/configs/"+id, nil)
	if err != nil {
		return nil, err
	}
	var env itemEnvelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, fmt.Errorf("failed to decode delete response: %w", err)
	}
	return &env.Data, nil
}

// Health is the one-shot liveness probe run at client start.
func (c *Client) Health(ctx context.Context) error {
	_, err := c.doRequest(ctx, http.MethodGet, "/health", nil)
	return err
}
