package config

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

type RemoteAPIConfig struct {
	BaseURL string
}

func NewRemoteAPIConfig() *RemoteAPIConfig {
	baseURL := os.Getenv("NCC_API_BASE_URL")
	if baseURL == "" {
		log.Fatal("NCC_API_BASE_URL not set")
	}
	return &RemoteAPIConfig{BaseURL: strings.TrimRight(baseURL, "/")}
}

// APIError is a non-2xx response from the remote API. Message holds the
// server-provided message text when the body carried one, otherwise a
// generic fallback; handlers show it verbatim.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("remote API error %d: %s", e.Status, e.Message)
}

// APIClient issues requests against the remote cadet-management API. All
// portal data lives behind this boundary; the client keeps no local copy
// beyond what each call returns.
type APIClient struct {
	Config *RemoteAPIConfig
	client *http.Client
}

func NewAPIClient(lc fx.Lifecycle, config *RemoteAPIConfig) *APIClient {
	api := &APIClient{
		Config: config,
		client: &http.Client{Timeout: 10 * time.Second},
	}
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Println("Remote API client initialized for", config.BaseURL)
			return nil
		},
	})
	return api
}

// NewAPIClientDirect builds a client without fx wiring.
func NewAPIClientDirect(baseURL string) *APIClient {
	return &APIClient{
		Config: &RemoteAPIConfig{BaseURL: strings.TrimRight(baseURL, "/")},
		client: &http.Client{Timeout: 10 * time.Second},
	}
}

func (a *APIClient) GetJSON(ctx context.Context, path string, query url.Values, out interface{}) error {
	return a.do(ctx, http.MethodGet, path, query, nil, out)
}

func (a *APIClient) PostJSON(ctx context.Context, path string, body, out interface{}) error {
	return a.do(ctx, http.MethodPost, path, nil, body, out)
}

func (a *APIClient) PutJSON(ctx context.Context, path string, body, out interface{}) error {
	return a.do(ctx, http.MethodPut, path, nil, body, out)
}

// PostParams posts with query parameters and an empty body. The issue-stock
// endpoint takes its input this way rather than as JSON.
func (a *APIClient) PostParams(ctx context.Context, path string, params url.Values, out interface{}) error {
	return a.do(ctx, http.MethodPost, path, params, nil, out)
}

func (a *APIClient) PutParams(ctx context.Context, path string, params url.Values, out interface{}) error {
	return a.do(ctx, http.MethodPut, path, params, nil, out)
}

// PostText posts JSON and returns the response body as plain text, for
// endpoints that answer with a human-readable message instead of JSON.
func (a *APIClient) PostText(ctx context.Context, path string, body interface{}) (string, error) {
	resp, err := a.send(ctx, http.MethodPost, path, nil, body)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()
	if err := checkStatus(resp); err != nil {
		return "", err
	}
	text, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response body: %w", err)
	}
	return strings.TrimSpace(string(text)), nil
}

func (a *APIClient) do(ctx context.Context, method, path string, query url.Values, body, out interface{}) error {
	resp, err := a.send(ctx, method, path, query, body)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if err := checkStatus(resp); err != nil {
		return err
	}
	// 204 is a documented empty-result convention, not an error.
	if resp.StatusCode == http.StatusNoContent || out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

func (a *APIClient) send(ctx context.Context, method, path string, query url.Values, body interface{}) (*http.Response, error) {
	target := a.Config.BaseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request payload: %w", err)
		}
		reader = bytes.NewBuffer(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("X-Request-Id", uuid.NewString())

	resp, err := a.client.Do(req)
	if err != nil {
		log.Printf("Request %s %s failed: %v", method, path, err)
		return nil, fmt.Errorf("failed to reach remote API: %w", err)
	}
	return resp, nil
}

func checkStatus(resp *http.Response) error {
	if resp.StatusCode < 400 {
		return nil
	}
	return &APIError{Status: resp.StatusCode, Message: errorMessage(resp)}
}

// errorMessage pulls the server message out of an error body. Most endpoints
// answer with {"message": ...} or {"error": ...}; a few answer with a bare
// string.
func errorMessage(resp *http.Response) string {
	raw, err := io.ReadAll(io.LimitReader(resp.Body, 4096))
	if err != nil || len(raw) == 0 {
		return ""
	}
	var decoded map[string]interface{}
	if err := json.Unmarshal(raw, &decoded); err == nil {
		if msg, ok := decoded["message"].(string); ok && msg != "" {
			return msg
		}
		if msg, ok := decoded["error"].(string); ok && msg != "" {
			return msg
		}
		return ""
	}
	var text string
	if err := json.Unmarshal(raw, &text); err == nil {
		return text
	}
	return strings.TrimSpace(string(raw))
}

// Message extracts a user-facing error message, preferring the server's own
// text and falling back to the per-action generic.
func Message(err error, fallback string) string {
	if apiErr, ok := err.(*APIError); ok && apiErr.Message != "" {
		return apiErr.Message
	}
	return fallback
}

// Status picks the HTTP status to relay for a failed remote call: the
// remote's own status when it answered, otherwise the fallback (network
// failures and the like).
func Status(err error, fallback int) int {
	if apiErr, ok := err.(*APIError); ok {
		return apiErr.Status
	}
	return fallback
}
