package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
)

// DefaultBaseURL is the public template catalog API.
const DefaultBaseURL = "https://www.toptal.com/developers/gitignore/api"

const userAgent = "autogitignore-tui"

// templateRecord mirrors one entry of the list endpoint's JSON payload.
type templateRecord struct {
	Name     string `json:"name"`
	Contents string `json:"contents"`
}

// ClientConfig holds the settings for a catalog Client.
type ClientConfig struct {
	// BaseURL is the API root. Defaults to DefaultBaseURL.
	BaseURL string

	// HTTPClient is used for all requests. Defaults to http.DefaultClient.
	HTTPClient *http.Client
}

// Client fetches the template catalog from the remote endpoint.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a catalog client from the given configuration.
func NewClient(cfg ClientConfig) *Client {
	baseURL := strings.TrimRight(cfg.BaseURL, "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{baseURL: baseURL, httpClient: httpClient}
}

// Fetch performs one GET against the list endpoint and returns the resulting
// snapshot. Non-2xx responses and malformed payloads are fetch failures.
func (c *Client) Fetch(ctx context.Context) (Snapshot, error) {
	url := c.baseURL + "/list?format=json"
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return Snapshot{}, fmt.Errorf("build catalog request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return Snapshot{}, fmt.Errorf("fetch template catalog: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return Snapshot{}, fmt.Errorf("template catalog returned %s", resp.Status)
	}

	var payload map[string]templateRecord
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return Snapshot{}, fmt.Errorf("decode template catalog: %w", err)
	}

	contents := make(map[string]string, len(payload))
	for _, record := range payload {
		contents[record.Name] = record.Contents
	}
	return newSnapshot(contents), nil
}
