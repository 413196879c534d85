// Package assist is the outbound client for the external text-understanding
// service that powers AI-assisted contract review. The service is an opaque
// function from (selection, document) to an explanation; callers surface its
// errors verbatim and own any retry decision.
package assist

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// Client talks to the assist service over HTTP.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewClient creates a Client for the given base URL.
func NewClient(baseURL, apiKey string) *Client {
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: 60 * time.Second, // explanations can be slow to generate
		},
	}
}

type explainRequest struct {
	SelectedText    string `json:"selectedText"`
	DocumentContent string `json:"documentContent"`
}

type explainResponse struct {
	Explanation string `json:"explanation"`
}

// Explain asks the service to explain the selected text in the context of
// the full document content.
func (c *Client) Explain(ctx context.Context, selectedText, documentContent string) (string, error) {
	body, err := json.Marshal(explainRequest{
		SelectedText:    selectedText,
		DocumentContent: documentContent,
	})
	if err != nil {
		return "", fmt.Errorf("failed to encode explain request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/explain", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to build explain request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("assist service request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return "", fmt.Errorf("assist service returned status %d", resp.StatusCode)
	}

	var out explainResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("failed to decode assist service response: %w", err)
	}
	return out.Explanation, nil
}
