// Package notestore pushes built outline trees into an external
// note/journal store over HTTP: one node per heading path, paragraph text
// as the node value, parent-child links between headings.
package notestore

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// Client communicates with the note store HTTP API.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

func NewClient(baseURL, apiKey string) *Client {
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// NoteRequest is the body for PUT /notes/{key}.
type NoteRequest struct {
	Title  string `json:"title"`
	Text   string `json:"text,omitempty"`
	Level  int    `json:"level,omitempty"`
	Source string `json:"source,omitempty"`
}

// LinkRequest is the body for PUT /links.
type LinkRequest struct {
	From string `json:"from_key"`
	To   string `json:"to_key"`
}

// PutNote stores or updates a note at the given key path.
func (c *Client) PutNote(ctx context.Context, key string, req NoteRequest) error {
	u := fmt.Sprintf("%s/notes/%s", c.baseURL, url.PathEscape(key))
	return c.put(ctx, u, req)
}

// PutLink records a parent-child link between two notes.
func (c *Client) PutLink(ctx context.Context, req LinkRequest) error {
	return c.put(ctx, c.baseURL+"/links", req)
}

func (c *Client) put(ctx context.Context, u string, body any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("encode request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPut, u, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &RetryableError{Message: err.Error()}
	}
	defer resp.Body.Close()
	respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))

	switch {
	case resp.StatusCode >= 500 || resp.StatusCode == http.StatusTooManyRequests:
		return &RetryableError{StatusCode: resp.StatusCode, Message: string(respBody)}
	case resp.StatusCode >= 300:
		return fmt.Errorf("note store status %d: %s", resp.StatusCode, respBody)
	}
	return nil
}

// Close releases resources.
func (c *Client) Close() {
	c.httpClient.CloseIdleConnections()
}
