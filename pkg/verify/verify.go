// Package verify checks channel membership through the Telegram Bot API.
// The game engine never calls this directly; the front-end gate does, then
// records the result on the session.
package verify

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

// DefaultBaseURL is the public Bot API endpoint.
const DefaultBaseURL = "https://api.telegram.org"

// memberStatuses are the chat-member states that count as subscribed.
var memberStatuses = map[string]bool{
	"member":        true,
	"administrator": true,
	"creator":       true,
}

// Client is a minimal Bot API client scoped to membership checks.
type Client struct {
	baseURL    string
	token      string
	channel    string
	httpClient *http.Client
}

// New creates a client for the given bot token and channel (e.g. "@mychannel").
// An empty baseURL selects the public Bot API.
func New(baseURL, token, channel string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL: baseURL,
		token:   token,
		channel: channel,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// Subscribed reports whether userID is a member of the configured channel.
func (c *Client) Subscribed(ctx context.Context, userID int64) (bool, error) {
	params := url.Values{}
	params.Set("chat_id", c.channel)
	params.Set("user_id", strconv.FormatInt(userID, 10))

	var resp struct {
		OK          bool   `json:"ok"`
		Description string `json:"description"`
		Result      struct {
			Status string `json:"status"`
		} `json:"result"`
	}
	if err := c.get(ctx, "/bot"+c.token+"/getChatMember?"+params.Encode(), &resp); err != nil {
		return false, fmt.Errorf("verify.Subscribed: %w", err)
	}
	if !resp.OK {
		return false, fmt.Errorf("verify.Subscribed: api refused: %s", resp.Description)
	}
	return memberStatuses[resp.Result.Status], nil
}

func (c *Client) get(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close() //nolint:errcheck // best-effort close

	if resp.StatusCode >= 400 {
		body, readErr := io.ReadAll(io.LimitReader(resp.Body, 1<<20)) // 1 MB max error body
		if readErr != nil {
			return &HTTPError{StatusCode: resp.StatusCode, Message: fmt.Sprintf("failed to read body: %v", readErr)}
		}
		var apiErr struct {
			Description string `json:"description"`
		}
		if json.Unmarshal(body, &apiErr) == nil && apiErr.Description != "" {
			return &HTTPError{StatusCode: resp.StatusCode, Message: apiErr.Description}
		}
		return &HTTPError{StatusCode: resp.StatusCode, Message: string(body)}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
