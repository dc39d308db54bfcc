package slack

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

const defaultBaseURL = "https://slack.com/api"

// APIError reports a Slack Web API reply with ok=false.
type APIError struct {
	Method string
	Code   string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("slack %s failed: %s", e.Method, e.Code)
}

// Client is a minimal Slack Web API client covering chat.postMessage and
// chat.update.
type Client struct {
	httpClient *http.Client
	baseURL    string
	token      string
}

// NewClient returns a client authenticated with a bot token.
func NewClient(token string) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: 30 * time.Second},
		baseURL:    defaultBaseURL,
		token:      token,
	}
}

// apiResponse is the envelope shared by the Web API methods we call.
type apiResponse struct {
	OK        bool   `json:"ok"`
	Error     string `json:"error"`
	Timestamp string `json:"ts"`
}

// PostMessage posts text to a channel and returns the message timestamp.
func (c *Client) PostMessage(ctx context.Context, channel, text string) (string, error) {
	payload := map[string]interface{}{
		"channel": channel,
		"blocks":  contextBlocks(text),
	}
	resp, err := c.call(ctx, "chat.postMessage", payload)
	if err != nil {
		return "", err
	}
	return resp.Timestamp, nil
}

// UpdateMessage replaces the content of a previously posted message.
func (c *Client) UpdateMessage(ctx context.Context, channel, ts, text string) error {
	payload := map[string]interface{}{
		"channel": channel,
		"ts":      ts,
		"blocks":  contextBlocks(text),
	}
	_, err := c.call(ctx, "chat.update", payload)
	return err
}

// contextBlocks wraps text in a single context block holding one mrkdwn
// element, the shape the daily message uses.
func contextBlocks(text string) []map[string]interface{} {
	return []map[string]interface{}{
		{
			"type": "context",
			"elements": []map[string]interface{}{
				{"type": "mrkdwn", "text": text},
			},
		},
	}
}

func (c *Client) call(ctx context.Context, method string, payload map[string]interface{}) (*apiResponse, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("encode %s payload: %w", method, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/"+method, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build %s request: %w", method, err)
	}
	req.Header.Set("Content-Type", "application/json; charset=utf-8")
	req.Header.Set("Authorization", "Bearer "+c.token)

	httpResp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("call %s: %w", method, err)
	}
	defer httpResp.Body.Close()

	var resp apiResponse
	if err := json.NewDecoder(httpResp.Body).Decode(&resp); err != nil {
		return nil, fmt.Errorf("decode %s response: %w", method, err)
	}
	if !resp.OK {
		return nil, &APIError{Method: method, Code: resp.Error}
	}
	return &resp, nil
}
