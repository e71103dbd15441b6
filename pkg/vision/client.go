// Package vision calls an external vision model to describe architectural
// renders. The raw model text it returns is untrusted; normalization into
// the material schema happens in the core pipeline.
package vision

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"
)

const (
	openRouterURL = "https://openrouter.ai/api/v1/chat/completions"
	defaultModel  = "google/gemini-2.0-flash-exp:free"

	defaultTimeout = 30 * time.Second
	maxAttempts    = 4
	initialBackoff = time.Second
)

// Client talks to the OpenRouter chat-completions API.
type Client struct {
	apiKey     string
	model      string
	httpClient *http.Client
	baseURL    string
	backoff    time.Duration
}

// Message is a chat message with mixed text/image content.
type Message struct {
	Role    string        `json:"role"`
	Content []ContentPart `json:"content"`
}

// ContentPart is one part of message content (text or image).
type ContentPart struct {
	Type     string    `json:"type"`
	Text     string    `json:"text,omitempty"`
	ImageURL *ImageURL `json:"image_url,omitempty"`
}

// ImageURL wraps an image locator, here always a base64 data URL.
type ImageURL struct {
	URL string `json:"url"`
}

// Request is the API request body.
type Request struct {
	Model    string    `json:"model"`
	Messages []Message `json:"messages"`
}

// Response is the API response body.
type Response struct {
	ID      string   `json:"id"`
	Choices []Choice `json:"choices"`
}

// Choice is a single completion choice.
type Choice struct {
	Message struct {
		Role    string `json:"role"`
		Content string `json:"content"`
	} `json:"message"`
	FinishReason string `json:"finish_reason"`
}

// NewClient creates a Client. An empty apiKey falls back to the
// OPENROUTER_API_KEY environment variable; an empty model uses the default.
func NewClient(apiKey, model string) (*Client, error) {
	if apiKey == "" {
		apiKey = os.Getenv("OPENROUTER_API_KEY")
	}
	if apiKey == "" {
		return nil, fmt.Errorf("no OpenRouter API key provided")
	}
	if model == "" {
		model = defaultModel
	}
	return &Client{
		apiKey:     apiKey,
		model:      model,
		httpClient: &http.Client{Timeout: defaultTimeout},
		baseURL:    openRouterURL,
		backoff:    initialBackoff,
	}, nil
}

// Describe sends the render to the vision model and returns the raw text of
// the first choice. Rate limits and transient server errors are retried with
// exponential backoff, bounded by maxAttempts.
func (c *Client) Describe(ctx context.Context, imageBytes []byte) (string, error) {
	body, err := json.Marshal(c.buildRequest(imageBytes))
	if err != nil {
		return "", fmt.Errorf("marshaling request: %w", err)
	}

	resp, err := c.doWithRetry(ctx, body)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return "", fmt.Errorf("vision API returned status %d: %s", resp.StatusCode, string(respBody))
	}

	var parsed Response
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", fmt.Errorf("decoding response: %w", err)
	}
	if len(parsed.Choices) == 0 {
		return "", fmt.Errorf("vision API returned no choices")
	}
	return parsed.Choices[0].Message.Content, nil
}

func (c *Client) buildRequest(imageBytes []byte) *Request {
	dataURL := "data:image/jpeg;base64," + base64.StdEncoding.EncodeToString(imageBytes)
	return &Request{
		Model: c.model,
		Messages: []Message{{
			Role: "user",
			Content: []ContentPart{
				{Type: "text", Text: describePrompt},
				{Type: "image_url", ImageURL: &ImageURL{URL: dataURL}},
			},
		}},
	}
}

// doWithRetry retries rate-limited (429) and 5xx responses with exponential
// backoff. Other statuses, including hard client errors, return immediately.
func (c *Client) doWithRetry(ctx context.Context, body []byte) (*http.Response, error) {
	backoff := c.backoff
	var lastErr error

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, bytes.NewReader(body))
		if err != nil {
			return nil, err
		}
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", "Bearer "+c.apiKey)

		resp, err := c.httpClient.Do(req)
		if err != nil {
			lastErr = err
		} else if resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500 {
			resp.Body.Close()
			lastErr = fmt.Errorf("vision API returned status %d", resp.StatusCode)
		} else {
			return resp, nil
		}

		if attempt == maxAttempts {
			break
		}
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(backoff):
		}
		backoff *= 2
	}
	return nil, fmt.Errorf("vision API request failed after %d attempts: %w", maxAttempts, lastErr)
}
