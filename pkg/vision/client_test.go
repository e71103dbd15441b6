package vision

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func newTestClient(srv *httptest.Server) *Client {
	return &Client{
		apiKey:     "test-key",
		model:      "test/model",
		httpClient: srv.Client(),
		baseURL:    srv.URL,
		backoff:    time.Millisecond,
	}
}

func completionBody(content string) string {
	resp := Response{Choices: []Choice{{}}}
	resp.Choices[0].Message.Role = "assistant"
	resp.Choices[0].Message.Content = content
	data, _ := json.Marshal(resp)
	return string(data)
}

func TestDescribeSendsImageAndReturnsContent(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer test-key" {
			t.Errorf("authorization header = %q", got)
		}
		var req Request
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("decoding request: %v", err)
		}
		if req.Model != "test/model" {
			t.Errorf("model = %q", req.Model)
		}
		if len(req.Messages) != 1 || len(req.Messages[0].Content) != 2 {
			t.Errorf("unexpected message shape: %+v", req.Messages)
		} else {
			img := req.Messages[0].Content[1]
			if img.ImageURL == nil || !strings.HasPrefix(img.ImageURL.URL, "data:image/jpeg;base64,") {
				t.Errorf("image part is not a base64 data URL: %+v", img)
			}
		}
		w.Write([]byte(completionBody(`{"materials": [], "score": 70}`)))
	}))
	defer srv.Close()

	got, err := newTestClient(srv).Describe(context.Background(), []byte{0xff, 0xd8, 0xff})
	if err != nil {
		t.Fatalf("Describe: %v", err)
	}
	if got != `{"materials": [], "score": 70}` {
		t.Fatalf("Describe returned %q", got)
	}
}

func TestDescribeRetriesRateLimits(t *testing.T) {
	t.Parallel()

	var calls int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		if calls < 3 {
			w.WriteHeader(http.StatusTooManyRequests)
			return
		}
		w.Write([]byte(completionBody("recovered")))
	}))
	defer srv.Close()

	got, err := newTestClient(srv).Describe(context.Background(), []byte("img"))
	if err != nil {
		t.Fatalf("Describe after retries: %v", err)
	}
	if got != "recovered" {
		t.Fatalf("Describe returned %q", got)
	}
	if calls != 3 {
		t.Fatalf("server saw %d calls, want 3", calls)
	}
}

func TestDescribeGivesUpAfterMaxAttempts(t *testing.T) {
	t.Parallel()

	var calls int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	_, err := newTestClient(srv).Describe(context.Background(), []byte("img"))
	if err == nil {
		t.Fatal("expected error after exhausting retries")
	}
	if calls != maxAttempts {
		t.Fatalf("server saw %d calls, want %d", calls, maxAttempts)
	}
}

func TestDescribeDoesNotRetryClientErrors(t *testing.T) {
	t.Parallel()

	var calls int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error": "bad request"}`))
	}))
	defer srv.Close()

	_, err := newTestClient(srv).Describe(context.Background(), []byte("img"))
	if err == nil {
		t.Fatal("expected error for 400 response")
	}
	if !strings.Contains(err.Error(), "400") {
		t.Fatalf("error should mention the status: %v", err)
	}
	if calls != 1 {
		t.Fatalf("server saw %d calls, want no retries on 400", calls)
	}
}

func TestDescribeFailsOnEmptyChoices(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"id": "x", "choices": []}`))
	}))
	defer srv.Close()

	if _, err := newTestClient(srv).Describe(context.Background(), []byte("img")); err == nil {
		t.Fatal("expected error for empty choices")
	}
}

func TestNewClientRequiresKey(t *testing.T) {
	t.Setenv("OPENROUTER_API_KEY", "")

	if _, err := NewClient("", ""); err == nil {
		t.Fatal("expected error without an API key")
	}

	c, err := NewClient("explicit", "")
	if err != nil {
		t.Fatalf("NewClient with explicit key: %v", err)
	}
	if c.model != defaultModel {
		t.Fatalf("model = %q, want default", c.model)
	}

	t.Setenv("OPENROUTER_API_KEY", "from-env")
	c, err = NewClient("", "custom/model")
	if err != nil {
		t.Fatalf("NewClient with env key: %v", err)
	}
	if c.apiKey != "from-env" || c.model != "custom/model" {
		t.Fatalf("client = %+v", c)
	}
}
