package summarizer

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
)

type chatRequest struct {
	Model    string `json:"model"`
	Messages []struct {
		Role    string `json:"role"`
		Content string `json:"content"`
	} `json:"messages"`
	Temperature float64 `json:"temperature"`
	MaxTokens   int64   `json:"max_tokens"`
}

type fakeOpenAI struct {
	mu       sync.Mutex
	requests []chatRequest
	status   int
	content  string
	raw      string
}

func (f *fakeOpenAI) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	body, _ := io.ReadAll(r.Body)

	var req chatRequest
	_ = json.Unmarshal(body, &req)

	f.mu.Lock()
	f.requests = append(f.requests, req)
	f.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")

	if f.status != 0 && f.status != http.StatusOK {
		w.WriteHeader(f.status)
		_, _ = w.Write([]byte(`{"error": {"message": "upstream exploded", "type": "server_error"}}`))
		return
	}

	if f.raw != "" {
		_, _ = w.Write([]byte(f.raw))
		return
	}

	resp := map[string]any{
		"id":      "chatcmpl-test",
		"object":  "chat.completion",
		"created": 1700000000,
		"model":   req.Model,
		"choices": []map[string]any{
			{
				"index":         0,
				"finish_reason": "stop",
				"message": map[string]any{
					"role":    "assistant",
					"content": f.content,
				},
			},
		},
	}
	_ = json.NewEncoder(w).Encode(resp)
}

func (f *fakeOpenAI) requestCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()

	return len(f.requests)
}

func newTestSummarizer(srv *httptest.Server) *OpenAISummarizer {
	return NewOpenAISummarizer("test-key", srv.URL, "", slog.Default())
}

func TestOpenAISummarizerSendsFixedParameters(t *testing.T) {
	fake := &fakeOpenAI{content: "  삼성전자 실적이 개선되었다.  \n"}
	srv := httptest.NewServer(fake)
	defer srv.Close()

	got := newTestSummarizer(srv).Summarize(context.Background(), "제목: A\n내용: B")
	if got != "삼성전자 실적이 개선되었다." {
		t.Fatalf("unexpected summary: %q", got)
	}

	if fake.requestCount() != 1 {
		t.Fatalf("expected one request, got %d", fake.requestCount())
	}

	req := fake.requests[0]
	if req.Model != DefaultModel {
		t.Fatalf("unexpected model: %q", req.Model)
	}
	if req.Temperature != Temperature {
		t.Fatalf("unexpected temperature: %v", req.Temperature)
	}
	if req.MaxTokens != MaxOutputTokens {
		t.Fatalf("unexpected max tokens: %d", req.MaxTokens)
	}
	if len(req.Messages) != 2 {
		t.Fatalf("expected system and user messages, got %d", len(req.Messages))
	}
	if req.Messages[0].Role != "system" || req.Messages[0].Content != SystemPrompt {
		t.Fatalf("unexpected system message: %+v", req.Messages[0])
	}
	if req.Messages[1].Role != "user" || req.Messages[1].Content != "제목: A\n내용: B에 대해 요약해줘." {
		t.Fatalf("unexpected user message: %+v", req.Messages[1])
	}
}

func TestOpenAISummarizerUsesConfiguredModel(t *testing.T) {
	fake := &fakeOpenAI{content: "ok"}
	srv := httptest.NewServer(fake)
	defer srv.Close()

	s := NewOpenAISummarizer("test-key", srv.URL, "gpt-4o-mini", slog.Default())
	s.Summarize(context.Background(), "content")

	if fake.requests[0].Model != "gpt-4o-mini" {
		t.Fatalf("unexpected model: %q", fake.requests[0].Model)
	}
}

func TestOpenAISummarizerFailureReturnsSentinel(t *testing.T) {
	fake := &fakeOpenAI{status: http.StatusInternalServerError}
	srv := httptest.NewServer(fake)
	defer srv.Close()

	got := newTestSummarizer(srv).Summarize(context.Background(), "content")
	if !strings.HasPrefix(got, FailurePrefix) {
		t.Fatalf("expected failure sentinel, got %q", got)
	}

	if got == FailurePrefix {
		t.Fatalf("expected error message after prefix")
	}

	if fake.requestCount() != 1 {
		t.Fatalf("expected no retries, got %d requests", fake.requestCount())
	}
}

func TestOpenAISummarizerNoChoices(t *testing.T) {
	fake := &fakeOpenAI{raw: `{"id": "x", "object": "chat.completion", "created": 1, "model": "gpt-4o", "choices": []}`}
	srv := httptest.NewServer(fake)
	defer srv.Close()

	got := newTestSummarizer(srv).Summarize(context.Background(), "content")
	if got != FailurePrefix+"response has no choices" {
		t.Fatalf("unexpected summary: %q", got)
	}
}

func TestOpenAISummarizerUnreachable(t *testing.T) {
	srv := httptest.NewServer(&fakeOpenAI{})
	s := newTestSummarizer(srv)
	srv.Close()

	got := s.Summarize(context.Background(), "content")
	if !strings.HasPrefix(got, FailurePrefix) {
		t.Fatalf("expected failure sentinel, got %q", got)
	}
}
