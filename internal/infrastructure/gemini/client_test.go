package gemini

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"synerh/internal/config"
)

func TestGenerateContent_Success(t *testing.T) {
	var calls int
	var gotPath, gotKey string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		gotPath = r.URL.Path
		gotKey = r.Header.Get("x-goog-api-key")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"candidates":[{"content":{"parts":[{"text":"olá!"}]}}]}`))
	}))
	defer srv.Close()

	c := NewClient(config.GeminiConfig{APIKey: "test-key", Model: "gemini-2.5-flash", BaseURL: srv.URL})

	text, err := c.GenerateContent(context.Background(), "oi")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if text != "olá!" {
		t.Fatalf("text = %q, want %q", text, "olá!")
	}
	if calls != 1 {
		t.Fatalf("expected exactly one request, got %d", calls)
	}
	if gotPath != "/v1beta/models/gemini-2.5-flash:generateContent" {
		t.Fatalf("unexpected path %q", gotPath)
	}
	if gotKey != "test-key" {
		t.Fatalf("api key header = %q", gotKey)
	}
}

func TestGenerateContent_NonSuccessStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := NewClient(config.GeminiConfig{APIKey: "test-key", BaseURL: srv.URL})

	_, err := c.GenerateContent(context.Background(), "oi")
	var statusErr *StatusError
	if !errors.As(err, &statusErr) {
		t.Fatalf("expected StatusError, got %v", err)
	}
	if statusErr.StatusCode != 500 {
		t.Fatalf("status = %d, want 500", statusErr.StatusCode)
	}
}

func TestGenerateContent_EmptyCandidates(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"candidates":[]}`))
	}))
	defer srv.Close()

	c := NewClient(config.GeminiConfig{APIKey: "test-key", BaseURL: srv.URL})

	text, err := c.GenerateContent(context.Background(), "oi")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if text != "" {
		t.Fatalf("text = %q, want empty for missing candidates", text)
	}
}

func TestGenerateContent_NotConfigured(t *testing.T) {
	var calls int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
	}))
	defer srv.Close()

	c := NewClient(config.GeminiConfig{APIKey: "", BaseURL: srv.URL})

	_, err := c.GenerateContent(context.Background(), "oi")
	if !errors.Is(err, ErrNotConfigured) {
		t.Fatalf("expected ErrNotConfigured, got %v", err)
	}
	if calls != 0 {
		t.Fatalf("expected zero requests, got %d", calls)
	}
}

func TestGenerateContent_RequestBody(t *testing.T) {
	var body string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b, _ := io.ReadAll(r.Body)
		body = string(b)
		_, _ = w.Write([]byte(`{"candidates":[{"content":{"parts":[{"text":"ok"}]}}]}`))
	}))
	defer srv.Close()

	c := NewClient(config.GeminiConfig{APIKey: "k", BaseURL: srv.URL})
	_, _ = c.GenerateContent(context.Background(), "meu prompt")

	if !strings.Contains(body, `"contents"`) || !strings.Contains(body, "meu prompt") {
		t.Fatalf("unexpected request body: %q", body)
	}
}
