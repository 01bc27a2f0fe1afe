package ai_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"resume-builder/internal/config"
	"resume-builder/pkg/ai"
)

func newTestClient(url string) *ai.Client {
	return ai.NewClient(&config.AIConfig{APIURL: url, APIKey: "test-key", Model: "test-model"})
}

func TestGenerateSummary(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer test-key" {
			t.Errorf("missing auth header, got %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"choices":[{"message":{"content":"Seasoned engineer."}}]}`))
	}))
	defer srv.Close()

	got, err := newTestClient(srv.URL).GenerateSummary(context.Background(), "write a summary")
	if err != nil {
		t.Fatalf("GenerateSummary failed: %v", err)
	}
	if got != "Seasoned engineer." {
		t.Errorf("got %q", got)
	}
}

func TestGenerateSummary_RetriesOnOverload(t *testing.T) {
	attempts := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts++
		if attempts < 3 {
			w.WriteHeader(http.StatusTooManyRequests)
			return
		}
		w.Write([]byte(`{"choices":[{"message":{"content":"ok"}}]}`))
	}))
	defer srv.Close()

	got, err := newTestClient(srv.URL).GenerateSummary(context.Background(), "p")
	if err != nil {
		t.Fatalf("expected retry to succeed, got %v", err)
	}
	if got != "ok" {
		t.Errorf("got %q", got)
	}
	if attempts != 3 {
		t.Errorf("expected 3 attempts, got %d", attempts)
	}
}

func TestGenerateSummary_EmptyChoices(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"choices":[]}`))
	}))
	defer srv.Close()

	if _, err := newTestClient(srv.URL).GenerateSummary(context.Background(), "p"); err == nil {
		t.Error("expected error for empty choices")
	}
}
