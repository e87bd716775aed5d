package search

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestTavilySearch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("method = %s, want POST", r.Method)
		}

		var req tavilyRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		if req.APIKey != "test-key" {
			t.Errorf("api_key = %q, want test-key", req.APIKey)
		}
		if req.Query != "enterprise router pricing" {
			t.Errorf("query = %q", req.Query)
		}
		if req.MaxResults != 2 {
			t.Errorf("max_results = %d, want 2", req.MaxResults)
		}

		json.NewEncoder(w).Encode(map[string]any{
			"results": []map[string]string{
				{"title": "Router roundup", "url": "https://example.com/a", "content": "Latest prices"},
				{"title": "Buyer guide", "url": "https://example.com/b", "content": "What to buy"},
			},
		})
	}))
	defer srv.Close()

	c := NewTavilyClient("test-key", WithEndpoint(srv.URL))
	results, err := c.Search(context.Background(), "enterprise router pricing", 2)
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}

	if len(results) != 2 {
		t.Fatalf("len(results) = %d, want 2", len(results))
	}
	if results[0].Title != "Router roundup" {
		t.Errorf("results[0].Title = %q", results[0].Title)
	}
	if results[0].URL != "https://example.com/a" {
		t.Errorf("results[0].URL = %q", results[0].URL)
	}
	if results[0].Snippet != "Latest prices" {
		t.Errorf("results[0].Snippet = %q", results[0].Snippet)
	}
}

func TestTavilySearchAuthError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "invalid api key", http.StatusUnauthorized)
	}))
	defer srv.Close()

	c := NewTavilyClient("bad-key", WithEndpoint(srv.URL))
	_, err := c.Search(context.Background(), "anything", 3)
	if err == nil {
		t.Fatal("Search() expected error, got nil")
	}

	var pe *ProviderError
	if !errors.As(err, &pe) {
		t.Fatalf("error type = %T, want *ProviderError", err)
	}
	if pe.Reason != ReasonAuth {
		t.Errorf("reason = %q, want %q", pe.Reason, ReasonAuth)
	}
}

func TestTavilySearchServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "oops", http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := NewTavilyClient("key", WithEndpoint(srv.URL))
	_, err := c.Search(context.Background(), "anything", 3)
	if err == nil {
		t.Fatal("Search() expected error, got nil")
	}
	if got := Reason(err); got != ReasonTransport {
		t.Errorf("reason = %q, want %q", got, ReasonTransport)
	}
}

func TestTavilySearchTimeout(t *testing.T) {
	block := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-block
	}))
	defer srv.Close()
	defer close(block)

	c := NewTavilyClient("key", WithEndpoint(srv.URL), WithTimeout(50*time.Millisecond))
	_, err := c.Search(context.Background(), "anything", 3)
	if err == nil {
		t.Fatal("Search() expected timeout error, got nil")
	}
	if got := Reason(err); got != ReasonTimeout {
		t.Errorf("reason = %q, want %q", got, ReasonTimeout)
	}
}

func TestTavilySearchUnreachable(t *testing.T) {
	c := NewTavilyClient("key", WithEndpoint("http://127.0.0.1:1"))
	_, err := c.Search(context.Background(), "anything", 3)
	if err == nil {
		t.Fatal("Search() expected error, got nil")
	}
	if got := Reason(err); got != ReasonTransport {
		t.Errorf("reason = %q, want %q", got, ReasonTransport)
	}
}
