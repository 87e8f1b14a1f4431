package upcitemdb

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestLookupTitleFirstItemWins(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("upc"); got != "885909950805" {
			t.Errorf("upc = %q", got)
		}
		w.Write([]byte(`{"items":[{"title":" Apple Lightning Kabel "},{"title":"second"}]}`))
	}))
	defer srv.Close()

	client := NewWithBaseURL(srv.URL, time.Second)
	title, err := client.LookupTitle(context.Background(), "885909950805")
	if err != nil {
		t.Fatalf("LookupTitle: %v", err)
	}
	if title != "Apple Lightning Kabel" {
		t.Fatalf("title = %q", title)
	}
}

func TestLookupTitleEmptyCatalog(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"items":[]}`))
	}))
	defer srv.Close()

	client := NewWithBaseURL(srv.URL, time.Second)
	title, err := client.LookupTitle(context.Background(), "0000000000000")
	if err != nil {
		t.Fatalf("LookupTitle: %v", err)
	}
	if title != "" {
		t.Fatalf("expected empty title, got %q", title)
	}
}

func TestLookupTitleRateLimitedIsMiss(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "slow down", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	client := NewWithBaseURL(srv.URL, time.Second)
	title, err := client.LookupTitle(context.Background(), "1234567890123")
	if err != nil {
		t.Fatalf("a 429 must not be an error: %v", err)
	}
	if title != "" {
		t.Fatalf("expected empty title, got %q", title)
	}
}
