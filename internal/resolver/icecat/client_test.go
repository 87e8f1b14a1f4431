package icecat

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestLookupHit(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("GTIN"); got != "4006381333931" {
			t.Errorf("GTIN = %q", got)
		}
		if got := r.URL.Query().Get("Language"); got != "de" {
			t.Errorf("Language = %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"data": {
				"GeneralInfo": {
					"Title": "Stabilo Boss Textmarker",
					"Category": {"Name": {"Value": "Schreibwaren"}},
					"Brand": "Stabilo"
				}
			}
		}`))
	}))
	defer srv.Close()

	client := NewWithBaseURL("openIcecat-live", srv.URL, time.Second)
	result, err := client.Lookup(context.Background(), "4006381333931", "de")
	if err != nil {
		t.Fatalf("Lookup: %v", err)
	}
	if result == nil {
		t.Fatal("expected a result")
	}
	if result.Title != "Stabilo Boss Textmarker" {
		t.Fatalf("title = %q", result.Title)
	}
	if result.Category != "Schreibwaren" || result.Brand != "Stabilo" {
		t.Fatalf("category = %q, brand = %q", result.Category, result.Brand)
	}
}

func TestLookupNon200IsMiss(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"statusCode":404}`, http.StatusNotFound)
	}))
	defer srv.Close()

	client := NewWithBaseURL("user", srv.URL, time.Second)
	result, err := client.Lookup(context.Background(), "0000000000000", "de")
	if err != nil {
		t.Fatalf("a 404 must not be an error: %v", err)
	}
	if result != nil {
		t.Fatalf("expected nil result, got %+v", result)
	}
}

func TestLookupMalformedBodyIsMiss(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("not json at all"))
	}))
	defer srv.Close()

	client := NewWithBaseURL("user", srv.URL, time.Second)
	result, err := client.Lookup(context.Background(), "1234567890123", "en")
	if err != nil {
		t.Fatalf("garbage body must not be an error: %v", err)
	}
	if result != nil {
		t.Fatalf("expected nil result, got %+v", result)
	}
}

func TestLookupNetworkError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // connection refused from here on

	client := NewWithBaseURL("user", srv.URL, time.Second)
	if _, err := client.Lookup(context.Background(), "1234567890123", "de"); err == nil {
		t.Fatal("expected a transport error")
	}
}
