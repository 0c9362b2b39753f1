package fetcher

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestCountryPage(t *testing.T) {
	var gotPath, gotUA string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotUA = r.Header.Get("User-Agent")
		w.Write([]byte("<html><p>1,234 surnames</p></html>"))
	}))
	defer server.Close()

	f := New(server.URL, "Mozilla/5.0", 5*time.Second)
	body, err := f.CountryPage(context.Background(), "iceland", Surnames)
	if err != nil {
		t.Fatalf("CountryPage() failed: %v", err)
	}

	if body != "<html><p>1,234 surnames</p></html>" {
		t.Errorf("CountryPage() body = %q", body)
	}
	if gotPath != "/iceland/surnames" {
		t.Errorf("request path = %q, want %q", gotPath, "/iceland/surnames")
	}
	if gotUA != "Mozilla/5.0" {
		t.Errorf("User-Agent = %q, want %q", gotUA, "Mozilla/5.0")
	}
}

func TestCountryPageStatusError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	f := New(server.URL, "Mozilla/5.0", 5*time.Second)
	_, err := f.CountryPage(context.Background(), "atlantis", Forenames)
	if err == nil {
		t.Fatal("CountryPage() succeeded on 404, want error")
	}

	var netErr *NetworkError
	if !errors.As(err, &netErr) {
		t.Fatalf("error is %T, want *NetworkError", err)
	}
	if netErr.URL != server.URL+"/atlantis/forenames" {
		t.Errorf("NetworkError.URL = %q", netErr.URL)
	}
}

func TestCountryPageConnectionError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // connection refused from here on

	f := New(server.URL, "Mozilla/5.0", 2*time.Second)
	_, err := f.CountryPage(context.Background(), "iceland", Surnames)
	if err == nil {
		t.Fatal("CountryPage() succeeded against closed server, want error")
	}

	var netErr *NetworkError
	if !errors.As(err, &netErr) {
		t.Fatalf("error is %T, want *NetworkError", err)
	}
}
