// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package decode

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/etnolekt/dwarconv/internal/httputil"
)

func init() {
	// Use a tiny base delay so retry tests finish quickly.
	httputil.RetryBaseDelay = 1 * time.Millisecond
}

func TestHTTPBackend_Decode(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("method = %s, want POST", r.Method)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("content type = %q, want application/json", ct)
		}

		var req decodeRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("decoding request: %v", err)
		}
		if len(req.IDCodes) != 2 || req.IDCodes[0] != "ABC" {
			t.Errorf("idcodes = %v, want [ABC DEF]", req.IDCodes)
		}

		w.Write([]byte("0:C1=CC=CC=C1\n1:CCO\n"))
	}))
	defer ts.Close()

	b := &HTTPBackend{URL: ts.URL, Client: ts.Client(), UserAgent: "dwarconv/test"}
	out, err := b.Decode(context.Background(), []string{"ABC", "DEF"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "0:C1=CC=CC=C1\n1:CCO\n" {
		t.Errorf("output = %q", out)
	}
}

func TestHTTPBackend_RetriesRateLimit(t *testing.T) {
	var calls int32
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&calls, 1) == 1 {
			w.WriteHeader(http.StatusTooManyRequests)
			return
		}

		// The retried request must carry the batch again.
		var req decodeRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("decoding retried request: %v", err)
		}
		if len(req.IDCodes) != 1 || req.IDCodes[0] != "ABC" {
			t.Errorf("retried idcodes = %v, want [ABC]", req.IDCodes)
		}

		w.Write([]byte("0:CCO\n"))
	}))
	defer ts.Close()

	b := &HTTPBackend{URL: ts.URL, Client: ts.Client(), MaxRetries: 3}
	out, err := b.Decode(context.Background(), []string{"ABC"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "0:CCO\n" {
		t.Errorf("output = %q, want %q", out, "0:CCO\n")
	}
	if got := atomic.LoadInt32(&calls); got != 2 {
		t.Errorf("calls = %d, want 2", got)
	}
}

func TestHTTPBackend_ServerError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer ts.Close()

	b := &HTTPBackend{URL: ts.URL, Client: ts.Client()}
	_, err := b.Decode(context.Background(), []string{"ABC"})
	if err == nil {
		t.Fatal("expected error for 500 response")
	}
}

func TestHTTPBackend_Unreachable(t *testing.T) {
	b := &HTTPBackend{
		URL:    "http://127.0.0.1:1/decode",
		Client: &http.Client{Timeout: 100 * time.Millisecond},
	}
	_, err := b.Decode(context.Background(), []string{"ABC"})
	if err == nil {
		t.Fatal("expected error for unreachable service")
	}
}
