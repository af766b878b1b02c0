package setu

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/arthverse/finance-service/internal/config"
	"github.com/sirupsen/logrus"
)

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func newTestClient(t *testing.T, handler http.Handler) (*Client, *httptest.Server, *atomic.Int32) {
	t.Helper()
	var tokenCalls atomic.Int32
	mux := http.NewServeMux()
	mux.HandleFunc("/v1/users/login", func(w http.ResponseWriter, r *http.Request) {
		tokenCalls.Add(1)
		if r.Header.Get("client") != "bridge" {
			t.Errorf("missing client: bridge header")
		}
		var body map[string]string
		json.NewDecoder(r.Body).Decode(&body)
		if body["grant_type"] != "client_credentials" {
			t.Errorf("unexpected grant_type %q", body["grant_type"])
		}
		json.NewEncoder(w).Encode(map[string]any{"access_token": "tok-123", "expiresIn": 300})
	})
	mux.Handle("/", handler)
	srv := httptest.NewServer(mux)

	cfg := &config.Config{
		SetuBaseURL:           srv.URL,
		SetuAuthURL:           srv.URL + "/v1/users/login",
		SetuClientID:          "client",
		SetuClientSecret:      "secret",
		SetuProductInstanceID: "pi-1",
	}
	return NewClient(cfg, testLogger()), srv, &tokenCalls
}

func TestCreateConsent(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/consents" || r.Method != http.MethodPost {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		if auth := r.Header.Get("Authorization"); auth != "Bearer tok-123" {
			t.Errorf("unexpected auth header %q", auth)
		}
		if pi := r.Header.Get("x-product-instance-id"); pi != "pi-1" {
			t.Errorf("unexpected product instance header %q", pi)
		}
		var payload map[string]any
		json.NewDecoder(r.Body).Decode(&payload)
		if payload["vua"] != "9876543210@setu" {
			t.Errorf("unexpected vua %v", payload["vua"])
		}
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(map[string]string{
			"id":     "consent-1",
			"url":    "https://anumati.setu.co/consent-1",
			"status": "PENDING",
		})
	})
	c, srv, _ := newTestClient(t, handler)
	defer srv.Close()

	now := time.Now()
	consent, err := c.CreateConsent(context.Background(), "9876543210", now.AddDate(-1, 0, 0), now, 12)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if consent.ID != "consent-1" || consent.Status != "PENDING" {
		t.Errorf("unexpected consent %+v", consent)
	}
}

func TestTokenIsCached(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{"id": "consent-1", "status": "ACTIVE"})
	})
	c, srv, tokenCalls := newTestClient(t, handler)
	defer srv.Close()

	ctx := context.Background()
	for i := 0; i < 3; i++ {
		if _, err := c.ConsentStatus(ctx, "consent-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	if got := tokenCalls.Load(); got != 1 {
		t.Errorf("expected 1 token fetch for 3 requests, got %d", got)
	}
}

type fakeTokenCache struct {
	values map[string]string
	sets   int
}

func newFakeTokenCache() *fakeTokenCache {
	return &fakeTokenCache{values: map[string]string{}}
}

func (f *fakeTokenCache) Get(ctx context.Context, key string) (string, bool) {
	v, ok := f.values[key]
	return v, ok
}

func (f *fakeTokenCache) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	f.values[key] = value
	f.sets++
	return nil
}

func TestTokenSharedThroughCache(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{"id": "consent-1", "status": "ACTIVE"})
	})
	c, srv, tokenCalls := newTestClient(t, handler)
	defer srv.Close()

	tc := newFakeTokenCache()
	c.WithTokenCache(tc)

	ctx := context.Background()
	if _, err := c.ConsentStatus(ctx, "consent-1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tc.values[tokenCacheKey] != "tok-123" {
		t.Errorf("token was not written to the shared cache: %v", tc.values)
	}
	if tc.sets != 1 {
		t.Errorf("expected 1 cache write, got %d", tc.sets)
	}

	// a fresh client with the same cache reuses the token without
	// hitting the auth endpoint again
	cfg := &config.Config{
		SetuBaseURL:           srv.URL,
		SetuAuthURL:           srv.URL + "/v1/users/login",
		SetuProductInstanceID: "pi-1",
	}
	other := NewClient(cfg, testLogger()).WithTokenCache(tc)
	if _, err := other.ConsentStatus(ctx, "consent-1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := tokenCalls.Load(); got != 1 {
		t.Errorf("expected 1 token fetch across both clients, got %d", got)
	}
}

func TestConsentStatus_Error(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		io.WriteString(w, `{"error":"not found"}`)
	})
	c, srv, _ := newTestClient(t, handler)
	defer srv.Close()

	if _, err := c.ConsentStatus(context.Background(), "missing"); err == nil {
		t.Fatal("expected error for 404 response")
	}
}

func TestCreateDataSessionAndFetch(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodPost && r.URL.Path == "/sessions":
			var payload map[string]any
			json.NewDecoder(r.Body).Decode(&payload)
			if payload["consentId"] != "consent-1" {
				t.Errorf("unexpected consentId %v", payload["consentId"])
			}
			json.NewEncoder(w).Encode(map[string]string{"id": "session-1", "status": "PENDING"})
		case r.Method == http.MethodGet && r.URL.Path == "/sessions/session-1":
			io.WriteString(w, `{"id":"session-1","status":"COMPLETED","payload":[{"fipID":"bank-1"}]}`)
		default:
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
	})
	c, srv, _ := newTestClient(t, handler)
	defer srv.Close()

	ctx := context.Background()
	sess, err := c.CreateDataSession(ctx, "consent-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sess.ID != "session-1" {
		t.Errorf("unexpected session %+v", sess)
	}

	data, err := c.FetchData(ctx, "session-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if data.Status != "COMPLETED" || len(data.Payload) == 0 {
		t.Errorf("unexpected data %+v", data)
	}
}

func TestAuthFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		io.WriteString(w, `{"error":"bad credentials"}`)
	}))
	defer srv.Close()

	cfg := &config.Config{
		SetuBaseURL: srv.URL,
		SetuAuthURL: srv.URL + "/v1/users/login",
	}
	c := NewClient(cfg, testLogger())
	if _, err := c.ConsentStatus(context.Background(), "consent-1"); err == nil {
		t.Fatal("expected error when authentication fails")
	}
}
