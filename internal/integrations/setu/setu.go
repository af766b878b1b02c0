package setu

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/arthverse/finance-service/internal/config"
	"github.com/sirupsen/logrus"
)

const (
	tokenCacheKey = "setu:access-token"

	// how long an in-process copy of a cache-served token is trusted
	// before the shared store is consulted again
	tokenRecheckInterval = 30 * time.Second
)

// TokenCache shares access tokens between processes. Satisfied by
// cache.Cache.
type TokenCache interface {
	Get(ctx context.Context, key string) (string, bool)
	Set(ctx context.Context, key, value string, ttl time.Duration) error
}

// Client talks to the Setu Account Aggregator FIU APIs. Access tokens
// are short-lived, so the client caches one and refreshes it with a
// 50 second slack before expiry. With a TokenCache attached the token
// is also shared through Redis so restarts and replicas reuse it.
type Client struct {
	baseURL           string
	authURL           string
	clientID          string
	clientSecret      string
	productInstanceID string
	httpClient        *http.Client
	log               *logrus.Logger
	tokenCache        TokenCache

	mu          sync.Mutex
	accessToken string
	tokenExpiry time.Time
}

// NewClient initializes a Setu AA client
func NewClient(cfg *config.Config, log *logrus.Logger) *Client {
	return &Client{
		baseURL:           cfg.SetuBaseURL,
		authURL:           cfg.SetuAuthURL,
		clientID:          cfg.SetuClientID,
		clientSecret:      cfg.SetuClientSecret,
		productInstanceID: cfg.SetuProductInstanceID,
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
		log: log,
	}
}

// WithTokenCache attaches a shared token store
func (c *Client) WithTokenCache(tc TokenCache) *Client {
	c.tokenCache = tc
	return c
}

// ConsentResponse is the subset of the Setu consent object we track.
type ConsentResponse struct {
	ID     string `json:"id"`
	URL    string `json:"url"`
	Status string `json:"status"`
	VUA    string `json:"vua"`
}

// SessionResponse is a data session created against an approved consent.
type SessionResponse struct {
	ID        string          `json:"id"`
	Status    string          `json:"status"`
	Payload   json.RawMessage `json:"payload"`
	Format    string          `json:"format,omitempty"`
	ConsentID string          `json:"consentId,omitempty"`
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   int    `json:"expiresIn"`
}

func (c *Client) getAccessToken(ctx context.Context) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.accessToken != "" && time.Now().Before(c.tokenExpiry) {
		return c.accessToken, nil
	}

	if c.tokenCache != nil {
		if token, ok := c.tokenCache.Get(ctx, tokenCacheKey); ok && token != "" {
			c.accessToken = token
			c.tokenExpiry = time.Now().Add(tokenRecheckInterval)
			return token, nil
		}
	}

	c.log.Info("Fetching new Setu access token")

	body, _ := json.Marshal(map[string]string{
		"clientID":   c.clientID,
		"secret":     c.clientSecret,
		"grant_type": "client_credentials",
	})

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.authURL, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to create token request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("client", "bridge")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("token request failed: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read token response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("setu authentication failed: status %d: %s", resp.StatusCode, raw)
	}

	var tok tokenResponse
	if err := json.Unmarshal(raw, &tok); err != nil {
		return "", fmt.Errorf("failed to parse token response: %w", err)
	}
	if tok.AccessToken == "" {
		return "", fmt.Errorf("setu token response missing access_token")
	}

	expiresIn := tok.ExpiresIn
	if expiresIn == 0 {
		expiresIn = 300
	}
	ttl := time.Duration(expiresIn-50) * time.Second
	c.accessToken = tok.AccessToken
	c.tokenExpiry = time.Now().Add(ttl)

	if c.tokenCache != nil {
		if err := c.tokenCache.Set(ctx, tokenCacheKey, tok.AccessToken, ttl); err != nil {
			c.log.Debugf("Failed to share Setu token: %v", err)
		}
	}

	return c.accessToken, nil
}

func (c *Client) doJSON(ctx context.Context, method, url string, payload any, out any) error {
	token, err := c.getAccessToken(ctx)
	if err != nil {
		return err
	}

	var body io.Reader
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("x-product-instance-id", c.productInstanceID)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return fmt.Errorf("setu request failed: status %d: %s", resp.StatusCode, raw)
	}

	if out != nil {
		if err := json.Unmarshal(raw, out); err != nil {
			return fmt.Errorf("failed to parse response: %w", err)
		}
	}
	return nil
}

// CreateConsent creates a consent request binding a user's phone number
// (as a VUA, phone@setu) to a data range and duration.
func (c *Client) CreateConsent(ctx context.Context, phoneNumber string, from, to time.Time, durationMonths int) (*ConsentResponse, error) {
	c.log.Infof("Creating Setu consent for VUA %s@setu", phoneNumber)

	payload := map[string]any{
		"vua": phoneNumber + "@setu",
		"dataRange": map[string]string{
			"from": from.UTC().Format("2006-01-02T15:04:05Z"),
			"to":   to.UTC().Format("2006-01-02T15:04:05Z"),
		},
		"consentDuration": map[string]string{
			"unit":  "MONTH",
			"value": fmt.Sprintf("%d", durationMonths),
		},
		"context": []any{},
	}

	var out ConsentResponse
	if err := c.doJSON(ctx, http.MethodPost, c.baseURL+"/consents", payload, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ConsentStatus returns the current state of a consent request.
func (c *Client) ConsentStatus(ctx context.Context, consentID string) (*ConsentResponse, error) {
	var out ConsentResponse
	if err := c.doJSON(ctx, http.MethodGet, c.baseURL+"/consents/"+consentID, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateDataSession opens a data session against an approved consent,
// covering the trailing year.
func (c *Client) CreateDataSession(ctx context.Context, consentID string) (*SessionResponse, error) {
	c.log.Infof("Creating Setu data session for consent %s", consentID)

	now := time.Now().UTC()
	payload := map[string]any{
		"consentId": consentID,
		"dataRange": map[string]string{
			"from": now.AddDate(-1, 0, 0).Format("2006-01-02T15:04:05Z"),
			"to":   now.Format("2006-01-02T15:04:05Z"),
		},
		"format": "json",
	}

	var out SessionResponse
	if err := c.doJSON(ctx, http.MethodPost, c.baseURL+"/sessions", payload, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// FetchData retrieves the financial information payload for a session.
func (c *Client) FetchData(ctx context.Context, sessionID string) (*SessionResponse, error) {
	var out SessionResponse
	if err := c.doJSON(ctx, http.MethodGet, c.baseURL+"/sessions/"+sessionID, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
