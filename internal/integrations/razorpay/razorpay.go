package razorpay

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/arthverse/finance-service/internal/config"
	"github.com/arthverse/finance-service/internal/utils"
	"github.com/sirupsen/logrus"
)

const defaultBaseURL = "https://api.razorpay.com"

// Client is a minimal Razorpay orders client. Amounts are always in
// paise (49900 is ₹499).
type Client struct {
	baseURL    string
	keyID      string
	keySecret  string
	httpClient *http.Client
	log        *logrus.Logger
}

// NewClient initializes a Razorpay client
func NewClient(cfg *config.Config, log *logrus.Logger) *Client {
	return &Client{
		baseURL:   defaultBaseURL,
		keyID:     cfg.RazorpayKeyID,
		keySecret: cfg.RazorpayKeySecret,
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
		log: log,
	}
}

// Order is the subset of the Razorpay order object we use.
type Order struct {
	ID       string `json:"id"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	Receipt  string `json:"receipt"`
	Status   string `json:"status"`
}

// PaymentDetails as returned by the payments fetch API.
type PaymentDetails struct {
	ID      string `json:"id"`
	OrderID string `json:"order_id"`
	Amount  int64  `json:"amount"`
	Status  string `json:"status"`
	Method  string `json:"method"`
	Email   string `json:"email"`
}

func (c *Client) configured() bool {
	return c.keyID != "" && c.keySecret != ""
}

func (c *Client) do(ctx context.Context, method, path string, payload any, out any) error {
	if !c.configured() {
		return fmt.Errorf("razorpay client not configured: missing API keys")
	}

	var body io.Reader
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.SetBasicAuth(c.keyID, c.keySecret)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("razorpay request failed: status %d: %s", resp.StatusCode, raw)
	}

	if out != nil {
		if err := json.Unmarshal(raw, out); err != nil {
			return fmt.Errorf("failed to parse response: %w", err)
		}
	}
	return nil
}

// CreateOrder creates an order for the given amount in paise.
func (c *Client) CreateOrder(ctx context.Context, amount int64, currency, receipt string, notes map[string]string) (*Order, error) {
	if receipt == "" {
		receipt = "receipt_" + time.Now().Format("20060102150405")
	}
	if notes == nil {
		notes = map[string]string{}
	}

	payload := map[string]any{
		"amount":   amount,
		"currency": currency,
		"receipt":  receipt,
		"notes":    notes,
	}

	var order Order
	if err := c.do(ctx, http.MethodPost, "/v1/orders", payload, &order); err != nil {
		c.log.Errorf("Failed to create Razorpay order: %v", err)
		return nil, err
	}

	c.log.Infof("Created Razorpay order: %s", order.ID)
	return &order, nil
}

// VerifySignature checks the checkout callback signature, which is
// HMAC-SHA256(order_id + "|" + payment_id) under the key secret.
func (c *Client) VerifySignature(orderID, paymentID, signature string) bool {
	ok := utils.VerifyHMAC(orderID+"|"+paymentID, c.keySecret, signature)
	if !ok {
		c.log.Errorf("Payment signature verification failed: %s", paymentID)
	}
	return ok
}

// FetchPayment retrieves payment details by payment ID.
func (c *Client) FetchPayment(ctx context.Context, paymentID string) (*PaymentDetails, error) {
	var details PaymentDetails
	if err := c.do(ctx, http.MethodGet, "/v1/payments/"+paymentID, nil, &details); err != nil {
		return nil, err
	}
	return &details, nil
}

// WithBaseURL overrides the API endpoint, used in tests.
func (c *Client) WithBaseURL(url string) *Client {
	c.baseURL = url
	return c
}
