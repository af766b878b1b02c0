package razorpay

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/arthverse/finance-service/internal/config"
	"github.com/arthverse/finance-service/internal/utils"
	"github.com/sirupsen/logrus"
)

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func newTestClient(srvURL string) *Client {
	cfg := &config.Config{RazorpayKeyID: "rzp_test_key", RazorpayKeySecret: "rzp_test_secret"}
	return NewClient(cfg, testLogger()).WithBaseURL(srvURL)
}

func TestCreateOrder(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/orders" || r.Method != http.MethodPost {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		user, pass, ok := r.BasicAuth()
		if !ok || user != "rzp_test_key" || pass != "rzp_test_secret" {
			t.Errorf("missing or wrong basic auth")
		}
		var payload map[string]any
		json.NewDecoder(r.Body).Decode(&payload)
		if payload["amount"].(float64) != 49900 {
			t.Errorf("unexpected amount %v", payload["amount"])
		}
		if payload["currency"] != "INR" {
			t.Errorf("unexpected currency %v", payload["currency"])
		}
		json.NewEncoder(w).Encode(map[string]any{
			"id":       "order_Abc123",
			"amount":   49900,
			"currency": "INR",
			"receipt":  payload["receipt"],
			"status":   "created",
		})
	}))
	defer srv.Close()

	c := newTestClient(srv.URL)
	order, err := c.CreateOrder(context.Background(), 49900, "INR", "", map[string]string{"plan": "individual"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if order.ID != "order_Abc123" || order.Amount != 49900 {
		t.Errorf("unexpected order %+v", order)
	}
	if order.Receipt == "" {
		t.Error("expected a generated receipt when none supplied")
	}
}

func TestCreateOrder_NotConfigured(t *testing.T) {
	c := NewClient(&config.Config{}, testLogger())
	if _, err := c.CreateOrder(context.Background(), 49900, "INR", "", nil); err == nil {
		t.Fatal("expected error when API keys are missing")
	}
}

func TestVerifySignature(t *testing.T) {
	c := newTestClient("http://unused")
	sig := utils.GenerateHMAC("order_Abc123|pay_Xyz789", "rzp_test_secret")

	if !c.VerifySignature("order_Abc123", "pay_Xyz789", sig) {
		t.Error("valid signature should verify")
	}
	if c.VerifySignature("order_Abc123", "pay_Other", sig) {
		t.Error("signature for a different payment should not verify")
	}
	if c.VerifySignature("order_Abc123", "pay_Xyz789", "deadbeef") {
		t.Error("garbage signature should not verify")
	}
}

func TestFetchPayment(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/payments/pay_Xyz789" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		json.NewEncoder(w).Encode(map[string]any{
			"id":       "pay_Xyz789",
			"order_id": "order_Abc123",
			"amount":   49900,
			"status":   "captured",
			"method":   "upi",
		})
	}))
	defer srv.Close()

	c := newTestClient(srv.URL)
	details, err := c.FetchPayment(context.Background(), "pay_Xyz789")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if details.Status != "captured" || details.OrderID != "order_Abc123" {
		t.Errorf("unexpected details %+v", details)
	}
}

func TestFetchPayment_Error(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		io.WriteString(w, `{"error":{"description":"invalid id"}}`)
	}))
	defer srv.Close()

	c := newTestClient(srv.URL)
	if _, err := c.FetchPayment(context.Background(), "bogus"); err == nil {
		t.Fatal("expected error for 400 response")
	}
}
