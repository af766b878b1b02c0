package models

// Plan is a purchasable report plan. Amounts are in paise.
type Plan struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Amount      int64    `json:"amount"`
	Currency    string   `json:"currency"`
	Description string   `json:"description"`
	Features    []string `json:"features"`
}

// Payment statuses.
const (
	PaymentStatusCreated = "created"
	PaymentStatusPaid    = "paid"
	PaymentStatusFailed  = "failed"
)

// Payment tracks a checkout from order creation through verification
type Payment struct {
	ID        string `json:"id"`
	UserID    string `json:"user_id"`
	PlanID    string `json:"plan_id"`
	OrderID   string `json:"order_id"`
	PaymentID string `json:"payment_id,omitempty"`
	Amount    int64  `json:"amount"`
	Currency  string `json:"currency"`
	Status    string `json:"status"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

// CreateOrderRequest selects a plan for checkout
type CreateOrderRequest struct {
	PlanID string `json:"plan_id"`
}

// VerifyPaymentRequest carries the gateway callback fields
type VerifyPaymentRequest struct {
	OrderID   string `json:"razorpay_order_id"`
	PaymentID string `json:"razorpay_payment_id"`
	Signature string `json:"razorpay_signature"`
}

// PaymentStatusResponse reports whether the user has an unlocked report
type PaymentStatusResponse struct {
	HasPaid bool     `json:"has_paid"`
	Payment *Payment `json:"payment,omitempty"`
}
