package models

import "encoding/json"

// Consent statuses as reported by the account aggregator.
const (
	ConsentStatusPending  = "PENDING"
	ConsentStatusActive   = "ACTIVE"
	ConsentStatusRejected = "REJECTED"
	ConsentStatusRevoked  = "REVOKED"
	ConsentStatusExpired  = "EXPIRED"
)

// Consent is a bank-linking consent request tracked against the aggregator
type Consent struct {
	ID          string `json:"id"`
	UserID      string `json:"user_id"`
	ConsentID   string `json:"consent_id"`
	PhoneNumber string `json:"phone_number"`
	Status      string `json:"status"`
	ConsentURL  string `json:"consent_url,omitempty"`
	CreatedAt   string `json:"created_at"`
	UpdatedAt   string `json:"updated_at"`
}

// FinancialSnapshot is one fetched bundle of aggregated account data
type FinancialSnapshot struct {
	ID        string          `json:"id"`
	UserID    string          `json:"user_id"`
	ConsentID string          `json:"consent_id"`
	SessionID string          `json:"session_id"`
	Data      json.RawMessage `json:"data"`
	FetchedAt string          `json:"fetched_at"`
}

// ConsentCreateRequest starts a bank-linking flow
type ConsentCreateRequest struct {
	PhoneNumber string `json:"phone_number"`
}
