package models

// User represents a registered user in the system
type User struct {
	ID                 string  `json:"id"`
	ClientID           string  `json:"client_id"`
	Email              string  `json:"email"`
	Name               string  `json:"name"`
	MobileNumber       string  `json:"mobile_number"`
	DateOfBirth        string  `json:"date_of_birth"`
	Age                int     `json:"age"`
	City               string  `json:"city"`
	MaritalStatus      string  `json:"marital_status"`
	NoOfDependents     int     `json:"no_of_dependents"`
	DataPrivacyConsent bool    `json:"data_privacy_consent"`
	MonthlyIncome      float64 `json:"monthly_income"`
	Networth           float64 `json:"networth"`
	PasswordHash       string  `json:"-"` // Not serialized
	CreatedAt          string  `json:"created_at"`
}

// RegisterRequest is the registration payload
type RegisterRequest struct {
	Email              string  `json:"email"`
	Password           string  `json:"password"`
	Name               string  `json:"name"`
	MobileNumber       string  `json:"mobile_number"`
	DateOfBirth        string  `json:"date_of_birth"`
	Age                int     `json:"age"`
	City               string  `json:"city"`
	MaritalStatus      string  `json:"marital_status"`
	NoOfDependents     int     `json:"no_of_dependents"`
	DataPrivacyConsent bool    `json:"data_privacy_consent"`
	MonthlyIncome      float64 `json:"monthly_income"`
}

// LoginRequest authenticates by the generated client ID
type LoginRequest struct {
	ClientID string `json:"client_id"`
	Password string `json:"password"`
}

// AuthResponse carries the JWT and the user it authenticates
type AuthResponse struct {
	Token string `json:"token"`
	User  *User  `json:"user"`
}
