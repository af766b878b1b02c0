package models

// Transaction represents a financial transaction
type Transaction struct {
	ID          string  `json:"id"`
	UserID      string  `json:"user_id"`
	Amount      float64 `json:"amount"`
	Type        string  `json:"type"` // income or expense
	Category    string  `json:"category"`
	Description string  `json:"description"`
	Date        string  `json:"date"` // Format: YYYY-MM-DD
	CreatedAt   string  `json:"created_at"`
}

// TransactionCreate is the creation payload
type TransactionCreate struct {
	Amount      float64 `json:"amount"`
	Type        string  `json:"type"`
	Category    string  `json:"category"`
	Description string  `json:"description"`
	Date        string  `json:"date"`
}

// CategorizeRequest asks for an expense category suggestion
type CategorizeRequest struct {
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
}

// CategorizeResponse carries the suggested category
type CategorizeResponse struct {
	Category   string `json:"category"`
	Confidence string `json:"confidence"`
}
