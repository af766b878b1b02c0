package repository

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/arthverse/finance-service/internal/finance"
	"github.com/arthverse/finance-service/internal/models"
	"github.com/google/uuid"
)

// ErrNotFound is returned when a lookup matches no rows.
var ErrNotFound = fmt.Errorf("not found")

// Repository provides database operations
type Repository struct {
	db *sql.DB
}

// NewRepository initializes a new repository
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// CreateUser creates a new user in the database
func (r *Repository) CreateUser(user *models.User) error {
	user.ID = uuid.NewString()
	query := `
		INSERT INTO arthverse.users
			(id, client_id, email, name, mobile_number, date_of_birth, age, city,
			 marital_status, no_of_dependents, data_privacy_consent, monthly_income,
			 networth, password_hash, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, CURRENT_TIMESTAMP)
		RETURNING created_at`
	err := r.db.QueryRow(query,
		user.ID, user.ClientID, user.Email, user.Name, user.MobileNumber,
		user.DateOfBirth, user.Age, user.City, user.MaritalStatus,
		user.NoOfDependents, user.DataPrivacyConsent, user.MonthlyIncome,
		user.Networth, user.PasswordHash).
		Scan(&user.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

const userColumns = `id, client_id, email, name, mobile_number, date_of_birth, age, city,
	marital_status, no_of_dependents, data_privacy_consent, monthly_income,
	networth, password_hash, created_at`

func (r *Repository) scanUser(row *sql.Row) (*models.User, error) {
	user := &models.User{}
	err := row.Scan(&user.ID, &user.ClientID, &user.Email, &user.Name,
		&user.MobileNumber, &user.DateOfBirth, &user.Age, &user.City,
		&user.MaritalStatus, &user.NoOfDependents, &user.DataPrivacyConsent,
		&user.MonthlyIncome, &user.Networth, &user.PasswordHash, &user.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	return user, nil
}

// FindUserByEmail retrieves a user by email
func (r *Repository) FindUserByEmail(email string) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM arthverse.users WHERE email = $1`
	return r.scanUser(r.db.QueryRow(query, email))
}

// FindUserByClientID retrieves a user by their login client ID
func (r *Repository) FindUserByClientID(clientID string) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM arthverse.users WHERE client_id = $1`
	return r.scanUser(r.db.QueryRow(query, clientID))
}

// FindUserByID retrieves a user by primary key
func (r *Repository) FindUserByID(id string) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM arthverse.users WHERE id = $1`
	return r.scanUser(r.db.QueryRow(query, id))
}

// ClientIDExists reports whether a client ID is already taken
func (r *Repository) ClientIDExists(clientID string) (bool, error) {
	var exists bool
	query := `SELECT EXISTS(SELECT 1 FROM arthverse.users WHERE client_id = $1)`
	if err := r.db.QueryRow(query, clientID).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check client ID: %w", err)
	}
	return exists, nil
}

// UpdateUserNetworth stores the latest computed net worth on the user row
func (r *Repository) UpdateUserNetworth(userID string, networth float64) error {
	query := `UPDATE arthverse.users SET networth = $2 WHERE id = $1`
	if _, err := r.db.Exec(query, userID, networth); err != nil {
		return fmt.Errorf("failed to update networth: %w", err)
	}
	return nil
}

// CreateTransaction inserts a transaction
func (r *Repository) CreateTransaction(tx *models.Transaction) error {
	tx.ID = uuid.NewString()
	query := `
		INSERT INTO arthverse.transactions (id, user_id, amount, type, category, description, date, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, CURRENT_TIMESTAMP)
		RETURNING created_at`
	err := r.db.QueryRow(query, tx.ID, tx.UserID, tx.Amount, tx.Type, tx.Category, tx.Description, tx.Date).
		Scan(&tx.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create transaction: %w", err)
	}
	return nil
}

// ListTransactions returns a user's transactions, newest first
func (r *Repository) ListTransactions(userID string, limit int) ([]models.Transaction, error) {
	query := `
		SELECT id, user_id, amount, type, category, description, date, created_at
		FROM arthverse.transactions
		WHERE user_id = $1
		ORDER BY date DESC, created_at DESC
		LIMIT $2`
	rows, err := r.db.Query(query, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	defer rows.Close()

	var result []models.Transaction
	for rows.Next() {
		var tx models.Transaction
		if err := rows.Scan(&tx.ID, &tx.UserID, &tx.Amount, &tx.Type, &tx.Category,
			&tx.Description, &tx.Date, &tx.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan transaction: %w", err)
		}
		result = append(result, tx)
	}
	return result, rows.Err()
}

// DeleteTransaction removes a transaction owned by the user
func (r *Repository) DeleteTransaction(id, userID string) error {
	res, err := r.db.Exec(`DELETE FROM arthverse.transactions WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return fmt.Errorf("failed to delete transaction: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to delete transaction: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// SaveProfile wholesale-replaces the user's financial profile document
func (r *Repository) SaveProfile(userID string, profile *finance.Profile) error {
	doc, err := json.Marshal(profile)
	if err != nil {
		return fmt.Errorf("failed to encode profile: %w", err)
	}
	query := `
		INSERT INTO arthverse.profiles (user_id, document, updated_at)
		VALUES ($1, $2, CURRENT_TIMESTAMP)
		ON CONFLICT (user_id)
		DO UPDATE SET document = EXCLUDED.document, updated_at = CURRENT_TIMESTAMP`
	if _, err := r.db.Exec(query, userID, doc); err != nil {
		return fmt.Errorf("failed to save profile: %w", err)
	}
	return nil
}

// GetProfile loads the user's financial profile document
func (r *Repository) GetProfile(userID string) (*finance.Profile, error) {
	var doc []byte
	query := `SELECT document FROM arthverse.profiles WHERE user_id = $1`
	err := r.db.QueryRow(query, userID).Scan(&doc)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load profile: %w", err)
	}
	profile := &finance.Profile{}
	if err := json.Unmarshal(doc, profile); err != nil {
		return nil, fmt.Errorf("failed to decode profile: %w", err)
	}
	return profile, nil
}

// DeleteProfile removes the user's financial profile
func (r *Repository) DeleteProfile(userID string) error {
	if _, err := r.db.Exec(`DELETE FROM arthverse.profiles WHERE user_id = $1`, userID); err != nil {
		return fmt.Errorf("failed to delete profile: %w", err)
	}
	return nil
}

// CreateConsent records a new bank-linking consent request
func (r *Repository) CreateConsent(consent *models.Consent) error {
	consent.ID = uuid.NewString()
	query := `
		INSERT INTO arthverse.consents (id, user_id, consent_id, phone_number, status, consent_url, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, CURRENT_TIMESTAMP, CURRENT_TIMESTAMP)
		RETURNING created_at, updated_at`
	err := r.db.QueryRow(query, consent.ID, consent.UserID, consent.ConsentID,
		consent.PhoneNumber, consent.Status, consent.ConsentURL).
		Scan(&consent.CreatedAt, &consent.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create consent: %w", err)
	}
	return nil
}

// UpdateConsentStatus moves a consent to a new aggregator status
func (r *Repository) UpdateConsentStatus(consentID, status string) error {
	query := `UPDATE arthverse.consents SET status = $2, updated_at = CURRENT_TIMESTAMP WHERE consent_id = $1`
	if _, err := r.db.Exec(query, consentID, status); err != nil {
		return fmt.Errorf("failed to update consent status: %w", err)
	}
	return nil
}

// GetConsent retrieves a consent by aggregator consent ID, scoped to the user
func (r *Repository) GetConsent(consentID, userID string) (*models.Consent, error) {
	consent := &models.Consent{}
	query := `
		SELECT id, user_id, consent_id, phone_number, status, consent_url, created_at, updated_at
		FROM arthverse.consents
		WHERE consent_id = $1 AND user_id = $2`
	err := r.db.QueryRow(query, consentID, userID).
		Scan(&consent.ID, &consent.UserID, &consent.ConsentID, &consent.PhoneNumber,
			&consent.Status, &consent.ConsentURL, &consent.CreatedAt, &consent.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find consent: %w", err)
	}
	return consent, nil
}

// ListPendingConsents returns all consents still awaiting user approval
func (r *Repository) ListPendingConsents() ([]models.Consent, error) {
	query := `
		SELECT id, user_id, consent_id, phone_number, status, consent_url, created_at, updated_at
		FROM arthverse.consents
		WHERE status = $1`
	rows, err := r.db.Query(query, models.ConsentStatusPending)
	if err != nil {
		return nil, fmt.Errorf("failed to list pending consents: %w", err)
	}
	defer rows.Close()

	var result []models.Consent
	for rows.Next() {
		var consent models.Consent
		if err := rows.Scan(&consent.ID, &consent.UserID, &consent.ConsentID,
			&consent.PhoneNumber, &consent.Status, &consent.ConsentURL,
			&consent.CreatedAt, &consent.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan consent: %w", err)
		}
		result = append(result, consent)
	}
	return result, rows.Err()
}

// CreateSnapshot stores a fetched financial data bundle
func (r *Repository) CreateSnapshot(snap *models.FinancialSnapshot) error {
	snap.ID = uuid.NewString()
	query := `
		INSERT INTO arthverse.financial_snapshots (id, user_id, consent_id, session_id, data, fetched_at)
		VALUES ($1, $2, $3, $4, $5, CURRENT_TIMESTAMP)
		RETURNING fetched_at`
	err := r.db.QueryRow(query, snap.ID, snap.UserID, snap.ConsentID, snap.SessionID, []byte(snap.Data)).
		Scan(&snap.FetchedAt)
	if err != nil {
		return fmt.Errorf("failed to create snapshot: %w", err)
	}
	return nil
}

// LatestSnapshot returns the most recently fetched bundle for the user
func (r *Repository) LatestSnapshot(userID string) (*models.FinancialSnapshot, error) {
	snap := &models.FinancialSnapshot{}
	var data []byte
	query := `
		SELECT id, user_id, consent_id, session_id, data, fetched_at
		FROM arthverse.financial_snapshots
		WHERE user_id = $1
		ORDER BY fetched_at DESC
		LIMIT 1`
	err := r.db.QueryRow(query, userID).
		Scan(&snap.ID, &snap.UserID, &snap.ConsentID, &snap.SessionID, &data, &snap.FetchedAt)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load snapshot: %w", err)
	}
	snap.Data = data
	return snap, nil
}

// CreatePayment records a newly created checkout order
func (r *Repository) CreatePayment(payment *models.Payment) error {
	payment.ID = uuid.NewString()
	query := `
		INSERT INTO arthverse.payments (id, user_id, plan_id, order_id, payment_id, amount, currency, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, CURRENT_TIMESTAMP, CURRENT_TIMESTAMP)
		RETURNING created_at, updated_at`
	err := r.db.QueryRow(query, payment.ID, payment.UserID, payment.PlanID,
		payment.OrderID, payment.PaymentID, payment.Amount, payment.Currency, payment.Status).
		Scan(&payment.CreatedAt, &payment.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create payment: %w", err)
	}
	return nil
}

// MarkPaymentVerified moves an order to paid and records the gateway payment ID
func (r *Repository) MarkPaymentVerified(orderID, userID, paymentID string) error {
	query := `
		UPDATE arthverse.payments
		SET payment_id = $3, status = $4, updated_at = CURRENT_TIMESTAMP
		WHERE order_id = $1 AND user_id = $2`
	res, err := r.db.Exec(query, orderID, userID, paymentID, models.PaymentStatusPaid)
	if err != nil {
		return fmt.Errorf("failed to mark payment verified: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to mark payment verified: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// LatestPaidPayment returns the user's most recent successful payment, if any
func (r *Repository) LatestPaidPayment(userID string) (*models.Payment, error) {
	payment := &models.Payment{}
	query := `
		SELECT id, user_id, plan_id, order_id, payment_id, amount, currency, status, created_at, updated_at
		FROM arthverse.payments
		WHERE user_id = $1 AND status = $2
		ORDER BY updated_at DESC
		LIMIT 1`
	err := r.db.QueryRow(query, userID, models.PaymentStatusPaid).
		Scan(&payment.ID, &payment.UserID, &payment.PlanID, &payment.OrderID,
			&payment.PaymentID, &payment.Amount, &payment.Currency, &payment.Status,
			&payment.CreatedAt, &payment.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load payment: %w", err)
	}
	return payment, nil
}
