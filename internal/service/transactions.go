package service

import (
	"context"
	"fmt"
	"time"

	"github.com/arthverse/finance-service/internal/models"
)

const defaultTransactionLimit = 500

// CreateTransaction records an income or expense entry
func (s *Service) CreateTransaction(ctx context.Context, req *models.TransactionCreate) (*models.Transaction, error) {
	userID, err := userIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	if req.Type != "income" && req.Type != "expense" {
		return nil, fmt.Errorf("type must be income or expense")
	}
	if req.Amount <= 0 {
		return nil, fmt.Errorf("amount must be positive")
	}
	if req.Date == "" {
		req.Date = time.Now().Format("2006-01-02")
	} else if _, err := time.Parse("2006-01-02", req.Date); err != nil {
		return nil, fmt.Errorf("date must be YYYY-MM-DD")
	}
	if req.Category == "" {
		req.Category = "Other"
	}

	tx := &models.Transaction{
		UserID:      userID,
		Amount:      req.Amount,
		Type:        req.Type,
		Category:    req.Category,
		Description: req.Description,
		Date:        req.Date,
	}
	if err := s.repo.CreateTransaction(tx); err != nil {
		return nil, err
	}

	s.log.Infof("Transaction created for user %s: %s %.2f", userID, tx.Type, tx.Amount)
	return tx, nil
}

// ListTransactions returns the user's transactions, newest first
func (s *Service) ListTransactions(ctx context.Context) ([]models.Transaction, error) {
	userID, err := userIDFromContext(ctx)
	if err != nil {
		return nil, err
	}
	txs, err := s.repo.ListTransactions(userID, defaultTransactionLimit)
	if err != nil {
		return nil, err
	}
	if txs == nil {
		txs = []models.Transaction{}
	}
	return txs, nil
}

// DeleteTransaction removes one of the user's transactions
func (s *Service) DeleteTransaction(ctx context.Context, id string) error {
	userID, err := userIDFromContext(ctx)
	if err != nil {
		return err
	}
	return s.repo.DeleteTransaction(id, userID)
}

// CategorizeExpense suggests a category for a free-text expense description
func (s *Service) CategorizeExpense(ctx context.Context, req *models.CategorizeRequest) *models.CategorizeResponse {
	result := s.classifier.Categorize(ctx, req.Description, req.Amount)
	return &models.CategorizeResponse{Category: result.Category, Confidence: result.Confidence}
}
