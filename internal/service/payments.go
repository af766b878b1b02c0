package service

import (
	"context"
	"fmt"

	"github.com/arthverse/finance-service/internal/integrations/razorpay"
	"github.com/arthverse/finance-service/internal/models"
	"github.com/arthverse/finance-service/internal/repository"
)

// catalog of purchasable report plans; amounts are paise
var plans = []models.Plan{
	{
		ID:          "individual",
		Name:        "Individual Plan",
		Amount:      49900,
		Currency:    "INR",
		Description: "Comprehensive Financial Health Report for Individual",
		Features: []string{
			"Detailed Financial Health Score",
			"9-Component Score Breakdown",
			"Income & Expense Analysis",
			"Net Worth Analysis",
			"Insurance Coverage Analysis",
			"5 Personalized Recommendations",
			"5-Year Financial Projection",
			"PDF Report Download",
		},
	},
	{
		ID:          "family",
		Name:        "Family Plan",
		Amount:      99900,
		Currency:    "INR",
		Description: "Comprehensive Financial Health Report with Peer Comparison",
		Features: []string{
			"Everything in Individual Plan",
			"Peer Comparison (vs Age Group)",
			"Family Financial Consolidation",
			"Priority Support",
		},
	},
}

// Plans lists the purchasable report plans
func (s *Service) Plans() []models.Plan {
	return plans
}

func planByID(id string) (*models.Plan, error) {
	for i := range plans {
		if plans[i].ID == id {
			return &plans[i], nil
		}
	}
	return nil, fmt.Errorf("unknown plan: %s", id)
}

// CreateOrder opens a payment order for the selected plan
func (s *Service) CreateOrder(ctx context.Context, req *models.CreateOrderRequest) (*models.Payment, error) {
	userID, err := userIDFromContext(ctx)
	if err != nil {
		return nil, err
	}
	plan, err := planByID(req.PlanID)
	if err != nil {
		return nil, err
	}

	order, err := s.razorpay.CreateOrder(ctx, plan.Amount, plan.Currency, "", map[string]string{
		"user_id": userID,
		"plan_id": plan.ID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	payment := &models.Payment{
		UserID:   userID,
		PlanID:   plan.ID,
		OrderID:  order.ID,
		Amount:   plan.Amount,
		Currency: plan.Currency,
		Status:   models.PaymentStatusCreated,
	}
	if err := s.repo.CreatePayment(payment); err != nil {
		return nil, err
	}

	s.log.Infof("Order %s created for user %s (plan %s)", order.ID, userID, plan.ID)
	return payment, nil
}

// VerifyPayment checks the gateway callback signature and unlocks the
// report. A receipt email is sent on success.
func (s *Service) VerifyPayment(ctx context.Context, req *models.VerifyPaymentRequest) error {
	userID, err := userIDFromContext(ctx)
	if err != nil {
		return err
	}

	if !s.razorpay.VerifySignature(req.OrderID, req.PaymentID, req.Signature) {
		return fmt.Errorf("invalid payment signature")
	}

	// Cross-check the payment with the gateway. An unreachable gateway is
	// tolerated since the signature already proves the callback is genuine.
	if details, err := s.razorpay.FetchPayment(ctx, req.PaymentID); err != nil {
		s.log.Errorf("Failed to fetch payment %s from gateway: %v", req.PaymentID, err)
	} else if err := checkPaymentDetails(details, req.OrderID); err != nil {
		return err
	}

	if err := s.repo.MarkPaymentVerified(req.OrderID, userID, req.PaymentID); err != nil {
		if err == repository.ErrNotFound {
			return fmt.Errorf("order not found")
		}
		return err
	}
	s.log.Infof("Payment %s verified for user %s", req.PaymentID, userID)

	user, err := s.repo.FindUserByID(userID)
	if err != nil {
		return nil
	}
	payment, err := s.repo.LatestPaidPayment(userID)
	if err != nil {
		return nil
	}
	plan, err := planByID(payment.PlanID)
	if err != nil {
		return nil
	}
	if err := s.mailer.SendPaymentReceipt(user.Email, user.Name, plan.Name, payment.Amount, payment.PaymentID); err != nil {
		s.log.Errorf("Failed to send receipt to %s: %v", user.Email, err)
	}
	return nil
}

// checkPaymentDetails rejects a verified callback when the gateway's own
// record says the money never moved or belongs to a different order.
func checkPaymentDetails(details *razorpay.PaymentDetails, orderID string) error {
	if details.OrderID != "" && details.OrderID != orderID {
		return fmt.Errorf("payment belongs to order %s, not %s", details.OrderID, orderID)
	}
	switch details.Status {
	case "captured", "authorized":
		return nil
	default:
		return fmt.Errorf("payment is %s, not captured", details.Status)
	}
}

// PaymentStatus reports whether the user has an unlocked report
func (s *Service) PaymentStatus(ctx context.Context) (*models.PaymentStatusResponse, error) {
	userID, err := userIDFromContext(ctx)
	if err != nil {
		return nil, err
	}
	payment, err := s.repo.LatestPaidPayment(userID)
	if err == repository.ErrNotFound {
		return &models.PaymentStatusResponse{HasPaid: false}, nil
	}
	if err != nil {
		return nil, err
	}
	return &models.PaymentStatusResponse{HasPaid: true, Payment: payment}, nil
}

// BenchmarkRates returns the central-bank benchmark rate and a suggested
// retail lending rate.
func (s *Service) BenchmarkRates() (map[string]float64, error) {
	benchmark, lending, err := s.rates.BenchmarkRate()
	if err != nil {
		return nil, err
	}
	return map[string]float64{
		"benchmark_rate":         benchmark,
		"suggested_lending_rate": lending,
	}, nil
}
