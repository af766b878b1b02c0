package service

import (
	"context"
	"fmt"

	"github.com/arthverse/finance-service/internal/cache"
	"github.com/arthverse/finance-service/internal/config"
	"github.com/arthverse/finance-service/internal/integrations/classifier"
	"github.com/arthverse/finance-service/internal/integrations/rates"
	"github.com/arthverse/finance-service/internal/integrations/razorpay"
	"github.com/arthverse/finance-service/internal/integrations/setu"
	"github.com/arthverse/finance-service/internal/repository"
	"github.com/arthverse/finance-service/internal/utils/email"
	"github.com/sirupsen/logrus"
)

// Service handles business logic
type Service struct {
	repo       *repository.Repository
	log        *logrus.Logger
	config     *config.Config
	cache      *cache.Cache
	setu       *setu.Client
	razorpay   *razorpay.Client
	rates      *rates.Client
	mailer     *email.Sender
	classifier *classifier.Classifier
}

// NewService initializes a new service
func NewService(
	repo *repository.Repository,
	log *logrus.Logger,
	cfg *config.Config,
	c *cache.Cache,
	setuClient *setu.Client,
	razorpayClient *razorpay.Client,
	ratesClient *rates.Client,
	mailer *email.Sender,
	cls *classifier.Classifier,
) *Service {
	return &Service{
		repo:       repo,
		log:        log,
		config:     cfg,
		cache:      c,
		setu:       setuClient,
		razorpay:   razorpayClient,
		rates:      ratesClient,
		mailer:     mailer,
		classifier: cls,
	}
}

func userIDFromContext(ctx context.Context) (string, error) {
	userID, ok := ctx.Value("userID").(string)
	if !ok || userID == "" {
		return "", fmt.Errorf("user ID not found in context")
	}
	return userID, nil
}
