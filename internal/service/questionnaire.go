package service

import (
	"context"
	"errors"
	"time"

	"github.com/arthverse/finance-service/internal/finance"
	"github.com/arthverse/finance-service/internal/repository"
)

// ErrNoQuestionnaire is returned by reports that need a saved
// questionnaire when the user has not completed one.
var ErrNoQuestionnaire = errors.New("questionnaire not found")

func healthScoreCacheKey(userID string) string {
	return "health-score:" + userID
}

// SaveQuestionnaire replaces the user's financial profile document.
// Vehicles are reconciled against vehicle insurance policies before the
// save, the cached health score is invalidated and the user's stored net
// worth is refreshed.
func (s *Service) SaveQuestionnaire(ctx context.Context, profile *finance.Profile) (*finance.Profile, error) {
	userID, err := userIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	profile.Vehicles = finance.ReconcileVehicles(profile.Vehicles, profile.InsurancePolicies)
	profile.CompletedAt = time.Now().UTC().Format(time.RFC3339)

	if err := s.repo.SaveProfile(userID, profile); err != nil {
		return nil, err
	}

	networth := profile.NetWorth()
	if err := s.repo.UpdateUserNetworth(userID, networth); err != nil {
		s.log.Errorf("Failed to update networth for user %s: %v", userID, err)
	}

	if err := s.cache.Del(ctx, healthScoreCacheKey(userID)); err != nil {
		s.log.Debugf("Failed to invalidate health score cache for user %s: %v", userID, err)
	}

	s.log.Infof("Questionnaire saved for user %s (net worth %.2f)", userID, networth)
	return profile, nil
}

// GetQuestionnaire loads the user's financial profile
func (s *Service) GetQuestionnaire(ctx context.Context) (*finance.Profile, error) {
	userID, err := userIDFromContext(ctx)
	if err != nil {
		return nil, err
	}
	profile, err := s.repo.GetProfile(userID)
	if err == repository.ErrNotFound {
		return nil, ErrNoQuestionnaire
	}
	return profile, err
}

// ResetQuestionnaire deletes the user's financial profile as a unit
func (s *Service) ResetQuestionnaire(ctx context.Context) error {
	userID, err := userIDFromContext(ctx)
	if err != nil {
		return err
	}
	if err := s.repo.DeleteProfile(userID); err != nil {
		return err
	}
	if err := s.cache.Del(ctx, healthScoreCacheKey(userID)); err != nil {
		s.log.Debugf("Failed to invalidate health score cache for user %s: %v", userID, err)
	}
	s.log.Infof("Questionnaire reset for user %s", userID)
	return nil
}
