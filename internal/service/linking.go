package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/arthverse/finance-service/internal/models"
	"github.com/arthverse/finance-service/internal/repository"
	"github.com/arthverse/finance-service/internal/utils"
)

// encryptSnapshotData seals a fetched bundle before it is persisted.
// The ciphertext is stored as a JSON string so the snapshot column
// keeps holding valid JSON.
func (s *Service) encryptSnapshotData(payload json.RawMessage) (json.RawMessage, error) {
	sealed, err := utils.Encrypt(string(payload), s.config.EncryptionKey)
	if err != nil {
		return nil, fmt.Errorf("failed to encrypt financial data: %w", err)
	}
	return json.Marshal(sealed)
}

func (s *Service) decryptSnapshotData(stored json.RawMessage) (json.RawMessage, error) {
	var sealed string
	if err := json.Unmarshal(stored, &sealed); err != nil {
		return nil, fmt.Errorf("failed to read stored snapshot: %w", err)
	}
	plain, err := utils.Decrypt(sealed, s.config.EncryptionKey)
	if err != nil {
		return nil, fmt.Errorf("failed to decrypt financial data: %w", err)
	}
	return json.RawMessage(plain), nil
}

// StartConsent begins a bank-linking flow with the account aggregator.
// The returned consent carries an approval URL the user must open.
func (s *Service) StartConsent(ctx context.Context, req *models.ConsentCreateRequest) (*models.Consent, error) {
	userID, err := userIDFromContext(ctx)
	if err != nil {
		return nil, err
	}
	phone := req.PhoneNumber
	if phone == "" {
		user, err := s.repo.FindUserByID(userID)
		if err != nil {
			return nil, err
		}
		phone = user.MobileNumber
	}
	if phone == "" {
		return nil, fmt.Errorf("phone number is required")
	}

	now := time.Now()
	resp, err := s.setu.CreateConsent(ctx, phone, now.AddDate(-1, 0, 0), now, 12)
	if err != nil {
		return nil, fmt.Errorf("failed to create consent: %w", err)
	}

	consent := &models.Consent{
		UserID:      userID,
		ConsentID:   resp.ID,
		PhoneNumber: phone,
		Status:      models.ConsentStatusPending,
		ConsentURL:  resp.URL,
	}
	if resp.Status != "" {
		consent.Status = resp.Status
	}
	if err := s.repo.CreateConsent(consent); err != nil {
		return nil, err
	}

	s.log.Infof("Consent %s created for user %s", consent.ConsentID, userID)
	return consent, nil
}

// ConsentStatus refreshes and returns the state of one consent
func (s *Service) ConsentStatus(ctx context.Context, consentID string) (*models.Consent, error) {
	userID, err := userIDFromContext(ctx)
	if err != nil {
		return nil, err
	}
	consent, err := s.repo.GetConsent(consentID, userID)
	if err == repository.ErrNotFound {
		return nil, fmt.Errorf("consent not found")
	}
	if err != nil {
		return nil, err
	}

	resp, err := s.setu.ConsentStatus(ctx, consentID)
	if err != nil {
		// Aggregator unreachable: fall back to the last known state
		s.log.Errorf("Failed to refresh consent %s: %v", consentID, err)
		return consent, nil
	}
	if resp.Status != consent.Status {
		if err := s.repo.UpdateConsentStatus(consentID, resp.Status); err != nil {
			return nil, err
		}
		consent.Status = resp.Status
	}
	return consent, nil
}

// FetchFinancialData opens a data session against an active consent and
// stores the returned bundle as a snapshot.
func (s *Service) FetchFinancialData(ctx context.Context, consentID string) (*models.FinancialSnapshot, error) {
	userID, err := userIDFromContext(ctx)
	if err != nil {
		return nil, err
	}
	consent, err := s.repo.GetConsent(consentID, userID)
	if err == repository.ErrNotFound {
		return nil, fmt.Errorf("consent not found")
	}
	if err != nil {
		return nil, err
	}
	if consent.Status != models.ConsentStatusActive {
		return nil, fmt.Errorf("consent is not active")
	}

	session, err := s.setu.CreateDataSession(ctx, consentID)
	if err != nil {
		return nil, fmt.Errorf("failed to create data session: %w", err)
	}
	data, err := s.setu.FetchData(ctx, session.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch financial data: %w", err)
	}

	sealed, err := s.encryptSnapshotData(data.Payload)
	if err != nil {
		return nil, err
	}
	snap := &models.FinancialSnapshot{
		UserID:    userID,
		ConsentID: consentID,
		SessionID: session.ID,
		Data:      sealed,
	}
	if err := s.repo.CreateSnapshot(snap); err != nil {
		return nil, err
	}
	snap.Data = data.Payload

	s.log.Infof("Financial data fetched for user %s via consent %s", userID, consentID)
	return snap, nil
}

// LatestFinancialData returns the most recent fetched bundle
func (s *Service) LatestFinancialData(ctx context.Context) (*models.FinancialSnapshot, error) {
	userID, err := userIDFromContext(ctx)
	if err != nil {
		return nil, err
	}
	snap, err := s.repo.LatestSnapshot(userID)
	if err == repository.ErrNotFound {
		return nil, fmt.Errorf("no financial data fetched yet")
	}
	if err != nil {
		return nil, err
	}
	snap.Data, err = s.decryptSnapshotData(snap.Data)
	if err != nil {
		return nil, err
	}
	return snap, nil
}

// PollPendingConsents refreshes every pending consent against the
// aggregator. Runs on a cron schedule; users whose consent went active
// get an email.
func (s *Service) PollPendingConsents() {
	ctx := context.Background()
	pending, err := s.repo.ListPendingConsents()
	if err != nil {
		s.log.Errorf("Failed to list pending consents: %v", err)
		return
	}

	for _, consent := range pending {
		resp, err := s.setu.ConsentStatus(ctx, consent.ConsentID)
		if err != nil {
			s.log.Errorf("Failed to poll consent %s: %v", consent.ConsentID, err)
			continue
		}
		if resp.Status == consent.Status {
			continue
		}
		if err := s.repo.UpdateConsentStatus(consent.ConsentID, resp.Status); err != nil {
			s.log.Errorf("Failed to update consent %s: %v", consent.ConsentID, err)
			continue
		}
		s.log.Infof("Consent %s moved to %s", consent.ConsentID, resp.Status)

		if resp.Status == models.ConsentStatusActive {
			user, err := s.repo.FindUserByID(consent.UserID)
			if err != nil {
				continue
			}
			if err := s.mailer.SendConsentActivated(user.Email, user.Name); err != nil {
				s.log.Errorf("Failed to notify user %s: %v", user.ID, err)
			}
		}
	}
}
