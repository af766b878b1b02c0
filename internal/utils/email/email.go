package email

import (
	"fmt"
	"net/smtp"
	"time"

	"github.com/arthverse/finance-service/internal/config"
	"github.com/jordan-wright/email"
	"github.com/sirupsen/logrus"
)

// Sender handles sending emails via SMTP
type Sender struct {
	cfg    *config.Config
	logger *logrus.Logger
}

// NewSender creates a new email sender
func NewSender(cfg *config.Config, logger *logrus.Logger) *Sender {
	return &Sender{
		cfg:    cfg,
		logger: logger,
	}
}

// SendPaymentReceipt confirms a successful report purchase
func (s *Sender) SendPaymentReceipt(to, name, planName string, amountPaise int64, paymentID string) error {
	e := email.NewEmail()
	e.From = s.cfg.SenderEmail
	e.To = []string{to}
	e.Subject = "Payment Received - Financial Health Report"

	body := fmt.Sprintf(
		"Dear %s,\n\n"+
			"We have received your payment of ₹%.2f for the %s.\n"+
			"Payment reference: %s\n"+
			"Date: %s\n\n"+
			"Your financial health report is now unlocked in the app.\n",
		name, float64(amountPaise)/100, planName, paymentID,
		time.Now().Format("2006-01-02 15:04:05"),
	)
	body += "\nBest regards,\nArthVerse"
	e.Text = []byte(body)

	return s.send(e, to)
}

// SendConsentActivated notifies the user that their bank account link
// went active and data can now be fetched.
func (s *Sender) SendConsentActivated(to, name string) error {
	e := email.NewEmail()
	e.From = s.cfg.SenderEmail
	e.To = []string{to}
	e.Subject = "Bank Account Linked Successfully"

	body := fmt.Sprintf(
		"Dear %s,\n\n"+
			"Your bank account link request has been approved.\n"+
			"We can now fetch your account statements to keep your financial profile up to date.\n"+
			"You can revoke this consent at any time from the app.\n",
		name,
	)
	body += "\nBest regards,\nArthVerse"
	e.Text = []byte(body)

	return s.send(e, to)
}

func (s *Sender) send(e *email.Email, to string) error {
	addr := fmt.Sprintf("%s:%s", s.cfg.SMTPHost, s.cfg.SMTPPort)
	auth := smtp.PlainAuth("", s.cfg.SMTPUser, s.cfg.SMTPPassword, s.cfg.SMTPHost)
	if err := e.Send(addr, auth); err != nil {
		s.logger.Errorf("Failed to send email to %s: %v", to, err)
		return fmt.Errorf("failed to send email: %w", err)
	}

	s.logger.Infof("Email sent to %s: %s", to, e.Subject)
	return nil
}
