package services

import (
	"fmt"
	"log"

	"investhub/internal/config"

	"gopkg.in/gomail.v2"
)

// EmailService sends account lifecycle emails over SMTP
type EmailService struct {
	cfg *config.Config
}

// NewEmailService creates a new email service
func NewEmailService(cfg *config.Config) *EmailService {
	return &EmailService{cfg: cfg}
}

// SendActivationEmail sends the account activation link.
// Fire-and-forget: dispatched on its own goroutine, failure is logged.
func (s *EmailService) SendActivationEmail(email, orgName, activationToken string) {
	link := fmt.Sprintf("%s/api/auth/activate?token=%s", s.cfg.FrontendURL, activationToken)
	body := fmt.Sprintf(`
		<h2>Hello %s,</h2>
		<p>Thank you for registering with InvestHub. To complete your registration
		and activate your account, please open the link below:</p>
		<p><a href="%s">Activate Account</a></p>
		<p><strong>Important:</strong> This activation link will expire in 24 hours.</p>
		<p>If you didn't register for an account, please ignore this email.</p>`,
		orgName, link)

	s.sendAsync(email, "Activate Your InvestHub Account", body)
}

// SendCredentialsEmail sends the temporary credentials for an
// admin-created account
func (s *EmailService) SendCredentialsEmail(email, orgName, temporaryPassword string) {
	body := fmt.Sprintf(`
		<h2>Hello %s,</h2>
		<p>An InvestHub account has been created for you.</p>
		<p>Email: <strong>%s</strong><br>
		Temporary password: <strong>%s</strong></p>
		<p>Please log in and change your password as soon as possible.</p>`,
		orgName, email, temporaryPassword)

	s.sendAsync(email, "Your InvestHub Account Has Been Created", body)
}

// SendPasswordResetEmail sends a password reset link
func (s *EmailService) SendPasswordResetEmail(email, resetToken string) {
	link := fmt.Sprintf("%s/reset-password?token=%s", s.cfg.FrontendURL, resetToken)
	body := fmt.Sprintf(`
		<h2>Reset Your Password</h2>
		<p>We received a request to reset your password. Open the link below to
		create a new password:</p>
		<p><a href="%s">Reset Password</a></p>
		<p>If you didn't request a password reset, please ignore this email and
		your password will remain unchanged.</p>`,
		link)

	s.sendAsync(email, "Reset Your Password", body)
}

// sendAsync dispatches a message without blocking the caller
func (s *EmailService) sendAsync(to, subject, body string) {
	go func() {
		if err := s.send(to, subject, body); err != nil {
			log.Printf("❌ Failed to send email %q to %s: %v", subject, to, err)
			return
		}
		log.Printf("✅ Email %q sent to %s", subject, to)
	}()
}

func (s *EmailService) send(to, subject, body string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.cfg.SMTP.From)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", body)

	d := gomail.NewDialer(
		s.cfg.SMTP.Host,
		s.cfg.SMTP.Port,
		s.cfg.SMTP.User,
		s.cfg.SMTP.Password,
	)

	return d.DialAndSend(m)
}
