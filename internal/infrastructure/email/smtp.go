package email

import (
	"context"
	"fmt"
	"time"

	"gopkg.in/gomail.v2"

	"farmgate/internal/shared/biztime"
)

type SMTPConfig struct {
	Host        string
	Port        int
	Username    string
	Password    string
	FromAddress string
	FromName    string
}

// SMTPEmailService sends all marketplace mail: account passcodes,
// handover and delivery passcodes, and claim decision notices.
type SMTPEmailService struct {
	config SMTPConfig
	dialer *gomail.Dialer
}

func NewSMTPEmailService(config SMTPConfig) *SMTPEmailService {
	dialer := gomail.NewDialer(config.Host, config.Port, config.Username, config.Password)

	return &SMTPEmailService{
		config: config,
		dialer: dialer,
	}
}

func (s *SMTPEmailService) SendVerificationCode(ctx context.Context, to, name, code string, expiresAt time.Time) error {
	subject := "Verify your email address"
	htmlBody := fmt.Sprintf(`
		<html>
		<body>
			<h2>Welcome to Farmgate, %s!</h2>
			<p>Your email verification code is:</p>
			<p style="font-size: 24px; letter-spacing: 4px;"><strong>%s</strong></p>
			<p>The code expires at %s.</p>
			<p>If you didn't create an account, please ignore this email.</p>
		</body>
		</html>
	`, name, code, s.formatExpiry(expiresAt))

	plainBody := fmt.Sprintf(`
Welcome to Farmgate, %s!

Your email verification code is: %s

The code expires at %s.

If you didn't create an account, please ignore this email.
	`, name, code, s.formatExpiry(expiresAt))

	return s.sendEmail(ctx, to, subject, htmlBody, plainBody)
}

func (s *SMTPEmailService) SendPasswordResetCode(ctx context.Context, to, name, code string, expiresAt time.Time) error {
	subject := "Reset your password"
	htmlBody := fmt.Sprintf(`
		<html>
		<body>
			<h2>Password reset request</h2>
			<p>Hi %s, your password reset code is:</p>
			<p style="font-size: 24px; letter-spacing: 4px;"><strong>%s</strong></p>
			<p>The code expires at %s.</p>
			<p>If you didn't request a password reset, please ignore this email and your password will remain unchanged.</p>
		</body>
		</html>
	`, name, code, s.formatExpiry(expiresAt))

	plainBody := fmt.Sprintf(`
Password reset request

Hi %s, your password reset code is: %s

The code expires at %s.

If you didn't request a password reset, please ignore this email and your password will remain unchanged.
	`, name, code, s.formatExpiry(expiresAt))

	return s.sendEmail(ctx, to, subject, htmlBody, plainBody)
}

func (s *SMTPEmailService) SendHandoverCode(ctx context.Context, to, name, code string, expiresAt time.Time) error {
	subject := "Your land handover code"
	htmlBody := fmt.Sprintf(`
		<html>
		<body>
			<h2>Handover started</h2>
			<p>Hi %s, the owner has started the handover for your approved claim.</p>
			<p>Share this code with the owner in person to complete it:</p>
			<p style="font-size: 24px; letter-spacing: 4px;"><strong>%s</strong></p>
			<p>The code expires at %s. If it lapses, the owner can start the handover again.</p>
		</body>
		</html>
	`, name, code, s.formatExpiry(expiresAt))

	plainBody := fmt.Sprintf(`
Handover started

Hi %s, the owner has started the handover for your approved claim.

Share this code with the owner in person to complete it: %s

The code expires at %s. If it lapses, the owner can start the handover again.
	`, name, code, s.formatExpiry(expiresAt))

	return s.sendEmail(ctx, to, subject, htmlBody, plainBody)
}

func (s *SMTPEmailService) SendClaimDecision(ctx context.Context, to, name, listingTitle string, approved bool) error {
	var subject, headline, detail string
	if approved {
		subject = fmt.Sprintf("Your claim on %q was approved", listingTitle)
		headline = "Claim approved"
		detail = "The owner will start the handover when you meet. You'll receive a handover code by email at that point."
	} else {
		subject = fmt.Sprintf("Your claim on %q was not approved", listingTitle)
		headline = "Claim rejected"
		detail = "The listing may have gone to another claimant. Keep an eye out for other land in your area."
	}

	htmlBody := fmt.Sprintf(`
		<html>
		<body>
			<h2>%s</h2>
			<p>Hi %s,</p>
			<p>Your claim on %q has been decided.</p>
			<p>%s</p>
		</body>
		</html>
	`, headline, name, listingTitle, detail)

	plainBody := fmt.Sprintf(`
%s

Hi %s,

Your claim on %q has been decided.

%s
	`, headline, name, listingTitle, detail)

	return s.sendEmail(ctx, to, subject, htmlBody, plainBody)
}

func (s *SMTPEmailService) SendDeliveryCode(ctx context.Context, to, name, code string, expiresAt time.Time) error {
	subject := "Your delivery confirmation code"
	htmlBody := fmt.Sprintf(`
		<html>
		<body>
			<h2>Delivery on its way</h2>
			<p>Hi %s, the seller has marked your order as out for delivery.</p>
			<p>Give this code to the seller once the goods arrive, as your proof of receipt:</p>
			<p style="font-size: 24px; letter-spacing: 4px;"><strong>%s</strong></p>
			<p>The code expires at %s.</p>
		</body>
		</html>
	`, name, code, s.formatExpiry(expiresAt))

	plainBody := fmt.Sprintf(`
Delivery on its way

Hi %s, the seller has marked your order as out for delivery.

Give this code to the seller once the goods arrive, as your proof of receipt: %s

The code expires at %s.
	`, name, code, s.formatExpiry(expiresAt))

	return s.sendEmail(ctx, to, subject, htmlBody, plainBody)
}

func (s *SMTPEmailService) formatExpiry(t time.Time) string {
	return biztime.FormatInBizTimezone(t, "15:04 MST, 2 Jan 2006")
}

func (s *SMTPEmailService) sendEmail(ctx context.Context, to, subject, htmlBody, plainBody string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	m := gomail.NewMessage()
	m.SetAddressHeader("From", s.config.FromAddress, s.config.FromName)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", plainBody)
	m.AddAlternative("text/html", htmlBody)

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}
