package impl

import (
	"context"
	"fmt"

	"gopkg.in/gomail.v2"
)

type SMTPConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	From     string
}

type EmailServiceImpl struct {
	dialer *gomail.Dialer
	from   string
}

func NewEmailServiceSMTP(cfg SMTPConfig) *EmailServiceImpl {
	return &EmailServiceImpl{
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.User, cfg.Password),
		from:   cfg.From,
	}
}

func (s *EmailServiceImpl) SendVerificationCode(ctx context.Context, to, code string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", "Solara - Your Verification Code")

	body := fmt.Sprintf(`<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto; padding: 20px; border: 1px solid #e0e0e0; border-radius: 10px;">
<h2 style="color: #2F855A; text-align: center;">Solara Account Verification</h2>
<p>Hello,</p>
<p>Please use the following 6-digit verification code to securely access or recover your Solara account. This code is valid for 15 minutes.</p>
<div style="background-color: #F0FFF4; padding: 15px; border-radius: 8px; text-align: center; margin: 25px 0;">
<h1 style="color: #276749; letter-spacing: 5px; margin: 0; font-size: 32px;">%s</h1>
</div>
<p style="color: #718096; font-size: 14px;">If you did not request this code, please ignore this email.</p>
<p>Thanks,<br/>The Solara Team</p>
</div>`, code)

	m.SetBody("text/html", body)

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("send verification email: %w", err)
	}
	return nil
}
