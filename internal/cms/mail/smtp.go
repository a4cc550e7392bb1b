package mail

import (
	"context"
	"fmt"

	gomail "github.com/wneessen/go-mail"
)

// SMTPConfig holds the SMTP submission settings.
type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string // e.g. "RISE CMS <noreply@risechangeslives.com>"
}

// SMTPSender sends verification emails over authenticated SMTP.
type SMTPSender struct {
	cfg SMTPConfig
}

func NewSMTPSender(cfg SMTPConfig) *SMTPSender {
	return &SMTPSender{cfg: cfg}
}

func (s *SMTPSender) SendVerificationCode(ctx context.Context, to, name, code string) error {
	msg := gomail.NewMsg()
	if err := msg.From(s.cfg.From); err != nil {
		return fmt.Errorf("mail: invalid from address: %w", err)
	}
	if err := msg.To(to); err != nil {
		return fmt.Errorf("mail: invalid recipient: %w", err)
	}
	msg.Subject("RISE CMS - Login Verification Code")
	msg.SetBodyString(gomail.TypeTextHTML, verificationBody(name, code))

	client, err := gomail.NewClient(s.cfg.Host,
		gomail.WithPort(s.cfg.Port),
		gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
		gomail.WithUsername(s.cfg.Username),
		gomail.WithPassword(s.cfg.Password),
	)
	if err != nil {
		return fmt.Errorf("mail: client: %w", err)
	}

	if err := client.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("mail: send: %w", err)
	}
	return nil
}

// verificationBody renders the verification email in the site's branding.
func verificationBody(name, code string) string {
	return fmt.Sprintf(`
        <div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
          <div style="background: linear-gradient(135deg, #ef4444, #facc15); padding: 20px; text-align: center;">
            <h1 style="color: white; margin: 0;">RISE CMS</h1>
          </div>
          <div style="padding: 30px; background: #f9f9f9;">
            <h2 style="color: #333;">Hello %s,</h2>
            <p style="color: #666; line-height: 1.6;">
              Someone attempted to log in to the RISE Content Management System using your email address.
            </p>
            <div style="background: white; padding: 20px; border-radius: 8px; text-align: center; margin: 20px 0;">
              <p style="margin: 0; color: #666;">Your verification code is:</p>
              <h1 style="margin: 10px 0; color: #ef4444; font-size: 32px; letter-spacing: 4px;">%s</h1>
              <p style="margin: 0; color: #666; font-size: 14px;">This code expires in 10 minutes</p>
            </div>
            <p style="color: #666; line-height: 1.6;">
              If you did not attempt to log in, please ignore this email.
            </p>
            <p style="color: #666; line-height: 1.6;">
              For security reasons, never share this code with anyone.
            </p>
          </div>
          <div style="padding: 20px; text-align: center; background: #333; color: white;">
            <p style="margin: 0; font-size: 14px;">RISE Changes Lives - Content Management System</p>
          </div>
        </div>`, name, code)
}
