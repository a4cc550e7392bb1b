package mail

import (
	"context"
	"log/slog"
)

// ConsoleSender logs verification codes instead of emailing them. Used in
// development when SMTP is not configured, matching the old backend's
// console fallback.
type ConsoleSender struct {
	Logger *slog.Logger
}

func (c *ConsoleSender) SendVerificationCode(ctx context.Context, to, name, code string) error {
	c.Logger.Warn("email not configured, verification code logged to console",
		"to", to,
		"code", code,
	)
	return nil
}
