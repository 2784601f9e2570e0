package service

import (
	"context"
	"log/slog"
)

// LogDispatcher stands in for a real mail transport: it records that an OTP
// was issued without exposing the code itself. Swap it for an SMTP-backed
// implementation in deployments that send real mail.
type LogDispatcher struct {
	logger *slog.Logger
}

func NewLogDispatcher(logger *slog.Logger) *LogDispatcher {
	if logger == nil {
		logger = slog.Default()
	}
	return &LogDispatcher{logger: logger}
}

func (d *LogDispatcher) SendOtpEmail(ctx context.Context, email, otp string) error {
	d.logger.InfoContext(ctx, "password reset otp issued", slog.String("email", email))
	return nil
}
