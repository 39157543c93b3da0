package mail

import (
	"context"

	"github.com/Anand4756/assessment-Connectverse/internal/logger"
)

// LogMailer writes outbound mail to the log instead of sending it.
// Used in dev when no SMTP credentials are configured.
type LogMailer struct{}

func NewLogMailer() *LogMailer { return &LogMailer{} }

func (m *LogMailer) Send(ctx context.Context, to, subject, body string) error {
	logger.WithCtx(ctx).Info().
		Str("to", to).
		Str("subject", subject).
		Str("body", body).
		Msg("mail (log only)")
	return nil
}
