package events

import (
	"context"
	"log/slog"

	"storefront-partners/internal/pkg/config"
	"storefront-partners/internal/usecase/commands"
)

// LogPublisher records events in the application log only.
type LogPublisher struct{}

func (LogPublisher) Publish(_ context.Context, msg commands.ReferralEventMessage) error {
	slog.Debug("referral event",
		"event_id", msg.EventID.String(),
		"type", msg.Type,
		"partner_code", msg.PartnerCode,
		"session_id", msg.SessionID)
	return nil
}

// NewPublisher returns a Kafka publisher when brokers are configured. The close
// function flushes pending writes and must be called on shutdown.
func NewPublisher(cfg config.KafkaConfig) (commands.EventPublisher, func() error, error) {
	if len(cfg.Brokers) == 0 {
		return LogPublisher{}, func() error { return nil }, nil
	}
	p, err := NewKafkaPublisher(cfg.Brokers, cfg.Topic)
	if err != nil {
		return nil, nil, err
	}
	return p, p.Close, nil
}
