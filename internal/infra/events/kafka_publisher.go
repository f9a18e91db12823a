package events

import (
	"context"
	"encoding/json"
	"time"

	"storefront-partners/internal/pkg/errs"
	"storefront-partners/internal/usecase/commands"

	"github.com/segmentio/kafka-go"
)

var errNoBrokers = errs.New("kafka publisher requires at least one broker")

type KafkaPublisher struct {
	writer *kafka.Writer
}

// NewKafkaPublisher writes every referral event to topic, keyed by partner so
// one partner's events stay ordered within a partition.
func NewKafkaPublisher(brokers []string, topic string) (*KafkaPublisher, error) {
	if len(brokers) == 0 {
		return nil, errNoBrokers
	}
	return &KafkaPublisher{
		writer: &kafka.Writer{
			Addr:         kafka.TCP(brokers...),
			Topic:        topic,
			RequiredAcks: kafka.RequireAll,
			Balancer:     &kafka.Hash{},
			WriteTimeout: 5 * time.Second,
		},
	}, nil
}

type referralEventPayload struct {
	EventID     string    `json:"event_id"`
	Type        string    `json:"type"`
	PartnerID   string    `json:"partner_id"`
	PartnerCode string    `json:"partner_code"`
	SessionID   string    `json:"session_id"`
	UserID      *string   `json:"user_id,omitempty"`
	OccurredAt  time.Time `json:"occurred_at"`
}

func (p *KafkaPublisher) Publish(ctx context.Context, msg commands.ReferralEventMessage) error {
	m, err := toMessage(msg)
	if err != nil {
		return err
	}
	if err = p.writer.WriteMessages(ctx, m); err != nil {
		return errs.Wrap(err, "failed to write referral event")
	}
	return nil
}

func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}

func toMessage(msg commands.ReferralEventMessage) (kafka.Message, error) {
	payload := referralEventPayload{
		EventID:     msg.EventID.String(),
		Type:        msg.Type,
		PartnerID:   msg.PartnerID.String(),
		PartnerCode: msg.PartnerCode,
		SessionID:   msg.SessionID,
		OccurredAt:  msg.OccurredAt,
	}
	if msg.UserID != nil {
		uid := msg.UserID.String()
		payload.UserID = &uid
	}
	value, err := json.Marshal(payload)
	if err != nil {
		return kafka.Message{}, errs.Wrap(err, "failed to encode referral event")
	}
	return kafka.Message{
		Key:   []byte(msg.PartnerID.String()),
		Value: value,
		Time:  msg.OccurredAt,
		Headers: []kafka.Header{
			{Key: "event_type", Value: []byte(msg.Type)},
		},
	}, nil
}
