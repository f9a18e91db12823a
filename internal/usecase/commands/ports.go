package commands

import (
	"context"
	"time"

	"github.com/google/uuid"
)

//go:generate mockgen -source=ports.go -destination=../../../tests/mock/commands/ports_mock.go -package=commandsmock

// SettlementGateway hands a payout to the payment processor. It never confirms
// the transfer; confirmation arrives later through ConfirmSettlement.
type SettlementGateway interface {
	Submit(ctx context.Context, req SettlementRequest) error
}

// EventPublisher forwards referral events to downstream consumers.
type EventPublisher interface {
	Publish(ctx context.Context, msg ReferralEventMessage) error
}

// Write-side snapshots passed across ports; infra adapters never see domain entities.
type SettlementRequest struct {
	PayoutID      uuid.UUID
	PartnerID     uuid.UUID
	Amount        int64
	Currency      string
	BankName      string
	AccountNumber string
	AccountHolder string
}

type ReferralEventMessage struct {
	EventID     uuid.UUID
	Type        string
	PartnerID   uuid.UUID
	PartnerCode string
	SessionID   string
	UserID      *uuid.UUID
	OccurredAt  time.Time
}
