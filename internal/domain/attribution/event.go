package attribution

import (
	"time"

	"github.com/google/uuid"
)

type EventType string

const EventRefClick EventType = "REF_CLICK"

// ReferralEvent is an append-only audit record; it is never updated.
type ReferralEvent struct {
	id         uuid.UUID
	eventType  EventType
	partnerID  uuid.UUID
	userID     *uuid.UUID
	sessionID  string
	occurredAt time.Time
}

func NewClickEvent(partnerID uuid.UUID, userID *uuid.UUID, sessionID string, now time.Time) *ReferralEvent {
	return &ReferralEvent{
		id:         uuid.New(),
		eventType:  EventRefClick,
		partnerID:  partnerID,
		userID:     userID,
		sessionID:  sessionID,
		occurredAt: now,
	}
}

func ReconstructReferralEvent(id uuid.UUID, eventType EventType, partnerID uuid.UUID, userID *uuid.UUID, sessionID string, occurredAt time.Time) *ReferralEvent {
	return &ReferralEvent{
		id:         id,
		eventType:  eventType,
		partnerID:  partnerID,
		userID:     userID,
		sessionID:  sessionID,
		occurredAt: occurredAt,
	}
}

func (e *ReferralEvent) ID() uuid.UUID         { return e.id }
func (e *ReferralEvent) Type() EventType       { return e.eventType }
func (e *ReferralEvent) PartnerID() uuid.UUID  { return e.partnerID }
func (e *ReferralEvent) UserID() *uuid.UUID    { return e.userID }
func (e *ReferralEvent) SessionID() string     { return e.sessionID }
func (e *ReferralEvent) OccurredAt() time.Time { return e.occurredAt }
