package commands

import (
	"context"
	"log/slog"

	"storefront-partners/internal/domain/attribution"
	"storefront-partners/internal/domain/partner"
	"storefront-partners/internal/pkg/clock"
	"storefront-partners/internal/usecase/shared"

	"github.com/google/uuid"
)

type ReferralCommands interface {
	RecordClick(ctx context.Context, req RecordClickRequest) (*RecordClickResult, error)
}

type referralUseCaseImpl struct {
	uow       shared.UnitOfWork
	clock     clock.Clock
	publisher EventPublisher
}

func NewReferralUseCase(uow shared.UnitOfWork, clk clock.Clock, publisher EventPublisher) ReferralCommands {
	return &referralUseCaseImpl{uow: uow, clock: clk, publisher: publisher}
}

type RecordClickRequest struct {
	PartnerCode string
	SessionID   string
	UserID      *uuid.UUID
}

type RecordClickResult struct {
	Session *attribution.Session
}

func (uc *referralUseCaseImpl) RecordClick(ctx context.Context, req RecordClickRequest) (*RecordClickResult, error) {
	sessionID, err := attribution.NewSessionID(req.SessionID)
	if err != nil {
		return nil, err
	}
	// A code that cannot exist is reported the same as an unknown one.
	code, err := partner.NewCode(req.PartnerCode)
	if err != nil {
		return nil, partner.ErrPartnerNotFound
	}

	now := uc.clock.Now()
	var (
		stored *attribution.Session
		event  *attribution.ReferralEvent
	)
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		p, derr := tx.Partners().FindByCode(ctx, code)
		if derr != nil {
			return notFoundAs(derr, partner.ErrPartnerNotFound)
		}
		if derr = p.EnsureActive(); derr != nil {
			return derr
		}

		sess, derr := attribution.NewSession(sessionID, p.ID(), req.UserID, attribution.SourceRefLink, now)
		if derr != nil {
			return derr
		}
		stored, derr = tx.Sessions().Upsert(ctx, sess)
		if derr != nil {
			return derr
		}

		event = attribution.NewClickEvent(p.ID(), req.UserID, sessionID, now)
		return tx.ReferralEvents().Append(ctx, event)
	})
	if err != nil {
		return nil, err
	}

	uc.publish(ctx, event, code)
	return &RecordClickResult{Session: stored}, nil
}

// publish runs after commit; the click is already recorded whatever happens here.
func (uc *referralUseCaseImpl) publish(ctx context.Context, e *attribution.ReferralEvent, code partner.Code) {
	if uc.publisher == nil {
		return
	}
	msg := ReferralEventMessage{
		EventID:     e.ID(),
		Type:        string(e.Type()),
		PartnerID:   e.PartnerID(),
		PartnerCode: code.String(),
		SessionID:   e.SessionID(),
		UserID:      e.UserID(),
		OccurredAt:  e.OccurredAt(),
	}
	if err := uc.publisher.Publish(ctx, msg); err != nil {
		slog.Warn("failed to forward referral event",
			"event_id", e.ID().String(),
			"partner_code", code.String(),
			"error", err.Error())
	}
}
