package commands

import (
	"context"
	"time"

	"storefront-partners/internal/domain/attribution"
	"storefront-partners/internal/domain/commission"
	"storefront-partners/internal/domain/partner"
	"storefront-partners/internal/pkg/clock"
	"storefront-partners/internal/usecase/shared"

	"github.com/google/uuid"
)

type CommissionCommands interface {
	Record(ctx context.Context, req RecordCommissionRequest) (*RecordCommissionResult, error)
	Review(ctx context.Context, id uuid.UUID, decision string) (*commission.Commission, error)
}

type commissionUseCaseImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
	rules commission.RuleTable
}

func NewCommissionUseCase(uow shared.UnitOfWork, clk clock.Clock, rules commission.RuleTable) CommissionCommands {
	return &commissionUseCaseImpl{uow: uow, clock: clk, rules: rules}
}

type RecordCommissionRequest struct {
	OrderID    string
	PartnerID  uuid.UUID
	OrderTotal int64
}

// Duplicate is set when the order was already credited; the stored commission is returned unchanged.
type RecordCommissionResult struct {
	Commission *commission.Commission
	Duplicate  bool
}

func (uc *commissionUseCaseImpl) Record(ctx context.Context, req RecordCommissionRequest) (*RecordCommissionResult, error) {
	orderID, err := attribution.NewOrderID(req.OrderID)
	if err != nil {
		return nil, err
	}
	if req.OrderTotal < 0 {
		return nil, commission.ErrNegativeTotal
	}

	now := uc.clock.Now()
	var result *RecordCommissionResult
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var derr error
		result, derr = recordInTx(ctx, tx, uc.rules, now, orderID, req.PartnerID, req.OrderTotal)
		return derr
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func recordInTx(ctx context.Context, tx shared.Tx, rules commission.RuleTable, now time.Time, orderID string, partnerID uuid.UUID, total int64) (*RecordCommissionResult, error) {
	p, err := tx.Partners().FindByID(ctx, partnerID)
	if err != nil {
		return nil, notFoundAs(err, partner.ErrPartnerNotFound)
	}
	amount, rateBps, err := commission.Calculate(p.Level(), total, rules)
	if err != nil {
		return nil, err
	}

	c := commission.NewCommission(orderID, p.ID(), total, rateBps, amount, now)
	inserted, err := tx.Commissions().Insert(ctx, c)
	if err != nil {
		return nil, err
	}
	if inserted {
		return &RecordCommissionResult{Commission: c}, nil
	}

	existing, err := tx.Commissions().FindByOrderID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if !existing.SameCredit(p.ID()) {
		return nil, commission.ErrCommissionConflict
	}
	return &RecordCommissionResult{Commission: existing, Duplicate: true}, nil
}

func (uc *commissionUseCaseImpl) Review(ctx context.Context, id uuid.UUID, decision string) (*commission.Commission, error) {
	d, err := commission.NewDecision(decision)
	if err != nil {
		return nil, err
	}

	var reviewed *commission.Commission
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		c, derr := tx.Commissions().LockByID(ctx, id)
		if derr != nil {
			return notFoundAs(derr, commission.ErrCommissionNotFound)
		}
		if derr = c.Review(d, uc.clock.Now()); derr != nil {
			return derr
		}
		if derr = tx.Commissions().UpdateStatus(ctx, c); derr != nil {
			return derr
		}
		reviewed = c
		return nil
	})
	if err != nil {
		return nil, err
	}
	return reviewed, nil
}
