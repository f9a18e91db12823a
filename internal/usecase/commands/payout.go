package commands

import (
	"context"
	"log/slog"
	"time"

	"storefront-partners/internal/domain/partner"
	"storefront-partners/internal/domain/payout"
	"storefront-partners/internal/infra"
	"storefront-partners/internal/pkg/clock"
	"storefront-partners/internal/pkg/errs"
	"storefront-partners/internal/usecase/shared"

	"github.com/google/uuid"
)

const defaultFailureReason = "settlement failed"

type PayoutCommands interface {
	// RunCycle pays every partner whose unpaid commissions reach the threshold.
	// A nil override uses the configured threshold.
	RunCycle(ctx context.Context, thresholdOverride *int64) (*PayoutCycleResult, error)
	ConfirmSettlement(ctx context.Context, req ConfirmSettlementRequest) (*payout.Payout, error)
}

// ResubmitAfter is how long a payout may sit in REQUESTED before a cycle resubmits it.
type PayoutSettings struct {
	Threshold     int64
	Currency      string
	ResubmitAfter time.Duration
}

type payoutUseCaseImpl struct {
	uow      shared.UnitOfWork
	clock    clock.Clock
	gateway  SettlementGateway
	settings PayoutSettings
}

func NewPayoutUseCase(uow shared.UnitOfWork, clk clock.Clock, gateway SettlementGateway, settings PayoutSettings) PayoutCommands {
	return &payoutUseCaseImpl{uow: uow, clock: clk, gateway: gateway, settings: settings}
}

type SkippedPartner struct {
	PartnerID uuid.UUID
	Reason    string
}

// Unconfirmed payouts got no definite answer from the gateway and stay REQUESTED.
// Resubmitted holds payouts left REQUESTED by earlier cycles, as they stand after this cycle's retry.
type PayoutCycleResult struct {
	Batch       *payout.Batch
	Submitted   []*payout.Payout
	Failed      []*payout.Payout
	Unconfirmed []*payout.Payout
	Resubmitted []*payout.Payout
	Skipped     []SkippedPartner
	Deferred    []payout.Accrual
}

type ConfirmSettlementRequest struct {
	PayoutID uuid.UUID
	Success  bool
	Reason   *string
}

func (uc *payoutUseCaseImpl) RunCycle(ctx context.Context, thresholdOverride *int64) (*PayoutCycleResult, error) {
	threshold := uc.settings.Threshold
	if thresholdOverride != nil {
		t, err := payout.NewThreshold(*thresholdOverride)
		if err != nil {
			return nil, err
		}
		threshold = t
	}
	if threshold <= 0 {
		threshold = payout.DefaultThreshold
	}

	resubmitted, err := uc.resubmitStale(ctx)
	if err != nil {
		return nil, err
	}

	batch := payout.NewBatch(threshold, uc.clock.Now())
	var (
		eligible, deferred []payout.Accrual
		inflight           map[uuid.UUID]bool
	)
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if derr := tx.Payouts().CreateBatch(ctx, batch); derr != nil {
			return derr
		}
		payables, derr := tx.Commissions().ListPayable(ctx)
		if derr != nil {
			return derr
		}
		ids, derr := tx.Payouts().InflightPartnerIDs(ctx)
		if derr != nil {
			return derr
		}
		inflight = make(map[uuid.UUID]bool, len(ids))
		for _, id := range ids {
			inflight[id] = true
		}
		eligible, deferred = payout.Plan(payables, threshold)
		return nil
	})
	if err != nil {
		return nil, errs.Wrap(err, "failed to start payout batch")
	}

	result := &PayoutCycleResult{Batch: batch, Resubmitted: resubmitted, Deferred: deferred}
	for _, acc := range eligible {
		if inflight[acc.PartnerID] {
			result.Skipped = append(result.Skipped, SkippedPartner{PartnerID: acc.PartnerID, Reason: "payout already in flight"})
			continue
		}

		p, reason, perr := uc.payPartner(ctx, batch, acc.PartnerID, threshold)
		switch {
		case perr != nil:
			slog.Error("payout for partner aborted",
				"batch_id", batch.ID().String(),
				"partner_id", acc.PartnerID.String(),
				"error", perr.Error())
			result.Skipped = append(result.Skipped, SkippedPartner{PartnerID: acc.PartnerID, Reason: perr.Error()})
		case p == nil:
			result.Skipped = append(result.Skipped, SkippedPartner{PartnerID: acc.PartnerID, Reason: reason})
		case p.Status() == payout.StatusFailed:
			batch.Include(p)
			result.Failed = append(result.Failed, p)
		case p.Status() == payout.StatusRequested:
			batch.Include(p)
			result.Unconfirmed = append(result.Unconfirmed, p)
		default:
			batch.Include(p)
			result.Submitted = append(result.Submitted, p)
		}
	}

	batch.Finish(uc.clock.Now())
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Payouts().FinishBatch(ctx, batch)
	})
	if err != nil {
		return nil, errs.Wrap(err, "failed to finish payout batch")
	}

	slog.Info("payout cycle finished",
		"batch_id", batch.ID().String(),
		"threshold", threshold,
		"submitted", len(result.Submitted),
		"failed", len(result.Failed),
		"unconfirmed", len(result.Unconfirmed),
		"resubmitted", len(result.Resubmitted),
		"skipped", len(result.Skipped),
		"deferred", len(result.Deferred),
		"total_amount", batch.TotalAmount())
	return result, nil
}

// payPartner creates one payout in its own transaction, then submits it.
// A nil payout with a reason means the partner was skipped for this cycle.
func (uc *payoutUseCaseImpl) payPartner(ctx context.Context, batch *payout.Batch, partnerID uuid.UUID, threshold int64) (*payout.Payout, string, error) {
	var (
		created *payout.Payout
		skip    string
	)
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		p, derr := tx.Partners().LockByID(ctx, partnerID)
		if derr != nil {
			return derr
		}
		busy, derr := tx.Payouts().HasInflight(ctx, partnerID)
		if derr != nil {
			return derr
		}
		if busy {
			skip = "payout already in flight"
			return nil
		}

		// Re-read under the partner lock; reviews may have changed the set since planning.
		payables, derr := tx.Commissions().ListPayableByPartner(ctx, partnerID)
		if derr != nil {
			return derr
		}
		eligible, _ := payout.Plan(payables, threshold)
		if len(eligible) == 0 {
			skip = "below threshold"
			return nil
		}

		po, derr := payout.NewPayout(batch.ID(), eligible[0], uc.settings.Currency, p.Bank(), uc.clock.Now())
		if errs.Is(derr, partner.ErrNoBankAccount) {
			slog.Warn("partner reached payout threshold without bank details",
				"partner_id", partnerID.String(),
				"partner_code", p.Code().String(),
				"amount", eligible[0].Total)
			skip = "no bank account on file"
			return nil
		}
		if derr != nil {
			return derr
		}
		if derr = tx.Payouts().Create(ctx, po); derr != nil {
			if infra.IsKind(derr, infra.KindDuplicateKey) {
				return payout.ErrPayoutInFlight
			}
			return derr
		}
		created = po
		return nil
	})
	if errs.Is(err, payout.ErrPayoutInFlight) {
		return nil, "payout already in flight", nil
	}
	if err != nil || created == nil {
		return nil, skip, err
	}

	submitted, err := uc.submit(ctx, created)
	return submitted, "", err
}

// resubmitStale retries payouts stuck in REQUESTED, either because the gateway never gave a
// definite answer or because the run died before recording it. The payout id is the
// idempotency key, so the processor pays each payout at most once.
func (uc *payoutUseCaseImpl) resubmitStale(ctx context.Context) ([]*payout.Payout, error) {
	cutoff := uc.clock.Now().Add(-uc.settings.ResubmitAfter)
	var stale []*payout.Payout
	err := uc.uow.WithinReadOnly(ctx, func(ctx context.Context, tx shared.Tx) error {
		var derr error
		stale, derr = tx.Payouts().ListStaleRequested(ctx, cutoff)
		return derr
	})
	if err != nil {
		return nil, errs.Wrap(err, "failed to list stale payouts")
	}

	resubmitted := make([]*payout.Payout, 0, len(stale))
	for _, po := range stale {
		slog.Info("resubmitting stale payout",
			"payout_id", po.ID().String(),
			"partner_id", po.PartnerID().String(),
			"requested_at", po.UpdatedAt())
		updated, serr := uc.submit(ctx, po)
		if serr != nil {
			slog.Error("payout resubmission aborted",
				"payout_id", po.ID().String(),
				"error", serr.Error())
			continue
		}
		resubmitted = append(resubmitted, updated)
	}
	return resubmitted, nil
}

// submit hands a REQUESTED payout to the gateway and records the answer. Only a definite
// rejection marks it FAILED; an unconfirmed submission leaves it REQUESTED for resubmitStale.
func (uc *payoutUseCaseImpl) submit(ctx context.Context, po *payout.Payout) (*payout.Payout, error) {
	// The gateway is called outside any transaction; no row lock is held across the network call.
	submitErr := uc.gateway.Submit(ctx, SettlementRequest{
		PayoutID:      po.ID(),
		PartnerID:     po.PartnerID(),
		Amount:        po.Amount(),
		Currency:      po.Currency(),
		BankName:      po.Bank().BankName(),
		AccountNumber: po.Bank().AccountNumber(),
		AccountHolder: po.Bank().AccountHolder(),
	})
	rejected := errs.Is(submitErr, payout.ErrSettlementRejected)
	if submitErr != nil && !rejected {
		slog.Warn("settlement outcome unknown; payout stays requested",
			"payout_id", po.ID().String(),
			"partner_id", po.PartnerID().String(),
			"error", submitErr.Error())
		return po, nil
	}
	if rejected {
		slog.Warn("settlement gateway rejected payout",
			"payout_id", po.ID().String(),
			"partner_id", po.PartnerID().String(),
			"error", submitErr.Error())
	}

	var updated *payout.Payout
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		locked, derr := tx.Payouts().LockByID(ctx, po.ID())
		if derr != nil {
			return derr
		}
		// A fast settlement callback may already have closed the payout.
		if locked.Status() != payout.StatusRequested {
			updated = locked
			return nil
		}
		now := uc.clock.Now()
		if rejected {
			derr = locked.MarkFailed(submitErr.Error(), now)
		} else {
			derr = locked.MarkSubmitted(now)
		}
		if derr != nil {
			return derr
		}
		if derr = tx.Payouts().UpdateStatus(ctx, locked); derr != nil {
			return derr
		}
		updated = locked
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (uc *payoutUseCaseImpl) ConfirmSettlement(ctx context.Context, req ConfirmSettlementRequest) (*payout.Payout, error) {
	var confirmed *payout.Payout
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		po, derr := tx.Payouts().LockByID(ctx, req.PayoutID)
		if derr != nil {
			return notFoundAs(derr, payout.ErrPayoutNotFound)
		}
		confirmed = po
		if po.Status() == payout.StatusSettled || (po.Status() == payout.StatusFailed && !req.Success) {
			slog.Info("ignoring settlement replay",
				"payout_id", po.ID().String(),
				"status", po.Status().String())
			return nil
		}
		if po.Status() == payout.StatusFailed {
			slog.Warn("settlement confirmed for a payout recorded as failed",
				"payout_id", po.ID().String(),
				"partner_id", po.PartnerID().String())
		}

		now := uc.clock.Now()
		if !req.Success {
			reason := defaultFailureReason
			if req.Reason != nil && *req.Reason != "" {
				reason = *req.Reason
			}
			if derr = po.MarkFailed(reason, now); derr != nil {
				return derr
			}
			return tx.Payouts().UpdateStatus(ctx, po)
		}

		paid, derr := tx.Commissions().MarkPaidByPayout(ctx, po.ID(), now)
		if derr != nil {
			return derr
		}
		if paid != int64(len(po.Items())) {
			slog.Warn("settled payout covered fewer payable commissions than it listed",
				"payout_id", po.ID().String(),
				"listed", len(po.Items()),
				"paid", paid)
		}
		if derr = po.MarkSettled(now); derr != nil {
			return derr
		}
		return tx.Payouts().UpdateStatus(ctx, po)
	})
	if err != nil {
		return nil, err
	}
	return confirmed, nil
}
