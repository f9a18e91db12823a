package payout

import (
	"time"

	"storefront-partners/internal/domain/partner"
	"storefront-partners/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrPayoutNotFound        = errs.Sentinel("payout not found", errs.ErrNotFound)
	ErrInvalidTransition     = errs.Sentinel("payout status transition not allowed", errs.ErrInvalidState)
	ErrEmptyPayout           = errs.Sentinel("payout needs at least one commission", errs.ErrValidation)
	ErrPayoutInFlight        = errs.Sentinel("partner already has a payout in flight", errs.ErrDuplicateOperation)
	ErrSettlementRejected    = errs.Sentinel("settlement gateway rejected the payout", errs.ErrDownstreamFailure)
	ErrSettlementUnconfirmed = errs.Sentinel("settlement gateway did not confirm the payout", errs.ErrDownstreamFailure)
)

type Status string

const (
	StatusRequested Status = "REQUESTED"
	StatusSubmitted Status = "SUBMITTED"
	StatusSettled   Status = "SETTLED"
	StatusFailed    Status = "FAILED"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) InFlight() bool {
	return s == StatusRequested || s == StatusSubmitted
}

// A FAILED payout can still settle: the processor's confirmation outranks our record of a rejection.
var transitions = map[Status][]Status{
	StatusRequested: {StatusSubmitted, StatusSettled, StatusFailed},
	StatusSubmitted: {StatusSettled, StatusFailed},
	StatusFailed:    {StatusSettled},
}

func (s Status) CanTransitionTo(to Status) bool {
	for _, next := range transitions[s] {
		if next == to {
			return true
		}
	}
	return false
}

// Payout is a request to pay a partner the sum of the listed commissions.
// It carries a snapshot of the bank account taken when it was created.
type Payout struct {
	id            uuid.UUID
	batchID       uuid.UUID
	partnerID     uuid.UUID
	amount        int64
	currency      string
	bank          partner.BankAccount
	items         []Payable
	status        Status
	failureReason *string
	settledAt     *time.Time
	createdAt     time.Time
	updatedAt     time.Time
}

func NewPayout(batchID uuid.UUID, acc Accrual, currency string, bank partner.BankAccount, now time.Time) (*Payout, error) {
	if len(acc.Items) == 0 || acc.Total <= 0 {
		return nil, ErrEmptyPayout
	}
	if !bank.IsComplete() {
		return nil, partner.ErrNoBankAccount
	}
	items := make([]Payable, len(acc.Items))
	copy(items, acc.Items)

	return &Payout{
		id:        uuid.New(),
		batchID:   batchID,
		partnerID: acc.PartnerID,
		amount:    acc.Total,
		currency:  currency,
		bank:      bank,
		items:     items,
		status:    StatusRequested,
		createdAt: now,
		updatedAt: now,
	}, nil
}

func ReconstructPayout(
	id, batchID, partnerID uuid.UUID,
	amount int64,
	currency string,
	bank partner.BankAccount,
	items []Payable,
	status Status,
	failureReason *string,
	settledAt *time.Time,
	createdAt, updatedAt time.Time,
) *Payout {
	return &Payout{
		id:            id,
		batchID:       batchID,
		partnerID:     partnerID,
		amount:        amount,
		currency:      currency,
		bank:          bank,
		items:         items,
		status:        status,
		failureReason: failureReason,
		settledAt:     settledAt,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
	}
}

func (p *Payout) CommissionIDs() []uuid.UUID {
	ids := make([]uuid.UUID, len(p.items))
	for i, item := range p.items {
		ids[i] = item.CommissionID
	}
	return ids
}

func (p *Payout) transition(to Status, now time.Time) error {
	if !p.status.CanTransitionTo(to) {
		return errs.Wrapf(ErrInvalidTransition, "%s -> %s", p.status, to)
	}
	p.status = to
	p.updatedAt = now
	return nil
}

func (p *Payout) MarkSubmitted(now time.Time) error {
	return p.transition(StatusSubmitted, now)
}

func (p *Payout) MarkSettled(now time.Time) error {
	if err := p.transition(StatusSettled, now); err != nil {
		return err
	}
	p.settledAt = &now
	return nil
}

func (p *Payout) MarkFailed(reason string, now time.Time) error {
	if err := p.transition(StatusFailed, now); err != nil {
		return err
	}
	p.failureReason = &reason
	return nil
}

func (p *Payout) ID() uuid.UUID             { return p.id }
func (p *Payout) BatchID() uuid.UUID        { return p.batchID }
func (p *Payout) PartnerID() uuid.UUID      { return p.partnerID }
func (p *Payout) Amount() int64             { return p.amount }
func (p *Payout) Currency() string          { return p.currency }
func (p *Payout) Bank() partner.BankAccount { return p.bank }
func (p *Payout) Items() []Payable          { return p.items }
func (p *Payout) Status() Status            { return p.status }
func (p *Payout) FailureReason() *string    { return p.failureReason }
func (p *Payout) SettledAt() *time.Time     { return p.settledAt }
func (p *Payout) CreatedAt() time.Time      { return p.createdAt }
func (p *Payout) UpdatedAt() time.Time      { return p.updatedAt }

// Batch records one run of the payout cycle.
type Batch struct {
	id           uuid.UUID
	threshold    int64
	startedAt    time.Time
	finishedAt   *time.Time
	partnerCount int32
	totalAmount  int64
}

func NewBatch(threshold int64, now time.Time) *Batch {
	return &Batch{id: uuid.New(), threshold: threshold, startedAt: now}
}

func ReconstructBatch(id uuid.UUID, threshold int64, startedAt time.Time, finishedAt *time.Time, partnerCount int32, totalAmount int64) *Batch {
	return &Batch{
		id:           id,
		threshold:    threshold,
		startedAt:    startedAt,
		finishedAt:   finishedAt,
		partnerCount: partnerCount,
		totalAmount:  totalAmount,
	}
}

func (b *Batch) Include(p *Payout) {
	b.partnerCount++
	b.totalAmount += p.Amount()
}

func (b *Batch) Finish(now time.Time) {
	b.finishedAt = &now
}

func (b *Batch) ID() uuid.UUID          { return b.id }
func (b *Batch) Threshold() int64       { return b.threshold }
func (b *Batch) StartedAt() time.Time   { return b.startedAt }
func (b *Batch) FinishedAt() *time.Time { return b.finishedAt }
func (b *Batch) PartnerCount() int32    { return b.partnerCount }
func (b *Batch) TotalAmount() int64     { return b.totalAmount }
