package commission

import (
	"strings"
	"time"

	"storefront-partners/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrCommissionNotFound = errs.Sentinel("commission not found", errs.ErrNotFound)
	ErrCommissionConflict = errs.Sentinel("order already credited to a different partner", errs.ErrDuplicateOperation)
	ErrNotPending         = errs.Sentinel("commission is no longer pending review", errs.ErrInvalidState)
	ErrNotPayable         = errs.Sentinel("commission is not payable", errs.ErrInvalidState)
	ErrInvalidDecision    = errs.Sentinel("review decision must be APPROVE or REJECT", errs.ErrValidation)
	ErrInvalidStatus      = errs.Sentinel("invalid commission status", errs.ErrValidation)
)

type Status string

const (
	StatusPending  Status = "PENDING"
	StatusApproved Status = "APPROVED"
	StatusPaid     Status = "PAID"
	StatusRejected Status = "REJECTED"
)

func (s Status) String() string {
	return string(s)
}

func NewStatus(s string) (Status, error) {
	st := Status(strings.ToUpper(strings.TrimSpace(s)))
	switch st {
	case StatusPending, StatusApproved, StatusPaid, StatusRejected:
		return st, nil
	default:
		return "", ErrInvalidStatus
	}
}

// Payable commissions count toward a partner's payout threshold.
func (s Status) Payable() bool {
	return s == StatusPending || s == StatusApproved
}

type Decision string

const (
	DecisionApprove Decision = "APPROVE"
	DecisionReject  Decision = "REJECT"
)

func NewDecision(s string) (Decision, error) {
	d := Decision(strings.ToUpper(strings.TrimSpace(s)))
	switch d {
	case DecisionApprove, DecisionReject:
		return d, nil
	default:
		return "", ErrInvalidDecision
	}
}

// Commission amount is fixed at creation and never recomputed.
type Commission struct {
	id         uuid.UUID
	orderID    string
	partnerID  uuid.UUID
	orderTotal int64
	rateBps    int32
	amount     int64
	status     Status
	reviewedAt *time.Time
	paidAt     *time.Time
	createdAt  time.Time
	updatedAt  time.Time
}

func NewCommission(orderID string, partnerID uuid.UUID, orderTotal int64, rateBps int32, amount int64, now time.Time) *Commission {
	return &Commission{
		id:         uuid.New(),
		orderID:    orderID,
		partnerID:  partnerID,
		orderTotal: orderTotal,
		rateBps:    rateBps,
		amount:     amount,
		status:     StatusPending,
		createdAt:  now,
		updatedAt:  now,
	}
}

func ReconstructCommission(
	id uuid.UUID,
	orderID string,
	partnerID uuid.UUID,
	orderTotal int64,
	rateBps int32,
	amount int64,
	status Status,
	reviewedAt, paidAt *time.Time,
	createdAt, updatedAt time.Time,
) *Commission {
	return &Commission{
		id:         id,
		orderID:    orderID,
		partnerID:  partnerID,
		orderTotal: orderTotal,
		rateBps:    rateBps,
		amount:     amount,
		status:     status,
		reviewedAt: reviewedAt,
		paidAt:     paidAt,
		createdAt:  createdAt,
		updatedAt:  updatedAt,
	}
}

func (c *Commission) Review(d Decision, now time.Time) error {
	if c.status != StatusPending {
		return ErrNotPending
	}
	switch d {
	case DecisionApprove:
		c.status = StatusApproved
	case DecisionReject:
		c.status = StatusRejected
	default:
		return ErrInvalidDecision
	}
	c.reviewedAt = &now
	c.updatedAt = now
	return nil
}

func (c *Commission) MarkPaid(now time.Time) error {
	if !c.status.Payable() {
		return ErrNotPayable
	}
	c.status = StatusPaid
	c.paidAt = &now
	c.updatedAt = now
	return nil
}

// SameCredit reports whether a replayed record call refers to this commission.
func (c *Commission) SameCredit(partnerID uuid.UUID) bool {
	return c.partnerID == partnerID
}

func (c *Commission) ID() uuid.UUID          { return c.id }
func (c *Commission) OrderID() string        { return c.orderID }
func (c *Commission) PartnerID() uuid.UUID   { return c.partnerID }
func (c *Commission) OrderTotal() int64      { return c.orderTotal }
func (c *Commission) RateBps() int32         { return c.rateBps }
func (c *Commission) Amount() int64          { return c.amount }
func (c *Commission) Status() Status         { return c.status }
func (c *Commission) ReviewedAt() *time.Time { return c.reviewedAt }
func (c *Commission) PaidAt() *time.Time     { return c.paidAt }
func (c *Commission) CreatedAt() time.Time   { return c.createdAt }
func (c *Commission) UpdatedAt() time.Time   { return c.updatedAt }
