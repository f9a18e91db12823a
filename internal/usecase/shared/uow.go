package shared

import (
	"context"
	"time"

	"storefront-partners/internal/domain/attribution"
	"storefront-partners/internal/domain/commission"
	"storefront-partners/internal/domain/coupon"
	"storefront-partners/internal/domain/partner"
	"storefront-partners/internal/domain/payout"

	"github.com/google/uuid"
)

//go:generate mockgen -source=uow.go -destination=../../../tests/mock/shared/uow_mock.go -package=sharedmock

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: Read-only transaction for multi-table consistent reads
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
}

// Tx exposes repositories bound to one database transaction.
type Tx interface {
	Partners() PartnerRepository
	Sessions() SessionRepository
	ReferralEvents() ReferralEventRepository
	Coupons() CouponRepository
	OrderReferrals() OrderReferralRepository
	Commissions() CommissionRepository
	Payouts() PayoutRepository
}

type PartnerRepository interface {
	Create(ctx context.Context, p *partner.Partner) error
	FindByCode(ctx context.Context, code partner.Code) (*partner.Partner, error)
	FindByID(ctx context.Context, id uuid.UUID) (*partner.Partner, error)
	// LockByID takes a row lock for the rest of the transaction.
	LockByID(ctx context.Context, id uuid.UUID) (*partner.Partner, error)
	UpdateStatus(ctx context.Context, p *partner.Partner) error
	UpdateProfile(ctx context.Context, p *partner.Partner) error
}

type SessionRepository interface {
	// Upsert refreshes the (session, partner) row and returns the stored state.
	Upsert(ctx context.Context, s *attribution.Session) (*attribution.Session, error)
	ListCandidates(ctx context.Context, sessionID string, userID *uuid.UUID, now time.Time) ([]attribution.Candidate, error)
}

type ReferralEventRepository interface {
	Append(ctx context.Context, e *attribution.ReferralEvent) error
}

type CouponRepository interface {
	Create(ctx context.Context, c *coupon.Coupon) error
	FindByCode(ctx context.Context, code coupon.Code) (*coupon.Coupon, error)
	// Redeem increments usage unless the limit is reached; false means no row was updated.
	Redeem(ctx context.Context, code coupon.Code, now time.Time) (bool, error)
}

type OrderReferralRepository interface {
	// Insert returns false when the order already has a stored referral.
	Insert(ctx context.Context, o *attribution.OrderReferral) (bool, error)
	FindByOrderID(ctx context.Context, orderID string) (*attribution.OrderReferral, error)
}

type CommissionRepository interface {
	// Insert returns false when a commission for the order already exists.
	Insert(ctx context.Context, c *commission.Commission) (bool, error)
	FindByOrderID(ctx context.Context, orderID string) (*commission.Commission, error)
	FindByID(ctx context.Context, id uuid.UUID) (*commission.Commission, error)
	LockByID(ctx context.Context, id uuid.UUID) (*commission.Commission, error)
	UpdateStatus(ctx context.Context, c *commission.Commission) error
	// ListPayable returns unpaid commissions not held by an in-flight payout.
	ListPayable(ctx context.Context) ([]payout.Payable, error)
	ListPayableByPartner(ctx context.Context, partnerID uuid.UUID) ([]payout.Payable, error)
	MarkPaidByPayout(ctx context.Context, payoutID uuid.UUID, now time.Time) (int64, error)
}

type PayoutRepository interface {
	CreateBatch(ctx context.Context, b *payout.Batch) error
	FinishBatch(ctx context.Context, b *payout.Batch) error
	// Create inserts the payout together with its items.
	Create(ctx context.Context, p *payout.Payout) error
	FindByID(ctx context.Context, id uuid.UUID) (*payout.Payout, error)
	LockByID(ctx context.Context, id uuid.UUID) (*payout.Payout, error)
	UpdateStatus(ctx context.Context, p *payout.Payout) error
	HasInflight(ctx context.Context, partnerID uuid.UUID) (bool, error)
	InflightPartnerIDs(ctx context.Context) ([]uuid.UUID, error)
	// ListStaleRequested returns REQUESTED payouts last updated before the cutoff, oldest first.
	ListStaleRequested(ctx context.Context, before time.Time) ([]*payout.Payout, error)
}
