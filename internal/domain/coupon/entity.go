package coupon

import (
	"time"

	"storefront-partners/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrCouponNotFound      = errs.Sentinel("coupon not found", errs.ErrNotFound)
	ErrCouponInactive      = errs.Sentinel("coupon is not active", errs.ErrInvalidState)
	ErrCouponNotStarted    = errs.Sentinel("coupon is not yet valid", errs.ErrInvalidState)
	ErrCouponExpired       = errs.Sentinel("coupon has expired", errs.ErrInvalidState)
	ErrUsageLimitReached   = errs.Sentinel("coupon usage limit reached", errs.ErrPolicyViolation)
	ErrBelowMinimum        = errs.Sentinel("order subtotal is below the coupon minimum", errs.ErrPolicyViolation)
	ErrDuplicateCouponCode = errs.Sentinel("coupon code already exists", errs.ErrDuplicateOperation)
)

type Coupon struct {
	id             uuid.UUID
	code           Code
	discount       Discount
	active         bool
	startsAt       time.Time
	endsAt         time.Time
	usageLimit     *int32
	usageCount     int32
	minOrderAmount *int64
	ownerPartnerID *uuid.UUID
	createdAt      time.Time
	updatedAt      time.Time
}

type Params struct {
	Code           string
	Type           string
	Value          int64
	Active         bool
	StartsAt       time.Time
	EndsAt         time.Time
	UsageLimit     *int32
	MinOrderAmount *int64
	OwnerPartnerID *uuid.UUID
}

func NewCoupon(p Params, now time.Time) (*Coupon, error) {
	code, err := NewCouponCode(p.Code)
	if err != nil {
		return nil, err
	}
	kind, err := NewType(p.Type)
	if err != nil {
		return nil, err
	}
	discount, err := NewDiscount(kind, p.Value)
	if err != nil {
		return nil, err
	}
	if p.StartsAt.After(p.EndsAt) {
		return nil, ErrInvalidWindow
	}
	if p.UsageLimit != nil && *p.UsageLimit <= 0 {
		return nil, ErrInvalidUsageLimit
	}
	if p.MinOrderAmount != nil && *p.MinOrderAmount < 0 {
		return nil, ErrInvalidMinimum
	}

	return &Coupon{
		id:             uuid.New(),
		code:           code,
		discount:       discount,
		active:         p.Active,
		startsAt:       p.StartsAt,
		endsAt:         p.EndsAt,
		usageLimit:     p.UsageLimit,
		usageCount:     0,
		minOrderAmount: p.MinOrderAmount,
		ownerPartnerID: p.OwnerPartnerID,
		createdAt:      now,
		updatedAt:      now,
	}, nil
}

func ReconstructCoupon(
	id uuid.UUID,
	code Code,
	discount Discount,
	active bool,
	startsAt, endsAt time.Time,
	usageLimit *int32,
	usageCount int32,
	minOrderAmount *int64,
	ownerPartnerID *uuid.UUID,
	createdAt, updatedAt time.Time,
) *Coupon {
	return &Coupon{
		id:             id,
		code:           code,
		discount:       discount,
		active:         active,
		startsAt:       startsAt,
		endsAt:         endsAt,
		usageLimit:     usageLimit,
		usageCount:     usageCount,
		minOrderAmount: minOrderAmount,
		ownerPartnerID: ownerPartnerID,
		createdAt:      createdAt,
		updatedAt:      updatedAt,
	}
}

// Validate checks eligibility in a fixed order: active, started, not ended,
// usage left, minimum met. It never changes usage.
func (c *Coupon) Validate(now time.Time, subtotal int64) error {
	if subtotal < 0 {
		return ErrNegativeSubtotal
	}
	if !c.active {
		return ErrCouponInactive
	}
	if now.Before(c.startsAt) {
		return ErrCouponNotStarted
	}
	if now.After(c.endsAt) {
		return ErrCouponExpired
	}
	if c.usageLimit != nil && c.usageCount >= *c.usageLimit {
		return ErrUsageLimitReached
	}
	if c.minOrderAmount != nil && subtotal < *c.minOrderAmount {
		return ErrBelowMinimum
	}
	return nil
}

// Price validates and returns the discount for subtotal.
func (c *Coupon) Price(now time.Time, subtotal int64) (int64, error) {
	if err := c.Validate(now, subtotal); err != nil {
		return 0, err
	}
	return c.discount.Amount(subtotal), nil
}

// Redeem is the in-memory mirror of the guarded usage increment done in storage.
func (c *Coupon) Redeem(now time.Time) error {
	if c.usageLimit != nil && c.usageCount >= *c.usageLimit {
		return ErrUsageLimitReached
	}
	c.usageCount++
	c.updatedAt = now
	return nil
}

func (c *Coupon) HasOwner() bool {
	return c.ownerPartnerID != nil
}

func (c *Coupon) ID() uuid.UUID              { return c.id }
func (c *Coupon) Code() Code                 { return c.code }
func (c *Coupon) Discount() Discount         { return c.discount }
func (c *Coupon) IsActive() bool             { return c.active }
func (c *Coupon) StartsAt() time.Time        { return c.startsAt }
func (c *Coupon) EndsAt() time.Time          { return c.endsAt }
func (c *Coupon) UsageLimit() *int32         { return c.usageLimit }
func (c *Coupon) UsageCount() int32          { return c.usageCount }
func (c *Coupon) MinOrderAmount() *int64     { return c.minOrderAmount }
func (c *Coupon) OwnerPartnerID() *uuid.UUID { return c.ownerPartnerID }
func (c *Coupon) CreatedAt() time.Time       { return c.createdAt }
func (c *Coupon) UpdatedAt() time.Time       { return c.updatedAt }
