//go:build unit || e2e

package builder

import (
	"time"

	"storefront-partners/internal/domain/coupon"
	"storefront-partners/internal/pkg/ptr"

	"github.com/google/uuid"
)

type CouponBuilder struct {
	Code           string
	Type           string
	Value          int64
	Active         bool
	StartsAt       time.Time
	EndsAt         time.Time
	UsageLimit     *int32
	UsageCount     int32
	MinOrderAmount *int64
	OwnerPartnerID *uuid.UUID
	Now            time.Time
}

func NewCouponBuilder() *CouponBuilder {
	now := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)
	return &CouponBuilder{
		Code:     "SUMMER10",
		Type:     "PERCENT",
		Value:    10,
		Active:   true,
		StartsAt: now.AddDate(0, 0, -1),
		EndsAt:   now.AddDate(0, 1, 0),
		Now:      now,
	}
}

func (b *CouponBuilder) With(mutate func(*CouponBuilder)) *CouponBuilder {
	mutate(b)
	return b
}

func (b *CouponBuilder) Params() coupon.Params {
	return coupon.Params{
		Code:           b.Code,
		Type:           b.Type,
		Value:          b.Value,
		Active:         b.Active,
		StartsAt:       b.StartsAt,
		EndsAt:         b.EndsAt,
		UsageLimit:     b.UsageLimit,
		MinOrderAmount: b.MinOrderAmount,
		OwnerPartnerID: b.OwnerPartnerID,
	}
}

// BuildDomain creates a coupon and replays UsageCount redemptions onto it.
func (b *CouponBuilder) BuildDomain() (*coupon.Coupon, error) {
	c, err := coupon.NewCoupon(b.Params(), b.Now)
	if err != nil {
		return nil, err
	}
	if b.UsageCount == 0 {
		return c, nil
	}
	return coupon.ReconstructCoupon(
		c.ID(), c.Code(), c.Discount(), c.IsActive(), c.StartsAt(), c.EndsAt(),
		c.UsageLimit(), b.UsageCount, c.MinOrderAmount(), c.OwnerPartnerID(),
		c.CreatedAt(), c.UpdatedAt(),
	), nil
}

func (b *CouponBuilder) MustBuild() *coupon.Coupon {
	c, err := b.BuildDomain()
	if err != nil {
		panic(err)
	}
	return c
}

// Fluent builder methods
func (b *CouponBuilder) WithCode(code string) *CouponBuilder {
	b.Code = code
	return b
}

func (b *CouponBuilder) WithFixed(value int64) *CouponBuilder {
	b.Type = "FIXED"
	b.Value = value
	return b
}

func (b *CouponBuilder) WithPercent(value int64) *CouponBuilder {
	b.Type = "PERCENT"
	b.Value = value
	return b
}

func (b *CouponBuilder) WithUsage(count, limit int32) *CouponBuilder {
	b.UsageCount = count
	b.UsageLimit = ptr.To(limit)
	return b
}

func (b *CouponBuilder) WithMinOrder(amount int64) *CouponBuilder {
	b.MinOrderAmount = ptr.To(amount)
	return b
}

func (b *CouponBuilder) WithOwner(partnerID uuid.UUID) *CouponBuilder {
	b.OwnerPartnerID = &partnerID
	return b
}

func (b *CouponBuilder) Inactive() *CouponBuilder {
	b.Active = false
	return b
}

// AsSummer10 is the PERCENT 10 coupon with minimum 300,000 and 99 of 100 uses spent.
func (b *CouponBuilder) AsSummer10() *CouponBuilder {
	return b.WithCode("SUMMER10").WithPercent(10).WithMinOrder(300000).WithUsage(99, 100)
}
