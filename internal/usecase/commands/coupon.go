package commands

import (
	"context"
	"time"

	"storefront-partners/internal/domain/coupon"
	"storefront-partners/internal/domain/partner"
	"storefront-partners/internal/infra"
	"storefront-partners/internal/pkg/clock"
	"storefront-partners/internal/usecase/shared"

	"github.com/google/uuid"
)

type CouponCommands interface {
	// Validate prices a coupon against a cart without consuming a use.
	Validate(ctx context.Context, code string, subtotal int64) (*CouponQuote, error)
	Create(ctx context.Context, req CreateCouponRequest) (*coupon.Coupon, error)
}

type couponUseCaseImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewCouponUseCase(uow shared.UnitOfWork, clk clock.Clock) CouponCommands {
	return &couponUseCaseImpl{uow: uow, clock: clk}
}

type CouponQuote struct {
	Code             string
	Subtotal         int64
	Discount         int64
	Total            int64
	OwnerPartnerID   *uuid.UUID
	OwnerPartnerCode *string
}

type CreateCouponRequest struct {
	Code             string
	Type             string
	Value            int64
	Active           bool
	StartsAt         time.Time
	EndsAt           time.Time
	UsageLimit       *int32
	MinOrderAmount   *int64
	OwnerPartnerCode *string
}

func (uc *couponUseCaseImpl) Validate(ctx context.Context, code string, subtotal int64) (*CouponQuote, error) {
	if subtotal < 0 {
		return nil, coupon.ErrNegativeSubtotal
	}
	cc, err := coupon.NewCouponCode(code)
	if err != nil {
		return nil, coupon.ErrCouponNotFound
	}

	now := uc.clock.Now()
	var quote *CouponQuote
	err = uc.uow.WithinReadOnly(ctx, func(ctx context.Context, tx shared.Tx) error {
		c, derr := tx.Coupons().FindByCode(ctx, cc)
		if derr != nil {
			return notFoundAs(derr, coupon.ErrCouponNotFound)
		}
		discount, derr := c.Price(now, subtotal)
		if derr != nil {
			return derr
		}

		quote = &CouponQuote{
			Code:           c.Code().String(),
			Subtotal:       subtotal,
			Discount:       discount,
			Total:          subtotal - discount,
			OwnerPartnerID: c.OwnerPartnerID(),
		}
		if !c.HasOwner() {
			return nil
		}
		owner, derr := tx.Partners().FindByID(ctx, *c.OwnerPartnerID())
		if derr != nil {
			return derr
		}
		ownerCode := owner.Code().String()
		quote.OwnerPartnerCode = &ownerCode
		return nil
	})
	if err != nil {
		return nil, err
	}
	return quote, nil
}

func (uc *couponUseCaseImpl) Create(ctx context.Context, req CreateCouponRequest) (*coupon.Coupon, error) {
	var ownerCode *partner.Code
	if req.OwnerPartnerCode != nil {
		pc, err := partner.NewCode(*req.OwnerPartnerCode)
		if err != nil {
			return nil, err
		}
		ownerCode = &pc
	}

	now := uc.clock.Now()
	var created *coupon.Coupon
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var ownerID *uuid.UUID
		if ownerCode != nil {
			owner, derr := tx.Partners().FindByCode(ctx, *ownerCode)
			if derr != nil {
				return notFoundAs(derr, partner.ErrPartnerNotFound)
			}
			id := owner.ID()
			ownerID = &id
		}

		c, derr := coupon.NewCoupon(coupon.Params{
			Code:           req.Code,
			Type:           req.Type,
			Value:          req.Value,
			Active:         req.Active,
			StartsAt:       req.StartsAt,
			EndsAt:         req.EndsAt,
			UsageLimit:     req.UsageLimit,
			MinOrderAmount: req.MinOrderAmount,
			OwnerPartnerID: ownerID,
		}, now)
		if derr != nil {
			return derr
		}
		if derr = tx.Coupons().Create(ctx, c); derr != nil {
			if infra.IsKind(derr, infra.KindDuplicateKey) {
				return coupon.ErrDuplicateCouponCode
			}
			return derr
		}
		created = c
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}
