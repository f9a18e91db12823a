package commands

import (
	"context"

	"storefront-partners/internal/domain/attribution"
	"storefront-partners/internal/domain/commission"
	"storefront-partners/internal/domain/coupon"
	"storefront-partners/internal/infra"
	"storefront-partners/internal/pkg/clock"
	"storefront-partners/internal/pkg/errs"
	"storefront-partners/internal/usecase/shared"

	"github.com/google/uuid"
)

// errOrderRaced aborts a finalization that lost the insert race so its coupon redemption rolls back.
var errOrderRaced = errs.New("order finalized concurrently")

type OrderCommands interface {
	// Finalize attributes a paid order exactly once. Replays return the stored outcome.
	Finalize(ctx context.Context, req FinalizeOrderRequest) (*FinalizeOrderResult, error)
}

type orderUseCaseImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
	rules commission.RuleTable
}

func NewOrderUseCase(uow shared.UnitOfWork, clk clock.Clock, rules commission.RuleTable) OrderCommands {
	return &orderUseCaseImpl{uow: uow, clock: clk, rules: rules}
}

type FinalizeOrderRequest struct {
	OrderID    string
	SessionID  string
	UserID     *uuid.UUID
	CouponCode *string
	Subtotal   int64
	Total      int64
}

type FinalizeOrderResult struct {
	Referral    *attribution.OrderReferral
	Commission  *commission.Commission
	PartnerCode *string
	Replayed    bool
}

func (uc *orderUseCaseImpl) Finalize(ctx context.Context, req FinalizeOrderRequest) (*FinalizeOrderResult, error) {
	orderID, err := attribution.NewOrderID(req.OrderID)
	if err != nil {
		return nil, err
	}
	sessionID, err := lookupSessionID(req.SessionID, req.UserID)
	if err != nil {
		return nil, err
	}
	if req.Subtotal < 0 || req.Total < 0 {
		return nil, attribution.ErrNegativeAmount
	}
	var couponCode *coupon.Code
	if req.CouponCode != nil {
		cc, cerr := coupon.NewCouponCode(*req.CouponCode)
		if cerr != nil {
			return nil, coupon.ErrCouponNotFound
		}
		couponCode = &cc
	}

	now := uc.clock.Now()
	var result *FinalizeOrderResult
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		stored, derr := loadOutcome(ctx, tx, orderID)
		if derr != nil {
			return derr
		}
		if stored != nil {
			result = stored
			return nil
		}

		var (
			owner    *attribution.CouponOwner
			discount int64
			applied  *string
		)
		if couponCode != nil {
			c, derr := tx.Coupons().FindByCode(ctx, *couponCode)
			if derr != nil {
				return notFoundAs(derr, coupon.ErrCouponNotFound)
			}
			if discount, derr = c.Price(now, req.Subtotal); derr != nil {
				return derr
			}
			redeemed, derr := tx.Coupons().Redeem(ctx, c.Code(), now)
			if derr != nil {
				return derr
			}
			if !redeemed {
				return coupon.ErrUsageLimitReached
			}
			if owner, derr = couponOwner(ctx, tx, c); derr != nil {
				return derr
			}
			code := c.Code().String()
			applied = &code
		}

		res, derr := resolveInTx(ctx, tx, now, sessionID, req.UserID, owner)
		if derr != nil {
			return derr
		}
		ref, derr := attribution.NewOrderReferral(orderID, res, sessionID, req.UserID, applied, attribution.OrderAmounts{
			Subtotal: req.Subtotal,
			Discount: discount,
			Total:    req.Total,
		}, now)
		if derr != nil {
			return derr
		}
		inserted, derr := tx.OrderReferrals().Insert(ctx, ref)
		if derr != nil {
			return derr
		}
		if !inserted {
			return errOrderRaced
		}

		result = &FinalizeOrderResult{Referral: ref}
		if !res.Attributed() {
			return nil
		}
		recorded, derr := recordInTx(ctx, tx, uc.rules, now, orderID, *res.PartnerID, req.Total)
		if derr != nil {
			return derr
		}
		result.Commission = recorded.Commission
		result.PartnerCode, derr = partnerCode(ctx, tx, *res.PartnerID)
		return derr
	})
	if errs.Is(err, errOrderRaced) {
		return uc.replay(ctx, orderID)
	}
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (uc *orderUseCaseImpl) replay(ctx context.Context, orderID string) (*FinalizeOrderResult, error) {
	var result *FinalizeOrderResult
	err := uc.uow.WithinReadOnly(ctx, func(ctx context.Context, tx shared.Tx) error {
		stored, derr := loadOutcome(ctx, tx, orderID)
		if derr != nil {
			return derr
		}
		if stored == nil {
			return errs.Wrap(errOrderRaced, "stored outcome disappeared")
		}
		result = stored
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// loadOutcome returns nil when the order has not been finalized yet.
func loadOutcome(ctx context.Context, tx shared.Tx, orderID string) (*FinalizeOrderResult, error) {
	ref, err := tx.OrderReferrals().FindByOrderID(ctx, orderID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, nil
		}
		return nil, err
	}

	result := &FinalizeOrderResult{Referral: ref, Replayed: true}
	if ref.PartnerID() == nil {
		return result, nil
	}
	c, err := tx.Commissions().FindByOrderID(ctx, orderID)
	if err != nil && !infra.IsKind(err, infra.KindNotFound) {
		return nil, err
	}
	result.Commission = c
	if result.PartnerCode, err = partnerCode(ctx, tx, *ref.PartnerID()); err != nil {
		return nil, err
	}
	return result, nil
}

func partnerCode(ctx context.Context, tx shared.Tx, id uuid.UUID) (*string, error) {
	p, err := tx.Partners().FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	code := p.Code().String()
	return &code, nil
}
