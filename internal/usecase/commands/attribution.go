package commands

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"storefront-partners/internal/domain/attribution"
	"storefront-partners/internal/domain/coupon"
	"storefront-partners/internal/infra"
	"storefront-partners/internal/pkg/clock"
	"storefront-partners/internal/usecase/shared"

	"github.com/google/uuid"
)

type AttributionCommands interface {
	Resolve(ctx context.Context, req ResolveRequest) (*ResolveResult, error)
}

type attributionUseCaseImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewAttributionUseCase(uow shared.UnitOfWork, clk clock.Clock) AttributionCommands {
	return &attributionUseCaseImpl{uow: uow, clock: clk}
}

type ResolveRequest struct {
	SessionID  string
	UserID     *uuid.UUID
	CouponCode *string
}

type ResolveResult struct {
	Resolution  attribution.Resolution
	PartnerCode *string
}

func (uc *attributionUseCaseImpl) Resolve(ctx context.Context, req ResolveRequest) (*ResolveResult, error) {
	sessionID, err := lookupSessionID(req.SessionID, req.UserID)
	if err != nil {
		return nil, err
	}

	now := uc.clock.Now()
	var result *ResolveResult
	err = uc.uow.WithinReadOnly(ctx, func(ctx context.Context, tx shared.Tx) error {
		var owner *attribution.CouponOwner
		if req.CouponCode != nil {
			c, derr := findCouponForAttribution(ctx, tx, *req.CouponCode)
			if derr != nil {
				return derr
			}
			if owner, derr = couponOwner(ctx, tx, c); derr != nil {
				return derr
			}
		}

		res, derr := resolveInTx(ctx, tx, now, sessionID, req.UserID, owner)
		if derr != nil {
			return derr
		}
		result, derr = withPartnerCode(ctx, tx, res)
		return derr
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// lookupSessionID allows an empty session when the user is known; checkout
// may happen on a device that never clicked a link.
func lookupSessionID(sessionID string, userID *uuid.UUID) (string, error) {
	if strings.TrimSpace(sessionID) == "" && userID != nil {
		return "", nil
	}
	return attribution.NewSessionID(sessionID)
}

func resolveInTx(ctx context.Context, tx shared.Tx, now time.Time, sessionID string, userID *uuid.UUID, owner *attribution.CouponOwner) (attribution.Resolution, error) {
	if owner != nil && owner.Active {
		return attribution.Resolve(now, owner, nil), nil
	}
	candidates, err := tx.Sessions().ListCandidates(ctx, sessionID, userID, now)
	if err != nil {
		return attribution.Resolution{}, err
	}
	return attribution.Resolve(now, owner, candidates), nil
}

// findCouponForAttribution returns nil for an unknown coupon: attribution then
// falls back to click history instead of failing the order.
func findCouponForAttribution(ctx context.Context, tx shared.Tx, code string) (*coupon.Coupon, error) {
	cc, err := coupon.NewCouponCode(code)
	if err != nil {
		slog.Warn("ignoring malformed coupon code for attribution", "coupon_code", code)
		return nil, nil
	}
	c, err := tx.Coupons().FindByCode(ctx, cc)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			slog.Warn("ignoring unknown coupon for attribution", "coupon_code", cc.String())
			return nil, nil
		}
		return nil, err
	}
	return c, nil
}

func couponOwner(ctx context.Context, tx shared.Tx, c *coupon.Coupon) (*attribution.CouponOwner, error) {
	if c == nil || !c.HasOwner() {
		return nil, nil
	}
	p, err := tx.Partners().FindByID(ctx, *c.OwnerPartnerID())
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			slog.Warn("coupon owner no longer exists", "coupon_code", c.Code().String())
			return nil, nil
		}
		return nil, err
	}
	return &attribution.CouponOwner{PartnerID: p.ID(), Active: p.IsActive()}, nil
}

func withPartnerCode(ctx context.Context, tx shared.Tx, res attribution.Resolution) (*ResolveResult, error) {
	result := &ResolveResult{Resolution: res}
	if !res.Attributed() {
		return result, nil
	}
	p, err := tx.Partners().FindByID(ctx, *res.PartnerID)
	if err != nil {
		return nil, err
	}
	code := p.Code().String()
	result.PartnerCode = &code
	return result, nil
}
