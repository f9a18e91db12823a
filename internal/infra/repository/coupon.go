package repository

import (
	"context"
	"time"

	"storefront-partners/internal/domain/coupon"
	"storefront-partners/internal/infra"
	"storefront-partners/internal/infra/repository/converter"
	sqlc "storefront-partners/internal/infra/sqlc/generated"
	"storefront-partners/internal/pkg/pgconv"
)

type CouponQueries interface {
	CreateCoupon(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateCouponParams) (sqlc.Coupons, error)
	GetCouponByCode(ctx context.Context, db sqlc.DBTX, code string) (sqlc.Coupons, error)
	RedeemCoupon(ctx context.Context, db sqlc.DBTX, arg sqlc.RedeemCouponParams) (int64, error)
}

type CouponRepository struct {
	queries CouponQueries
	db      sqlc.DBTX
}

func NewCouponRepository(queries CouponQueries, db sqlc.DBTX) *CouponRepository {
	return &CouponRepository{queries: queries, db: db}
}

func (r *CouponRepository) Create(ctx context.Context, c *coupon.Coupon) error {
	if _, err := r.queries.CreateCoupon(ctx, r.db, converter.CouponToCreateParams(c)); err != nil {
		return infra.WrapRepoErr("failed to create coupon", err)
	}
	return nil
}

func (r *CouponRepository) FindByCode(ctx context.Context, code coupon.Code) (*coupon.Coupon, error) {
	row, err := r.queries.GetCouponByCode(ctx, r.db, code.String())
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("coupon not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get coupon", err)
	}
	c, err := converter.CouponFromRow(row)
	if err != nil {
		return nil, infra.WrapRepoErr("stored coupon is inconsistent", err)
	}
	return c, nil
}

// Redeem is a compare-and-increment; concurrent redemptions never overshoot the limit.
func (r *CouponRepository) Redeem(ctx context.Context, code coupon.Code, now time.Time) (bool, error) {
	n, err := r.queries.RedeemCoupon(ctx, r.db, sqlc.RedeemCouponParams{
		Code:      code.String(),
		UpdatedAt: pgconv.TimeToPgtype(now),
	})
	if err != nil {
		return false, infra.WrapRepoErr("failed to redeem coupon", err)
	}
	return n > 0, nil
}
