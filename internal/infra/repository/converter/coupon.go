package converter

import (
	"storefront-partners/internal/domain/coupon"
	sqlc "storefront-partners/internal/infra/sqlc/generated"
	"storefront-partners/internal/pkg/pgconv"
)

func CouponToCreateParams(c *coupon.Coupon) sqlc.CreateCouponParams {
	return sqlc.CreateCouponParams{
		ID:             c.ID(),
		Code:           c.Code().String(),
		Type:           c.Discount().Type().String(),
		Value:          c.Discount().Value(),
		IsActive:       c.IsActive(),
		StartsAt:       pgconv.TimeToPgtype(c.StartsAt()),
		EndsAt:         pgconv.TimeToPgtype(c.EndsAt()),
		UsageLimit:     pgconv.Int32PtrToPgtype(c.UsageLimit()),
		UsageCount:     c.UsageCount(),
		MinOrderAmount: pgconv.Int64PtrToPgtype(c.MinOrderAmount()),
		PartnerID:      pgconv.UUIDPtrToPgtype(c.OwnerPartnerID()),
		CreatedAt:      pgconv.TimeToPgtype(c.CreatedAt()),
		UpdatedAt:      pgconv.TimeToPgtype(c.UpdatedAt()),
	}
}

func CouponFromRow(row sqlc.Coupons) (*coupon.Coupon, error) {
	discount, err := coupon.NewDiscount(coupon.Type(row.Type), row.Value)
	if err != nil {
		return nil, err
	}
	return coupon.ReconstructCoupon(
		row.ID,
		coupon.Code(row.Code),
		discount,
		row.IsActive,
		pgconv.TimeFromPgtype(row.StartsAt),
		pgconv.TimeFromPgtype(row.EndsAt),
		pgconv.Int32PtrFromPgtype(row.UsageLimit),
		row.UsageCount,
		pgconv.Int64PtrFromPgtype(row.MinOrderAmount),
		pgconv.UUIDPtrFromPgtype(row.PartnerID),
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	), nil
}
