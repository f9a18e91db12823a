package response

import (
	"time"

	"storefront-partners/internal/domain/coupon"
	"storefront-partners/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type CouponQuoteResponse struct {
	Code             string     `json:"code"`
	Subtotal         int64      `json:"subtotal"`
	Discount         int64      `json:"discount"`
	Total            int64      `json:"total"`
	OwnerPartnerID   *uuid.UUID `json:"owner_partner_id,omitempty"`
	OwnerPartnerCode *string    `json:"owner_partner_code,omitempty"`
}

func FromCouponQuote(q *commands.CouponQuote) *CouponQuoteResponse {
	res := &CouponQuoteResponse{}
	_ = copier.Copy(res, q)
	return res
}

type CouponResponse struct {
	ID             uuid.UUID  `json:"id"`
	Code           string     `json:"code"`
	Type           string     `json:"type"`
	Value          int64      `json:"value"`
	Active         bool       `json:"active"`
	StartsAt       time.Time  `json:"starts_at"`
	EndsAt         time.Time  `json:"ends_at"`
	UsageLimit     *int32     `json:"usage_limit,omitempty"`
	UsageCount     int32      `json:"usage_count"`
	MinOrderAmount *int64     `json:"min_order_amount,omitempty"`
	OwnerPartnerID *uuid.UUID `json:"owner_partner_id,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
}

func FromCoupon(c *coupon.Coupon) *CouponResponse {
	return &CouponResponse{
		ID:             c.ID(),
		Code:           c.Code().String(),
		Type:           c.Discount().Type().String(),
		Value:          c.Discount().Value(),
		Active:         c.IsActive(),
		StartsAt:       c.StartsAt(),
		EndsAt:         c.EndsAt(),
		UsageLimit:     c.UsageLimit(),
		UsageCount:     c.UsageCount(),
		MinOrderAmount: c.MinOrderAmount(),
		OwnerPartnerID: c.OwnerPartnerID(),
		CreatedAt:      c.CreatedAt(),
	}
}
