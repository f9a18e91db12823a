package response

import (
	"time"

	"storefront-partners/internal/usecase/commands"

	"github.com/google/uuid"
)

type FinalizeOrderResponse struct {
	OrderID         string              `json:"order_id"`
	AttributionType string              `json:"attribution_type"`
	PartnerID       *uuid.UUID          `json:"partner_id,omitempty"`
	PartnerCode     *string             `json:"partner_code,omitempty"`
	CouponCode      *string             `json:"coupon_code,omitempty"`
	Subtotal        int64               `json:"subtotal"`
	Discount        int64               `json:"discount"`
	Total           int64               `json:"total"`
	Commission      *CommissionResponse `json:"commission,omitempty"`
	Replayed        bool                `json:"replayed"`
	ResolvedAt      time.Time           `json:"resolved_at"`
}

func FromFinalizeResult(r *commands.FinalizeOrderResult) *FinalizeOrderResponse {
	res := &FinalizeOrderResponse{
		OrderID:         r.Referral.OrderID(),
		AttributionType: r.Referral.Type().String(),
		PartnerID:       r.Referral.PartnerID(),
		PartnerCode:     r.PartnerCode,
		CouponCode:      r.Referral.CouponCode(),
		Subtotal:        r.Referral.Subtotal(),
		Discount:        r.Referral.Discount(),
		Total:           r.Referral.Total(),
		Replayed:        r.Replayed,
		ResolvedAt:      r.Referral.ResolvedAt(),
	}
	if r.Commission != nil {
		res.Commission = FromCommission(r.Commission)
	}
	return res
}
