package request

import (
	"strings"

	"storefront-partners/internal/usecase/commands"

	"github.com/google/uuid"
)

type FinalizeOrderRequest struct {
	OrderID    string     `json:"order_id" binding:"required,max=64"`
	SessionID  string     `json:"session_id" binding:"omitempty,max=128"`
	UserID     *uuid.UUID `json:"user_id,omitempty"`
	CouponCode *string    `json:"coupon_code,omitempty" binding:"omitempty,max=32"`
	Subtotal   int64      `json:"subtotal" binding:"min=0"`
	Total      int64      `json:"total" binding:"min=0,ltefield=Subtotal"`
}

func (r FinalizeOrderRequest) ToCommand() commands.FinalizeOrderRequest {
	return commands.FinalizeOrderRequest{
		OrderID:    strings.TrimSpace(r.OrderID),
		SessionID:  strings.TrimSpace(r.SessionID),
		UserID:     r.UserID,
		CouponCode: trimmedOrNil(r.CouponCode),
		Subtotal:   r.Subtotal,
		Total:      r.Total,
	}
}

type RecordCommissionRequest struct {
	OrderID    string    `json:"order_id" binding:"required,max=64"`
	PartnerID  uuid.UUID `json:"partner_id" binding:"required"`
	OrderTotal int64     `json:"order_total" binding:"min=0"`
}

func (r RecordCommissionRequest) ToCommand() commands.RecordCommissionRequest {
	return commands.RecordCommissionRequest{
		OrderID:    strings.TrimSpace(r.OrderID),
		PartnerID:  r.PartnerID,
		OrderTotal: r.OrderTotal,
	}
}

type ReviewCommissionRequest struct {
	Decision string `json:"decision" binding:"required"`
}
