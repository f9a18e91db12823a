package request

import (
	"strings"

	"storefront-partners/internal/usecase/commands"

	"github.com/google/uuid"
)

type RecordClickRequest struct {
	PartnerCode string     `json:"partner_code" binding:"required,max=32"`
	SessionID   string     `json:"session_id" binding:"omitempty,max=128"`
	UserID      *uuid.UUID `json:"user_id,omitempty"`
}

// ToCommand prefers the explicit session id over the ref_sid cookie.
func (r RecordClickRequest) ToCommand(cookieSessionID string) commands.RecordClickRequest {
	sid := strings.TrimSpace(r.SessionID)
	if sid == "" {
		sid = cookieSessionID
	}
	return commands.RecordClickRequest{
		PartnerCode: r.PartnerCode,
		SessionID:   sid,
		UserID:      r.UserID,
	}
}

type ResolveAttributionRequest struct {
	SessionID  string     `json:"session_id" binding:"omitempty,max=128"`
	UserID     *uuid.UUID `json:"user_id,omitempty"`
	CouponCode *string    `json:"coupon_code,omitempty" binding:"omitempty,max=32"`
}

func (r ResolveAttributionRequest) ToCommand() commands.ResolveRequest {
	return commands.ResolveRequest{
		SessionID:  strings.TrimSpace(r.SessionID),
		UserID:     r.UserID,
		CouponCode: trimmedOrNil(r.CouponCode),
	}
}

func trimmedOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
