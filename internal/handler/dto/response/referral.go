package response

import (
	"time"

	"storefront-partners/internal/usecase/commands"

	"github.com/google/uuid"
)

type ClickResponse struct {
	SessionID string    `json:"session_id"`
	PartnerID uuid.UUID `json:"partner_id"`
	ExpiresAt time.Time `json:"expires_at"`
}

func FromClickResult(r *commands.RecordClickResult) *ClickResponse {
	return &ClickResponse{
		SessionID: r.Session.SessionID(),
		PartnerID: r.Session.PartnerID(),
		ExpiresAt: r.Session.ExpiresAt(),
	}
}

type AttributionResponse struct {
	Attributed  bool       `json:"attributed"`
	PartnerID   *uuid.UUID `json:"partner_id,omitempty"`
	PartnerCode *string    `json:"partner_code,omitempty"`
	Type        string     `json:"type"`
	SessionID   string     `json:"session_id,omitempty"`
}

func FromResolveResult(r *commands.ResolveResult) *AttributionResponse {
	return &AttributionResponse{
		Attributed:  r.Resolution.Attributed(),
		PartnerID:   r.Resolution.PartnerID,
		PartnerCode: r.PartnerCode,
		Type:        r.Resolution.Type.String(),
		SessionID:   r.Resolution.SessionID,
	}
}
