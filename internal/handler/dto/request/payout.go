package request

import (
	"storefront-partners/internal/usecase/commands"

	"github.com/google/uuid"
)

type RunPayoutCycleRequest struct {
	Threshold *int64 `json:"threshold,omitempty" binding:"omitempty,gt=0"`
}

type SettlementCallbackRequest struct {
	Success *bool   `json:"success" binding:"required"`
	Reason  *string `json:"reason,omitempty" binding:"omitempty,max=500"`
}

func (r SettlementCallbackRequest) ToCommand(payoutID uuid.UUID) commands.ConfirmSettlementRequest {
	return commands.ConfirmSettlementRequest{
		PayoutID: payoutID,
		Success:  *r.Success,
		Reason:   trimmedOrNil(r.Reason),
	}
}
