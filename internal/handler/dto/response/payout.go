package response

import (
	"time"

	"storefront-partners/internal/domain/payout"
	"storefront-partners/internal/usecase/commands"

	"github.com/google/uuid"
)

type PayoutResponse struct {
	ID            uuid.UUID   `json:"id"`
	BatchID       uuid.UUID   `json:"batch_id"`
	PartnerID     uuid.UUID   `json:"partner_id"`
	Amount        int64       `json:"amount"`
	Currency      string      `json:"currency"`
	Status        string      `json:"status"`
	CommissionIDs []uuid.UUID `json:"commission_ids"`
	FailureReason *string     `json:"failure_reason,omitempty"`
	SettledAt     *time.Time  `json:"settled_at,omitempty"`
	CreatedAt     time.Time   `json:"created_at"`
}

func FromPayout(p *payout.Payout) *PayoutResponse {
	return &PayoutResponse{
		ID:            p.ID(),
		BatchID:       p.BatchID(),
		PartnerID:     p.PartnerID(),
		Amount:        p.Amount(),
		Currency:      p.Currency(),
		Status:        p.Status().String(),
		CommissionIDs: p.CommissionIDs(),
		FailureReason: p.FailureReason(),
		SettledAt:     p.SettledAt(),
		CreatedAt:     p.CreatedAt(),
	}
}

type SkippedPartnerResponse struct {
	PartnerID uuid.UUID `json:"partner_id"`
	Reason    string    `json:"reason"`
}

type DeferredAccrualResponse struct {
	PartnerID uuid.UUID `json:"partner_id"`
	Total     int64     `json:"total"`
}

type PayoutCycleResponse struct {
	BatchID      uuid.UUID                 `json:"batch_id"`
	Threshold    int64                     `json:"threshold"`
	StartedAt    time.Time                 `json:"started_at"`
	FinishedAt   *time.Time                `json:"finished_at,omitempty"`
	PartnerCount int32                     `json:"partner_count"`
	TotalAmount  int64                     `json:"total_amount"`
	Submitted    []*PayoutResponse         `json:"submitted"`
	Failed       []*PayoutResponse         `json:"failed"`
	Unconfirmed  []*PayoutResponse         `json:"unconfirmed"`
	Resubmitted  []*PayoutResponse         `json:"resubmitted"`
	Skipped      []SkippedPartnerResponse  `json:"skipped"`
	Deferred     []DeferredAccrualResponse `json:"deferred"`
}

func FromPayoutCycle(r *commands.PayoutCycleResult) *PayoutCycleResponse {
	res := &PayoutCycleResponse{
		BatchID:      r.Batch.ID(),
		Threshold:    r.Batch.Threshold(),
		StartedAt:    r.Batch.StartedAt(),
		FinishedAt:   r.Batch.FinishedAt(),
		PartnerCount: r.Batch.PartnerCount(),
		TotalAmount:  r.Batch.TotalAmount(),
		Submitted:    fromPayouts(r.Submitted),
		Failed:       fromPayouts(r.Failed),
		Unconfirmed:  fromPayouts(r.Unconfirmed),
		Resubmitted:  fromPayouts(r.Resubmitted),
		Skipped:      make([]SkippedPartnerResponse, len(r.Skipped)),
		Deferred:     make([]DeferredAccrualResponse, len(r.Deferred)),
	}
	for i, s := range r.Skipped {
		res.Skipped[i] = SkippedPartnerResponse{PartnerID: s.PartnerID, Reason: s.Reason}
	}
	for i, d := range r.Deferred {
		res.Deferred[i] = DeferredAccrualResponse{PartnerID: d.PartnerID, Total: d.Total}
	}
	return res
}

func fromPayouts(ps []*payout.Payout) []*PayoutResponse {
	res := make([]*PayoutResponse, len(ps))
	for i, p := range ps {
		res[i] = FromPayout(p)
	}
	return res
}
