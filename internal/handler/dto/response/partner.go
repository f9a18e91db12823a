package response

import (
	"time"

	"storefront-partners/internal/domain/partner"
	"storefront-partners/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type PartnerResponse struct {
	ID                uuid.UUID `json:"id"`
	Code              string    `json:"code"`
	Name              string    `json:"name"`
	Level             string    `json:"level"`
	Status            string    `json:"status"`
	BankName          string    `json:"bank_name,omitempty"`
	BankAccountMasked string    `json:"bank_account_masked,omitempty"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

func FromPartnerView(v *queries.PartnerView) *PartnerResponse {
	res := &PartnerResponse{}
	_ = copier.Copy(res, v)
	return res
}

// FromPartner renders a freshly written partner the same way the read side does.
func FromPartner(p *partner.Partner) *PartnerResponse {
	return &PartnerResponse{
		ID:                p.ID(),
		Code:              p.Code().String(),
		Name:              p.Name(),
		Level:             p.Level().String(),
		Status:            p.Status().String(),
		BankName:          p.Bank().BankName(),
		BankAccountMasked: queries.MaskAccount(p.Bank().AccountNumber()),
		CreatedAt:         p.CreatedAt(),
		UpdatedAt:         p.UpdatedAt(),
	}
}

type BalanceResponse struct {
	PartnerID       uuid.UUID `json:"partner_id"`
	Code            string    `json:"code"`
	PendingAmount   int64     `json:"pending_amount"`
	ApprovedAmount  int64     `json:"approved_amount"`
	PaidAmount      int64     `json:"paid_amount"`
	UnpaidAmount    int64     `json:"unpaid_amount"`
	CommissionCount int64     `json:"commission_count"`
}

func FromBalance(b *queries.PartnerBalance) *BalanceResponse {
	res := &BalanceResponse{}
	_ = copier.Copy(res, b)
	return res
}
