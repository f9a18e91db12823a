//go:build unit || e2e

package builder

import (
	"time"

	"storefront-partners/internal/domain/commission"

	"github.com/google/uuid"
)

type CommissionBuilder struct {
	OrderID    string
	PartnerID  uuid.UUID
	OrderTotal int64
	RateBps    int32
	Status     commission.Status
	Now        time.Time
}

func NewCommissionBuilder() *CommissionBuilder {
	return &CommissionBuilder{
		OrderID:    "ORD-1001",
		PartnerID:  uuid.MustParse("00000000-0000-0000-0000-0000000000a1"),
		OrderTotal: 5000,
		RateBps:    1000,
		Status:     commission.StatusPending,
		Now:        time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC),
	}
}

func (b *CommissionBuilder) With(mutate func(*CommissionBuilder)) *CommissionBuilder {
	mutate(b)
	return b
}

func (b *CommissionBuilder) BuildDomain() *commission.Commission {
	amount := (b.OrderTotal*int64(b.RateBps) + commission.BasisPointsPerUnit/2) / commission.BasisPointsPerUnit
	if b.Status == commission.StatusPending {
		return commission.NewCommission(b.OrderID, b.PartnerID, b.OrderTotal, b.RateBps, amount, b.Now)
	}
	return commission.ReconstructCommission(
		uuid.New(), b.OrderID, b.PartnerID, b.OrderTotal, b.RateBps, amount,
		b.Status, nil, nil, b.Now, b.Now,
	)
}

func (b *CommissionBuilder) WithOrder(orderID string) *CommissionBuilder {
	b.OrderID = orderID
	return b
}

func (b *CommissionBuilder) WithPartner(partnerID uuid.UUID) *CommissionBuilder {
	b.PartnerID = partnerID
	return b
}

func (b *CommissionBuilder) WithTotal(total int64) *CommissionBuilder {
	b.OrderTotal = total
	return b
}

func (b *CommissionBuilder) WithStatus(status commission.Status) *CommissionBuilder {
	b.Status = status
	return b
}
