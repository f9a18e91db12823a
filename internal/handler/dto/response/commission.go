package response

import (
	"time"

	"storefront-partners/internal/domain/commission"
	"storefront-partners/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type CommissionResponse struct {
	ID         uuid.UUID  `json:"id"`
	OrderID    string     `json:"order_id"`
	PartnerID  uuid.UUID  `json:"partner_id"`
	OrderTotal int64      `json:"order_total"`
	RateBps    int32      `json:"rate_bps"`
	Amount     int64      `json:"amount"`
	Status     string     `json:"status"`
	ReviewedAt *time.Time `json:"reviewed_at,omitempty"`
	PaidAt     *time.Time `json:"paid_at,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
}

func FromCommission(c *commission.Commission) *CommissionResponse {
	return &CommissionResponse{
		ID:         c.ID(),
		OrderID:    c.OrderID(),
		PartnerID:  c.PartnerID(),
		OrderTotal: c.OrderTotal(),
		RateBps:    c.RateBps(),
		Amount:     c.Amount(),
		Status:     c.Status().String(),
		ReviewedAt: c.ReviewedAt(),
		PaidAt:     c.PaidAt(),
		CreatedAt:  c.CreatedAt(),
	}
}

type CommissionListItemResponse struct {
	ID         uuid.UUID  `json:"id"`
	OrderID    string     `json:"order_id"`
	OrderTotal int64      `json:"order_total"`
	RateBps    int32      `json:"rate_bps"`
	Amount     int64      `json:"amount"`
	Status     string     `json:"status"`
	ReviewedAt *time.Time `json:"reviewed_at,omitempty"`
	PaidAt     *time.Time `json:"paid_at,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
}

type CommissionPageResponse struct {
	Items      []*CommissionListItemResponse `json:"items"`
	NextCursor string                        `json:"next_cursor,omitempty"`
}

func FromCommissionPage(items []*queries.CommissionListItem, next *queries.Cursor) *CommissionPageResponse {
	res := &CommissionPageResponse{Items: make([]*CommissionListItemResponse, 0, len(items))}
	_ = copier.Copy(&res.Items, items)
	if next != nil {
		res.NextCursor = next.After
	}
	return res
}
