package queries

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// PartnerView is the admin-facing partner record; bank details are masked.
type PartnerView struct {
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

type CommissionListItem struct {
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

// PartnerBalance sums a partner's commissions by status.
type PartnerBalance struct {
	PartnerID       uuid.UUID `json:"partner_id"`
	Code            string    `json:"code"`
	PendingAmount   int64     `json:"pending_amount"`
	ApprovedAmount  int64     `json:"approved_amount"`
	PaidAmount      int64     `json:"paid_amount"`
	UnpaidAmount    int64     `json:"unpaid_amount"`
	CommissionCount int64     `json:"commission_count"`
}

// MaskAccount keeps the last four digits.
func MaskAccount(number string) string {
	if number == "" {
		return ""
	}
	if len(number) <= 4 {
		return strings.Repeat("*", len(number))
	}
	return strings.Repeat("*", len(number)-4) + number[len(number)-4:]
}
