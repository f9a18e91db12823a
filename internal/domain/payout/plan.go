package payout

import (
	"bytes"
	"sort"

	"storefront-partners/internal/pkg/errs"

	"github.com/google/uuid"
)

// DefaultThreshold is the minimum accrued amount, in minor units, that triggers a payout.
const DefaultThreshold int64 = 200000

var ErrInvalidThreshold = errs.Sentinel("payout threshold must be positive", errs.ErrValidation)

func NewThreshold(v int64) (int64, error) {
	if v <= 0 {
		return 0, ErrInvalidThreshold
	}
	return v, nil
}

// Payable is one unpaid commission eligible to be included in a payout.
type Payable struct {
	CommissionID uuid.UUID
	PartnerID    uuid.UUID
	Amount       int64
}

// Accrual is a partner's unpaid commissions summed.
type Accrual struct {
	PartnerID uuid.UUID
	Total     int64
	Items     []Payable
}

func (a Accrual) CommissionIDs() []uuid.UUID {
	ids := make([]uuid.UUID, len(a.Items))
	for i, item := range a.Items {
		ids[i] = item.CommissionID
	}
	return ids
}

// Plan groups payables by partner and splits them by threshold.
// Both results are ordered by partner id so a cycle processes partners deterministically.
func Plan(payables []Payable, threshold int64) (eligible, deferred []Accrual) {
	byPartner := make(map[uuid.UUID]*Accrual)
	for _, p := range payables {
		acc, ok := byPartner[p.PartnerID]
		if !ok {
			acc = &Accrual{PartnerID: p.PartnerID}
			byPartner[p.PartnerID] = acc
		}
		acc.Total += p.Amount
		acc.Items = append(acc.Items, p)
	}

	all := make([]Accrual, 0, len(byPartner))
	for _, acc := range byPartner {
		all = append(all, *acc)
	}
	sort.Slice(all, func(i, j int) bool {
		return bytes.Compare(all[i].PartnerID[:], all[j].PartnerID[:]) < 0
	})

	for _, acc := range all {
		if acc.Total >= threshold {
			eligible = append(eligible, acc)
		} else {
			deferred = append(deferred, acc)
		}
	}
	return eligible, deferred
}
