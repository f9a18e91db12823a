package commission

import (
	"storefront-partners/internal/domain/partner"
	"storefront-partners/internal/pkg/errs"
)

const BasisPointsPerUnit = 10000

var (
	ErrInvalidRate    = errs.Sentinel("commission rate must be between 0 and 10000 basis points", errs.ErrValidation)
	ErrNoRateForLevel = errs.Sentinel("no commission rate configured for partner level", errs.ErrValidation)
	ErrNegativeTotal  = errs.Sentinel("order total cannot be negative", errs.ErrValidation)
)

// RuleTable maps a partner level to its rate in basis points.
type RuleTable map[partner.Level]int32

func NewRuleTable(affiliateBps, agentBps int32) (RuleTable, error) {
	t := RuleTable{
		partner.LevelAffiliate: affiliateBps,
		partner.LevelAgent:     agentBps,
	}
	for _, bps := range t {
		if bps < 0 || bps > BasisPointsPerUnit {
			return nil, ErrInvalidRate
		}
	}
	return t, nil
}

func (t RuleTable) Rate(level partner.Level) (int32, error) {
	bps, ok := t[level]
	if !ok {
		return 0, ErrNoRateForLevel
	}
	return bps, nil
}

// Calculate returns round_half_up(total * rate / 10000) along with the rate applied.
// The total is split at 10000 so the product cannot overflow for any int64 total.
func Calculate(level partner.Level, orderTotal int64, rules RuleTable) (amount int64, rateBps int32, err error) {
	if orderTotal < 0 {
		return 0, 0, ErrNegativeTotal
	}
	rateBps, err = rules.Rate(level)
	if err != nil {
		return 0, 0, err
	}
	rate := int64(rateBps)
	amount = orderTotal/BasisPointsPerUnit*rate + (orderTotal%BasisPointsPerUnit*rate+BasisPointsPerUnit/2)/BasisPointsPerUnit
	return amount, rateBps, nil
}
