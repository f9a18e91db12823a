package converter

import (
	"storefront-partners/internal/domain/commission"
	"storefront-partners/internal/domain/payout"
	sqlc "storefront-partners/internal/infra/sqlc/generated"
	"storefront-partners/internal/pkg/pgconv"
)

func CommissionToInsertParams(c *commission.Commission) sqlc.InsertCommissionParams {
	return sqlc.InsertCommissionParams{
		ID:         c.ID(),
		OrderID:    c.OrderID(),
		PartnerID:  c.PartnerID(),
		OrderTotal: c.OrderTotal(),
		RateBps:    c.RateBps(),
		Amount:     c.Amount(),
		Status:     c.Status().String(),
		CreatedAt:  pgconv.TimeToPgtype(c.CreatedAt()),
	}
}

func CommissionToStatusParams(c *commission.Commission) sqlc.UpdateCommissionStatusParams {
	return sqlc.UpdateCommissionStatusParams{
		ID:         c.ID(),
		Status:     c.Status().String(),
		ReviewedAt: pgconv.TimePtrToPgtype(c.ReviewedAt()),
		PaidAt:     pgconv.TimePtrToPgtype(c.PaidAt()),
		UpdatedAt:  pgconv.TimeToPgtype(c.UpdatedAt()),
	}
}

func CommissionFromRow(row sqlc.Commissions) *commission.Commission {
	return commission.ReconstructCommission(
		row.ID,
		row.OrderID,
		row.PartnerID,
		row.OrderTotal,
		row.RateBps,
		row.Amount,
		commission.Status(row.Status),
		pgconv.TimePtrFromPgtype(row.ReviewedAt),
		pgconv.TimePtrFromPgtype(row.PaidAt),
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	)
}

func PayablesFromRows(rows []sqlc.ListPayableCommissionsRow) []payout.Payable {
	out := make([]payout.Payable, 0, len(rows))
	for _, row := range rows {
		out = append(out, payout.Payable{CommissionID: row.ID, PartnerID: row.PartnerID, Amount: row.Amount})
	}
	return out
}

func PartnerPayablesFromRows(rows []sqlc.ListPayableCommissionsByPartnerRow) []payout.Payable {
	out := make([]payout.Payable, 0, len(rows))
	for _, row := range rows {
		out = append(out, payout.Payable{CommissionID: row.ID, PartnerID: row.PartnerID, Amount: row.Amount})
	}
	return out
}
