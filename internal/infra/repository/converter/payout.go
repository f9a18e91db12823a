package converter

import (
	"storefront-partners/internal/domain/partner"
	"storefront-partners/internal/domain/payout"
	sqlc "storefront-partners/internal/infra/sqlc/generated"
	"storefront-partners/internal/pkg/pgconv"
)

func PayoutToCreateParams(p *payout.Payout) sqlc.CreatePayoutParams {
	bank := p.Bank()
	return sqlc.CreatePayoutParams{
		ID:                p.ID(),
		BatchID:           p.BatchID(),
		PartnerID:         p.PartnerID(),
		Amount:            p.Amount(),
		Currency:          p.Currency(),
		BankName:          bank.BankName(),
		BankAccountNumber: bank.AccountNumber(),
		BankAccountHolder: bank.AccountHolder(),
		Status:            p.Status().String(),
		CreatedAt:         pgconv.TimeToPgtype(p.CreatedAt()),
	}
}

func PayoutItemsToParams(p *payout.Payout) []sqlc.CreatePayoutItemParams {
	out := make([]sqlc.CreatePayoutItemParams, 0, len(p.Items()))
	for _, item := range p.Items() {
		out = append(out, sqlc.CreatePayoutItemParams{
			PayoutID:     p.ID(),
			CommissionID: item.CommissionID,
			Amount:       item.Amount,
		})
	}
	return out
}

func PayoutToStatusParams(p *payout.Payout) sqlc.UpdatePayoutStatusParams {
	return sqlc.UpdatePayoutStatusParams{
		ID:            p.ID(),
		Status:        p.Status().String(),
		FailureReason: pgconv.StringPtrToPgtype(p.FailureReason()),
		SettledAt:     pgconv.TimePtrToPgtype(p.SettledAt()),
		UpdatedAt:     pgconv.TimeToPgtype(p.UpdatedAt()),
	}
}

func PayoutFromRows(row sqlc.Payouts, items []sqlc.PayoutItems) (*payout.Payout, error) {
	bank, err := partner.NewBankAccount(row.BankName, row.BankAccountNumber, row.BankAccountHolder)
	if err != nil {
		return nil, err
	}
	payables := make([]payout.Payable, 0, len(items))
	for _, item := range items {
		payables = append(payables, payout.Payable{
			CommissionID: item.CommissionID,
			PartnerID:    row.PartnerID,
			Amount:       item.Amount,
		})
	}
	return payout.ReconstructPayout(
		row.ID,
		row.BatchID,
		row.PartnerID,
		row.Amount,
		row.Currency,
		bank,
		payables,
		payout.Status(row.Status),
		pgconv.StringPtrFromPgtype(row.FailureReason),
		pgconv.TimePtrFromPgtype(row.SettledAt),
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	), nil
}

func BatchToCreateParams(b *payout.Batch) sqlc.CreatePayoutBatchParams {
	return sqlc.CreatePayoutBatchParams{
		ID:        b.ID(),
		Threshold: b.Threshold(),
		StartedAt: pgconv.TimeToPgtype(b.StartedAt()),
	}
}

func BatchToFinishParams(b *payout.Batch) sqlc.FinishPayoutBatchParams {
	return sqlc.FinishPayoutBatchParams{
		ID:           b.ID(),
		FinishedAt:   pgconv.TimePtrToPgtype(b.FinishedAt()),
		PartnerCount: b.PartnerCount(),
		TotalAmount:  b.TotalAmount(),
	}
}
