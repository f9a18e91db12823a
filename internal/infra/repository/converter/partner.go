package converter

import (
	"storefront-partners/internal/domain/partner"
	sqlc "storefront-partners/internal/infra/sqlc/generated"
	"storefront-partners/internal/pkg/pgconv"
)

func PartnerToCreateParams(p *partner.Partner) sqlc.CreatePartnerParams {
	bank := p.Bank()
	return sqlc.CreatePartnerParams{
		ID:                p.ID(),
		Code:              p.Code().String(),
		Name:              p.Name(),
		Level:             p.Level().String(),
		Status:            p.Status().String(),
		BankName:          pgconv.OptionalStringToPgtype(bank.BankName()),
		BankAccountNumber: pgconv.OptionalStringToPgtype(bank.AccountNumber()),
		BankAccountHolder: pgconv.OptionalStringToPgtype(bank.AccountHolder()),
		CreatedAt:         pgconv.TimeToPgtype(p.CreatedAt()),
		UpdatedAt:         pgconv.TimeToPgtype(p.UpdatedAt()),
	}
}

func PartnerToProfileParams(p *partner.Partner) sqlc.UpdatePartnerProfileParams {
	bank := p.Bank()
	return sqlc.UpdatePartnerProfileParams{
		ID:                p.ID(),
		Name:              p.Name(),
		BankName:          pgconv.OptionalStringToPgtype(bank.BankName()),
		BankAccountNumber: pgconv.OptionalStringToPgtype(bank.AccountNumber()),
		BankAccountHolder: pgconv.OptionalStringToPgtype(bank.AccountHolder()),
		UpdatedAt:         pgconv.TimeToPgtype(p.UpdatedAt()),
	}
}

// PartnerFromRow trusts enum columns; the schema CHECKs keep them valid.
func PartnerFromRow(row sqlc.Partners) (*partner.Partner, error) {
	bank, err := partner.NewBankAccount(
		pgconv.StringFromPgtype(row.BankName),
		pgconv.StringFromPgtype(row.BankAccountNumber),
		pgconv.StringFromPgtype(row.BankAccountHolder),
	)
	if err != nil {
		return nil, err
	}
	return partner.ReconstructPartner(
		row.ID,
		partner.Code(row.Code),
		row.Name,
		partner.Level(row.Level),
		partner.Status(row.Status),
		bank,
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	), nil
}
