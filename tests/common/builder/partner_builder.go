//go:build unit || e2e

package builder

import (
	"time"

	"storefront-partners/internal/domain/partner"
	reqdto "storefront-partners/internal/handler/dto/request"
	"storefront-partners/internal/usecase/queries"
)

type PartnerBuilder struct {
	Code          string
	Name          string
	Level         string
	Status        string
	BankName      string
	AccountNumber string
	AccountHolder string
	Now           time.Time
}

func NewPartnerBuilder() *PartnerBuilder {
	return &PartnerBuilder{
		Code:          "OPTIC01",
		Name:          "Optic Reviews Blog",
		Level:         "AFFILIATE",
		Status:        "ACTIVE",
		BankName:      "Mizuho",
		AccountNumber: "1234567",
		AccountHolder: "Optic Reviews LLC",
		Now:           time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC),
	}
}

func (b *PartnerBuilder) With(mutate func(*PartnerBuilder)) *PartnerBuilder {
	mutate(b)
	return b
}

// Build methods
func (b *PartnerBuilder) BuildDomain() (*partner.Partner, error) {
	bank, err := partner.NewBankAccount(b.BankName, b.AccountNumber, b.AccountHolder)
	if err != nil {
		return nil, err
	}
	p, err := partner.NewPartner(b.Code, b.Name, b.Level, bank, b.Now)
	if err != nil {
		return nil, err
	}
	if b.Status != "" && b.Status != string(partner.StatusActive) {
		status, err := partner.NewStatus(b.Status)
		if err != nil {
			return nil, err
		}
		if err := p.ChangeStatus(status, b.Now); err != nil {
			return nil, err
		}
	}
	return p, nil
}

// MustBuild is for fixtures where the defaults are known to be valid.
func (b *PartnerBuilder) MustBuild() *partner.Partner {
	p, err := b.BuildDomain()
	if err != nil {
		panic(err)
	}
	return p
}

// Fluent builder methods
func (b *PartnerBuilder) WithCode(code string) *PartnerBuilder {
	b.Code = code
	return b
}

func (b *PartnerBuilder) WithLevel(level string) *PartnerBuilder {
	b.Level = level
	return b
}

func (b *PartnerBuilder) WithStatus(status string) *PartnerBuilder {
	b.Status = status
	return b
}

func (b *PartnerBuilder) WithoutBank() *PartnerBuilder {
	b.BankName, b.AccountNumber, b.AccountHolder = "", "", ""
	return b
}

func (b *PartnerBuilder) AsAgent() *PartnerBuilder {
	b.Level = "AGENT"
	return b
}

func (b *PartnerBuilder) AsSuspended() *PartnerBuilder {
	b.Status = "SUSPENDED"
	return b
}

func (b *PartnerBuilder) BuildCreateRequestDTO() reqdto.CreatePartnerRequest {
	return reqdto.CreatePartnerRequest{
		Code:          b.Code,
		Name:          b.Name,
		Level:         b.Level,
		BankName:      b.BankName,
		AccountNumber: b.AccountNumber,
		AccountHolder: b.AccountHolder,
	}
}

func (b *PartnerBuilder) BuildView() *queries.PartnerView {
	p := b.MustBuild()
	return &queries.PartnerView{
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
