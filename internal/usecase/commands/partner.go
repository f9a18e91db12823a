package commands

import (
	"context"

	"storefront-partners/internal/domain/partner"
	"storefront-partners/internal/infra"
	"storefront-partners/internal/pkg/clock"
	"storefront-partners/internal/pkg/patch"
	"storefront-partners/internal/usecase/shared"
)

type PartnerCommands interface {
	Create(ctx context.Context, req CreatePartnerRequest) (*partner.Partner, error)
	ChangeStatus(ctx context.Context, code, status string) (*partner.Partner, error)
	UpdateProfile(ctx context.Context, code string, req UpdatePartnerProfileRequest) (*partner.Partner, error)
}

type partnerUseCaseImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewPartnerUseCase(uow shared.UnitOfWork, clk clock.Clock) PartnerCommands {
	return &partnerUseCaseImpl{uow: uow, clock: clk}
}

type CreatePartnerRequest struct {
	Code          string
	Name          string
	Level         string
	BankName      string
	AccountNumber string
	AccountHolder string
}

// Nil fields are left unchanged. Bank fields merge with the stored account.
type UpdatePartnerProfileRequest struct {
	Name          *string
	BankName      *string
	AccountNumber *string
	AccountHolder *string
}

func (r UpdatePartnerProfileRequest) touchesBank() bool {
	return patch.AnySet(r.BankName, r.AccountNumber, r.AccountHolder)
}

func (uc *partnerUseCaseImpl) Create(ctx context.Context, req CreatePartnerRequest) (*partner.Partner, error) {
	bank, err := partner.NewBankAccount(req.BankName, req.AccountNumber, req.AccountHolder)
	if err != nil {
		return nil, err
	}
	p, err := partner.NewPartner(req.Code, req.Name, req.Level, bank, uc.clock.Now())
	if err != nil {
		return nil, err
	}

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if derr := tx.Partners().Create(ctx, p); derr != nil {
			if infra.IsKind(derr, infra.KindDuplicateKey) {
				return partner.ErrDuplicateCode
			}
			return derr
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (uc *partnerUseCaseImpl) ChangeStatus(ctx context.Context, code, status string) (*partner.Partner, error) {
	pc, err := partner.NewCode(code)
	if err != nil {
		return nil, partner.ErrPartnerNotFound
	}
	to, err := partner.NewStatus(status)
	if err != nil {
		return nil, err
	}

	var updated *partner.Partner
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		p, derr := lockPartnerByCode(ctx, tx, pc)
		if derr != nil {
			return derr
		}
		if derr = p.ChangeStatus(to, uc.clock.Now()); derr != nil {
			return derr
		}
		if derr = tx.Partners().UpdateStatus(ctx, p); derr != nil {
			return notFoundAs(derr, partner.ErrPartnerNotFound)
		}
		updated = p
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (uc *partnerUseCaseImpl) UpdateProfile(ctx context.Context, code string, req UpdatePartnerProfileRequest) (*partner.Partner, error) {
	pc, err := partner.NewCode(code)
	if err != nil {
		return nil, partner.ErrPartnerNotFound
	}

	var updated *partner.Partner
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		p, derr := lockPartnerByCode(ctx, tx, pc)
		if derr != nil {
			return derr
		}

		var bank *partner.BankAccount
		if req.touchesBank() {
			cur := p.Bank()
			merged, derr := partner.NewBankAccount(
				patch.Coalesce(req.BankName, cur.BankName()),
				patch.Coalesce(req.AccountNumber, cur.AccountNumber()),
				patch.Coalesce(req.AccountHolder, cur.AccountHolder()),
			)
			if derr != nil {
				return derr
			}
			bank = &merged
		}
		if derr = p.UpdateProfile(req.Name, bank, uc.clock.Now()); derr != nil {
			return derr
		}
		if derr = tx.Partners().UpdateProfile(ctx, p); derr != nil {
			return notFoundAs(derr, partner.ErrPartnerNotFound)
		}
		updated = p
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// lockPartnerByCode resolves the code, then re-reads the row under FOR UPDATE.
func lockPartnerByCode(ctx context.Context, tx shared.Tx, code partner.Code) (*partner.Partner, error) {
	found, err := tx.Partners().FindByCode(ctx, code)
	if err != nil {
		return nil, notFoundAs(err, partner.ErrPartnerNotFound)
	}
	p, err := tx.Partners().LockByID(ctx, found.ID())
	if err != nil {
		return nil, notFoundAs(err, partner.ErrPartnerNotFound)
	}
	return p, nil
}
