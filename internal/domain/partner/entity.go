package partner

import (
	"strings"
	"time"

	"storefront-partners/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrPartnerNotFound = errs.Sentinel("partner not found", errs.ErrNotFound)
	ErrPartnerInactive = errs.Sentinel("partner is not active", errs.ErrInvalidState)
	ErrStatusUnchanged = errs.Sentinel("partner already has this status", errs.ErrInvalidState)
	ErrDuplicateCode   = errs.Sentinel("partner code already registered", errs.ErrDuplicateOperation)
	ErrEmptyName       = errs.Sentinel("partner name is required", errs.ErrValidation)
	ErrNameTooLong     = errs.Sentinel("partner name is too long", errs.ErrValidation)
	ErrNoBankAccount   = errs.Sentinel("partner has no bank account on file", errs.ErrPolicyViolation)
)

const MaxNameLength = 120

// Partner is never hard-deleted; retirement is a status change.
type Partner struct {
	id        uuid.UUID
	code      Code
	name      string
	level     Level
	status    Status
	bank      BankAccount
	createdAt time.Time
	updatedAt time.Time
}

// NewPartner registers an approved application; partners start ACTIVE.
func NewPartner(code, name, level string, bank BankAccount, now time.Time) (*Partner, error) {
	c, err := NewCode(code)
	if err != nil {
		return nil, err
	}
	n, err := validateName(name)
	if err != nil {
		return nil, err
	}
	l, err := NewLevel(level)
	if err != nil {
		return nil, err
	}

	return &Partner{
		id:        uuid.New(),
		code:      c,
		name:      n,
		level:     l,
		status:    StatusActive,
		bank:      bank,
		createdAt: now,
		updatedAt: now,
	}, nil
}

func ReconstructPartner(
	id uuid.UUID,
	code Code,
	name string,
	level Level,
	status Status,
	bank BankAccount,
	createdAt, updatedAt time.Time,
) *Partner {
	return &Partner{
		id:        id,
		code:      code,
		name:      name,
		level:     level,
		status:    status,
		bank:      bank,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

func (p *Partner) ChangeStatus(to Status, now time.Time) error {
	if !to.IsValid() {
		return ErrInvalidStatus
	}
	if p.status == to {
		return ErrStatusUnchanged
	}
	p.status = to
	p.updatedAt = now
	return nil
}

// UpdateProfile applies only the non-nil fields.
func (p *Partner) UpdateProfile(name *string, bank *BankAccount, now time.Time) error {
	if name != nil {
		n, err := validateName(*name)
		if err != nil {
			return err
		}
		p.name = n
	}
	if bank != nil {
		p.bank = *bank
	}
	p.updatedAt = now
	return nil
}

func (p *Partner) IsActive() bool {
	return p.status == StatusActive
}

func (p *Partner) EnsureActive() error {
	if !p.IsActive() {
		return ErrPartnerInactive
	}
	return nil
}

func (p *Partner) ID() uuid.UUID        { return p.id }
func (p *Partner) Code() Code           { return p.code }
func (p *Partner) Name() string         { return p.name }
func (p *Partner) Level() Level         { return p.level }
func (p *Partner) Status() Status       { return p.status }
func (p *Partner) Bank() BankAccount    { return p.bank }
func (p *Partner) CreatedAt() time.Time { return p.createdAt }
func (p *Partner) UpdatedAt() time.Time { return p.updatedAt }

func validateName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", ErrEmptyName
	}
	if len([]rune(name)) > MaxNameLength {
		return "", ErrNameTooLong
	}
	return name, nil
}
