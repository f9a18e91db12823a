package partner

import (
	"regexp"
	"strings"

	"storefront-partners/internal/pkg/errs"
)

var (
	ErrInvalidCode        = errs.Sentinel("partner code must be 3-15 uppercase letters or digits", errs.ErrValidation)
	ErrInvalidLevel       = errs.Sentinel("partner level must be AFFILIATE or AGENT", errs.ErrValidation)
	ErrInvalidStatus      = errs.Sentinel("partner status must be ACTIVE, INACTIVE or SUSPENDED", errs.ErrValidation)
	ErrIncompleteBankInfo = errs.Sentinel("bank name, account number and account holder must be given together", errs.ErrValidation)
)

var codeRegex = regexp.MustCompile(`^[A-Z0-9]{3,15}$`)

type Code string

// NewCode normalizes case and surrounding whitespace before validating.
func NewCode(code string) (Code, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if !codeRegex.MatchString(code) {
		return Code(""), ErrInvalidCode
	}
	return Code(code), nil
}

func (c Code) String() string {
	return string(c)
}

type Level string

const (
	LevelAffiliate Level = "AFFILIATE"
	LevelAgent     Level = "AGENT"
)

func (l Level) String() string {
	return string(l)
}

func (l Level) IsValid() bool {
	switch l {
	case LevelAffiliate, LevelAgent:
		return true
	default:
		return false
	}
}

func NewLevel(s string) (Level, error) {
	level := Level(strings.ToUpper(strings.TrimSpace(s)))
	if !level.IsValid() {
		return "", ErrInvalidLevel
	}
	return level, nil
}

type Status string

const (
	StatusActive    Status = "ACTIVE"
	StatusInactive  Status = "INACTIVE"
	StatusSuspended Status = "SUSPENDED"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusActive, StatusInactive, StatusSuspended:
		return true
	default:
		return false
	}
}

func NewStatus(s string) (Status, error) {
	status := Status(strings.ToUpper(strings.TrimSpace(s)))
	if !status.IsValid() {
		return "", ErrInvalidStatus
	}
	return status, nil
}

// BankAccount is either fully populated or entirely empty.
type BankAccount struct {
	bankName      string
	accountNumber string
	accountHolder string
}

func NewBankAccount(bankName, accountNumber, accountHolder string) (BankAccount, error) {
	bankName = strings.TrimSpace(bankName)
	accountNumber = strings.TrimSpace(accountNumber)
	accountHolder = strings.TrimSpace(accountHolder)

	filled := 0
	for _, v := range []string{bankName, accountNumber, accountHolder} {
		if v != "" {
			filled++
		}
	}
	if filled != 0 && filled != 3 {
		return BankAccount{}, ErrIncompleteBankInfo
	}
	return BankAccount{bankName: bankName, accountNumber: accountNumber, accountHolder: accountHolder}, nil
}

func (b BankAccount) BankName() string      { return b.bankName }
func (b BankAccount) AccountNumber() string { return b.accountNumber }
func (b BankAccount) AccountHolder() string { return b.accountHolder }

func (b BankAccount) IsComplete() bool {
	return b.bankName != "" && b.accountNumber != "" && b.accountHolder != ""
}
