package coupon

import (
	"regexp"
	"strings"

	"storefront-partners/internal/pkg/errs"
)

var (
	ErrInvalidCouponCode = errs.Sentinel("invalid coupon code format", errs.ErrValidation)
	ErrInvalidType       = errs.Sentinel("coupon type must be PERCENT or FIXED", errs.ErrValidation)
	ErrInvalidValue      = errs.Sentinel("coupon value must be positive", errs.ErrValidation)
	ErrInvalidPercent    = errs.Sentinel("percentage coupon value must be between 1 and 100", errs.ErrValidation)
	ErrNegativeSubtotal  = errs.Sentinel("subtotal cannot be negative", errs.ErrValidation)
	ErrInvalidWindow     = errs.Sentinel("coupon start must not be after its end", errs.ErrValidation)
	ErrInvalidUsageLimit = errs.Sentinel("usage limit must be positive", errs.ErrValidation)
	ErrInvalidMinimum    = errs.Sentinel("minimum order amount cannot be negative", errs.ErrValidation)
)

var couponCodeRegex = regexp.MustCompile(`^[A-Z0-9]{3,20}$`)

type Code string

func NewCouponCode(code string) (Code, error) {
	code = strings.TrimSpace(strings.ToUpper(code))
	if !couponCodeRegex.MatchString(code) {
		return Code(""), ErrInvalidCouponCode
	}
	return Code(code), nil
}

func (c Code) String() string {
	return string(c)
}

type Type string

const (
	TypePercent Type = "PERCENT"
	TypeFixed   Type = "FIXED"
)

func (t Type) String() string {
	return string(t)
}

func NewType(s string) (Type, error) {
	t := Type(strings.ToUpper(strings.TrimSpace(s)))
	switch t {
	case TypePercent, TypeFixed:
		return t, nil
	default:
		return "", ErrInvalidType
	}
}

// Discount is a PERCENT (value in whole percent) or FIXED (minor units) reduction.
type Discount struct {
	kind  Type
	value int64
}

func NewDiscount(kind Type, value int64) (Discount, error) {
	switch kind {
	case TypePercent:
		if value <= 0 || value > 100 {
			return Discount{}, ErrInvalidPercent
		}
	case TypeFixed:
		if value <= 0 {
			return Discount{}, ErrInvalidValue
		}
	default:
		return Discount{}, ErrInvalidType
	}
	return Discount{kind: kind, value: value}, nil
}

func (d Discount) Type() Type   { return d.kind }
func (d Discount) Value() int64 { return d.value }

func (d Discount) IsPercentage() bool {
	return d.kind == TypePercent
}

// Amount never exceeds subtotal. Percentages round half up in integer math;
// splitting subtotal into hundreds and a remainder keeps the product within int64.
func (d Discount) Amount(subtotal int64) int64 {
	if subtotal <= 0 {
		return 0
	}
	var amount int64
	if d.IsPercentage() {
		amount = subtotal/100*d.value + (subtotal%100*d.value+50)/100
	} else {
		amount = d.value
	}
	return min(amount, subtotal)
}
