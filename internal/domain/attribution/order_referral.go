package attribution

import (
	"strings"
	"time"

	"storefront-partners/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrEmptyOrderID   = errs.Sentinel("order id is required", errs.ErrValidation)
	ErrOrderIDTooLong = errs.Sentinel("order id is too long", errs.ErrValidation)
	ErrNegativeAmount = errs.Sentinel("order amounts cannot be negative", errs.ErrValidation)
)

const MaxOrderIDLength = 64

func NewOrderID(s string) (string, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", ErrEmptyOrderID
	}
	if len(s) > MaxOrderIDLength {
		return "", ErrOrderIDTooLong
	}
	return s, nil
}

// OrderReferral is the attribution outcome stored once per order.
type OrderReferral struct {
	orderID    string
	partnerID  *uuid.UUID
	attrType   Type
	sessionID  string
	userID     *uuid.UUID
	couponCode *string
	subtotal   int64
	discount   int64
	total      int64
	resolvedAt time.Time
}

type OrderAmounts struct {
	Subtotal int64
	Discount int64
	Total    int64
}

func NewOrderReferral(
	orderID string,
	res Resolution,
	sessionID string,
	userID *uuid.UUID,
	couponCode *string,
	amounts OrderAmounts,
	now time.Time,
) (*OrderReferral, error) {
	oid, err := NewOrderID(orderID)
	if err != nil {
		return nil, err
	}
	if amounts.Subtotal < 0 || amounts.Discount < 0 || amounts.Total < 0 {
		return nil, ErrNegativeAmount
	}
	sid := res.SessionID
	if sid == "" {
		sid = sessionID
	}

	return &OrderReferral{
		orderID:    oid,
		partnerID:  res.PartnerID,
		attrType:   res.Type,
		sessionID:  sid,
		userID:     userID,
		couponCode: couponCode,
		subtotal:   amounts.Subtotal,
		discount:   amounts.Discount,
		total:      amounts.Total,
		resolvedAt: now,
	}, nil
}

func ReconstructOrderReferral(
	orderID string,
	partnerID *uuid.UUID,
	attrType Type,
	sessionID string,
	userID *uuid.UUID,
	couponCode *string,
	amounts OrderAmounts,
	resolvedAt time.Time,
) *OrderReferral {
	return &OrderReferral{
		orderID:    orderID,
		partnerID:  partnerID,
		attrType:   attrType,
		sessionID:  sessionID,
		userID:     userID,
		couponCode: couponCode,
		subtotal:   amounts.Subtotal,
		discount:   amounts.Discount,
		total:      amounts.Total,
		resolvedAt: resolvedAt,
	}
}

func (o *OrderReferral) OrderID() string       { return o.orderID }
func (o *OrderReferral) PartnerID() *uuid.UUID { return o.partnerID }
func (o *OrderReferral) Type() Type            { return o.attrType }
func (o *OrderReferral) SessionID() string     { return o.sessionID }
func (o *OrderReferral) UserID() *uuid.UUID    { return o.userID }
func (o *OrderReferral) CouponCode() *string   { return o.couponCode }
func (o *OrderReferral) Subtotal() int64       { return o.subtotal }
func (o *OrderReferral) Discount() int64       { return o.discount }
func (o *OrderReferral) Total() int64          { return o.total }
func (o *OrderReferral) ResolvedAt() time.Time { return o.resolvedAt }

func (o *OrderReferral) Resolution() Resolution {
	return Resolution{PartnerID: o.partnerID, Type: o.attrType, SessionID: o.sessionID}
}
