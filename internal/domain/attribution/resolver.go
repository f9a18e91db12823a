package attribution

import (
	"bytes"
	"time"

	"github.com/google/uuid"
)

type Type string

const (
	TypeLastClick   Type = "LAST_CLICK"
	TypeCouponOwner Type = "COUPON_OWNER"
	TypeNone        Type = "NONE"
)

func (t Type) String() string {
	return string(t)
}

// Candidate is a stored session row joined with its partner's status.
type Candidate struct {
	PartnerID     uuid.UUID
	PartnerActive bool
	SessionID     string
	LastTouch     time.Time
	ExpiresAt     time.Time
}

// CouponOwner is the partner owning the coupon applied at checkout.
type CouponOwner struct {
	PartnerID uuid.UUID
	Active    bool
}

type Resolution struct {
	PartnerID *uuid.UUID
	Type      Type
	SessionID string
}

func (r Resolution) Attributed() bool {
	return r.PartnerID != nil
}

// Resolve picks the partner credited for an order.
// An active coupon owner wins over any click history. Otherwise the most recent
// unexpired touch of an active partner wins, ties going to the lowest partner id.
func Resolve(now time.Time, owner *CouponOwner, candidates []Candidate) Resolution {
	if owner != nil && owner.Active && owner.PartnerID != uuid.Nil {
		id := owner.PartnerID
		return Resolution{PartnerID: &id, Type: TypeCouponOwner}
	}

	var best *Candidate
	for i := range candidates {
		c := &candidates[i]
		if !c.PartnerActive || now.After(c.ExpiresAt) {
			continue
		}
		if best == nil || preferred(c, best) {
			best = c
		}
	}
	if best == nil {
		return Resolution{Type: TypeNone}
	}

	id := best.PartnerID
	return Resolution{PartnerID: &id, Type: TypeLastClick, SessionID: best.SessionID}
}

func preferred(a, b *Candidate) bool {
	if !a.LastTouch.Equal(b.LastTouch) {
		return a.LastTouch.After(b.LastTouch)
	}
	return bytes.Compare(a.PartnerID[:], b.PartnerID[:]) < 0
}
