package attribution

import (
	"strings"
	"time"

	"storefront-partners/internal/pkg/errs"

	"github.com/google/uuid"
)

// Window is how long a touch keeps a session attributable to its partner.
const Window = 7 * 24 * time.Hour

var (
	ErrEmptySessionID = errs.Sentinel("session id is required", errs.ErrValidation)
	ErrSessionTooLong = errs.Sentinel("session id is too long", errs.ErrValidation)
	ErrInvalidSource  = errs.Sentinel("attribution source must be REF_LINK or COUPON", errs.ErrValidation)
	ErrMissingPartner = errs.Sentinel("attribution row needs a partner", errs.ErrValidation)
)

const MaxSessionIDLength = 128

type Source string

const (
	SourceRefLink Source = "REF_LINK"
	SourceCoupon  Source = "COUPON"
)

func (s Source) String() string {
	return string(s)
}

func NewSource(s string) (Source, error) {
	src := Source(strings.ToUpper(strings.TrimSpace(s)))
	switch src {
	case SourceRefLink, SourceCoupon:
		return src, nil
	default:
		return "", ErrInvalidSource
	}
}

func NewSessionID(s string) (string, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", ErrEmptySessionID
	}
	if len(s) > MaxSessionIDLength {
		return "", ErrSessionTooLong
	}
	return s, nil
}

// Session is one (session, partner) attribution row. expiresAt always equals lastTouch + Window.
type Session struct {
	id        uuid.UUID
	sessionID string
	partnerID uuid.UUID
	userID    *uuid.UUID
	source    Source
	lastTouch time.Time
	expiresAt time.Time
	createdAt time.Time
}

func NewSession(sessionID string, partnerID uuid.UUID, userID *uuid.UUID, source Source, now time.Time) (*Session, error) {
	sid, err := NewSessionID(sessionID)
	if err != nil {
		return nil, err
	}
	if partnerID == uuid.Nil {
		return nil, ErrMissingPartner
	}

	return &Session{
		id:        uuid.New(),
		sessionID: sid,
		partnerID: partnerID,
		userID:    userID,
		source:    source,
		lastTouch: now,
		expiresAt: now.Add(Window),
		createdAt: now,
	}, nil
}

func ReconstructSession(
	id uuid.UUID,
	sessionID string,
	partnerID uuid.UUID,
	userID *uuid.UUID,
	source Source,
	lastTouch, expiresAt, createdAt time.Time,
) *Session {
	return &Session{
		id:        id,
		sessionID: sessionID,
		partnerID: partnerID,
		userID:    userID,
		source:    source,
		lastTouch: lastTouch,
		expiresAt: expiresAt,
		createdAt: createdAt,
	}
}

// Touch refreshes the window. A known user is never replaced or cleared.
func (s *Session) Touch(now time.Time, userID *uuid.UUID) {
	if now.After(s.lastTouch) {
		s.lastTouch = now
		s.expiresAt = now.Add(Window)
	}
	if s.userID == nil && userID != nil {
		id := *userID
		s.userID = &id
	}
}

func (s *Session) Expired(now time.Time) bool {
	return now.After(s.expiresAt)
}

func (s *Session) ID() uuid.UUID        { return s.id }
func (s *Session) SessionID() string    { return s.sessionID }
func (s *Session) PartnerID() uuid.UUID { return s.partnerID }
func (s *Session) UserID() *uuid.UUID   { return s.userID }
func (s *Session) Source() Source       { return s.source }
func (s *Session) LastTouch() time.Time { return s.lastTouch }
func (s *Session) ExpiresAt() time.Time { return s.expiresAt }
func (s *Session) CreatedAt() time.Time { return s.createdAt }
