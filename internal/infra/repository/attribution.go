package repository

import (
	"context"
	"time"

	"storefront-partners/internal/domain/attribution"
	"storefront-partners/internal/infra"
	"storefront-partners/internal/infra/repository/converter"
	sqlc "storefront-partners/internal/infra/sqlc/generated"
	"storefront-partners/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type SessionQueries interface {
	UpsertAttributionSession(ctx context.Context, db sqlc.DBTX, arg sqlc.UpsertAttributionSessionParams) (sqlc.AttributionSessions, error)
	ListAttributionCandidates(ctx context.Context, db sqlc.DBTX, arg sqlc.ListAttributionCandidatesParams) ([]sqlc.ListAttributionCandidatesRow, error)
}

type SessionRepository struct {
	queries SessionQueries
	db      sqlc.DBTX
}

func NewSessionRepository(queries SessionQueries, db sqlc.DBTX) *SessionRepository {
	return &SessionRepository{queries: queries, db: db}
}

func (r *SessionRepository) Upsert(ctx context.Context, s *attribution.Session) (*attribution.Session, error) {
	row, err := r.queries.UpsertAttributionSession(ctx, r.db, converter.SessionToUpsertParams(s))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to upsert attribution session", err)
	}
	return converter.SessionFromRow(row), nil
}

// ListCandidates returns unexpired rows for the session or the user, latest touch first.
func (r *SessionRepository) ListCandidates(ctx context.Context, sessionID string, userID *uuid.UUID, now time.Time) ([]attribution.Candidate, error) {
	rows, err := r.queries.ListAttributionCandidates(ctx, r.db, sqlc.ListAttributionCandidatesParams{
		SessionID: sessionID,
		UserID:    pgconv.UUIDPtrToPgtype(userID),
		Now:       pgconv.TimeToPgtype(now),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list attribution candidates", err)
	}
	return converter.CandidatesFromRows(rows), nil
}

type ReferralEventQueries interface {
	CreateReferralEvent(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateReferralEventParams) error
}

type ReferralEventRepository struct {
	queries ReferralEventQueries
	db      sqlc.DBTX
}

func NewReferralEventRepository(queries ReferralEventQueries, db sqlc.DBTX) *ReferralEventRepository {
	return &ReferralEventRepository{queries: queries, db: db}
}

func (r *ReferralEventRepository) Append(ctx context.Context, e *attribution.ReferralEvent) error {
	if err := r.queries.CreateReferralEvent(ctx, r.db, converter.ReferralEventToParams(e)); err != nil {
		return infra.WrapRepoErr("failed to append referral event", err)
	}
	return nil
}

type OrderReferralQueries interface {
	CreateOrderReferral(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateOrderReferralParams) (int64, error)
	GetOrderReferral(ctx context.Context, db sqlc.DBTX, orderID string) (sqlc.OrderReferrals, error)
}

type OrderReferralRepository struct {
	queries OrderReferralQueries
	db      sqlc.DBTX
}

func NewOrderReferralRepository(queries OrderReferralQueries, db sqlc.DBTX) *OrderReferralRepository {
	return &OrderReferralRepository{queries: queries, db: db}
}

func (r *OrderReferralRepository) Insert(ctx context.Context, o *attribution.OrderReferral) (bool, error) {
	n, err := r.queries.CreateOrderReferral(ctx, r.db, converter.OrderReferralToParams(o))
	if err != nil {
		return false, infra.WrapRepoErr("failed to record order referral", err)
	}
	return n > 0, nil
}

func (r *OrderReferralRepository) FindByOrderID(ctx context.Context, orderID string) (*attribution.OrderReferral, error) {
	row, err := r.queries.GetOrderReferral(ctx, r.db, orderID)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("order referral not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get order referral", err)
	}
	return converter.OrderReferralFromRow(row), nil
}
