package repository

import (
	"context"
	"time"

	"storefront-partners/internal/domain/payout"
	"storefront-partners/internal/infra"
	"storefront-partners/internal/infra/repository/converter"
	sqlc "storefront-partners/internal/infra/sqlc/generated"
	"storefront-partners/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type PayoutQueries interface {
	CreatePayoutBatch(ctx context.Context, db sqlc.DBTX, arg sqlc.CreatePayoutBatchParams) error
	FinishPayoutBatch(ctx context.Context, db sqlc.DBTX, arg sqlc.FinishPayoutBatchParams) error
	CreatePayout(ctx context.Context, db sqlc.DBTX, arg sqlc.CreatePayoutParams) error
	CreatePayoutItem(ctx context.Context, db sqlc.DBTX, arg sqlc.CreatePayoutItemParams) error
	GetPayoutByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Payouts, error)
	GetPayoutByIDForUpdate(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Payouts, error)
	ListPayoutItems(ctx context.Context, db sqlc.DBTX, payoutID uuid.UUID) ([]sqlc.PayoutItems, error)
	UpdatePayoutStatus(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdatePayoutStatusParams) (int64, error)
	HasInflightPayout(ctx context.Context, db sqlc.DBTX, partnerID uuid.UUID) (bool, error)
	ListInflightPayoutPartnerIDs(ctx context.Context, db sqlc.DBTX) ([]uuid.UUID, error)
	ListStaleRequestedPayouts(ctx context.Context, db sqlc.DBTX, updatedAt pgtype.Timestamptz) ([]sqlc.Payouts, error)
}

type PayoutRepository struct {
	queries PayoutQueries
	db      sqlc.DBTX
}

func NewPayoutRepository(queries PayoutQueries, db sqlc.DBTX) *PayoutRepository {
	return &PayoutRepository{queries: queries, db: db}
}

func (r *PayoutRepository) CreateBatch(ctx context.Context, b *payout.Batch) error {
	if err := r.queries.CreatePayoutBatch(ctx, r.db, converter.BatchToCreateParams(b)); err != nil {
		return infra.WrapRepoErr("failed to create payout batch", err)
	}
	return nil
}

func (r *PayoutRepository) FinishBatch(ctx context.Context, b *payout.Batch) error {
	if err := r.queries.FinishPayoutBatch(ctx, r.db, converter.BatchToFinishParams(b)); err != nil {
		return infra.WrapRepoErr("failed to finish payout batch", err)
	}
	return nil
}

func (r *PayoutRepository) Create(ctx context.Context, p *payout.Payout) error {
	if err := r.queries.CreatePayout(ctx, r.db, converter.PayoutToCreateParams(p)); err != nil {
		return infra.WrapRepoErr("failed to create payout", err)
	}
	for _, item := range converter.PayoutItemsToParams(p) {
		if err := r.queries.CreatePayoutItem(ctx, r.db, item); err != nil {
			return infra.WrapRepoErr("failed to create payout item", err)
		}
	}
	return nil
}

func (r *PayoutRepository) FindByID(ctx context.Context, id uuid.UUID) (*payout.Payout, error) {
	row, err := r.queries.GetPayoutByID(ctx, r.db, id)
	return r.load(ctx, row, err)
}

func (r *PayoutRepository) LockByID(ctx context.Context, id uuid.UUID) (*payout.Payout, error) {
	row, err := r.queries.GetPayoutByIDForUpdate(ctx, r.db, id)
	return r.load(ctx, row, err)
}

func (r *PayoutRepository) UpdateStatus(ctx context.Context, p *payout.Payout) error {
	n, err := r.queries.UpdatePayoutStatus(ctx, r.db, converter.PayoutToStatusParams(p))
	if err != nil {
		return infra.WrapRepoErr("failed to update payout status", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("payout not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *PayoutRepository) HasInflight(ctx context.Context, partnerID uuid.UUID) (bool, error) {
	ok, err := r.queries.HasInflightPayout(ctx, r.db, partnerID)
	if err != nil {
		return false, infra.WrapRepoErr("failed to check in-flight payouts", err)
	}
	return ok, nil
}

func (r *PayoutRepository) InflightPartnerIDs(ctx context.Context) ([]uuid.UUID, error) {
	ids, err := r.queries.ListInflightPayoutPartnerIDs(ctx, r.db)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list in-flight payout partners", err)
	}
	return ids, nil
}

func (r *PayoutRepository) ListStaleRequested(ctx context.Context, before time.Time) ([]*payout.Payout, error) {
	rows, err := r.queries.ListStaleRequestedPayouts(ctx, r.db, pgconv.TimeToPgtype(before))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list stale payouts", err)
	}
	payouts := make([]*payout.Payout, 0, len(rows))
	for _, row := range rows {
		p, err := r.load(ctx, row, nil)
		if err != nil {
			return nil, err
		}
		payouts = append(payouts, p)
	}
	return payouts, nil
}

func (r *PayoutRepository) load(ctx context.Context, row sqlc.Payouts, err error) (*payout.Payout, error) {
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("payout not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get payout", err)
	}
	items, err := r.queries.ListPayoutItems(ctx, r.db, row.ID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list payout items", err)
	}
	p, err := converter.PayoutFromRows(row, items)
	if err != nil {
		return nil, infra.WrapRepoErr("stored payout is inconsistent", err)
	}
	return p, nil
}
