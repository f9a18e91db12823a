package repository

import (
	"context"
	"time"

	"storefront-partners/internal/domain/commission"
	"storefront-partners/internal/domain/payout"
	"storefront-partners/internal/infra"
	"storefront-partners/internal/infra/repository/converter"
	sqlc "storefront-partners/internal/infra/sqlc/generated"
	"storefront-partners/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type CommissionQueries interface {
	InsertCommission(ctx context.Context, db sqlc.DBTX, arg sqlc.InsertCommissionParams) (int64, error)
	GetCommissionByOrderID(ctx context.Context, db sqlc.DBTX, orderID string) (sqlc.Commissions, error)
	GetCommissionByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Commissions, error)
	GetCommissionByIDForUpdate(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Commissions, error)
	UpdateCommissionStatus(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateCommissionStatusParams) (int64, error)
	ListPayableCommissions(ctx context.Context, db sqlc.DBTX) ([]sqlc.ListPayableCommissionsRow, error)
	ListPayableCommissionsByPartner(ctx context.Context, db sqlc.DBTX, partnerID uuid.UUID) ([]sqlc.ListPayableCommissionsByPartnerRow, error)
	MarkPayoutCommissionsPaid(ctx context.Context, db sqlc.DBTX, arg sqlc.MarkPayoutCommissionsPaidParams) (int64, error)
}

type CommissionRepository struct {
	queries CommissionQueries
	db      sqlc.DBTX
}

func NewCommissionRepository(queries CommissionQueries, db sqlc.DBTX) *CommissionRepository {
	return &CommissionRepository{queries: queries, db: db}
}

// Insert relies on ON CONFLICT (order_id) DO NOTHING; false means the order already has a commission.
func (r *CommissionRepository) Insert(ctx context.Context, c *commission.Commission) (bool, error) {
	n, err := r.queries.InsertCommission(ctx, r.db, converter.CommissionToInsertParams(c))
	if err != nil {
		return false, infra.WrapRepoErr("failed to insert commission", err)
	}
	return n > 0, nil
}

func (r *CommissionRepository) FindByOrderID(ctx context.Context, orderID string) (*commission.Commission, error) {
	row, err := r.queries.GetCommissionByOrderID(ctx, r.db, orderID)
	return toCommission(row, err)
}

func (r *CommissionRepository) FindByID(ctx context.Context, id uuid.UUID) (*commission.Commission, error) {
	row, err := r.queries.GetCommissionByID(ctx, r.db, id)
	return toCommission(row, err)
}

func (r *CommissionRepository) LockByID(ctx context.Context, id uuid.UUID) (*commission.Commission, error) {
	row, err := r.queries.GetCommissionByIDForUpdate(ctx, r.db, id)
	return toCommission(row, err)
}

func (r *CommissionRepository) UpdateStatus(ctx context.Context, c *commission.Commission) error {
	n, err := r.queries.UpdateCommissionStatus(ctx, r.db, converter.CommissionToStatusParams(c))
	if err != nil {
		return infra.WrapRepoErr("failed to update commission status", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("commission not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *CommissionRepository) ListPayable(ctx context.Context) ([]payout.Payable, error) {
	rows, err := r.queries.ListPayableCommissions(ctx, r.db)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list payable commissions", err)
	}
	return converter.PayablesFromRows(rows), nil
}

func (r *CommissionRepository) ListPayableByPartner(ctx context.Context, partnerID uuid.UUID) ([]payout.Payable, error) {
	rows, err := r.queries.ListPayableCommissionsByPartner(ctx, r.db, partnerID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list partner payable commissions", err)
	}
	return converter.PartnerPayablesFromRows(rows), nil
}

func (r *CommissionRepository) MarkPaidByPayout(ctx context.Context, payoutID uuid.UUID, now time.Time) (int64, error) {
	n, err := r.queries.MarkPayoutCommissionsPaid(ctx, r.db, sqlc.MarkPayoutCommissionsPaidParams{
		PaidAt:   pgconv.TimeToPgtype(now),
		PayoutID: payoutID,
	})
	if err != nil {
		return 0, infra.WrapRepoErr("failed to mark payout commissions paid", err)
	}
	return n, nil
}

func toCommission(row sqlc.Commissions, err error) (*commission.Commission, error) {
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("commission not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get commission", err)
	}
	return converter.CommissionFromRow(row), nil
}
