package readstore

import (
	"context"
	"time"

	"storefront-partners/internal/infra"
	sqlc "storefront-partners/internal/infra/sqlc/generated"
	"storefront-partners/internal/pkg/pgconv"
	"storefront-partners/internal/usecase/queries"

	"github.com/google/uuid"
)

type PartnerViewQueries interface {
	GetPartnerByCode(ctx context.Context, db sqlc.DBTX, code string) (sqlc.Partners, error)
	ListCommissionsByPartnerFirstPage(ctx context.Context, db sqlc.DBTX, arg sqlc.ListCommissionsByPartnerFirstPageParams) ([]sqlc.Commissions, error)
	ListCommissionsByPartnerKeyset(ctx context.Context, db sqlc.DBTX, arg sqlc.ListCommissionsByPartnerKeysetParams) ([]sqlc.Commissions, error)
	GetPartnerBalance(ctx context.Context, db sqlc.DBTX, partnerID uuid.UUID) (sqlc.GetPartnerBalanceRow, error)
}

type PartnerReadStore struct {
	queries PartnerViewQueries
	db      sqlc.DBTX
}

func NewPartnerReadStore(queries PartnerViewQueries, db sqlc.DBTX) *PartnerReadStore {
	return &PartnerReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *PartnerReadStore) FindByCode(ctx context.Context, code string) (*queries.PartnerView, error) {
	row, err := r.queries.GetPartnerByCode(ctx, r.db, code)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("partner not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get partner view by code", err)
	}
	return &queries.PartnerView{
		ID:                row.ID,
		Code:              row.Code,
		Name:              row.Name,
		Level:             row.Level,
		Status:            row.Status,
		BankName:          pgconv.StringFromPgtype(row.BankName),
		BankAccountMasked: queries.MaskAccount(pgconv.StringFromPgtype(row.BankAccountNumber)),
		CreatedAt:         pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:         pgconv.TimeFromPgtype(row.UpdatedAt),
	}, nil
}

func (r *PartnerReadStore) FindCommissionsFirstPage(ctx context.Context, partnerID uuid.UUID, status *string, limit int32) ([]*queries.CommissionListItem, error) {
	params := sqlc.ListCommissionsByPartnerFirstPageParams{
		PartnerID: partnerID,
		Status:    pgconv.StringPtrToPgtype(status),
		Limit:     limit,
	}
	rows, err := r.queries.ListCommissionsByPartnerFirstPage(ctx, r.db, params)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get commissions first page by partner", err)
	}
	return mapCommissionRows(rows), nil
}

func (r *PartnerReadStore) FindCommissionsKeyset(ctx context.Context, partnerID uuid.UUID, status *string, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*queries.CommissionListItem, error) {
	params := sqlc.ListCommissionsByPartnerKeysetParams{
		PartnerID: partnerID,
		Status:    pgconv.StringPtrToPgtype(status),
		CreatedAt: pgconv.TimeToPgtype(lastCreatedAt),
		ID:        lastID,
		Limit:     limit,
	}
	rows, err := r.queries.ListCommissionsByPartnerKeyset(ctx, r.db, params)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get commissions keyset by partner", err)
	}
	return mapCommissionRows(rows), nil
}

func (r *PartnerReadStore) GetBalance(ctx context.Context, partnerID uuid.UUID) (*queries.PartnerBalance, error) {
	row, err := r.queries.GetPartnerBalance(ctx, r.db, partnerID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get partner balance", err)
	}
	return &queries.PartnerBalance{
		PartnerID:       partnerID,
		PendingAmount:   row.PendingAmount,
		ApprovedAmount:  row.ApprovedAmount,
		PaidAmount:      row.PaidAmount,
		CommissionCount: row.CommissionCount,
	}, nil
}

func mapCommissionRows(rows []sqlc.Commissions) []*queries.CommissionListItem {
	items := make([]*queries.CommissionListItem, 0, len(rows))
	for _, row := range rows {
		items = append(items, &queries.CommissionListItem{
			ID:         row.ID,
			OrderID:    row.OrderID,
			OrderTotal: row.OrderTotal,
			RateBps:    row.RateBps,
			Amount:     row.Amount,
			Status:     row.Status,
			ReviewedAt: pgconv.TimePtrFromPgtype(row.ReviewedAt),
			PaidAt:     pgconv.TimePtrFromPgtype(row.PaidAt),
			CreatedAt:  pgconv.TimeFromPgtype(row.CreatedAt),
		})
	}
	return items
}
