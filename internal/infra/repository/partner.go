package repository

import (
	"context"

	"storefront-partners/internal/domain/partner"
	"storefront-partners/internal/infra"
	"storefront-partners/internal/infra/repository/converter"
	sqlc "storefront-partners/internal/infra/sqlc/generated"
	"storefront-partners/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type PartnerQueries interface {
	CreatePartner(ctx context.Context, db sqlc.DBTX, arg sqlc.CreatePartnerParams) (sqlc.Partners, error)
	GetPartnerByCode(ctx context.Context, db sqlc.DBTX, code string) (sqlc.Partners, error)
	GetPartnerByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Partners, error)
	GetPartnerByIDForUpdate(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Partners, error)
	UpdatePartnerProfile(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdatePartnerProfileParams) (int64, error)
	UpdatePartnerStatus(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdatePartnerStatusParams) (int64, error)
}

type PartnerRepository struct {
	queries PartnerQueries
	db      sqlc.DBTX
}

func NewPartnerRepository(queries PartnerQueries, db sqlc.DBTX) *PartnerRepository {
	return &PartnerRepository{
		queries: queries,
		db:      db,
	}
}

func (r *PartnerRepository) Create(ctx context.Context, p *partner.Partner) error {
	if _, err := r.queries.CreatePartner(ctx, r.db, converter.PartnerToCreateParams(p)); err != nil {
		return infra.WrapRepoErr("failed to create partner", err)
	}
	return nil
}

func (r *PartnerRepository) FindByCode(ctx context.Context, code partner.Code) (*partner.Partner, error) {
	row, err := r.queries.GetPartnerByCode(ctx, r.db, code.String())
	return r.toDomain(row, err)
}

func (r *PartnerRepository) FindByID(ctx context.Context, id uuid.UUID) (*partner.Partner, error) {
	row, err := r.queries.GetPartnerByID(ctx, r.db, id)
	return r.toDomain(row, err)
}

func (r *PartnerRepository) LockByID(ctx context.Context, id uuid.UUID) (*partner.Partner, error) {
	row, err := r.queries.GetPartnerByIDForUpdate(ctx, r.db, id)
	return r.toDomain(row, err)
}

func (r *PartnerRepository) UpdateStatus(ctx context.Context, p *partner.Partner) error {
	n, err := r.queries.UpdatePartnerStatus(ctx, r.db, sqlc.UpdatePartnerStatusParams{
		ID:        p.ID(),
		Status:    p.Status().String(),
		UpdatedAt: pgconv.TimeToPgtype(p.UpdatedAt()),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to update partner status", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("partner not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *PartnerRepository) UpdateProfile(ctx context.Context, p *partner.Partner) error {
	n, err := r.queries.UpdatePartnerProfile(ctx, r.db, converter.PartnerToProfileParams(p))
	if err != nil {
		return infra.WrapRepoErr("failed to update partner profile", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("partner not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *PartnerRepository) toDomain(row sqlc.Partners, err error) (*partner.Partner, error) {
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("partner not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get partner", err)
	}
	p, err := converter.PartnerFromRow(row)
	if err != nil {
		return nil, infra.WrapRepoErr("stored partner is inconsistent", err)
	}
	return p, nil
}
