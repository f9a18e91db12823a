package queries

import (
	"context"
	"time"

	"storefront-partners/internal/domain/commission"
	"storefront-partners/internal/domain/partner"
	"storefront-partners/internal/infra"

	"github.com/google/uuid"
)

type CommissionFilters struct {
	Status *string
}

type PartnerReadStore interface {
	FindByCode(ctx context.Context, code string) (*PartnerView, error)
	FindCommissionsFirstPage(ctx context.Context, partnerID uuid.UUID, status *string, limit int32) ([]*CommissionListItem, error)
	FindCommissionsKeyset(ctx context.Context, partnerID uuid.UUID, status *string, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*CommissionListItem, error)
	GetBalance(ctx context.Context, partnerID uuid.UUID) (*PartnerBalance, error)
}

type PartnerQueries interface {
	GetPartner(ctx context.Context, code string) (*PartnerView, error)
	ListCommissions(ctx context.Context, code string, filters CommissionFilters, cursor *Cursor, limit int) ([]*CommissionListItem, *Cursor, error)
	GetBalance(ctx context.Context, code string) (*PartnerBalance, error)
}

type partnerQueriesImpl struct {
	store PartnerReadStore
}

func NewPartnerQueries(store PartnerReadStore) PartnerQueries {
	return &partnerQueriesImpl{store: store}
}

func (q *partnerQueriesImpl) GetPartner(ctx context.Context, code string) (*PartnerView, error) {
	normalized, err := partner.NewCode(code)
	if err != nil {
		return nil, partner.ErrPartnerNotFound
	}
	view, err := q.store.FindByCode(ctx, normalized.String())
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, partner.ErrPartnerNotFound
		}
		return nil, err
	}
	return view, nil
}

func (q *partnerQueriesImpl) ListCommissions(ctx context.Context, code string, filters CommissionFilters, cursor *Cursor, limit int) ([]*CommissionListItem, *Cursor, error) {
	var status *string
	if filters.Status != nil {
		st, err := commission.NewStatus(*filters.Status)
		if err != nil {
			return nil, nil, err
		}
		s := st.String()
		status = &s
	}
	p, err := q.GetPartner(ctx, code)
	if err != nil {
		return nil, nil, err
	}

	limit = ValidateLimit(limit)
	var rows []*CommissionListItem
	if cursor.IsFirstPage() {
		rows, err = q.store.FindCommissionsFirstPage(ctx, p.ID, status, int32(limit+1))
	} else {
		lastCreatedAt, lastID, derr := DecodeAfterCursor(cursor.After)
		if derr != nil {
			return nil, nil, derr
		}
		rows, err = q.store.FindCommissionsKeyset(ctx, p.ID, status, lastCreatedAt, lastID, int32(limit+1))
	}
	if err != nil {
		return nil, nil, err
	}

	var next *Cursor
	if len(rows) > limit {
		last := rows[limit-1]
		next = &Cursor{After: EncodeAfterCursor(last.CreatedAt, last.ID)}
		rows = rows[:limit]
	}
	return rows, next, nil
}

func (q *partnerQueriesImpl) GetBalance(ctx context.Context, code string) (*PartnerBalance, error) {
	p, err := q.GetPartner(ctx, code)
	if err != nil {
		return nil, err
	}
	balance, err := q.store.GetBalance(ctx, p.ID)
	if err != nil {
		return nil, err
	}
	balance.Code = p.Code
	balance.UnpaidAmount = balance.PendingAmount + balance.ApprovedAmount
	return balance, nil
}
