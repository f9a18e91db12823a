//go:build unit

package repository_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"storefront-partners/internal/domain/partner"
	"storefront-partners/internal/domain/payout"
	"storefront-partners/internal/infra"
	"storefront-partners/internal/infra/repository"
	sqlc "storefront-partners/internal/infra/sqlc/generated"
	"storefront-partners/internal/pkg/pgconv"
	repositorymock "storefront-partners/tests/mock/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestPayout(t *testing.T) *payout.Payout {
	t.Helper()
	bank, err := partner.NewBankAccount("Mizuho", "1234567", "Optic Reviews LLC")
	require.NoError(t, err)
	partnerID := uuid.New()
	acc := payout.Accrual{
		PartnerID: partnerID,
		Total:     200000,
		Items: []payout.Payable{
			{CommissionID: uuid.New(), PartnerID: partnerID, Amount: 150000},
			{CommissionID: uuid.New(), PartnerID: partnerID, Amount: 50000},
		},
	}
	p, err := payout.NewPayout(uuid.New(), acc, "JPY", bank, time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	return p
}

func TestPayoutRepository_Create(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name       string
		setupMock  func(*repositorymock.MockPayoutQueries, *payout.Payout, sqlc.DBTX)
		expectKind infra.RepositoryErrorKind
	}{
		{
			name: "success: payout and every item inserted",
			setupMock: func(mock *repositorymock.MockPayoutQueries, p *payout.Payout, tx sqlc.DBTX) {
				mock.EXPECT().CreatePayout(ctx, tx, gomock.Any()).DoAndReturn(
					func(_ context.Context, _ sqlc.DBTX, arg sqlc.CreatePayoutParams) error {
						assert.Equal(t, int64(200000), arg.Amount)
						assert.Equal(t, "REQUESTED", arg.Status)
						assert.Equal(t, "Mizuho", arg.BankName)
						return nil
					})
				for _, item := range p.Items() {
					mock.EXPECT().CreatePayoutItem(ctx, tx, sqlc.CreatePayoutItemParams{
						PayoutID:     p.ID(),
						CommissionID: item.CommissionID,
						Amount:       item.Amount,
					}).Return(nil)
				}
			},
		},
		{
			name: "error: second payout in flight for partner",
			setupMock: func(mock *repositorymock.MockPayoutQueries, p *payout.Payout, tx sqlc.DBTX) {
				mock.EXPECT().CreatePayout(ctx, tx, gomock.Any()).Return(&pgconn.PgError{Code: "23505", ConstraintName: "payouts_one_inflight_per_partner"})
			},
			expectKind: infra.KindDuplicateKey,
		},
		{
			name: "error: item insert fails",
			setupMock: func(mock *repositorymock.MockPayoutQueries, p *payout.Payout, tx sqlc.DBTX) {
				mock.EXPECT().CreatePayout(ctx, tx, gomock.Any()).Return(nil)
				mock.EXPECT().CreatePayoutItem(ctx, tx, gomock.Any()).Return(errors.New("disk full"))
			},
			expectKind: infra.KindDBFailure,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := repositorymock.NewMockPayoutQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewPayoutRepository(mockQueries, mockDB)

			p := newTestPayout(t)
			tc.setupMock(mockQueries, p, mockDB)

			actualError := repo.Create(ctx, p)

			if tc.expectKind != "" {
				require.Error(t, actualError)
				assert.True(t, infra.IsKind(actualError, tc.expectKind), "expected kind [%v] but got [%T] (%v)", tc.expectKind, actualError, actualError)
				return
			}
			assert.NoError(t, actualError)
		})
	}
}

func TestPayoutRepository_LockByID(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC)
	payoutID, partnerID, commissionID := uuid.New(), uuid.New(), uuid.New()

	row := sqlc.Payouts{
		ID:                payoutID,
		BatchID:           uuid.New(),
		PartnerID:         partnerID,
		Amount:            210000,
		Currency:          "JPY",
		BankName:          "Mizuho",
		BankAccountNumber: "1234567",
		BankAccountHolder: "Optic Reviews LLC",
		Status:            "SUBMITTED",
		CreatedAt:         pgconv.TimeToPgtype(now),
		UpdatedAt:         pgconv.TimeToPgtype(now),
	}

	t.Run("success: payout loaded with items", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockPayoutQueries(ctrl)
		mockDB := &mockDBTX{}
		repo := repository.NewPayoutRepository(mockQueries, mockDB)

		mockQueries.EXPECT().GetPayoutByIDForUpdate(ctx, mockDB, payoutID).Return(row, nil)
		mockQueries.EXPECT().ListPayoutItems(ctx, mockDB, payoutID).Return([]sqlc.PayoutItems{
			{PayoutID: payoutID, CommissionID: commissionID, Amount: 210000},
		}, nil)

		got, err := repo.LockByID(ctx, payoutID)
		require.NoError(t, err)
		assert.Equal(t, payout.StatusSubmitted, got.Status())
		assert.Equal(t, []uuid.UUID{commissionID}, got.CommissionIDs())
		assert.Equal(t, partnerID, got.Items()[0].PartnerID)
	})

	t.Run("error: payout not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockPayoutQueries(ctrl)
		mockDB := &mockDBTX{}
		repo := repository.NewPayoutRepository(mockQueries, mockDB)

		mockQueries.EXPECT().GetPayoutByIDForUpdate(ctx, mockDB, payoutID).Return(sqlc.Payouts{}, pgx.ErrNoRows)

		_, err := repo.LockByID(ctx, payoutID)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})
}

func TestPayoutRepository_UpdateStatus(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	mockQueries := repositorymock.NewMockPayoutQueries(ctrl)
	mockDB := &mockDBTX{}
	repo := repository.NewPayoutRepository(mockQueries, mockDB)

	p := newTestPayout(t)
	require.NoError(t, p.MarkFailed("gateway rejected", p.CreatedAt()))

	mockQueries.EXPECT().UpdatePayoutStatus(ctx, mockDB, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ sqlc.DBTX, arg sqlc.UpdatePayoutStatusParams) (int64, error) {
			assert.Equal(t, "FAILED", arg.Status)
			assert.Equal(t, "gateway rejected", arg.FailureReason.String)
			assert.False(t, arg.SettledAt.Valid)
			return 1, nil
		})
	require.NoError(t, repo.UpdateStatus(ctx, p))
}

func TestPayoutRepository_ListStaleRequested(t *testing.T) {
	ctx := context.Background()
	cutoff := time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC)
	payoutID, partnerID, commissionID := uuid.New(), uuid.New(), uuid.New()

	t.Run("success: REQUESTED rows loaded with items", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockPayoutQueries(ctrl)
		mockDB := &mockDBTX{}
		repo := repository.NewPayoutRepository(mockQueries, mockDB)

		mockQueries.EXPECT().ListStaleRequestedPayouts(ctx, mockDB, pgconv.TimeToPgtype(cutoff)).Return([]sqlc.Payouts{{
			ID:                payoutID,
			BatchID:           uuid.New(),
			PartnerID:         partnerID,
			Amount:            250000,
			Currency:          "JPY",
			BankName:          "Mizuho",
			BankAccountNumber: "1234567",
			BankAccountHolder: "Optic Reviews LLC",
			Status:            "REQUESTED",
			CreatedAt:         pgconv.TimeToPgtype(cutoff.Add(-time.Hour)),
			UpdatedAt:         pgconv.TimeToPgtype(cutoff.Add(-time.Hour)),
		}}, nil)
		mockQueries.EXPECT().ListPayoutItems(ctx, mockDB, payoutID).Return([]sqlc.PayoutItems{
			{PayoutID: payoutID, CommissionID: commissionID, Amount: 250000},
		}, nil)

		got, err := repo.ListStaleRequested(ctx, cutoff)
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, payout.StatusRequested, got[0].Status())
		assert.Equal(t, []uuid.UUID{commissionID}, got[0].CommissionIDs())
	})

	t.Run("error: query fails", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockPayoutQueries(ctrl)
		mockDB := &mockDBTX{}
		repo := repository.NewPayoutRepository(mockQueries, mockDB)

		mockQueries.EXPECT().ListStaleRequestedPayouts(ctx, mockDB, gomock.Any()).Return(nil, errors.New("connection refused"))

		_, err := repo.ListStaleRequested(ctx, cutoff)
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}
