//go:build unit

package repository_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"storefront-partners/internal/domain/coupon"
	"storefront-partners/internal/infra"
	"storefront-partners/internal/infra/repository"
	sqlc "storefront-partners/internal/infra/sqlc/generated"
	"storefront-partners/internal/pkg/pgconv"
	"storefront-partners/tests/common/builder"
	repositorymock "storefront-partners/tests/mock/repository"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestCouponRepository_FindByCode(t *testing.T) {
	ctx := context.Background()
	code, err := coupon.NewCouponCode("summer10")
	require.NoError(t, err)

	testCases := []struct {
		name       string
		row        func() sqlc.Coupons
		dbErr      error
		expectKind infra.RepositoryErrorKind
	}{
		{
			name: "success: coupon reconstructed",
			row: func() sqlc.Coupons {
				c := builder.NewCouponBuilder().AsSummer10().WithUsage(3, 100).MustBuild()
				return sqlc.Coupons{
					ID:         c.ID(),
					Code:       c.Code().String(),
					Type:       c.Discount().Type().String(),
					Value:      c.Discount().Value(),
					IsActive:   true,
					StartsAt:   pgconv.TimeToPgtype(c.StartsAt()),
					EndsAt:     pgconv.TimeToPgtype(c.EndsAt()),
					UsageLimit: pgconv.Int32PtrToPgtype(c.UsageLimit()),
					UsageCount: c.UsageCount(),
					CreatedAt:  pgconv.TimeToPgtype(c.CreatedAt()),
					UpdatedAt:  pgconv.TimeToPgtype(c.UpdatedAt()),
				}
			},
		},
		{
			name:       "error: coupon not found",
			row:        func() sqlc.Coupons { return sqlc.Coupons{} },
			dbErr:      pgx.ErrNoRows,
			expectKind: infra.KindNotFound,
		},
		{
			name:       "error: database error occurs",
			row:        func() sqlc.Coupons { return sqlc.Coupons{} },
			dbErr:      errors.New("boom"),
			expectKind: infra.KindDBFailure,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := repositorymock.NewMockCouponQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewCouponRepository(mockQueries, mockDB)
			mockQueries.EXPECT().GetCouponByCode(ctx, mockDB, "SUMMER10").Return(tc.row(), tc.dbErr)

			got, actualError := repo.FindByCode(ctx, code)

			if tc.expectKind != "" {
				require.Error(t, actualError)
				assert.True(t, infra.IsKind(actualError, tc.expectKind), "expected kind [%v] but got [%T] (%v)", tc.expectKind, actualError, actualError)
				return
			}
			require.NoError(t, actualError)
			assert.Equal(t, coupon.TypePercent, got.Discount().Type())
			assert.Equal(t, int32(3), got.UsageCount())
			require.NotNil(t, got.UsageLimit())
			assert.Equal(t, int32(100), *got.UsageLimit())
		})
	}
}

func TestCouponRepository_Redeem(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)
	code, err := coupon.NewCouponCode("SUMMER10")
	require.NoError(t, err)

	testCases := []struct {
		name     string
		rows     int64
		redeemed bool
	}{
		{name: "success: usage incremented", rows: 1, redeemed: true},
		{name: "limit reached: no row updated", rows: 0, redeemed: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockQueries := repositorymock.NewMockCouponQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewCouponRepository(mockQueries, mockDB)

			mockQueries.EXPECT().RedeemCoupon(ctx, mockDB, sqlc.RedeemCouponParams{
				Code:      "SUMMER10",
				UpdatedAt: pgconv.TimeToPgtype(now),
			}).Return(tc.rows, nil)

			redeemed, err := repo.Redeem(ctx, code, now)
			require.NoError(t, err)
			assert.Equal(t, tc.redeemed, redeemed)
		})
	}
}
