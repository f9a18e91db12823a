//go:build unit

package commands_test

import (
	"context"
	"time"

	"storefront-partners/internal/infra"
	"storefront-partners/internal/pkg/clock"
	"storefront-partners/internal/usecase/shared"
	sharedmock "storefront-partners/tests/mock/shared"

	"go.uber.org/mock/gomock"
)

var fixedNow = time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)

// txFixture runs every transaction callback inline against one mocked Tx.
type txFixture struct {
	uow            *sharedmock.MockUnitOfWork
	tx             *sharedmock.MockTx
	partners       *sharedmock.MockPartnerRepository
	sessions       *sharedmock.MockSessionRepository
	events         *sharedmock.MockReferralEventRepository
	coupons        *sharedmock.MockCouponRepository
	orderReferrals *sharedmock.MockOrderReferralRepository
	commissions    *sharedmock.MockCommissionRepository
	payouts        *sharedmock.MockPayoutRepository
	clock          *clock.MockClock
}

func newTxFixture(ctrl *gomock.Controller) *txFixture {
	f := &txFixture{
		uow:            sharedmock.NewMockUnitOfWork(ctrl),
		tx:             sharedmock.NewMockTx(ctrl),
		partners:       sharedmock.NewMockPartnerRepository(ctrl),
		sessions:       sharedmock.NewMockSessionRepository(ctrl),
		events:         sharedmock.NewMockReferralEventRepository(ctrl),
		coupons:        sharedmock.NewMockCouponRepository(ctrl),
		orderReferrals: sharedmock.NewMockOrderReferralRepository(ctrl),
		commissions:    sharedmock.NewMockCommissionRepository(ctrl),
		payouts:        sharedmock.NewMockPayoutRepository(ctrl),
		clock:          clock.NewMockClock(fixedNow),
	}

	run := func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
		return fn(ctx, f.tx)
	}
	f.uow.EXPECT().Within(gomock.Any(), gomock.Any()).DoAndReturn(run).AnyTimes()
	f.uow.EXPECT().WithinReadOnly(gomock.Any(), gomock.Any()).DoAndReturn(run).AnyTimes()

	f.tx.EXPECT().Partners().Return(f.partners).AnyTimes()
	f.tx.EXPECT().Sessions().Return(f.sessions).AnyTimes()
	f.tx.EXPECT().ReferralEvents().Return(f.events).AnyTimes()
	f.tx.EXPECT().Coupons().Return(f.coupons).AnyTimes()
	f.tx.EXPECT().OrderReferrals().Return(f.orderReferrals).AnyTimes()
	f.tx.EXPECT().Commissions().Return(f.commissions).AnyTimes()
	f.tx.EXPECT().Payouts().Return(f.payouts).AnyTimes()
	return f
}

func notFound(msg string) error {
	return infra.WrapRepoErr(msg, nil, infra.KindNotFound)
}

func duplicateKey(msg string) error {
	return infra.WrapRepoErr(msg, nil, infra.KindDuplicateKey)
}
