//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"storefront-partners/internal/domain/partner"
	"storefront-partners/internal/domain/payout"
	"storefront-partners/internal/pkg/errs"
	"storefront-partners/internal/pkg/ptr"
	"storefront-partners/internal/usecase/commands"
	"storefront-partners/tests/common/builder"
	commandsmock "storefront-partners/tests/mock/commands"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var payoutSettings = commands.PayoutSettings{Threshold: payout.DefaultThreshold, Currency: "JPY", ResubmitAfter: 15 * time.Minute}

var staleCutoff = fixedNow.Add(-15 * time.Minute)

func expectNoStalePayouts(f *txFixture) {
	f.payouts.EXPECT().ListStaleRequested(gomock.Any(), staleCutoff).Return(nil, nil)
}

func payables(partnerID uuid.UUID, amounts ...int64) []payout.Payable {
	out := make([]payout.Payable, len(amounts))
	for i, a := range amounts {
		out[i] = payout.Payable{CommissionID: uuid.New(), PartnerID: partnerID, Amount: a}
	}
	return out
}

// expectPayoutCreated wires Create and the follow-up LockByID to the same in-memory payout.
func expectPayoutCreated(f *txFixture) **payout.Payout {
	var created *payout.Payout
	f.payouts.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, p *payout.Payout) error {
			created = p
			return nil
		})
	f.payouts.EXPECT().LockByID(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, id uuid.UUID) (*payout.Payout, error) {
			return created, nil
		})
	return &created
}

func TestPayoutCommands_RunCycle(t *testing.T) {
	ctx := context.Background()

	t.Run("threshold boundary: 200,000 is paid, 199,999 keeps accruing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		f := newTxFixture(ctrl)
		gateway := commandsmock.NewMockSettlementGateway(ctrl)
		a := builder.NewPartnerBuilder().WithCode("PAYEEA").MustBuild()
		bID := uuid.New()

		aItems := payables(a.ID(), 150000, 50000)
		expectNoStalePayouts(f)
		f.payouts.EXPECT().CreateBatch(gomock.Any(), gomock.Any()).Return(nil)
		f.commissions.EXPECT().ListPayable(gomock.Any()).Return(append(aItems, payables(bID, 199999)...), nil)
		f.payouts.EXPECT().InflightPartnerIDs(gomock.Any()).Return(nil, nil)

		f.partners.EXPECT().LockByID(gomock.Any(), a.ID()).Return(a, nil)
		f.payouts.EXPECT().HasInflight(gomock.Any(), a.ID()).Return(false, nil)
		f.commissions.EXPECT().ListPayableByPartner(gomock.Any(), a.ID()).Return(aItems, nil)
		created := expectPayoutCreated(f)
		gateway.EXPECT().Submit(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, req commands.SettlementRequest) error {
				assert.Equal(t, int64(200000), req.Amount)
				assert.Equal(t, "JPY", req.Currency)
				assert.Equal(t, "Mizuho", req.BankName)
				return nil
			})
		f.payouts.EXPECT().UpdateStatus(gomock.Any(), gomock.Any()).Return(nil)
		f.payouts.EXPECT().FinishBatch(gomock.Any(), gomock.Any()).Return(nil)

		result, err := commands.NewPayoutUseCase(f.uow, f.clock, gateway, payoutSettings).RunCycle(ctx, nil)
		require.NoError(t, err)

		require.Len(t, result.Submitted, 1)
		assert.Equal(t, payout.StatusSubmitted, (*created).Status())
		assert.ElementsMatch(t, []uuid.UUID{aItems[0].CommissionID, aItems[1].CommissionID}, result.Submitted[0].CommissionIDs())
		require.Len(t, result.Deferred, 1)
		assert.Equal(t, bID, result.Deferred[0].PartnerID)
		assert.Equal(t, int64(199999), result.Deferred[0].Total)
		assert.Equal(t, int32(1), result.Batch.PartnerCount())
		assert.Equal(t, int64(200000), result.Batch.TotalAmount())
		assert.NotNil(t, result.Batch.FinishedAt())
	})

	t.Run("gateway rejection marks only that payout FAILED", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		f := newTxFixture(ctrl)
		gateway := commandsmock.NewMockSettlementGateway(ctrl)
		a := builder.NewPartnerBuilder().MustBuild()
		items := payables(a.ID(), 250000)

		expectNoStalePayouts(f)
		f.payouts.EXPECT().CreateBatch(gomock.Any(), gomock.Any()).Return(nil)
		f.commissions.EXPECT().ListPayable(gomock.Any()).Return(items, nil)
		f.payouts.EXPECT().InflightPartnerIDs(gomock.Any()).Return(nil, nil)
		f.partners.EXPECT().LockByID(gomock.Any(), a.ID()).Return(a, nil)
		f.payouts.EXPECT().HasInflight(gomock.Any(), a.ID()).Return(false, nil)
		f.commissions.EXPECT().ListPayableByPartner(gomock.Any(), a.ID()).Return(items, nil)
		expectPayoutCreated(f)
		gateway.EXPECT().Submit(gomock.Any(), gomock.Any()).Return(errs.Wrap(payout.ErrSettlementRejected, "account closed"))
		f.payouts.EXPECT().UpdateStatus(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, p *payout.Payout) error {
				assert.Equal(t, payout.StatusFailed, p.Status())
				assert.Contains(t, *p.FailureReason(), "account closed")
				return nil
			})
		f.payouts.EXPECT().FinishBatch(gomock.Any(), gomock.Any()).Return(nil)

		result, err := commands.NewPayoutUseCase(f.uow, f.clock, gateway, payoutSettings).RunCycle(ctx, nil)
		require.NoError(t, err)
		assert.Empty(t, result.Submitted)
		assert.Empty(t, result.Unconfirmed)
		require.Len(t, result.Failed, 1)
	})

	t.Run("gateway timeout leaves the payout REQUESTED and its commissions held", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		f := newTxFixture(ctrl)
		gateway := commandsmock.NewMockSettlementGateway(ctrl)
		a := builder.NewPartnerBuilder().MustBuild()
		items := payables(a.ID(), 250000)

		expectNoStalePayouts(f)
		f.payouts.EXPECT().CreateBatch(gomock.Any(), gomock.Any()).Return(nil)
		f.commissions.EXPECT().ListPayable(gomock.Any()).Return(items, nil)
		f.payouts.EXPECT().InflightPartnerIDs(gomock.Any()).Return(nil, nil)
		f.partners.EXPECT().LockByID(gomock.Any(), a.ID()).Return(a, nil)
		f.payouts.EXPECT().HasInflight(gomock.Any(), a.ID()).Return(false, nil)
		f.commissions.EXPECT().ListPayableByPartner(gomock.Any(), a.ID()).Return(items, nil)
		f.payouts.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
		gateway.EXPECT().Submit(gomock.Any(), gomock.Any()).Return(errors.New("gateway timeout"))
		f.payouts.EXPECT().FinishBatch(gomock.Any(), gomock.Any()).Return(nil)

		result, err := commands.NewPayoutUseCase(f.uow, f.clock, gateway, payoutSettings).RunCycle(ctx, nil)
		require.NoError(t, err)
		assert.Empty(t, result.Submitted)
		assert.Empty(t, result.Failed)
		require.Len(t, result.Unconfirmed, 1)
		assert.Equal(t, payout.StatusRequested, result.Unconfirmed[0].Status())
		assert.Nil(t, result.Unconfirmed[0].FailureReason())
		assert.Equal(t, int64(250000), result.Batch.TotalAmount())
	})

	t.Run("payout left REQUESTED by a failed status write is resubmitted next cycle", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		gateway := commandsmock.NewMockSettlementGateway(ctrl)
		a := builder.NewPartnerBuilder().MustBuild()
		items := payables(a.ID(), 250000)

		// First cycle: the gateway accepts, recording the answer fails.
		f := newTxFixture(ctrl)
		expectNoStalePayouts(f)
		f.payouts.EXPECT().CreateBatch(gomock.Any(), gomock.Any()).Return(nil)
		f.commissions.EXPECT().ListPayable(gomock.Any()).Return(items, nil)
		f.payouts.EXPECT().InflightPartnerIDs(gomock.Any()).Return(nil, nil)
		f.partners.EXPECT().LockByID(gomock.Any(), a.ID()).Return(a, nil)
		f.payouts.EXPECT().HasInflight(gomock.Any(), a.ID()).Return(false, nil)
		f.commissions.EXPECT().ListPayableByPartner(gomock.Any(), a.ID()).Return(items, nil)
		var stored *payout.Payout
		f.payouts.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, p *payout.Payout) error {
				stored = p
				return nil
			})
		gateway.EXPECT().Submit(gomock.Any(), gomock.Any()).Return(nil)
		f.payouts.EXPECT().LockByID(gomock.Any(), gomock.Any()).Return(nil, errors.New("connection reset"))
		f.payouts.EXPECT().FinishBatch(gomock.Any(), gomock.Any()).Return(nil)

		first, err := commands.NewPayoutUseCase(f.uow, f.clock, gateway, payoutSettings).RunCycle(ctx, nil)
		require.NoError(t, err)
		require.Len(t, first.Skipped, 1)
		assert.Contains(t, first.Skipped[0].Reason, "connection reset")
		require.NotNil(t, stored)
		assert.Equal(t, payout.StatusRequested, stored.Status())

		// Second cycle: the stale payout goes out again under the same id.
		g := newTxFixture(ctrl)
		g.payouts.EXPECT().ListStaleRequested(gomock.Any(), staleCutoff).Return([]*payout.Payout{stored}, nil)
		gateway.EXPECT().Submit(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, req commands.SettlementRequest) error {
				assert.Equal(t, stored.ID(), req.PayoutID)
				return nil
			})
		g.payouts.EXPECT().LockByID(gomock.Any(), stored.ID()).Return(stored, nil)
		g.payouts.EXPECT().UpdateStatus(gomock.Any(), stored).Return(nil)
		g.payouts.EXPECT().CreateBatch(gomock.Any(), gomock.Any()).Return(nil)
		g.commissions.EXPECT().ListPayable(gomock.Any()).Return(nil, nil)
		g.payouts.EXPECT().InflightPartnerIDs(gomock.Any()).Return([]uuid.UUID{a.ID()}, nil)
		g.payouts.EXPECT().FinishBatch(gomock.Any(), gomock.Any()).Return(nil)

		second, err := commands.NewPayoutUseCase(g.uow, g.clock, gateway, payoutSettings).RunCycle(ctx, nil)
		require.NoError(t, err)
		require.Len(t, second.Resubmitted, 1)
		assert.Equal(t, payout.StatusSubmitted, second.Resubmitted[0].Status())
		assert.Empty(t, second.Submitted)
		assert.Zero(t, second.Batch.PartnerCount())
	})

	t.Run("rejected resubmission marks the stale payout FAILED", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		f := newTxFixture(ctrl)
		gateway := commandsmock.NewMockSettlementGateway(ctrl)
		a := builder.NewPartnerBuilder().MustBuild()
		stale, err := payout.NewPayout(uuid.New(), payout.Accrual{PartnerID: a.ID(), Total: 250000, Items: payables(a.ID(), 250000)}, "JPY", a.Bank(), fixedNow.Add(-time.Hour))
		require.NoError(t, err)

		f.payouts.EXPECT().ListStaleRequested(gomock.Any(), staleCutoff).Return([]*payout.Payout{stale}, nil)
		gateway.EXPECT().Submit(gomock.Any(), gomock.Any()).Return(errs.Wrap(payout.ErrSettlementRejected, "invalid account"))
		f.payouts.EXPECT().LockByID(gomock.Any(), stale.ID()).Return(stale, nil)
		f.payouts.EXPECT().UpdateStatus(gomock.Any(), stale).Return(nil)
		f.payouts.EXPECT().CreateBatch(gomock.Any(), gomock.Any()).Return(nil)
		f.commissions.EXPECT().ListPayable(gomock.Any()).Return(nil, nil)
		f.payouts.EXPECT().InflightPartnerIDs(gomock.Any()).Return(nil, nil)
		f.payouts.EXPECT().FinishBatch(gomock.Any(), gomock.Any()).Return(nil)

		result, err := commands.NewPayoutUseCase(f.uow, f.clock, gateway, payoutSettings).RunCycle(ctx, nil)
		require.NoError(t, err)
		require.Len(t, result.Resubmitted, 1)
		assert.Equal(t, payout.StatusFailed, result.Resubmitted[0].Status())
	})

	t.Run("error: stale payouts cannot be listed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		f := newTxFixture(ctrl)
		f.payouts.EXPECT().ListStaleRequested(gomock.Any(), gomock.Any()).Return(nil, errors.New("db down"))

		_, err := commands.NewPayoutUseCase(f.uow, f.clock, commandsmock.NewMockSettlementGateway(ctrl), payoutSettings).RunCycle(ctx, nil)
		require.Error(t, err)
	})

	t.Run("partner without bank details is skipped", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		f := newTxFixture(ctrl)
		gateway := commandsmock.NewMockSettlementGateway(ctrl)
		a := builder.NewPartnerBuilder().WithoutBank().MustBuild()
		items := payables(a.ID(), 300000)

		expectNoStalePayouts(f)
		f.payouts.EXPECT().CreateBatch(gomock.Any(), gomock.Any()).Return(nil)
		f.commissions.EXPECT().ListPayable(gomock.Any()).Return(items, nil)
		f.payouts.EXPECT().InflightPartnerIDs(gomock.Any()).Return(nil, nil)
		f.partners.EXPECT().LockByID(gomock.Any(), a.ID()).Return(a, nil)
		f.payouts.EXPECT().HasInflight(gomock.Any(), a.ID()).Return(false, nil)
		f.commissions.EXPECT().ListPayableByPartner(gomock.Any(), a.ID()).Return(items, nil)
		f.payouts.EXPECT().FinishBatch(gomock.Any(), gomock.Any()).Return(nil)

		result, err := commands.NewPayoutUseCase(f.uow, f.clock, gateway, payoutSettings).RunCycle(ctx, nil)
		require.NoError(t, err)
		require.Len(t, result.Skipped, 1)
		assert.Equal(t, "no bank account on file", result.Skipped[0].Reason)
		assert.Zero(t, result.Batch.PartnerCount())
	})

	t.Run("partner with a payout in flight is skipped at planning", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		f := newTxFixture(ctrl)
		gateway := commandsmock.NewMockSettlementGateway(ctrl)
		busy := uuid.New()

		expectNoStalePayouts(f)
		f.payouts.EXPECT().CreateBatch(gomock.Any(), gomock.Any()).Return(nil)
		f.commissions.EXPECT().ListPayable(gomock.Any()).Return(payables(busy, 400000), nil)
		f.payouts.EXPECT().InflightPartnerIDs(gomock.Any()).Return([]uuid.UUID{busy}, nil)
		f.payouts.EXPECT().FinishBatch(gomock.Any(), gomock.Any()).Return(nil)

		result, err := commands.NewPayoutUseCase(f.uow, f.clock, gateway, payoutSettings).RunCycle(ctx, nil)
		require.NoError(t, err)
		require.Len(t, result.Skipped, 1)
		assert.Equal(t, busy, result.Skipped[0].PartnerID)
	})

	t.Run("override lowers the threshold for one run", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		f := newTxFixture(ctrl)
		gateway := commandsmock.NewMockSettlementGateway(ctrl)

		expectNoStalePayouts(f)
		f.payouts.EXPECT().CreateBatch(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, b *payout.Batch) error {
				assert.Equal(t, int64(1000), b.Threshold())
				return nil
			})
		f.commissions.EXPECT().ListPayable(gomock.Any()).Return(nil, nil)
		f.payouts.EXPECT().InflightPartnerIDs(gomock.Any()).Return(nil, nil)
		f.payouts.EXPECT().FinishBatch(gomock.Any(), gomock.Any()).Return(nil)

		_, err := commands.NewPayoutUseCase(f.uow, f.clock, gateway, payoutSettings).RunCycle(ctx, ptr.To(int64(1000)))
		require.NoError(t, err)
	})

	t.Run("error: non-positive override", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		f := newTxFixture(ctrl)

		_, err := commands.NewPayoutUseCase(f.uow, f.clock, commandsmock.NewMockSettlementGateway(ctrl), payoutSettings).RunCycle(ctx, ptr.To(int64(0)))
		require.ErrorIs(t, err, payout.ErrInvalidThreshold)
	})
}

func submittedPayout(t *testing.T, p *partner.Partner, amounts ...int64) *payout.Payout {
	t.Helper()
	items := payables(p.ID(), amounts...)
	var total int64
	for _, a := range amounts {
		total += a
	}
	po, err := payout.NewPayout(uuid.New(), payout.Accrual{PartnerID: p.ID(), Total: total, Items: items}, "JPY", p.Bank(), fixedNow)
	require.NoError(t, err)
	require.NoError(t, po.MarkSubmitted(fixedNow))
	return po
}

func TestPayoutCommands_ConfirmSettlement(t *testing.T) {
	ctx := context.Background()
	p := builder.NewPartnerBuilder().MustBuild()

	t.Run("success settles the payout and pays its commissions", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		f := newTxFixture(ctrl)
		po := submittedPayout(t, p, 120000, 80000)

		f.payouts.EXPECT().LockByID(gomock.Any(), po.ID()).Return(po, nil)
		f.commissions.EXPECT().MarkPaidByPayout(gomock.Any(), po.ID(), fixedNow).Return(int64(2), nil)
		f.payouts.EXPECT().UpdateStatus(gomock.Any(), po).Return(nil)

		uc := commands.NewPayoutUseCase(f.uow, f.clock, nil, payoutSettings)
		settled, err := uc.ConfirmSettlement(ctx, commands.ConfirmSettlementRequest{PayoutID: po.ID(), Success: true})
		require.NoError(t, err)
		assert.Equal(t, payout.StatusSettled, settled.Status())
		assert.Equal(t, fixedNow, *settled.SettledAt())
	})

	t.Run("failure leaves commissions untouched", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		f := newTxFixture(ctrl)
		po := submittedPayout(t, p, 250000)

		f.payouts.EXPECT().LockByID(gomock.Any(), po.ID()).Return(po, nil)
		f.payouts.EXPECT().UpdateStatus(gomock.Any(), po).Return(nil)

		uc := commands.NewPayoutUseCase(f.uow, f.clock, nil, payoutSettings)
		failed, err := uc.ConfirmSettlement(ctx, commands.ConfirmSettlementRequest{PayoutID: po.ID(), Reason: ptr.To("account closed")})
		require.NoError(t, err)
		assert.Equal(t, payout.StatusFailed, failed.Status())
		assert.Equal(t, "account closed", *failed.FailureReason())
	})

	t.Run("replay on a settled payout is a no-op", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		f := newTxFixture(ctrl)
		po := submittedPayout(t, p, 250000)
		require.NoError(t, po.MarkSettled(fixedNow))

		f.payouts.EXPECT().LockByID(gomock.Any(), po.ID()).Return(po, nil)

		uc := commands.NewPayoutUseCase(f.uow, f.clock, nil, payoutSettings)
		again, err := uc.ConfirmSettlement(ctx, commands.ConfirmSettlementRequest{PayoutID: po.ID(), Success: false})
		require.NoError(t, err)
		assert.Equal(t, payout.StatusSettled, again.Status())
	})

	t.Run("late success on a failed payout settles it and pays its commissions", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		f := newTxFixture(ctrl)
		po := submittedPayout(t, p, 250000)
		require.NoError(t, po.MarkFailed("gateway timeout", fixedNow))

		f.payouts.EXPECT().LockByID(gomock.Any(), po.ID()).Return(po, nil)
		f.commissions.EXPECT().MarkPaidByPayout(gomock.Any(), po.ID(), fixedNow).Return(int64(1), nil)
		f.payouts.EXPECT().UpdateStatus(gomock.Any(), po).Return(nil)

		uc := commands.NewPayoutUseCase(f.uow, f.clock, nil, payoutSettings)
		settled, err := uc.ConfirmSettlement(ctx, commands.ConfirmSettlementRequest{PayoutID: po.ID(), Success: true})
		require.NoError(t, err)
		assert.Equal(t, payout.StatusSettled, settled.Status())
		assert.Equal(t, fixedNow, *settled.SettledAt())
	})

	t.Run("failure replay on a failed payout is a no-op", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		f := newTxFixture(ctrl)
		po := submittedPayout(t, p, 250000)
		require.NoError(t, po.MarkFailed("account closed", fixedNow))

		f.payouts.EXPECT().LockByID(gomock.Any(), po.ID()).Return(po, nil)

		uc := commands.NewPayoutUseCase(f.uow, f.clock, nil, payoutSettings)
		again, err := uc.ConfirmSettlement(ctx, commands.ConfirmSettlementRequest{PayoutID: po.ID(), Reason: ptr.To("still closed")})
		require.NoError(t, err)
		assert.Equal(t, payout.StatusFailed, again.Status())
		assert.Equal(t, "account closed", *again.FailureReason())
	})

	t.Run("error: unknown payout", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		f := newTxFixture(ctrl)
		f.payouts.EXPECT().LockByID(gomock.Any(), gomock.Any()).Return(nil, notFound("payout not found"))

		uc := commands.NewPayoutUseCase(f.uow, f.clock, nil, payoutSettings)
		_, err := uc.ConfirmSettlement(ctx, commands.ConfirmSettlementRequest{PayoutID: uuid.New(), Success: true})
		require.ErrorIs(t, err, payout.ErrPayoutNotFound)
	})
}
