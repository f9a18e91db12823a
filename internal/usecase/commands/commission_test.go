//go:build unit

package commands_test

import (
	"context"
	"testing"

	"storefront-partners/internal/domain/commission"
	"storefront-partners/internal/domain/partner"
	"storefront-partners/internal/usecase/commands"
	"storefront-partners/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func testRules(t *testing.T) commission.RuleTable {
	t.Helper()
	rules, err := commission.NewRuleTable(500, 1000)
	require.NoError(t, err)
	return rules
}

func TestCommissionCommands_Record(t *testing.T) {
	ctx := context.Background()
	affiliate := builder.NewPartnerBuilder().MustBuild()
	agent := builder.NewPartnerBuilder().WithCode("AGENT01").AsAgent().MustBuild()

	testCases := []struct {
		name            string
		req             commands.RecordCommissionRequest
		setupMock       func(f *txFixture)
		expectAmount    int64
		expectRate      int32
		expectDuplicate bool
		expectErr       error
	}{
		{
			name: "success: affiliate rate applied",
			req:  commands.RecordCommissionRequest{OrderID: "ORD-1", PartnerID: affiliate.ID(), OrderTotal: 5000},
			setupMock: func(f *txFixture) {
				f.partners.EXPECT().FindByID(gomock.Any(), affiliate.ID()).Return(affiliate, nil)
				f.commissions.EXPECT().Insert(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, c *commission.Commission) (bool, error) {
						assert.Equal(t, commission.StatusPending, c.Status())
						assert.Equal(t, fixedNow, c.CreatedAt())
						return true, nil
					})
			},
			expectAmount: 250,
			expectRate:   500,
		},
		{
			name: "success: agent amount rounds half up",
			req:  commands.RecordCommissionRequest{OrderID: "ORD-2", PartnerID: agent.ID(), OrderTotal: 12345},
			setupMock: func(f *txFixture) {
				f.partners.EXPECT().FindByID(gomock.Any(), agent.ID()).Return(agent, nil)
				f.commissions.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(true, nil)
			},
			expectAmount: 1235,
			expectRate:   1000,
		},
		{
			name: "duplicate: replay for the same partner returns the stored row",
			req:  commands.RecordCommissionRequest{OrderID: "ORD-1001", PartnerID: affiliate.ID(), OrderTotal: 999999},
			setupMock: func(f *txFixture) {
				stored := builder.NewCommissionBuilder().WithPartner(affiliate.ID()).WithTotal(5000).BuildDomain()
				f.partners.EXPECT().FindByID(gomock.Any(), affiliate.ID()).Return(affiliate, nil)
				f.commissions.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(false, nil)
				f.commissions.EXPECT().FindByOrderID(gomock.Any(), "ORD-1001").Return(stored, nil)
			},
			expectAmount:    500,
			expectRate:      1000,
			expectDuplicate: true,
		},
		{
			name: "error: order already credited to another partner",
			req:  commands.RecordCommissionRequest{OrderID: "ORD-1001", PartnerID: affiliate.ID(), OrderTotal: 5000},
			setupMock: func(f *txFixture) {
				stored := builder.NewCommissionBuilder().WithPartner(uuid.New()).BuildDomain()
				f.partners.EXPECT().FindByID(gomock.Any(), affiliate.ID()).Return(affiliate, nil)
				f.commissions.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(false, nil)
				f.commissions.EXPECT().FindByOrderID(gomock.Any(), "ORD-1001").Return(stored, nil)
			},
			expectErr: commission.ErrCommissionConflict,
		},
		{
			name: "error: unknown partner",
			req:  commands.RecordCommissionRequest{OrderID: "ORD-3", PartnerID: uuid.New(), OrderTotal: 5000},
			setupMock: func(f *txFixture) {
				f.partners.EXPECT().FindByID(gomock.Any(), gomock.Any()).Return(nil, notFound("partner not found"))
			},
			expectErr: partner.ErrPartnerNotFound,
		},
		{
			name:      "error: negative total",
			req:       commands.RecordCommissionRequest{OrderID: "ORD-4", PartnerID: affiliate.ID(), OrderTotal: -1},
			setupMock: func(*txFixture) {},
			expectErr: commission.ErrNegativeTotal,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			f := newTxFixture(ctrl)
			tc.setupMock(f)

			result, err := commands.NewCommissionUseCase(f.uow, f.clock, testRules(t)).Record(ctx, tc.req)

			if tc.expectErr != nil {
				require.ErrorIs(t, err, tc.expectErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expectDuplicate, result.Duplicate)
			assert.Equal(t, tc.expectAmount, result.Commission.Amount())
			assert.Equal(t, tc.expectRate, result.Commission.RateBps())
		})
	}
}

func TestCommissionCommands_Review(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name         string
		decision     string
		current      commission.Status
		lockErr      error
		expectStatus commission.Status
		expectErr    error
	}{
		{name: "approve pending", decision: "approve", current: commission.StatusPending, expectStatus: commission.StatusApproved},
		{name: "reject pending", decision: "REJECT", current: commission.StatusPending, expectStatus: commission.StatusRejected},
		{name: "error: already approved", decision: "REJECT", current: commission.StatusApproved, expectErr: commission.ErrNotPending},
		{name: "error: already paid", decision: "APPROVE", current: commission.StatusPaid, expectErr: commission.ErrNotPending},
		{name: "error: unknown commission", decision: "APPROVE", lockErr: notFound("commission not found"), expectErr: commission.ErrCommissionNotFound},
		{name: "error: bad decision", decision: "MAYBE", expectErr: commission.ErrInvalidDecision},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			f := newTxFixture(ctrl)
			c := builder.NewCommissionBuilder().WithStatus(tc.current).BuildDomain()
			if tc.current != "" || tc.lockErr != nil {
				if tc.lockErr != nil {
					f.commissions.EXPECT().LockByID(gomock.Any(), c.ID()).Return(nil, tc.lockErr)
				} else {
					f.commissions.EXPECT().LockByID(gomock.Any(), c.ID()).Return(c, nil)
				}
			}
			if tc.expectErr == nil {
				f.commissions.EXPECT().UpdateStatus(gomock.Any(), c).Return(nil)
			}

			reviewed, err := commands.NewCommissionUseCase(f.uow, f.clock, testRules(t)).Review(ctx, c.ID(), tc.decision)

			if tc.expectErr != nil {
				require.ErrorIs(t, err, tc.expectErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expectStatus, reviewed.Status())
			assert.Equal(t, fixedNow, *reviewed.ReviewedAt())
		})
	}
}
