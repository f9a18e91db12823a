//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"

	"storefront-partners/internal/domain/attribution"
	"storefront-partners/internal/domain/partner"
	"storefront-partners/internal/usecase/commands"
	"storefront-partners/tests/common/builder"
	commandsmock "storefront-partners/tests/mock/commands"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestReferralCommands_RecordClick(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	testCases := []struct {
		name      string
		req       commands.RecordClickRequest
		setupMock func(f *txFixture, pub *commandsmock.MockEventPublisher, p *partner.Partner)
		expectErr error
	}{
		{
			name: "success: session upserted, event appended and forwarded",
			req:  commands.RecordClickRequest{PartnerCode: " optic01 ", SessionID: "sess-1", UserID: &userID},
			setupMock: func(f *txFixture, pub *commandsmock.MockEventPublisher, p *partner.Partner) {
				f.partners.EXPECT().FindByCode(gomock.Any(), partner.Code("OPTIC01")).Return(p, nil)
				f.sessions.EXPECT().Upsert(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, s *attribution.Session) (*attribution.Session, error) {
						assert.Equal(t, "sess-1", s.SessionID())
						assert.Equal(t, p.ID(), s.PartnerID())
						assert.Equal(t, attribution.SourceRefLink, s.Source())
						assert.Equal(t, fixedNow.Add(attribution.Window), s.ExpiresAt())
						return s, nil
					})
				f.events.EXPECT().Append(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, e *attribution.ReferralEvent) error {
						assert.Equal(t, attribution.EventRefClick, e.Type())
						assert.Equal(t, &userID, e.UserID())
						return nil
					})
				pub.EXPECT().Publish(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, msg commands.ReferralEventMessage) error {
						assert.Equal(t, "OPTIC01", msg.PartnerCode)
						assert.Equal(t, "REF_CLICK", msg.Type)
						assert.Equal(t, fixedNow, msg.OccurredAt)
						return nil
					})
			},
		},
		{
			name: "success: forwarding failure does not fail the click",
			req:  commands.RecordClickRequest{PartnerCode: "OPTIC01", SessionID: "sess-1"},
			setupMock: func(f *txFixture, pub *commandsmock.MockEventPublisher, p *partner.Partner) {
				f.partners.EXPECT().FindByCode(gomock.Any(), gomock.Any()).Return(p, nil)
				f.sessions.EXPECT().Upsert(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, s *attribution.Session) (*attribution.Session, error) { return s, nil })
				f.events.EXPECT().Append(gomock.Any(), gomock.Any()).Return(nil)
				pub.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(errors.New("broker down"))
			},
		},
		{
			name: "error: unknown partner code",
			req:  commands.RecordClickRequest{PartnerCode: "NOBODY", SessionID: "sess-1"},
			setupMock: func(f *txFixture, _ *commandsmock.MockEventPublisher, _ *partner.Partner) {
				f.partners.EXPECT().FindByCode(gomock.Any(), gomock.Any()).Return(nil, notFound("partner not found"))
			},
			expectErr: partner.ErrPartnerNotFound,
		},
		{
			name:      "error: malformed partner code is reported as not found",
			req:       commands.RecordClickRequest{PartnerCode: "no-such-code!", SessionID: "sess-1"},
			setupMock: func(*txFixture, *commandsmock.MockEventPublisher, *partner.Partner) {},
			expectErr: partner.ErrPartnerNotFound,
		},
		{
			name: "error: suspended partner",
			req:  commands.RecordClickRequest{PartnerCode: "OPTIC01", SessionID: "sess-1"},
			setupMock: func(f *txFixture, _ *commandsmock.MockEventPublisher, _ *partner.Partner) {
				suspended := builder.NewPartnerBuilder().AsSuspended().MustBuild()
				f.partners.EXPECT().FindByCode(gomock.Any(), gomock.Any()).Return(suspended, nil)
			},
			expectErr: partner.ErrPartnerInactive,
		},
		{
			name:      "error: missing session id",
			req:       commands.RecordClickRequest{PartnerCode: "OPTIC01", SessionID: "  "},
			setupMock: func(*txFixture, *commandsmock.MockEventPublisher, *partner.Partner) {},
			expectErr: attribution.ErrEmptySessionID,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			f := newTxFixture(ctrl)
			pub := commandsmock.NewMockEventPublisher(ctrl)
			p := builder.NewPartnerBuilder().MustBuild()
			tc.setupMock(f, pub, p)

			uc := commands.NewReferralUseCase(f.uow, f.clock, pub)
			result, err := uc.RecordClick(ctx, tc.req)

			if tc.expectErr != nil {
				require.ErrorIs(t, err, tc.expectErr)
				assert.Nil(t, result)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, result.Session)
			assert.Equal(t, p.ID(), result.Session.PartnerID())
		})
	}
}

func TestReferralCommands_RecordClickWithoutPublisher(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newTxFixture(ctrl)
	p := builder.NewPartnerBuilder().MustBuild()
	f.partners.EXPECT().FindByCode(gomock.Any(), gomock.Any()).Return(p, nil)
	f.sessions.EXPECT().Upsert(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, s *attribution.Session) (*attribution.Session, error) { return s, nil })
	f.events.EXPECT().Append(gomock.Any(), gomock.Any()).Return(nil)

	uc := commands.NewReferralUseCase(f.uow, f.clock, nil)
	_, err := uc.RecordClick(context.Background(), commands.RecordClickRequest{PartnerCode: "OPTIC01", SessionID: "sess-1"})
	require.NoError(t, err)
}
