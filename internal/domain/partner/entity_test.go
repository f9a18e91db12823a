//go:build unit

package partner_test

import (
	"strings"
	"testing"
	"time"

	"storefront-partners/internal/domain/partner"
	"storefront-partners/internal/pkg/errs"
	"storefront-partners/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testCase struct {
	name   string
	mutate func(*builder.PartnerBuilder)
	errIs  error
}

func TestPartner(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		actual, err := builder.NewPartnerBuilder().BuildDomain()
		require.NoError(t, err)

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.Equal(t, partner.Code("OPTIC01"), actual.Code())
		assert.Equal(t, partner.LevelAffiliate, actual.Level())
		assert.Equal(t, partner.StatusActive, actual.Status())
		assert.True(t, actual.IsActive())
		assert.True(t, actual.Bank().IsComplete())
		assert.Equal(t, actual.CreatedAt(), actual.UpdatedAt())
	})

	t.Run("code validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "lowercase is normalized",
				mutate: func(b *builder.PartnerBuilder) { b.WithCode("  optic01 ") },
			},
			{
				name:   "minimum length",
				mutate: func(b *builder.PartnerBuilder) { b.WithCode("ABC") },
			},
			{
				name:   "maximum length",
				mutate: func(b *builder.PartnerBuilder) { b.WithCode(strings.Repeat("A", 15)) },
			},
			{
				name:   "too short",
				mutate: func(b *builder.PartnerBuilder) { b.WithCode("AB") },
				errIs:  partner.ErrInvalidCode,
			},
			{
				name:   "too long",
				mutate: func(b *builder.PartnerBuilder) { b.WithCode(strings.Repeat("A", 16)) },
				errIs:  partner.ErrInvalidCode,
			},
			{
				name:   "symbols",
				mutate: func(b *builder.PartnerBuilder) { b.WithCode("OPT-01") },
				errIs:  partner.ErrInvalidCode,
			},
		})
	})

	t.Run("level and name validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "agent",
				mutate: func(b *builder.PartnerBuilder) { b.AsAgent() },
			},
			{
				name:   "unknown level",
				mutate: func(b *builder.PartnerBuilder) { b.WithLevel("RESELLER") },
				errIs:  partner.ErrInvalidLevel,
			},
			{
				name:   "blank name",
				mutate: func(b *builder.PartnerBuilder) { b.Name = "   " },
				errIs:  partner.ErrEmptyName,
			},
			{
				name:   "name too long",
				mutate: func(b *builder.PartnerBuilder) { b.Name = strings.Repeat("n", partner.MaxNameLength+1) },
				errIs:  partner.ErrNameTooLong,
			},
			{
				name:   "partial bank details",
				mutate: func(b *builder.PartnerBuilder) { b.AccountHolder = "" },
				errIs:  partner.ErrIncompleteBankInfo,
			},
			{
				name:   "no bank details at all",
				mutate: func(b *builder.PartnerBuilder) { b.WithoutBank() },
			},
		})
	})

	t.Run("status changes", func(t *testing.T) {
		p := builder.NewPartnerBuilder().MustBuild()
		later := p.CreatedAt().Add(time.Hour)

		require.NoError(t, p.ChangeStatus(partner.StatusSuspended, later))
		assert.False(t, p.IsActive())
		assert.Equal(t, later, p.UpdatedAt())
		require.ErrorIs(t, p.EnsureActive(), partner.ErrPartnerInactive)

		err := p.ChangeStatus(partner.StatusSuspended, later)
		require.ErrorIs(t, err, partner.ErrStatusUnchanged)
		assert.True(t, errs.Is(err, errs.ErrInvalidState))

		require.ErrorIs(t, p.ChangeStatus(partner.Status("GONE"), later), partner.ErrInvalidStatus)

		require.NoError(t, p.ChangeStatus(partner.StatusActive, later))
		require.NoError(t, p.EnsureActive())
	})

	t.Run("profile update applies only given fields", func(t *testing.T) {
		p := builder.NewPartnerBuilder().MustBuild()
		before := p.Bank()

		name := "  Renamed Blog "
		require.NoError(t, p.UpdateProfile(&name, nil, p.CreatedAt()))
		assert.Equal(t, "Renamed Blog", p.Name())
		assert.Equal(t, before, p.Bank())

		blank := ""
		require.ErrorIs(t, p.UpdateProfile(&blank, nil, p.CreatedAt()), partner.ErrEmptyName)
	})
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			actual, err := builder.NewPartnerBuilder().With(c.mutate).BuildDomain()

			if c.errIs == nil {
				require.NotNil(t, actual)
				require.NoError(t, err)
			} else {
				require.Nil(t, actual)
				require.Error(t, err)
				require.ErrorIs(t, err, c.errIs)
			}
		})
	}
}
