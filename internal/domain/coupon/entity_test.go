//go:build unit

package coupon_test

import (
	"math"
	"testing"
	"time"

	"storefront-partners/internal/domain/coupon"
	"storefront-partners/internal/pkg/errs"
	"storefront-partners/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testCase struct {
	name   string
	mutate func(*builder.CouponBuilder)
	errIs  error
}

func TestNewCoupon(t *testing.T) {
	runCases(t, []testCase{
		{
			name:   "percent coupon",
			mutate: func(b *builder.CouponBuilder) {},
		},
		{
			name:   "fixed coupon",
			mutate: func(b *builder.CouponBuilder) { b.WithFixed(5000) },
		},
		{
			name:   "lowercase code normalized",
			mutate: func(b *builder.CouponBuilder) { b.WithCode("summer10") },
		},
		{
			name:   "code with symbols",
			mutate: func(b *builder.CouponBuilder) { b.WithCode("SUMMER-10") },
			errIs:  coupon.ErrInvalidCouponCode,
		},
		{
			name:   "unknown type",
			mutate: func(b *builder.CouponBuilder) { b.Type = "BOGO" },
			errIs:  coupon.ErrInvalidType,
		},
		{
			name:   "percent over 100",
			mutate: func(b *builder.CouponBuilder) { b.WithPercent(101) },
			errIs:  coupon.ErrInvalidPercent,
		},
		{
			name:   "zero fixed value",
			mutate: func(b *builder.CouponBuilder) { b.WithFixed(0) },
			errIs:  coupon.ErrInvalidValue,
		},
		{
			name:   "start after end",
			mutate: func(b *builder.CouponBuilder) { b.StartsAt = b.EndsAt.Add(time.Second) },
			errIs:  coupon.ErrInvalidWindow,
		},
		{
			name:   "start equals end",
			mutate: func(b *builder.CouponBuilder) { b.StartsAt = b.EndsAt },
		},
		{
			name:   "zero usage limit",
			mutate: func(b *builder.CouponBuilder) { b.WithUsage(0, 0) },
			errIs:  coupon.ErrInvalidUsageLimit,
		},
		{
			name:   "negative minimum",
			mutate: func(b *builder.CouponBuilder) { b.WithMinOrder(-1) },
			errIs:  coupon.ErrInvalidMinimum,
		},
	})
}

func TestCouponValidate(t *testing.T) {
	now := builder.NewCouponBuilder().Now

	tests := []struct {
		name     string
		mutate   func(*builder.CouponBuilder)
		at       time.Time
		subtotal int64
		errIs    error
		category error
	}{
		{name: "valid", mutate: func(b *builder.CouponBuilder) {}, at: now, subtotal: 1000},
		{
			name:     "inactive",
			mutate:   func(b *builder.CouponBuilder) { b.Inactive() },
			at:       now,
			subtotal: 1000,
			errIs:    coupon.ErrCouponInactive,
			category: errs.ErrInvalidState,
		},
		{
			name:     "not started",
			mutate:   func(b *builder.CouponBuilder) { b.StartsAt = now.Add(time.Hour) },
			at:       now,
			subtotal: 1000,
			errIs:    coupon.ErrCouponNotStarted,
			category: errs.ErrInvalidState,
		},
		{
			name:     "expired",
			mutate:   func(b *builder.CouponBuilder) { b.EndsAt = now.Add(-time.Second) },
			at:       now,
			subtotal: 1000,
			errIs:    coupon.ErrCouponExpired,
			category: errs.ErrInvalidState,
		},
		{
			name:     "valid at exact end",
			mutate:   func(b *builder.CouponBuilder) { b.EndsAt = now },
			at:       now,
			subtotal: 1000,
		},
		{
			name:     "usage limit reached",
			mutate:   func(b *builder.CouponBuilder) { b.WithUsage(5, 5) },
			at:       now,
			subtotal: 1000,
			errIs:    coupon.ErrUsageLimitReached,
			category: errs.ErrPolicyViolation,
		},
		{
			name:     "below minimum",
			mutate:   func(b *builder.CouponBuilder) { b.WithMinOrder(5000) },
			at:       now,
			subtotal: 4999,
			errIs:    coupon.ErrBelowMinimum,
			category: errs.ErrPolicyViolation,
		},
		{
			name:   "inactive is reported before expiry",
			mutate: func(b *builder.CouponBuilder) {
				b.Inactive()
				b.StartsAt = now.Add(-2 * time.Hour)
				b.EndsAt = now.Add(-time.Hour)
			},
			at:       now,
			subtotal: 1000,
			errIs:    coupon.ErrCouponInactive,
		},
		{
			name:     "negative subtotal",
			mutate:   func(b *builder.CouponBuilder) {},
			at:       now,
			subtotal: -1,
			errIs:    coupon.ErrNegativeSubtotal,
			category: errs.ErrValidation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := builder.NewCouponBuilder().With(tt.mutate).BuildDomain()
			require.NoError(t, err)

			err = c.Validate(tt.at, tt.subtotal)
			if tt.errIs == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tt.errIs)
			if tt.category != nil {
				assert.True(t, errs.Is(err, tt.category))
			}
		})
	}
}

func TestCouponPrice(t *testing.T) {
	t.Run("SUMMER10 prices and then runs out", func(t *testing.T) {
		c := builder.NewCouponBuilder().AsSummer10().MustBuild()
		now := builder.NewCouponBuilder().Now

		discount, err := c.Price(now, 1000000)
		require.NoError(t, err)
		assert.Equal(t, int64(100000), discount)
		assert.Equal(t, int32(99), c.UsageCount(), "pricing must not consume usage")

		require.NoError(t, c.Redeem(now))
		assert.Equal(t, int32(100), c.UsageCount())

		_, err = c.Price(now, 1000000)
		require.ErrorIs(t, err, coupon.ErrUsageLimitReached)
		require.ErrorIs(t, c.Redeem(now), coupon.ErrUsageLimitReached)
	})

	t.Run("percent rounds half up", func(t *testing.T) {
		d, err := coupon.NewDiscount(coupon.TypePercent, 15)
		require.NoError(t, err)
		assert.Equal(t, int64(2), d.Amount(10)) // 1.5
		assert.Equal(t, int64(1), d.Amount(9))  // 1.35
		assert.Equal(t, int64(150), d.Amount(1000))
		assert.Equal(t, int64(185), d.Amount(1234)) // 185.1
	})

	t.Run("largest subtotal does not overflow", func(t *testing.T) {
		half, err := coupon.NewDiscount(coupon.TypePercent, 50)
		require.NoError(t, err)
		full, err := coupon.NewDiscount(coupon.TypePercent, 100)
		require.NoError(t, err)

		assert.Equal(t, int64(math.MaxInt64/2+1), half.Amount(math.MaxInt64))
		assert.Equal(t, int64(math.MaxInt64), full.Amount(math.MaxInt64))
	})

	t.Run("discount never exceeds subtotal", func(t *testing.T) {
		fixed, err := coupon.NewDiscount(coupon.TypeFixed, 5000)
		require.NoError(t, err)
		full, err := coupon.NewDiscount(coupon.TypePercent, 100)
		require.NoError(t, err)

		for _, subtotal := range []int64{0, 1, 99, 4999, 5000, 5001, 1000000} {
			assert.LessOrEqual(t, fixed.Amount(subtotal), subtotal)
			assert.LessOrEqual(t, full.Amount(subtotal), subtotal)
			assert.GreaterOrEqual(t, fixed.Amount(subtotal), int64(0))
		}
		assert.Equal(t, int64(4999), fixed.Amount(4999))
		assert.Equal(t, int64(5000), fixed.Amount(1000000))
	})
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			actual, err := builder.NewCouponBuilder().With(c.mutate).BuildDomain()

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
