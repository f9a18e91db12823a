//go:build unit

package main

import (
	"bytes"
	"errors"
	"log/slog"
	"testing"
	"time"

	"storefront-partners/internal/domain/payout"
	"storefront-partners/internal/usecase/commands"
	commandsmock "storefront-partners/tests/mock/commands"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestRun(t *testing.T) {
	testCases := []struct {
		name       string
		threshold  int64
		result     *commands.PayoutCycleResult
		err        error
		expectCode int
	}{
		{name: "clean cycle", result: &commands.PayoutCycleResult{Submitted: []*payout.Payout{{}}}, expectCode: 0},
		{name: "threshold override", threshold: 500, result: &commands.PayoutCycleResult{}, expectCode: 0},
		{name: "failed payout", result: &commands.PayoutCycleResult{Failed: []*payout.Payout{{}}}, expectCode: 2},
		{name: "unconfirmed payout", result: &commands.PayoutCycleResult{Unconfirmed: []*payout.Payout{{}}}, expectCode: 2},
		{name: "cycle error", err: errors.New("database unreachable"), expectCode: 1},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var logs bytes.Buffer
			prev := slog.Default()
			slog.SetDefault(slog.New(slog.NewTextHandler(&logs, nil)))
			t.Cleanup(func() { slog.SetDefault(prev) })

			ctrl := gomock.NewController(t)
			payouts := commandsmock.NewMockPayoutCommands(ctrl)
			payouts.EXPECT().RunCycle(gomock.Any(), gomock.Any()).DoAndReturn(
				func(_ any, override *int64) (*commands.PayoutCycleResult, error) {
					if tc.threshold > 0 {
						assert.Equal(t, tc.threshold, *override)
					} else {
						assert.Nil(t, override)
					}
					return tc.result, tc.err
				})

			code := run(payouts, tc.threshold, time.Minute)

			assert.Equal(t, tc.expectCode, code)
			// The cycle summary is logged once, by the use case.
			assert.NotContains(t, logs.String(), "payout cycle finished")
		})
	}
}
