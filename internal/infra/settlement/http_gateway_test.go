//go:build unit

package settlement_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"storefront-partners/internal/domain/payout"
	"storefront-partners/internal/infra/settlement"
	"storefront-partners/internal/pkg/config"
	"storefront-partners/internal/pkg/errs"
	"storefront-partners/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSettlementConfig(url string) config.SettlementConfig {
	return config.SettlementConfig{
		URL:             url,
		APIKey:          "sk_test",
		Timeout:         time.Second,
		MaxRetries:      2,
		InitialInterval: time.Millisecond,
		MaxInterval:     5 * time.Millisecond,
	}
}

func TestHTTPGateway_Submit(t *testing.T) {
	req := commands.SettlementRequest{
		PayoutID:      uuid.New(),
		PartnerID:     uuid.New(),
		Amount:        200000,
		Currency:      "JPY",
		BankName:      "Mizuho",
		AccountNumber: "1234567",
		AccountHolder: "Optic Reviews LLC",
	}

	testCases := []struct {
		name           string
		statuses       []int
		expectErr      error
		expectAttempts int32
	}{
		{name: "accepted on first attempt", statuses: []int{http.StatusAccepted}, expectAttempts: 1},
		{name: "5xx is retried", statuses: []int{http.StatusServiceUnavailable, http.StatusOK}, expectAttempts: 2},
		{name: "429 is retried", statuses: []int{http.StatusTooManyRequests, http.StatusOK}, expectAttempts: 2},
		{name: "4xx is a rejection", statuses: []int{http.StatusUnprocessableEntity}, expectErr: payout.ErrSettlementRejected, expectAttempts: 1},
		{name: "exhausted retries leave the outcome open", statuses: []int{500, 500, 500, 500}, expectErr: payout.ErrSettlementUnconfirmed, expectAttempts: 3},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var attempts atomic.Int32
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				n := attempts.Add(1)
				assert.Equal(t, "/payouts", r.URL.Path)
				assert.Equal(t, req.PayoutID.String(), r.Header.Get("Idempotency-Key"))
				assert.Equal(t, "Bearer sk_test", r.Header.Get("Authorization"))

				var body map[string]any
				assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
				assert.Equal(t, float64(200000), body["amount"])

				w.WriteHeader(tc.statuses[n-1])
			}))
			defer srv.Close()

			gw := settlement.NewHTTPGateway(testSettlementConfig(srv.URL + "/"))
			err := gw.Submit(context.Background(), req)

			if tc.expectErr != nil {
				require.Error(t, err)
				assert.True(t, errs.Is(err, tc.expectErr))
				assert.True(t, errs.Is(err, errs.ErrDownstreamFailure))
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, tc.expectAttempts, attempts.Load())
		})
	}
}

func TestHTTPGateway_SubmitUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	url := srv.URL
	srv.Close()

	err := settlement.NewHTTPGateway(testSettlementConfig(url)).Submit(context.Background(), commands.SettlementRequest{PayoutID: uuid.New()})
	require.Error(t, err)
	assert.True(t, errs.Is(err, payout.ErrSettlementUnconfirmed))
	assert.False(t, errs.Is(err, payout.ErrSettlementRejected))
}

func TestNewGateway(t *testing.T) {
	_, isLog := settlement.NewGateway(config.SettlementConfig{}).(*settlement.LogGateway)
	assert.True(t, isLog)

	_, isHTTP := settlement.NewGateway(testSettlementConfig("http://settlement.internal")).(*settlement.HTTPGateway)
	assert.True(t, isHTTP)

	require.NoError(t, settlement.NewLogGateway().Submit(context.Background(), commands.SettlementRequest{}))
}
