package settlement

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"storefront-partners/internal/domain/payout"
	"storefront-partners/internal/pkg/config"
	"storefront-partners/internal/pkg/errs"
	"storefront-partners/internal/usecase/commands"

	"github.com/cenkalti/backoff/v4"
)

const maxErrorBody = 512

type HTTPGateway struct {
	client   *http.Client
	endpoint string
	apiKey   string
	cfg      config.SettlementConfig
}

func NewHTTPGateway(cfg config.SettlementConfig) *HTTPGateway {
	return &HTTPGateway{
		client:   &http.Client{Timeout: cfg.Timeout},
		endpoint: strings.TrimRight(cfg.URL, "/") + "/payouts",
		apiKey:   cfg.APIKey,
		cfg:      cfg,
	}
}

type submitRequest struct {
	PayoutID      string `json:"payout_id"`
	PartnerID     string `json:"partner_id"`
	Amount        int64  `json:"amount"`
	Currency      string `json:"currency"`
	BankName      string `json:"bank_name"`
	AccountNumber string `json:"account_number"`
	AccountHolder string `json:"account_holder"`
}

// Submit retries transport errors and 5xx answers. Other 4xx answers are final.
// The payout id doubles as the idempotency key, so a retried submission is never paid twice.
// A final 4xx is reported as ErrSettlementRejected; anything else that leaves the outcome
// open, such as a timeout or exhausted retries, as ErrSettlementUnconfirmed.
func (g *HTTPGateway) Submit(ctx context.Context, req commands.SettlementRequest) error {
	body, err := json.Marshal(submitRequest{
		PayoutID:      req.PayoutID.String(),
		PartnerID:     req.PartnerID.String(),
		Amount:        req.Amount,
		Currency:      req.Currency,
		BankName:      req.BankName,
		AccountNumber: req.AccountNumber,
		AccountHolder: req.AccountHolder,
	})
	if err != nil {
		return errs.Wrap(err, "failed to encode settlement request")
	}

	attempt := 0
	rejected := false
	operation := func() error {
		attempt++
		err := g.post(ctx, req.PayoutID.String(), body)
		if err == nil {
			return nil
		}
		var perm *backoff.PermanentError
		rejected = errs.As(err, &perm)
		slog.Warn("settlement submission attempt failed",
			"payout_id", req.PayoutID.String(),
			"attempt", attempt,
			"error", err.Error())
		return err
	}

	err = backoff.Retry(operation, backoff.WithContext(backoff.WithMaxRetries(g.newBackOff(), uint64(g.cfg.MaxRetries)), ctx))
	switch {
	case err == nil:
		return nil
	case rejected:
		return errs.Wrapf(payout.ErrSettlementRejected, "payout %s: %v", req.PayoutID, err)
	default:
		return errs.Wrapf(payout.ErrSettlementUnconfirmed, "payout %s: %v", req.PayoutID, err)
	}
}

// post marks answers that cannot succeed on retry as permanent.
func (g *HTTPGateway) post(ctx context.Context, idempotencyKey string, body []byte) error {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, g.endpoint, bytes.NewReader(body))
	if err != nil {
		return backoff.Permanent(err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Idempotency-Key", idempotencyKey)
	if g.apiKey != "" {
		httpReq.Header.Set("Authorization", "Bearer "+g.apiKey)
	}

	resp, err := g.client.Do(httpReq)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}

	snippet, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	statusErr := fmt.Errorf("settlement gateway answered %d: %s", resp.StatusCode, strings.TrimSpace(string(snippet)))
	if retryableStatus(resp.StatusCode) {
		return statusErr
	}
	return backoff.Permanent(statusErr)
}

func retryableStatus(code int) bool {
	return code >= 500 || code == http.StatusRequestTimeout || code == http.StatusTooManyRequests
}

func (g *HTTPGateway) newBackOff() *backoff.ExponentialBackOff {
	b := backoff.NewExponentialBackOff()
	if g.cfg.InitialInterval > 0 {
		b.InitialInterval = g.cfg.InitialInterval
	}
	if g.cfg.MaxInterval > 0 {
		b.MaxInterval = g.cfg.MaxInterval
	}
	return b
}
