package settlement

import (
	"context"
	"log/slog"

	"storefront-partners/internal/pkg/config"
	"storefront-partners/internal/usecase/commands"
)

// LogGateway accepts every payout without moving money. Used when no settlement URL is configured.
type LogGateway struct{}

func NewLogGateway() *LogGateway {
	return &LogGateway{}
}

func (LogGateway) Submit(_ context.Context, req commands.SettlementRequest) error {
	slog.Info("settlement gateway not configured; payout left for manual settlement",
		"payout_id", req.PayoutID.String(),
		"partner_id", req.PartnerID.String(),
		"amount", req.Amount,
		"currency", req.Currency)
	return nil
}

// NewGateway picks the HTTP gateway when a URL is configured.
func NewGateway(cfg config.SettlementConfig) commands.SettlementGateway {
	if cfg.URL == "" {
		return NewLogGateway()
	}
	return NewHTTPGateway(cfg)
}
