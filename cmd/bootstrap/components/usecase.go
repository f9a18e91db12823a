package components

import (
	"storefront-partners/internal/domain/commission"
	"storefront-partners/internal/pkg/clock"
	"storefront-partners/internal/pkg/config"
	"storefront-partners/internal/usecase/commands"
	"storefront-partners/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	NewRuleTable,
	NewPayoutSettings,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewReferralUseCase,
		commands.NewAttributionUseCase,
		commands.NewCouponUseCase,
		commands.NewOrderUseCase,
		commands.NewCommissionUseCase,
		commands.NewPartnerUseCase,
		commands.NewPayoutUseCase,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewPartnerQueries,
	),
)

func NewRuleTable(cfg config.Config) (commission.RuleTable, error) {
	return commission.NewRuleTable(int32(cfg.Commission.AffiliateRateBps), int32(cfg.Commission.AgentRateBps))
}

func NewPayoutSettings(cfg config.Config) commands.PayoutSettings {
	return commands.PayoutSettings{
		Threshold:     cfg.Payout.Threshold,
		Currency:      cfg.Payout.Currency,
		ResubmitAfter: cfg.Payout.ResubmitAfter,
	}
}
