package bootstrap

import (
	"storefront-partners/cmd/bootstrap/components"

	"go.uber.org/fx"
)

// CoreModule is everything below the HTTP layer. The payout runner uses it directly.
var CoreModule = fx.Options(
	ConfigModule,
	LoggerModule,
	DBModule,
	components.PersistenceModule,
	components.IntegrationModule,
	components.UseCaseModule,
)

var Module = fx.Options(
	CoreModule,
	JWTModule,
	components.AuthModule,
	components.HandlerModule,
)
