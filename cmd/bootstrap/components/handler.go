package components

import (
	"storefront-partners/internal/handler"
	"storefront-partners/internal/handler/api"
	"storefront-partners/internal/handler/middleware"
	"storefront-partners/internal/usecase"

	"go.uber.org/fx"
)

var AuthModule = fx.Module("auth",
	fx.Provide(
		usecase.NewTokenValidator,
		middleware.NewAuthMiddleware,
	),
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewReferralHandler,
		api.NewCouponHandler,
		api.NewOrderHandler,
		api.NewCommissionHandler,
		api.NewPartnerHandler,
		api.NewPayoutHandler,
	),
	fx.Invoke(handler.NewRouter),
)
