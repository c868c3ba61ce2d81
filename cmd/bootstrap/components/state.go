package components

import (
	"rental-market/internal/infra/state"

	"go.uber.org/fx"
)

var StateModule = fx.Module("state",
	fx.Provide(
		state.NewMarketState,
		state.NewUserStore,
	),
)
