package bootstrap

import (
	"rental-market/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	DBModule,
	JWTModule,
	LedgerModule,
	JournalModule,
	components.StateModule,
	components.UseCaseModule,
	components.HandlerModule,
)
