package bootstrap

import (
	ledgerinfra "rental-market/internal/infra/ledger"
	"rental-market/internal/pkg/config"
	"rental-market/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var LedgerModule = fx.Module("ledger",
	fx.Provide(
		NewTokenLedger,
		func(l shared.TokenLedger) shared.Faucet {
			return l.(shared.Faucet)
		},
	),
)

func NewTokenLedger(cfg config.Config, pool *pgxpool.Pool) shared.TokenLedger {
	switch cfg.Ledger.Driver {
	case config.DriverPostgres:
		return ledgerinfra.NewPostgres(pool)
	default:
		return ledgerinfra.NewMemory()
	}
}
