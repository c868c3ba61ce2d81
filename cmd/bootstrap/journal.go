package bootstrap

import (
	journalinfra "rental-market/internal/infra/journal"
	"rental-market/internal/pkg/config"
	"rental-market/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var JournalModule = fx.Module("journal",
	fx.Provide(
		NewJournal,
	),
)

func NewJournal(cfg config.Config, pool *pgxpool.Pool) shared.Journal {
	switch cfg.Journal.Driver {
	case config.DriverPostgres:
		return journalinfra.NewPostgres(pool)
	default:
		return journalinfra.NewMemory()
	}
}
