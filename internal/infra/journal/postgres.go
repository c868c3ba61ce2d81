package journal

import (
	"context"
	"encoding/json"

	"rental-market/internal/pkg/errs"
	"rental-market/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Postgres persists the journal in an append-only table. Seq comes from a
// BIGSERIAL column; because appends run under the market write lock, the
// serial order matches call order.
type Postgres struct {
	pool *pgxpool.Pool
}

func NewPostgres(pool *pgxpool.Pool) *Postgres {
	return &Postgres{pool: pool}
}

func (p *Postgres) Append(ctx context.Context, ev shared.Event) (uint64, error) {
	payload, err := json.Marshal(ev)
	if err != nil {
		return 0, errs.Wrap(err, "marshal event")
	}

	var seq uint64
	err = p.pool.QueryRow(ctx,
		`INSERT INTO market_events (kind, recorded_at, payload) VALUES ($1, $2, $3) RETURNING seq`,
		string(ev.Kind), ev.RecordedAt, payload,
	).Scan(&seq)
	if err != nil {
		return 0, errs.Wrap(err, "append event")
	}
	return seq, nil
}

func (p *Postgres) List(ctx context.Context, afterSeq uint64, limit int) ([]shared.Event, error) {
	if limit <= 0 {
		limit = 100
	}
	rows, err := p.pool.Query(ctx,
		`SELECT seq, payload FROM market_events WHERE seq > $1 ORDER BY seq ASC LIMIT $2`,
		afterSeq, limit)
	if err != nil {
		return nil, errs.Wrap(err, "list events")
	}
	defer rows.Close()

	events := []shared.Event{}
	for rows.Next() {
		var (
			seq     uint64
			payload []byte
		)
		if err := rows.Scan(&seq, &payload); err != nil {
			return nil, errs.Wrap(err, "scan event")
		}
		var ev shared.Event
		if err := json.Unmarshal(payload, &ev); err != nil {
			return nil, errs.Wrap(err, "unmarshal event")
		}
		ev.Seq = seq
		events = append(events, ev)
	}
	return events, errs.Wrap(rows.Err(), "iterate events")
}
