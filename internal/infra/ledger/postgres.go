package ledger

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"rental-market/internal/infra"
	"rental-market/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// custodyAccount is the well-known row holding funds escrowed by the
// market between confirmation and settlement.
var custodyAccount = uuid.Nil

const maxTxRetries = 3

// Postgres stores balances and custody allowances in the database. Every
// money movement runs in one SERIALIZABLE transaction so a failure moves
// nothing, with bounded retry on serialization conflicts.
type Postgres struct {
	pool *pgxpool.Pool
}

func NewPostgres(pool *pgxpool.Pool) *Postgres {
	return &Postgres{pool: pool}
}

func (p *Postgres) TransferFrom(ctx context.Context, payer uuid.UUID, amount int64) error {
	if amount < 0 {
		return infra.NewRepoErr(infra.KindInsufficientFunds, "negative amount")
	}
	return p.runSerializable(ctx, func(tx pgx.Tx) error {
		var allowance int64
		err := tx.QueryRow(ctx,
			`SELECT amount FROM ledger_allowances WHERE owner = $1 FOR UPDATE`, payer,
		).Scan(&allowance)
		if errors.Is(err, pgx.ErrNoRows) || (err == nil && allowance < amount) {
			return infra.NewRepoErr(infra.KindInsufficientAllow, "allowance too low")
		}
		if err != nil {
			return errs.Wrap(err, "query allowance")
		}

		if err := debit(ctx, tx, payer, amount); err != nil {
			return err
		}
		if _, err := tx.Exec(ctx,
			`UPDATE ledger_allowances SET amount = amount - $2 WHERE owner = $1`, payer, amount,
		); err != nil {
			return errs.Wrap(err, "consume allowance")
		}
		return credit(ctx, tx, custodyAccount, amount)
	})
}

func (p *Postgres) Transfer(ctx context.Context, payee uuid.UUID, amount int64) error {
	if amount < 0 {
		return infra.NewRepoErr(infra.KindInsufficientFunds, "negative amount")
	}
	return p.runSerializable(ctx, func(tx pgx.Tx) error {
		if err := debit(ctx, tx, custodyAccount, amount); err != nil {
			return err
		}
		return credit(ctx, tx, payee, amount)
	})
}

func (p *Postgres) Mint(ctx context.Context, account uuid.UUID, amount int64) error {
	return p.runSerializable(ctx, func(tx pgx.Tx) error {
		return credit(ctx, tx, account, amount)
	})
}

func (p *Postgres) Approve(ctx context.Context, owner uuid.UUID, amount int64) error {
	return p.runSerializable(ctx, func(tx pgx.Tx) error {
		_, err := tx.Exec(ctx,
			`INSERT INTO ledger_allowances (owner, amount) VALUES ($1, $2)
			 ON CONFLICT (owner) DO UPDATE SET amount = EXCLUDED.amount`, owner, amount)
		return errs.Wrap(err, "set allowance")
	})
}

func (p *Postgres) BalanceOf(ctx context.Context, account uuid.UUID) (int64, error) {
	var balance int64
	err := p.pool.QueryRow(ctx,
		`SELECT balance FROM ledger_balances WHERE account = $1`, account,
	).Scan(&balance)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, errs.Wrap(err, "query balance")
	}
	return balance, nil
}

func debit(ctx context.Context, tx pgx.Tx, account uuid.UUID, amount int64) error {
	var balance int64
	err := tx.QueryRow(ctx,
		`SELECT balance FROM ledger_balances WHERE account = $1 FOR UPDATE`, account,
	).Scan(&balance)
	if errors.Is(err, pgx.ErrNoRows) || (err == nil && balance < amount) {
		return infra.NewRepoErr(infra.KindInsufficientFunds, "balance too low")
	}
	if err != nil {
		return errs.Wrap(err, "query balance")
	}
	_, err = tx.Exec(ctx,
		`UPDATE ledger_balances SET balance = balance - $2 WHERE account = $1`, account, amount)
	return errs.Wrap(err, "debit account")
}

func credit(ctx context.Context, tx pgx.Tx, account uuid.UUID, amount int64) error {
	_, err := tx.Exec(ctx,
		`INSERT INTO ledger_balances (account, balance) VALUES ($1, $2)
		 ON CONFLICT (account) DO UPDATE SET balance = ledger_balances.balance + EXCLUDED.balance`,
		account, amount)
	return errs.Wrap(err, "credit account")
}

func (p *Postgres) runSerializable(ctx context.Context, fn func(tx pgx.Tx) error) error {
	var lastErr error
	for attempt := 0; attempt <= maxTxRetries; attempt++ {
		if attempt > 0 {
			waitTime := time.Duration(attempt) * 100 * time.Millisecond
			slog.Warn("retrying ledger transaction",
				"attempt", attempt+1,
				"wait_time", waitTime,
				"error", lastErr)
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(waitTime):
			}
		}

		lastErr = p.runOnce(ctx, fn)
		if lastErr == nil || !isRetryable(lastErr) {
			return lastErr
		}
	}
	return errs.Wrap(lastErr, "ledger transaction failed after max retries")
}

func (p *Postgres) runOnce(ctx context.Context, fn func(tx pgx.Tx) error) error {
	tx, err := p.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.Serializable})
	if err != nil {
		return errs.Wrap(err, "begin ledger transaction")
	}
	defer func() {
		if rollbackErr := tx.Rollback(ctx); rollbackErr != nil && !errors.Is(rollbackErr, pgx.ErrTxClosed) {
			slog.Warn("failed to rollback ledger transaction", "error", rollbackErr)
		}
	}()

	if err := fn(tx); err != nil {
		return err
	}
	return errs.Wrap(tx.Commit(ctx), "commit ledger transaction")
}

func isRetryable(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}

	// 40001: serialization_failure, 40P01: deadlock_detected
	switch pgErr.Code {
	case "40001", "40P01":
		return true
	default:
		return false
	}
}
