package shared

import (
	"context"

	"github.com/google/uuid"
)

// TokenLedger is the boundary with the external fungible-token collaborator.
// The market makes exactly two calls into it: pull at confirmation, push at
// settlement. Both must fail cleanly rather than partially move funds; the
// market treats any returned error as "no funds moved".
//
// The custody account is the adapter's own: TransferFrom escrows
// payer → custody, Transfer pays custody → payee.
type TokenLedger interface {
	TransferFrom(ctx context.Context, payer uuid.UUID, amount int64) error
	Transfer(ctx context.Context, payee uuid.UUID, amount int64) error
}

// Faucet is the optional management surface of a ledger adapter, used by
// the dev faucet endpoint and tests. Approve grants the market custody an
// allowance to pull from the account.
type Faucet interface {
	Mint(ctx context.Context, account uuid.UUID, amount int64) error
	Approve(ctx context.Context, owner uuid.UUID, amount int64) error
	BalanceOf(ctx context.Context, account uuid.UUID) (int64, error)
}
