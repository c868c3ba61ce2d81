// Package ledger provides TokenLedger adapters. The market never touches
// balances directly: it pulls escrow with TransferFrom at confirmation and
// pays out with Transfer at settlement, and treats any error as "no funds
// moved".
package ledger

import (
	"context"
	"sync"

	"rental-market/internal/infra"

	"github.com/google/uuid"
)

// Memory is the in-process ledger: balances and custody allowances in
// mutex-guarded maps. Used for development and unit tests.
//
// Transfer semantics follow the usual fungible-token rules: TransferFrom
// consumes allowance and requires sufficient balance, Transfer spends the
// custody balance accumulated by prior escrows.
type Memory struct {
	mu         sync.Mutex
	balances   map[uuid.UUID]int64
	allowances map[uuid.UUID]int64 // owner → amount approved for market custody
	custody    int64
}

func NewMemory() *Memory {
	return &Memory{
		balances:   make(map[uuid.UUID]int64),
		allowances: make(map[uuid.UUID]int64),
	}
}

func (m *Memory) TransferFrom(_ context.Context, payer uuid.UUID, amount int64) error {
	if amount < 0 {
		return infra.NewRepoErr(infra.KindInsufficientFunds, "negative amount")
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.allowances[payer] < amount {
		return infra.NewRepoErr(infra.KindInsufficientAllow, "allowance too low")
	}
	if m.balances[payer] < amount {
		return infra.NewRepoErr(infra.KindInsufficientFunds, "balance too low")
	}
	m.allowances[payer] -= amount
	m.balances[payer] -= amount
	m.custody += amount
	return nil
}

func (m *Memory) Transfer(_ context.Context, payee uuid.UUID, amount int64) error {
	if amount < 0 {
		return infra.NewRepoErr(infra.KindInsufficientFunds, "negative amount")
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.custody < amount {
		return infra.NewRepoErr(infra.KindInsufficientFunds, "custody balance too low")
	}
	m.custody -= amount
	m.balances[payee] += amount
	return nil
}

func (m *Memory) Mint(_ context.Context, account uuid.UUID, amount int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.balances[account] += amount
	return nil
}

func (m *Memory) Approve(_ context.Context, owner uuid.UUID, amount int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.allowances[owner] = amount
	return nil
}

func (m *Memory) BalanceOf(_ context.Context, account uuid.UUID) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.balances[account], nil
}

// CustodyBalance is exposed for tests asserting escrow movement.
func (m *Memory) CustodyBalance() int64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.custody
}
