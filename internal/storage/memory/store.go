// Package memory implements the transfer store contracts on in-process
// state. It backs the engine's property tests and local development; the
// production deployment uses the postgres-backed storage.
package memory

import (
	"bytes"
	"context"
	"sync"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/transfer-server/internal/transfer"
)

const (
	defaultHistoryLimit = 50
	maxHistoryLimit     = 100
)

type accountState struct {
	mu      sync.Mutex
	account transfer.Account
}

// Store holds accounts behind per-account locks and an append-only record
// log. Commits lock both touched accounts in id order so disjoint account
// pairs never contend and shared pairs never deadlock.
type Store struct {
	accountsMu sync.RWMutex
	accounts   map[uuid.UUID]*accountState

	recordsMu sync.RWMutex
	records   []*transfer.Record
}

func NewStore() *Store {
	return &Store{
		accounts: make(map[uuid.UUID]*accountState),
	}
}

// AddAccount seeds an account. Version starts at the given value so tests
// can exercise stale-version handling.
func (s *Store) AddAccount(account transfer.Account) {
	s.accountsMu.Lock()
	defer s.accountsMu.Unlock()
	s.accounts[account.ID] = &accountState{account: account}
}

func (s *Store) Get(_ context.Context, id uuid.UUID) (*transfer.Account, error) {
	state, err := s.lookup(id)
	if err != nil {
		return nil, err
	}
	state.mu.Lock()
	defer state.mu.Unlock()
	snapshot := state.account
	return &snapshot, nil
}

func (s *Store) DailyOutgoingTotal(_ context.Context, accountID uuid.UUID, asOf time.Time) (decimal.Decimal, error) {
	windowStart := asOf.Add(-24 * time.Hour)

	s.recordsMu.RLock()
	defer s.recordsMu.RUnlock()

	total := decimal.Zero
	for _, record := range s.records {
		if record.SourceAccount != accountID || record.Status != transfer.StatusCompleted {
			continue
		}
		if record.CreatedAt.After(windowStart) && !record.CreatedAt.After(asOf) {
			total = total.Add(record.Amount)
		}
	}
	return total, nil
}

func (s *Store) ListByAccount(_ context.Context, accountID uuid.UUID, cursor *transfer.HistoryCursor) ([]*transfer.Record, error) {
	limit := defaultHistoryLimit
	offset := 0
	if cursor != nil {
		if cursor.Limit > 0 {
			limit = cursor.Limit
		}
		offset = cursor.Position
	}
	if limit > maxHistoryLimit {
		limit = maxHistoryLimit
	}

	s.recordsMu.RLock()
	defer s.recordsMu.RUnlock()

	// Records are appended in commit order; walk backwards for newest first.
	var result []*transfer.Record
	skipped := 0
	for i := len(s.records) - 1; i >= 0 && len(result) < limit; i-- {
		record := s.records[i]
		if record.SourceAccount != accountID && record.DestAccount != accountID {
			continue
		}
		if skipped < offset {
			skipped++
			continue
		}
		snapshot := *record
		result = append(result, &snapshot)
	}
	return result, nil
}

// Commit applies the debit, credit, and record append as one unit. Both
// account versions must match the values the engine validated against.
func (s *Store) Commit(ctx context.Context, commit *transfer.Commit) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	debitState, err := s.lookup(commit.Debit.AccountID)
	if err != nil {
		return err
	}
	creditState, err := s.lookup(commit.Credit.AccountID)
	if err != nil {
		return err
	}

	first, second := lockOrder(debitState, creditState)
	first.mu.Lock()
	defer first.mu.Unlock()
	second.mu.Lock()
	defer second.mu.Unlock()

	if debitState.account.Version != commit.Debit.ExpectedVersion ||
		creditState.account.Version != commit.Credit.ExpectedVersion {
		return transfer.ErrStaleVersion
	}

	newDebitBalance := debitState.account.Balance.Add(commit.Debit.Delta)
	newCreditBalance := creditState.account.Balance.Add(commit.Credit.Delta)
	if newDebitBalance.IsNegative() || newCreditBalance.IsNegative() {
		return transfer.ErrWouldOverdraw
	}

	debitState.account.Balance = newDebitBalance
	debitState.account.Version++
	creditState.account.Balance = newCreditBalance
	creditState.account.Version++

	snapshot := *commit.Record
	s.recordsMu.Lock()
	s.records = append(s.records, &snapshot)
	s.recordsMu.Unlock()

	return nil
}

func (s *Store) lookup(id uuid.UUID) (*accountState, error) {
	s.accountsMu.RLock()
	defer s.accountsMu.RUnlock()
	state, ok := s.accounts[id]
	if !ok {
		return nil, transfer.ErrStoreNotFound
	}
	return state, nil
}

// lockOrder returns the two states in a stable order keyed on account id so
// concurrent commits over the same pair cannot deadlock.
func lockOrder(a, b *accountState) (*accountState, *accountState) {
	if bytes.Compare(a.account.ID.Bytes(), b.account.ID.Bytes()) <= 0 {
		return a, b
	}
	return b, a
}

var (
	_ transfer.AccountStore = (*Store)(nil)
	_ transfer.Ledger       = (*Store)(nil)
	_ transfer.Committer    = (*Store)(nil)
)
