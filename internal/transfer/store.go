package transfer

import (
	"context"
	"errors"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

// Storage-level sentinel errors. The engine translates these into its typed
// taxonomy; store implementations return them directly.
var (
	// ErrStoreNotFound indicates the account id has no row.
	ErrStoreNotFound = errors.New("account not found in store")
	// ErrStaleVersion indicates a commit lost an optimistic-concurrency race
	// and the engine must re-read and re-validate.
	ErrStaleVersion = errors.New("account version is stale")
	// ErrWouldOverdraw indicates an adjustment would take a balance negative.
	ErrWouldOverdraw = errors.New("adjustment would overdraw account")
)

// AccountStore is the point-read contract the engine requires from a
// persistence layer.
//
//go:generate mockery --name AccountStore --output mock_AccountStore.go
type AccountStore interface {
	Get(ctx context.Context, id uuid.UUID) (*Account, error)
}

// Ledger is the queryable append-only transfer log. Appending happens only
// through the Committer so the record and the paired balance mutations are
// one atomic unit.
//
//go:generate mockery --name Ledger --output mock_Ledger.go
type Ledger interface {
	// DailyOutgoingTotal sums COMPLETED transfer amounts with the account as
	// source within the trailing 24 hours ending at asOf. Computed from the
	// durable ledger, never from a counter that can drift after a crash.
	DailyOutgoingTotal(ctx context.Context, accountID uuid.UUID, asOf time.Time) (decimal.Decimal, error)
	// ListByAccount returns records where the account is source or
	// destination, newest first.
	ListByAccount(ctx context.Context, accountID uuid.UUID, cursor *HistoryCursor) ([]*Record, error)
}

// Adjustment is one signed balance change pinned to the version the engine
// validated against.
type Adjustment struct {
	AccountID       uuid.UUID
	Delta           decimal.Decimal
	ExpectedVersion int64
}

// Commit is the atomic unit: debit source, credit destination, append the
// record. All three take effect or none do.
type Commit struct {
	Debit  Adjustment
	Credit Adjustment
	Record *Record
}

// Committer applies a Commit atomically. Implementations return
// ErrStaleVersion when either account's version moved since validation, and
// ErrWouldOverdraw if the debit would take the balance negative.
//
//go:generate mockery --name Committer --output mock_Committer.go
type Committer interface {
	Commit(ctx context.Context, commit *Commit) error
}
