package transfer

import (
	"context"
	"errors"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/carson-networks/transfer-server/internal/auth"
	"github.com/carson-networks/transfer-server/internal/logging"
)

// Authorizer answers whether a verified identity may act as an account.
// Satisfied by *auth.Guard.
type Authorizer interface {
	IsOwnerOrAdmin(ident auth.Identity, accountID uuid.UUID) bool
}

// Engine orchestrates transfers: validation, authorization, balance and
// daily-limit reads, and the atomic commit. It holds no mutable state
// between calls; all shared state lives behind the store interfaces.
type Engine struct {
	accounts  AccountStore
	ledger    Ledger
	committer Committer
	guard     Authorizer
	policy    Policy
	logger    *logrus.Logger
	now       func() time.Time
}

func NewEngine(accounts AccountStore, ledger Ledger, committer Committer, guard Authorizer, policy Policy, logger *logrus.Logger) *Engine {
	return &Engine{
		accounts:  accounts,
		ledger:    ledger,
		committer: committer,
		guard:     guard,
		policy:    policy,
		logger:    logger,
		now:       time.Now,
	}
}

// Transfer moves req.Amount from the source to the destination account as
// one atomic unit and returns the committed record. The caller must be the
// owner of the source account, or an admin.
//
// Validation is fail-fast and each check yields a distinct error kind:
// identity, ownership, self-transfer, amount policy, account existence and
// state, funds, daily limit. Nothing is mutated before the commit step.
func (e *Engine) Transfer(ctx context.Context, caller *auth.Identity, req Request) (*Record, error) {
	if caller == nil {
		return nil, ErrAuthRequired
	}
	if !e.guard.IsOwnerOrAdmin(*caller, req.SourceAccount) {
		// Same failure whether or not the source account exists.
		e.warn("Transfer.AccessDenied", logrus.Fields{
			"caller": logging.ShortID(caller.AccountID.String()),
			"source": logging.ShortID(req.SourceAccount.String()),
		})
		return nil, ErrAccessDenied
	}
	if req.SourceAccount == req.DestAccount {
		return nil, ErrSelfTransfer
	}
	if err := e.validateAmount(req.Amount); err != nil {
		return nil, err
	}

	memo := sanitizeMemo(req.Memo)

	for attempt := 0; attempt <= e.policy.MaxRetries; attempt++ {
		record, err := e.attemptTransfer(ctx, req, memo)
		if err == nil {
			e.info("Transfer.Committed", logrus.Fields{
				"transferID": record.ID.String(),
				"attempt":    attempt,
			})
			return record, nil
		}
		if errors.Is(err, ErrStaleVersion) {
			// Lost an optimistic-concurrency race: re-read and re-validate.
			continue
		}
		return nil, err
	}

	return nil, ErrConflict
}

// attemptTransfer runs one validate-and-commit pass against a consistent
// snapshot of both accounts. A stale-version result from the committer is
// propagated untranslated so the caller can retry.
func (e *Engine) attemptTransfer(ctx context.Context, req Request, memo string) (*Record, error) {
	source, err := e.loadAccount(ctx, req.SourceAccount)
	if err != nil {
		return nil, err
	}
	dest, err := e.loadAccount(ctx, req.DestAccount)
	if err != nil {
		return nil, err
	}

	if !source.Active {
		return nil, E(KindAccountInactive, "source account is inactive")
	}
	if !dest.Active {
		return nil, E(KindAccountInactive, "destination account is inactive")
	}

	if source.Balance.LessThan(req.Amount) {
		return nil, ErrInsufficientFunds
	}

	dailyTotal, err := e.ledger.DailyOutgoingTotal(ctx, req.SourceAccount, e.now())
	if err != nil {
		return nil, translateStoreError(err)
	}
	if dailyTotal.Add(req.Amount).GreaterThan(e.policy.DailyLimit) {
		return nil, ErrDailyLimit
	}

	id, err := uuid.NewV4()
	if err != nil {
		return nil, E(KindInternal, "transfer could not be processed")
	}

	record := &Record{
		ID:            id,
		SourceAccount: req.SourceAccount,
		DestAccount:   req.DestAccount,
		Amount:        req.Amount,
		Memo:          memo,
		Status:        StatusCompleted,
		CreatedAt:     e.now().UTC(),
	}

	commit := &Commit{
		Debit: Adjustment{
			AccountID:       req.SourceAccount,
			Delta:           req.Amount.Neg(),
			ExpectedVersion: source.Version,
		},
		Credit: Adjustment{
			AccountID:       req.DestAccount,
			Delta:           req.Amount,
			ExpectedVersion: dest.Version,
		},
		Record: record,
	}

	if err := e.committer.Commit(ctx, commit); err != nil {
		if errors.Is(err, ErrStaleVersion) {
			return nil, err
		}
		if errors.Is(err, ErrWouldOverdraw) {
			// Funds moved between validation and commit.
			return nil, ErrInsufficientFunds
		}
		return nil, translateStoreError(err)
	}

	return record, nil
}

// MyBalance returns the authenticated caller's own balance.
func (e *Engine) MyBalance(ctx context.Context, caller *auth.Identity) (decimal.Decimal, error) {
	if caller == nil {
		return decimal.Zero, ErrAuthRequired
	}
	return e.Balance(ctx, caller, caller.AccountID)
}

// Balance returns an account's balance. Owner or admin only; authorization
// is re-checked on every call.
func (e *Engine) Balance(ctx context.Context, caller *auth.Identity, accountID uuid.UUID) (decimal.Decimal, error) {
	if caller == nil {
		return decimal.Zero, ErrAuthRequired
	}
	if !e.guard.IsOwnerOrAdmin(*caller, accountID) {
		return decimal.Zero, ErrAccessDenied
	}
	account, err := e.loadAccount(ctx, accountID)
	if err != nil {
		return decimal.Zero, err
	}
	return account.Balance, nil
}

// MyTransactionHistory returns the authenticated caller's own history.
func (e *Engine) MyTransactionHistory(ctx context.Context, caller *auth.Identity, cursor *HistoryCursor) ([]*Record, error) {
	if caller == nil {
		return nil, ErrAuthRequired
	}
	return e.TransactionHistory(ctx, caller, caller.AccountID, cursor)
}

// TransactionHistory returns records where the account is source or
// destination, newest first. Owner or admin only.
func (e *Engine) TransactionHistory(ctx context.Context, caller *auth.Identity, accountID uuid.UUID, cursor *HistoryCursor) ([]*Record, error) {
	if caller == nil {
		return nil, ErrAuthRequired
	}
	if !e.guard.IsOwnerOrAdmin(*caller, accountID) {
		return nil, ErrAccessDenied
	}
	records, err := e.ledger.ListByAccount(ctx, accountID, cursor)
	if err != nil {
		return nil, translateStoreError(err)
	}
	return records, nil
}

func (e *Engine) loadAccount(ctx context.Context, id uuid.UUID) (*Account, error) {
	account, err := e.accounts.Get(ctx, id)
	if err != nil {
		if errors.Is(err, ErrStoreNotFound) {
			return nil, ErrAccountNotFound
		}
		return nil, translateStoreError(err)
	}
	return account, nil
}

// translateStoreError maps store failures into the engine taxonomy without
// leaking cause detail. Context expiry is the bounded-wait case and is safe
// to retry; everything else is internal.
func translateStoreError(err error) error {
	var engineErr *Error
	if errors.As(err, &engineErr) {
		return err
	}
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return ErrTransient
	}
	return E(KindInternal, "transfer store unavailable")
}

func (e *Engine) info(message string, fields logrus.Fields) {
	if e.logger == nil {
		return
	}
	e.logger.WithFields(fields).Info(message)
}

func (e *Engine) warn(message string, fields logrus.Fields) {
	if e.logger == nil {
		return
	}
	e.logger.WithFields(fields).Warn(message)
}
