package operator

import (
	"context"
	"errors"
	"time"

	"github.com/lib/pq"

	"github.com/carson-networks/transfer-server/internal/operator/actions"
	"github.com/carson-networks/transfer-server/internal/transfer"
)

// Committer adapts the operator pipeline to the engine's commit contract.
// Each commit becomes one queued action executed inside a single database
// transaction, bounded by the configured commit timeout.
type Committer struct {
	delegator *OperatorDelegator
	timeout   time.Duration
}

func NewCommitter(delegator *OperatorDelegator, timeout time.Duration) *Committer {
	return &Committer{
		delegator: delegator,
		timeout:   timeout,
	}
}

func (c *Committer) Commit(ctx context.Context, commit *transfer.Commit) error {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	return translateTxError(c.delegator.Process(ctx, &actions.CommitTransfer{Commit: commit}))
}

// translateTxError maps transaction-level concurrency aborts onto the
// stale-version sentinel so the engine re-reads and retries them like any
// other lost optimistic-concurrency race.
func translateTxError(err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch pqErr.Code {
		case "40001", "40P01": // serialization_failure, deadlock_detected
			return transfer.ErrStaleVersion
		}
	}
	return err
}

var _ transfer.Committer = (*Committer)(nil)
