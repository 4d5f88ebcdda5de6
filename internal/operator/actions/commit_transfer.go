package actions

import (
	"bytes"
	"context"

	"github.com/carson-networks/transfer-server/internal/storage"
	"github.com/carson-networks/transfer-server/internal/transfer"
)

// CommitTransfer applies one transfer's atomic unit: debit the source,
// credit the destination, append the ledger record. Runs inside a single
// transaction-scoped Writer; any failure rolls the whole unit back.
type CommitTransfer struct {
	Commit *transfer.Commit

	IAction
}

func (c *CommitTransfer) Perform(ctx context.Context, writer *storage.Writer) error {
	first, second := lockOrder(c.Commit.Debit, c.Commit.Credit)

	if err := writer.Account.AdjustBalance(ctx, first); err != nil {
		return err
	}

	if err := writer.Account.AdjustBalance(ctx, second); err != nil {
		return err
	}

	return writer.Ledger.Insert(ctx, c.Commit.Record)
}

// lockOrder returns the two adjustments in a stable account-id order so
// opposite-direction transfers over the same account pair acquire their row
// locks in the same sequence and cannot deadlock each other.
func lockOrder(a, b transfer.Adjustment) (transfer.Adjustment, transfer.Adjustment) {
	if bytes.Compare(a.AccountID.Bytes(), b.AccountID.Bytes()) <= 0 {
		return a, b
	}
	return b, a
}
