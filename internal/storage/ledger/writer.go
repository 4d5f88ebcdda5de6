package ledger

import (
	"context"

	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/im"

	"github.com/carson-networks/transfer-server/internal/transfer"
)

type Writer struct {
	tx bob.Tx
	Reader
}

func NewWriter(tx bob.Tx) *Writer {
	return &Writer{
		tx: tx,
		Reader: Reader{
			exec: tx,
		},
	}
}

// Insert appends a committed record. Only the transfer commit path calls
// this, inside the same transaction as the paired balance adjustments.
func (w *Writer) Insert(ctx context.Context, record *transfer.Record) error {
	query := psql.Insert(
		im.Into("transfers", "id", "source_account_id", "dest_account_id", "amount", "memo", "status", "created_at"),
		im.Values(psql.Arg(
			record.ID,
			record.SourceAccount,
			record.DestAccount,
			record.Amount,
			record.Memo,
			string(record.Status),
			record.CreatedAt,
		)),
	)

	_, err := bob.Exec(ctx, w.tx, query)
	return err
}
