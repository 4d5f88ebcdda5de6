package account

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/um"

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

// AdjustBalance applies a signed delta with compare-and-swap on the version
// counter. Zero rows updated means the version moved (or the balance can no
// longer cover the delta); callers re-read and re-validate. The table's
// balance >= 0 check constraint is the final backstop against overdraw.
func (w *Writer) AdjustBalance(ctx context.Context, adjustment transfer.Adjustment) error {
	query := psql.Update(
		um.Table("accounts"),
		um.SetCol("balance").To(psql.Raw("balance + ?", adjustment.Delta)),
		um.SetCol("version").To(psql.Raw("version + 1")),
		um.Where(psql.Quote("id").EQ(psql.Arg(adjustment.AccountID))),
		um.Where(psql.Quote("version").EQ(psql.Arg(adjustment.ExpectedVersion))),
		um.Where(psql.Raw("balance + ? >= ?", adjustment.Delta, decimal.Zero)),
	)

	result, err := bob.Exec(ctx, w.tx, query)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return transfer.ErrStaleVersion
	}
	return nil
}
