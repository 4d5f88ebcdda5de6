package ledger

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/scan"

	"github.com/carson-networks/transfer-server/internal/transfer"
)

const (
	defaultHistoryLimit = 50
	maxHistoryLimit     = 100
)

type Reader struct {
	exec bob.Executor
}

func NewReader(exec bob.Executor) *Reader {
	return &Reader{exec: exec}
}

// DailyOutgoingTotal sums COMPLETED outgoing amounts in the trailing 24-hour
// window ending at asOf. The aggregate always comes from the durable table
// so it cannot drift from persisted state after a restart.
func (r *Reader) DailyOutgoingTotal(ctx context.Context, accountID uuid.UUID, asOf time.Time) (decimal.Decimal, error) {
	windowStart := asOf.Add(-24 * time.Hour)

	query := psql.Select(
		sm.Columns(psql.Raw("COALESCE(SUM(amount), 0)")),
		sm.From("transfers"),
		sm.Where(psql.Quote("source_account_id").EQ(psql.Arg(accountID))),
		sm.Where(psql.Quote("status").EQ(psql.Arg(string(transfer.StatusCompleted)))),
		sm.Where(psql.Raw("created_at > ? AND created_at <= ?", windowStart, asOf)),
	)

	total, err := bob.One(ctx, r.exec, query, scan.SingleColumnMapper[decimal.Decimal])
	if err != nil {
		return decimal.Zero, err
	}
	return total, nil
}

// ListByAccount returns records where the account is source or destination,
// newest first.
func (r *Reader) ListByAccount(ctx context.Context, accountID uuid.UUID, cursor *transfer.HistoryCursor) ([]*transfer.Record, error) {
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

	query := psql.Select(
		sm.Columns("id", "source_account_id", "dest_account_id", "amount", "memo", "status", "created_at"),
		sm.From("transfers"),
		sm.Where(psql.Raw("(source_account_id = ? OR dest_account_id = ?)", accountID, accountID)),
		sm.OrderBy("created_at").Desc(),
		sm.OrderBy("id").Desc(),
		sm.Limit(limit),
		sm.Offset(offset),
	)

	rows, err := bob.All(ctx, r.exec, query, scan.StructMapper[row]())
	if err != nil {
		return nil, err
	}

	result := make([]*transfer.Record, len(rows))
	for i, r := range rows {
		result[i] = rowToRecord(r)
	}
	return result, nil
}

var _ transfer.Ledger = (*Reader)(nil)
