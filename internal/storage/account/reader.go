package account

import (
	"context"
	"database/sql"
	"errors"

	"github.com/gofrs/uuid/v5"
	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/scan"

	"github.com/carson-networks/transfer-server/internal/transfer"
)

type Reader struct {
	exec bob.Executor
}

func NewReader(exec bob.Executor) *Reader {
	return &Reader{exec: exec}
}

// Get retrieves an account by primary key.
func (r *Reader) Get(ctx context.Context, id uuid.UUID) (*transfer.Account, error) {
	query := psql.Select(
		sm.Columns("id", "balance", "active", "version", "created_at"),
		sm.From("accounts"),
		sm.Where(psql.Quote("id").EQ(psql.Arg(id))),
	)

	result, err := bob.One(ctx, r.exec, query, scan.StructMapper[row]())
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, transfer.ErrStoreNotFound
		}
		return nil, err
	}
	return rowToAccount(result), nil
}

var _ transfer.AccountStore = (*Reader)(nil)
