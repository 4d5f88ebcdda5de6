package account

import (
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/transfer-server/internal/transfer"
)

// row mirrors the accounts table.
type row struct {
	ID        uuid.UUID       `db:"id"`
	Balance   decimal.Decimal `db:"balance"`
	Active    bool            `db:"active"`
	Version   int64           `db:"version"`
	CreatedAt time.Time       `db:"created_at"`
}

func rowToAccount(r row) *transfer.Account {
	return &transfer.Account{
		ID:        r.ID,
		Balance:   r.Balance,
		Active:    r.Active,
		Version:   r.Version,
		CreatedAt: r.CreatedAt,
	}
}
