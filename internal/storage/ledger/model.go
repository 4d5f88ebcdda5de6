package ledger

import (
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/transfer-server/internal/transfer"
)

// row mirrors the transfers table.
type row struct {
	ID              uuid.UUID       `db:"id"`
	SourceAccountID uuid.UUID       `db:"source_account_id"`
	DestAccountID   uuid.UUID       `db:"dest_account_id"`
	Amount          decimal.Decimal `db:"amount"`
	Memo            string          `db:"memo"`
	Status          string          `db:"status"`
	CreatedAt       time.Time       `db:"created_at"`
}

func rowToRecord(r row) *transfer.Record {
	return &transfer.Record{
		ID:            r.ID,
		SourceAccount: r.SourceAccountID,
		DestAccount:   r.DestAccountID,
		Amount:        r.Amount,
		Memo:          r.Memo,
		Status:        transfer.Status(r.Status),
		CreatedAt:     r.CreatedAt,
	}
}
