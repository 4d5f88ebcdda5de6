package transfer

import (
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

// Status of a persisted transfer. The engine never persists a
// partially-applied transfer, so the success path has exactly one value.
type Status string

const StatusCompleted Status = "COMPLETED"

// Account is the engine's view of an account row. Version increments on
// every committed balance adjustment and is the optimistic-concurrency
// token for the commit path.
type Account struct {
	ID        uuid.UUID
	Balance   decimal.Decimal
	Active    bool
	Version   int64
	CreatedAt time.Time
}

// Record is one committed transfer. Immutable once created; the ledger of
// records is the sole proof of every balance mutation.
type Record struct {
	ID            uuid.UUID
	SourceAccount uuid.UUID
	DestAccount   uuid.UUID
	Amount        decimal.Decimal
	Memo          string
	Status        Status
	CreatedAt     time.Time
}

// Request is one transfer invocation. Ephemeral; never persisted as-is.
type Request struct {
	SourceAccount uuid.UUID
	DestAccount   uuid.UUID
	Amount        decimal.Decimal
	Memo          string
}

// Policy holds the fixed transfer limits. Values come from configuration,
// never from the caller.
type Policy struct {
	MinAmount  decimal.Decimal
	MaxAmount  decimal.Decimal
	DailyLimit decimal.Decimal
	MaxRetries int
}

// DefaultPolicy mirrors the shipped configuration defaults.
func DefaultPolicy() Policy {
	return Policy{
		MinAmount:  decimal.RequireFromString("0.01"),
		MaxAmount:  decimal.RequireFromString("10000.00"),
		DailyLimit: decimal.RequireFromString("50000.00"),
		MaxRetries: 3,
	}
}

// HistoryCursor identifies a position in a paginated history result set.
type HistoryCursor struct {
	Position int
	Limit    int
}
