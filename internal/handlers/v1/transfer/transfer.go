package transfer

import (
	"time"

	enginetransfer "github.com/carson-networks/transfer-server/internal/transfer"
)

// Transfer is the API response model for a committed transfer record.
// It is used only for responses, not for request bodies.
type Transfer struct {
	ID              string `json:"id" doc:"Transfer UUID"`
	SourceAccountID string `json:"sourceAccountID" doc:"Source account UUID"`
	DestAccountID   string `json:"destAccountID" doc:"Destination account UUID"`
	Amount          string `json:"amount" doc:"Decimal amount"`
	Memo            string `json:"memo" doc:"Sanitized memo"`
	Status          string `json:"status" doc:"Transfer status, COMPLETED on success"`
	CreatedAt       string `json:"createdAt" doc:"RFC3339 commit time"`
}

func fromRecord(record *enginetransfer.Record) Transfer {
	return Transfer{
		ID:              record.ID.String(),
		SourceAccountID: record.SourceAccount.String(),
		DestAccountID:   record.DestAccount.String(),
		Amount:          record.Amount.StringFixed(2),
		Memo:            record.Memo,
		Status:          string(record.Status),
		CreatedAt:       record.CreatedAt.Format(time.RFC3339),
	}
}
