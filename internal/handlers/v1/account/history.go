package account

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/transfer-server/internal/auth"
	"github.com/carson-networks/transfer-server/internal/handlers/v1/apierror"
	enginetransfer "github.com/carson-networks/transfer-server/internal/transfer"
)

// HistoryEntry is one transfer record in a history response.
type HistoryEntry struct {
	ID              string `json:"id" doc:"Transfer UUID"`
	SourceAccountID string `json:"sourceAccountID" doc:"Source account UUID"`
	DestAccountID   string `json:"destAccountID" doc:"Destination account UUID"`
	Amount          string `json:"amount" doc:"Decimal amount"`
	Memo            string `json:"memo" doc:"Sanitized memo"`
	Status          string `json:"status" doc:"Transfer status"`
	CreatedAt       string `json:"createdAt" doc:"RFC3339 commit time"`
}

// HistoryResponseBody is the response body for history reads.
type HistoryResponseBody struct {
	AccountID string         `json:"accountID" doc:"Account UUID"`
	Transfers []HistoryEntry `json:"transfers" doc:"Records newest first"`
}

// GetMyHistoryInput is the Huma input for reading the caller's own history.
type GetMyHistoryInput struct {
	Authorization string `header:"Authorization" doc:"Bearer session token"`
	Limit         int    `query:"limit" minimum:"0" maximum:"100" doc:"Page size, defaults to 50"`
	Position      int    `query:"position" minimum:"0" doc:"Numeric offset for the next page"`
}

// GetHistoryInput is the Huma input for reading history by account id.
// Owner or admin only.
type GetHistoryInput struct {
	Authorization string `header:"Authorization" doc:"Bearer session token"`
	AccountID     string `path:"accountID" doc:"Account UUID"`
	Limit         int    `query:"limit" minimum:"0" maximum:"100" doc:"Page size, defaults to 50"`
	Position      int    `query:"position" minimum:"0" doc:"Numeric offset for the next page"`
}

// HistoryOutput is the Huma output for history reads.
type HistoryOutput struct {
	Body HistoryResponseBody
}

// historyEngine is the engine surface the history handlers need.
type historyEngine interface {
	MyTransactionHistory(ctx context.Context, caller *auth.Identity, cursor *enginetransfer.HistoryCursor) ([]*enginetransfer.Record, error)
	TransactionHistory(ctx context.Context, caller *auth.Identity, accountID uuid.UUID, cursor *enginetransfer.HistoryCursor) ([]*enginetransfer.Record, error)
}

// HistoryHandler handles transfer history reads.
type HistoryHandler struct {
	Engine historyEngine
	Guard  identityResolver
}

// NewHistoryHandler creates a new HistoryHandler.
func NewHistoryHandler(engine historyEngine, guard identityResolver) *HistoryHandler {
	return &HistoryHandler{Engine: engine, Guard: guard}
}

// Register registers the history endpoints with the Huma API.
func (h *HistoryHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-my-transactions",
		Method:      http.MethodGet,
		Path:        "/v1/account/transactions",
		Summary:     "Get own transfer history",
		Description: "Returns the authenticated caller's transfer history, newest first.",
		Tags:        []string{"Accounts"},
	}, h.handleMine)

	huma.Register(api, huma.Operation{
		OperationID: "get-transactions",
		Method:      http.MethodGet,
		Path:        "/v1/account/{accountID}/transactions",
		Summary:     "Get transfer history by account",
		Description: "Returns an account's transfer history. Restricted to the account owner or an admin.",
		Tags:        []string{"Accounts"},
	}, h.handleByID)
}

func (h *HistoryHandler) handleMine(ctx context.Context, input *GetMyHistoryInput) (*HistoryOutput, error) {
	caller, _ := h.Guard.Identity(ctx, input.Authorization)

	records, err := h.Engine.MyTransactionHistory(ctx, caller, cursorFrom(input.Limit, input.Position))
	if err != nil {
		return nil, apierror.FromEngine(err)
	}

	return historyOutput(caller.AccountID, records), nil
}

func (h *HistoryHandler) handleByID(ctx context.Context, input *GetHistoryInput) (*HistoryOutput, error) {
	accountID, err := uuid.FromString(input.AccountID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid accountID", err)
	}

	caller, _ := h.Guard.Identity(ctx, input.Authorization)

	records, err := h.Engine.TransactionHistory(ctx, caller, accountID, cursorFrom(input.Limit, input.Position))
	if err != nil {
		return nil, apierror.FromEngine(err)
	}

	return historyOutput(accountID, records), nil
}

func cursorFrom(limit, position int) *enginetransfer.HistoryCursor {
	if limit == 0 && position == 0 {
		return nil
	}
	return &enginetransfer.HistoryCursor{
		Position: position,
		Limit:    limit,
	}
}

func historyOutput(accountID uuid.UUID, records []*enginetransfer.Record) *HistoryOutput {
	entries := make([]HistoryEntry, len(records))
	for i, record := range records {
		entries[i] = HistoryEntry{
			ID:              record.ID.String(),
			SourceAccountID: record.SourceAccount.String(),
			DestAccountID:   record.DestAccount.String(),
			Amount:          record.Amount.StringFixed(2),
			Memo:            record.Memo,
			Status:          string(record.Status),
			CreatedAt:       record.CreatedAt.Format(time.RFC3339),
		}
	}

	return &HistoryOutput{
		Body: HistoryResponseBody{
			AccountID: accountID.String(),
			Transfers: entries,
		},
	}
}
