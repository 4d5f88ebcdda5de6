package transfer

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/transfer-server/internal/auth"
	"github.com/carson-networks/transfer-server/internal/handlers/v1/apierror"
	"github.com/carson-networks/transfer-server/internal/logging"
	enginetransfer "github.com/carson-networks/transfer-server/internal/transfer"
)

// CreateTransferBody is the request body for initiating a transfer. Caller
// identity comes exclusively from the Authorization header; nothing in this
// body is trusted for authorization.
type CreateTransferBody struct {
	SourceAccountID string `json:"sourceAccountID" required:"true" doc:"Source account UUID; must be owned by the caller"`
	DestAccountID   string `json:"destAccountID" required:"true" doc:"Destination account UUID"`
	Amount          string `json:"amount" required:"true" doc:"Decimal amount with at most 2 decimal places"`
	Memo            string `json:"memo,omitempty" doc:"Optional free-text memo, sanitized before persistence"`
}

// CreateTransferInput is the Huma input for initiating a transfer.
type CreateTransferInput struct {
	Authorization string `header:"Authorization" doc:"Bearer session token"`
	Body          CreateTransferBody
}

// CreateTransferOutput is the Huma output for a committed transfer.
type CreateTransferOutput struct {
	Status int
	Body   Transfer
}

// transferEngine is the engine surface this handler needs.
type transferEngine interface {
	Transfer(ctx context.Context, caller *auth.Identity, req enginetransfer.Request) (*enginetransfer.Record, error)
}

// identityResolver resolves a bearer credential to a verified identity.
type identityResolver interface {
	Identity(ctx context.Context, credential string) (*auth.Identity, error)
}

// CreateTransferHandler handles POST /v1/transfer.
type CreateTransferHandler struct {
	Engine transferEngine
	Guard  identityResolver
}

// NewCreateTransferHandler creates a new CreateTransferHandler.
func NewCreateTransferHandler(engine transferEngine, guard identityResolver) *CreateTransferHandler {
	return &CreateTransferHandler{Engine: engine, Guard: guard}
}

// Register registers the create transfer endpoint with the Huma API.
func (h *CreateTransferHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "create-transfer",
		Method:      http.MethodPost,
		Path:        "/v1/transfer",
		Summary:     "Transfer funds",
		Description: "Moves funds from the caller's account to a destination account as one atomic unit.",
		Tags:        []string{"Transfers"},
	}, h.handle)
}

func (h *CreateTransferHandler) handle(ctx context.Context, input *CreateTransferInput) (*CreateTransferOutput, error) {
	sourceID, err := uuid.FromString(input.Body.SourceAccountID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid sourceAccountID", err)
	}
	destID, err := uuid.FromString(input.Body.DestAccountID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid destAccountID", err)
	}
	amount, err := decimal.NewFromString(input.Body.Amount)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid amount", err)
	}

	// Resolution failure yields a nil caller; the engine reports it as its
	// own authentication-required kind so every path shares one taxonomy.
	caller, _ := h.Guard.Identity(ctx, input.Authorization)

	logData := logging.GetLogData(ctx)
	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("transferMs")
	}
	record, err := h.Engine.Transfer(ctx, caller, enginetransfer.Request{
		SourceAccount: sourceID,
		DestAccount:   destID,
		Amount:        amount,
		Memo:          input.Body.Memo,
	})
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, apierror.FromEngine(err)
	}

	if logData != nil {
		logData.AddData("transferID", record.ID.String())
	}

	return &CreateTransferOutput{
		Status: http.StatusCreated,
		Body:   fromRecord(record),
	}, nil
}
