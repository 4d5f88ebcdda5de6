package account

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/transfer-server/internal/auth"
	"github.com/carson-networks/transfer-server/internal/handlers/v1/apierror"
)

// BalanceResponseBody is the response body for balance reads.
type BalanceResponseBody struct {
	AccountID string `json:"accountID" doc:"Account UUID"`
	Balance   string `json:"balance" doc:"Decimal balance"`
}

// GetMyBalanceInput is the Huma input for reading the caller's own balance.
type GetMyBalanceInput struct {
	Authorization string `header:"Authorization" doc:"Bearer session token"`
}

// GetBalanceInput is the Huma input for reading a balance by account id.
// Owner or admin only.
type GetBalanceInput struct {
	Authorization string `header:"Authorization" doc:"Bearer session token"`
	AccountID     string `path:"accountID" doc:"Account UUID"`
}

// BalanceOutput is the Huma output for balance reads.
type BalanceOutput struct {
	Body BalanceResponseBody
}

// balanceEngine is the engine surface the balance handlers need.
type balanceEngine interface {
	MyBalance(ctx context.Context, caller *auth.Identity) (decimal.Decimal, error)
	Balance(ctx context.Context, caller *auth.Identity, accountID uuid.UUID) (decimal.Decimal, error)
}

// identityResolver resolves a bearer credential to a verified identity.
type identityResolver interface {
	Identity(ctx context.Context, credential string) (*auth.Identity, error)
}

// BalanceHandler handles balance reads.
type BalanceHandler struct {
	Engine balanceEngine
	Guard  identityResolver
}

// NewBalanceHandler creates a new BalanceHandler.
func NewBalanceHandler(engine balanceEngine, guard identityResolver) *BalanceHandler {
	return &BalanceHandler{Engine: engine, Guard: guard}
}

// Register registers the balance endpoints with the Huma API.
func (h *BalanceHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-my-balance",
		Method:      http.MethodGet,
		Path:        "/v1/account/balance",
		Summary:     "Get own balance",
		Description: "Returns the authenticated caller's account balance.",
		Tags:        []string{"Accounts"},
	}, h.handleMine)

	huma.Register(api, huma.Operation{
		OperationID: "get-balance",
		Method:      http.MethodGet,
		Path:        "/v1/account/{accountID}/balance",
		Summary:     "Get balance by account",
		Description: "Returns an account balance. Restricted to the account owner or an admin.",
		Tags:        []string{"Accounts"},
	}, h.handleByID)
}

func (h *BalanceHandler) handleMine(ctx context.Context, input *GetMyBalanceInput) (*BalanceOutput, error) {
	caller, _ := h.Guard.Identity(ctx, input.Authorization)

	balance, err := h.Engine.MyBalance(ctx, caller)
	if err != nil {
		return nil, apierror.FromEngine(err)
	}

	return &BalanceOutput{
		Body: BalanceResponseBody{
			AccountID: caller.AccountID.String(),
			Balance:   balance.StringFixed(2),
		},
	}, nil
}

func (h *BalanceHandler) handleByID(ctx context.Context, input *GetBalanceInput) (*BalanceOutput, error) {
	accountID, err := uuid.FromString(input.AccountID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid accountID", err)
	}

	caller, _ := h.Guard.Identity(ctx, input.Authorization)

	balance, err := h.Engine.Balance(ctx, caller, accountID)
	if err != nil {
		return nil, apierror.FromEngine(err)
	}

	return &BalanceOutput{
		Body: BalanceResponseBody{
			AccountID: accountID.String(),
			Balance:   balance.StringFixed(2),
		},
	}, nil
}
