package account

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/carson-networks/transfer-server/internal/auth"
	enginetransfer "github.com/carson-networks/transfer-server/internal/transfer"
)

// mockHistoryEngine is a mock for historyEngine.
type mockHistoryEngine struct {
	mock.Mock
}

func (m *mockHistoryEngine) MyTransactionHistory(ctx context.Context, caller *auth.Identity, cursor *enginetransfer.HistoryCursor) ([]*enginetransfer.Record, error) {
	args := m.Called(ctx, caller, cursor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*enginetransfer.Record), args.Error(1)
}

func (m *mockHistoryEngine) TransactionHistory(ctx context.Context, caller *auth.Identity, accountID uuid.UUID, cursor *enginetransfer.HistoryCursor) ([]*enginetransfer.Record, error) {
	args := m.Called(ctx, caller, accountID, cursor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*enginetransfer.Record), args.Error(1)
}

func newHistoryAPI(t *testing.T, engine historyEngine, guard identityResolver) humatest.TestAPI {
	t.Helper()
	_, api := humatest.New(t)
	NewHistoryHandler(engine, guard).Register(api)
	return api
}

func TestHTTP_GetMyTransactions_Success(t *testing.T) {
	accountID := uuid.Must(uuid.NewV4())
	caller := &auth.Identity{AccountID: accountID, Role: auth.RoleUser}
	guard := &stubGuard{token: "tok", identity: caller}

	createdAt := time.Date(2025, 7, 1, 12, 0, 0, 0, time.UTC)
	records := []*enginetransfer.Record{
		{
			ID:            uuid.Must(uuid.NewV4()),
			SourceAccount: accountID,
			DestAccount:   uuid.Must(uuid.NewV4()),
			Amount:        decimal.RequireFromString("5.00"),
			Memo:          "lunch",
			Status:        enginetransfer.StatusCompleted,
			CreatedAt:     createdAt,
		},
	}

	engine := new(mockHistoryEngine)
	engine.On("MyTransactionHistory", mock.Anything, caller, (*enginetransfer.HistoryCursor)(nil)).
		Return(records, nil)

	resp := newHistoryAPI(t, engine, guard).Get("/v1/account/transactions", "Authorization: Bearer tok")

	assert.Equal(t, http.StatusOK, resp.Code)
	var body HistoryResponseBody
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, accountID.String(), body.AccountID)
	if assert.Len(t, body.Transfers, 1) {
		assert.Equal(t, records[0].ID.String(), body.Transfers[0].ID)
		assert.Equal(t, "5.00", body.Transfers[0].Amount)
		assert.Equal(t, "lunch", body.Transfers[0].Memo)
		assert.Equal(t, "COMPLETED", body.Transfers[0].Status)
		assert.Equal(t, "2025-07-01T12:00:00Z", body.Transfers[0].CreatedAt)
	}
	engine.AssertExpectations(t)
}

func TestHTTP_GetMyTransactions_PagingForwarded(t *testing.T) {
	accountID := uuid.Must(uuid.NewV4())
	caller := &auth.Identity{AccountID: accountID, Role: auth.RoleUser}
	guard := &stubGuard{token: "tok", identity: caller}

	engine := new(mockHistoryEngine)
	engine.On("MyTransactionHistory", mock.Anything, caller, &enginetransfer.HistoryCursor{Position: 20, Limit: 10}).
		Return([]*enginetransfer.Record{}, nil)

	resp := newHistoryAPI(t, engine, guard).Get("/v1/account/transactions?limit=10&position=20",
		"Authorization: Bearer tok")

	assert.Equal(t, http.StatusOK, resp.Code)
	engine.AssertExpectations(t)
}

func TestHTTP_GetTransactions_AccessDenied(t *testing.T) {
	accountID := uuid.Must(uuid.NewV4())
	caller := &auth.Identity{AccountID: uuid.Must(uuid.NewV4()), Role: auth.RoleUser}
	guard := &stubGuard{token: "tok", identity: caller}

	engine := new(mockHistoryEngine)
	engine.On("TransactionHistory", mock.Anything, caller, accountID, (*enginetransfer.HistoryCursor)(nil)).
		Return(nil, enginetransfer.ErrAccessDenied)

	resp := newHistoryAPI(t, engine, guard).Get("/v1/account/"+accountID.String()+"/transactions",
		"Authorization: Bearer tok")

	assert.Equal(t, http.StatusForbidden, resp.Code)
	engine.AssertExpectations(t)
}

func TestHTTP_GetTransactions_InvalidAccountID(t *testing.T) {
	engine := new(mockHistoryEngine)

	resp := newHistoryAPI(t, engine, &stubGuard{}).Get("/v1/account/not-a-uuid/transactions")

	assert.Equal(t, http.StatusBadRequest, resp.Code)
	engine.AssertNotCalled(t, "TransactionHistory")
}
