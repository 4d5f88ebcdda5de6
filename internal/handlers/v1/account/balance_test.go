package account

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/carson-networks/transfer-server/internal/auth"
	enginetransfer "github.com/carson-networks/transfer-server/internal/transfer"
)

// mockBalanceEngine is a mock for balanceEngine.
type mockBalanceEngine struct {
	mock.Mock
}

func (m *mockBalanceEngine) MyBalance(ctx context.Context, caller *auth.Identity) (decimal.Decimal, error) {
	args := m.Called(ctx, caller)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *mockBalanceEngine) Balance(ctx context.Context, caller *auth.Identity, accountID uuid.UUID) (decimal.Decimal, error) {
	args := m.Called(ctx, caller, accountID)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

// stubGuard resolves one fixed token to one fixed identity.
type stubGuard struct {
	token    string
	identity *auth.Identity
}

func (s *stubGuard) Identity(_ context.Context, credential string) (*auth.Identity, error) {
	if s.identity != nil && credential == "Bearer "+s.token {
		return s.identity, nil
	}
	return nil, auth.ErrNoSession
}

func newBalanceAPI(t *testing.T, engine balanceEngine, guard identityResolver) humatest.TestAPI {
	t.Helper()
	_, api := humatest.New(t)
	NewBalanceHandler(engine, guard).Register(api)
	return api
}

func TestHTTP_GetMyBalance_Success(t *testing.T) {
	accountID := uuid.Must(uuid.NewV4())
	caller := &auth.Identity{AccountID: accountID, Role: auth.RoleUser}
	guard := &stubGuard{token: "tok", identity: caller}

	engine := new(mockBalanceEngine)
	engine.On("MyBalance", mock.Anything, caller).Return(decimal.RequireFromString("123.45"), nil)

	resp := newBalanceAPI(t, engine, guard).Get("/v1/account/balance", "Authorization: Bearer tok")

	assert.Equal(t, http.StatusOK, resp.Code)
	var body BalanceResponseBody
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, accountID.String(), body.AccountID)
	assert.Equal(t, "123.45", body.Balance)
	engine.AssertExpectations(t)
}

func TestHTTP_GetMyBalance_NoToken(t *testing.T) {
	engine := new(mockBalanceEngine)
	engine.On("MyBalance", mock.Anything, (*auth.Identity)(nil)).
		Return(decimal.Zero, enginetransfer.ErrAuthRequired)

	resp := newBalanceAPI(t, engine, &stubGuard{}).Get("/v1/account/balance")

	assert.Equal(t, http.StatusUnauthorized, resp.Code)
	engine.AssertExpectations(t)
}

func TestHTTP_GetBalance_Success(t *testing.T) {
	accountID := uuid.Must(uuid.NewV4())
	admin := &auth.Identity{AccountID: uuid.Must(uuid.NewV4()), Role: auth.RoleAdmin}
	guard := &stubGuard{token: "admin-tok", identity: admin}

	engine := new(mockBalanceEngine)
	engine.On("Balance", mock.Anything, admin, accountID).Return(decimal.RequireFromString("9.00"), nil)

	resp := newBalanceAPI(t, engine, guard).Get("/v1/account/"+accountID.String()+"/balance",
		"Authorization: Bearer admin-tok")

	assert.Equal(t, http.StatusOK, resp.Code)
	var body BalanceResponseBody
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, accountID.String(), body.AccountID)
	assert.Equal(t, "9.00", body.Balance)
	engine.AssertExpectations(t)
}

func TestHTTP_GetBalance_AccessDenied(t *testing.T) {
	accountID := uuid.Must(uuid.NewV4())
	caller := &auth.Identity{AccountID: uuid.Must(uuid.NewV4()), Role: auth.RoleUser}
	guard := &stubGuard{token: "tok", identity: caller}

	engine := new(mockBalanceEngine)
	engine.On("Balance", mock.Anything, caller, accountID).
		Return(decimal.Zero, enginetransfer.ErrAccessDenied)

	resp := newBalanceAPI(t, engine, guard).Get("/v1/account/"+accountID.String()+"/balance",
		"Authorization: Bearer tok")

	assert.Equal(t, http.StatusForbidden, resp.Code)
	engine.AssertExpectations(t)
}

func TestHTTP_GetBalance_InvalidAccountID(t *testing.T) {
	engine := new(mockBalanceEngine)

	resp := newBalanceAPI(t, engine, &stubGuard{}).Get("/v1/account/not-a-uuid/balance")

	assert.Equal(t, http.StatusBadRequest, resp.Code)
	engine.AssertNotCalled(t, "Balance")
}
