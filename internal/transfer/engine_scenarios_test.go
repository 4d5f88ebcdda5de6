package transfer_test

import (
	"context"
	"sync"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/transfer-server/internal/auth"
	"github.com/carson-networks/transfer-server/internal/storage/memory"
	"github.com/carson-networks/transfer-server/internal/transfer"
)

// newMemoryEngine wires the engine to the in-process store so these tests
// exercise the real commit path, including version checks and retries.
func newMemoryEngine(policy transfer.Policy) (*transfer.Engine, *memory.Store) {
	store := memory.NewStore()
	engine := transfer.NewEngine(store, store, store, auth.NewGuard(nil), policy, nil)
	return engine, store
}

func seedAccount(store *memory.Store, balance string) uuid.UUID {
	id := uuid.Must(uuid.NewV4())
	store.AddAccount(transfer.Account{
		ID:      id,
		Balance: decimal.RequireFromString(balance),
		Active:  true,
		Version: 1,
	})
	return id
}

func asOwner(accountID uuid.UUID) *auth.Identity {
	return &auth.Identity{AccountID: accountID, Role: auth.RoleUser}
}

func TestTransfer_EndToEndMovesFunds(t *testing.T) {
	engine, store := newMemoryEngine(transfer.DefaultPolicy())
	sourceID := seedAccount(store, "100.00")
	destID := seedAccount(store, "25.00")

	record, err := engine.Transfer(context.Background(), asOwner(sourceID), transfer.Request{
		SourceAccount: sourceID,
		DestAccount:   destID,
		Amount:        decimal.RequireFromString("40.00"),
		Memo:          "groceries",
	})
	require.NoError(t, err)
	require.NotNil(t, record)

	sourceBalance, err := engine.MyBalance(context.Background(), asOwner(sourceID))
	require.NoError(t, err)
	assert.Equal(t, "60.00", sourceBalance.StringFixed(2))

	destBalance, err := engine.MyBalance(context.Background(), asOwner(destID))
	require.NoError(t, err)
	assert.Equal(t, "65.00", destBalance.StringFixed(2))

	history, err := engine.MyTransactionHistory(context.Background(), asOwner(sourceID), nil)
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, record.ID, history[0].ID)
}

func TestTransfer_FailedAttemptLeavesNoTrace(t *testing.T) {
	engine, store := newMemoryEngine(transfer.DefaultPolicy())
	sourceID := seedAccount(store, "30.00")
	destID := seedAccount(store, "0.00")

	_, err := engine.Transfer(context.Background(), asOwner(sourceID), transfer.Request{
		SourceAccount: sourceID,
		DestAccount:   destID,
		Amount:        decimal.RequireFromString("31.00"),
	})
	require.Equal(t, transfer.KindInsufficientFunds, transfer.KindOf(err))

	sourceBalance, err := engine.MyBalance(context.Background(), asOwner(sourceID))
	require.NoError(t, err)
	assert.Equal(t, "30.00", sourceBalance.StringFixed(2))

	history, err := engine.MyTransactionHistory(context.Background(), asOwner(sourceID), nil)
	require.NoError(t, err)
	assert.Empty(t, history)
}

func TestTransfer_DailyLimitAccumulatesAcrossTransfers(t *testing.T) {
	policy := transfer.DefaultPolicy()
	policy.DailyLimit = decimal.RequireFromString("100.00")

	engine, store := newMemoryEngine(policy)
	sourceID := seedAccount(store, "500.00")
	destID := seedAccount(store, "0.00")

	request := func(amount string) transfer.Request {
		return transfer.Request{
			SourceAccount: sourceID,
			DestAccount:   destID,
			Amount:        decimal.RequireFromString(amount),
		}
	}

	_, err := engine.Transfer(context.Background(), asOwner(sourceID), request("60.00"))
	require.NoError(t, err)

	_, err = engine.Transfer(context.Background(), asOwner(sourceID), request("40.00"))
	require.NoError(t, err)

	// The window is now exactly full; one more cent must be refused.
	_, err = engine.Transfer(context.Background(), asOwner(sourceID), request("0.01"))
	assert.Equal(t, transfer.KindDailyLimitExceeded, transfer.KindOf(err))

	// Inbound transfers never count against the destination's window.
	otherID := seedAccount(store, "0.00")
	_, err = engine.Transfer(context.Background(), asOwner(destID), transfer.Request{
		SourceAccount: destID,
		DestAccount:   otherID,
		Amount:        decimal.RequireFromString("50.00"),
	})
	assert.NoError(t, err)
}

func TestTransfer_ConcurrentOverdrawRace(t *testing.T) {
	engine, store := newMemoryEngine(transfer.DefaultPolicy())
	sourceID := seedAccount(store, "100.00")
	destID := seedAccount(store, "0.00")

	results := make(chan error, 2)
	var start sync.WaitGroup
	start.Add(1)
	for i := 0; i < 2; i++ {
		go func() {
			start.Wait()
			_, err := engine.Transfer(context.Background(), asOwner(sourceID), transfer.Request{
				SourceAccount: sourceID,
				DestAccount:   destID,
				Amount:        decimal.RequireFromString("60.00"),
			})
			results <- err
		}()
	}
	start.Done()

	var successes, failures int
	for i := 0; i < 2; i++ {
		err := <-results
		if err == nil {
			successes++
			continue
		}
		failures++
		kind := transfer.KindOf(err)
		assert.Contains(t, []transfer.Kind{transfer.KindInsufficientFunds, transfer.KindConflict}, kind)
	}
	assert.Equal(t, 1, successes)
	assert.Equal(t, 1, failures)

	sourceBalance, err := engine.MyBalance(context.Background(), asOwner(sourceID))
	require.NoError(t, err)
	assert.Equal(t, "40.00", sourceBalance.StringFixed(2))

	destBalance, err := engine.MyBalance(context.Background(), asOwner(destID))
	require.NoError(t, err)
	assert.Equal(t, "60.00", destBalance.StringFixed(2))
}

func TestTransfer_ConcurrentFanOutConservesTotal(t *testing.T) {
	const workers = 8
	const transfersPerWorker = 25

	engine, store := newMemoryEngine(transfer.DefaultPolicy())

	accountIDs := make([]uuid.UUID, 4)
	for i := range accountIDs {
		accountIDs[i] = seedAccount(store, "1000.00")
	}
	expectedTotal := decimal.RequireFromString("4000.00")

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < transfersPerWorker; i++ {
				source := accountIDs[(w+i)%len(accountIDs)]
				dest := accountIDs[(w+i+1)%len(accountIDs)]
				// Both success and contention failures are valid outcomes
				// here; only the conservation invariant is asserted below.
				_, _ = engine.Transfer(context.Background(), asOwner(source), transfer.Request{
					SourceAccount: source,
					DestAccount:   dest,
					Amount:        decimal.RequireFromString("7.00"),
				})
			}
		}(w)
	}
	wg.Wait()

	total := decimal.Zero
	finals := make([]*transfer.Account, 0, len(accountIDs))
	for _, id := range accountIDs {
		account, err := store.Get(context.Background(), id)
		require.NoError(t, err)
		require.False(t, account.Balance.IsNegative(), "balance went negative: %s", spew.Sdump(account))
		total = total.Add(account.Balance)
		finals = append(finals, account)
	}

	if !total.Equal(expectedTotal) {
		t.Fatalf("total drifted from %s to %s:\n%s",
			expectedTotal.StringFixed(2), total.StringFixed(2), spew.Sdump(finals))
	}
}
