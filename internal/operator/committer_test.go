package operator

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"

	"github.com/carson-networks/transfer-server/internal/transfer"
)

func TestTranslateTxError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want error
	}{
		{name: "nil passes through", err: nil, want: nil},
		{name: "deadlock becomes stale version", err: &pq.Error{Code: "40P01"}, want: transfer.ErrStaleVersion},
		{name: "serialization failure becomes stale version", err: &pq.Error{Code: "40001"}, want: transfer.ErrStaleVersion},
		{name: "wrapped deadlock becomes stale version", err: fmt.Errorf("commit: %w", &pq.Error{Code: "40P01"}), want: transfer.ErrStaleVersion},
		{name: "other sql state passes through", err: &pq.Error{Code: "23505"}, want: &pq.Error{Code: "23505"}},
		{name: "stale version passes through", err: transfer.ErrStaleVersion, want: transfer.ErrStaleVersion},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, translateTxError(tt.err))
		})
	}
}

func TestProcessItem_ExpiredWaiterDoesNotStartCommit(t *testing.T) {
	// Nil storage: touching it would panic, so completing without one
	// proves the item was refused before any transaction began.
	op := NewOperator(nil, nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	response := make(chan ActionItemResponse, 1)
	op.processItem(ActionItem{ctx: ctx, response: response})

	resp := <-response
	assert.True(t, errors.Is(resp.err, context.Canceled))
}
