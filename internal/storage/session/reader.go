package session

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/scan"

	"github.com/carson-networks/transfer-server/internal/auth"
)

// row mirrors the sessions table. Tokens are stored only as SHA-256 hashes.
type row struct {
	TokenHash string    `db:"token_hash"`
	AccountID uuid.UUID `db:"account_id"`
	Role      int16     `db:"role"`
	ExpiresAt time.Time `db:"expires_at"`
}

type Reader struct {
	exec bob.Executor
}

func NewReader(exec bob.Executor) *Reader {
	return &Reader{exec: exec}
}

// Lookup resolves a hashed bearer token to its session.
func (r *Reader) Lookup(ctx context.Context, tokenHash string) (*auth.Session, error) {
	query := psql.Select(
		sm.Columns("token_hash", "account_id", "role", "expires_at"),
		sm.From("sessions"),
		sm.Where(psql.Quote("token_hash").EQ(psql.Arg(tokenHash))),
	)

	result, err := bob.One(ctx, r.exec, query, scan.StructMapper[row]())
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, auth.ErrNoSession
		}
		return nil, err
	}

	return &auth.Session{
		TokenHash: result.TokenHash,
		AccountID: result.AccountID,
		Role:      auth.Role(result.Role),
		ExpiresAt: result.ExpiresAt,
	}, nil
}

var _ auth.SessionStore = (*Reader)(nil)
