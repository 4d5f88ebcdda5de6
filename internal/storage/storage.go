package storage

import (
	"context"
	"database/sql"
	"log"

	_ "github.com/lib/pq"
	"github.com/stephenafamo/bob"

	"github.com/carson-networks/transfer-server/internal/config"
	"github.com/carson-networks/transfer-server/internal/storage/account"
	"github.com/carson-networks/transfer-server/internal/storage/ledger"
	"github.com/carson-networks/transfer-server/internal/storage/session"
)

type Storage struct {
	DB       bob.DB
	Accounts *account.Reader
	Ledger   *ledger.Reader
	Sessions *session.Reader
}

func NewStorage(env *config.Config) *Storage {
	connStr := "postgres://" + env.PostgresUsername + ":" +
		env.PostgresPassword + "@" + env.PostgresAddress + ":" +
		env.PostgresPort + "/" + env.PostgresDB + "?sslmode=disable"

	db, err := sql.Open("postgres", connStr)
	if err != nil {
		log.Fatal(err)
	}

	bdb := bob.NewDB(db)
	return &Storage{
		DB:       bdb,
		Accounts: account.NewReader(bdb),
		Ledger:   ledger.NewReader(bdb),
		Sessions: session.NewReader(bdb),
	}
}

// Write opens a transaction-scoped writer. All mutations of one transfer
// commit go through a single Writer so they land atomically.
func (s *Storage) Write(ctx context.Context) (*Writer, error) {
	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	writer := NewWriter(tx)
	return &writer, nil
}
