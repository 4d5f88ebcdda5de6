package auth

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"strings"
	"time"

	"github.com/gofrs/uuid/v5"
)

// Role is the caller's access level. Admin is the only elevated capability:
// an admin may view or act on any account.
type Role int8

const (
	RoleUser Role = iota
	RoleAdmin
)

// Identity is a server-verified caller. It is only ever produced by the
// Guard from a stored session; no field of it comes from request data.
type Identity struct {
	AccountID uuid.UUID
	Role      Role
}

// Session is a server-side credential artifact: an opaque bearer token,
// stored by hash, mapped to the identity it was issued for.
type Session struct {
	TokenHash string
	AccountID uuid.UUID
	Role      Role
	ExpiresAt time.Time
}

// ErrNoSession is returned by SessionStore implementations when the token
// hash has no live session.
var ErrNoSession = errors.New("no session for token")

// SessionStore resolves a hashed bearer token to a stored session.
//
//go:generate mockery --name SessionStore --output mock_SessionStore.go
type SessionStore interface {
	Lookup(ctx context.Context, tokenHash string) (*Session, error)
}

// Guard answers the two authorization questions the transfer core needs:
// who is calling, and may they act as a given account.
type Guard struct {
	sessions SessionStore
	now      func() time.Time
}

func NewGuard(sessions SessionStore) *Guard {
	return &Guard{
		sessions: sessions,
		now:      time.Now,
	}
}

// Identity resolves a bearer credential ("Bearer <token>" or a bare token)
// to a verified identity. The token is never compared in plain text; only
// its SHA-256 hash is looked up server side.
func (g *Guard) Identity(ctx context.Context, credential string) (*Identity, error) {
	token := strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(credential), "Bearer "))
	if token == "" {
		return nil, ErrNoSession
	}

	session, err := g.sessions.Lookup(ctx, HashToken(token))
	if err != nil {
		return nil, err
	}
	if !session.ExpiresAt.IsZero() && !g.now().Before(session.ExpiresAt) {
		return nil, ErrNoSession
	}

	return &Identity{
		AccountID: session.AccountID,
		Role:      session.Role,
	}, nil
}

// IsOwnerOrAdmin reports whether the identity may act as the given account.
// It is a pure comparison against verified identity state, so it can run
// before any account lookup and leaks nothing about the target.
func (g *Guard) IsOwnerOrAdmin(ident Identity, accountID uuid.UUID) bool {
	if ident.Role == RoleAdmin {
		return true
	}
	return ident.AccountID == accountID
}

// HashToken derives the storage key for a bearer token.
func HashToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}
