// Package ledger persists users, challenges and transactions in PostgreSQL.
//
// Status changes are conditional updates on the status the caller expects, so
// concurrent writers and redelivered events cannot clobber each other.
package ledger

import (
	"github.com/jmoiron/sqlx"
	"github.com/pioneer-funding/server/internal/pkg/database"
)

// Store is the sqlx backed ledger
type Store struct {
	db *sqlx.DB
}

// NewStore creates a new ledger store
func NewStore(db *sqlx.DB) *Store {
	return &Store{db: db}
}

var wrap = database.WrapError
