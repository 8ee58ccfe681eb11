package repository

import (
	"github.com/jmoiron/sqlx"
)

// AuthRepo implements the identity provider storage on PostgreSQL
type AuthRepo struct {
	db *sqlx.DB
}

// NewAuthRepository creates a new identity repository
func NewAuthRepository(db *sqlx.DB) *AuthRepo {
	return &AuthRepo{db: db}
}
