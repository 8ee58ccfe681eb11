package models

import (
	"time"
)

// TransactionStatus is the settlement state of a payment attempt
type TransactionStatus string

const (
	TransactionStatusPending   TransactionStatus = "pending"
	TransactionStatusCompleted TransactionStatus = "completed"
	TransactionStatusFailed    TransactionStatus = "failed"
)

// IsTerminal reports whether the transaction was already settled
func (s TransactionStatus) IsTerminal() bool {
	return s == TransactionStatusCompleted || s == TransactionStatusFailed
}

// Transaction represents a payment attempt correlated to a payment intent
type Transaction struct {
	ID              string            `json:"id" db:"id"`
	UserID          string            `json:"userId" db:"user_id"`
	ChallengeID     *string           `json:"challengeId,omitempty" db:"challenge_id"`
	Amount          int               `json:"amount" db:"amount"`
	PaymentIntentID string            `json:"paymentIntentId" db:"payment_intent_id"`
	Status          TransactionStatus `json:"status" db:"status"`
	CreatedAt       time.Time         `json:"createdAt" db:"created_at"`
	UpdatedAt       time.Time         `json:"updatedAt" db:"updated_at"`
}

// TransitionResult reports what a conditional transaction update did
type TransitionResult struct {
	Transaction *Transaction
	// Applied is true when this call moved the row out of pending
	Applied bool
}

// Pagination is the page block of a paginated listing
type Pagination struct {
	Total int `json:"total"`
	Page  int `json:"page"`
	Limit int `json:"limit"`
	Pages int `json:"pages"`
}

// TransactionPage is a page of a user's transaction history
type TransactionPage struct {
	Transactions []Transaction `json:"transactions"`
	Pagination   Pagination    `json:"pagination"`
}
