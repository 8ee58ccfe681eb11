package models

import (
	"database/sql/driver"
	"encoding/json"
	"time"
)

// ChallengeType is the product family of a challenge
type ChallengeType string

const (
	ChallengeTypeStandard ChallengeType = "standard"
	ChallengeTypeSwing    ChallengeType = "swing"
	ChallengeTypeNews     ChallengeType = "news"
)

// Valid reports whether t is a challenge type the ledger can store
func (t ChallengeType) Valid() bool {
	switch t {
	case ChallengeTypeStandard, ChallengeTypeSwing, ChallengeTypeNews:
		return true
	}
	return false
}

// ChallengeStatus tracks trading-evaluation progress
type ChallengeStatus string

const (
	ChallengeStatusPending       ChallengeStatus = "pending"
	ChallengeStatusActive        ChallengeStatus = "active"
	ChallengeStatusCompleted     ChallengeStatus = "completed"
	ChallengeStatusFailed        ChallengeStatus = "failed"
	ChallengeStatusPaymentFailed ChallengeStatus = "payment_failed"
)

// Valid reports whether s is a known status
func (s ChallengeStatus) Valid() bool {
	switch s {
	case ChallengeStatusPending, ChallengeStatusActive, ChallengeStatusCompleted,
		ChallengeStatusFailed, ChallengeStatusPaymentFailed:
		return true
	}
	return false
}

// IsTerminal reports whether no further transition may leave s
func (s ChallengeStatus) IsTerminal() bool {
	switch s {
	case ChallengeStatusCompleted, ChallengeStatusFailed, ChallengeStatusPaymentFailed:
		return true
	}
	return false
}

// PaymentStatus tracks payment settlement of a challenge
type PaymentStatus string

const (
	PaymentStatusPending PaymentStatus = "pending"
	PaymentStatusPaid    PaymentStatus = "paid"
	PaymentStatusFailed  PaymentStatus = "failed"
)

// ChallengeRules is the rule set a challenge was purchased under
type ChallengeRules struct {
	ProfitTarget       float64 `json:"profitTarget"`
	MaxDailyDrawdown   float64 `json:"maxDailyDrawdown"`
	MaxOverallDrawdown float64 `json:"maxOverallDrawdown"`
	Phase1Duration     int     `json:"phase1Duration"`
	Phase2Duration     int     `json:"phase2Duration"`
	OvernightHolding   bool    `json:"overnightHolding,omitempty"`
	NewsTrading        bool    `json:"newsTrading,omitempty"`
}

// Value implements driver.Valuer
func (r ChallengeRules) Value() (driver.Value, error) {
	return json.Marshal(r)
}

// Scan implements sql.Scanner
func (r *ChallengeRules) Scan(src interface{}) error {
	return scanJSON(src, r)
}

// ChallengeMetrics is the progress block of a challenge
type ChallengeMetrics struct {
	CurrentDrawdown  float64 `json:"currentDrawdown"`
	MaxDailyDrawdown float64 `json:"maxDailyDrawdown"`
	TotalProfit      float64 `json:"totalProfit"`
	TradingDays      int     `json:"tradingDays"`
}

// Value implements driver.Valuer
func (m ChallengeMetrics) Value() (driver.Value, error) {
	return json.Marshal(m)
}

// Scan implements sql.Scanner
func (m *ChallengeMetrics) Scan(src interface{}) error {
	return scanJSON(src, m)
}

// Challenge is a purchased trading evaluation
type Challenge struct {
	ID              string           `json:"id" db:"id"`
	UserID          string           `json:"userId" db:"user_id"`
	Type            ChallengeType    `json:"type" db:"type"`
	AccountSize     int              `json:"accountSize" db:"account_size"`
	Amount          int              `json:"amount" db:"amount"`
	Status          ChallengeStatus  `json:"status" db:"status"`
	PaymentStatus   PaymentStatus    `json:"paymentStatus" db:"payment_status"`
	PaymentIntentID *string          `json:"paymentIntentId,omitempty" db:"payment_intent_id"`
	Phase           int              `json:"phase" db:"phase"`
	Rules           ChallengeRules   `json:"rules" db:"rules"`
	Metrics         ChallengeMetrics `json:"metrics" db:"metrics"`
	CreatedAt       time.Time        `json:"createdAt" db:"created_at"`
	UpdatedAt       time.Time        `json:"updatedAt" db:"updated_at"`
}

// PurchaseRequest is the body of POST /challenges/purchase
type PurchaseRequest struct {
	Type        ChallengeType `json:"type"`
	AccountSize int           `json:"accountSize"`
}

// PurchaseResponse carries what the client needs to confirm the payment
type PurchaseResponse struct {
	ChallengeID  string `json:"challengeId"`
	ClientSecret string `json:"clientSecret"`
}

// StatusUpdateRequest is the body of PUT /challenges/:id/status
type StatusUpdateRequest struct {
	Status  ChallengeStatus   `json:"status"`
	Metrics *ChallengeMetrics `json:"metrics,omitempty"`
}

// ChallengeTransition describes a conditional status change: the row moves to
// To/PaymentStatus only while its status is one of From.
type ChallengeTransition struct {
	ChallengeID   string
	From          []ChallengeStatus
	To            ChallengeStatus
	PaymentStatus PaymentStatus
}
