package usecase

import (
	"context"
	"sync"

	"github.com/pioneer-funding/server/internal/pkg/apperror"
	"github.com/pioneer-funding/server/internal/pkg/models"
)

// memLedger is an in-memory LifecycleRepo with the same conditional update
// semantics as the SQL ledger
type memLedger struct {
	mu             sync.Mutex
	challenges     map[string]*models.Challenge
	transactions   map[string]*models.Transaction // by payment intent id
	userChallenges map[string][]string
	txnTransitions int
}

func newMemLedger() *memLedger {
	return &memLedger{
		challenges:     map[string]*models.Challenge{},
		transactions:   map[string]*models.Transaction{},
		userChallenges: map[string][]string{},
	}
}

func (m *memLedger) CreateChallenge(ctx context.Context, challenge *models.Challenge) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	c := *challenge
	m.challenges[c.ID] = &c
	return nil
}

func (m *memLedger) GetChallenge(ctx context.Context, id string) (*models.Challenge, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	c, ok := m.challenges[id]
	if !ok {
		return nil, apperror.ErrNotFound
	}
	cp := *c
	return &cp, nil
}

func (m *memLedger) DiscardChallenge(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if c, ok := m.challenges[id]; ok && c.Status == models.ChallengeStatusPending && c.PaymentIntentID == nil {
		delete(m.challenges, id)
	}
	return nil
}

func (m *memLedger) AttachPaymentIntent(ctx context.Context, challengeID string, txn *models.Transaction) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	c, ok := m.challenges[challengeID]
	if !ok || c.Status != models.ChallengeStatusPending {
		return apperror.ErrConflict
	}
	id := txn.PaymentIntentID
	c.PaymentIntentID = &id
	if _, exists := m.transactions[id]; !exists {
		t := *txn
		m.transactions[id] = &t
	}
	return nil
}

func (m *memLedger) TransitionChallenge(ctx context.Context, t models.ChallengeTransition) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	c, ok := m.challenges[t.ChallengeID]
	if !ok {
		return false, nil
	}
	for _, from := range t.From {
		if c.Status == from {
			c.Status = t.To
			c.PaymentStatus = t.PaymentStatus
			return true, nil
		}
	}
	return false, nil
}

func (m *memLedger) SetChallengeStatus(ctx context.Context, id string, expected, status models.ChallengeStatus, metrics *models.ChallengeMetrics) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	c, ok := m.challenges[id]
	if !ok || c.Status != expected {
		return false, nil
	}
	c.Status = status
	if metrics != nil {
		c.Metrics = *metrics
	}
	return true, nil
}

func (m *memLedger) TransitionTransaction(ctx context.Context, paymentIntentID string, status models.TransactionStatus) (*models.TransitionResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	t, ok := m.transactions[paymentIntentID]
	if !ok {
		return nil, apperror.ErrNotFound
	}
	applied := false
	if t.Status == models.TransactionStatusPending {
		t.Status = status
		applied = true
		m.txnTransitions++
	}
	cp := *t
	return &models.TransitionResult{Transaction: &cp, Applied: applied}, nil
}

func (m *memLedger) AddUserChallenge(ctx context.Context, userID, challengeID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, id := range m.userChallenges[userID] {
		if id == challengeID {
			return nil
		}
	}
	m.userChallenges[userID] = append(m.userChallenges[userID], challengeID)
	return nil
}
