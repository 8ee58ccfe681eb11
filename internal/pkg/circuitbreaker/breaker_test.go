package circuitbreaker

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errDown = errors.New("processor down")

type clock struct{ t time.Time }

func (c *clock) now() time.Time { return c.t }

func newTestBreaker(cfg Config) (*CircuitBreaker, *clock) {
	clk := &clock{t: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
	cb := New(cfg)
	cb.now = clk.now
	return cb, clk
}

func fail(context.Context) error    { return errDown }
func succeed(context.Context) error { return nil }

func TestCircuitBreaker_OpensAfterThreshold(t *testing.T) {
	cb, _ := newTestBreaker(Config{Name: "test", FailureThreshold: 3, Cooldown: time.Minute})

	for i := 0; i < 3; i++ {
		assert.ErrorIs(t, cb.Execute(context.Background(), fail), errDown)
	}
	assert.Equal(t, StateOpen, cb.State())

	calls := 0
	err := cb.Execute(context.Background(), func(context.Context) error {
		calls++
		return nil
	})
	assert.ErrorIs(t, err, ErrOpen)
	assert.Zero(t, calls)
}

func TestCircuitBreaker_SuccessResetsFailureCount(t *testing.T) {
	cb, _ := newTestBreaker(Config{Name: "test", FailureThreshold: 2})

	require.Error(t, cb.Execute(context.Background(), fail))
	require.NoError(t, cb.Execute(context.Background(), succeed))
	require.Error(t, cb.Execute(context.Background(), fail))

	assert.Equal(t, StateClosed, cb.State())
}

func TestCircuitBreaker_HalfOpen(t *testing.T) {
	tests := []struct {
		name      string
		trial     func(context.Context) error
		wantState State
	}{
		{"trial success closes", succeed, StateClosed},
		{"trial failure reopens", fail, StateOpen},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var transitions []State
			cb, clk := newTestBreaker(Config{
				Name:             "test",
				FailureThreshold: 1,
				Cooldown:         time.Minute,
				OnStateChange:    func(_ string, _, to State) { transitions = append(transitions, to) },
			})

			require.Error(t, cb.Execute(context.Background(), fail))
			clk.t = clk.t.Add(time.Minute)

			_ = cb.Execute(context.Background(), tt.trial)

			assert.Equal(t, tt.wantState, cb.State())
			assert.Equal(t, []State{StateOpen, StateHalfOpen, tt.wantState}, transitions)
		})
	}
}

func TestCircuitBreaker_LimitsTrialCalls(t *testing.T) {
	cb, clk := newTestBreaker(Config{Name: "test", FailureThreshold: 1, Cooldown: time.Second})
	require.Error(t, cb.Execute(context.Background(), fail))
	clk.t = clk.t.Add(time.Second)

	err := cb.Execute(context.Background(), func(ctx context.Context) error {
		// second caller arrives while the trial is still running
		assert.ErrorIs(t, cb.Execute(ctx, succeed), ErrTooManyTrials)
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, StateClosed, cb.State())
}

func TestCircuitBreaker_IgnoresNonFailures(t *testing.T) {
	declined := errors.New("card declined")
	cb, _ := newTestBreaker(Config{
		Name:             "test",
		FailureThreshold: 1,
		IsFailure:        func(err error) bool { return err != nil && !errors.Is(err, declined) },
	})

	assert.ErrorIs(t, cb.Execute(context.Background(), func(context.Context) error { return declined }), declined)
	assert.Equal(t, StateClosed, cb.State())
}

func TestNew_Defaults(t *testing.T) {
	cb := New(Config{Name: "stripe"})

	assert.Equal(t, "stripe", cb.Name())
	assert.Equal(t, uint32(5), cb.config.FailureThreshold)
	assert.Equal(t, 30*time.Second, cb.config.Cooldown)
	assert.Equal(t, uint32(1), cb.config.MaxTrials)
	assert.Equal(t, "half_open", StateHalfOpen.String())
}
