package circuitbreaker

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func newTestBreaker(threshold int, cooldown time.Duration) (*Breaker, *time.Time) {
	clock := time.Date(2024, 1, 25, 12, 0, 0, 0, time.UTC)
	b := New(threshold, cooldown)
	b.now = func() time.Time { return clock }
	return b, &clock
}

func TestBreakerOpensAfterThreshold(t *testing.T) {
	b, _ := newTestBreaker(2, time.Minute)

	assert.True(t, b.Allow())
	b.Failure()
	assert.Equal(t, StateClosed, b.State())

	assert.True(t, b.Allow())
	b.Failure()
	assert.Equal(t, StateOpen, b.State())
	assert.False(t, b.Allow())
}

func TestBreakerSuccessResetsFailures(t *testing.T) {
	b, _ := newTestBreaker(2, time.Minute)

	b.Failure()
	b.Success()
	b.Failure()
	assert.Equal(t, StateClosed, b.State())
}

func TestBreakerHalfOpenTrial(t *testing.T) {
	b, clock := newTestBreaker(1, time.Minute)

	b.Failure()
	assert.False(t, b.Allow())

	*clock = clock.Add(2 * time.Minute)
	assert.True(t, b.Allow(), "first call after cooldown is the trial")
	assert.Equal(t, StateHalfOpen, b.State())
	assert.False(t, b.Allow(), "only one trial at a time")

	b.Success()
	assert.Equal(t, StateClosed, b.State())
	assert.True(t, b.Allow())
}

func TestBreakerHalfOpenFailureReopens(t *testing.T) {
	b, clock := newTestBreaker(1, time.Minute)
	var transitions []State
	b.OnStateChange(func(_, to State) { transitions = append(transitions, to) })

	b.Failure()
	*clock = clock.Add(2 * time.Minute)
	assert.True(t, b.Allow())
	b.Failure()

	assert.Equal(t, StateOpen, b.State())
	assert.Equal(t, []State{StateOpen, StateHalfOpen, StateOpen}, transitions)
}
