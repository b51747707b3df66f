package checkout

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pragadeesh891/trolley/internal/payment"
	"github.com/pragadeesh891/trolley/internal/triplog"
)

// memoryLog is an in-memory triplog.Repository for tests.
type memoryLog struct {
	mu     sync.Mutex
	events []triplog.Event
}

func (m *memoryLog) Save(_ context.Context, e *triplog.Event) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.events = append(m.events, *e)
	return nil
}

func (m *memoryLog) kinds() []triplog.EventKind {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]triplog.EventKind, len(m.events))
	for i, e := range m.events {
		out[i] = e.Kind
	}
	return out
}

// fakeStep records its own lifecycle.
type fakeStep struct {
	name        string
	failOn      bool
	executed    bool
	compensated bool
}

func (s *fakeStep) Name() string { return s.name }

func (s *fakeStep) Execute(context.Context) error {
	s.executed = true
	if s.failOn {
		return errors.New("boom")
	}
	return nil
}

func (s *fakeStep) Compensate(context.Context) error {
	s.compensated = true
	return nil
}

func TestRunExecutesAllStepsInOrder(t *testing.T) {
	log := &memoryLog{}
	a := &fakeStep{name: "a"}
	b := &fakeStep{name: "b"}

	err := NewOrchestrator("s1", []Step{a, b}, log).Run(context.Background())
	require.NoError(t, err)

	assert.True(t, a.executed)
	assert.True(t, b.executed)
	assert.False(t, a.compensated)
	assert.False(t, b.compensated)

	assert.Equal(t, []triplog.EventKind{
		triplog.KindCheckoutStarted,
		triplog.KindStepDone,
		triplog.KindStepDone,
		triplog.KindCompleted,
	}, log.kinds())
}

func TestRunCompensatesEarlierStepsOnFailure(t *testing.T) {
	log := &memoryLog{}
	a := &fakeStep{name: "a"}
	b := &fakeStep{name: "b", failOn: true}
	c := &fakeStep{name: "c"}

	err := NewOrchestrator("s1", []Step{a, b, c}, log).Run(context.Background())
	require.Error(t, err)

	assert.True(t, a.compensated)
	assert.False(t, b.compensated, "the failed step itself is not compensated")
	assert.False(t, c.executed, "steps after the failure never run")

	assert.Equal(t, []triplog.EventKind{
		triplog.KindCheckoutStarted,
		triplog.KindStepDone,
		triplog.KindFailed,
		triplog.KindCompensating,
	}, log.kinds())
}

func TestRunWithNilLogDoesNotPanic(t *testing.T) {
	err := NewOrchestrator("s1", []Step{&fakeStep{name: "a"}}, nil).Run(context.Background())
	assert.NoError(t, err)
}

func TestPaymentStepChargesAndRefunds(t *testing.T) {
	provider := payment.NewInMemory(0)
	step := NewPaymentStep(provider, nil, "s1", 180)

	require.NoError(t, step.Execute(context.Background()))
	assert.NotEmpty(t, step.Intent().ID)
	assert.Equal(t, 180.0, step.Intent().Amount)

	assert.NoError(t, step.Compensate(context.Background()))
}

func TestPaymentStepDeclinedCharge(t *testing.T) {
	provider := payment.NewInMemory(500)
	step := NewPaymentStep(provider, nil, "s1", 700)

	err := step.Execute(context.Background())
	require.ErrorIs(t, err, payment.ErrDeclined)

	// No intent means compensation is a no-op.
	assert.NoError(t, step.Compensate(context.Background()))
}

func TestReceiptStepWithoutAddressIsNoop(t *testing.T) {
	step := NewReceiptStep(nil, "", nil)
	assert.NoError(t, step.Execute(context.Background()))
}
