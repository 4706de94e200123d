package services

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/dmitrijs2005/timevault/internal/common"
	"github.com/dmitrijs2005/timevault/internal/logging"
	"github.com/dmitrijs2005/timevault/internal/server/config"
	"github.com/dmitrijs2005/timevault/internal/server/models"
	"github.com/dmitrijs2005/timevault/internal/server/oracle"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pendingFixture(t *testing.T) (*gatewayFixture, *switchOracle) {
	t.Helper()
	o := newSwitchOracle(true)
	o.registerErr = errBoom
	f := newFixture(t, o, func(c *config.Config) { c.RollbackOnRegistrationFailure = false })
	return f, o
}

func TestReconcilePending_RegistersRemainingWindow(t *testing.T) {
	f, o := pendingFixture(t)
	ctx := context.Background()

	_, err := f.svc.Upload(ctx, &models.UploadRequest{Data: []byte("x"), Duration: 10 * time.Minute})
	require.ErrorIs(t, err, common.ErrRegistrationIncomplete)

	f.clock.Advance(4*time.Minute + 500*time.Millisecond)
	o.mu.Lock()
	o.registerErr = nil
	o.mu.Unlock()

	res, err := f.svc.ReconcilePending(ctx)
	require.NoError(t, err)
	assert.Equal(t, &ReconcileResult{Registered: 1}, res)

	pending, _ := f.repos.Custody(nil).ListPending(ctx)
	assert.Empty(t, pending)

	o.mu.Lock()
	defer o.mu.Unlock()
	require.Len(t, o.registered, 1)
	for _, d := range o.registered {
		assert.Equal(t, 5*time.Minute+59*time.Second, d)
	}
}

func TestReconcilePending_EvictsClosedWindows(t *testing.T) {
	f, _ := pendingFixture(t)
	ctx := context.Background()

	_, err := f.svc.Upload(ctx, &models.UploadRequest{Data: []byte("x"), Duration: time.Minute})
	require.ErrorIs(t, err, common.ErrRegistrationIncomplete)

	f.clock.Advance(time.Minute)

	res, err := f.svc.ReconcilePending(ctx)
	require.NoError(t, err)
	assert.Equal(t, &ReconcileResult{Expired: 1}, res)

	pending, _ := f.repos.Custody(nil).ListPending(ctx)
	assert.Empty(t, pending)
}

// lostReplyOracle commits the registration and then reports a failure, as
// when the oracle's reply never reaches the gateway.
type lostReplyOracle struct {
	oracle.Oracle
	lost bool
}

func (o *lostReplyOracle) Register(ctx context.Context, handle string, d time.Duration) error {
	if err := o.Oracle.Register(ctx, handle, d); err != nil {
		return err
	}
	if o.lost {
		return errBoom
	}
	return nil
}

func TestReconcilePending_AdoptsWindowFromLostReply(t *testing.T) {
	o := &lostReplyOracle{lost: true}
	f := newFixture(t, o, func(c *config.Config) { c.RollbackOnRegistrationFailure = false })
	inner := oracle.NewLedgerOracle(f.clock)
	o.Oracle = oracle.NewGuard(inner, oracle.GuardOptions{Backoff: time.Millisecond}, logging.Nop())
	ctx := context.Background()

	_, err := f.svc.Upload(ctx, &models.UploadRequest{Data: []byte("secret"), Duration: time.Hour})
	require.ErrorIs(t, err, common.ErrRegistrationIncomplete)

	pending, _ := f.repos.Custody(nil).ListPending(ctx)
	require.Len(t, pending, 1)
	handle := pending[0].Handle

	ok, err := inner.Check(ctx, handle)
	require.NoError(t, err)
	require.True(t, ok)

	_, err = f.svc.Retrieve(ctx, handle)
	require.ErrorIs(t, err, common.ErrRegistrationIncomplete)

	res, err := f.svc.ReconcilePending(ctx)
	require.NoError(t, err)
	assert.Equal(t, &ReconcileResult{Registered: 1}, res)

	res, err = f.svc.ReconcilePending(ctx)
	require.NoError(t, err)
	assert.Equal(t, &ReconcileResult{}, res)

	pending, _ = f.repos.Custody(nil).ListPending(ctx)
	assert.Empty(t, pending)

	got, err := f.svc.Retrieve(ctx, handle)
	require.NoError(t, err)
	assert.Equal(t, []byte("secret"), got.Data)
}

func TestReconcilePending_AlreadyRegisteredCountsAsRegistered(t *testing.T) {
	f, o := pendingFixture(t)
	ctx := context.Background()

	_, err := f.svc.Upload(ctx, &models.UploadRequest{Data: []byte("x"), Duration: time.Hour})
	require.ErrorIs(t, err, common.ErrRegistrationIncomplete)

	o.mu.Lock()
	o.registerErr = fmt.Errorf("%w: register: %w", common.ErrOracleUnavailable, oracle.ErrAlreadyRegistered)
	o.mu.Unlock()

	res, err := f.svc.ReconcilePending(ctx)
	require.NoError(t, err)
	assert.Equal(t, &ReconcileResult{Registered: 1}, res)

	pending, _ := f.repos.Custody(nil).ListPending(ctx)
	assert.Empty(t, pending)
}

func TestReconcilePending_CountsFailures(t *testing.T) {
	f, _ := pendingFixture(t)
	ctx := context.Background()

	_, err := f.svc.Upload(ctx, &models.UploadRequest{Data: []byte("x"), Duration: time.Hour})
	require.ErrorIs(t, err, common.ErrRegistrationIncomplete)

	res, err := f.svc.ReconcilePending(ctx)
	require.NoError(t, err)
	assert.Equal(t, &ReconcileResult{Failed: 1}, res)

	pending, _ := f.repos.Custody(nil).ListPending(ctx)
	assert.Len(t, pending, 1)
}

func TestReconciler_RunOnceSkipsWhenBusy(t *testing.T) {
	f, _ := pendingFixture(t)
	r := NewReconciler(f.svc, "@every 1m", logging.Nop())

	r.mu.Lock()
	_, ran, err := r.RunOnce(context.Background())
	r.mu.Unlock()
	assert.NoError(t, err)
	assert.False(t, ran)

	res, ran, err := r.RunOnce(context.Background())
	require.NoError(t, err)
	assert.True(t, ran)
	assert.Equal(t, &ReconcileResult{}, res)
}

func TestReconciler_RunStopsOnCancel(t *testing.T) {
	f, _ := pendingFixture(t)
	r := NewReconciler(f.svc, "@every 1h", logging.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- r.Run(ctx) }()

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("reconciler did not stop")
	}
}

func TestReconciler_BadSchedule(t *testing.T) {
	f, _ := pendingFixture(t)
	r := NewReconciler(f.svc, "not a schedule", logging.Nop())

	err := r.Run(context.Background())
	assert.ErrorContains(t, err, "reconcile schedule")
}
