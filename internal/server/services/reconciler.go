package services

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/dmitrijs2005/timevault/internal/logging"
	"github.com/dmitrijs2005/timevault/internal/server/oracle"
	"github.com/robfig/cron/v3"
)

// ReconcileResult counts what one reconciliation pass did.
type ReconcileResult struct {
	Registered int `json:"registered"`
	Expired    int `json:"expired"`
	Failed     int `json:"failed"`
}

// ReconcilePending retries oracle registration for pending uploads with
// whatever is left of their window. Uploads whose window already closed are
// evicted instead. A handle the oracle already holds a window for was
// registered by an earlier attempt whose reply was lost, so it only needs
// its status updated.
func (s *GatewayService) ReconcilePending(ctx context.Context) (*ReconcileResult, error) {
	custody := s.repomanager.Custody(s.custodyDB())

	pending, err := custody.ListPending(ctx)
	if err != nil {
		return nil, fmt.Errorf("list pending: %w", err)
	}

	res := &ReconcileResult{}
	for _, obj := range pending {
		remaining := obj.ExpiresAt().Sub(s.clock.Now()).Truncate(time.Second)
		if remaining < time.Second {
			if err := s.evict(ctx, obj.Handle); err != nil {
				s.log.Error(ctx, "failed to evict expired pending upload", "handle", obj.Handle, "error", err)
				res.Failed++
				continue
			}
			res.Expired++
			continue
		}

		err := s.oracle.Register(ctx, obj.Handle, remaining)
		if errors.Is(err, oracle.ErrAlreadyRegistered) {
			s.log.Info(ctx, "oracle already holds window", "handle", obj.Handle)
			err = nil
		}
		if err != nil {
			s.log.Warn(ctx, "registration retry failed", "handle", obj.Handle, "error", err)
			res.Failed++
			continue
		}
		if err := custody.MarkRegistered(ctx, obj.Handle); err != nil {
			s.log.Error(ctx, "registered with oracle but status not updated", "handle", obj.Handle, "error", err)
			res.Failed++
			continue
		}
		res.Registered++
	}

	if len(pending) > 0 {
		s.log.Info(ctx, "reconciliation finished", "registered", res.Registered, "expired", res.Expired, "failed", res.Failed)
	}
	return res, nil
}

// Reconciler runs ReconcilePending on a cron schedule. Passes never overlap.
type Reconciler struct {
	gateway  *GatewayService
	schedule string
	log      logging.Logger
	mu       sync.Mutex
}

func NewReconciler(gateway *GatewayService, schedule string, log logging.Logger) *Reconciler {
	return &Reconciler{gateway: gateway, schedule: schedule, log: log.With("module", "reconciler")}
}

// RunOnce performs a single pass unless one is already running.
func (r *Reconciler) RunOnce(ctx context.Context) (*ReconcileResult, bool, error) {
	if !r.mu.TryLock() {
		return nil, false, nil
	}
	defer r.mu.Unlock()

	res, err := r.gateway.ReconcilePending(ctx)
	return res, true, err
}

// Run blocks until ctx is cancelled, firing a pass on every tick of the
// schedule.
func (r *Reconciler) Run(ctx context.Context) error {
	c := cron.New()
	_, err := c.AddFunc(r.schedule, func() {
		if _, _, err := r.RunOnce(ctx); err != nil {
			r.log.Error(ctx, "reconciliation failed", "error", err)
		}
	})
	if err != nil {
		return fmt.Errorf("reconcile schedule %q: %w", r.schedule, err)
	}

	c.Start()
	r.log.Info(ctx, "reconciler started", "schedule", r.schedule)

	<-ctx.Done()
	<-c.Stop().Done()

	r.log.Info(ctx, "reconciler stopped")
	return nil
}
