package oracle

import (
	"context"
	"sync"
	"time"

	"github.com/dmitrijs2005/timevault/internal/common"
	"github.com/dmitrijs2005/timevault/internal/timex"
)

type window struct {
	registeredAt time.Time
	duration     time.Duration
}

// LedgerOracle keeps windows in process memory against a local clock.
// Access is allowed while now < registeredAt + duration.
type LedgerOracle struct {
	clock   timex.Clock
	mu      sync.RWMutex
	windows map[string]window
}

func NewLedgerOracle(clock timex.Clock) *LedgerOracle {
	if clock == nil {
		clock = timex.SystemClock{}
	}
	return &LedgerOracle{clock: clock, windows: make(map[string]window)}
}

func (o *LedgerOracle) Register(_ context.Context, handle string, duration time.Duration) error {
	if handle == "" || duration <= 0 {
		return common.ErrInvalidRequest
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	if _, ok := o.windows[handle]; ok {
		return ErrAlreadyRegistered
	}
	o.windows[handle] = window{registeredAt: o.clock.Now(), duration: duration}
	return nil
}

func (o *LedgerOracle) Check(_ context.Context, handle string) (bool, error) {
	o.mu.RLock()
	w, ok := o.windows[handle]
	o.mu.RUnlock()

	if !ok {
		return false, nil
	}
	return o.clock.Now().Before(w.registeredAt.Add(w.duration)), nil
}
