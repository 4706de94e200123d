package services

import (
	"context"
	"crypto/rand"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/dmitrijs2005/timevault/internal/logging"
	"github.com/dmitrijs2005/timevault/internal/server/blob"
	"github.com/dmitrijs2005/timevault/internal/server/config"
	"github.com/dmitrijs2005/timevault/internal/server/models"
	"github.com/dmitrijs2005/timevault/internal/server/oracle"
	"github.com/dmitrijs2005/timevault/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/timevault/internal/server/repositories/tokens"
	"github.com/dmitrijs2005/timevault/internal/timex"
	"github.com/stretchr/testify/require"
)

var testStart = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

// switchOracle grants or denies everything according to a flag and can be
// told to fail.
type switchOracle struct {
	grant       atomic.Bool
	mu          sync.Mutex
	checkErr    error
	registerErr error
	registered  map[string]time.Duration
}

func newSwitchOracle(grant bool) *switchOracle {
	o := &switchOracle{registered: map[string]time.Duration{}}
	o.grant.Store(grant)
	return o
}

func (o *switchOracle) Register(_ context.Context, handle string, d time.Duration) error {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.registerErr != nil {
		return o.registerErr
	}
	o.registered[handle] = d
	return nil
}

func (o *switchOracle) Check(_ context.Context, handle string) (bool, error) {
	o.mu.Lock()
	err := o.checkErr
	o.mu.Unlock()
	if err != nil {
		return false, err
	}
	return o.grant.Load(), nil
}

func (o *switchOracle) failChecks(err error) {
	o.mu.Lock()
	o.checkErr = err
	o.mu.Unlock()
}

// faultyBlobs wraps a blob repository with injectable failures.
type faultyBlobs struct {
	blob.Repository
	deleteErr error
	tamper    bool
}

func (f *faultyBlobs) Get(ctx context.Context, handle string) ([]byte, error) {
	b, err := f.Repository.Get(ctx, handle)
	if err != nil || !f.tamper {
		return b, err
	}
	b[len(b)-1] ^= 0xff
	return b, nil
}

func (f *faultyBlobs) Delete(ctx context.Context, handle string) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	return f.Repository.Delete(ctx, handle)
}

type gatewayFixture struct {
	svc   *GatewayService
	repos *repomanager.MemoryRepositoryManager
	blobs *faultyBlobs
	clock *timex.ManualClock
}

func (f *gatewayFixture) tokens() *tokens.MemoryRepository {
	return f.repos.Tokens(nil).(*tokens.MemoryRepository)
}

func newFixture(t *testing.T, o oracle.Oracle, mutate func(*config.Config)) *gatewayFixture {
	t.Helper()

	cfg := &config.Config{}
	cfg.LoadDefaults()
	if mutate != nil {
		mutate(cfg)
	}

	clock := timex.NewManualClock(testStart)
	if o == nil {
		o = oracle.NewLedgerOracle(clock)
	}

	repos := repomanager.NewMemoryRepositoryManager()
	blobs := &faultyBlobs{Repository: blob.NewMemoryRepository()}

	return &gatewayFixture{
		svc:   NewGatewayService(nil, repos, blobs, o, cfg, clock, logging.Nop()),
		repos: repos,
		blobs: blobs,
		clock: clock,
	}
}

func randomBytes(t *testing.T, n int) []byte {
	t.Helper()
	b := make([]byte, n)
	_, err := rand.Read(b)
	require.NoError(t, err)
	return b
}

func upload(t *testing.T, f *gatewayFixture, data []byte, d time.Duration) string {
	t.Helper()
	rec, err := f.svc.Upload(context.Background(), &models.UploadRequest{
		Data:        data,
		FileName:    "notes.txt",
		ContentType: "text/plain",
		Duration:    d,
	})
	require.NoError(t, err)
	return rec.Handle
}

var errBoom = errors.New("boom")
