package oracle

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/dmitrijs2005/timevault/internal/common"
)

// DefaultDrandURL is the quicknet HTTP relay.
const DefaultDrandURL = "https://api.drand.sh/52db9ba70e0cc0f6eaf7803dd07447a1f5477735fd3f661792ba94600c84e971"

// HTTPDoer is satisfied by *http.Client.
type HTTPDoer interface {
	Do(*http.Request) (*http.Response, error)
}

type drandInfo struct {
	Period      int64 `json:"period"`
	GenesisTime int64 `json:"genesis_time"`
}

type drandLatest struct {
	Round uint64 `json:"round"`
}

// DrandOracle measures windows in drand beacon rounds rather than local
// time. A window registered at round r for duration d closes at round
// r + ceil(d/period); access is granted while the latest published round
// is below that. The window table itself is process memory.
type DrandOracle struct {
	baseURL string
	client  HTTPDoer

	infoMu sync.Mutex
	info   *drandInfo

	mu      sync.RWMutex
	closing map[string]uint64
}

func NewDrandOracle(baseURL string, client HTTPDoer) *DrandOracle {
	if baseURL == "" {
		baseURL = DefaultDrandURL
	}
	if client == nil {
		client = http.DefaultClient
	}
	return &DrandOracle{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  client,
		closing: make(map[string]uint64),
	}
}

func (o *DrandOracle) Register(ctx context.Context, handle string, duration time.Duration) error {
	if handle == "" || duration <= 0 {
		return common.ErrInvalidRequest
	}

	info, err := o.fetchInfo(ctx)
	if err != nil {
		return err
	}
	latest, err := o.latestRound(ctx)
	if err != nil {
		return err
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	if _, ok := o.closing[handle]; ok {
		return ErrAlreadyRegistered
	}
	o.closing[handle] = latest + roundsFor(duration, info.Period)
	return nil
}

func (o *DrandOracle) Check(ctx context.Context, handle string) (bool, error) {
	o.mu.RLock()
	closes, ok := o.closing[handle]
	o.mu.RUnlock()

	if !ok {
		return false, nil
	}

	latest, err := o.latestRound(ctx)
	if err != nil {
		return false, err
	}
	return latest < closes, nil
}

func roundsFor(d time.Duration, period int64) uint64 {
	p := time.Duration(period) * time.Second
	n := uint64(d / p)
	if d%p != 0 {
		n++
	}
	return n
}

func (o *DrandOracle) fetchInfo(ctx context.Context) (*drandInfo, error) {
	o.infoMu.Lock()
	defer o.infoMu.Unlock()

	if o.info != nil {
		return o.info, nil
	}

	var info drandInfo
	if err := o.getJSON(ctx, "/info", &info); err != nil {
		return nil, err
	}
	if info.Period <= 0 {
		return nil, fmt.Errorf("drand info: invalid period %d", info.Period)
	}
	o.info = &info
	return o.info, nil
}

func (o *DrandOracle) latestRound(ctx context.Context) (uint64, error) {
	var latest drandLatest
	if err := o.getJSON(ctx, "/public/latest", &latest); err != nil {
		return 0, err
	}
	return latest.Round, nil
}

func (o *DrandOracle) getJSON(ctx context.Context, path string, v any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, o.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("drand request: %w", err)
	}
	resp, err := o.client.Do(req)
	if err != nil {
		return fmt.Errorf("drand %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("drand %s: status %d", path, resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return fmt.Errorf("drand %s: decode: %w", path, err)
	}
	return nil
}
