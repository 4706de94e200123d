package oracle

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeHTTPDoer struct {
	mu        sync.Mutex
	round     uint64
	err       error
	status    int
	infoCalls int
}

func (f *fakeHTTPDoer) setRound(r uint64) {
	f.mu.Lock()
	f.round = r
	f.mu.Unlock()
}

func (f *fakeHTTPDoer) Do(req *http.Request) (*http.Response, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.err != nil {
		return nil, f.err
	}
	if f.status != 0 {
		return &http.Response{StatusCode: f.status, Body: io.NopCloser(strings.NewReader("unavailable"))}, nil
	}

	var body any
	switch {
	case strings.HasSuffix(req.URL.Path, "/info"):
		f.infoCalls++
		body = map[string]any{"period": 3, "genesis_time": 1677685200}
	case strings.HasSuffix(req.URL.Path, "/public/latest"):
		body = map[string]any{"round": f.round, "randomness": "00"}
	default:
		return &http.Response{StatusCode: http.StatusNotFound, Body: io.NopCloser(strings.NewReader("not found"))}, nil
	}
	b, _ := json.Marshal(body)
	return &http.Response{StatusCode: http.StatusOK, Body: io.NopCloser(bytes.NewReader(b))}, nil
}

func TestDrandOracle_Window(t *testing.T) {
	ctx := context.Background()
	doer := &fakeHTTPDoer{round: 1000}
	o := NewDrandOracle("http://drand.test/", doer)

	require.NoError(t, o.Register(ctx, "h1", 10*time.Second)) // 4 rounds of 3s

	ok, err := o.Check(ctx, "h1")
	require.NoError(t, err)
	assert.True(t, ok)

	doer.setRound(1003)
	ok, _ = o.Check(ctx, "h1")
	assert.True(t, ok)

	doer.setRound(1004)
	ok, _ = o.Check(ctx, "h1")
	assert.False(t, ok)

	assert.ErrorIs(t, o.Register(ctx, "h1", time.Minute), ErrAlreadyRegistered)
	assert.Equal(t, 1, doer.infoCalls, "chain info is cached")
}

func TestDrandOracle_UnknownHandle(t *testing.T) {
	o := NewDrandOracle("http://drand.test", &fakeHTTPDoer{round: 5})
	ok, err := o.Check(context.Background(), "missing")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestDrandOracle_NetworkFailureFailsClosed(t *testing.T) {
	ctx := context.Background()
	doer := &fakeHTTPDoer{round: 1000}
	o := NewDrandOracle("http://drand.test", doer)
	require.NoError(t, o.Register(ctx, "h1", time.Hour))

	doer.mu.Lock()
	doer.err = errors.New("dial tcp: timeout")
	doer.mu.Unlock()

	ok, err := o.Check(ctx, "h1")
	assert.Error(t, err)
	assert.False(t, ok)
}

func TestDrandOracle_BadStatus(t *testing.T) {
	o := NewDrandOracle("http://drand.test", &fakeHTTPDoer{status: http.StatusServiceUnavailable})
	_, err := o.latestRound(context.Background())
	assert.ErrorContains(t, err, "status 503")

	err = o.Register(context.Background(), "h", time.Minute)
	assert.ErrorContains(t, err, "drand /info")
}

func TestRoundsFor(t *testing.T) {
	assert.Equal(t, uint64(1), roundsFor(time.Second, 3))
	assert.Equal(t, uint64(1), roundsFor(3*time.Second, 3))
	assert.Equal(t, uint64(20), roundsFor(time.Minute, 3))
}
