// Package netx holds HTTP helpers for talking to the gateway's web surface.
package netx

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime"
	"net/http"

	"github.com/dmitrijs2005/timevault/internal/common"
)

// Content is a file served by the gateway.
type Content struct {
	FileName    string
	ContentType string
	Data        []byte
}

type errorBody struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// FetchContent GETs a download or view URL. Gateway errors come back
// wrapping the matching common sentinel.
func FetchContent(ctx context.Context, client *http.Client, url string) (*Content, error) {
	if client == nil {
		client = http.DefaultClient
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode != http.StatusOK {
		var eb errorBody
		if json.Unmarshal(b, &eb) == nil && eb.Error != "" {
			return nil, fmt.Errorf("%w: %s", common.ErrorFor(eb.Error), eb.Message)
		}
		return nil, fmt.Errorf("fetch failed: %s; body: %s", resp.Status, string(b))
	}

	c := &Content{ContentType: resp.Header.Get("Content-Type"), Data: b}
	if _, params, err := mime.ParseMediaType(resp.Header.Get("Content-Disposition")); err == nil {
		c.FileName = params["filename"]
	}
	return c, nil
}
