package netx

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/dmitrijs2005/timevault/internal/common"
)

func TestFetchContent(t *testing.T) {
	ctx := context.Background()

	t.Run("success 200 OK", func(t *testing.T) {
		var gotMethod, gotQuery string

		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotMethod = r.Method
			gotQuery = r.URL.Query().Get("token")
			w.Header().Set("Content-Disposition", `inline; filename="plan b.txt"`)
			w.Header().Set("Content-Type", "text/plain")
			_, _ = w.Write([]byte("hello"))
		}))
		defer ts.Close()

		c, err := FetchContent(ctx, ts.Client(), ts.URL+"/api/files/abc/view?token=t-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if gotMethod != http.MethodGet {
			t.Fatalf("method = %q, want GET", gotMethod)
		}
		if gotQuery != "t-1" {
			t.Fatalf("token = %q, want t-1", gotQuery)
		}
		if string(c.Data) != "hello" || c.FileName != "plan b.txt" || c.ContentType != "text/plain" {
			t.Fatalf("unexpected content: %+v", c)
		}
	})

	t.Run("gateway error maps to sentinel", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusForbidden)
			_, _ = w.Write([]byte(`{"error":"expired-or-invalid-token","message":"view token expired or invalid"}`))
		}))
		defer ts.Close()

		_, err := FetchContent(ctx, nil, ts.URL)
		if !errors.Is(err, common.ErrTokenInvalidOrExpired) {
			t.Fatalf("error = %v, want ErrTokenInvalidOrExpired", err)
		}
	})

	t.Run("non-JSON error body", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "bad gateway", http.StatusBadGateway)
		}))
		defer ts.Close()

		_, err := FetchContent(ctx, nil, ts.URL)
		if err == nil || !strings.Contains(err.Error(), "fetch failed: 502") {
			t.Fatalf("error = %v, want to contain 502", err)
		}
	})

	t.Run("network error", func(t *testing.T) {
		ts := httptest.NewServer(http.NotFoundHandler())
		ts.Close()

		_, err := FetchContent(ctx, nil, ts.URL)
		if err == nil {
			t.Fatal("expected error, got nil")
		}
		if strings.Contains(err.Error(), "fetch failed") {
			t.Fatalf("got wrong kind of error: %v", err)
		}
	})
}
