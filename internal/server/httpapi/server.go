// Package httpapi exposes the gateway over HTTP: upload, timed download,
// single-use view tokens and the admin endpoints.
package httpapi

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/dmitrijs2005/timevault/internal/logging"
	"github.com/dmitrijs2005/timevault/internal/server/models"
	"github.com/dmitrijs2005/timevault/internal/server/services"
	"github.com/go-chi/chi/v5"
)

const shutdownTimeout = 5 * time.Second

// Gateway is the subset of services.GatewayService the handlers call.
type Gateway interface {
	Upload(ctx context.Context, req *models.UploadRequest) (*models.UploadReceipt, error)
	Retrieve(ctx context.Context, handle string) (*models.Content, error)
	IssueViewToken(ctx context.Context, handle string) (*models.ViewToken, error)
	View(ctx context.Context, handle, tokenID string) (*models.Content, error)
	Evict(ctx context.Context, handle string) error
}

// Reconciler triggers an out-of-schedule reconciliation pass.
type Reconciler interface {
	RunOnce(ctx context.Context) (*services.ReconcileResult, bool, error)
}

type Server struct {
	address        string
	gateway        Gateway
	reconciler     Reconciler
	logger         logging.Logger
	jwtSecret      []byte
	maxUploadBytes int64
}

func NewServer(address string, l logging.Logger, gw Gateway, rec Reconciler, secretKey string, maxUploadBytes int64) *Server {
	return &Server{
		address:        address,
		gateway:        gw,
		reconciler:     rec,
		logger:         l.With("module", "http_server"),
		jwtSecret:      []byte(secretKey),
		maxUploadBytes: maxUploadBytes,
	}
}

// Handler builds the router.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(s.requestIDMiddleware)

	r.Get("/health", s.health)

	r.Route("/api", func(api chi.Router) {
		api.Post("/upload", s.upload)
		api.Get("/access/{handle}", s.access)
		api.Post("/files/{handle}/view-token", s.issueViewToken)
		api.Get("/files/{handle}/view", s.view)

		api.Route("/admin", func(admin chi.Router) {
			admin.Use(s.adminOnly)
			admin.Delete("/files/{handle}", s.evict)
			admin.Post("/reconcile", s.reconcile)
		})
	})

	return r
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")
		sctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(sctx); err != nil {
			s.logger.Error(ctx, "HTTP shutdown", "error", err)
		}
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", listen.Addr().String())

	if err := srv.Serve(listen); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
