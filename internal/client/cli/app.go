// Package cli implements vaultctl, a command-line client for the gateway.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/dmitrijs2005/timevault/internal/client/client"
	"github.com/dmitrijs2005/timevault/internal/client/config"
	pb "github.com/dmitrijs2005/timevault/internal/proto"
	"github.com/dmitrijs2005/timevault/internal/netx"
)

// ErrUsage is returned for an unknown command or wrong operands.
var ErrUsage = errors.New("usage")

// GatewayClient is what the commands need from the gateway.
type GatewayClient interface {
	Upload(ctx context.Context, fileName, contentType string, data []byte, seconds int64) (*pb.UploadResponse, error)
	Download(ctx context.Context, handle string) (*pb.ContentResponse, error)
	IssueViewToken(ctx context.Context, handle string) (*pb.ViewTokenResponse, error)
	View(ctx context.Context, handle, token string) (*pb.ContentResponse, error)
	Evict(ctx context.Context, handle, accessToken string) error
	Reconcile(ctx context.Context, accessToken string) (*pb.ReconcileResponse, error)
	Close() error
}

type App struct {
	config *config.Config
	client GatewayClient
	http   *http.Client
	out    io.Writer
}

func NewApp(c *config.Config) (*App, error) {

	apiClient, err := client.NewGRPCClient(c.ServerEndpointAddr, c.MaxMessageBytes)
	if err != nil {
		return nil, err
	}

	return &App{config: c, client: apiClient, http: &http.Client{Timeout: c.RequestTimeout}, out: os.Stdout}, nil
}

const usageText = `usage: vaultctl [flags] <command> [args]

commands:
  upload <file> <seconds>   encrypt and upload a file, locked after <seconds>
  download <handle>         download while the time-lock is open
  token <handle>            issue a single-use view token
  view <handle> <token>     redeem a view token
  fetch <url>               open a shared view link over HTTP
  evict <handle>            remove a file (admin)
  reconcile                 retry pending registrations now (admin)
`

func (a *App) usage() {
	fmt.Fprint(a.out, usageText)
}

// Run executes one command.
func (a *App) Run(ctx context.Context, args []string) error {
	defer a.client.Close()

	if len(args) == 0 {
		a.usage()
		return ErrUsage
	}

	ctx, cancel := context.WithTimeout(ctx, a.config.RequestTimeout)
	defer cancel()

	cmd, rest := args[0], args[1:]

	switch {
	case cmd == "upload" && len(rest) == 2:
		return a.Upload(ctx, rest[0], rest[1])
	case cmd == "download" && len(rest) == 1:
		return a.Download(ctx, rest[0])
	case cmd == "token" && len(rest) == 1:
		return a.Token(ctx, rest[0])
	case cmd == "view" && len(rest) == 2:
		return a.View(ctx, rest[0], rest[1])
	case cmd == "fetch" && len(rest) == 1:
		return a.Fetch(ctx, rest[0])
	case cmd == "evict" && len(rest) == 1:
		return a.Evict(ctx, rest[0])
	case cmd == "reconcile" && len(rest) == 0:
		return a.Reconcile(ctx)
	case cmd == "help":
		a.usage()
		return nil
	default:
		a.usage()
		return fmt.Errorf("%w: %s", ErrUsage, cmd)
	}
}

// fetchContent is a test seam for netx.FetchContent.
var fetchContent = netx.FetchContent
