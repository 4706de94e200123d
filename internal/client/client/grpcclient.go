// Package client is the vaultctl side of the timevault.v1.Gateway API.
package client

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/timevault/internal/common"
	pb "github.com/dmitrijs2005/timevault/internal/proto"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

type GRPCClient struct {
	conn   *grpc.ClientConn
	client pb.GatewayClient
}

func NewGRPCClient(endpointURL string, maxMessageBytes int) (*GRPCClient, error) {
	conn, err := grpc.NewClient(endpointURL,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithDefaultCallOptions(
			grpc.MaxCallRecvMsgSize(maxMessageBytes),
			grpc.MaxCallSendMsgSize(maxMessageBytes),
		),
	)
	if err != nil {
		return nil, err
	}
	return newGRPCClient(conn), nil
}

func newGRPCClient(conn *grpc.ClientConn) *GRPCClient {
	return &GRPCClient{conn: conn, client: pb.NewGatewayClient(conn)}
}

func (c *GRPCClient) Close() error {
	return c.conn.Close()
}

func withAccessToken(ctx context.Context, token string) context.Context {
	md, _ := metadata.FromOutgoingContext(ctx)
	md = md.Copy()
	if md == nil {
		md = metadata.MD{}
	}
	md.Set(common.AccessTokenHeaderName, token)

	return metadata.NewOutgoingContext(ctx, md)
}

// translate turns a gateway status into an error wrapping the matching
// common sentinel, so callers can use errors.Is.
func translate(err error) error {
	if err == nil {
		return nil
	}
	reason := pb.ReasonOf(err)
	if reason == "" {
		return err
	}
	return fmt.Errorf("%w: %s", common.ErrorFor(reason), status.Convert(err).Message())
}

func (c *GRPCClient) Upload(ctx context.Context, fileName, contentType string, data []byte, seconds int64) (*pb.UploadResponse, error) {
	resp, err := c.client.Upload(ctx, &pb.UploadRequest{
		FileName:        fileName,
		ContentType:     contentType,
		Data:            data,
		DurationSeconds: seconds,
	})
	return resp, translate(err)
}

func (c *GRPCClient) Download(ctx context.Context, handle string) (*pb.ContentResponse, error) {
	resp, err := c.client.Download(ctx, &pb.DownloadRequest{Handle: handle})
	return resp, translate(err)
}

func (c *GRPCClient) IssueViewToken(ctx context.Context, handle string) (*pb.ViewTokenResponse, error) {
	resp, err := c.client.IssueViewToken(ctx, &pb.IssueViewTokenRequest{Handle: handle})
	return resp, translate(err)
}

func (c *GRPCClient) View(ctx context.Context, handle, token string) (*pb.ContentResponse, error) {
	resp, err := c.client.View(ctx, &pb.ViewRequest{Handle: handle, Token: token})
	return resp, translate(err)
}

func (c *GRPCClient) Evict(ctx context.Context, handle, accessToken string) error {
	_, err := c.client.Evict(withAccessToken(ctx, accessToken), &pb.EvictRequest{Handle: handle})
	return translate(err)
}

func (c *GRPCClient) Reconcile(ctx context.Context, accessToken string) (*pb.ReconcileResponse, error) {
	resp, err := c.client.Reconcile(withAccessToken(ctx, accessToken), &pb.ReconcileRequest{})
	return resp, translate(err)
}
