package grpc

import (
	"context"
	"fmt"
	"time"

	"github.com/dmitrijs2005/timevault/internal/common"
	pb "github.com/dmitrijs2005/timevault/internal/proto"
	"github.com/dmitrijs2005/timevault/internal/server/models"
	"github.com/dmitrijs2005/timevault/internal/server/services"
	"google.golang.org/protobuf/types/known/timestamppb"
)

// Gateway is the subset of services.GatewayService the handlers call.
type Gateway interface {
	Upload(ctx context.Context, req *models.UploadRequest) (*models.UploadReceipt, error)
	Retrieve(ctx context.Context, handle string) (*models.Content, error)
	IssueViewToken(ctx context.Context, handle string) (*models.ViewToken, error)
	View(ctx context.Context, handle, tokenID string) (*models.Content, error)
	Evict(ctx context.Context, handle string) error
}

type Reconciler interface {
	RunOnce(ctx context.Context) (*services.ReconcileResult, bool, error)
}

func toContent(c *models.Content) *pb.ContentResponse {
	return &pb.ContentResponse{Handle: c.Handle, FileName: c.FileName, ContentType: c.ContentType, Data: c.Data}
}

func (s *GRPCServer) Upload(ctx context.Context, req *pb.UploadRequest) (*pb.UploadResponse, error) {

	if req.DurationSeconds <= 0 {
		return nil, toStatus(fmt.Errorf("%w: duration must be a positive number of seconds", common.ErrInvalidRequest))
	}

	receipt, err := s.gateway.Upload(ctx, &models.UploadRequest{
		Data:        req.Data,
		FileName:    req.FileName,
		ContentType: req.ContentType,
		Duration:    time.Duration(req.DurationSeconds) * time.Second,
	})
	if err != nil {
		s.logger.Warn(ctx, "upload failed", "error", err)
		return nil, toStatus(err)
	}

	return &pb.UploadResponse{Handle: receipt.Handle, ExpiresAt: timestamppb.New(receipt.ExpiresAt)}, nil
}

func (s *GRPCServer) Download(ctx context.Context, req *pb.DownloadRequest) (*pb.ContentResponse, error) {

	content, err := s.gateway.Retrieve(ctx, req.Handle)
	if err != nil {
		return nil, toStatus(err)
	}

	return toContent(content), nil
}

func (s *GRPCServer) IssueViewToken(ctx context.Context, req *pb.IssueViewTokenRequest) (*pb.ViewTokenResponse, error) {

	token, err := s.gateway.IssueViewToken(ctx, req.Handle)
	if err != nil {
		return nil, toStatus(err)
	}

	return &pb.ViewTokenResponse{Token: token.ID, Handle: token.Handle, ExpiresAt: timestamppb.New(token.ExpiresAt)}, nil
}

func (s *GRPCServer) View(ctx context.Context, req *pb.ViewRequest) (*pb.ContentResponse, error) {

	if req.Token == "" {
		return nil, toStatus(common.ErrTokenInvalidOrExpired)
	}

	content, err := s.gateway.View(ctx, req.Handle, req.Token)
	if err != nil {
		return nil, toStatus(err)
	}

	return toContent(content), nil
}

func (s *GRPCServer) Evict(ctx context.Context, req *pb.EvictRequest) (*pb.EvictResponse, error) {

	if err := s.gateway.Evict(ctx, req.Handle); err != nil {
		return nil, toStatus(err)
	}

	subject, _ := ctx.Value(subjectKey).(string)
	s.logger.Info(ctx, "evicted by admin", "handle", req.Handle, "subject", subject)
	return &pb.EvictResponse{}, nil
}

func (s *GRPCServer) Reconcile(ctx context.Context, req *pb.ReconcileRequest) (*pb.ReconcileResponse, error) {

	res, ran, err := s.reconciler.RunOnce(ctx)
	if err != nil {
		return nil, toStatus(err)
	}
	if !ran {
		return &pb.ReconcileResponse{}, nil
	}

	return &pb.ReconcileResponse{
		Ran:        true,
		Registered: int32(res.Registered),
		Expired:    int32(res.Expired),
		Failed:     int32(res.Failed),
	}, nil
}
