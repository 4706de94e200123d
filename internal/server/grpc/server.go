package grpc

import (
	"context"
	"net"

	pb "github.com/dmitrijs2005/timevault/internal/proto"
	"github.com/dmitrijs2005/timevault/internal/logging"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

type GRPCServer struct {
	pb.UnimplementedGatewayServer
	address        string
	gateway        Gateway
	reconciler     Reconciler
	logger         logging.Logger
	jwtSecret      []byte
	maxUploadBytes int64
}

func NewGRPCServer(a string, l logging.Logger, gw Gateway, rec Reconciler, secretKey string, maxUploadBytes int64) *GRPCServer {
	return &GRPCServer{
		address:        a,
		logger:         l.With("module", "grpc_server"),
		gateway:        gw,
		reconciler:     rec,
		jwtSecret:      []byte(secretKey),
		maxUploadBytes: maxUploadBytes,
	}
}

// MaxMessageSize is the largest request the server accepts: an upload of
// maxUploadBytes plus headroom for the other fields and framing.
func MaxMessageSize(maxUploadBytes int64) int {
	const headroom = 1 << 20
	if maxUploadBytes <= 0 {
		return 4 << 20
	}
	return int(maxUploadBytes) + headroom
}

func (s *GRPCServer) Run(ctx context.Context) error {

	// announces address
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}

	return s.serve(ctx, listen)
}

func (s *GRPCServer) serve(ctx context.Context, listen net.Listener) error {

	srv := grpc.NewServer(
		grpc.ChainUnaryInterceptor(s.requestLogInterceptor, s.accessTokenInterceptor),
		grpc.MaxRecvMsgSize(MaxMessageSize(s.maxUploadBytes)),
	)

	pb.RegisterGatewayServer(srv, s)

	hs := health.NewServer()
	hs.SetServingStatus(pb.Gateway_ServiceDesc.ServiceName, healthpb.HealthCheckResponse_SERVING)
	healthpb.RegisterHealthServer(srv, hs)

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping gRPC server...")
		hs.Shutdown()
		srv.GracefulStop()
	}()

	s.logger.Info(ctx, "Starting gRPC server", "address", listen.Addr().String())

	// starts accepting incoming connections
	if err := srv.Serve(listen); err != nil {
		return err
	}

	return nil
}
