package grpc

import (
	"context"
	"net"

	"github.com/dmitrijs2005/standup/internal/logging"
	"github.com/dmitrijs2005/standup/internal/models"
	pb "github.com/dmitrijs2005/standup/internal/proto"
	smodels "github.com/dmitrijs2005/standup/internal/server/models"
	"github.com/dmitrijs2005/standup/internal/server/services"
	"google.golang.org/grpc"
)

// UserService is the account side of the server.
type UserService interface {
	SignIn(ctx context.Context, provider, token string) (*services.TokenPair, *smodels.User, error)
	RefreshToken(ctx context.Context, refreshToken string) (*services.TokenPair, error)
	SignOut(ctx context.Context, refreshToken string) error
}

// StandupService owns the entry collections.
type StandupService interface {
	Create(ctx context.Context, userID string, e models.Entry) (models.Entry, error)
	Patch(ctx context.Context, userID, id string, f models.Fields) error
	Remove(ctx context.Context, userID, id string) error
	Subscribe(ctx context.Context, userID string, send func([]models.Entry) error) error
}

// ExportService presigns export uploads.
type ExportService interface {
	Presign(ctx context.Context, userID, fileName string) (*services.PresignedExport, error)
	List(ctx context.Context, userID string, limit int) ([]*smodels.Export, []string, error)
}

type GRPCServer struct {
	pb.UnimplementedStandupServiceServer
	address   string
	users     UserService
	standups  StandupService
	exports   ExportService
	logger    logging.Logger
	jwtSecret []byte
}

func NewGRPCServer(a string, l logging.Logger, us UserService, ss StandupService, es ExportService, secretKey string) (*GRPCServer, error) {
	return &GRPCServer{
		address:   a,
		logger:    l.With("module", "grpc_server"),
		users:     us,
		standups:  ss,
		exports:   es,
		jwtSecret: []byte(secretKey),
	}, nil
}

// NewServer builds a gRPC server with the access token interceptors and the
// standup service registered.
func (s *GRPCServer) NewServer() *grpc.Server {
	srv := grpc.NewServer(
		grpc.ChainUnaryInterceptor(s.accessTokenInterceptor),
		grpc.ChainStreamInterceptor(s.streamAccessTokenInterceptor),
	)
	pb.RegisterStandupServiceServer(srv, s)
	return srv
}

// Run listens on the configured address and serves until ctx is done.
func (s *GRPCServer) Run(ctx context.Context) error {
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}
	return s.Serve(ctx, listen)
}

// Serve accepts connections on lis until ctx is done, then stops gracefully.
func (s *GRPCServer) Serve(ctx context.Context, lis net.Listener) error {
	srv := s.NewServer()

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping gRPC server...")
		srv.GracefulStop()
	}()

	s.logger.Info(ctx, "Starting gRPC server", "address", lis.Addr().String())

	if err := srv.Serve(lis); err != nil {
		return err
	}

	return nil
}
