package grpc

import (
	"context"
	"errors"
	"time"

	"github.com/dmitrijs2005/standup/internal/common"
	"github.com/dmitrijs2005/standup/internal/models"
	pb "github.com/dmitrijs2005/standup/internal/proto"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
)

// toStatus maps domain errors to gRPC status errors. Unknown errors are
// logged and reported as Internal without details.
func (s *GRPCServer) toStatus(ctx context.Context, op string, err error) error {
	switch {
	case errors.Is(err, common.ErrorNotFound):
		return status.Error(codes.NotFound, "not found")
	case errors.Is(err, common.ErrEmptyText), errors.Is(err, common.ErrUnknownProvider):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, common.ErrRefreshTokenExpired):
		return status.Error(codes.Unauthenticated, common.ErrRefreshTokenExpired.Error())
	case errors.Is(err, common.ErrorUnauthorized):
		return status.Error(codes.Unauthenticated, "unauthorized")
	case errors.Is(err, common.ErrPermissionDenied):
		return status.Error(codes.PermissionDenied, "permission denied")
	case errors.Is(err, context.Canceled):
		return status.Error(codes.Canceled, "canceled")
	default:
		s.logger.Error(ctx, op+" failed", "error", err)
		return status.Error(codes.Internal, "internal error")
	}
}

func (s *GRPCServer) SignIn(ctx context.Context, req *pb.SignInRequest) (*pb.SignInResponse, error) {
	s.logger.Info(ctx, "Sign-in request", "provider", req.Provider)

	tokens, user, err := s.users.SignIn(ctx, req.Provider, req.ProviderToken)
	if err != nil {
		return nil, s.toStatus(ctx, "sign-in", err)
	}

	s.logger.Info(ctx, "Signed in", "user_id", user.ID, "provider", user.Provider)
	return &pb.SignInResponse{
		AccessToken:  tokens.AccessToken,
		RefreshToken: tokens.RefreshToken,
		User:         pb.UserFromModel(user.Identity()),
	}, nil
}

func (s *GRPCServer) RefreshToken(ctx context.Context, req *pb.RefreshTokenRequest) (*pb.RefreshTokenResponse, error) {
	tokens, err := s.users.RefreshToken(ctx, req.RefreshToken)
	if err != nil {
		return nil, s.toStatus(ctx, "refresh token", err)
	}
	return &pb.RefreshTokenResponse{AccessToken: tokens.AccessToken, RefreshToken: tokens.RefreshToken}, nil
}

func (s *GRPCServer) SignOut(ctx context.Context, req *pb.SignOutRequest) (*emptypb.Empty, error) {
	if err := s.users.SignOut(ctx, req.RefreshToken); err != nil {
		return nil, s.toStatus(ctx, "sign-out", err)
	}
	return &emptypb.Empty{}, nil
}

func (s *GRPCServer) Ping(ctx context.Context, req *pb.PingRequest) (*pb.PingResponse, error) {
	return &pb.PingResponse{Status: "OK"}, nil
}

func (s *GRPCServer) CreateEntry(ctx context.Context, req *pb.CreateEntryRequest) (*pb.CreateEntryResponse, error) {
	if req.Entry == nil {
		return nil, status.Error(codes.InvalidArgument, "entry required")
	}
	in, err := req.Entry.ToModel()
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}

	created, err := s.standups.Create(ctx, req.UserId, in)
	if err != nil {
		return nil, s.toStatus(ctx, "create entry", err)
	}
	return &pb.CreateEntryResponse{Entry: pb.EntryFromModel(created)}, nil
}

func (s *GRPCServer) PatchEntry(ctx context.Context, req *pb.PatchEntryRequest) (*emptypb.Empty, error) {
	f := models.Fields{Text: req.Text, Tags: req.Tags, Projects: req.Projects}
	if err := s.standups.Patch(ctx, req.UserId, req.Id, f); err != nil {
		return nil, s.toStatus(ctx, "patch entry", err)
	}
	return &emptypb.Empty{}, nil
}

func (s *GRPCServer) RemoveEntry(ctx context.Context, req *pb.RemoveEntryRequest) (*emptypb.Empty, error) {
	if err := s.standups.Remove(ctx, req.UserId, req.Id); err != nil {
		return nil, s.toStatus(ctx, "remove entry", err)
	}
	return &emptypb.Empty{}, nil
}

func (s *GRPCServer) Subscribe(req *pb.SubscribeRequest, stream pb.StandupService_SubscribeServer) error {
	ctx := stream.Context()
	s.logger.Debug(ctx, "Subscribe", "user_id", req.UserId)

	err := s.standups.Subscribe(ctx, req.UserId, func(entries []models.Entry) error {
		return stream.Send(&pb.Snapshot{Entries: pb.EntriesFromModels(entries)})
	})
	if err != nil {
		if ctx.Err() != nil {
			return nil
		}
		return s.toStatus(ctx, "subscribe", err)
	}
	return nil
}

func (s *GRPCServer) PresignExport(ctx context.Context, req *pb.PresignExportRequest) (*pb.PresignExportResponse, error) {
	if req.FileName == "" {
		return nil, status.Error(codes.InvalidArgument, "file name required")
	}
	p, err := s.exports.Presign(ctx, req.UserId, req.FileName)
	if err != nil {
		return nil, s.toStatus(ctx, "presign export", err)
	}
	return &pb.PresignExportResponse{Key: p.Key, UploadUrl: p.UploadURL, DownloadUrl: p.DownloadURL}, nil
}

func (s *GRPCServer) ListExports(ctx context.Context, req *pb.ListExportsRequest) (*pb.ListExportsResponse, error) {
	records, urls, err := s.exports.List(ctx, req.UserId, int(req.Limit))
	if err != nil {
		return nil, s.toStatus(ctx, "list exports", err)
	}

	out := &pb.ListExportsResponse{Exports: make([]*pb.ExportFile, 0, len(records))}
	for i, r := range records {
		f := &pb.ExportFile{Key: r.StorageKey, FileName: r.FileName, CreatedAt: r.CreatedAt.UTC().Format(time.RFC3339)}
		if i < len(urls) {
			f.DownloadUrl = urls[i]
		}
		out.Exports = append(out.Exports, f)
	}
	return out, nil
}
