package grpc

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/standup/internal/common"
	pb "github.com/dmitrijs2005/standup/internal/proto"
	"github.com/dmitrijs2005/standup/internal/server/auth"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

type ctxKey string

const UserIDKey ctxKey = "userID"

// publicMethods may be called without an access token.
var publicMethods = map[string]struct{}{
	pb.StandupService_SignIn_FullMethodName:       {},
	pb.StandupService_RefreshToken_FullMethodName: {},
	pb.StandupService_SignOut_FullMethodName:      {},
	pb.StandupService_Ping_FullMethodName:         {},
}

type userScoped interface {
	GetUserId() string
}

// UserIDFromContext returns the authenticated user id set by the interceptors.
func UserIDFromContext(ctx context.Context) (string, bool) {
	v, ok := ctx.Value(UserIDKey).(string)
	return v, ok && v != ""
}

// authenticate validates the access token in ctx metadata and returns its user id.
func (s *GRPCServer) authenticate(ctx context.Context) (string, error) {
	var accessToken string
	if md, ok := metadata.FromIncomingContext(ctx); ok {
		values := md.Get(common.AccessTokenHeaderName)
		if len(values) > 0 {
			accessToken = values[0]
		}
	}
	if len(accessToken) == 0 {
		return "", status.Error(codes.Unauthenticated, "missing token")
	}

	userID, err := auth.GetUserIDFromToken(accessToken, s.jwtSecret)
	if err != nil {
		if errors.Is(err, common.ErrTokenExpired) {
			return "", status.Error(codes.Unauthenticated, common.ErrTokenExpired.Error())
		}
		return "", status.Error(codes.Unauthenticated, "invalid token")
	}
	return userID, nil
}

// checkOwner rejects requests addressed to another user's collection.
func checkOwner(userID string, req any) error {
	if r, ok := req.(userScoped); ok && r.GetUserId() != userID {
		return status.Error(codes.PermissionDenied, "permission denied")
	}
	return nil
}

func (s *GRPCServer) accessTokenInterceptor(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
	if _, ok := publicMethods[info.FullMethod]; ok {
		return handler(ctx, req)
	}

	userID, err := s.authenticate(ctx)
	if err != nil {
		return nil, err
	}
	if err := checkOwner(userID, req); err != nil {
		s.logger.Warn(ctx, "cross-user request rejected", "method", info.FullMethod, "user_id", userID)
		return nil, err
	}

	return handler(context.WithValue(ctx, UserIDKey, userID), req)
}

// authStream carries the authenticated context and checks the owner of the
// first request message.
type authStream struct {
	grpc.ServerStream
	ctx    context.Context
	userID string
}

func (w *authStream) Context() context.Context { return w.ctx }

func (w *authStream) RecvMsg(m any) error {
	if err := w.ServerStream.RecvMsg(m); err != nil {
		return err
	}
	return checkOwner(w.userID, m)
}

func (s *GRPCServer) streamAccessTokenInterceptor(srv any, ss grpc.ServerStream, info *grpc.StreamServerInfo, handler grpc.StreamHandler) error {
	if _, ok := publicMethods[info.FullMethod]; ok {
		return handler(srv, ss)
	}

	userID, err := s.authenticate(ss.Context())
	if err != nil {
		return err
	}

	return handler(srv, &authStream{
		ServerStream: ss,
		ctx:          context.WithValue(ss.Context(), UserIDKey, userID),
		userID:       userID,
	})
}
