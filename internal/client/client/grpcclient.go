package client

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/dmitrijs2005/standup/internal/common"
	"github.com/dmitrijs2005/standup/internal/models"
	pb "github.com/dmitrijs2005/standup/internal/proto"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

// TokenObserver is told about every new token pair, whether from sign-in or
// from a transparent refresh.
type TokenObserver func(access, refresh string)

type GRPCClient struct {
	endpointURL string
	conn        *grpc.ClientConn
	client      pb.StandupServiceClient

	mu           sync.Mutex
	accessToken  string
	refreshToken string
	onTokens     TokenObserver

	refreshMu sync.Mutex
}

func withAccessToken(ctx context.Context, token string) context.Context {
	md, _ := metadata.FromOutgoingContext(ctx)
	md = md.Copy()
	if md == nil {
		md = metadata.MD{}
	}
	md.Delete(common.AccessTokenHeaderName)
	md.Set(common.AccessTokenHeaderName, token)

	return metadata.NewOutgoingContext(ctx, md)
}

func isTokenExpired(err error) bool {
	st, ok := status.FromError(err)
	return ok && st.Code() == codes.Unauthenticated && st.Message() == common.ErrTokenExpired.Error()
}

func NewStandupClient(endpointURL string) (*GRPCClient, error) {
	c := &GRPCClient{endpointURL: endpointURL}
	if err := c.InitGRPCClient(); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *GRPCClient) InitGRPCClient() error {
	conn, err := grpc.NewClient(s.endpointURL,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithUnaryInterceptor(s.accessTokenInterceptor),
	)
	if err != nil {
		return err
	}
	s.conn = conn
	s.client = pb.NewStandupServiceClient(conn)
	return nil
}

func (s *GRPCClient) Close() error {
	if s.conn == nil {
		return nil
	}
	return s.conn.Close()
}

// SetTokens installs a token pair, e.g. one restored from local storage.
func (s *GRPCClient) SetTokens(access, refresh string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.accessToken, s.refreshToken = access, refresh
}

func (s *GRPCClient) Tokens() (access, refresh string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.accessToken, s.refreshToken
}

// OnTokens registers the observer for new token pairs.
func (s *GRPCClient) OnTokens(fn TokenObserver) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onTokens = fn
}

func (s *GRPCClient) storeTokens(access, refresh string) {
	s.mu.Lock()
	s.accessToken, s.refreshToken = access, refresh
	fn := s.onTokens
	s.mu.Unlock()

	if fn != nil {
		fn(access, refresh)
	}
}

// refresh rotates the token pair unless another caller already replaced
// the stale access token.
func (s *GRPCClient) refresh(ctx context.Context, stale string) error {
	s.refreshMu.Lock()
	defer s.refreshMu.Unlock()

	access, refresh := s.Tokens()
	if access != stale {
		return nil
	}
	if refresh == "" {
		return status.Error(codes.Unauthenticated, common.ErrTokenExpired.Error())
	}

	resp, err := s.client.RefreshToken(ctx, &pb.RefreshTokenRequest{RefreshToken: refresh})
	if err != nil {
		return err
	}
	s.storeTokens(resp.AccessToken, resp.RefreshToken)
	return nil
}

func (s *GRPCClient) accessTokenInterceptor(
	ctx context.Context,
	method string,
	req, reply interface{},
	cc *grpc.ClientConn,
	invoker grpc.UnaryInvoker,
	opts ...grpc.CallOption,
) error {
	access, _ := s.Tokens()

	err := invoker(withAccessToken(ctx, access), method, req, reply, cc, opts...)
	if err == nil || method == pb.StandupService_RefreshToken_FullMethodName || !isTokenExpired(err) {
		return err
	}

	if rerr := s.refresh(ctx, access); rerr != nil {
		return rerr
	}

	access, _ = s.Tokens()
	return invoker(withAccessToken(ctx, access), method, req, reply, cc, opts...)
}

func (s *GRPCClient) SignIn(ctx context.Context, provider, providerToken string) (*models.Identity, error) {
	resp, err := s.client.SignIn(ctx, &pb.SignInRequest{Provider: provider, ProviderToken: providerToken})
	if err != nil {
		return nil, s.mapError(err)
	}

	s.storeTokens(resp.AccessToken, resp.RefreshToken)
	id := resp.User.ToModel()
	return &id, nil
}

// SignOut revokes the refresh token on the server. Local tokens are cleared
// even when the server call fails.
func (s *GRPCClient) SignOut(ctx context.Context) error {
	_, refresh := s.Tokens()
	s.SetTokens("", "")

	if refresh == "" {
		return nil
	}
	if _, err := s.client.SignOut(ctx, &pb.SignOutRequest{RefreshToken: refresh}); err != nil {
		return s.mapError(err)
	}
	return nil
}

func (s *GRPCClient) Ping(ctx context.Context) error {
	resp, err := s.client.Ping(ctx, &pb.PingRequest{})
	if err != nil {
		return s.mapError(err)
	}

	if resp.Status != "OK" {
		return ErrUnavailable
	}

	return nil
}

func (s *GRPCClient) CreateEntry(ctx context.Context, userID string, e models.Entry) (models.Entry, error) {
	resp, err := s.client.CreateEntry(ctx, &pb.CreateEntryRequest{UserId: userID, Entry: pb.EntryFromModel(e)})
	if err != nil {
		return models.Entry{}, s.mapError(err)
	}
	if resp.Entry == nil {
		return models.Entry{}, fmt.Errorf("rpc error: empty entry in response")
	}
	return resp.Entry.ToModel()
}

func (s *GRPCClient) PatchEntry(ctx context.Context, userID, id string, f models.Fields) error {
	req := &pb.PatchEntryRequest{
		UserId:   userID,
		Id:       id,
		Text:     f.Text,
		Tags:     models.NormalizeLabels(f.Tags),
		Projects: models.NormalizeLabels(f.Projects),
	}
	if _, err := s.client.PatchEntry(ctx, req); err != nil {
		return s.mapError(err)
	}
	return nil
}

func (s *GRPCClient) RemoveEntry(ctx context.Context, userID, id string) error {
	if _, err := s.client.RemoveEntry(ctx, &pb.RemoveEntryRequest{UserId: userID, Id: id}); err != nil {
		return s.mapError(err)
	}
	return nil
}

// openSnapshots opens a Subscribe stream and waits for the first snapshot,
// which is where authentication failures surface.
func (s *GRPCClient) openSnapshots(ctx context.Context, userID, access string) (pb.StandupService_SubscribeClient, *pb.Snapshot, error) {
	stream, err := s.client.Subscribe(withAccessToken(ctx, access), &pb.SubscribeRequest{UserId: userID})
	if err != nil {
		return nil, nil, err
	}
	first, err := stream.Recv()
	if err != nil {
		return nil, nil, err
	}
	return stream, first, nil
}

// Subscribe opens the live snapshot stream for userID. An expired access
// token is refreshed once before giving up.
func (s *GRPCClient) Subscribe(ctx context.Context, userID string) (SnapshotStream, error) {
	access, _ := s.Tokens()
	stream, first, err := s.openSnapshots(ctx, userID, access)
	if isTokenExpired(err) {
		if rerr := s.refresh(ctx, access); rerr != nil {
			return nil, s.mapError(rerr)
		}
		access, _ = s.Tokens()
		stream, first, err = s.openSnapshots(ctx, userID, access)
	}
	if err != nil {
		return nil, s.mapError(err)
	}
	return &snapshotStream{stream: stream, first: first, mapError: s.mapError}, nil
}

type snapshotStream struct {
	stream   pb.StandupService_SubscribeClient
	first    *pb.Snapshot
	mapError func(error) error
}

func (x *snapshotStream) Recv() ([]models.Entry, error) {
	snap := x.first
	x.first = nil
	if snap == nil {
		var err error
		if snap, err = x.stream.Recv(); err != nil {
			return nil, x.mapError(err)
		}
	}

	out := make([]models.Entry, 0, len(snap.Entries))
	for _, e := range snap.Entries {
		m, err := e.ToModel()
		if err != nil {
			return nil, fmt.Errorf("bad entry %q in snapshot: %w", e.Id, err)
		}
		out = append(out, m)
	}
	return out, nil
}

func (s *GRPCClient) PresignExport(ctx context.Context, userID, fileName string) (*ExportURLs, error) {
	resp, err := s.client.PresignExport(ctx, &pb.PresignExportRequest{UserId: userID, FileName: fileName})
	if err != nil {
		return nil, s.mapError(err)
	}
	return &ExportURLs{Key: resp.Key, UploadURL: resp.UploadUrl, DownloadURL: resp.DownloadUrl}, nil
}

func (s *GRPCClient) ListExports(ctx context.Context, userID string, limit int) ([]ExportFile, error) {
	resp, err := s.client.ListExports(ctx, &pb.ListExportsRequest{UserId: userID, Limit: int32(limit)})
	if err != nil {
		return nil, s.mapError(err)
	}

	out := make([]ExportFile, 0, len(resp.Exports))
	for _, f := range resp.Exports {
		created, _ := time.Parse(time.RFC3339, f.CreatedAt)
		out = append(out, ExportFile{Key: f.Key, FileName: f.FileName, CreatedAt: created, DownloadURL: f.DownloadUrl})
	}
	return out, nil
}

func (s *GRPCClient) mapError(err error) error {
	if err == nil {
		return nil
	}
	st, _ := status.FromError(err)
	switch st.Code() {
	case codes.Unauthenticated, codes.PermissionDenied:
		return fmt.Errorf("%w: %s", ErrUnauthorized, st.Message())
	case codes.Unavailable, codes.DeadlineExceeded:
		return ErrUnavailable
	case codes.NotFound:
		return common.ErrorNotFound
	default:
		return fmt.Errorf("rpc error: %w", err)
	}
}
