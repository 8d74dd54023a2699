package proto

import (
	"context"
	"io"
	"net"
	"testing"
	"time"

	"github.com/dmitrijs2005/standup/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
	protobuf "google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/emptypb"
)

func TestEntry_WireRoundTrip(t *testing.T) {
	in := &Entry{Id: "e1", Text: "shipped #api", Date: "2024-03-01T10:00:00Z", Tags: []string{"api"}, Projects: []string{}}

	b, err := protobuf.Marshal(in)
	require.NoError(t, err)

	var out Entry
	require.NoError(t, protobuf.Unmarshal(b, &out))
	assert.True(t, protobuf.Equal(in, &out), "got %v", &out)

	m, err := out.ToModel()
	require.NoError(t, err)
	assert.Equal(t, []string{}, m.Projects, "empty repeated fields decode to empty labels")
}

func TestDescriptor(t *testing.T) {
	sd := File_standup_proto.Services().ByName("StandupService")
	require.NotNil(t, sd)
	assert.Equal(t, "standup.v1.StandupService", string(sd.FullName()))
	assert.Equal(t, StandupService_ServiceDesc.ServiceName, string(sd.FullName()))

	sub := sd.Methods().ByName("Subscribe")
	require.NotNil(t, sub)
	assert.True(t, sub.IsStreamingServer())
	assert.Equal(t, "standup.v1.Snapshot", string(sub.Output().FullName()))
	assert.Equal(t, "google.protobuf.Empty", string(sd.Methods().ByName("SignOut").Output().FullName()))

	limit := (&ListExportsRequest{}).ProtoReflect().Descriptor().Fields().ByName("limit")
	require.NotNil(t, limit)
	assert.Equal(t, "limit", limit.JSONName())
}

func TestEntryConversion(t *testing.T) {
	d := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	m := models.Entry{ID: "e1", Text: "t", Date: d}

	w := EntryFromModel(m)
	assert.Equal(t, "2024-03-01T10:00:00Z", w.Date)
	assert.NotNil(t, w.Tags, "labels are always arrays on the wire")
	assert.NotNil(t, w.Projects)

	back, err := w.ToModel()
	require.NoError(t, err)
	assert.True(t, back.Date.Equal(d))
	assert.Equal(t, "e1", back.ID)

	_, err = (&Entry{Date: "yesterday"}).ToModel()
	assert.Error(t, err)

	snap := &Snapshot{Entries: []*Entry{w, {Id: "bad", Date: "x"}}}
	_, err = snap.ToModels()
	assert.Error(t, err)
}

func TestUserConversion(t *testing.T) {
	id := models.Identity{ID: "u1", DisplayName: "Ada", Email: "ada@example.com", PhotoURL: "http://p"}
	assert.Equal(t, id, UserFromModel(id).ToModel())
	assert.Equal(t, models.Identity{}, (*User)(nil).ToModel())
}

// ---- end-to-end over bufconn ----

type echoServer struct {
	UnimplementedStandupServiceServer
}

func (echoServer) Ping(context.Context, *PingRequest) (*PingResponse, error) {
	return &PingResponse{Status: "OK"}, nil
}

func (echoServer) RemoveEntry(_ context.Context, in *RemoveEntryRequest) (*emptypb.Empty, error) {
	if in.Id == "" {
		return nil, status.Error(codes.InvalidArgument, "id required")
	}
	return &emptypb.Empty{}, nil
}

func (echoServer) Subscribe(in *SubscribeRequest, stream grpc.ServerStreamingServer[Snapshot]) error {
	for i := 0; i < 2; i++ {
		if err := stream.Send(&Snapshot{Entries: []*Entry{{Id: in.UserId, Date: "2024-03-01T10:00:00Z"}}}); err != nil {
			return err
		}
	}
	return nil
}

func dialBufnet(t *testing.T, srv StandupServiceServer) StandupServiceClient {
	t.Helper()
	lis := bufconn.Listen(1 << 20)
	s := grpc.NewServer()
	RegisterStandupServiceServer(s, srv)
	go func() { _ = s.Serve(lis) }()
	t.Cleanup(s.Stop)

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) { return lis.DialContext(ctx) }),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })
	return NewStandupServiceClient(conn)
}

func TestService_OverBufconn(t *testing.T) {
	c := dialBufnet(t, echoServer{})
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	resp, err := c.Ping(ctx, &PingRequest{})
	require.NoError(t, err)
	assert.Equal(t, "OK", resp.Status)

	_, err = c.RemoveEntry(ctx, &RemoveEntryRequest{UserId: "u", Id: "e"})
	require.NoError(t, err)

	_, err = c.RemoveEntry(ctx, &RemoveEntryRequest{UserId: "u"})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))

	_, err = c.SignIn(ctx, &SignInRequest{Provider: "github"})
	assert.Equal(t, codes.Unimplemented, status.Code(err))

	stream, err := c.Subscribe(ctx, &SubscribeRequest{UserId: "u1"})
	require.NoError(t, err)
	for i := 0; i < 2; i++ {
		snap, err := stream.Recv()
		require.NoError(t, err)
		require.Len(t, snap.Entries, 1)
		assert.Equal(t, "u1", snap.Entries[0].Id)
	}
	_, err = stream.Recv()
	assert.ErrorIs(t, err, io.EOF)
}
