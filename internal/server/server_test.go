// Integration tests for the ebtree gRPC server
package server

import (
	"context"
	"net"
	"testing"

	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/test/bufconn"

	pb "github.com/nainya/ebtree/proto/ebtree"
)

const bufSize = 1024 * 1024

func setupTestServer(t *testing.T) (*Server, pb.EBTreeServiceClient, func()) {
	t.Helper()

	srv := NewServer()

	lis := bufconn.Listen(bufSize)
	grpcServer := grpc.NewServer()
	pb.RegisterEBTreeServiceServer(grpcServer, srv)

	go func() {
		_ = grpcServer.Serve(lis)
	}()

	bufDialer := func(context.Context, string) (net.Conn, error) {
		return lis.Dial()
	}

	ctx := context.Background()
	conn, err := grpc.DialContext(ctx, "bufnet",
		grpc.WithContextDialer(bufDialer),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)

	client := pb.NewEBTreeServiceClient(conn)

	cleanup := func() {
		conn.Close()
		grpcServer.Stop()
		lis.Close()
		srv.Close()
	}

	return srv, client, cleanup
}

func TestCreateAndInsertLookup(t *testing.T) {
	_, client, cleanup := setupTestServer(t)
	defer cleanup()

	ctx := context.Background()

	createResp, err := client.CreateTree(ctx, &pb.CreateTreeRequest{
		Tree: "scores",
		Kind: pb.KeyKindU32,
	})
	require.NoError(t, err)
	require.True(t, createResp.Created)

	insertResp, err := client.Insert(ctx, &pb.InsertRequest{
		Tree:    "scores",
		Key:     42,
		Payload: []byte("alice"),
	})
	require.NoError(t, err)
	require.True(t, insertResp.Inserted)

	lookupResp, err := client.Lookup(ctx, &pb.LookupRequest{Tree: "scores", Key: 42})
	require.NoError(t, err)
	require.True(t, lookupResp.Found)
	require.Equal(t, "alice", string(lookupResp.Cell.Payload))
}

func TestUniqueTreeRejectsDuplicateKey(t *testing.T) {
	_, client, cleanup := setupTestServer(t)
	defer cleanup()

	ctx := context.Background()

	_, err := client.CreateTree(ctx, &pb.CreateTreeRequest{
		Tree:   "ids",
		Kind:   pb.KeyKindU64,
		Unique: true,
	})
	require.NoError(t, err)

	_, err = client.Insert(ctx, &pb.InsertRequest{Tree: "ids", Key: 7, Payload: []byte("first")})
	require.NoError(t, err)

	resp, err := client.Insert(ctx, &pb.InsertRequest{Tree: "ids", Key: 7, Payload: []byte("second")})
	require.NoError(t, err)
	require.False(t, resp.Inserted)
	require.Equal(t, "first", string(resp.Existing.Payload))
}

func TestSignedKeysRoundTrip(t *testing.T) {
	_, client, cleanup := setupTestServer(t)
	defer cleanup()

	ctx := context.Background()

	_, err := client.CreateTree(ctx, &pb.CreateTreeRequest{Tree: "deltas", Kind: pb.KeyKindS32})
	require.NoError(t, err)

	for _, key := range []int64{-5, -1, 0, 3, 100} {
		_, err := client.Insert(ctx, &pb.InsertRequest{Tree: "deltas", Key: key})
		require.NoError(t, err)
	}

	geResp, err := client.Lookup(ctx, &pb.LookupRequest{Tree: "deltas", Key: -2, Mode: pb.LookupGE})
	require.NoError(t, err)
	require.True(t, geResp.Found)
	require.Equal(t, int64(-1), geResp.Cell.Key)

	leResp, err := client.Lookup(ctx, &pb.LookupRequest{Tree: "deltas", Key: -2, Mode: pb.LookupLE})
	require.NoError(t, err)
	require.True(t, leResp.Found)
	require.Equal(t, int64(-5), leResp.Cell.Key)
}

func TestDeleteAndStats(t *testing.T) {
	_, client, cleanup := setupTestServer(t)
	defer cleanup()

	ctx := context.Background()

	_, err := client.CreateTree(ctx, &pb.CreateTreeRequest{Tree: "bucket", Kind: pb.KeyKindU32})
	require.NoError(t, err)

	for _, key := range []int64{1, 2, 3} {
		_, err := client.Insert(ctx, &pb.InsertRequest{Tree: "bucket", Key: key})
		require.NoError(t, err)
	}

	delResp, err := client.Delete(ctx, &pb.DeleteRequest{Tree: "bucket", Key: 2})
	require.NoError(t, err)
	require.True(t, delResp.Deleted)

	statsResp, err := client.Stats(ctx, &pb.StatsRequest{Tree: "bucket"})
	require.NoError(t, err)
	require.Equal(t, int64(2), statsResp.CellCount)
}

func TestRangeOrdersAscending(t *testing.T) {
	_, client, cleanup := setupTestServer(t)
	defer cleanup()

	ctx := context.Background()

	_, err := client.CreateTree(ctx, &pb.CreateTreeRequest{Tree: "ordered", Kind: pb.KeyKindU32})
	require.NoError(t, err)

	for _, key := range []int64{30, 10, 20} {
		_, err := client.Insert(ctx, &pb.InsertRequest{Tree: "ordered", Key: key})
		require.NoError(t, err)
	}

	stream, err := client.Range(ctx, &pb.RangeRequest{Tree: "ordered"})
	require.NoError(t, err)

	var keys []int64
	for {
		cell, err := stream.Recv()
		if err != nil {
			break
		}
		keys = append(keys, cell.Key)
	}
	require.Equal(t, []int64{10, 20, 30}, keys)
}

func TestHealth(t *testing.T) {
	_, client, cleanup := setupTestServer(t)
	defer cleanup()

	resp, err := client.Health(context.Background(), &pb.HealthRequest{})
	require.NoError(t, err)
	require.True(t, resp.Healthy)
}

func TestLookupMissingTree(t *testing.T) {
	_, client, cleanup := setupTestServer(t)
	defer cleanup()

	_, err := client.Lookup(context.Background(), &pb.LookupRequest{Tree: "nope", Key: 1})
	require.Error(t, err)
}
