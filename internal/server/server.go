// Package server implements the gRPC EBTreeService
package server

import (
	"context"
	"io"
	"sync"
	"time"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/nainya/ebtree/pkg/ebtreesvc"
	pb "github.com/nainya/ebtree/proto/ebtree"
)

// Server implements the EBTreeServiceServer interface
type Server struct {
	pb.UnimplementedEBTreeServiceServer

	store *ebtreesvc.Store

	startTime time.Time
	mu        sync.Mutex
	opCounts  map[string]int64
}

// NewServer creates a new gRPC server instance backed by an empty
// tree store.
func NewServer() *Server {
	return &Server{
		store:     ebtreesvc.NewStore(),
		startTime: time.Now(),
		opCounts:  make(map[string]int64),
	}
}

// Close is a no-op today; it exists so ebtreed's shutdown path has a
// single place to release resources if the store ever grows any
// (durable storage, background compaction, ...).
func (s *Server) Close() error {
	return nil
}

func (s *Server) countOp(name string) {
	s.mu.Lock()
	s.opCounts[name]++
	s.mu.Unlock()
}

func (s *Server) CreateTree(ctx context.Context, req *pb.CreateTreeRequest) (*pb.CreateTreeResponse, error) {
	s.countOp("CreateTree")

	if req.Tree == "" {
		return nil, status.Error(codes.InvalidArgument, "tree is required")
	}
	if err := s.store.CreateTree(req.Tree, req.Kind, req.Unique); err != nil {
		return nil, status.Errorf(codes.AlreadyExists, "failed to create tree: %v", err)
	}
	return &pb.CreateTreeResponse{Created: true}, nil
}

func (s *Server) Insert(ctx context.Context, req *pb.InsertRequest) (*pb.InsertResponse, error) {
	s.countOp("Insert")

	if req.Tree == "" {
		return nil, status.Error(codes.InvalidArgument, "tree is required")
	}
	inserted, existing, err := s.store.Insert(req.Tree, req.Key, req.Payload)
	if err != nil {
		return nil, status.Errorf(codes.NotFound, "insert failed: %v", err)
	}
	resp := &pb.InsertResponse{Inserted: inserted}
	if !inserted {
		resp.Existing = &pb.Cell{Key: req.Key, Payload: existing}
	}
	return resp, nil
}

func (s *Server) Lookup(ctx context.Context, req *pb.LookupRequest) (*pb.LookupResponse, error) {
	s.countOp("Lookup")

	if req.Tree == "" {
		return nil, status.Error(codes.InvalidArgument, "tree is required")
	}
	key, payload, found, err := s.store.Lookup(req.Tree, req.Key, req.Mode)
	if err != nil {
		return nil, status.Errorf(codes.NotFound, "lookup failed: %v", err)
	}
	resp := &pb.LookupResponse{Found: found}
	if found {
		resp.Cell = &pb.Cell{Key: key, Payload: payload}
	}
	return resp, nil
}

func (s *Server) Delete(ctx context.Context, req *pb.DeleteRequest) (*pb.DeleteResponse, error) {
	s.countOp("Delete")

	if req.Tree == "" {
		return nil, status.Error(codes.InvalidArgument, "tree is required")
	}
	deleted, err := s.store.Delete(req.Tree, req.Key)
	if err != nil {
		return nil, status.Errorf(codes.NotFound, "delete failed: %v", err)
	}
	return &pb.DeleteResponse{Deleted: deleted}, nil
}

func (s *Server) Range(req *pb.RangeRequest, stream pb.EBTreeService_RangeServer) error {
	s.countOp("Range")

	if req.Tree == "" {
		return status.Error(codes.InvalidArgument, "tree is required")
	}

	var sendErr error
	err := s.store.Range(req.Tree, func(key int64, payload []byte) bool {
		if sendErr = stream.Send(&pb.Cell{Key: key, Payload: payload}); sendErr != nil {
			return false
		}
		return true
	})
	if err != nil {
		return status.Errorf(codes.NotFound, "range failed: %v", err)
	}
	if sendErr != nil && sendErr != io.EOF {
		return status.Errorf(codes.Internal, "range send failed: %v", sendErr)
	}
	return nil
}

func (s *Server) Stats(ctx context.Context, req *pb.StatsRequest) (*pb.StatsResponse, error) {
	s.countOp("Stats")

	if req.Tree == "" {
		return nil, status.Error(codes.InvalidArgument, "tree is required")
	}
	kind, unique, err := s.store.Kind(req.Tree)
	if err != nil {
		return nil, status.Errorf(codes.NotFound, "stats failed: %v", err)
	}
	count, err := s.store.Count(req.Tree)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "stats failed: %v", err)
	}
	return &pb.StatsResponse{
		Tree:      req.Tree,
		Kind:      kind,
		Unique:    unique,
		CellCount: int64(count),
	}, nil
}

func (s *Server) Health(ctx context.Context, req *pb.HealthRequest) (*pb.HealthResponse, error) {
	return &pb.HealthResponse{
		Healthy:       true,
		UptimeSeconds: int64(time.Since(s.startTime).Seconds()),
	}, nil
}
