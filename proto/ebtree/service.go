package ebtreepb

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const serviceName = "ebtree.EBTreeService"

// EBTreeServiceClient is the client API for EBTreeService.
type EBTreeServiceClient interface {
	CreateTree(ctx context.Context, in *CreateTreeRequest, opts ...grpc.CallOption) (*CreateTreeResponse, error)
	Insert(ctx context.Context, in *InsertRequest, opts ...grpc.CallOption) (*InsertResponse, error)
	Lookup(ctx context.Context, in *LookupRequest, opts ...grpc.CallOption) (*LookupResponse, error)
	Delete(ctx context.Context, in *DeleteRequest, opts ...grpc.CallOption) (*DeleteResponse, error)
	Range(ctx context.Context, in *RangeRequest, opts ...grpc.CallOption) (EBTreeService_RangeClient, error)
	Stats(ctx context.Context, in *StatsRequest, opts ...grpc.CallOption) (*StatsResponse, error)
	Health(ctx context.Context, in *HealthRequest, opts ...grpc.CallOption) (*HealthResponse, error)
}

type ebTreeServiceClient struct {
	cc grpc.ClientConnInterface
}

// NewEBTreeServiceClient wraps an established connection as an
// EBTreeServiceClient.
func NewEBTreeServiceClient(cc grpc.ClientConnInterface) EBTreeServiceClient {
	return &ebTreeServiceClient{cc}
}

func (c *ebTreeServiceClient) CreateTree(ctx context.Context, in *CreateTreeRequest, opts ...grpc.CallOption) (*CreateTreeResponse, error) {
	out := new(CreateTreeResponse)
	if err := c.cc.Invoke(ctx, "/"+serviceName+"/CreateTree", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *ebTreeServiceClient) Insert(ctx context.Context, in *InsertRequest, opts ...grpc.CallOption) (*InsertResponse, error) {
	out := new(InsertResponse)
	if err := c.cc.Invoke(ctx, "/"+serviceName+"/Insert", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *ebTreeServiceClient) Lookup(ctx context.Context, in *LookupRequest, opts ...grpc.CallOption) (*LookupResponse, error) {
	out := new(LookupResponse)
	if err := c.cc.Invoke(ctx, "/"+serviceName+"/Lookup", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *ebTreeServiceClient) Delete(ctx context.Context, in *DeleteRequest, opts ...grpc.CallOption) (*DeleteResponse, error) {
	out := new(DeleteResponse)
	if err := c.cc.Invoke(ctx, "/"+serviceName+"/Delete", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *ebTreeServiceClient) Stats(ctx context.Context, in *StatsRequest, opts ...grpc.CallOption) (*StatsResponse, error) {
	out := new(StatsResponse)
	if err := c.cc.Invoke(ctx, "/"+serviceName+"/Stats", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *ebTreeServiceClient) Health(ctx context.Context, in *HealthRequest, opts ...grpc.CallOption) (*HealthResponse, error) {
	out := new(HealthResponse)
	if err := c.cc.Invoke(ctx, "/"+serviceName+"/Health", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *ebTreeServiceClient) Range(ctx context.Context, in *RangeRequest, opts ...grpc.CallOption) (EBTreeService_RangeClient, error) {
	stream, err := c.cc.NewStream(ctx, &EBTreeService_ServiceDesc.Streams[0], "/"+serviceName+"/Range", opts...)
	if err != nil {
		return nil, err
	}
	x := &ebTreeServiceRangeClient{stream}
	if err := x.ClientStream.SendMsg(in); err != nil {
		return nil, err
	}
	if err := x.ClientStream.CloseSend(); err != nil {
		return nil, err
	}
	return x, nil
}

// EBTreeService_RangeClient is returned by Range; call Recv until it
// returns io.EOF.
type EBTreeService_RangeClient interface {
	Recv() (*Cell, error)
	grpc.ClientStream
}

type ebTreeServiceRangeClient struct {
	grpc.ClientStream
}

func (x *ebTreeServiceRangeClient) Recv() (*Cell, error) {
	m := new(Cell)
	if err := x.ClientStream.RecvMsg(m); err != nil {
		return nil, err
	}
	return m, nil
}

// EBTreeServiceServer is the server API for EBTreeService.
type EBTreeServiceServer interface {
	CreateTree(context.Context, *CreateTreeRequest) (*CreateTreeResponse, error)
	Insert(context.Context, *InsertRequest) (*InsertResponse, error)
	Lookup(context.Context, *LookupRequest) (*LookupResponse, error)
	Delete(context.Context, *DeleteRequest) (*DeleteResponse, error)
	Range(*RangeRequest, EBTreeService_RangeServer) error
	Stats(context.Context, *StatsRequest) (*StatsResponse, error)
	Health(context.Context, *HealthRequest) (*HealthResponse, error)
}

// UnimplementedEBTreeServiceServer can be embedded to get
// forward-compatible implementations.
type UnimplementedEBTreeServiceServer struct{}

func (UnimplementedEBTreeServiceServer) CreateTree(context.Context, *CreateTreeRequest) (*CreateTreeResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method CreateTree not implemented")
}
func (UnimplementedEBTreeServiceServer) Insert(context.Context, *InsertRequest) (*InsertResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method Insert not implemented")
}
func (UnimplementedEBTreeServiceServer) Lookup(context.Context, *LookupRequest) (*LookupResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method Lookup not implemented")
}
func (UnimplementedEBTreeServiceServer) Delete(context.Context, *DeleteRequest) (*DeleteResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method Delete not implemented")
}
func (UnimplementedEBTreeServiceServer) Range(*RangeRequest, EBTreeService_RangeServer) error {
	return status.Error(codes.Unimplemented, "method Range not implemented")
}
func (UnimplementedEBTreeServiceServer) Stats(context.Context, *StatsRequest) (*StatsResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method Stats not implemented")
}
func (UnimplementedEBTreeServiceServer) Health(context.Context, *HealthRequest) (*HealthResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method Health not implemented")
}

// EBTreeService_RangeServer is the server side of the Range stream.
type EBTreeService_RangeServer interface {
	Send(*Cell) error
	grpc.ServerStream
}

type ebTreeServiceRangeServer struct {
	grpc.ServerStream
}

func (x *ebTreeServiceRangeServer) Send(c *Cell) error {
	return x.ServerStream.SendMsg(c)
}

func _EBTreeService_CreateTree_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(CreateTreeRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(EBTreeServiceServer).CreateTree(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/" + serviceName + "/CreateTree"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(EBTreeServiceServer).CreateTree(ctx, req.(*CreateTreeRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _EBTreeService_Insert_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(InsertRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(EBTreeServiceServer).Insert(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/" + serviceName + "/Insert"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(EBTreeServiceServer).Insert(ctx, req.(*InsertRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _EBTreeService_Lookup_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(LookupRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(EBTreeServiceServer).Lookup(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/" + serviceName + "/Lookup"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(EBTreeServiceServer).Lookup(ctx, req.(*LookupRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _EBTreeService_Delete_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(DeleteRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(EBTreeServiceServer).Delete(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/" + serviceName + "/Delete"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(EBTreeServiceServer).Delete(ctx, req.(*DeleteRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _EBTreeService_Stats_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(StatsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(EBTreeServiceServer).Stats(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/" + serviceName + "/Stats"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(EBTreeServiceServer).Stats(ctx, req.(*StatsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _EBTreeService_Health_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(HealthRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(EBTreeServiceServer).Health(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/" + serviceName + "/Health"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(EBTreeServiceServer).Health(ctx, req.(*HealthRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _EBTreeService_Range_Handler(srv interface{}, stream grpc.ServerStream) error {
	m := new(RangeRequest)
	if err := stream.RecvMsg(m); err != nil {
		return err
	}
	return srv.(EBTreeServiceServer).Range(m, &ebTreeServiceRangeServer{stream})
}

// EBTreeService_ServiceDesc is the grpc.ServiceDesc for EBTreeService.
var EBTreeService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: serviceName,
	HandlerType: (*EBTreeServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "CreateTree", Handler: _EBTreeService_CreateTree_Handler},
		{MethodName: "Insert", Handler: _EBTreeService_Insert_Handler},
		{MethodName: "Lookup", Handler: _EBTreeService_Lookup_Handler},
		{MethodName: "Delete", Handler: _EBTreeService_Delete_Handler},
		{MethodName: "Stats", Handler: _EBTreeService_Stats_Handler},
		{MethodName: "Health", Handler: _EBTreeService_Health_Handler},
	},
	Streams: []grpc.StreamDesc{
		{
			StreamName:    "Range",
			Handler:       _EBTreeService_Range_Handler,
			ServerStreams: true,
		},
	},
	Metadata: "ebtree.proto",
}

// RegisterEBTreeServiceServer registers srv on s.
func RegisterEBTreeServiceServer(s grpc.ServiceRegistrar, srv EBTreeServiceServer) {
	s.RegisterService(&EBTreeService_ServiceDesc, srv)
}
