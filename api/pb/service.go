package pb

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// EngineClient is the client-side API for the mimir.Engine service.
type EngineClient interface {
	AddOrder(ctx context.Context, in *AddOrderRequest, opts ...grpc.CallOption) (*AddOrderResponse, error)
	RunMatch(ctx context.Context, in *MatchRequest, opts ...grpc.CallOption) (*MatchResponse, error)
	GetBook(ctx context.Context, in *BookRequest, opts ...grpc.CallOption) (*BookResponse, error)
}

type engineClient struct {
	cc grpc.ClientConnInterface
}

func NewEngineClient(cc grpc.ClientConnInterface) EngineClient {
	return &engineClient{cc}
}

func (c *engineClient) AddOrder(ctx context.Context, in *AddOrderRequest, opts ...grpc.CallOption) (*AddOrderResponse, error) {
	out := new(AddOrderResponse)
	if err := c.cc.Invoke(ctx, "/mimir.Engine/AddOrder", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *engineClient) RunMatch(ctx context.Context, in *MatchRequest, opts ...grpc.CallOption) (*MatchResponse, error) {
	out := new(MatchResponse)
	if err := c.cc.Invoke(ctx, "/mimir.Engine/RunMatch", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *engineClient) GetBook(ctx context.Context, in *BookRequest, opts ...grpc.CallOption) (*BookResponse, error) {
	out := new(BookResponse)
	if err := c.cc.Invoke(ctx, "/mimir.Engine/GetBook", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

// EngineServer is the server-side API for the mimir.Engine service.
type EngineServer interface {
	AddOrder(context.Context, *AddOrderRequest) (*AddOrderResponse, error)
	RunMatch(context.Context, *MatchRequest) (*MatchResponse, error)
	GetBook(context.Context, *BookRequest) (*BookResponse, error)
}

// UnimplementedEngineServer keeps the API stable when methods are added.
type UnimplementedEngineServer struct{}

func (UnimplementedEngineServer) AddOrder(context.Context, *AddOrderRequest) (*AddOrderResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method AddOrder not implemented")
}

func (UnimplementedEngineServer) RunMatch(context.Context, *MatchRequest) (*MatchResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method RunMatch not implemented")
}

func (UnimplementedEngineServer) GetBook(context.Context, *BookRequest) (*BookResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetBook not implemented")
}

func RegisterEngineServer(s grpc.ServiceRegistrar, srv EngineServer) {
	s.RegisterService(&Engine_ServiceDesc, srv)
}

func _Engine_AddOrder_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(AddOrderRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(EngineServer).AddOrder(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/mimir.Engine/AddOrder",
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(EngineServer).AddOrder(ctx, req.(*AddOrderRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _Engine_RunMatch_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(MatchRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(EngineServer).RunMatch(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/mimir.Engine/RunMatch",
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(EngineServer).RunMatch(ctx, req.(*MatchRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _Engine_GetBook_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(BookRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(EngineServer).GetBook(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/mimir.Engine/GetBook",
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(EngineServer).GetBook(ctx, req.(*BookRequest))
	}
	return interceptor(ctx, in, info, handler)
}

var Engine_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "mimir.Engine",
	HandlerType: (*EngineServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "AddOrder",
			Handler:    _Engine_AddOrder_Handler,
		},
		{
			MethodName: "RunMatch",
			Handler:    _Engine_RunMatch_Handler,
		},
		{
			MethodName: "GetBook",
			Handler:    _Engine_GetBook_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "api/pb/engine.proto",
}
