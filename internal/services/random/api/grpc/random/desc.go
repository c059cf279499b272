package random

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

// ServiceName is the fully qualified gRPC service name.
const ServiceName = "random.v1.RandomService"

// RandomServiceServer is the server API for RandomService. Messages are
// protobuf well-known wrappers, so no generated code is needed.
type RandomServiceServer interface {
	SetSeed(context.Context, *wrapperspb.UInt32Value) (*emptypb.Empty, error)
	Next(context.Context, *emptypb.Empty) (*wrapperspb.UInt32Value, error)
	Range(context.Context, *wrapperspb.Int32Value) (*wrapperspb.Int32Value, error)
	ReadWords(context.Context, *wrapperspb.UInt32Value) (*wrapperspb.BytesValue, error)
}

// ServiceDesc describes RandomService for grpc.Server.RegisterService.
var ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*RandomServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "SetSeed", Handler: unary("SetSeed", RandomServiceServer.SetSeed)},
		{MethodName: "Next", Handler: unary("Next", RandomServiceServer.Next)},
		{MethodName: "Range", Handler: unary("Range", RandomServiceServer.Range)},
		{MethodName: "ReadWords", Handler: unary("ReadWords", RandomServiceServer.ReadWords)},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "random/v1/random.proto",
}

// RegisterRandomServiceServer registers srv on s.
func RegisterRandomServiceServer(s grpc.ServiceRegistrar, srv RandomServiceServer) {
	s.RegisterService(&ServiceDesc, srv)
}

func fullMethod(method string) string {
	return "/" + ServiceName + "/" + method
}

// unary adapts a typed handler to the grpc.MethodDesc handler shape.
func unary[Req, Resp any](method string, call func(RandomServiceServer, context.Context, *Req) (*Resp, error)) func(any, context.Context, func(any) error, grpc.UnaryServerInterceptor) (any, error) {
	return func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
		in := new(Req)
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return call(srv.(RandomServiceServer), ctx, in)
		}
		info := &grpc.UnaryServerInfo{Server: srv, FullMethod: fullMethod(method)}
		handler := func(ctx context.Context, req any) (any, error) {
			return call(srv.(RandomServiceServer), ctx, req.(*Req))
		}
		return interceptor(ctx, in, info, handler)
	}
}
