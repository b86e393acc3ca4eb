package grpc

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/structpb"
)

// ServiceName is the fully-qualified gRPC service name
const ServiceName = "ledger.v1.LedgerService"

// LedgerServiceServer is the server API for the ledger service
// Every message is a google.protobuf.Struct so the service needs no generated code.
type LedgerServiceServer interface {
	StartSession(context.Context, *structpb.Struct) (*structpb.Struct, error)
	EndSession(context.Context, *structpb.Struct) (*structpb.Struct, error)
	AddInvestment(context.Context, *structpb.Struct) (*structpb.Struct, error)
	RemoveInvestment(context.Context, *structpb.Struct) (*structpb.Struct, error)
	ListInvestments(context.Context, *structpb.Struct) (*structpb.Struct, error)
	GetSummary(context.Context, *structpb.Struct) (*structpb.Struct, error)
	GetCategoryBreakdown(context.Context, *structpb.Struct) (*structpb.Struct, error)
	Classify(context.Context, *structpb.Struct) (*structpb.Struct, error)
	PreviewCapital(context.Context, *structpb.Struct) (*structpb.Struct, error)
}

type unaryMethod func(LedgerServiceServer, context.Context, *structpb.Struct) (*structpb.Struct, error)

// LedgerServiceDesc describes the ledger service for grpc.Server.RegisterService
var LedgerServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*LedgerServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "StartSession", Handler: unaryHandler("StartSession", LedgerServiceServer.StartSession)},
		{MethodName: "EndSession", Handler: unaryHandler("EndSession", LedgerServiceServer.EndSession)},
		{MethodName: "AddInvestment", Handler: unaryHandler("AddInvestment", LedgerServiceServer.AddInvestment)},
		{MethodName: "RemoveInvestment", Handler: unaryHandler("RemoveInvestment", LedgerServiceServer.RemoveInvestment)},
		{MethodName: "ListInvestments", Handler: unaryHandler("ListInvestments", LedgerServiceServer.ListInvestments)},
		{MethodName: "GetSummary", Handler: unaryHandler("GetSummary", LedgerServiceServer.GetSummary)},
		{MethodName: "GetCategoryBreakdown", Handler: unaryHandler("GetCategoryBreakdown", LedgerServiceServer.GetCategoryBreakdown)},
		{MethodName: "Classify", Handler: unaryHandler("Classify", LedgerServiceServer.Classify)},
		{MethodName: "PreviewCapital", Handler: unaryHandler("PreviewCapital", LedgerServiceServer.PreviewCapital)},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "ledger/v1/ledger.proto",
}

// RegisterLedgerServiceServer registers srv on the given gRPC server
func RegisterLedgerServiceServer(s grpc.ServiceRegistrar, srv LedgerServiceServer) {
	s.RegisterService(&LedgerServiceDesc, srv)
}

// unaryHandler decodes the request Struct and runs call through the server's interceptor chain
func unaryHandler(method string, call unaryMethod) grpc.MethodHandler {
	fullMethod := "/" + ServiceName + "/" + method

	return func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
		in := new(structpb.Struct)
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return call(srv.(LedgerServiceServer), ctx, in)
		}

		info := &grpc.UnaryServerInfo{
			Server:     srv,
			FullMethod: fullMethod,
		}
		handler := func(ctx context.Context, req any) (any, error) {
			return call(srv.(LedgerServiceServer), ctx, req.(*structpb.Struct))
		}
		return interceptor(ctx, in, info, handler)
	}
}
