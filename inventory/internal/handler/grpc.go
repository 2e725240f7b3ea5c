package handler

import (
	"context"
	"time"

	"shelf_life/inventory/internal/auth"
	"shelf_life/inventory/internal/store"

	"github.com/juju/errors"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

const (
	AgingService_ListItems_FullMethodName  = "/shelflife.inventory.AgingService/ListItems"
	AgingService_AdvanceDay_FullMethodName = "/shelflife.inventory.AgingService/AdvanceDay"
)

// AgingServer is the server API for the aging service. Items and reports
// travel as structpb values shaped like their JSON form.
type AgingServer interface {
	ListItems(context.Context, *emptypb.Empty) (*structpb.ListValue, error)
	AdvanceDay(context.Context, *wrapperspb.BoolValue) (*structpb.Struct, error)
}

// AgingService implements the gRPC server interface
type AgingService struct {
	items  ItemStore
	runner DayRunner
	now    func() time.Time
}

func NewAgingService(items ItemStore, runner DayRunner) *AgingService {
	return &AgingService{items: items, runner: runner, now: time.Now}
}

// NewGRPCServer builds a gRPC server exposing srv. AdvanceDay changes stock
// and needs a staff access token; ListItems is public like its HTTP route.
func NewGRPCServer(srv AgingServer, opts ...grpc.ServerOption) *grpc.Server {
	opts = append(opts, grpc.UnaryInterceptor(auth.UnaryInterceptor(AgingService_AdvanceDay_FullMethodName)))
	s := grpc.NewServer(opts...)
	RegisterAgingServiceServer(s, srv)
	return s
}

// ---------------------------------------------------------------------
// 1. LIST ITEMS
// ---------------------------------------------------------------------
func (s *AgingService) ListItems(ctx context.Context, _ *emptypb.Empty) (*structpb.ListValue, error) {
	items, err := s.items.ListItems(ctx)
	if err != nil {
		return nil, toStatus(err)
	}

	values := make([]interface{}, 0, len(items))
	for _, item := range items {
		values = append(values, itemFields(item))
	}
	list, err := structpb.NewList(values)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "failed to encode items: %v", err)
	}
	return list, nil
}

// ---------------------------------------------------------------------
// 2. ADVANCE DAY (today's pass, force re-runs it)
// ---------------------------------------------------------------------
func (s *AgingService) AdvanceDay(ctx context.Context, req *wrapperspb.BoolValue) (*structpb.Struct, error) {
	report, err := s.runner.RunOnce(ctx, s.now(), req.GetValue())
	if err != nil {
		return nil, toStatus(err)
	}

	items := make([]interface{}, 0, len(report.Items))
	for _, item := range report.Items {
		items = append(items, itemFields(item))
	}
	out, err := structpb.NewStruct(map[string]interface{}{
		"run_id":  report.RunID,
		"date":    report.Date,
		"aged_at": report.AgedAt.Format(time.RFC3339),
		"items":   items,
	})
	if err != nil {
		return nil, status.Errorf(codes.Internal, "failed to encode report: %v", err)
	}
	var staff string
	if claims, ok := auth.ClaimsFromContext(ctx); ok {
		staff = claims.Username
	}
	logger.Infof("grpc aging date=%s items=%d staff=%s forced=%t", report.Date, len(report.Items), staff, req.GetValue())
	return out, nil
}

func itemFields(item store.StockItem) map[string]interface{} {
	return map[string]interface{}{
		"id":       item.ID,
		"sku":      item.SKU,
		"name":     item.Name,
		"category": item.Category.String(),
		"sell_in":  item.SellIn,
		"quality":  item.Quality,
	}
}

func toStatus(err error) error {
	switch {
	case errors.Is(err, errors.NotFound):
		return status.Error(codes.NotFound, err.Error())
	case errors.Is(err, errors.NotValid):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, errors.AlreadyExists):
		return status.Error(codes.AlreadyExists, err.Error())
	}
	logger.Errorf("grpc call failed err=%v", err)
	return status.Error(codes.Internal, "internal error")
}

// RegisterAgingServiceServer attaches srv to a gRPC server.
func RegisterAgingServiceServer(s grpc.ServiceRegistrar, srv AgingServer) {
	s.RegisterService(&AgingService_ServiceDesc, srv)
}

func _AgingService_ListItems_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(emptypb.Empty)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(AgingServer).ListItems(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: AgingService_ListItems_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(AgingServer).ListItems(ctx, req.(*emptypb.Empty))
	}
	return interceptor(ctx, in, info, handler)
}

func _AgingService_AdvanceDay_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(wrapperspb.BoolValue)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(AgingServer).AdvanceDay(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: AgingService_AdvanceDay_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(AgingServer).AdvanceDay(ctx, req.(*wrapperspb.BoolValue))
	}
	return interceptor(ctx, in, info, handler)
}

// AgingService_ServiceDesc is the grpc.ServiceDesc for the aging service.
var AgingService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "shelflife.inventory.AgingService",
	HandlerType: (*AgingServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "ListItems",
			Handler:    _AgingService_ListItems_Handler,
		},
		{
			MethodName: "AdvanceDay",
			Handler:    _AgingService_AdvanceDay_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "inventory/aging.proto",
}

// AgingClient calls the aging service.
type AgingClient struct {
	cc grpc.ClientConnInterface
}

func NewAgingClient(cc grpc.ClientConnInterface) *AgingClient {
	return &AgingClient{cc: cc}
}

func (c *AgingClient) ListItems(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*structpb.ListValue, error) {
	out := new(structpb.ListValue)
	if err := c.cc.Invoke(ctx, AgingService_ListItems_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *AgingClient) AdvanceDay(ctx context.Context, in *wrapperspb.BoolValue, opts ...grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, AgingService_AdvanceDay_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}
