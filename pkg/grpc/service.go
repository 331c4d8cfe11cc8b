package grpc

import (
	"context"

	"google.golang.org/grpc"

	"campuscctv.xyz/inventory-service/pkg/cctv"
)

const (
	ServiceName = "cctv.StatusService"

	methodBulkUpdateStatus = "/" + ServiceName + "/BulkUpdateStatus"
	methodListCameraIPs    = "/" + ServiceName + "/ListCameraIPs"
)

type StatusResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type BulkUpdateStatusRequest struct {
	Updates []cctv.StatusInput `json:"updates"`
}

type BulkUpdateStatusResponse struct {
	Status *StatusResponse        `json:"status"`
	Report *cctv.BulkStatusReport `json:"report,omitempty"`
	Issues []cctv.FieldIssue      `json:"issues,omitempty"`
}

type ListCameraIPsRequest struct{}

type ListCameraIPsResponse struct {
	Status *StatusResponse `json:"status"`
	Ips    []string        `json:"ips"`
}

type StatusServiceServer interface {
	BulkUpdateStatus(context.Context, *BulkUpdateStatusRequest) (*BulkUpdateStatusResponse, error)
	ListCameraIPs(context.Context, *ListCameraIPsRequest) (*ListCameraIPsResponse, error)
}

func bulkUpdateStatusHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(BulkUpdateStatusRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(StatusServiceServer).BulkUpdateStatus(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: methodBulkUpdateStatus}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(StatusServiceServer).BulkUpdateStatus(ctx, req.(*BulkUpdateStatusRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func listCameraIPsHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(ListCameraIPsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(StatusServiceServer).ListCameraIPs(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: methodListCameraIPs}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(StatusServiceServer).ListCameraIPs(ctx, req.(*ListCameraIPsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

var StatusServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*StatusServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "BulkUpdateStatus", Handler: bulkUpdateStatusHandler},
		{MethodName: "ListCameraIPs", Handler: listCameraIPsHandler},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "cctv/status_service",
}

func RegisterStatusServiceServer(s grpc.ServiceRegistrar, srv StatusServiceServer) {
	s.RegisterService(&StatusServiceDesc, srv)
}

type StatusServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewStatusServiceClient(cc grpc.ClientConnInterface) *StatusServiceClient {
	return &StatusServiceClient{cc: cc}
}

func (c *StatusServiceClient) BulkUpdateStatus(ctx context.Context, in *BulkUpdateStatusRequest, opts ...grpc.CallOption) (*BulkUpdateStatusResponse, error) {
	out := new(BulkUpdateStatusResponse)
	if err := c.cc.Invoke(ctx, methodBulkUpdateStatus, in, out, withCodec(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *StatusServiceClient) ListCameraIPs(ctx context.Context, in *ListCameraIPsRequest, opts ...grpc.CallOption) (*ListCameraIPsResponse, error) {
	out := new(ListCameraIPsResponse)
	if err := c.cc.Invoke(ctx, methodListCameraIPs, in, out, withCodec(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}

func withCodec(opts []grpc.CallOption) []grpc.CallOption {
	return append([]grpc.CallOption{grpc.CallContentSubtype(CodecName)}, opts...)
}
