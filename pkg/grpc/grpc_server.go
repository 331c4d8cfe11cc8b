package grpc

import (
	"golang.org/x/time/rate"
	"google.golang.org/grpc"

	"campuscctv.xyz/inventory-service/pkg/cctv"
)

type StatusServer struct {
	Cctv             *cctv.CCTV
	RateLimiterStore *cctv.RateLimiterStore
}

func (s *StatusServer) GetLimiter(deviceID string) *rate.Limiter {
	if s.RateLimiterStore == nil {
		return nil
	} else {
		return s.RateLimiterStore.GetLimiter(deviceID)
	}
}

func (s *StatusServer) CheckDeviceLimiter(deviceID string) bool {
	limiter := s.GetLimiter(deviceID)
	if limiter == nil {
		return true
	}
	return limiter.Allow()
}

// NewServer builds a grpc.Server serving the status service with the device
// interceptor in front of every call.
func (s *StatusServer) NewServer(opts ...grpc.ServerOption) *grpc.Server {
	interceptor := grpc.UnaryInterceptor(s.CreateDeviceInterceptor([]any{
		&BulkUpdateStatusRequest{},
		&ListCameraIPsRequest{},
	}))
	server := grpc.NewServer(append([]grpc.ServerOption{interceptor}, opts...)...)
	RegisterStatusServiceServer(server, s)
	return server
}
