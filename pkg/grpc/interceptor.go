package grpc

import (
	"context"
	"reflect"
	"strings"

	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"campuscctv.xyz/inventory-service/pkg/auth"
	"campuscctv.xyz/inventory-service/pkg/common"
)

type deviceIDKey struct{}

// DeviceIDFrom returns the device id the interceptor accepted for this call.
func DeviceIDFrom(ctx context.Context) string {
	id, _ := ctx.Value(deviceIDKey{}).(string)
	return id
}

func firstValue(md metadata.MD, key string) string {
	if values := md.Get(key); len(values) > 0 {
		return values[0]
	}
	return ""
}

// CreateDeviceInterceptor checks the device credential metadata and the
// per-device limiter for calls whose request type is listed.
func (s *StatusServer) CreateDeviceInterceptor(targetReqTypes []any) grpc.UnaryServerInterceptor {
	targetTypeMap := common.Reducer(targetReqTypes,
		func(m map[reflect.Type]bool, t any) map[reflect.Type]bool {
			m[reflect.TypeOf(t)] = true
			return m
		},
		map[reflect.Type]bool{},
	)

	return func(
		ctx context.Context,
		req any,
		info *grpc.UnaryServerInfo,
		handler grpc.UnaryHandler,
	) (any, error) {
		if _, ok := targetTypeMap[reflect.TypeOf(req)]; !ok {
			return handler(ctx, req)
		}

		md, _ := metadata.FromIncomingContext(ctx)
		creds := auth.DeviceCredentials{
			Token:        firstValue(md, common.HeaderDeviceToken),
			ID:           firstValue(md, common.HeaderDeviceID),
			UniqueNumber: firstValue(md, common.HeaderDeviceUniqueNumber),
		}
		if issues := auth.ValidateDeviceCredentials(&creds); len(issues) > 0 {
			messages := common.Mapper(issues, func(issue auth.DeviceIssue) string {
				return issue.Path + ": " + issue.Message
			})
			return nil, status.Errorf(codes.InvalidArgument, "invalid or missing headers: %s", strings.Join(messages, "; "))
		}

		if !s.CheckDeviceLimiter(creds.ID) {
			common.GetLoggerWith(common.LoggerNameGrpcServer).Warn("Device rate limited",
				zap.String("device_id", creds.ID),
				zap.String("method", info.FullMethod),
			)
			return nil, status.Errorf(codes.ResourceExhausted, "rate limit exceeded")
		}

		return handler(context.WithValue(ctx, deviceIDKey{}, creds.ID), req)
	}
}
