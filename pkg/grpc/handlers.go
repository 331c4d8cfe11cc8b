package grpc

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"campuscctv.xyz/inventory-service/pkg/cctv"
	"campuscctv.xyz/inventory-service/pkg/common"
)

func (s *StatusServer) BulkUpdateStatus(ctx context.Context, req *BulkUpdateStatusRequest) (*BulkUpdateStatusResponse, error) {
	logger := common.GetLoggerWith(common.LoggerNameGrpcServer)

	if issues := cctv.ValidateBulkStatus(req.Updates); len(issues) > 0 {
		return &BulkUpdateStatusResponse{
			Status: &StatusResponse{Success: false, Message: fmt.Sprintf("validation error: %s", issues[0].Message)},
			Issues: issues,
		}, nil
	}

	report, err := s.Cctv.Bulk.BulkUpdateStatus(ctx, req.Updates)
	if err != nil {
		logger.Error("Bulk status update failed", zap.String("device_id", DeviceIDFrom(ctx)), zap.Error(err))
		return &BulkUpdateStatusResponse{
			Status: &StatusResponse{Success: false, Message: err.Error()},
		}, nil
	}

	logger.Info("Device reported camera statuses",
		zap.String("device_id", DeviceIDFrom(ctx)),
		zap.Int("updated", report.Summary.Updated),
		zap.Int("not_found", report.Summary.NotFound),
	)

	message := "OK"
	if !report.Success {
		message = "Camera status update failed"
	}
	return &BulkUpdateStatusResponse{
		Status: &StatusResponse{Success: report.Success, Message: message},
		Report: report,
	}, nil
}

func (s *StatusServer) ListCameraIPs(ctx context.Context, _ *ListCameraIPsRequest) (*ListCameraIPsResponse, error) {
	ips, err := s.Cctv.Camera.ListCameraIPs(ctx)
	if err != nil {
		return &ListCameraIPsResponse{
			Status: &StatusResponse{Success: false, Message: err.Error()},
		}, nil
	}

	return &ListCameraIPsResponse{
		Status: &StatusResponse{Success: true, Message: "OK"},
		Ips:    ips,
	}, nil
}
