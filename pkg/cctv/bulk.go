package cctv

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"campuscctv.xyz/inventory-service/pkg/common"
	"campuscctv.xyz/inventory-service/pkg/db"
	"campuscctv.xyz/inventory-service/pkg/metrics"
	"campuscctv.xyz/inventory-service/pkg/models"
)

func statusOrDefault(status string) models.CameraStatus {
	if s := models.CameraStatus(status); s.Valid() {
		return s
	}
	return models.CameraStatusActive
}

// insertCamera writes one camera, seeds its history with the initial
// status and adds it to its zone's camera set.
func (c *CCTV) insertCamera(ctx context.Context, in CameraInput) (*models.Camera, error) {
	status := statusOrDefault(in.Status)
	camera := models.Camera{
		ID:        uuid.NewString(),
		Name:      in.Name,
		Location:  in.Location,
		Latitude:  *in.Latitude,
		Longitude: *in.Longitude,
		Pole:      *in.Pole,
		MacID:     models.OptionalString(macKey(in.MacID)),
		IP:        models.OptionalString(in.IP),
		ZoneID:    in.Zone,
		Status:    status,
		Notes:     in.Notes,
		History:   []models.HistoryEntry{{Date: time.Now(), Status: status}},
	}

	err := c.Db.Conn.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&camera).Error; err != nil {
			return err
		}
		return addToZone(tx, camera.ZoneID, camera.ID)
	})
	if err != nil {
		return nil, err
	}
	return &camera, nil
}

func (c *CCTV) bulkCreateCameras(ctx context.Context, inputs []CameraInput) (*BulkCreateReport, error) {
	logger := common.GetCategoryLogger(common.LoggerCategoryCCTVBulkCreate)
	start := time.Now()

	// a batch runs to completion once started
	ctx = context.WithoutCancel(ctx)

	for i := range inputs {
		NormalizeCameraInput(&inputs[i])
	}

	idx, err := buildIdentityIndex(c.Db.Conn.WithContext(ctx), inputs)
	if err != nil {
		logger.Error("Failed to build identity index", zap.Error(err))
		metrics.RecordBulk(metrics.OperationBulkCreate, "error", time.Since(start), nil)
		return nil, fmt.Errorf("bulk create: %w", err)
	}

	report := newBulkCreateReport(len(inputs))
	for i, in := range inputs {
		if in.Latitude == nil || in.Longitude == nil || in.Pole == nil {
			report.reject(i, in.Name, missingField(in), "Field is required")
			continue
		}
		if conflict := idx.check(in); conflict != nil {
			report.reject(i, in.Name, conflict.field, conflict.message)
			continue
		}

		camera, err := c.insertCamera(ctx, in)
		if err != nil {
			logger.Warn("Failed to create camera", zap.Int("index", i), zap.String("name", in.Name), zap.Error(err))
			report.fail(i, in.Name, err)
			continue
		}
		idx.claim(camera)
		report.accept(camera)
	}
	report.finish()
	metrics.RecordBulk(metrics.OperationBulkCreate, string(report.Outcome), time.Since(start), map[string]int{
		"created":           report.Summary.Created,
		"validation_errors": report.Summary.ValidationErrors,
		"errors":            report.Summary.Errors,
	})

	logger.Info("Bulk create finished",
		zap.Int("total", report.Summary.TotalRequested),
		zap.Int("created", report.Summary.Created),
		zap.Int("validation_errors", report.Summary.ValidationErrors),
		zap.Int("errors", report.Summary.Errors),
	)
	return report, nil
}

func missingField(in CameraInput) string {
	switch {
	case in.Latitude == nil:
		return "latitude"
	case in.Longitude == nil:
		return "longitude"
	default:
		return "pole"
	}
}

func (c *CCTV) bulkUpdateStatus(ctx context.Context, inputs []StatusInput) (*BulkStatusReport, error) {
	logger := common.GetCategoryLogger(common.LoggerCategoryCCTVBulkStatus)
	start := time.Now()

	ctx = context.WithoutCancel(ctx)

	ips := make([]string, 0, len(inputs))
	for _, in := range inputs {
		ips = append(ips, in.IP)
	}
	cameras, err := db.FindByFieldIn[models.Camera](
		c.Db.Conn.WithContext(ctx).Select("id", "name", "ip", "status"), "ip", common.Distinct(ips))
	if err != nil {
		logger.Error("Failed to load cameras by ip", zap.Error(err))
		metrics.RecordBulk(metrics.OperationBulkStatus, "error", time.Since(start), nil)
		return nil, fmt.Errorf("bulk status: %w", err)
	}
	byIP := make(map[string]*models.Camera, len(cameras))
	for i := range cameras {
		byIP[models.StringValue(cameras[i].IP)] = &cameras[i]
	}

	report := newBulkStatusReport(len(inputs))
	for _, in := range inputs {
		camera, ok := byIP[in.IP]
		if !ok {
			report.Details.NotFound = append(report.Details.NotFound, in.IP)
			continue
		}
		if in.Status == nil {
			report.Details.Errors = append(report.Details.Errors, StatusError{IP: in.IP, Error: "status is required"})
			continue
		}

		change, err := c.applyStatus(ctx, camera, models.StatusFromBool(*in.Status))
		if err != nil {
			logger.Warn("Failed to update camera status", zap.String("ip", in.IP), zap.Error(err))
			report.Details.Errors = append(report.Details.Errors, StatusError{IP: in.IP, Error: err.Error()})
			continue
		}
		if !change.found {
			delete(byIP, in.IP)
			report.Details.NotFound = append(report.Details.NotFound, in.IP)
			continue
		}

		camera.Status = change.current
		report.Details.Updated = append(report.Details.Updated, UpdatedCamera{
			ID:             camera.ID,
			Name:           camera.Name,
			IP:             in.IP,
			PreviousStatus: change.previous,
			NewStatus:      change.current,
		})
	}
	report.finish()
	metrics.RecordBulk(metrics.OperationBulkStatus, string(report.Outcome), time.Since(start), map[string]int{
		"updated":   report.Summary.Updated,
		"not_found": report.Summary.NotFound,
		"errors":    report.Summary.Errors,
	})

	logger.Info("Bulk status update finished",
		zap.Int("total", report.Summary.TotalRequested),
		zap.Int("updated", report.Summary.Updated),
		zap.Int("not_found", report.Summary.NotFound),
		zap.Int("errors", report.Summary.Errors),
	)
	return report, nil
}

type IBulkImpl struct {
	cctv *CCTV
}

func (ib *IBulkImpl) BulkCreateCameras(ctx context.Context, inputs []CameraInput) (*BulkCreateReport, error) {
	return ib.cctv.bulkCreateCameras(ctx, inputs)
}

func (ib *IBulkImpl) BulkUpdateStatus(ctx context.Context, inputs []StatusInput) (*BulkStatusReport, error) {
	return ib.cctv.bulkUpdateStatus(ctx, inputs)
}

func (c *CCTV) GetIBulk() IBulk {
	return &IBulkImpl{cctv: c}
}
