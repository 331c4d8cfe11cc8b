package cctv

import (
	"context"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"campuscctv.xyz/inventory-service/pkg/common"
	"campuscctv.xyz/inventory-service/pkg/metrics"
	"campuscctv.xyz/inventory-service/pkg/models"
)

// statusChange is the result of applying a status to one camera.
type statusChange struct {
	previous models.CameraStatus
	current  models.CameraStatus
	found    bool
}

func (sc statusChange) changed() bool {
	return sc.previous != sc.current
}

// applyStatus writes status to camera and, when it differs from the
// current one, appends a history entry and trims history to
// models.HistoryLimit entries, all in one transaction.
func (c *CCTV) applyStatus(ctx context.Context, camera *models.Camera, status models.CameraStatus) (statusChange, error) {
	logger := common.GetCategoryLogger(common.LoggerCategoryCCTVHistory)

	change := statusChange{previous: camera.Status, current: status}
	err := c.Db.Conn.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&models.Camera{}).Where("id = ?", camera.ID).Update("status", status)
		if result.Error != nil {
			return result.Error
		}
		change.found = result.RowsAffected > 0
		if !change.found || !change.changed() {
			return nil
		}

		entry := models.HistoryEntry{CameraID: camera.ID, Date: time.Now(), Status: status}
		if err := tx.Create(&entry).Error; err != nil {
			return err
		}
		return trimHistory(tx, camera.ID, models.HistoryLimit)
	})
	if err != nil {
		return change, err
	}

	if change.found && change.changed() {
		metrics.RecordStatusTransition(string(status))
		logger.Info("Camera status changed",
			zap.String("camera_id", camera.ID),
			zap.String("previous", string(change.previous)),
			zap.String("current", string(change.current)),
		)
	}
	return change, nil
}

// trimHistory keeps only the newest limit entries of a camera's history.
func trimHistory(tx *gorm.DB, cameraID string, limit int) error {
	var boundary []uint
	err := tx.Model(&models.HistoryEntry{}).
		Where("camera_id = ?", cameraID).
		Order("id DESC").
		Offset(limit-1).
		Limit(1).
		Pluck("id", &boundary).Error
	if err != nil || len(boundary) == 0 {
		return err
	}
	return tx.Where("camera_id = ? AND id < ?", cameraID, boundary[0]).Delete(&models.HistoryEntry{}).Error
}

func loadHistory(tx *gorm.DB) *gorm.DB {
	return tx.Order("camera_history.id ASC")
}
