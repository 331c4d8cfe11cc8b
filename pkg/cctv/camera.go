package cctv

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"campuscctv.xyz/inventory-service/pkg/common"
	"campuscctv.xyz/inventory-service/pkg/db"
	"campuscctv.xyz/inventory-service/pkg/models"
)

func searchPattern(search string) string {
	return "%" + strings.ToLower(strings.TrimSpace(search)) + "%"
}

func (c *CCTV) listCameras(ctx context.Context, q CameraQuery) (*Page[models.Camera], error) {
	page, limit := normalizePage(q.Page, q.Limit)

	tx := c.Db.Conn.WithContext(ctx).Model(&models.Camera{})
	if strings.TrimSpace(q.Search) != "" {
		like := searchPattern(q.Search)
		tx = tx.Where(
			"LOWER(name) LIKE ? OR LOWER(location) LIKE ? OR LOWER(mac_id) LIKE ? OR ip LIKE ? OR LOWER(notes) LIKE ?",
			like, like, like, like, like,
		)
	}
	if q.Status != "" {
		tx = tx.Where("status = ?", q.Status)
	}
	if q.Zone != "" {
		tx = tx.Where("zone_id = ?", q.Zone)
	}
	tx = tx.Session(&gorm.Session{})

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, err
	}

	cameras := []models.Camera{}
	err := tx.Preload("History", loadHistory).
		Order("created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&cameras).Error
	if err != nil {
		return nil, err
	}

	if q.IncludeZone {
		if err := c.attachZones(ctx, cameras); err != nil {
			return nil, err
		}
	}

	return &Page[models.Camera]{Data: cameras, Pagination: newPagination(page, limit, total)}, nil
}

func (c *CCTV) attachZones(ctx context.Context, cameras []models.Camera) error {
	ids := common.Mapper(cameras, func(camera models.Camera) string { return camera.ZoneID })
	zones, err := db.FindByFieldIn[models.Zone](c.Db.Conn.WithContext(ctx), "id", common.Distinct(ids))
	if err != nil {
		return err
	}
	byID := make(map[string]*models.Zone, len(zones))
	for i := range zones {
		byID[zones[i].ID] = &zones[i]
	}
	for i := range cameras {
		cameras[i].Zone = byID[cameras[i].ZoneID]
	}
	return nil
}

func (c *CCTV) findCamera(ctx context.Context, id string) (*models.Camera, error) {
	if !isValidID(id) {
		return nil, common.BadRequest("Invalid camera ID format")
	}
	var camera models.Camera
	err := c.Db.Conn.WithContext(ctx).Preload("History", loadHistory).First(&camera, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, common.NotFound("Camera not found")
	}
	if err != nil {
		return nil, err
	}
	return &camera, nil
}

func (c *CCTV) getCamera(ctx context.Context, id string, includeZone bool) (*models.Camera, error) {
	camera, err := c.findCamera(ctx, id)
	if err != nil {
		return nil, err
	}
	if includeZone {
		cameras := []models.Camera{*camera}
		if err := c.attachZones(ctx, cameras); err != nil {
			return nil, err
		}
		camera = &cameras[0]
	}
	return camera, nil
}

func conflictError(conflict *identityConflict) error {
	switch conflict.message {
	case msgInvalidZoneID, msgZoneNotFound:
		return common.BadRequest(conflict.message)
	case msgMacTaken:
		return common.Conflict("Camera with this MAC ID already exists")
	case msgIPTaken:
		return common.Conflict("Camera with this IP address already exists")
	default:
		return common.Conflict("Camera with this pole number already exists in the zone")
	}
}

func (c *CCTV) createCamera(ctx context.Context, in CameraInput) (*models.Camera, error) {
	logger := common.GetCategoryLogger(common.LoggerCategoryCCTVCamera)

	if issues := ValidateCameraInput(&in); len(issues) > 0 {
		return nil, common.Unprocessable(issues[0].Message)
	}

	idx, err := buildIdentityIndex(c.Db.Conn.WithContext(ctx), []CameraInput{in})
	if err != nil {
		return nil, err
	}
	if conflict := idx.check(in); conflict != nil {
		return nil, conflictError(conflict)
	}

	camera, err := c.insertCamera(ctx, in)
	if db.IsUniqueViolation(err) {
		return nil, common.Conflict("Camera with the same MAC ID, IP address or pole already exists")
	}
	if err != nil {
		return nil, err
	}

	logger.Info("Created camera", zap.String("camera_id", camera.ID), zap.String("zone_id", camera.ZoneID))
	return camera, nil
}

func (c *CCTV) isTaken(ctx context.Context, selfID, query string, args ...any) (bool, error) {
	var count int64
	err := c.Db.Conn.WithContext(ctx).Model(&models.Camera{}).
		Where(query, args...).
		Where("id <> ?", selfID).
		Count(&count).Error
	return count > 0, err
}

func (c *CCTV) updateCamera(ctx context.Context, id string, u CameraUpdate) (*models.Camera, error) {
	logger := common.GetCategoryLogger(common.LoggerCategoryCCTVCamera)

	camera, err := c.findCamera(ctx, id)
	if err != nil {
		return nil, err
	}
	if issues := ValidateCameraUpdate(&u); len(issues) > 0 {
		return nil, common.Unprocessable(issues[0].Message)
	}

	updates := map[string]any{}
	targetZone, targetPole := camera.ZoneID, camera.Pole

	if u.Zone != nil && *u.Zone != camera.ZoneID {
		if !isValidID(*u.Zone) {
			return nil, common.BadRequest(msgInvalidZoneID)
		}
		var count int64
		if err := c.Db.Conn.WithContext(ctx).Model(&models.Zone{}).Where("id = ?", *u.Zone).Count(&count).Error; err != nil {
			return nil, err
		}
		if count == 0 {
			return nil, common.BadRequest(msgZoneNotFound)
		}
		targetZone = *u.Zone
		updates["zone_id"] = targetZone
	}
	if u.Pole != nil {
		targetPole = *u.Pole
		updates["pole"] = targetPole
	}
	if targetZone != camera.ZoneID || targetPole != camera.Pole {
		taken, err := c.isTaken(ctx, id, "zone_id = ? AND pole = ?", targetZone, targetPole)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, common.Conflict("Camera with this pole number already exists in the zone")
		}
	}
	if u.MacID != nil {
		mac := models.OptionalString(macKey(*u.MacID))
		if mac != nil {
			taken, err := c.isTaken(ctx, id, "mac_id = ?", *mac)
			if err != nil {
				return nil, err
			}
			if taken {
				return nil, common.Conflict("Camera with this MAC ID already exists")
			}
		}
		updates["mac_id"] = mac
	}
	if u.IP != nil {
		ip := models.OptionalString(*u.IP)
		if ip != nil {
			taken, err := c.isTaken(ctx, id, "ip = ?", *ip)
			if err != nil {
				return nil, err
			}
			if taken {
				return nil, common.Conflict("Camera with this IP address already exists")
			}
		}
		updates["ip"] = ip
	}
	if u.Name != nil {
		updates["name"] = *u.Name
	}
	if u.Latitude != nil {
		updates["latitude"] = *u.Latitude
	}
	if u.Longitude != nil {
		updates["longitude"] = *u.Longitude
	}
	if u.Location != nil {
		updates["location"] = *u.Location
	}
	if u.Notes != nil {
		updates["notes"] = *u.Notes
	}

	if len(updates) > 0 {
		err = c.Db.Conn.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			if targetZone != camera.ZoneID {
				if err := moveToZone(tx, camera.ZoneID, targetZone, camera.ID); err != nil {
					return err
				}
			}
			return tx.Model(&models.Camera{}).Where("id = ?", camera.ID).Updates(updates).Error
		})
		if db.IsUniqueViolation(err) {
			return nil, common.Conflict("Camera with the same MAC ID, IP address or pole already exists")
		}
		if err != nil {
			return nil, err
		}
	}

	// status changes go through the history rule
	if u.Status != nil {
		if _, err := c.applyStatus(ctx, camera, models.CameraStatus(*u.Status)); err != nil {
			return nil, err
		}
	}

	logger.Info("Updated camera", zap.String("camera_id", camera.ID), zap.Int("fields", len(updates)))
	return c.findCamera(ctx, id)
}

func (c *CCTV) deleteCamera(ctx context.Context, id string) error {
	logger := common.GetCategoryLogger(common.LoggerCategoryCCTVCamera)

	camera, err := c.findCamera(ctx, id)
	if err != nil {
		return err
	}

	err = c.Db.Conn.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := removeFromZone(tx, camera.ZoneID, camera.ID); err != nil {
			return err
		}
		if err := tx.Where("camera_id = ?", camera.ID).Delete(&models.HistoryEntry{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Camera{}, "id = ?", camera.ID).Error
	})
	if err != nil {
		return err
	}

	logger.Info("Deleted camera", zap.String("camera_id", camera.ID), zap.String("zone_id", camera.ZoneID))
	return nil
}

func (c *CCTV) updateCameraStatus(ctx context.Context, id string, status models.CameraStatus) (*models.Camera, error) {
	if !status.Valid() {
		return nil, common.Unprocessable("Status must be either active or inactive.")
	}
	camera, err := c.findCamera(ctx, id)
	if err != nil {
		return nil, err
	}
	change, err := c.applyStatus(ctx, camera, status)
	if err != nil {
		return nil, err
	}
	if !change.found {
		return nil, common.NotFound("Camera not found")
	}
	return c.findCamera(ctx, id)
}

// listCameraIPs returns every non-empty camera IP, sorted.
func (c *CCTV) listCameraIPs(ctx context.Context) ([]string, error) {
	ips := []string{}
	err := c.Db.Conn.WithContext(ctx).Model(&models.Camera{}).
		Where("ip IS NOT NULL AND ip <> ''").
		Order("ip ASC").
		Pluck("ip", &ips).Error
	return ips, err
}

func (c *CCTV) getCameraStats(ctx context.Context) (*CameraStats, error) {
	conn := c.Db.Conn.WithContext(ctx)

	var total, active int64
	if err := conn.Model(&models.Camera{}).Count(&total).Error; err != nil {
		return nil, err
	}
	if err := conn.Model(&models.Camera{}).Where("status = ?", models.CameraStatusActive).Count(&active).Error; err != nil {
		return nil, err
	}
	inactive := total - active

	distribution := []ZoneDistribution{}
	err := conn.Model(&models.Camera{}).
		Select("cameras.zone_id AS zone_id, zones.name AS zone_name, COUNT(*) AS camera_count").
		Joins("JOIN zones ON zones.id = cameras.zone_id").
		Group("cameras.zone_id, zones.name").
		Order("camera_count DESC").
		Scan(&distribution).Error
	if err != nil {
		return nil, err
	}

	return &CameraStats{
		Overview: CameraStatsOverview{
			TotalCameras:    total,
			ActiveCameras:   active,
			InactiveCameras: inactive,
			StatusPercentage: StatusPercentage{
				Active:   common.Percent(active, total),
				Inactive: common.Percent(inactive, total),
			},
		},
		ZoneDistribution: distribution,
	}, nil
}

type ICameraImpl struct {
	cctv *CCTV
}

func (ic *ICameraImpl) ListCameras(ctx context.Context, query CameraQuery) (*Page[models.Camera], error) {
	return ic.cctv.listCameras(ctx, query)
}

func (ic *ICameraImpl) GetCamera(ctx context.Context, id string, includeZone bool) (*models.Camera, error) {
	return ic.cctv.getCamera(ctx, id, includeZone)
}

func (ic *ICameraImpl) CreateCamera(ctx context.Context, input CameraInput) (*models.Camera, error) {
	return ic.cctv.createCamera(ctx, input)
}

func (ic *ICameraImpl) UpdateCamera(ctx context.Context, id string, update CameraUpdate) (*models.Camera, error) {
	return ic.cctv.updateCamera(ctx, id, update)
}

func (ic *ICameraImpl) DeleteCamera(ctx context.Context, id string) error {
	return ic.cctv.deleteCamera(ctx, id)
}

func (ic *ICameraImpl) UpdateCameraStatus(ctx context.Context, id string, status models.CameraStatus) (*models.Camera, error) {
	return ic.cctv.updateCameraStatus(ctx, id, status)
}

func (ic *ICameraImpl) ListCameraIPs(ctx context.Context) ([]string, error) {
	return ic.cctv.listCameraIPs(ctx)
}

func (ic *ICameraImpl) GetCameraStats(ctx context.Context) (*CameraStats, error) {
	return ic.cctv.getCameraStats(ctx)
}

func (c *CCTV) GetICamera() ICamera {
	return &ICameraImpl{cctv: c}
}
