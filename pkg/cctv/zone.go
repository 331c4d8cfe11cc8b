package cctv

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"campuscctv.xyz/inventory-service/pkg/common"
	"campuscctv.xyz/inventory-service/pkg/db"
	"campuscctv.xyz/inventory-service/pkg/models"
)

func (c *CCTV) listZones(ctx context.Context, q ZoneQuery) (*Page[models.Zone], error) {
	page, limit := normalizePage(q.Page, q.Limit)

	tx := c.Db.Conn.WithContext(ctx).Model(&models.Zone{})
	if strings.TrimSpace(q.Search) != "" {
		like := searchPattern(q.Search)
		tx = tx.Where("LOWER(name) LIKE ? OR LOWER(description) LIKE ? OR LOWER(location) LIKE ?", like, like, like)
	}
	tx = tx.Session(&gorm.Session{})

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, err
	}

	zones := []models.Zone{}
	if err := tx.Order("created_at DESC").Offset((page - 1) * limit).Limit(limit).Find(&zones).Error; err != nil {
		return nil, err
	}
	if err := c.attachMembers(ctx, zones, q.IncludeCameras); err != nil {
		return nil, err
	}

	return &Page[models.Zone]{Data: zones, Pagination: newPagination(page, limit, total)}, nil
}

// attachMembers fills each zone's camera-id set and, with details, the
// cameras themselves.
func (c *CCTV) attachMembers(ctx context.Context, zones []models.Zone, details bool) error {
	conn := c.Db.Conn.WithContext(ctx)
	ids := common.Mapper(zones, func(zone models.Zone) string { return zone.ID })
	members, err := zoneMembers(conn, ids)
	if err != nil {
		return err
	}

	var byID map[string]models.Camera
	if details {
		var cameraIDs []string
		for _, m := range members {
			cameraIDs = append(cameraIDs, m...)
		}
		cameras, err := db.FindByFieldIn[models.Camera](conn, "id", cameraIDs)
		if err != nil {
			return err
		}
		byID = make(map[string]models.Camera, len(cameras))
		for _, camera := range cameras {
			byID[camera.ID] = camera
		}
	}

	for i := range zones {
		zones[i].CameraIDs = members[zones[i].ID]
		if zones[i].CameraIDs == nil {
			zones[i].CameraIDs = []string{}
		}
		if details {
			zones[i].Cameras = []models.Camera{}
			for _, id := range zones[i].CameraIDs {
				if camera, ok := byID[id]; ok {
					zones[i].Cameras = append(zones[i].Cameras, camera)
				}
			}
		}
	}
	return nil
}

func (c *CCTV) findZone(ctx context.Context, id string) (*models.Zone, error) {
	if !isValidID(id) {
		return nil, common.BadRequest(msgInvalidZoneID)
	}
	var zone models.Zone
	err := c.Db.Conn.WithContext(ctx).First(&zone, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, common.NotFound(msgZoneNotFound)
	}
	if err != nil {
		return nil, err
	}
	return &zone, nil
}

func (c *CCTV) getZone(ctx context.Context, id string, includeCameras bool) (*models.Zone, error) {
	zone, err := c.findZone(ctx, id)
	if err != nil {
		return nil, err
	}
	zones := []models.Zone{*zone}
	if err := c.attachMembers(ctx, zones, includeCameras); err != nil {
		return nil, err
	}
	return &zones[0], nil
}

func (c *CCTV) zoneNameTaken(ctx context.Context, name, selfID string) (bool, error) {
	var count int64
	err := c.Db.Conn.WithContext(ctx).Model(&models.Zone{}).
		Where("name = ? AND id <> ?", name, selfID).
		Count(&count).Error
	return count > 0, err
}

func (c *CCTV) createZone(ctx context.Context, in ZoneInput) (*models.Zone, error) {
	logger := common.GetCategoryLogger(common.LoggerCategoryCCTVZone)

	if issues := ValidateZoneInput(&in); len(issues) > 0 {
		return nil, common.Unprocessable(issues[0].Message)
	}
	taken, err := c.zoneNameTaken(ctx, in.Name, "")
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, common.Conflict("Zone with this name already exists")
	}

	zone := models.Zone{
		ID:          uuid.NewString(),
		Name:        in.Name,
		Description: in.Description,
		Location:    in.Location,
	}
	err = c.Db.Conn.WithContext(ctx).Create(&zone).Error
	if db.IsUniqueViolation(err) {
		return nil, common.Conflict("Zone with this name already exists")
	}
	if err != nil {
		return nil, err
	}
	zone.CameraIDs = []string{}

	logger.Info("Created zone", zap.String("zone_id", zone.ID), zap.String("name", zone.Name))
	return &zone, nil
}

func (c *CCTV) updateZone(ctx context.Context, id string, u ZoneUpdate) (*models.Zone, error) {
	logger := common.GetCategoryLogger(common.LoggerCategoryCCTVZone)

	zone, err := c.findZone(ctx, id)
	if err != nil {
		return nil, err
	}
	if issues := ValidateZoneUpdate(&u); len(issues) > 0 {
		return nil, common.Unprocessable(issues[0].Message)
	}

	updates := map[string]any{}
	if u.Name != nil && *u.Name != zone.Name {
		taken, err := c.zoneNameTaken(ctx, *u.Name, zone.ID)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, common.Conflict("Zone with this name already exists")
		}
		updates["name"] = *u.Name
	}
	if u.Description != nil {
		updates["description"] = *u.Description
	}
	if u.Location != nil {
		updates["location"] = *u.Location
	}

	if len(updates) > 0 {
		err = c.Db.Conn.WithContext(ctx).Model(&models.Zone{}).Where("id = ?", zone.ID).Updates(updates).Error
		if db.IsUniqueViolation(err) {
			return nil, common.Conflict("Zone with this name already exists")
		}
		if err != nil {
			return nil, err
		}
	}

	logger.Info("Updated zone", zap.String("zone_id", zone.ID), zap.Int("fields", len(updates)))
	return c.getZone(ctx, id, false)
}

func (c *CCTV) deleteZone(ctx context.Context, id string) error {
	logger := common.GetCategoryLogger(common.LoggerCategoryCCTVZone)

	zone, err := c.findZone(ctx, id)
	if err != nil {
		return err
	}

	conn := c.Db.Conn.WithContext(ctx)
	var members, cameras int64
	if err := conn.Model(&models.ZoneCamera{}).Where("zone_id = ?", zone.ID).Count(&members).Error; err != nil {
		return err
	}
	if err := conn.Model(&models.Camera{}).Where("zone_id = ?", zone.ID).Count(&cameras).Error; err != nil {
		return err
	}
	if members > 0 || cameras > 0 {
		return common.BadRequest("Cannot delete zone with existing cameras. Please remove or reassign cameras first.")
	}

	if err := conn.Delete(&models.Zone{}, "id = ?", zone.ID).Error; err != nil {
		return err
	}

	logger.Info("Deleted zone", zap.String("zone_id", zone.ID))
	return nil
}

// addCameraToZone reassigns a camera to the zone, keeping the camera's zone
// reference and both zones' camera sets in step.
func (c *CCTV) addCameraToZone(ctx context.Context, zoneID, cameraID string) error {
	logger := common.GetCategoryLogger(common.LoggerCategoryCCTVZone)

	zone, err := c.findZone(ctx, zoneID)
	if err != nil {
		return err
	}
	camera, err := c.findCamera(ctx, cameraID)
	if err != nil {
		return err
	}

	conn := c.Db.Conn.WithContext(ctx)
	member, err := isZoneMember(conn, zone.ID, camera.ID)
	if err != nil {
		return err
	}
	if member && camera.ZoneID == zone.ID {
		return common.BadRequest("Camera already exists in this zone")
	}

	if camera.ZoneID != zone.ID {
		taken, err := c.isTaken(ctx, camera.ID, "zone_id = ? AND pole = ?", zone.ID, camera.Pole)
		if err != nil {
			return err
		}
		if taken {
			return common.Conflict("Camera with this pole number already exists in the zone")
		}
	}

	err = conn.Transaction(func(tx *gorm.DB) error {
		if err := moveToZone(tx, camera.ZoneID, zone.ID, camera.ID); err != nil {
			return err
		}
		return tx.Model(&models.Camera{}).Where("id = ?", camera.ID).Update("zone_id", zone.ID).Error
	})
	if db.IsUniqueViolation(err) {
		return common.Conflict("Camera with this pole number already exists in the zone")
	}
	if err != nil {
		return err
	}

	logger.Info("Added camera to zone",
		zap.String("zone_id", zone.ID),
		zap.String("camera_id", camera.ID),
		zap.String("previous_zone_id", camera.ZoneID),
	)
	return nil
}

// removeCameraFromZone drops a stale entry from the zone's camera set. A
// camera whose zone reference is this zone must be reassigned or deleted
// instead, since every camera belongs to exactly one zone.
func (c *CCTV) removeCameraFromZone(ctx context.Context, zoneID, cameraID string) error {
	logger := common.GetCategoryLogger(common.LoggerCategoryCCTVZone)

	zone, err := c.findZone(ctx, zoneID)
	if err != nil {
		return err
	}
	if !isValidID(cameraID) {
		return common.BadRequest("Invalid camera ID format")
	}

	conn := c.Db.Conn.WithContext(ctx)
	member, err := isZoneMember(conn, zone.ID, cameraID)
	if err != nil {
		return err
	}
	if !member {
		return common.NotFound("Camera not found in this zone")
	}

	var camera models.Camera
	err = conn.Select("id", "zone_id").First(&camera, "id = ?", cameraID).Error
	if err == nil && camera.ZoneID == zone.ID {
		return common.BadRequest("Camera belongs to this zone. Reassign it to another zone or delete it instead.")
	}
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	if err := removeFromZone(conn, zone.ID, cameraID); err != nil {
		return err
	}

	logger.Info("Removed camera from zone", zap.String("zone_id", zone.ID), zap.String("camera_id", cameraID))
	return nil
}

func (c *CCTV) getZoneStats(ctx context.Context, id string) (*ZoneStats, error) {
	zone, err := c.getZone(ctx, id, false)
	if err != nil {
		return nil, err
	}

	conn := c.Db.Conn.WithContext(ctx)
	var total, active int64
	if err := conn.Model(&models.Camera{}).Where("zone_id = ?", zone.ID).Count(&total).Error; err != nil {
		return nil, err
	}
	err = conn.Model(&models.Camera{}).
		Where("zone_id = ? AND status = ?", zone.ID, models.CameraStatusActive).
		Count(&active).Error
	if err != nil {
		return nil, err
	}
	inactive := total - active

	return &ZoneStats{
		Zone: *zone,
		Statistics: ZoneStatistics{
			TotalCameras:    total,
			ActiveCameras:   active,
			InactiveCameras: inactive,
			CameraStatusPercentage: StatusPercentage{
				Active:   common.Percent(active, total),
				Inactive: common.Percent(inactive, total),
			},
		},
	}, nil
}

type IZoneImpl struct {
	cctv *CCTV
}

func (iz *IZoneImpl) ListZones(ctx context.Context, query ZoneQuery) (*Page[models.Zone], error) {
	return iz.cctv.listZones(ctx, query)
}

func (iz *IZoneImpl) GetZone(ctx context.Context, id string, includeCameras bool) (*models.Zone, error) {
	return iz.cctv.getZone(ctx, id, includeCameras)
}

func (iz *IZoneImpl) CreateZone(ctx context.Context, input ZoneInput) (*models.Zone, error) {
	return iz.cctv.createZone(ctx, input)
}

func (iz *IZoneImpl) UpdateZone(ctx context.Context, id string, update ZoneUpdate) (*models.Zone, error) {
	return iz.cctv.updateZone(ctx, id, update)
}

func (iz *IZoneImpl) DeleteZone(ctx context.Context, id string) error {
	return iz.cctv.deleteZone(ctx, id)
}

func (iz *IZoneImpl) AddCameraToZone(ctx context.Context, zoneID, cameraID string) error {
	return iz.cctv.addCameraToZone(ctx, zoneID, cameraID)
}

func (iz *IZoneImpl) RemoveCameraFromZone(ctx context.Context, zoneID, cameraID string) error {
	return iz.cctv.removeCameraFromZone(ctx, zoneID, cameraID)
}

func (iz *IZoneImpl) GetZoneStats(ctx context.Context, id string) (*ZoneStats, error) {
	return iz.cctv.getZoneStats(ctx, id)
}

func (c *CCTV) GetIZone() IZone {
	return &IZoneImpl{cctv: c}
}
