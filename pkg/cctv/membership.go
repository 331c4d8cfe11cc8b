package cctv

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"campuscctv.xyz/inventory-service/pkg/models"
)

// addToZone puts cameraID in the zone's camera set. Adding a member twice
// is a no-op.
func addToZone(tx *gorm.DB, zoneID, cameraID string) error {
	return tx.Clauses(clause.OnConflict{DoNothing: true}).
		Create(&models.ZoneCamera{ZoneID: zoneID, CameraID: cameraID}).Error
}

func removeFromZone(tx *gorm.DB, zoneID, cameraID string) error {
	return tx.Where("zone_id = ? AND camera_id = ?", zoneID, cameraID).Delete(&models.ZoneCamera{}).Error
}

// moveToZone removes cameraID from the old zone's set before adding it to
// the new one.
func moveToZone(tx *gorm.DB, fromZoneID, toZoneID, cameraID string) error {
	if fromZoneID == toZoneID {
		return addToZone(tx, toZoneID, cameraID)
	}
	if err := removeFromZone(tx, fromZoneID, cameraID); err != nil {
		return err
	}
	return addToZone(tx, toZoneID, cameraID)
}

func isZoneMember(tx *gorm.DB, zoneID, cameraID string) (bool, error) {
	var count int64
	err := tx.Model(&models.ZoneCamera{}).
		Where("zone_id = ? AND camera_id = ?", zoneID, cameraID).
		Count(&count).Error
	return count > 0, err
}

// zoneMembers maps each zone id to its camera ids in insertion order.
func zoneMembers(tx *gorm.DB, zoneIDs []string) (map[string][]string, error) {
	members := make(map[string][]string, len(zoneIDs))
	if len(zoneIDs) == 0 {
		return members, nil
	}
	var rows []models.ZoneCamera
	if err := tx.Where("zone_id IN ?", zoneIDs).Order("created_at ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	for _, row := range rows {
		members[row.ZoneID] = append(members[row.ZoneID], row.CameraID)
	}
	return members, nil
}
