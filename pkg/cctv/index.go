package cctv

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"campuscctv.xyz/inventory-service/pkg/common"
	"campuscctv.xyz/inventory-service/pkg/db"
	"campuscctv.xyz/inventory-service/pkg/models"
)

type zonePole struct {
	zoneID string
	pole   int
}

// identityIndex holds every existing identity a creation batch can collide
// with. It is built with one query per field and grows as records are
// created, so later records in the same batch see earlier ones.
type identityIndex struct {
	zones map[string]struct{}
	macs  map[string]struct{}
	ips   map[string]struct{}
	poles map[zonePole]struct{}
}

type identityConflict struct {
	field   string
	message string
}

const (
	msgInvalidZoneID = "Invalid zone ID format"
	msgZoneNotFound  = "Zone not found"
	msgMacTaken      = "MAC ID already exists"
	msgIPTaken       = "IP address already exists"
	msgPoleTaken     = "Pole number already exists in the zone"
)

func isValidID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}

// macKey is the stored form of a MAC address: upper case, colon separated.
func macKey(mac string) string {
	return strings.ToUpper(strings.ReplaceAll(mac, "-", ":"))
}

func buildIdentityIndex(conn *gorm.DB, inputs []CameraInput) (*identityIndex, error) {
	var zoneIDs, macs, ips []string
	for _, in := range inputs {
		if isValidID(in.Zone) {
			zoneIDs = append(zoneIDs, in.Zone)
		}
		macs = append(macs, macKey(in.MacID))
		ips = append(ips, in.IP)
	}
	zoneIDs = common.Distinct(zoneIDs)

	idx := &identityIndex{
		zones: map[string]struct{}{},
		macs:  map[string]struct{}{},
		ips:   map[string]struct{}{},
		poles: map[zonePole]struct{}{},
	}

	zones, err := db.FindByFieldIn[models.Zone](conn.Select("id"), "id", zoneIDs)
	if err != nil {
		return nil, fmt.Errorf("loading zones: %w", err)
	}
	for _, zone := range zones {
		idx.zones[zone.ID] = struct{}{}
	}

	byMac, err := db.FindByFieldIn[models.Camera](conn.Select("id", "mac_id"), "mac_id", common.Distinct(macs))
	if err != nil {
		return nil, fmt.Errorf("loading cameras by mac: %w", err)
	}
	for _, camera := range byMac {
		idx.macs[models.StringValue(camera.MacID)] = struct{}{}
	}

	byIP, err := db.FindByFieldIn[models.Camera](conn.Select("id", "ip"), "ip", common.Distinct(ips))
	if err != nil {
		return nil, fmt.Errorf("loading cameras by ip: %w", err)
	}
	for _, camera := range byIP {
		idx.ips[models.StringValue(camera.IP)] = struct{}{}
	}

	byZone, err := db.FindByFieldIn[models.Camera](conn.Select("id", "zone_id", "pole"), "zone_id", zoneIDs)
	if err != nil {
		return nil, fmt.Errorf("loading cameras by zone: %w", err)
	}
	for _, camera := range byZone {
		idx.poles[zonePole{camera.ZoneID, camera.Pole}] = struct{}{}
	}

	return idx, nil
}

// check returns the first collision for in, in zone, MAC, IP, pole order.
func (idx *identityIndex) check(in CameraInput) *identityConflict {
	if !isValidID(in.Zone) {
		return &identityConflict{"zone", msgInvalidZoneID}
	}
	if _, ok := idx.zones[in.Zone]; !ok {
		return &identityConflict{"zone", msgZoneNotFound}
	}
	if in.MacID != "" {
		if _, ok := idx.macs[macKey(in.MacID)]; ok {
			return &identityConflict{"mac_id", msgMacTaken}
		}
	}
	if in.IP != "" {
		if _, ok := idx.ips[in.IP]; ok {
			return &identityConflict{"ip", msgIPTaken}
		}
	}
	if in.Pole != nil {
		if _, ok := idx.poles[zonePole{in.Zone, *in.Pole}]; ok {
			return &identityConflict{"pole", msgPoleTaken}
		}
	}
	return nil
}

func (idx *identityIndex) claim(camera *models.Camera) {
	if camera.MacID != nil {
		idx.macs[*camera.MacID] = struct{}{}
	}
	if camera.IP != nil {
		idx.ips[*camera.IP] = struct{}{}
	}
	idx.poles[zonePole{camera.ZoneID, camera.Pole}] = struct{}{}
}
