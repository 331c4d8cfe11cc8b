package cctv

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"campuscctv.xyz/inventory-service/pkg/common"
	"campuscctv.xyz/inventory-service/pkg/models"
)

func TestCreateZone(t *testing.T) {
	common.SetTestLoggerNop()

	c := GetCCTVWithMemorySqliteDialector(t)
	zone := newTestZone(t, c)

	assert.NotEmpty(t, zone.ID)
	assert.Empty(t, zone.CameraIDs)

	_, err := c.Zone.CreateZone(context.Background(), ZoneInput{Name: zone.Name})
	assert.True(t, common.IsKind(err, common.KindConflict))

	_, err = c.Zone.CreateZone(context.Background(), ZoneInput{Name: "x"})
	assert.True(t, common.IsKind(err, common.KindUnprocessable))
}

func TestUpdateZone(t *testing.T) {
	common.SetTestLoggerNop()

	c := GetCCTVWithMemorySqliteDialector(t)
	zone := newTestZone(t, c)
	other := newTestZone(t, c)

	renamed := "renamed-" + uuid.NewString()
	updated, err := c.Zone.UpdateZone(context.Background(), zone.ID, ZoneUpdate{Name: &renamed, Description: ptr("east wing")})
	require.NoError(t, err)
	assert.Equal(t, renamed, updated.Name)
	assert.Equal(t, "east wing", updated.Description)

	_, err = c.Zone.UpdateZone(context.Background(), zone.ID, ZoneUpdate{Name: &other.Name})
	assert.True(t, common.IsKind(err, common.KindConflict))

	_, err = c.Zone.UpdateZone(context.Background(), uuid.NewString(), ZoneUpdate{Location: ptr("x")})
	assert.True(t, common.IsKind(err, common.KindNotFound))
}

func TestDeleteZone(t *testing.T) {
	common.SetTestLoggerNop()

	c := GetCCTVWithMemorySqliteDialector(t)
	zone := newTestZone(t, c)
	camera := newTestCamera(t, c, zone.ID, 1)

	err := c.Zone.DeleteZone(context.Background(), zone.ID)
	assert.True(t, common.IsKind(err, common.KindBadRequest))

	require.NoError(t, c.Camera.DeleteCamera(context.Background(), camera.ID))
	require.NoError(t, c.Zone.DeleteZone(context.Background(), zone.ID))

	_, err = c.Zone.GetZone(context.Background(), zone.ID, false)
	assert.True(t, common.IsKind(err, common.KindNotFound))
}

func TestListZones(t *testing.T) {
	common.SetTestLoggerNop()

	c := GetCCTVWithMemorySqliteDialector(t)
	zone := newTestZone(t, c)
	camera := newTestCamera(t, c, zone.ID, 1)

	page, err := c.Zone.ListZones(context.Background(), ZoneQuery{Search: zone.Name, IncludeCameras: true})
	require.NoError(t, err)
	require.Len(t, page.Data, 1)
	assert.Equal(t, []string{camera.ID}, page.Data[0].CameraIDs)
	require.Len(t, page.Data[0].Cameras, 1)
	assert.Equal(t, camera.Name, page.Data[0].Cameras[0].Name)
	assert.Equal(t, int64(1), page.Pagination.Items)
}

func TestAddCameraToZone(t *testing.T) {
	common.SetTestLoggerNop()

	c := GetCCTVWithMemorySqliteDialector(t)
	from := newTestZone(t, c)
	to := newTestZone(t, c)
	camera := newTestCamera(t, c, from.ID, 5)

	err := c.Zone.AddCameraToZone(context.Background(), from.ID, camera.ID)
	assert.True(t, common.IsKind(err, common.KindBadRequest))

	require.NoError(t, c.Zone.AddCameraToZone(context.Background(), to.ID, camera.ID))

	moved, err := c.Camera.GetCamera(context.Background(), camera.ID, false)
	require.NoError(t, err)
	assert.Equal(t, to.ID, moved.ZoneID)

	oldZone, err := c.Zone.GetZone(context.Background(), from.ID, false)
	require.NoError(t, err)
	assert.Empty(t, oldZone.CameraIDs)
	newZone, err := c.Zone.GetZone(context.Background(), to.ID, false)
	require.NoError(t, err)
	assert.Equal(t, []string{camera.ID}, newZone.CameraIDs)

	// the pole is already used in the old zone by a new camera
	blocker := newTestCamera(t, c, from.ID, 5)
	err = c.Zone.AddCameraToZone(context.Background(), from.ID, camera.ID)
	assert.True(t, common.IsKind(err, common.KindConflict))
	assert.NotEmpty(t, blocker.ID)

	err = c.Zone.AddCameraToZone(context.Background(), to.ID, uuid.NewString())
	assert.True(t, common.IsKind(err, common.KindNotFound))
}

func TestRemoveCameraFromZone(t *testing.T) {
	common.SetTestLoggerNop()

	c := GetCCTVWithMemorySqliteDialector(t)
	zone := newTestZone(t, c)
	other := newTestZone(t, c)
	camera := newTestCamera(t, c, zone.ID, 1)

	err := c.Zone.RemoveCameraFromZone(context.Background(), zone.ID, camera.ID)
	assert.True(t, common.IsKind(err, common.KindBadRequest))

	err = c.Zone.RemoveCameraFromZone(context.Background(), other.ID, camera.ID)
	assert.True(t, common.IsKind(err, common.KindNotFound))

	// a stale member left behind can be removed
	require.NoError(t, c.Db.Conn.Create(&models.ZoneCamera{ZoneID: other.ID, CameraID: camera.ID}).Error)
	require.NoError(t, c.Zone.RemoveCameraFromZone(context.Background(), other.ID, camera.ID))

	loaded, err := c.Zone.GetZone(context.Background(), other.ID, false)
	require.NoError(t, err)
	assert.Empty(t, loaded.CameraIDs)
}

func TestGetZoneStats(t *testing.T) {
	common.SetTestLoggerNop()

	c := GetCCTVWithMemorySqliteDialector(t)
	zone := newTestZone(t, c)
	newTestCamera(t, c, zone.ID, 1)
	newTestCamera(t, c, zone.ID, 2)
	down := newTestCamera(t, c, zone.ID, 3)
	_, err := c.Camera.UpdateCameraStatus(context.Background(), down.ID, models.CameraStatusInactive)
	require.NoError(t, err)

	stats, err := c.Zone.GetZoneStats(context.Background(), zone.ID)
	require.NoError(t, err)

	assert.Equal(t, zone.ID, stats.Zone.ID)
	assert.Len(t, stats.Zone.CameraIDs, 3)
	assert.Equal(t, ZoneStatistics{
		TotalCameras:           3,
		ActiveCameras:          2,
		InactiveCameras:        1,
		CameraStatusPercentage: StatusPercentage{Active: 67, Inactive: 33},
	}, stats.Statistics)

	empty := newTestZone(t, c)
	stats, err = c.Zone.GetZoneStats(context.Background(), empty.ID)
	require.NoError(t, err)
	assert.Equal(t, StatusPercentage{}, stats.Statistics.CameraStatusPercentage)
}
