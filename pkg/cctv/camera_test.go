package cctv

import (
	"context"
	"sort"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"campuscctv.xyz/inventory-service/pkg/common"
	"campuscctv.xyz/inventory-service/pkg/models"
)

func TestCreateCamera(t *testing.T) {
	common.SetTestLoggerNop()

	c := GetCCTVWithMemorySqliteDialector(t)
	zone := newTestZone(t, c)

	in := newCameraInput(zone.ID, 4)
	in.MacID = "0a:1b:2c:3d:4e:5f"
	camera, err := c.Camera.CreateCamera(context.Background(), in)
	require.NoError(t, err)

	assert.Equal(t, "0A:1B:2C:3D:4E:5F", *camera.MacID)
	assert.Equal(t, models.CameraStatusActive, camera.Status)

	loaded, err := c.Camera.GetCamera(context.Background(), camera.ID, true)
	require.NoError(t, err)
	require.NotNil(t, loaded.Zone)
	assert.Equal(t, zone.Name, loaded.Zone.Name)
	require.Len(t, loaded.History, 1)
	assert.Equal(t, models.CameraStatusActive, loaded.History[0].Status)
}

func TestCreateCamera_EdgeCases(t *testing.T) {
	common.SetTestLoggerNop()

	c := GetCCTVWithMemorySqliteDialector(t)
	zone := newTestZone(t, c)
	existing := newTestCamera(t, c, zone.ID, 1)

	tests := []struct {
		name   string
		mutate func(in *CameraInput)
		kind   common.ErrorKind
	}{
		{"unknown zone", func(in *CameraInput) { in.Zone = uuid.NewString() }, common.KindBadRequest},
		{"invalid zone", func(in *CameraInput) { in.Zone = "zone" }, common.KindBadRequest},
		{"taken mac", func(in *CameraInput) { in.MacID = *existing.MacID }, common.KindConflict},
		{"taken ip", func(in *CameraInput) { in.IP = *existing.IP }, common.KindConflict},
		{"taken pole", func(in *CameraInput) { in.Pole = ptr(1) }, common.KindConflict},
		{"invalid fields", func(in *CameraInput) { in.Latitude = nil }, common.KindUnprocessable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := newCameraInput(zone.ID, 2)
			tt.mutate(&in)
			_, err := c.Camera.CreateCamera(context.Background(), in)
			require.Error(t, err)
			assert.Equal(t, tt.kind, common.KindOf(err))
		})
	}
}

func TestGetCamera_EdgeCases(t *testing.T) {
	common.SetTestLoggerNop()

	c := GetCCTVWithMemorySqliteDialector(t)

	_, err := c.Camera.GetCamera(context.Background(), "bogus", false)
	assert.True(t, common.IsKind(err, common.KindBadRequest))

	_, err = c.Camera.GetCamera(context.Background(), uuid.NewString(), false)
	assert.True(t, common.IsKind(err, common.KindNotFound))
}

func TestUpdateCamera(t *testing.T) {
	common.SetTestLoggerNop()

	c := GetCCTVWithMemorySqliteDialector(t)
	from := newTestZone(t, c)
	to := newTestZone(t, c)
	camera := newTestCamera(t, c, from.ID, 1)

	updated, err := c.Camera.UpdateCamera(context.Background(), camera.ID, CameraUpdate{
		Name:   ptr("Moved Camera"),
		Zone:   ptr(to.ID),
		IP:     ptr(""),
		Status: ptr("inactive"),
	})
	require.NoError(t, err)

	assert.Equal(t, "Moved Camera", updated.Name)
	assert.Equal(t, to.ID, updated.ZoneID)
	assert.Nil(t, updated.IP)
	assert.Equal(t, models.CameraStatusInactive, updated.Status)
	assert.Len(t, updated.History, 2)

	oldZone, err := c.Zone.GetZone(context.Background(), from.ID, false)
	require.NoError(t, err)
	assert.NotContains(t, oldZone.CameraIDs, camera.ID)
	newZone, err := c.Zone.GetZone(context.Background(), to.ID, false)
	require.NoError(t, err)
	assert.Equal(t, []string{camera.ID}, newZone.CameraIDs)
}

func TestUpdateCamera_EdgeCases(t *testing.T) {
	common.SetTestLoggerNop()

	c := GetCCTVWithMemorySqliteDialector(t)
	zone := newTestZone(t, c)
	first := newTestCamera(t, c, zone.ID, 1)
	second := newTestCamera(t, c, zone.ID, 2)

	_, err := c.Camera.UpdateCamera(context.Background(), second.ID, CameraUpdate{Pole: ptr(1)})
	assert.True(t, common.IsKind(err, common.KindConflict))

	_, err = c.Camera.UpdateCamera(context.Background(), second.ID, CameraUpdate{MacID: first.MacID})
	assert.True(t, common.IsKind(err, common.KindConflict))

	_, err = c.Camera.UpdateCamera(context.Background(), second.ID, CameraUpdate{Zone: ptr(uuid.NewString())})
	assert.True(t, common.IsKind(err, common.KindBadRequest))

	_, err = c.Camera.UpdateCamera(context.Background(), second.ID, CameraUpdate{})
	assert.True(t, common.IsKind(err, common.KindUnprocessable))

	// keeping its own identity is not a conflict
	same, err := c.Camera.UpdateCamera(context.Background(), second.ID, CameraUpdate{IP: second.IP, Pole: ptr(2)})
	require.NoError(t, err)
	assert.Equal(t, second.IP, same.IP)
}

func TestDeleteCamera(t *testing.T) {
	common.SetTestLoggerNop()

	c := GetCCTVWithMemorySqliteDialector(t)
	zone := newTestZone(t, c)
	camera := newTestCamera(t, c, zone.ID, 1)

	require.NoError(t, c.Camera.DeleteCamera(context.Background(), camera.ID))

	_, err := c.Camera.GetCamera(context.Background(), camera.ID, false)
	assert.True(t, common.IsKind(err, common.KindNotFound))
	assert.Empty(t, historyOf(t, c, camera.ID))

	loaded, err := c.Zone.GetZone(context.Background(), zone.ID, false)
	require.NoError(t, err)
	assert.Empty(t, loaded.CameraIDs)

	err = c.Camera.DeleteCamera(context.Background(), camera.ID)
	assert.True(t, common.IsKind(err, common.KindNotFound))
}

func TestUpdateCameraStatus(t *testing.T) {
	common.SetTestLoggerNop()

	c := GetCCTVWithMemorySqliteDialector(t)
	zone := newTestZone(t, c)
	camera := newTestCamera(t, c, zone.ID, 1)

	updated, err := c.Camera.UpdateCameraStatus(context.Background(), camera.ID, models.CameraStatusInactive)
	require.NoError(t, err)
	assert.Equal(t, models.CameraStatusInactive, updated.Status)
	assert.Len(t, updated.History, 2)

	// same status again leaves history alone
	updated, err = c.Camera.UpdateCameraStatus(context.Background(), camera.ID, models.CameraStatusInactive)
	require.NoError(t, err)
	assert.Len(t, updated.History, 2)

	_, err = c.Camera.UpdateCameraStatus(context.Background(), camera.ID, "offline")
	assert.True(t, common.IsKind(err, common.KindUnprocessable))
}

func TestListCameras(t *testing.T) {
	common.SetTestLoggerNop()

	c := GetCCTVWithMemorySqliteDialector(t)
	zone := newTestZone(t, c)
	for pole := range 3 {
		newTestCamera(t, c, zone.ID, pole)
	}
	_, err := c.Camera.UpdateCameraStatus(context.Background(), newTestCamera(t, c, zone.ID, 9).ID, models.CameraStatusInactive)
	require.NoError(t, err)

	page, err := c.Camera.ListCameras(context.Background(), CameraQuery{Zone: zone.ID, Limit: 2, Page: 2, IncludeZone: true})
	require.NoError(t, err)
	assert.Equal(t, Pagination{CurrentPage: 2, TotalPages: 2, Items: 4, Limit: 2}, page.Pagination)
	require.Len(t, page.Data, 2)
	assert.Equal(t, zone.ID, page.Data[0].Zone.ID)

	inactive, err := c.Camera.ListCameras(context.Background(), CameraQuery{Zone: zone.ID, Status: "inactive"})
	require.NoError(t, err)
	assert.Len(t, inactive.Data, 1)

	target := page.Data[0]
	found, err := c.Camera.ListCameras(context.Background(), CameraQuery{Search: target.Name})
	require.NoError(t, err)
	require.Len(t, found.Data, 1)
	assert.Equal(t, target.ID, found.Data[0].ID)
}

func TestListCameraIPs(t *testing.T) {
	common.SetTestLoggerNop()

	c := GetCCTVWithMemorySqliteDialector(t)
	zone := newTestZone(t, c)
	withIP := newTestCamera(t, c, zone.ID, 1)
	noIP := newCameraInput(zone.ID, 2)
	noIP.IP = ""
	_, err := c.Camera.CreateCamera(context.Background(), noIP)
	require.NoError(t, err)

	ips, err := c.Camera.ListCameraIPs(context.Background())
	require.NoError(t, err)

	assert.Contains(t, ips, *withIP.IP)
	assert.NotContains(t, ips, "")
	assert.True(t, sort.StringsAreSorted(ips))
}

func TestGetCameraStats(t *testing.T) {
	common.SetTestLoggerNop()

	c := GetCCTVWithMemorySqliteDialector(t)
	zone := newTestZone(t, c)
	newTestCamera(t, c, zone.ID, 1)
	down := newTestCamera(t, c, zone.ID, 2)
	_, err := c.Camera.UpdateCameraStatus(context.Background(), down.ID, models.CameraStatusInactive)
	require.NoError(t, err)

	stats, err := c.Camera.GetCameraStats(context.Background())
	require.NoError(t, err)

	o := stats.Overview
	assert.Equal(t, o.TotalCameras, o.ActiveCameras+o.InactiveCameras)
	assert.GreaterOrEqual(t, o.InactiveCameras, int64(1))
	assert.InDelta(t, 100, o.StatusPercentage.Active+o.StatusPercentage.Inactive, 1)

	var found *ZoneDistribution
	for i := range stats.ZoneDistribution {
		if stats.ZoneDistribution[i].ZoneID == zone.ID {
			found = &stats.ZoneDistribution[i]
		}
	}
	require.NotNil(t, found)
	assert.Equal(t, zone.Name, found.ZoneName)
	assert.Equal(t, int64(2), found.CameraCount)
}
