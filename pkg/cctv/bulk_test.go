package cctv

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"campuscctv.xyz/inventory-service/pkg/common"
	"campuscctv.xyz/inventory-service/pkg/models"
	_ "campuscctv.xyz/inventory-service/pkg/testing"
)

// failCreates makes every insert matched by match fail, until the returned
// func is called.
func failCreates(t *testing.T, c *CCTV, match func(dest any) bool) func() {
	t.Helper()
	name := "test:fail_create_" + uuid.NewString()
	err := c.Db.Conn.Callback().Create().Before("gorm:create").Register(name, func(tx *gorm.DB) {
		if match(tx.Statement.Dest) {
			_ = tx.AddError(errors.New("injected write failure"))
		}
	})
	require.NoError(t, err)
	return func() {
		_ = c.Db.Conn.Callback().Create().Remove(name)
	}
}

// failCameraCreates makes every camera insert whose name starts with prefix
// fail, until the returned func is called.
func failCameraCreates(t *testing.T, c *CCTV, prefix string) func() {
	return failCreates(t, c, func(dest any) bool {
		camera, ok := dest.(*models.Camera)
		return ok && strings.HasPrefix(camera.Name, prefix)
	})
}

// failTableReads makes every select on table fail, until the returned func
// is called.
func failTableReads(t *testing.T, c *CCTV, table string) func() {
	t.Helper()
	name := "test:fail_query_" + uuid.NewString()
	err := c.Db.Conn.Callback().Query().Before("gorm:query").Register(name, func(tx *gorm.DB) {
		if tx.Statement.Table == table {
			_ = tx.AddError(errors.New("injected read failure"))
		}
	})
	require.NoError(t, err)
	return func() {
		_ = c.Db.Conn.Callback().Query().Remove(name)
	}
}

func TestBulkCreateCameras(t *testing.T) {
	common.SetTestLoggerNop()

	c := GetCCTVWithMemorySqliteDialector(t)
	zone := newTestZone(t, c)

	inputs := []CameraInput{
		newCameraInput(zone.ID, 1),
		newCameraInput(zone.ID, 2),
		newCameraInput(zone.ID, 3),
	}
	inputs[2].MacID = ""
	inputs[2].IP = ""
	inputs[2].Status = "inactive"

	report, err := c.Bulk.BulkCreateCameras(context.Background(), inputs)
	require.NoError(t, err)

	assert.True(t, report.Success)
	assert.Equal(t, OutcomeFullSuccess, report.Outcome)
	assert.Equal(t, BulkCreateSummary{TotalRequested: 3, Created: 3}, report.Summary)
	require.Len(t, report.Details.Created, 3)
	assert.Nil(t, report.Details.Created[2].IP)
	assert.Equal(t, models.CameraStatusInactive, report.Details.Created[2].Status)

	loaded, err := c.Zone.GetZone(context.Background(), zone.ID, false)
	require.NoError(t, err)
	assert.Len(t, loaded.CameraIDs, 3)

	for _, created := range report.Details.Created {
		history := historyOf(t, c, created.ID)
		require.Len(t, history, 1)
		assert.Equal(t, created.Status, history[0].Status)
		assert.Contains(t, loaded.CameraIDs, created.ID)
	}
}

func TestBulkCreateCameras_PartialSuccess(t *testing.T) {
	common.SetTestLoggerNop()

	c := GetCCTVWithMemorySqliteDialector(t)
	zone := newTestZone(t, c)
	existing := newTestCamera(t, c, zone.ID, 1)

	missingZone := newCameraInput(uuid.NewString(), 1)
	valid := newCameraInput(zone.ID, 2)
	takenIP := newCameraInput(zone.ID, 3)
	takenIP.IP = *existing.IP

	report, err := c.Bulk.BulkCreateCameras(context.Background(), []CameraInput{missingZone, valid, takenIP})
	require.NoError(t, err)

	assert.True(t, report.Success)
	assert.Equal(t, OutcomePartialSuccess, report.Outcome)
	assert.Equal(t, BulkCreateSummary{TotalRequested: 3, Created: 1, ValidationErrors: 2}, report.Summary)
	assert.Equal(t, []CreateValidationError{
		{Index: 0, Name: missingZone.Name, Field: "zone", Error: "Zone not found"},
		{Index: 2, Name: takenIP.Name, Field: "ip", Error: "IP address already exists"},
	}, report.Details.ValidationErrors)
	assert.Equal(t, valid.Name, report.Details.Created[0].Name)
}

func TestBulkCreateCameras_IdentityChecks(t *testing.T) {
	common.SetTestLoggerNop()

	c := GetCCTVWithMemorySqliteDialector(t)
	zone := newTestZone(t, c)
	existing := newTestCamera(t, c, zone.ID, 7)

	badZone := newCameraInput("not-a-uuid", 1)
	takenMac := newCameraInput(zone.ID, 1)
	takenMac.MacID = strings.ToLower(*existing.MacID)
	takenPole := newCameraInput(zone.ID, 7)
	first := newCameraInput(zone.ID, 8)
	sameMacInBatch := newCameraInput(zone.ID, 9)
	sameMacInBatch.MacID = first.MacID
	samePoleInBatch := newCameraInput(zone.ID, 8)

	report, err := c.Bulk.BulkCreateCameras(context.Background(), []CameraInput{
		badZone, takenMac, takenPole, first, sameMacInBatch, samePoleInBatch,
	})
	require.NoError(t, err)

	assert.Equal(t, 1, report.Summary.Created)
	fields := map[int]string{}
	for _, issue := range report.Details.ValidationErrors {
		fields[issue.Index] = issue.Field
	}
	assert.Equal(t, map[int]string{0: "zone", 1: "mac_id", 2: "pole", 4: "mac_id", 5: "pole"}, fields)
	assert.Equal(t, "Invalid zone ID format", report.Details.ValidationErrors[0].Error)
}

func TestBulkCreateCameras_RuntimeErrors(t *testing.T) {
	common.SetTestLoggerNop()

	c := GetCCTVWithMemorySqliteDialector(t)
	zone := newTestZone(t, c)

	marker := "fail-" + uuid.NewString()[:8]
	restore := failCameraCreates(t, c, marker)
	defer restore()

	broken := newCameraInput(zone.ID, 1)
	broken.Name = marker + "-cam"
	healthy := newCameraInput(zone.ID, 2)

	report, err := c.Bulk.BulkCreateCameras(context.Background(), []CameraInput{broken, healthy})
	require.NoError(t, err)

	assert.Equal(t, OutcomePartialSuccess, report.Outcome)
	assert.Equal(t, BulkCreateSummary{TotalRequested: 2, Created: 1, Errors: 1}, report.Summary)
	assert.Equal(t, CreateError{Index: 0, Name: broken.Name, Error: "injected write failure"}, report.Details.Errors[0])

	// the failed record left nothing behind
	var count int64
	require.NoError(t, c.Db.Conn.Model(&models.Camera{}).Where("name = ?", broken.Name).Count(&count).Error)
	assert.Zero(t, count)
	loaded, err := c.Zone.GetZone(context.Background(), zone.ID, false)
	require.NoError(t, err)
	assert.Equal(t, []string{report.Details.Created[0].ID}, loaded.CameraIDs)
}

func TestBulkCreateCameras_TotalFailure(t *testing.T) {
	common.SetTestLoggerNop()

	c := GetCCTVWithMemorySqliteDialector(t)

	report, err := c.Bulk.BulkCreateCameras(context.Background(), []CameraInput{
		newCameraInput(uuid.NewString(), 1),
		newCameraInput(uuid.NewString(), 2),
	})
	require.NoError(t, err)

	assert.False(t, report.Success)
	assert.Equal(t, OutcomeTotalFailure, report.Outcome)
	assert.Equal(t, 2, report.Summary.ValidationErrors)
	assert.Empty(t, report.Details.Created)
}

func TestBulkCreateCameras_CanceledContext(t *testing.T) {
	common.SetTestLoggerNop()

	c := GetCCTVWithMemorySqliteDialector(t)
	zone := newTestZone(t, c)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	report, err := c.Bulk.BulkCreateCameras(ctx, []CameraInput{newCameraInput(zone.ID, 1)})
	require.NoError(t, err)
	assert.Equal(t, 1, report.Summary.Created)
}

func TestBulkCreateCameras_Logs(t *testing.T) {
	var buf bytes.Buffer
	common.SetTestCaptureLogger(&buf, zap.InfoLevel)
	defer common.SetTestLoggerNop()

	c := GetCCTVWithMemorySqliteDialector(t)
	zone := newTestZone(t, c)

	_, err := c.Bulk.BulkCreateCameras(context.Background(), []CameraInput{newCameraInput(zone.ID, 1)})
	require.NoError(t, err)

	logs := ParseLogs(&buf)
	assert.True(t, hasLogMessage(logs, "Bulk create finished"))
}

func TestBulkCreateCameras_IndexFailure(t *testing.T) {
	common.SetTestLoggerNop()

	c := GetCCTVWithMemorySqliteDialector(t)
	zone := newTestZone(t, c)

	restore := failTableReads(t, c, "zones")
	report, err := c.Bulk.BulkCreateCameras(context.Background(), []CameraInput{
		newCameraInput(zone.ID, 1),
		newCameraInput(zone.ID, 2),
	})
	restore()

	require.Error(t, err)
	assert.Nil(t, report)
	assert.True(t, strings.HasPrefix(err.Error(), "bulk create: loading zones: "), err.Error())

	var count int64
	require.NoError(t, c.Db.Conn.Model(&models.Camera{}).Where("zone_id = ?", zone.ID).Count(&count).Error)
	assert.Zero(t, count)
}

func TestBulkCreateCameras_MacSeparators(t *testing.T) {
	common.SetTestLoggerNop()

	c := GetCCTVWithMemorySqliteDialector(t)
	zone := newTestZone(t, c)
	existing := newTestCamera(t, c, zone.ID, 1)

	dashed := newCameraInput(zone.ID, 2)
	dashed.MacID = strings.ToLower(strings.ReplaceAll(*existing.MacID, ":", "-"))
	fresh := newCameraInput(zone.ID, 3)
	fresh.MacID = strings.ReplaceAll(fresh.MacID, ":", "-")

	report, err := c.Bulk.BulkCreateCameras(context.Background(), []CameraInput{dashed, fresh})
	require.NoError(t, err)

	require.Len(t, report.Details.ValidationErrors, 1)
	assert.Equal(t, "mac_id", report.Details.ValidationErrors[0].Field)
	assert.Equal(t, msgMacTaken, report.Details.ValidationErrors[0].Error)
	require.Len(t, report.Details.Created, 1)
	assert.Equal(t, strings.ReplaceAll(fresh.MacID, "-", ":"), *report.Details.Created[0].MacID)
}

func TestBulkUpdateStatus(t *testing.T) {
	common.SetTestLoggerNop()

	c := GetCCTVWithMemorySqliteDialector(t)
	zone := newTestZone(t, c)
	goingDown := newTestCamera(t, c, zone.ID, 1)
	stillUp := newTestCamera(t, c, zone.ID, 2)
	unknownIP := randomIP()

	report, err := c.Bulk.BulkUpdateStatus(context.Background(), []StatusInput{
		{IP: *goingDown.IP, Status: ptr(false)},
		{IP: *stillUp.IP, Status: ptr(true)},
		{IP: unknownIP, Status: ptr(true)},
	})
	require.NoError(t, err)

	assert.True(t, report.Success)
	assert.Equal(t, OutcomePartialSuccess, report.Outcome)
	assert.Equal(t, BulkStatusSummary{TotalRequested: 3, Updated: 2, NotFound: 1}, report.Summary)
	assert.Equal(t, []string{unknownIP}, report.Details.NotFound)
	assert.Equal(t, UpdatedCamera{
		ID:             goingDown.ID,
		Name:           goingDown.Name,
		IP:             *goingDown.IP,
		PreviousStatus: models.CameraStatusActive,
		NewStatus:      models.CameraStatusInactive,
	}, report.Details.Updated[0])

	// history grows only on an actual change
	downHistory := historyOf(t, c, goingDown.ID)
	require.Len(t, downHistory, 2)
	assert.Equal(t, models.CameraStatusInactive, downHistory[1].Status)
	assert.Len(t, historyOf(t, c, stillUp.ID), 1)

	reloaded, err := c.Camera.GetCamera(context.Background(), goingDown.ID, false)
	require.NoError(t, err)
	assert.Equal(t, models.CameraStatusInactive, reloaded.Status)
}

func TestBulkUpdateStatus_EveryEntryInOneBucket(t *testing.T) {
	common.SetTestLoggerNop()

	c := GetCCTVWithMemorySqliteDialector(t)
	zone := newTestZone(t, c)
	camera := newTestCamera(t, c, zone.ID, 1)

	inputs := []StatusInput{
		{IP: *camera.IP, Status: ptr(false)},
		{IP: *camera.IP, Status: ptr(true)},
		{IP: *camera.IP},
		{IP: randomIP(), Status: ptr(false)},
	}
	report, err := c.Bulk.BulkUpdateStatus(context.Background(), inputs)
	require.NoError(t, err)

	s := report.Summary
	assert.Equal(t, len(inputs), s.Updated+s.NotFound+s.Errors)
	assert.Equal(t, 2, s.Updated)
	assert.Equal(t, 1, s.Errors)
	assert.Equal(t, models.CameraStatusInactive, report.Details.Updated[1].PreviousStatus)
	assert.Len(t, historyOf(t, c, camera.ID), 3)
}

func TestBulkUpdateStatus_RuntimeErrors(t *testing.T) {
	common.SetTestLoggerNop()

	c := GetCCTVWithMemorySqliteDialector(t)
	zone := newTestZone(t, c)
	broken := newTestCamera(t, c, zone.ID, 1)
	healthy := newTestCamera(t, c, zone.ID, 2)

	restore := failCreates(t, c, func(dest any) bool {
		entry, ok := dest.(*models.HistoryEntry)
		return ok && entry.CameraID == broken.ID
	})
	report, err := c.Bulk.BulkUpdateStatus(context.Background(), []StatusInput{
		{IP: *broken.IP, Status: ptr(false)},
		{IP: *healthy.IP, Status: ptr(false)},
	})
	restore()
	require.NoError(t, err)

	assert.True(t, report.Success)
	assert.Equal(t, OutcomePartialSuccess, report.Outcome)
	assert.Equal(t, BulkStatusSummary{TotalRequested: 2, Updated: 1, Errors: 1}, report.Summary)
	require.Len(t, report.Details.Errors, 1)
	assert.Equal(t, *broken.IP, report.Details.Errors[0].IP)
	assert.Contains(t, report.Details.Errors[0].Error, "injected write failure")
	assert.Equal(t, healthy.ID, report.Details.Updated[0].ID)

	// the failed camera's transaction rolled back
	reloaded, err := c.Camera.GetCamera(context.Background(), broken.ID, false)
	require.NoError(t, err)
	assert.Equal(t, models.CameraStatusActive, reloaded.Status)
	assert.Len(t, historyOf(t, c, broken.ID), 1)
	assert.Len(t, historyOf(t, c, healthy.ID), 2)
}

func TestBulkUpdateStatus_TotalFailure(t *testing.T) {
	common.SetTestLoggerNop()

	c := GetCCTVWithMemorySqliteDialector(t)

	report, err := c.Bulk.BulkUpdateStatus(context.Background(), []StatusInput{
		{IP: randomIP(), Status: ptr(true)},
	})
	require.NoError(t, err)
	assert.False(t, report.Success)
	assert.Equal(t, OutcomeTotalFailure, report.Outcome)
}

func TestBulkUpdateStatus_HistoryIsBounded(t *testing.T) {
	common.SetTestLoggerNop()

	c := GetCCTVWithMemorySqliteDialector(t)
	zone := newTestZone(t, c)
	camera := newTestCamera(t, c, zone.ID, 1)

	up := false
	for range models.HistoryLimit + 10 {
		_, err := c.Bulk.BulkUpdateStatus(context.Background(), []StatusInput{{IP: *camera.IP, Status: ptr(up)}})
		require.NoError(t, err)
		up = !up
	}

	history := historyOf(t, c, camera.ID)
	require.Len(t, history, models.HistoryLimit)

	// the newest entries survive, oldest first
	last := history[len(history)-1]
	assert.Equal(t, models.StatusFromBool(!up), last.Status)
	for i := 1; i < len(history); i++ {
		assert.NotEqual(t, history[i-1].Status, history[i].Status)
		assert.Less(t, history[i-1].ID, history[i].ID)
	}
}
