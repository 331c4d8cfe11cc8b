package cctv

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"campuscctv.xyz/inventory-service/pkg/db"
	"campuscctv.xyz/inventory-service/pkg/models"
)

func GetCCTVWithMemorySqliteDialector(t *testing.T) *CCTV {
	t.Helper()
	dialector := db.UseMemorySqliteDialector()
	dbInstance := db.GetInstance(dialector) // ensure migrations
	return New(dbInstance)
}

func ParseLogs(r io.Reader) []any {
	scanner := bufio.NewScanner(r)
	var logs []any

	for scanner.Scan() {
		line := scanner.Text()
		var j any
		if err := json.Unmarshal([]byte(line), &j); err == nil {
			logs = append(logs, j)
		}
	}
	return logs
}

func hasLogMessage(logs []any, msg string) bool {
	for _, l := range logs {
		if entry, ok := l.(map[string]any); ok && entry["msg"] == msg {
			return true
		}
	}
	return false
}

func randomIP() string {
	u := uuid.New()
	return fmt.Sprintf("10.%d.%d.%d", u[0], u[1], u[2])
}

func randomMAC() string {
	u := uuid.New()
	return fmt.Sprintf("02:%02X:%02X:%02X:%02X:%02X", u[0], u[1], u[2], u[3], u[4])
}

func ptr[T any](v T) *T {
	return &v
}

func newTestZone(t *testing.T, c *CCTV) *models.Zone {
	t.Helper()
	zone, err := c.Zone.CreateZone(context.Background(), ZoneInput{
		Name:     "zone-" + uuid.NewString(),
		Location: "North campus",
	})
	require.NoError(t, err)
	return zone
}

func newCameraInput(zoneID string, pole int) CameraInput {
	return CameraInput{
		Name:      "cam-" + uuid.NewString()[:8],
		Latitude:  ptr(12.97),
		Longitude: ptr(77.59),
		Zone:      zoneID,
		Pole:      ptr(pole),
		MacID:     randomMAC(),
		IP:        randomIP(),
	}
}

func newTestCamera(t *testing.T, c *CCTV, zoneID string, pole int) *models.Camera {
	t.Helper()
	camera, err := c.Camera.CreateCamera(context.Background(), newCameraInput(zoneID, pole))
	require.NoError(t, err)
	return camera
}

func historyOf(t *testing.T, c *CCTV, cameraID string) []models.HistoryEntry {
	t.Helper()
	var history []models.HistoryEntry
	require.NoError(t, c.Db.Conn.Where("camera_id = ?", cameraID).Order("id ASC").Find(&history).Error)
	return history
}
