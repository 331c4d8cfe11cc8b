package db

import (
	"errors"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"campuscctv.xyz/inventory-service/pkg/common"
	"campuscctv.xyz/inventory-service/pkg/models"
	_ "campuscctv.xyz/inventory-service/pkg/testing"

	"gorm.io/gorm"
)

func tableExists(db *gorm.DB, tableName string) bool {
	var count int64
	err := db.Raw(
		`SELECT count(*) FROM sqlite_master WHERE type='table' AND name=?`, tableName,
	).Scan(&count).Error
	return err == nil && count > 0
}

func TestWithMemorySqlite(t *testing.T) {
	common.SetTestLoggerNop()

	dialector := UseMemorySqliteDialector()

	instance := GetInstance(dialector)
	if instance == nil {
		t.Fatal("Expected non-nil DB instance")
	}

	var tables = []string{"zones", "cameras", "camera_history", "zone_cameras"}
	for _, table := range tables {
		if !tableExists(instance.Conn, table) {
			t.Errorf("Expected table %q to exist after migration", table)
		}
	}
}

func TestSingletonConcurrency(t *testing.T) {
	common.SetTestLoggerNop()

	const goroutineCount = 20

	var wg sync.WaitGroup
	instances := make(chan *DB, goroutineCount)

	for range goroutineCount {
		wg.Add(1)
		go func() {
			defer wg.Done()
			instance := GetInstance(UseMemorySqliteDialector())
			instances <- instance
		}()
	}

	wg.Wait()
	close(instances)

	var first *DB
	for inst := range instances {
		if first == nil {
			first = inst
			continue
		}
		if inst != first {
			t.Error("Expected all instances to be the same (singleton), but found different ones")
		}
	}
}

func TestFindByFieldIn(t *testing.T) {
	common.SetTestLoggerNop()

	instance := GetInstance(UseMemorySqliteDialector())

	zones := []models.Zone{
		{ID: uuid.NewString(), Name: "zone-" + uuid.NewString()},
		{ID: uuid.NewString(), Name: "zone-" + uuid.NewString()},
		{ID: uuid.NewString(), Name: "zone-" + uuid.NewString()},
	}
	require.NoError(t, instance.Conn.Create(&zones).Error)

	found, err := FindByFieldIn[models.Zone](instance.Conn, "id", []string{zones[0].ID, zones[2].ID, uuid.NewString()})
	require.NoError(t, err)
	assert.Len(t, found, 2)

	ids := map[string]bool{}
	for _, z := range found {
		ids[z.ID] = true
	}
	assert.True(t, ids[zones[0].ID])
	assert.True(t, ids[zones[2].ID])

	empty, err := FindByFieldIn[models.Zone](instance.Conn, "id", nil)
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestUniqueIndexes(t *testing.T) {
	common.SetTestLoggerNop()

	instance := GetInstance(UseMemorySqliteDialector())

	zone := models.Zone{ID: uuid.NewString(), Name: "zone-" + uuid.NewString()}
	require.NoError(t, instance.Conn.Create(&zone).Error)

	ip := "10.250.0.1"
	first := models.Camera{ID: uuid.NewString(), Name: "first", ZoneID: zone.ID, Pole: 1, IP: &ip, Status: models.CameraStatusActive}
	require.NoError(t, instance.Conn.Create(&first).Error)
	defer instance.Conn.Delete(&models.Camera{}, "id = ?", first.ID)

	second := models.Camera{ID: uuid.NewString(), Name: "second", ZoneID: zone.ID, Pole: 2, IP: &ip, Status: models.CameraStatusActive}
	err := instance.Conn.Create(&second).Error
	require.Error(t, err)
	assert.True(t, IsUniqueViolation(err))

	samePole := models.Camera{ID: uuid.NewString(), Name: "third", ZoneID: zone.ID, Pole: 1, Status: models.CameraStatusActive}
	err = instance.Conn.Create(&samePole).Error
	require.Error(t, err)
	assert.True(t, IsUniqueViolation(err))

	// absent MAC/IP values are NULL and never collide
	noAddr1 := models.Camera{ID: uuid.NewString(), Name: "no-addr-1", ZoneID: zone.ID, Pole: 3, Status: models.CameraStatusActive}
	noAddr2 := models.Camera{ID: uuid.NewString(), Name: "no-addr-2", ZoneID: zone.ID, Pole: 4, Status: models.CameraStatusActive}
	require.NoError(t, instance.Conn.Create(&noAddr1).Error)
	require.NoError(t, instance.Conn.Create(&noAddr2).Error)
	defer instance.Conn.Delete(&models.Camera{}, "id IN ?", []string{noAddr1.ID, noAddr2.ID})

	assert.False(t, IsUniqueViolation(nil))
	assert.False(t, IsUniqueViolation(errors.New("database is locked")))
}

func TestDialectorFor(t *testing.T) {
	for _, dbType := range []string{"file", "memory", "postgres", "mysql"} {
		d, err := DialectorFor(dbType, "dsn")
		require.NoError(t, err, dbType)
		assert.NotNil(t, d)
	}

	_, err := DialectorFor("mongo", "")
	require.Error(t, err)
}
