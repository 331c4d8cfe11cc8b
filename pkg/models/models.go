package models

import "time"

// HistoryLimit bounds the number of status history entries kept per camera.
const HistoryLimit = 30

type CameraStatus string

const (
	CameraStatusActive   CameraStatus = "active"
	CameraStatusInactive CameraStatus = "inactive"
)

func StatusFromBool(active bool) CameraStatus {
	if active {
		return CameraStatusActive
	}
	return CameraStatusInactive
}

func (s CameraStatus) Valid() bool {
	return s == CameraStatusActive || s == CameraStatusInactive
}

type Zone struct {
	ID          string    `gorm:"primaryKey;size:36" json:"id"`
	Name        string    `gorm:"size:100;uniqueIndex;not null" json:"name"`
	Description string    `gorm:"size:500" json:"description,omitempty"`
	Location    string    `json:"location,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`

	CameraIDs []string `gorm:"-" json:"cameras"`
	Cameras   []Camera `gorm:"-" json:"cameraDetails,omitempty"`
}

// ZoneCamera is one member of a zone's camera-id set.
type ZoneCamera struct {
	ZoneID    string    `gorm:"primaryKey;size:36"`
	CameraID  string    `gorm:"primaryKey;size:36;index"`
	CreatedAt time.Time
}

type Camera struct {
	ID        string       `gorm:"primaryKey;size:36" json:"id"`
	Name      string       `gorm:"size:100;not null" json:"name"`
	Location  string       `gorm:"size:200" json:"location,omitempty"`
	Latitude  float64      `gorm:"not null" json:"latitude"`
	Longitude float64      `gorm:"not null" json:"longitude"`
	Pole      int          `gorm:"not null;uniqueIndex:idx_cameras_zone_pole,priority:2" json:"pole"`
	MacID     *string      `gorm:"column:mac_id;size:17;uniqueIndex" json:"mac_id"`
	IP        *string      `gorm:"column:ip;size:15;uniqueIndex" json:"ip"`
	ZoneID    string       `gorm:"size:36;not null;uniqueIndex:idx_cameras_zone_pole,priority:1" json:"zone"`
	Status    CameraStatus `gorm:"type:varchar(10);default:active;check:status IN ('active','inactive')" json:"status"`
	Notes     string       `gorm:"size:500" json:"notes,omitempty"`
	CreatedAt time.Time    `json:"createdAt"`
	UpdatedAt time.Time    `json:"updatedAt"`

	History []HistoryEntry `gorm:"foreignKey:CameraID;constraint:OnDelete:CASCADE" json:"history"`
	Zone    *Zone          `gorm:"-" json:"zoneDetails,omitempty"`
}

type HistoryEntry struct {
	ID       uint         `gorm:"primaryKey" json:"-"`
	CameraID string       `gorm:"size:36;index" json:"-"`
	Date     time.Time    `json:"date"`
	Status   CameraStatus `gorm:"type:varchar(10)" json:"status"`
}

func (HistoryEntry) TableName() string {
	return "camera_history"
}

// User is an operator of the admin API. Password holds the bcrypt hash.
type User struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	Name      string    `gorm:"size:50;not null" json:"name"`
	Email     string    `gorm:"size:254;uniqueIndex;not null" json:"email"`
	Password  string    `gorm:"size:72;not null" json:"-"`
	Role      string    `gorm:"size:10;not null" json:"role"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// StringValue dereferences optional columns, "" when absent.
func StringValue(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// OptionalString maps "" to NULL so absent MAC/IP values never collide.
func OptionalString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
