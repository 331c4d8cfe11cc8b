package cctv

import (
	"campuscctv.xyz/inventory-service/pkg/models"
)

const (
	MaxBatchSize = 100

	DefaultPageLimit = 10
	MaxPageLimit     = 100
)

// CameraInput is one candidate camera, for single and bulk create.
// Numeric fields are pointers so a missing value differs from zero.
type CameraInput struct {
	Name      string   `json:"name"`
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
	Zone      string   `json:"zone"`
	Pole      *int     `json:"pole"`
	Location  string   `json:"location,omitempty"`
	MacID     string   `json:"mac_id,omitempty"`
	IP        string   `json:"ip,omitempty"`
	Status    string   `json:"status,omitempty"`
	Notes     string   `json:"notes,omitempty"`
}

// CameraUpdate carries only the fields being changed.
type CameraUpdate struct {
	Name      *string  `json:"name,omitempty"`
	Latitude  *float64 `json:"latitude,omitempty"`
	Longitude *float64 `json:"longitude,omitempty"`
	Zone      *string  `json:"zone,omitempty"`
	Pole      *int     `json:"pole,omitempty"`
	Location  *string  `json:"location,omitempty"`
	MacID     *string  `json:"mac_id,omitempty"`
	IP        *string  `json:"ip,omitempty"`
	Status    *string  `json:"status,omitempty"`
	Notes     *string  `json:"notes,omitempty"`
}

func (u CameraUpdate) IsEmpty() bool {
	return u.Name == nil && u.Latitude == nil && u.Longitude == nil && u.Zone == nil &&
		u.Pole == nil && u.Location == nil && u.MacID == nil && u.IP == nil &&
		u.Status == nil && u.Notes == nil
}

// StatusInput is one heartbeat result: true means the camera answered.
type StatusInput struct {
	IP     string `json:"ip"`
	Status *bool  `json:"status"`
}

type ZoneInput struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Location    string `json:"location,omitempty"`
}

type ZoneUpdate struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
	Location    *string `json:"location,omitempty"`
}

type UserInput struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

type PasswordChange struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}

type UserQuery struct {
	Page   int
	Limit  int
	Role   string
	Search string
}

type CameraQuery struct {
	Page        int
	Limit       int
	Search      string
	Status      string
	Zone        string
	IncludeZone bool
}

type ZoneQuery struct {
	Page           int
	Limit          int
	Search         string
	IncludeCameras bool
}

type Pagination struct {
	CurrentPage int   `json:"currentPage"`
	TotalPages  int   `json:"totalPages"`
	Items       int64 `json:"items"`
	Limit       int   `json:"limit"`
}

type Page[T any] struct {
	Data       []T        `json:"data"`
	Pagination Pagination `json:"pagination"`
}

func newPagination(page, limit int, items int64) Pagination {
	totalPages := int((items + int64(limit) - 1) / int64(limit))
	return Pagination{CurrentPage: page, TotalPages: totalPages, Items: items, Limit: limit}
}

func normalizePage(page, limit int) (int, int) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = DefaultPageLimit
	}
	if limit > MaxPageLimit {
		limit = MaxPageLimit
	}
	return page, limit
}

type StatusPercentage struct {
	Active   int `json:"active"`
	Inactive int `json:"inactive"`
}

type ZoneDistribution struct {
	ZoneID      string `json:"_id"`
	ZoneName    string `json:"zoneName"`
	CameraCount int64  `json:"cameraCount"`
}

type CameraStatsOverview struct {
	TotalCameras     int64            `json:"totalCameras"`
	ActiveCameras    int64            `json:"activeCameras"`
	InactiveCameras  int64            `json:"inactiveCameras"`
	StatusPercentage StatusPercentage `json:"statusPercentage"`
}

type CameraStats struct {
	Overview         CameraStatsOverview `json:"overview"`
	ZoneDistribution []ZoneDistribution  `json:"zoneDistribution"`
}

type ZoneStatistics struct {
	TotalCameras           int64            `json:"totalCameras"`
	ActiveCameras          int64            `json:"activeCameras"`
	InactiveCameras        int64            `json:"inactiveCameras"`
	CameraStatusPercentage StatusPercentage `json:"cameraStatusPercentage"`
}

type ZoneStats struct {
	Zone       models.Zone    `json:"zone"`
	Statistics ZoneStatistics `json:"statistics"`
}
