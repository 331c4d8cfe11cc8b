package cctv

import (
	"context"

	"campuscctv.xyz/inventory-service/pkg/db"
	"campuscctv.xyz/inventory-service/pkg/models"
)

//go:generate mockgen -source=cctv.go -destination=mocks/cctv_mock.go -package=mocks

type ICamera interface {
	ListCameras(ctx context.Context, query CameraQuery) (*Page[models.Camera], error)
	GetCamera(ctx context.Context, id string, includeZone bool) (*models.Camera, error)
	CreateCamera(ctx context.Context, input CameraInput) (*models.Camera, error)
	UpdateCamera(ctx context.Context, id string, update CameraUpdate) (*models.Camera, error)
	DeleteCamera(ctx context.Context, id string) error
	UpdateCameraStatus(ctx context.Context, id string, status models.CameraStatus) (*models.Camera, error)
	ListCameraIPs(ctx context.Context) ([]string, error)
	GetCameraStats(ctx context.Context) (*CameraStats, error)
}

type IZone interface {
	ListZones(ctx context.Context, query ZoneQuery) (*Page[models.Zone], error)
	GetZone(ctx context.Context, id string, includeCameras bool) (*models.Zone, error)
	CreateZone(ctx context.Context, input ZoneInput) (*models.Zone, error)
	UpdateZone(ctx context.Context, id string, update ZoneUpdate) (*models.Zone, error)
	DeleteZone(ctx context.Context, id string) error
	AddCameraToZone(ctx context.Context, zoneID, cameraID string) error
	RemoveCameraFromZone(ctx context.Context, zoneID, cameraID string) error
	GetZoneStats(ctx context.Context, id string) (*ZoneStats, error)
}

type IBulk interface {
	BulkCreateCameras(ctx context.Context, inputs []CameraInput) (*BulkCreateReport, error)
	BulkUpdateStatus(ctx context.Context, inputs []StatusInput) (*BulkStatusReport, error)
}

type IUser interface {
	ListUsers(ctx context.Context, query UserQuery) (*Page[models.User], error)
	GetUser(ctx context.Context, id string) (*models.User, error)
	CreateUser(ctx context.Context, input UserInput) (*models.User, error)
	DeleteUser(ctx context.Context, id, actorID string) error
	Authenticate(ctx context.Context, email, password string) (*models.User, error)
	ChangePassword(ctx context.Context, id string, change PasswordChange) error
}

type CCTV struct {
	Db     db.DB
	Camera ICamera
	Zone   IZone
	Bulk   IBulk
	User   IUser
}

type ServiceOpts struct {
	Camera ICamera
	Zone   IZone
	Bulk   IBulk
	User   IUser
}

func (c *CCTV) WithServices(opts ServiceOpts) *CCTV {
	if opts.Camera != nil {
		c.Camera = opts.Camera
	}
	if opts.Zone != nil {
		c.Zone = opts.Zone
	}
	if opts.Bulk != nil {
		c.Bulk = opts.Bulk
	}
	if opts.User != nil {
		c.User = opts.User
	}
	return c
}

// New wires the default service implementations over dbInstance.
func New(dbInstance *db.DB) *CCTV {
	c := &CCTV{Db: *dbInstance}
	return c.WithServices(ServiceOpts{
		Camera: c.GetICamera(),
		Zone:   c.GetIZone(),
		Bulk:   c.GetIBulk(),
		User:   c.GetIUser(),
	})
}
