package http

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/time/rate"

	"campuscctv.xyz/inventory-service/pkg/auth"
	"campuscctv.xyz/inventory-service/pkg/cctv"
)

type RestfulServer struct {
	Server           *gin.Engine
	Cctv             *cctv.CCTV
	RateLimiterStore *cctv.RateLimiterStore
	Tokens           *auth.TokenManager
}

func (rs *RestfulServer) GetLimiter(deviceID string) *rate.Limiter {
	if rs.RateLimiterStore == nil {
		return nil
	} else {
		return rs.RateLimiterStore.GetLimiter(deviceID)
	}
}

func (rs *RestfulServer) CheckDeviceLimiter(deviceID string) bool {
	limiter := rs.GetLimiter(deviceID)
	if limiter == nil {
		return true
	}
	return limiter.Allow()
}

func (rs *RestfulServer) SetLimiter(deviceID string, deviceRate float64, deviceBurst int) {
	if rs.RateLimiterStore == nil {
		return
	}
	rs.RateLimiterStore.SetLimiter(deviceID, rate.Limit(deviceRate), deviceBurst)
}

func (rs *RestfulServer) Setup() {
	rs.Server.Use(RequestMetrics())

	rs.Server.GET("/healthz", rs.HealthCheck)
	rs.Server.GET("/api/v1/health", rs.APIHealth)
	rs.Server.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := rs.Server.Group("/api/v1")

	authRoutes := api.Group("/auth")
	{
		authRoutes.POST("/login", rs.Login)
		authRoutes.GET("/me", rs.RequireAuth(), rs.GetMe)
		authRoutes.PATCH("/change-password", rs.RequireAuth(), rs.ChangePassword)
	}

	users := api.Group("/users", rs.RequireAuth())
	{
		users.GET("", rs.ListUsers)
		users.GET("/:id", rs.GetUser)

		admin := users.Group("", RequireRole(auth.RoleAdmin))
		admin.POST("", rs.CreateUser)
		admin.DELETE("/:id", rs.DeleteUser)
	}

	cameras := api.Group("/cameras", rs.RequireAuth())
	{
		cameras.GET("", rs.ListCameras)
		cameras.GET("/stats", rs.GetCameraStats)
		cameras.GET("/:id", rs.GetCamera)

		admin := cameras.Group("", RequireRole(auth.RoleAdmin))
		admin.POST("", rs.CreateCamera)
		admin.POST("/bulk", rs.BulkCreateCameras)
		admin.PUT("/:id", rs.UpdateCamera)
		admin.DELETE("/:id", rs.DeleteCamera)
		admin.PATCH("/:id/status", rs.UpdateCameraStatus)
	}

	zones := api.Group("/zones", rs.RequireAuth())
	{
		zones.GET("", rs.ListZones)
		zones.GET("/:id", rs.GetZone)
		zones.GET("/:id/stats", rs.GetZoneStats)

		admin := zones.Group("", RequireRole(auth.RoleAdmin))
		admin.POST("", rs.CreateZone)
		admin.PUT("/:id", rs.UpdateZone)
		admin.DELETE("/:id", rs.DeleteZone)
		admin.POST("/:id/cameras/:cameraId", rs.AddCameraToZone)
		admin.DELETE("/:id/cameras/:cameraId", rs.RemoveCameraFromZone)
	}

	limiters := api.Group("/limiters", rs.RequireAuth(), RequireRole(auth.RoleAdmin))
	{
		limiters.PUT("/:device_id", rs.PutLimiter)
	}

	public := api.Group("/public", rs.RequireDeviceHeaders())
	{
		public.GET("/cameras-ips", rs.ListCameraIPs)
		public.PATCH("/cameras", rs.BulkUpdateStatus)
	}

	rs.Server.NoRoute(rs.RouteNotFound)
}
