package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"campuscctv.xyz/inventory-service/pkg/cctv"
)

type listZonesQuery struct {
	Page           int    `form:"page"`
	Limit          int    `form:"limit"`
	Search         string `form:"search"`
	IncludeCameras bool   `form:"includeCameras"`
}

func (rs *RestfulServer) ListZones(c *gin.Context) {
	var q listZonesQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		respondBindError(c, err)
		return
	}

	page, err := rs.Cctv.Zone.ListZones(c.Request.Context(), cctv.ZoneQuery{
		Page:           q.Page,
		Limit:          q.Limit,
		Search:         q.Search,
		IncludeCameras: q.IncludeCameras,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, "Zones fetched successfully", page)
}

func (rs *RestfulServer) GetZone(c *gin.Context) {
	includeCameras := c.Query("includeCameras") == "true"

	zone, err := rs.Cctv.Zone.GetZone(c.Request.Context(), c.Param("id"), includeCameras)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, "Zone fetched successfully", zone)
}

func (rs *RestfulServer) GetZoneStats(c *gin.Context) {
	stats, err := rs.Cctv.Zone.GetZoneStats(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, "Zone statistics fetched successfully", stats)
}

func (rs *RestfulServer) CreateZone(c *gin.Context) {
	var in cctv.ZoneInput
	if err := c.ShouldBindJSON(&in); err != nil {
		respondBindError(c, err)
		return
	}
	if issues := cctv.ValidateZoneInput(&in); len(issues) > 0 {
		respondIssues(c, http.StatusUnprocessableEntity, issues)
		return
	}

	zone, err := rs.Cctv.Zone.CreateZone(c.Request.Context(), in)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusCreated, "Zone created successfully", zone)
}

func (rs *RestfulServer) UpdateZone(c *gin.Context) {
	var u cctv.ZoneUpdate
	if err := c.ShouldBindJSON(&u); err != nil {
		respondBindError(c, err)
		return
	}
	if issues := cctv.ValidateZoneUpdate(&u); len(issues) > 0 {
		respondIssues(c, http.StatusUnprocessableEntity, issues)
		return
	}

	zone, err := rs.Cctv.Zone.UpdateZone(c.Request.Context(), c.Param("id"), u)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, "Zone updated successfully", zone)
}

func (rs *RestfulServer) DeleteZone(c *gin.Context) {
	if err := rs.Cctv.Zone.DeleteZone(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, "Zone deleted successfully", nil)
}

func (rs *RestfulServer) AddCameraToZone(c *gin.Context) {
	if err := rs.Cctv.Zone.AddCameraToZone(c.Request.Context(), c.Param("id"), c.Param("cameraId")); err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, "Camera added to zone successfully", nil)
}

func (rs *RestfulServer) RemoveCameraFromZone(c *gin.Context) {
	if err := rs.Cctv.Zone.RemoveCameraFromZone(c.Request.Context(), c.Param("id"), c.Param("cameraId")); err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, "Camera removed from zone successfully", nil)
}
