package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"campuscctv.xyz/inventory-service/pkg/cctv"
	"campuscctv.xyz/inventory-service/pkg/models"
)

type listCamerasQuery struct {
	Page        int    `form:"page"`
	Limit       int    `form:"limit"`
	Search      string `form:"search"`
	Status      string `form:"status"`
	Zone        string `form:"zone"`
	IncludeZone bool   `form:"includeZone"`
}

func (rs *RestfulServer) ListCameras(c *gin.Context) {
	var q listCamerasQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		respondBindError(c, err)
		return
	}
	if q.Status != "" && !models.CameraStatus(q.Status).Valid() {
		respondIssues(c, http.StatusUnprocessableEntity, []cctv.FieldIssue{
			{Path: "status", Message: "Status must be either active or inactive."},
		})
		return
	}

	page, err := rs.Cctv.Camera.ListCameras(c.Request.Context(), cctv.CameraQuery{
		Page:        q.Page,
		Limit:       q.Limit,
		Search:      q.Search,
		Status:      q.Status,
		Zone:        q.Zone,
		IncludeZone: q.IncludeZone,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	respond(c, http.StatusOK, "Cameras fetched successfully", page)
}

func (rs *RestfulServer) GetCameraStats(c *gin.Context) {
	stats, err := rs.Cctv.Camera.GetCameraStats(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, "Camera statistics fetched successfully", stats)
}

func (rs *RestfulServer) GetCamera(c *gin.Context) {
	includeZone := c.Query("includeZone") == "true"

	camera, err := rs.Cctv.Camera.GetCamera(c.Request.Context(), c.Param("id"), includeZone)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, "Camera fetched successfully", camera)
}

func (rs *RestfulServer) CreateCamera(c *gin.Context) {
	var in cctv.CameraInput
	if err := c.ShouldBindJSON(&in); err != nil {
		respondBindError(c, err)
		return
	}
	if issues := cctv.ValidateCameraInput(&in); len(issues) > 0 {
		respondIssues(c, http.StatusUnprocessableEntity, issues)
		return
	}

	camera, err := rs.Cctv.Camera.CreateCamera(c.Request.Context(), in)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusCreated, "Camera created successfully", camera)
}

func (rs *RestfulServer) UpdateCamera(c *gin.Context) {
	var u cctv.CameraUpdate
	if err := c.ShouldBindJSON(&u); err != nil {
		respondBindError(c, err)
		return
	}
	if issues := cctv.ValidateCameraUpdate(&u); len(issues) > 0 {
		respondIssues(c, http.StatusUnprocessableEntity, issues)
		return
	}

	camera, err := rs.Cctv.Camera.UpdateCamera(c.Request.Context(), c.Param("id"), u)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, "Camera updated successfully", camera)
}

func (rs *RestfulServer) DeleteCamera(c *gin.Context) {
	if err := rs.Cctv.Camera.DeleteCamera(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, "Camera deleted successfully", nil)
}

type cameraStatusRequest struct {
	Status string `json:"status"`
}

func (rs *RestfulServer) UpdateCameraStatus(c *gin.Context) {
	var req cameraStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	status := models.CameraStatus(req.Status)
	if !status.Valid() {
		respondIssues(c, http.StatusUnprocessableEntity, []cctv.FieldIssue{
			{Path: "status", Message: "Status must be either active or inactive."},
		})
		return
	}

	camera, err := rs.Cctv.Camera.UpdateCameraStatus(c.Request.Context(), c.Param("id"), status)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, "Camera status updated successfully", camera)
}

type bulkCreateResponse struct {
	Message string `json:"message"`
	*cctv.BulkCreateReport
}

// BulkCreateStatusCode is 201 when every record was created, 207 on a
// mix of outcomes and 400 when nothing was created.
func BulkCreateStatusCode(report *cctv.BulkCreateReport) (int, string) {
	switch report.Outcome {
	case cctv.OutcomeFullSuccess:
		return http.StatusCreated, "Cameras created successfully"
	case cctv.OutcomePartialSuccess:
		return http.StatusMultiStatus, "Cameras created with some issues"
	default:
		return http.StatusBadRequest, "Camera creation failed"
	}
}

func (rs *RestfulServer) BulkCreateCameras(c *gin.Context) {
	var inputs []cctv.CameraInput
	if err := c.ShouldBindJSON(&inputs); err != nil {
		respondBindError(c, err)
		return
	}
	if issues := cctv.ValidateBulkCreate(inputs); len(issues) > 0 {
		respondIssues(c, http.StatusUnprocessableEntity, issues)
		return
	}

	report, err := rs.Cctv.Bulk.BulkCreateCameras(c.Request.Context(), inputs)
	if err != nil {
		respondError(c, err)
		return
	}

	status, message := BulkCreateStatusCode(report)
	c.JSON(status, bulkCreateResponse{Message: message, BulkCreateReport: report})
}
