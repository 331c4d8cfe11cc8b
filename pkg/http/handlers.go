package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	z "github.com/Oudwins/zog"
	"github.com/Oudwins/zog/zhttp"

	"campuscctv.xyz/inventory-service/pkg/cctv"
	"campuscctv.xyz/inventory-service/pkg/common"
)

func (rs *RestfulServer) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (rs *RestfulServer) APIHealth(c *gin.Context) {
	respond(c, http.StatusOK, "API is healthy", gin.H{
		"status":    "ok",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

func (rs *RestfulServer) RouteNotFound(c *gin.Context) {
	respondError(c, common.NotFound("Route not found"))
}

type LimiterRequest struct {
	Rate  float64 `json:"rate"`
	Burst int     `json:"burst"`
}

var limiterRequestSchema = z.Struct(z.Shape{
	"rate":  z.Float64().GT(0, z.Message("Rate must be positive.")).Required(z.Message("Rate is required.")),
	"burst": z.Int().GT(0, z.Message("Burst must be positive.")).Required(z.Message("Burst is required.")),
})

// PutLimiter overrides the request rate of one device on the public path.
func (rs *RestfulServer) PutLimiter(c *gin.Context) {
	deviceID := c.Param("device_id")

	var req LimiterRequest
	if issueMap := limiterRequestSchema.Parse(zhttp.Request(c.Request), &req); issueMap != nil {
		var issues []cctv.FieldIssue
		for path, list := range issueMap {
			if path == "$first" {
				continue
			}
			for _, issue := range list {
				issues = append(issues, cctv.FieldIssue{Path: path, Message: issue.Message})
			}
		}
		respondIssues(c, http.StatusUnprocessableEntity, issues)
		return
	}

	rs.SetLimiter(deviceID, req.Rate, req.Burst)

	respond(c, http.StatusOK, "Limiter updated successfully", gin.H{
		"device_id": deviceID,
		"rate":      req.Rate,
		"burst":     req.Burst,
	})
}
