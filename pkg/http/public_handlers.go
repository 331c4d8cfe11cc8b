package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"campuscctv.xyz/inventory-service/pkg/cctv"
	"campuscctv.xyz/inventory-service/pkg/common"
)

func (rs *RestfulServer) ListCameraIPs(c *gin.Context) {
	ips, err := rs.Cctv.Camera.ListCameraIPs(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, "Camera IPs fetched successfully", ips)
}

type bulkStatusResponse struct {
	Message string `json:"message"`
	*cctv.BulkStatusReport
}

// BulkStatusStatusCode is 200 when at least one camera was updated and 207
// otherwise; callers read the summary for per-record results.
func BulkStatusStatusCode(report *cctv.BulkStatusReport) (int, string) {
	switch report.Outcome {
	case cctv.OutcomeFullSuccess:
		return http.StatusOK, "Camera status updated successfully"
	case cctv.OutcomePartialSuccess:
		return http.StatusOK, "Camera status updated with some issues"
	default:
		return http.StatusMultiStatus, "Camera status update failed"
	}
}

func (rs *RestfulServer) BulkUpdateStatus(c *gin.Context) {
	logger := common.GetLoggerWith(common.LoggerNameRestfulServer)

	var inputs []cctv.StatusInput
	if err := c.ShouldBindJSON(&inputs); err != nil {
		respondBindError(c, err)
		return
	}
	if issues := cctv.ValidateBulkStatus(inputs); len(issues) > 0 {
		respondIssues(c, http.StatusUnprocessableEntity, issues)
		return
	}

	report, err := rs.Cctv.Bulk.BulkUpdateStatus(c.Request.Context(), inputs)
	if err != nil {
		respondError(c, err)
		return
	}

	logger.Info("Device reported camera statuses",
		zap.String("device_id", c.GetString(ctxKeyDeviceID)),
		zap.Int("updated", report.Summary.Updated),
		zap.Int("not_found", report.Summary.NotFound),
	)

	status, message := BulkStatusStatusCode(report)
	c.JSON(status, bulkStatusResponse{Message: message, BulkStatusReport: report})
}
