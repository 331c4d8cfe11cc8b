package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"campuscctv.xyz/inventory-service/pkg/cctv"
	"campuscctv.xyz/inventory-service/pkg/common"
)

type ErrorItem struct {
	Path    string `json:"path"`
	Message string `json:"message"`
}

type ErrorResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Errors  []ErrorItem `json:"errors"`
}

type SuccessResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

func respond(c *gin.Context, status int, message string, data any) {
	c.JSON(status, SuccessResponse{Success: true, Message: message, Data: data})
}

// respondError writes err with the status its kind maps to. Errors without a
// kind are logged and reported as 500 without their text.
func respondError(c *gin.Context, err error) {
	status := common.HTTPStatus(err)
	message := err.Error()
	if status == http.StatusInternalServerError {
		common.GetLoggerWith(common.LoggerNameRestfulServer).Error("Request failed",
			zap.String("method", c.Request.Method),
			zap.String("path", c.FullPath()),
			zap.Error(err),
		)
		message = "Something went wrong!"
	}
	c.AbortWithStatusJSON(status, ErrorResponse{
		Success: false,
		Message: message,
		Errors:  []ErrorItem{{Path: "", Message: message}},
	})
}

func respondIssues(c *gin.Context, status int, issues []cctv.FieldIssue) {
	items := common.Mapper(issues, func(issue cctv.FieldIssue) ErrorItem {
		return ErrorItem{Path: issue.Path, Message: issue.Message}
	})
	message := "Validation failed"
	if len(items) > 0 {
		message = items[0].Message
	}
	c.AbortWithStatusJSON(status, ErrorResponse{Success: false, Message: message, Errors: items})
}

func respondBindError(c *gin.Context, err error) {
	respondIssues(c, http.StatusUnprocessableEntity, []cctv.FieldIssue{{Path: "body", Message: err.Error()}})
}
