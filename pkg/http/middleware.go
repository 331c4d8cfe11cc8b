package http

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"campuscctv.xyz/inventory-service/pkg/auth"
	"campuscctv.xyz/inventory-service/pkg/common"
	"campuscctv.xyz/inventory-service/pkg/metrics"
)

const (
	ctxKeyPrincipal = "principal"
	ctxKeyDeviceID  = "device_id"

	tokenCookieName = "token"
)

func RequestMetrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		endpoint := c.FullPath()
		if endpoint == "" {
			endpoint = "unmatched"
		}
		metrics.RecordAPIRequest(c.Request.Method, endpoint, strconv.Itoa(c.Writer.Status()), time.Since(start))
	}
}

func bearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if token, found := strings.CutPrefix(header, "Bearer "); found && token != "" && token != "null" {
		return token
	}
	if cookie, err := c.Cookie(tokenCookieName); err == nil && cookie != "" && cookie != "null" {
		return cookie
	}
	return ""
}

// RequireAuth accepts a bearer token from the Authorization header or the
// token cookie.
func (rs *RestfulServer) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" || rs.Tokens == nil {
			respondError(c, common.Unauthorized("Please login to access this resource."))
			return
		}

		principal, err := rs.Tokens.Verify(token)
		if err != nil {
			respondError(c, common.Unauthorized("Invalid token. Please log in again!"))
			return
		}

		c.Set(ctxKeyPrincipal, principal)
		c.Next()
	}
}

func RequireRole(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		principal := getPrincipal(c)
		if principal == nil {
			respondError(c, common.Unauthorized("Please login to access this resource."))
			return
		}
		for _, role := range roles {
			if principal.Role == role {
				c.Next()
				return
			}
		}
		respondError(c, common.Forbidden("You do not have permission to access this resource"))
	}
}

func getPrincipal(c *gin.Context) *auth.Principal {
	value, exists := c.Get(ctxKeyPrincipal)
	if !exists {
		return nil
	}
	principal, _ := value.(*auth.Principal)
	return principal
}

// RequireDeviceHeaders gates the public ingestion path on the device
// credential headers and the per-device limiter.
func (rs *RestfulServer) RequireDeviceHeaders() gin.HandlerFunc {
	return func(c *gin.Context) {
		creds := auth.DeviceCredentials{
			Token:        c.GetHeader(common.HeaderDeviceToken),
			ID:           c.GetHeader(common.HeaderDeviceID),
			UniqueNumber: c.GetHeader(common.HeaderDeviceUniqueNumber),
		}

		if issues := auth.ValidateDeviceCredentials(&creds); len(issues) > 0 {
			c.AbortWithStatusJSON(http.StatusBadRequest, ErrorResponse{
				Success: false,
				Message: "Invalid or missing headers",
				Errors: common.Mapper(issues, func(issue auth.DeviceIssue) ErrorItem {
					return ErrorItem{Path: issue.Path, Message: issue.Message}
				}),
			})
			return
		}

		if !rs.CheckDeviceLimiter(creds.ID) {
			common.GetLoggerWith(common.LoggerNameRestfulServer).Warn("Device rate limited", zap.String("device_id", creds.ID))
			c.AbortWithStatus(http.StatusTooManyRequests)
			return
		}

		c.Set(ctxKeyDeviceID, creds.ID)
		c.Next()
	}
}
