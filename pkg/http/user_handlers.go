package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"campuscctv.xyz/inventory-service/pkg/cctv"
	"campuscctv.xyz/inventory-service/pkg/common"
	"campuscctv.xyz/inventory-service/pkg/models"
)

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	User        *models.User `json:"user"`
	AccessToken string       `json:"access_token"`
	ExpiresIn   int64        `json:"expiresIn"`
}

type listUsersQuery struct {
	Page   int    `form:"page"`
	Limit  int    `form:"limit"`
	Role   string `form:"role"`
	Search string `form:"search"`
}

// Login checks the credentials, then returns a bearer token and also sets it
// as the token cookie.
func (rs *RestfulServer) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	if issues := cctv.ValidateLogin(&req.Email, &req.Password); len(issues) > 0 {
		respondIssues(c, http.StatusUnprocessableEntity, issues)
		return
	}
	if rs.Tokens == nil {
		respondError(c, common.Unauthorized("Login is not available."))
		return
	}

	user, err := rs.Cctv.User.Authenticate(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}
	token, err := rs.Tokens.Issue(user.ID, user.Role)
	if err != nil {
		respondError(c, err)
		return
	}

	ttl := int64(rs.Tokens.TTL().Seconds())
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(tokenCookieName, token, int(ttl), "/", "", false, true)

	common.GetLoggerWith(common.LoggerNameRestfulServer).Info("User logged in", zap.String("user_id", user.ID))
	respond(c, http.StatusOK, "Login successful", LoginResponse{User: user, AccessToken: token, ExpiresIn: ttl})
}

func (rs *RestfulServer) GetMe(c *gin.Context) {
	user, err := rs.Cctv.User.GetUser(c.Request.Context(), getPrincipal(c).ID)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, "User profile retrieved successfully", user)
}

func (rs *RestfulServer) ChangePassword(c *gin.Context) {
	var change cctv.PasswordChange
	if err := c.ShouldBindJSON(&change); err != nil {
		respondBindError(c, err)
		return
	}
	if issues := cctv.ValidatePasswordChange(&change); len(issues) > 0 {
		respondIssues(c, http.StatusUnprocessableEntity, issues)
		return
	}

	if err := rs.Cctv.User.ChangePassword(c.Request.Context(), getPrincipal(c).ID, change); err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, "Password changed successfully", nil)
}

func (rs *RestfulServer) ListUsers(c *gin.Context) {
	var q listUsersQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		respondBindError(c, err)
		return
	}

	page, err := rs.Cctv.User.ListUsers(c.Request.Context(), cctv.UserQuery{
		Page:   q.Page,
		Limit:  q.Limit,
		Role:   q.Role,
		Search: q.Search,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, "Users retrieved successfully", page)
}

func (rs *RestfulServer) GetUser(c *gin.Context) {
	user, err := rs.Cctv.User.GetUser(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, "User retrieved successfully", user)
}

func (rs *RestfulServer) CreateUser(c *gin.Context) {
	var in cctv.UserInput
	if err := c.ShouldBindJSON(&in); err != nil {
		respondBindError(c, err)
		return
	}
	if issues := cctv.ValidateUserInput(&in); len(issues) > 0 {
		respondIssues(c, http.StatusUnprocessableEntity, issues)
		return
	}

	user, err := rs.Cctv.User.CreateUser(c.Request.Context(), in)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusCreated, "User created successfully", user)
}

func (rs *RestfulServer) DeleteUser(c *gin.Context) {
	if err := rs.Cctv.User.DeleteUser(c.Request.Context(), c.Param("id"), getPrincipal(c).ID); err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, "User deleted successfully", nil)
}
