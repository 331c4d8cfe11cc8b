package cctv

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"campuscctv.xyz/inventory-service/pkg/auth"
	"campuscctv.xyz/inventory-service/pkg/common"
	"campuscctv.xyz/inventory-service/pkg/db"
	"campuscctv.xyz/inventory-service/pkg/models"
)

const (
	msgInvalidUserID   = "Invalid user ID format"
	msgUserNotFound    = "User not found"
	msgEmailTaken      = "User with this email already exists"
	msgBadCredentials  = "Invalid email or password"
	msgWrongPassword   = "Current password is incorrect"
	msgSamePassword    = "New password must be different from current password"
	msgCannotDeleteYou = "You cannot delete your own account"
)

func (c *CCTV) listUsers(ctx context.Context, q UserQuery) (*Page[models.User], error) {
	page, limit := normalizePage(q.Page, q.Limit)

	tx := c.Db.Conn.WithContext(ctx).Model(&models.User{})
	if q.Role == auth.RoleAdmin || q.Role == auth.RoleUser {
		tx = tx.Where("role = ?", q.Role)
	}
	if strings.TrimSpace(q.Search) != "" {
		like := searchPattern(q.Search)
		tx = tx.Where("LOWER(name) LIKE ? OR LOWER(email) LIKE ?", like, like)
	}
	tx = tx.Session(&gorm.Session{})

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, err
	}

	users := []models.User{}
	if err := tx.Order("created_at DESC").Offset((page - 1) * limit).Limit(limit).Find(&users).Error; err != nil {
		return nil, err
	}
	return &Page[models.User]{Data: users, Pagination: newPagination(page, limit, total)}, nil
}

func (c *CCTV) getUser(ctx context.Context, id string) (*models.User, error) {
	if !isValidID(id) {
		return nil, common.BadRequest(msgInvalidUserID)
	}
	var user models.User
	err := c.Db.Conn.WithContext(ctx).First(&user, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, common.NotFound(msgUserNotFound)
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (c *CCTV) createUser(ctx context.Context, in UserInput) (*models.User, error) {
	logger := common.GetCategoryLogger(common.LoggerCategoryCCTVUser)

	if issues := ValidateUserInput(&in); len(issues) > 0 {
		return nil, common.Unprocessable(issues[0].Message)
	}

	conn := c.Db.Conn.WithContext(ctx)
	var count int64
	if err := conn.Model(&models.User{}).Where("email = ?", in.Email).Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, common.Conflict(msgEmailTaken)
	}

	hash, err := auth.HashPassword(in.Password)
	if err != nil {
		return nil, err
	}
	user := models.User{
		ID:       uuid.NewString(),
		Name:     in.Name,
		Email:    in.Email,
		Password: hash,
		Role:     in.Role,
	}
	err = conn.Create(&user).Error
	if db.IsUniqueViolation(err) {
		return nil, common.Conflict(msgEmailTaken)
	}
	if err != nil {
		return nil, err
	}

	logger.Info("Created user", zap.String("user_id", user.ID), zap.String("role", user.Role))
	return &user, nil
}

// deleteUser removes the user id on behalf of actorID, who may not remove
// themselves.
func (c *CCTV) deleteUser(ctx context.Context, id, actorID string) error {
	logger := common.GetCategoryLogger(common.LoggerCategoryCCTVUser)

	user, err := c.getUser(ctx, id)
	if err != nil {
		return err
	}
	if user.ID == actorID {
		return common.BadRequest(msgCannotDeleteYou)
	}
	if err := c.Db.Conn.WithContext(ctx).Delete(&models.User{}, "id = ?", user.ID).Error; err != nil {
		return err
	}

	logger.Info("Deleted user", zap.String("user_id", user.ID), zap.String("actor_id", actorID))
	return nil
}

func (c *CCTV) authenticate(ctx context.Context, email, password string) (*models.User, error) {
	logger := common.GetCategoryLogger(common.LoggerCategoryCCTVUser)

	email = strings.ToLower(strings.TrimSpace(email))
	var user models.User
	err := c.Db.Conn.WithContext(ctx).First(&user, "email = ?", email).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		logger.Warn("Login for unknown email")
		return nil, common.BadRequest(msgBadCredentials)
	}
	if err != nil {
		return nil, err
	}

	ok, err := auth.CheckPassword(user.Password, password)
	if err != nil {
		return nil, err
	}
	if !ok {
		logger.Warn("Login with wrong password", zap.String("user_id", user.ID))
		return nil, common.BadRequest(msgBadCredentials)
	}
	return &user, nil
}

func (c *CCTV) changePassword(ctx context.Context, id string, change PasswordChange) error {
	logger := common.GetCategoryLogger(common.LoggerCategoryCCTVUser)

	if issues := ValidatePasswordChange(&change); len(issues) > 0 {
		return common.Unprocessable(issues[0].Message)
	}
	user, err := c.getUser(ctx, id)
	if err != nil {
		return err
	}

	ok, err := auth.CheckPassword(user.Password, change.CurrentPassword)
	if err != nil {
		return err
	}
	if !ok {
		return common.BadRequest(msgWrongPassword)
	}
	if change.CurrentPassword == change.NewPassword {
		return common.BadRequest(msgSamePassword)
	}

	hash, err := auth.HashPassword(change.NewPassword)
	if err != nil {
		return err
	}
	err = c.Db.Conn.WithContext(ctx).Model(&models.User{}).Where("id = ?", user.ID).Update("password", hash).Error
	if err != nil {
		return err
	}

	logger.Info("Changed user password", zap.String("user_id", user.ID))
	return nil
}

type IUserImpl struct {
	cctv *CCTV
}

func (iu *IUserImpl) ListUsers(ctx context.Context, query UserQuery) (*Page[models.User], error) {
	return iu.cctv.listUsers(ctx, query)
}

func (iu *IUserImpl) GetUser(ctx context.Context, id string) (*models.User, error) {
	return iu.cctv.getUser(ctx, id)
}

func (iu *IUserImpl) CreateUser(ctx context.Context, input UserInput) (*models.User, error) {
	return iu.cctv.createUser(ctx, input)
}

func (iu *IUserImpl) DeleteUser(ctx context.Context, id, actorID string) error {
	return iu.cctv.deleteUser(ctx, id, actorID)
}

func (iu *IUserImpl) Authenticate(ctx context.Context, email, password string) (*models.User, error) {
	return iu.cctv.authenticate(ctx, email, password)
}

func (iu *IUserImpl) ChangePassword(ctx context.Context, id string, change PasswordChange) error {
	return iu.cctv.changePassword(ctx, id, change)
}

func (c *CCTV) GetIUser() IUser {
	return &IUserImpl{cctv: c}
}
