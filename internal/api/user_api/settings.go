package user_api

// File: honey_admin/api/user_api/settings.go
// Description: 用户偏好设置API接口，提供修改密码、通知开关、主题切换及账号注销功能

import (
	"honey_admin/internal/global"
	"honey_admin/internal/middleware"
	"honey_admin/internal/models"
	"honey_admin/internal/utils/pwd"
	"honey_admin/internal/utils/response"

	"github.com/gin-gonic/gin"
)

// ChangePasswordRequest 修改密码请求参数结构体
type ChangePasswordRequest struct {
	OldPassword string `json:"oldPassword" binding:"required"` // 原密码（必填）
	NewPassword string `json:"newPassword" binding:"required"` // 新密码（必填）
}

// ChangePasswordView 修改密码接口处理函数
func (UserApi) ChangePasswordView(c *gin.Context) {
	cr := middleware.GetBind[ChangePasswordRequest](c)
	claims := middleware.GetAuth(c)
	log := middleware.GetLog(c)

	var user models.UserModel
	if err := global.DB.Take(&user, claims.UserID).Error; err != nil {
		response.FailWithMsg("用户不存在", c)
		return
	}

	// 校验原密码
	if !pwd.CompareHashAndPassword(user.Password, cr.OldPassword) {
		response.FailWithMsg("原密码错误", c)
		return
	}

	// 加密并更新新密码
	hashPwd, _ := pwd.GenerateFromPassword(cr.NewPassword)
	if err := global.DB.Model(&user).Update("password", hashPwd).Error; err != nil {
		log.Errorf("密码更新失败 %s", err)
		response.FailWithMsg("密码修改失败", c)
		return
	}

	log.Infof("用户 %s 密码修改成功", user.Username)
	response.OkWithMsg("密码修改成功", c)
}

// UpdateNotificationsRequest 通知设置请求参数结构体
type UpdateNotificationsRequest struct {
	EmailNotifications bool `json:"emailNotifications"` // 邮件通知开关
}

// UpdateNotificationsView 通知设置更新接口处理函数
func (UserApi) UpdateNotificationsView(c *gin.Context) {
	cr := middleware.GetBind[UpdateNotificationsRequest](c)
	claims := middleware.GetAuth(c)

	err := global.DB.Model(&models.UserModel{Model: models.Model{ID: claims.UserID}}).
		Update("email_notifications", cr.EmailNotifications).Error
	if err != nil {
		response.FailWithMsg("通知设置更新失败", c)
		return
	}

	response.OkWithMsg("通知设置已更新", c)
}

// ToggleThemeRequest 主题切换请求参数结构体
type ToggleThemeRequest struct {
	Theme string `json:"theme" binding:"required,oneof=light dark"` // 主题 [light|dark]
}

// ToggleThemeView 主题切换接口处理函数
func (UserApi) ToggleThemeView(c *gin.Context) {
	cr := middleware.GetBind[ToggleThemeRequest](c)
	claims := middleware.GetAuth(c)

	err := global.DB.Model(&models.UserModel{Model: models.Model{ID: claims.UserID}}).
		Update("theme_preference", cr.Theme).Error
	if err != nil {
		response.FailWithMsg("主题设置更新失败", c)
		return
	}

	response.OkWithData(gin.H{"theme": cr.Theme}, c)
}

// DeleteAccountView 当前账号注销接口处理函数
func (UserApi) DeleteAccountView(c *gin.Context) {
	claims := middleware.GetAuth(c)
	log := middleware.GetLog(c)

	err := global.DB.Delete(&models.UserModel{}, claims.UserID).Error
	if err != nil {
		log.Errorf("账号删除失败 %s", err)
		response.FailWithMsg("账号删除失败", c)
		return
	}

	log.Infof("账号已删除 userID=%d", claims.UserID)
	response.OkWithMsg("账号已删除", c)
}
