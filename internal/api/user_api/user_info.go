package user_api

// File: honey_admin/api/user_api/user_info.go
// Description: 当前登录用户信息查询API接口

import (
	"honey_admin/internal/global"
	"honey_admin/internal/middleware"
	"honey_admin/internal/models"
	"honey_admin/internal/utils/response"

	"github.com/gin-gonic/gin"
)

// UserInfoView 当前登录用户信息查询接口处理函数
func (UserApi) UserInfoView(c *gin.Context) {
	claims := middleware.GetAuth(c)

	// 根据Token中的用户ID查询用户信息
	var user models.UserModel
	if err := global.DB.Take(&user, claims.UserID).Error; err != nil {
		response.FailWithMsg("用户不存在", c)
		return
	}

	response.OkWithData(user, c)
}
