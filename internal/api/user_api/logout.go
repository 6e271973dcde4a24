package user_api

// File: honey_admin/api/user_api/logout.go
// Description: 用户注销API接口

import (
	"honey_admin/internal/middleware"
	"honey_admin/internal/utils/response"

	"github.com/gin-gonic/gin"
)

// UserLogoutView 用户注销接口处理函数
// JWT为无状态令牌，服务端不维护会话，注销由客户端丢弃令牌完成
func (UserApi) UserLogoutView(c *gin.Context) {
	claims := middleware.GetAuth(c)
	log := middleware.GetLog(c)
	log.Infof("用户注销 userID=%d", claims.UserID)
	response.OkWithMsg("注销成功", c)
}
