package user_api

// File: honey_admin/api/user_api/create.go
// Description: 创建用户API接口

import (
	"honey_admin/internal/middleware"
	"honey_admin/internal/service/user_service"
	"honey_admin/internal/utils/response"

	"github.com/gin-gonic/gin"
)

// CreateRequest 创建用户请求参数结构体
type CreateRequest struct {
	Username string `json:"username" binding:"required"` // 用户名（必填）
	Password string `json:"password" binding:"required"` // 密码（必填）
	Email    string `json:"email"`                       // 邮箱
	IsAdmin  bool   `json:"isAdmin"`                     // 管理员标识
}

// CreateView 创建用户接口处理函数
func (UserApi) CreateView(c *gin.Context) {
	cr := middleware.GetBind[CreateRequest](c)
	log := middleware.GetLog(c)

	// 调用用户服务执行创建逻辑
	service := user_service.NewUserService(log)
	user, err := service.Create(user_service.UserCreateRequest{
		Username: cr.Username,
		Password: cr.Password,
		Email:    cr.Email,
		IsAdmin:  cr.IsAdmin,
	})
	if err != nil {
		response.FailWithMsg(err.Error(), c)
		return
	}

	response.OkWithData(user, c)
}
