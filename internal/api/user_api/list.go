package user_api

// File: honey_admin/api/user_api/list.go
// Description: 用户列表查询API接口

import (
	"honey_admin/internal/middleware"
	"honey_admin/internal/models"
	"honey_admin/internal/service/common_service"
	"honey_admin/internal/utils/response"

	"github.com/gin-gonic/gin"
)

// UserListRequest 用户列表查询请求参数结构体
type UserListRequest struct {
	models.PageInfo // 分页信息嵌套结构体
}

// UserListView 用户列表查询接口处理函数
func (UserApi) UserListView(c *gin.Context) {
	cr := middleware.GetBind[UserListRequest](c)

	// 调用通用查询服务获取用户列表，支持按用户名模糊搜索
	list, count, _ := common_service.QueryList(models.UserModel{}, common_service.QueryListRequest{
		Likes:    []string{"username"}, // 用户名字段支持模糊查询
		PageInfo: cr.PageInfo,          // 分页参数
		Sort:     "created_at desc",    // 按创建时间降序排序
	})

	// 返回带分页的列表数据
	response.OkWithList(list, count, c)
}
