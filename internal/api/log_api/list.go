package log_api

// File: honey_admin/api/log_api/list.go
// Description: 系统日志列表查询API接口

import (
	"honey_admin/internal/middleware"
	"honey_admin/internal/models"
	"honey_admin/internal/service/common_service"
	"honey_admin/internal/utils/response"

	"github.com/gin-gonic/gin"
)

// ListRequest 日志列表查询请求参数结构体
type ListRequest struct {
	Type            int8   `form:"type"`     // 日志类型 1登录日志
	IP              string `form:"ip"`       // 按来源IP过滤
	Username        string `form:"username"` // 按用户名过滤
	models.PageInfo        // 分页信息嵌套结构体
}

// ListView 日志列表查询接口处理函数
func (LogApi) ListView(c *gin.Context) {
	cr := middleware.GetBind[ListRequest](c)

	list, count, _ := common_service.QueryList(models.LogModel{
		Type:     cr.Type,
		IP:       cr.IP,
		Username: cr.Username,
	}, common_service.QueryListRequest{
		Likes:    []string{"title"}, // 标题支持模糊查询
		PageInfo: cr.PageInfo,       // 分页参数
	})

	// 返回分页列表响应
	response.OkWithList(list, count, c)
}
