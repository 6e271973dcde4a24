package attacker_api

// File: honey_admin/api/attacker_api/list.go
// Description: 攻击者档案列表查询API接口

import (
	"honey_admin/internal/middleware"
	"honey_admin/internal/models"
	"honey_admin/internal/service/common_service"
	"honey_admin/internal/utils/response"

	"github.com/gin-gonic/gin"
)

// ListRequest 攻击者档案列表查询请求参数结构体
type ListRequest struct {
	Country         string `form:"country"` // 按国家筛选
	models.PageInfo        // 分页信息嵌套结构体
}

// ListView 攻击者档案列表查询接口处理函数，按最近活动时间降序
func (AttackerApi) ListView(c *gin.Context) {
	cr := middleware.GetBind[ListRequest](c)

	// 调用通用查询服务获取档案列表，支持IP模糊搜索
	list, count, _ := common_service.QueryList(models.AttackerModel{
		Country: cr.Country,
	}, common_service.QueryListRequest{
		Likes:    []string{"ip"},   // IP字段支持模糊查询
		PageInfo: cr.PageInfo,      // 分页参数
		Sort:     "last_seen desc", // 按最近活动时间降序排序
	})

	// 返回分页列表响应
	response.OkWithList(list, count, c)
}
