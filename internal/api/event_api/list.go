package event_api

// File: honey_admin/api/event_api/list.go
// Description: 攻击事件列表查询API接口，支持IP模糊与HTTP方法过滤

import (
	"honey_admin/internal/global"
	"honey_admin/internal/middleware"
	"honey_admin/internal/models"
	"honey_admin/internal/service/common_service"
	"honey_admin/internal/utils/response"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ListRequest 攻击事件列表查询请求参数结构体
type ListRequest struct {
	IP              string `form:"ip"`       // IP模糊过滤
	Method          string `form:"method"`   // HTTP方法精确过滤
	Service         string `form:"service"`  // 蜜罐服务过滤
	Severity        string `form:"severity"` // 严重级别过滤
	models.PageInfo        // 分页信息嵌套结构体
}

// ListView 攻击事件列表查询接口处理函数，按事件时间降序
func (EventApi) ListView(c *gin.Context) {
	cr := middleware.GetBind[ListRequest](c)

	// IP包含匹配使用自定义Where条件
	var where *gorm.DB
	if cr.IP != "" {
		where = global.DB.Where("ip like ?", "%"+cr.IP+"%")
	}

	list, count, _ := common_service.QueryList(models.AttackEventModel{
		Method:          cr.Method,
		HoneypotService: cr.Service,
		Severity:        cr.Severity,
	}, common_service.QueryListRequest{
		Where:    where,
		PageInfo: cr.PageInfo,      // 分页参数
		Sort:     "timestamp desc", // 按事件时间降序排序
	})

	// 返回分页列表响应
	response.OkWithList(list, count, c)
}
