package index_api

// File: honey_admin/api/index_api/service_agg.go
// Description: 按蜜罐服务维度的攻击事件聚合API接口

import (
	"honey_admin/internal/global"
	"honey_admin/internal/middleware"
	"honey_admin/internal/models"
	"honey_admin/internal/utils/response"

	"github.com/gin-gonic/gin"
)

// AggItem 单维度聚合结果结构体
type AggItem struct {
	Label string `json:"label"` // 聚合维度取值
	Count int64  `json:"count"` // 该维度下的事件数量
}

// ServiceAggView 按蜜罐服务聚合接口处理函数
func (IndexApi) ServiceAggView(c *gin.Context) {
	log := middleware.GetLog(c)

	// 查询失败时降级为空数据，大屏展示不因单个聚合失败而中断
	var list = make([]AggItem, 0)
	err := global.DB.Model(models.AttackEventModel{}).
		Select("honeypot_service as label, count(id) as count").
		Group("honeypot_service").
		Order("count desc").
		Scan(&list).Error
	if err != nil {
		log.Errorf("服务维度聚合查询失败 %s", err)
	}

	response.OkWithData(list, c)
}
