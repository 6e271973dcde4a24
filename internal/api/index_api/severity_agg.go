package index_api

// File: honey_admin/api/index_api/severity_agg.go
// Description: 按严重级别维度的攻击事件聚合API接口

import (
	"honey_admin/internal/global"
	"honey_admin/internal/middleware"
	"honey_admin/internal/models"
	"honey_admin/internal/utils/response"

	"github.com/gin-gonic/gin"
)

// SeverityAggView 按严重级别聚合接口处理函数
// 严重级别为自由文本，按原值分组不做归一化
func (IndexApi) SeverityAggView(c *gin.Context) {
	log := middleware.GetLog(c)

	// 查询失败时降级为空数据
	var list = make([]AggItem, 0)
	err := global.DB.Model(models.AttackEventModel{}).
		Select("severity as label, count(id) as count").
		Group("severity").
		Order("count desc").
		Scan(&list).Error
	if err != nil {
		log.Errorf("严重级别聚合查询失败 %s", err)
	}

	response.OkWithData(list, c)
}
