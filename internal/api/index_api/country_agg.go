package index_api

// File: honey_admin/api/index_api/country_agg.go
// Description: 按国家维度的攻击事件聚合API接口
// 事件表不存国家，通过档案表关联得到事件的国家归属

import (
	"honey_admin/internal/global"
	"honey_admin/internal/middleware"
	"honey_admin/internal/models"
	"honey_admin/internal/utils/response"

	"github.com/gin-gonic/gin"
)

// CountryAggView 按国家聚合接口处理函数
func (IndexApi) CountryAggView(c *gin.Context) {
	log := middleware.GetLog(c)

	// 查询失败时降级为空数据
	var list = make([]AggItem, 0)
	err := global.DB.Model(models.AttackEventModel{}).
		Select("attacker_models.country as label, count(attack_event_models.id) as count").
		Joins("join attacker_models on attacker_models.id = attack_event_models.attacker_id").
		Group("attacker_models.country").
		Order("count desc").
		Scan(&list).Error
	if err != nil {
		log.Errorf("国家维度聚合查询失败 %s", err)
	}

	// 未富化的档案国家为空，统一归入Unknown
	for i := range list {
		if list[i].Label == "" {
			list[i].Label = "Unknown"
		}
	}

	response.OkWithData(list, c)
}
