package index_api

// File: honey_admin/api/index_api/export.go
// Description: 攻击统计报告导出API接口，生成纯文本附件下载

import (
	"fmt"
	"strings"
	"time"

	"honey_admin/internal/global"
	"honey_admin/internal/middleware"
	"honey_admin/internal/models"
	"honey_admin/internal/utils/response"

	"github.com/gin-gonic/gin"
)

// ExportView 统计报告导出接口处理函数
func (IndexApi) ExportView(c *gin.Context) {
	log := middleware.GetLog(c)

	var eventCount, attackerCount int64
	global.DB.Model(models.AttackEventModel{}).Count(&eventCount)
	global.DB.Model(models.AttackerModel{}).Count(&attackerCount)

	// 按国家聚合，空国家归入Unknown
	var countryList []AggItem
	err := global.DB.Model(models.AttackEventModel{}).
		Select("attacker_models.country as label, count(attack_event_models.id) as count").
		Joins("join attacker_models on attacker_models.id = attack_event_models.attacker_id").
		Group("attacker_models.country").
		Order("count desc").
		Scan(&countryList).Error
	if err != nil {
		log.Errorf("导出统计聚合查询失败 %s", err)
		response.FailWithMsg("统计报告生成失败", c)
		return
	}

	now := time.Now()
	var builder strings.Builder
	builder.WriteString("Honeypot Attack Statistics Report\n")
	builder.WriteString(fmt.Sprintf("Generated: %s\n", now.Format("2006-01-02 15:04:05")))
	builder.WriteString("==================================\n\n")
	builder.WriteString(fmt.Sprintf("Total events:    %d\n", eventCount))
	builder.WriteString(fmt.Sprintf("Total attackers: %d\n\n", attackerCount))
	builder.WriteString("Events by country:\n")
	for _, item := range countryList {
		label := item.Label
		if label == "" {
			label = "Unknown"
		}
		builder.WriteString(fmt.Sprintf("  %-12s %d\n", label, item.Count))
	}

	fileName := fmt.Sprintf("honeypot_stats_%s.txt", now.Format("20060102_150405"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", fileName))
	c.Data(200, "text/plain; charset=utf-8", []byte(builder.String()))
}
