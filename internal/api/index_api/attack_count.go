package index_api

// File: honey_admin/api/index_api/attack_count.go
// Description: 首页攻击概览统计API接口

import (
	"time"

	"honey_admin/internal/global"
	"honey_admin/internal/models"
	"honey_admin/internal/utils/response"

	"github.com/gin-gonic/gin"
)

// AttackCountResponse 攻击概览统计响应结构体
type AttackCountResponse struct {
	EventCount    int64      `json:"eventCount"`    // 攻击事件总数
	AttackerCount int64      `json:"attackerCount"` // 攻击者档案总数
	TodayCount    int64      `json:"todayCount"`    // 今日攻击事件数
	LatestAt      *time.Time `json:"latestAt"`      // 最近一次攻击时间
}

// AttackCountView 攻击概览统计接口处理函数
func (IndexApi) AttackCountView(c *gin.Context) {
	var data AttackCountResponse

	global.DB.Model(models.AttackEventModel{}).Count(&data.EventCount)
	global.DB.Model(models.AttackerModel{}).Count(&data.AttackerCount)

	// 今日零点之后的事件数
	now := time.Now()
	todayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	global.DB.Model(models.AttackEventModel{}).
		Where("timestamp >= ?", todayStart).Count(&data.TodayCount)

	// 最近一次攻击时间，无事件时为空
	var latest models.AttackEventModel
	if err := global.DB.Order("timestamp desc").Take(&latest).Error; err == nil {
		data.LatestAt = &latest.Timestamp
	}

	response.OkWithData(data, c)
}
