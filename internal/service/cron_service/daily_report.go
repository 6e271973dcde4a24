package cron_service

// File: honey_admin/service/cron_service/daily_report.go
// Description: 每日攻击报告任务，统计前一日的攻击事件数与新增攻击者数并输出日志

import (
	"time"

	"honey_admin/internal/global"
	"honey_admin/internal/models"

	"github.com/sirupsen/logrus"
)

// DailyReport 生成前一日的攻击统计报告
func DailyReport() {
	// 计算前一日的时间范围 [昨日0点, 今日0点)
	now := time.Now()
	todayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	yesterdayStart := todayStart.AddDate(0, 0, -1)

	// 统计昨日攻击事件数
	var eventCount int64
	global.DB.Model(&models.AttackEventModel{}).
		Where("timestamp >= ? and timestamp < ?", yesterdayStart, todayStart).
		Count(&eventCount)

	// 统计昨日新增攻击者数
	var newAttackerCount int64
	global.DB.Model(&models.AttackerModel{}).
		Where("first_seen >= ? and first_seen < ?", yesterdayStart, todayStart).
		Count(&newAttackerCount)

	logrus.Infof("每日报告 %s: 攻击事件 %d, 新增攻击者 %d",
		yesterdayStart.Format("2006-01-02"), eventCount, newAttackerCount)
}
