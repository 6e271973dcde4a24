package cron_service

// File: honey_admin/service/cron_service/cleanup.go
// Description: 数据保留清理任务，删除超过保留期的攻击事件及无事件关联的过期攻击者档案
// 先删事件后删档案，避免出现悬挂的档案引用；多实例部署时通过redsync分布式锁互斥

import (
	"time"

	"honey_admin/internal/global"
	"honey_admin/internal/models"

	"github.com/go-redsync/redsync/v4"
	"github.com/go-redsync/redsync/v4/redis/goredis/v9"
	"github.com/sirupsen/logrus"
)

// Cleanup 定时清理入口，按配置的保留天数执行清理
func Cleanup() {
	days := global.Config.Cleanup.RetentionDays
	if days <= 0 {
		days = 30 // 默认保留30天
	}

	// 获取分布式锁，保证同一时刻只有一个实例执行清理
	if global.Redis != nil {
		pool := goredis.NewPool(global.Redis)
		mutex := redsync.New(pool).NewMutex("honey_admin:cleanup_lock",
			redsync.WithExpiry(10*time.Minute))
		if err := mutex.Lock(); err != nil {
			logrus.Warnf("清理任务锁获取失败，本实例跳过 %s", err)
			return
		}
		defer mutex.Unlock()
	}

	eventCount, profileCount, err := CleanupOldData(days)
	if err != nil {
		logrus.Errorf("数据清理失败 %s", err)
		return
	}
	logrus.Infof("清理了 %d 个攻击事件和 %d 个攻击者档案", eventCount, profileCount)
}

// CleanupOldData 删除指定天数前的数据，返回删除的事件数与档案数
// 该操作幂等，重复执行不会产生额外副作用
func CleanupOldData(days int) (eventCount int64, profileCount int64, err error) {
	cutoff := time.Now().AddDate(0, 0, -days)

	// 第一步：物理删除超过保留期的攻击事件
	result := global.DB.Unscoped().
		Where("timestamp < ?", cutoff).
		Delete(&models.AttackEventModel{})
	if result.Error != nil {
		return 0, 0, result.Error
	}
	eventCount = result.RowsAffected

	// 第二步：物理删除已无事件关联且最近活动早于保留期的攻击者档案
	subQuery := global.DB.Model(&models.AttackEventModel{}).Select("attacker_id")
	result = global.DB.Unscoped().
		Where("last_seen < ?", cutoff).
		Where("id not in (?)", subQuery).
		Delete(&models.AttackerModel{})
	if result.Error != nil {
		return eventCount, 0, result.Error
	}
	profileCount = result.RowsAffected

	return eventCount, profileCount, nil
}
