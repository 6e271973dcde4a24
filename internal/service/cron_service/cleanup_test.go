package cron_service

// File: honey_admin/service/cron_service/cleanup_test.go
// Description: 数据保留清理任务单元测试

import (
	"testing"
	"time"

	"honey_admin/internal/global"
	"honey_admin/internal/models"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.AttackerModel{}, &models.AttackEventModel{}))
	global.DB = db
}

// seedAttacker 写入指定活跃时间的档案并返回ID
func seedAttacker(t *testing.T, ip string, lastSeen time.Time) uint {
	attacker := models.AttackerModel{
		IP:        ip,
		FirstSeen: lastSeen,
		LastSeen:  lastSeen,
	}
	require.NoError(t, global.DB.Create(&attacker).Error)
	return attacker.ID
}

func seedEvent(t *testing.T, attackerID uint, ip string, timestamp time.Time) {
	event := models.AttackEventModel{
		Timestamp:       timestamp,
		IP:              ip,
		Method:          "GET",
		Path:            "/",
		HoneypotService: "web",
		Severity:        "low",
		AttackerID:      attackerID,
	}
	require.NoError(t, global.DB.Create(&event).Error)
}

func TestCleanupOldData(t *testing.T) {
	setupTestDB(t)

	now := time.Now()
	old := now.AddDate(0, 0, -40)

	// 过期档案+过期事件：两者都应删除
	staleID := seedAttacker(t, "203.0.113.1", old)
	seedEvent(t, staleID, "203.0.113.1", old)

	// 过期档案但仍有保留期内事件：档案保留
	activeID := seedAttacker(t, "203.0.113.2", old)
	seedEvent(t, activeID, "203.0.113.2", old)
	seedEvent(t, activeID, "203.0.113.2", now)

	// 新档案+新事件：完全不受影响
	freshID := seedAttacker(t, "203.0.113.3", now)
	seedEvent(t, freshID, "203.0.113.3", now)

	eventCount, profileCount, err := CleanupOldData(30)
	require.NoError(t, err)
	assert.Equal(t, int64(2), eventCount)
	assert.Equal(t, int64(1), profileCount)

	// 过期档案已物理删除，唯一索引可复用该IP
	var count int64
	global.DB.Unscoped().Model(models.AttackerModel{}).Where("ip = ?", "203.0.113.1").Count(&count)
	assert.Zero(t, count)

	// 仍有事件关联的档案保留
	global.DB.Model(models.AttackerModel{}).Where("id = ?", activeID).Count(&count)
	assert.Equal(t, int64(1), count)
	global.DB.Model(models.AttackEventModel{}).Count(&count)
	assert.Equal(t, int64(2), count)
}

func TestCleanupOldDataIdempotent(t *testing.T) {
	setupTestDB(t)

	old := time.Now().AddDate(0, 0, -40)
	staleID := seedAttacker(t, "203.0.113.4", old)
	seedEvent(t, staleID, "203.0.113.4", old)

	_, _, err := CleanupOldData(30)
	require.NoError(t, err)

	// 重复执行不产生额外删除
	eventCount, profileCount, err := CleanupOldData(30)
	require.NoError(t, err)
	assert.Zero(t, eventCount)
	assert.Zero(t, profileCount)
}

func TestCleanupOldDataEmpty(t *testing.T) {
	setupTestDB(t)

	eventCount, profileCount, err := CleanupOldData(30)
	require.NoError(t, err)
	assert.Zero(t, eventCount)
	assert.Zero(t, profileCount)
}
