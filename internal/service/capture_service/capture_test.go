package capture_service

// File: honey_admin/service/capture_service/capture_test.go
// Description: 捕获服务单元测试，使用内存数据库验证档案解析与事件入库

import (
	"context"
	"testing"
	"time"

	"honey_admin/internal/global"
	"honey_admin/internal/models"

	"github.com/glebarez/sqlite"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// setupTestDB 初始化内存数据库并迁移捕获链路相关表结构
func setupTestDB(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
	})
	require.NoError(t, err)
	err = db.AutoMigrate(&models.AttackerModel{}, &models.AttackEventModel{})
	require.NoError(t, err)
	global.DB = db
}

func newTestService() *CaptureService {
	logger := logrus.New()
	logger.SetLevel(logrus.ErrorLevel)
	return NewCaptureService(logrus.NewEntry(logger))
}

func TestCaptureNewAttacker(t *testing.T) {
	setupTestDB(t)
	s := newTestService()

	eventID, err := s.Capture(context.Background(), CaptureRequest{
		IP:        "203.0.113.7",
		UserAgent: "curl/8.0",
		Method:    "POST",
		Path:      "/wp-login.php",
		Headers:   map[string]string{"User-Agent": "curl/8.0"},
		Payload:   map[string]any{"service": "web", "severity": "high"},
	})
	require.NoError(t, err)
	assert.NotZero(t, eventID)

	// 新IP创建一条档案和一条事件
	var attackerCount, eventCount int64
	global.DB.Model(models.AttackerModel{}).Count(&attackerCount)
	global.DB.Model(models.AttackEventModel{}).Count(&eventCount)
	assert.Equal(t, int64(1), attackerCount)
	assert.Equal(t, int64(1), eventCount)

	// 新建档案首次与最近活动时间一致
	var attacker models.AttackerModel
	require.NoError(t, global.DB.Take(&attacker, "ip = ?", "203.0.113.7").Error)
	assert.Equal(t, attacker.FirstSeen.Unix(), attacker.LastSeen.Unix())
	assert.Equal(t, "curl/8.0", attacker.UserAgent)

	// 事件关联到该档案
	var event models.AttackEventModel
	require.NoError(t, global.DB.Take(&event, eventID).Error)
	assert.Equal(t, attacker.ID, event.AttackerID)
	assert.Equal(t, "high", event.Severity)
}

func TestCaptureRepeatAttacker(t *testing.T) {
	setupTestDB(t)
	s := newTestService()

	_, err := s.Capture(context.Background(), CaptureRequest{
		IP:        "203.0.113.8",
		UserAgent: "curl/7.0",
		Method:    "GET",
		Path:      "/",
	})
	require.NoError(t, err)

	var before models.AttackerModel
	require.NoError(t, global.DB.Take(&before, "ip = ?", "203.0.113.8").Error)

	time.Sleep(10 * time.Millisecond)

	// 同IP再次上报：不新建档案，last_seen前移，UA覆盖
	_, err = s.Capture(context.Background(), CaptureRequest{
		IP:        "203.0.113.8",
		UserAgent: "curl/8.5",
		Method:    "GET",
		Path:      "/admin",
	})
	require.NoError(t, err)

	var attackerCount, eventCount int64
	global.DB.Model(models.AttackerModel{}).Count(&attackerCount)
	global.DB.Model(models.AttackEventModel{}).Count(&eventCount)
	assert.Equal(t, int64(1), attackerCount)
	assert.Equal(t, int64(2), eventCount)

	var after models.AttackerModel
	require.NoError(t, global.DB.Take(&after, "ip = ?", "203.0.113.8").Error)
	assert.Equal(t, before.ID, after.ID)
	assert.Equal(t, before.FirstSeen.Unix(), after.FirstSeen.Unix())
	assert.False(t, after.LastSeen.Before(before.LastSeen))
	assert.Equal(t, "curl/8.5", after.UserAgent)
}

func TestCaptureEmptyUserAgentKept(t *testing.T) {
	setupTestDB(t)
	s := newTestService()

	_, err := s.Capture(context.Background(), CaptureRequest{
		IP:        "203.0.113.9",
		UserAgent: "nmap",
		Method:    "GET",
		Path:      "/",
	})
	require.NoError(t, err)

	// UA为空的上报不清空已有UA
	_, err = s.Capture(context.Background(), CaptureRequest{
		IP:     "203.0.113.9",
		Method: "GET",
		Path:   "/",
	})
	require.NoError(t, err)

	var attacker models.AttackerModel
	require.NoError(t, global.DB.Take(&attacker, "ip = ?", "203.0.113.9").Error)
	assert.Equal(t, "nmap", attacker.UserAgent)
}

func TestCaptureDefaults(t *testing.T) {
	setupTestDB(t)
	s := newTestService()

	// 载荷缺省时服务与严重级别取默认值
	eventID, err := s.Capture(context.Background(), CaptureRequest{
		IP:      "203.0.113.10",
		Method:  "GET",
		Path:    "/",
		Payload: map[string]any{},
	})
	require.NoError(t, err)

	var event models.AttackEventModel
	require.NoError(t, global.DB.Take(&event, eventID).Error)
	assert.Equal(t, "web", event.HoneypotService)
	assert.Equal(t, "low", event.Severity)
	assert.Equal(t, "", event.Signature)

	// 自由文本严重级别原样保留
	eventID, err = s.Capture(context.Background(), CaptureRequest{
		IP:      "203.0.113.10",
		Method:  "GET",
		Path:    "/",
		Payload: map[string]any{"service": "ssh", "severity": "CRITICAL!!", "signature": "sqli-probe"},
	})
	require.NoError(t, err)
	event = models.AttackEventModel{}
	require.NoError(t, global.DB.Take(&event, eventID).Error)
	assert.Equal(t, "ssh", event.HoneypotService)
	assert.Equal(t, "CRITICAL!!", event.Severity)
	assert.Equal(t, "sqli-probe", event.Signature)
}

func TestCaptureEnrichmentUntouched(t *testing.T) {
	setupTestDB(t)
	s := newTestService()

	_, err := s.Capture(context.Background(), CaptureRequest{
		IP:     "203.0.113.11",
		Method: "GET",
		Path:   "/",
	})
	require.NoError(t, err)

	// 富化字段由外部流程写入，捕获链路不得覆盖
	err = global.DB.Model(models.AttackerModel{}).
		Where("ip = ?", "203.0.113.11").
		Updates(map[string]any{"country": "CN", "asn": "AS4134"}).Error
	require.NoError(t, err)

	_, err = s.Capture(context.Background(), CaptureRequest{
		IP:        "203.0.113.11",
		UserAgent: "curl/8.0",
		Method:    "GET",
		Path:      "/",
	})
	require.NoError(t, err)

	var attacker models.AttackerModel
	require.NoError(t, global.DB.Take(&attacker, "ip = ?", "203.0.113.11").Error)
	assert.Equal(t, "CN", attacker.Country)
	assert.Equal(t, "AS4134", attacker.Asn)
}

func TestCaptureFirstInsertConflict(t *testing.T) {
	setupTestDB(t)
	s := newTestService()

	// 在档案Create执行前抢先插入同IP档案，复现并发首建时的唯一索引冲突
	rivalDone := false
	err := global.DB.Callback().Create().Before("gorm:create").Register("rival_first_insert", func(tx *gorm.DB) {
		if rivalDone {
			return
		}
		if _, ok := tx.Statement.Dest.(*models.AttackerModel); !ok {
			return
		}
		rivalDone = true
		now := time.Now()
		rival := models.AttackerModel{
			IP:        "203.0.113.12",
			UserAgent: "masscan",
			FirstSeen: now,
			LastSeen:  now,
		}
		require.NoError(t, tx.Session(&gorm.Session{NewDB: true}).Create(&rival).Error)
	})
	require.NoError(t, err)

	eventID, err := s.Capture(context.Background(), CaptureRequest{
		IP:        "203.0.113.12",
		UserAgent: "curl/8.0",
		Method:    "GET",
		Path:      "/",
	})
	require.NoError(t, err)

	// 冲突走重查路径：最终只有一条档案，UA被本次上报覆盖
	var attackerCount int64
	global.DB.Model(models.AttackerModel{}).Count(&attackerCount)
	assert.Equal(t, int64(1), attackerCount)

	var attacker models.AttackerModel
	require.NoError(t, global.DB.Take(&attacker, "ip = ?", "203.0.113.12").Error)
	assert.Equal(t, "curl/8.0", attacker.UserAgent)

	// 事件关联到已存在的那条档案
	var event models.AttackEventModel
	require.NoError(t, global.DB.Take(&event, eventID).Error)
	assert.Equal(t, attacker.ID, event.AttackerID)
}

func TestCaptureDeadlineExceeded(t *testing.T) {
	setupTestDB(t)
	s := newTestService()

	// 处理超时后整体失败，不保留任何部分写入
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := s.Capture(ctx, CaptureRequest{
		IP:     "203.0.113.13",
		Method: "GET",
		Path:   "/",
	})
	require.Error(t, err)

	var attackerCount, eventCount int64
	global.DB.Model(models.AttackerModel{}).Count(&attackerCount)
	global.DB.Model(models.AttackEventModel{}).Count(&eventCount)
	assert.Zero(t, attackerCount)
	assert.Zero(t, eventCount)
}

func TestSimulate(t *testing.T) {
	setupTestDB(t)
	s := newTestService()

	eventID, err := s.Simulate(SimulateRequest{
		IP:      "198.51.100.20",
		Country: "RU",
	})
	require.NoError(t, err)

	// 模拟链路允许直接写入国家字段
	var attacker models.AttackerModel
	require.NoError(t, global.DB.Take(&attacker, "ip = ?", "198.51.100.20").Error)
	assert.Equal(t, "RU", attacker.Country)

	var event models.AttackEventModel
	require.NoError(t, global.DB.Take(&event, eventID).Error)
	assert.Equal(t, "sim-test", event.Signature)
	assert.Equal(t, attacker.ID, event.AttackerID)
}
