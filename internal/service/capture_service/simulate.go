package capture_service

// File: honey_admin/service/capture_service/simulate.go
// Description: 模拟攻击数据生成服务，供管理端演示大屏使用
// 与真实捕获链路不同，模拟数据允许直接写入档案的国家字段

import (
	"fmt"
	"math/rand"
	"time"

	"honey_admin/internal/global"
	"honey_admin/internal/models"

	"gorm.io/gorm"
)

// SimulateRequest 模拟攻击生成请求参数结构体，空字段自动随机填充
type SimulateRequest struct {
	IP       string // 模拟来源IP
	Ua       string // 模拟UA
	Country  string // 模拟国家
	Severity string // 模拟严重级别
}

// 模拟数据的随机取值池
var (
	simCountryList  = []string{"CN", "US", "RU", "IN", "DE", "FR", "GB", "BR", "JP", "KR"}
	simSeverityList = []string{"low", "medium", "high"}
)

// Simulate 生成一条模拟攻击档案与事件，返回事件ID
func (s *CaptureService) Simulate(req SimulateRequest) (eventID uint, err error) {
	// 空字段随机填充
	if req.IP == "" {
		req.IP = fmt.Sprintf("192.168.%d.%d", rand.Intn(256), rand.Intn(254)+1)
	}
	if req.Ua == "" {
		req.Ua = "Mozilla/5.0 (Simulation)"
	}
	if req.Country == "" {
		req.Country = simCountryList[rand.Intn(len(simCountryList))]
	}
	if req.Severity == "" {
		req.Severity = simSeverityList[rand.Intn(len(simSeverityList))]
	}

	now := time.Now()
	err = global.DB.Transaction(func(tx *gorm.DB) error {
		// 解析或创建模拟攻击者档案，国家字段直接覆盖
		attacker, txErr := s.resolveAttacker(tx, req.IP, req.Ua, now)
		if txErr != nil {
			return txErr
		}
		if txErr = tx.Model(&attacker).Update("country", req.Country).Error; txErr != nil {
			return fmt.Errorf("模拟档案国家更新失败 %w", txErr)
		}

		event := models.AttackEventModel{
			Timestamp:       now,
			IP:              req.IP,
			Method:          "GET",
			Path:            "/honeypot",
			Headers:         map[string]string{"User-Agent": req.Ua},
			Payload:         map[string]any{"simulated": true},
			HoneypotService: "web",
			Signature:       "sim-test",
			Severity:        req.Severity,
			AttackerID:      attacker.ID,
		}
		if txErr = tx.Create(&event).Error; txErr != nil {
			return fmt.Errorf("模拟事件写入失败 %w", txErr)
		}
		eventID = event.ID
		return nil
	})
	if err != nil {
		s.log.Errorf("模拟攻击数据生成失败 %s", err)
		return 0, err
	}

	s.log.Infof("模拟攻击数据生成成功 ip=%s country=%s", req.IP, req.Country)
	return eventID, nil
}
