package capture_service

// File: honey_admin/service/capture_service/capture.go
// Description: 捕获服务模块，实现攻击者档案解析与攻击事件入库的核心业务逻辑
// 档案更新与事件写入在同一事务内提交，任一失败则整体回滚

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"honey_admin/internal/global"
	"honey_admin/internal/models"

	"gorm.io/gorm"
)

// CaptureRequest 捕获事件入库请求参数结构体
type CaptureRequest struct {
	IP        string            // 攻击来源IP
	UserAgent string            // 上报的User-Agent（可为空）
	Method    string            // HTTP方法
	Path      string            // 请求路径
	Headers   map[string]string // 请求头映射
	Payload   map[string]any    // 原始JSON载荷（解析失败时为空对象）
}

// Capture 将一次已通过签名校验的捕获请求转为持久化状态变更
// 返回新建攻击事件的ID；存储失败时整体回滚，不保留任何部分写入
func (s *CaptureService) Capture(ctx context.Context, req CaptureRequest) (eventID uint, err error) {
	// 从载荷解析可选字段并应用默认值
	service := payloadString(req.Payload, "service")
	if service == "" {
		service = "web"
	}
	severity := payloadString(req.Payload, "severity")
	if severity == "" {
		severity = "low"
	}
	signature := payloadString(req.Payload, "signature")

	now := time.Now()
	err = global.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// 第一步：解析攻击者档案（存在则更新，不存在则创建）
		attacker, txErr := s.resolveAttacker(tx, req.IP, req.UserAgent, now)
		if txErr != nil {
			return txErr
		}

		// 第二步：追加攻击事件记录，关联档案ID
		event := models.AttackEventModel{
			Timestamp:       now,
			IP:              req.IP,
			Method:          req.Method,
			Path:            req.Path,
			Headers:         req.Headers,
			Payload:         req.Payload,
			HoneypotService: service,
			Signature:       signature,
			Severity:        severity,
			AttackerID:      attacker.ID,
		}
		if txErr = tx.Create(&event).Error; txErr != nil {
			return fmt.Errorf("攻击事件写入失败 %w", txErr)
		}

		eventID = event.ID
		return nil
	})
	if err != nil {
		s.log.Errorf("捕获事件入库失败 %s", err)
		return 0, err
	}

	s.log.Infof("捕获事件入库成功 ip=%s service=%s eventID=%d", req.IP, service, eventID)
	return eventID, nil
}

// resolveAttacker 按IP精确解析攻击者档案
// 已存在：更新last_seen，UA非空时覆盖；不存在：创建新档案（first_seen==last_seen）
// 并发首建同一IP时依赖唯一索引冲突重查，而非预加锁
func (s *CaptureService) resolveAttacker(tx *gorm.DB, ip string, userAgent string, now time.Time) (attacker models.AttackerModel, err error) {
	err = tx.Take(&attacker, "ip = ?", ip).Error
	if err == nil {
		return attacker, s.touchAttacker(tx, &attacker, userAgent, now)
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return attacker, fmt.Errorf("攻击者档案查询失败 %w", err)
	}

	// 档案不存在，创建新档案
	attacker = models.AttackerModel{
		IP:        ip,
		UserAgent: userAgent,
		FirstSeen: now,
		LastSeen:  now,
	}
	err = tx.Create(&attacker).Error
	if err == nil {
		return attacker, nil
	}

	// 并发请求同时首建时命中唯一索引冲突，重查已存在的档案并按更新处理
	if !isDuplicateErr(err) {
		return attacker, fmt.Errorf("攻击者档案创建失败 %w", err)
	}
	attacker = models.AttackerModel{}
	if err = tx.Take(&attacker, "ip = ?", ip).Error; err != nil {
		return attacker, fmt.Errorf("攻击者档案冲突重查失败 %w", err)
	}
	return attacker, s.touchAttacker(tx, &attacker, userAgent, now)
}

// touchAttacker 更新已有档案的活跃信息，富化字段（国家/ASN等）不在捕获链路修改
func (s *CaptureService) touchAttacker(tx *gorm.DB, attacker *models.AttackerModel, userAgent string, now time.Time) error {
	updates := map[string]any{"last_seen": now}
	if userAgent != "" {
		updates["user_agent"] = userAgent
	}
	err := tx.Model(attacker).Updates(updates).Error
	if err != nil {
		return fmt.Errorf("攻击者档案更新失败 %w", err)
	}
	attacker.LastSeen = now
	return nil
}

// isDuplicateErr 判断存储错误是否为唯一键冲突
func isDuplicateErr(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "Duplicate entry") || strings.Contains(msg, "UNIQUE constraint")
}

// payloadString 从载荷中提取字符串字段，类型不符时视为空
func payloadString(payload map[string]any, key string) string {
	if payload == nil {
		return ""
	}
	value, _ := payload[key].(string)
	return value
}
