package models

import "time"

// AttackEventModel 攻击事件模型，一条记录对应一次捕获请求，创建后不再修改
type AttackEventModel struct {
	Model
	Timestamp       time.Time         `json:"timestamp"`                               // 事件时间（服务端处理时间）
	IP              string            `gorm:"size:45;index:idx_event_ip" json:"ip"`    // 攻击来源IP
	Method          string            `gorm:"size:16" json:"method"`                   // HTTP方法
	Path            string            `gorm:"size:255" json:"path"`                    // 请求路径
	Headers         map[string]string `gorm:"serializer:json" json:"headers"`          // 请求头映射
	Payload         map[string]any    `gorm:"serializer:json" json:"payload"`          // 原始JSON载荷
	HoneypotService string            `gorm:"size:64" json:"honeypotService"`          // 蜜罐服务标签（默认web）
	Signature       string            `gorm:"size:128" json:"signature"`               // 攻击特征标签（可选）
	Severity        string            `gorm:"size:16" json:"severity"`                 // 严重级别 low/medium/high（不强制）
	AttackerID      uint              `gorm:"index:idx_attacker_id" json:"attackerID"` // 归属攻击者档案ID
	AttackerModel   AttackerModel     `gorm:"foreignKey:AttackerID" json:"-"`          // 归属攻击者档案
}
