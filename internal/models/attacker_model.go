package models

import "time"

// AttackerModel 攻击者档案模型，按来源IP去重，一个IP只存在一条档案
type AttackerModel struct {
	Model
	IP        string    `gorm:"size:45;uniqueIndex:idx_attacker_ip" json:"ip"` // 攻击来源IP（唯一去重键）
	UserAgent string    `gorm:"size:255" json:"userAgent"`                     // 最近一次上报的UA
	Asn       string    `gorm:"size:32" json:"asn"`                            // ASN信息（外部富化填充）
	Isp       string    `gorm:"size:128" json:"isp"`                           // 运营商信息（外部富化填充）
	Country   string    `gorm:"size:64" json:"country"`                        // 国家（外部富化填充）
	City      string    `gorm:"size:64" json:"city"`                           // 城市（外部富化填充）
	Tags      []string  `gorm:"serializer:json" json:"tags"`                   // 自由标签集合
	FirstSeen time.Time `json:"firstSeen"`                                     // 首次发现时间（创建后不变）
	LastSeen  time.Time `json:"lastSeen"`                                      // 最近活动时间（每次捕获更新）
}
