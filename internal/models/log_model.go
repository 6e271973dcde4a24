package models

// LogModel 系统日志模型
type LogModel struct {
	Model
	Type        int8   `json:"type"`                    // 日志类型 1 登录日志
	IP          string `gorm:"size:45" json:"ip"`       // ip（登录日志）
	UserID      uint   `json:"userID"`                  // 用户id
	Username    string `gorm:"size:80" json:"username"` // 用户名
	LoginStatus bool   `json:"loginStatus"`             // 登录状态
	Title       string `gorm:"size:64" json:"title"`    // 日志别名
	Content     string `gorm:"size:256" json:"content"` // 详情
}
