package models

// UserModel 管理员用户模型
type UserModel struct {
	Model
	Username           string `gorm:"size:80;uniqueIndex:idx_username" json:"username"` // 用户名
	Email              string `gorm:"size:120" json:"email"`                            // 邮箱
	Password           string `gorm:"size:255" json:"-"`                                // 密码哈希
	IsAdmin            bool   `json:"isAdmin"`                                          // 管理员标识
	EmailNotifications bool   `gorm:"default:true" json:"emailNotifications"`           // 邮件通知开关
	ThemePreference    string `gorm:"size:10;default:light" json:"themePreference"`     // 主题偏好 [light|dark]
	LastLoginDate      string `gorm:"size:32" json:"lastLoginDate"`                     // 最后登录时间
}
