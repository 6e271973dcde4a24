package middleware

// File: honey_admin/middleware/log_middleware.go
// Description: 日志上下文中间件模块，为每个请求注入带请求标识与来源IP的日志实例
// 捕获链路与管理接口共用，logID用于串联同一次请求的全部业务日志

import (
	"honey_admin/internal/global"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// LogMiddleware 为当前请求生成唯一logID并注入带标识的日志实例
func LogMiddleware(c *gin.Context) {
	logger := global.Log.WithFields(logrus.Fields{
		"logID": uuid.New().String(), // 请求唯一标识
		"ip":    c.ClientIP(),        // 请求来源IP
	})
	c.Set("log", logger)
}

// GetLog 从Gin上下文中获取当前请求的日志实例
func GetLog(c *gin.Context) *logrus.Entry {
	return c.MustGet("log").(*logrus.Entry)
}
