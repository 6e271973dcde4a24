package middleware

// File: honey_admin/middleware/capture_middleware.go
// Description: 捕获接口中间件模块，提供基于Redis的来源IP限流和HMAC签名校验
// 限流在签名校验之前执行，超限请求不消耗签名校验开销

import (
	"bytes"
	"fmt"
	"io"
	"strings"
	"time"

	"honey_admin/internal/global"
	"honey_admin/internal/utils/sign"

	"github.com/gin-gonic/gin"
)

// rawBodyKey 捕获请求原始请求体在上下文中的存储键
const rawBodyKey = "rawBody"

// GetSourceIP 解析捕获请求的来源IP
// 优先取X-Forwarded-For头的第一个地址，否则使用直连对端地址
func GetSourceIP(c *gin.Context) string {
	xff := c.Request.Header.Get("X-Forwarded-For")
	if xff != "" {
		ipList := strings.Split(xff, ",")
		return strings.TrimSpace(ipList[0])
	}
	return c.ClientIP()
}

// RateLimitMiddleware 捕获接口限流中间件
// 对每个来源IP按分钟固定窗口计数，超过配置上限返回429
func RateLimitMiddleware(c *gin.Context) {
	// Redis不可用时限流自动放行，不阻断捕获链路
	if global.Redis == nil {
		return
	}

	limit := global.Config.Capture.RateLimit
	if limit <= 0 {
		limit = 100 // 默认每分钟100次
	}

	// 以来源IP+分钟窗口作为计数键
	ip := GetSourceIP(c)
	key := fmt.Sprintf("capture_rate:%s:%d", ip, time.Now().Unix()/60)

	ctx := c.Request.Context()
	count, err := global.Redis.Incr(ctx, key).Result()
	if err != nil {
		// 计数失败按放行处理，限流是粗粒度准入控制而非强一致约束
		return
	}
	if count == 1 {
		// 首次计数设置窗口过期时间
		global.Redis.Expire(ctx, key, time.Minute)
	}

	if count > int64(limit) {
		c.JSON(429, gin.H{"error": "Too many requests"})
		c.Abort()
		return
	}
}

// CaptureAuthMiddleware 捕获接口签名校验中间件
// 读取原始请求体并校验HMAC签名，校验失败直接返回401且不进行任何入库
func CaptureAuthMiddleware(c *gin.Context) {
	// 读取原始请求体（空请求体也是合法的签名输入）
	byteData, err := io.ReadAll(c.Request.Body)
	if err != nil {
		byteData = []byte{}
	}
	// 还原请求体供后续处理使用
	c.Request.Body = io.NopCloser(bytes.NewReader(byteData))

	signature := c.Request.Header.Get("X-API-Signature")
	timestamp := c.Request.Header.Get("X-API-Timestamp")

	// 校验签名（时间窗口+HMAC-SHA256恒定时间比对）
	if !sign.Verify(global.Config.Capture.Secret, signature, timestamp, byteData, time.Now()) {
		c.JSON(401, gin.H{"error": "Invalid signature"})
		c.Abort()
		return
	}

	// 原始请求体存入上下文，避免处理器二次读取
	c.Set(rawBodyKey, byteData)
}

// GetRawBody 获取捕获请求的原始请求体
func GetRawBody(c *gin.Context) []byte {
	return c.MustGet(rawBodyKey).([]byte)
}
