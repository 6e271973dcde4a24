package capture_api

// File: honey_admin/api/capture_api/capture.go
// Description: 攻击事件捕获API接口，签名校验通过后执行档案解析与事件入库
// 该接口为机器调用接口，响应格式固定为裸JSON，不走管理端统一响应封装

import (
	"context"
	"encoding/json"
	"time"

	"honey_admin/internal/global"
	"honey_admin/internal/middleware"
	"honey_admin/internal/models"
	"honey_admin/internal/service/capture_service"
	"honey_admin/internal/service/mq_service"

	"github.com/gin-gonic/gin"
)

// CaptureView 攻击事件捕获接口处理函数
// 前置中间件已完成限流与HMAC签名校验，此处只负责入库
func (CaptureApi) CaptureView(c *gin.Context) {
	log := middleware.GetLog(c)
	byteData := middleware.GetRawBody(c)

	// 容忍非法JSON：解析失败按空对象处理并应用默认值
	var payload map[string]any
	if err := json.Unmarshal(byteData, &payload); err != nil || payload == nil {
		payload = map[string]any{}
	}

	// 请求头扁平化存储（取每个键的首个值，顺序无关）
	headers := make(map[string]string, len(c.Request.Header))
	for key, values := range c.Request.Header {
		if len(values) > 0 {
			headers[key] = values[0]
		}
	}

	// 按配置的处理超时时间限制整个入库事务
	timeout := global.Config.Capture.Timeout
	if timeout <= 0 {
		timeout = 10 // 默认10秒
	}
	ctx, cancel := context.WithTimeout(c.Request.Context(), time.Duration(timeout)*time.Second)
	defer cancel()

	service := capture_service.NewCaptureService(log)
	eventID, err := service.Capture(ctx, capture_service.CaptureRequest{
		IP:        middleware.GetSourceIP(c),
		UserAgent: c.Request.Header.Get("User-Agent"),
		Method:    c.Request.Method,
		Path:      c.Request.URL.Path,
		Headers:   headers,
		Payload:   payload,
	})
	if err != nil {
		// 存储细节不向调用方暴露
		c.JSON(500, gin.H{"error": "Internal server error"})
		return
	}

	// 事件分发（尽力而为，不影响响应）
	if global.Queue != nil {
		var event models.AttackEventModel
		if err := global.DB.Take(&event, eventID).Error; err == nil {
			mq_service.SendEventMsg(event)
		}
	}

	c.JSON(200, gin.H{"status": "ok", "event_id": eventID})
}
