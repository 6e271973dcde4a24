package routers

// File: honey_admin/routers/capture_routers.go
// Description: 攻击捕获模块路由定义，注册节点上报API接口

import (
	"honey_admin/internal/api"
	"honey_admin/internal/middleware"

	"github.com/gin-gonic/gin"
)

// CaptureRouters 注册攻击捕获相关路由
func CaptureRouters(r *gin.RouterGroup) {
	// 获取捕获API实例
	app := api.App.CaptureApi

	// POST /api/capture - 攻击事件上报接口
	// 先限流再做HMAC签名校验，两者都通过才进入业务处理
	r.POST("capture", middleware.RateLimitMiddleware, middleware.CaptureAuthMiddleware, app.CaptureView)
}
