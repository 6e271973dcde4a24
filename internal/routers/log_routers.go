package routers

// File: honey_admin/routers/log_routers.go
// Description: 系统日志模块路由定义

import (
	"honey_admin/internal/api"
	"honey_admin/internal/api/log_api"
	"honey_admin/internal/middleware"
	"honey_admin/internal/models"

	"github.com/gin-gonic/gin"
)

// LogRouters 注册系统日志相关路由
func LogRouters(r *gin.RouterGroup) {
	app := api.App.LogApi

	// GET /api/logs - 日志列表查询接口（仅管理员）
	r.GET("logs", middleware.AdminMiddleware,
		middleware.BindQueryMiddleware[log_api.ListRequest], app.ListView)
	// DELETE /api/logs - 日志批量删除接口（仅管理员）
	r.DELETE("logs", middleware.AdminMiddleware,
		middleware.BindJsonMiddleware[models.IDListRequest], app.RemoveView)
}
