package routers

// File: honey_admin/routers/event_routers.go
// Description: 攻击事件模块路由定义

import (
	"honey_admin/internal/api"
	"honey_admin/internal/api/event_api"
	"honey_admin/internal/middleware"
	"honey_admin/internal/models"

	"github.com/gin-gonic/gin"
)

// EventRouters 注册攻击事件相关路由
func EventRouters(r *gin.RouterGroup) {
	app := api.App.EventApi

	// GET /api/events - 攻击事件列表查询接口
	r.GET("events", middleware.BindQueryMiddleware[event_api.ListRequest], app.ListView)
	// DELETE /api/events - 攻击事件批量删除接口（仅管理员）
	r.DELETE("events", middleware.AdminMiddleware,
		middleware.BindJsonMiddleware[models.IDListRequest], app.RemoveView)
}
