package routers

// File: honey_admin/routers/index_routers.go
// Description: 首页大屏模块路由定义

import (
	"honey_admin/internal/api"
	"honey_admin/internal/api/index_api"
	"honey_admin/internal/middleware"

	"github.com/gin-gonic/gin"
)

// IndexRouters 注册首页大屏相关路由
func IndexRouters(r *gin.RouterGroup) {
	var app = api.App.IndexApi

	// GET /api/index/count - 攻击概览统计接口
	r.GET("index/count", app.AttackCountView)
	// GET /api/index/service_agg - 按蜜罐服务聚合接口
	r.GET("index/service_agg", app.ServiceAggView)
	// GET /api/index/severity_agg - 按严重级别聚合接口
	r.GET("index/severity_agg", app.SeverityAggView)
	// GET /api/index/country_agg - 按国家聚合接口
	r.GET("index/country_agg", app.CountryAggView)
	// GET /api/index/recent - 最近攻击事件接口
	r.GET("index/recent", app.RecentView)
	// GET /api/index/database - 数据库概览接口（仅管理员）
	r.GET("index/database", middleware.AdminMiddleware, app.DatabaseView)
	// GET /api/index/export - 统计报告导出接口
	r.GET("index/export", app.ExportView)
	// POST /api/index/simulate - 模拟攻击生成接口（仅管理员）
	r.POST("index/simulate", middleware.AdminMiddleware,
		middleware.BindJsonMiddleware[index_api.SimulateRequest], app.SimulateView)
}
