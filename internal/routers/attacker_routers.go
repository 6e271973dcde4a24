package routers

// File: honey_admin/routers/attacker_routers.go
// Description: 攻击者档案模块路由定义

import (
	"honey_admin/internal/api"
	"honey_admin/internal/api/attacker_api"
	"honey_admin/internal/middleware"

	"github.com/gin-gonic/gin"
)

// AttackerRouters 注册攻击者档案相关路由
func AttackerRouters(r *gin.RouterGroup) {
	app := api.App.AttackerApi

	// GET /api/attackers - 攻击者档案列表查询接口
	r.GET("attackers", middleware.BindQueryMiddleware[attacker_api.ListRequest], app.ListView)
}
