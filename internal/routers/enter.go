package routers

// File: honey_admin/routers/enter.go
// Description: 路由模块，负责初始化Gin引擎、注册API路由并启动HTTP服务

import (
	"honey_admin/internal/global"
	"honey_admin/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// Run 初始化路由引擎并启动HTTP服务
func Run() {
	// 获取系统配置信息
	system := global.Config.System
	// 设置Gin运行模式（debug/release/test）
	gin.SetMode(system.Mode)

	// 创建默认Gin引擎
	r := gin.Default()
	// 创建API根路由分组
	g := r.Group("api")
	g.Use(middleware.LogMiddleware)

	// 开放路由：节点上报与登录入口不要求登录态
	CaptureRouters(g) // 攻击捕获上报路由
	CaptchaRouters(g) // 验证码路由
	UserRouters(g)    // 用户相关路由（登录入口在内部单独放行）

	// 管理路由：全部要求登录态
	admin := g.Group("")
	admin.Use(middleware.AuthMiddleware)
	AttackerRouters(admin) // 攻击者档案路由
	EventRouters(admin)    // 攻击事件路由
	IndexRouters(admin)    // 首页大屏路由
	LogRouters(admin)      // 系统日志路由

	// 获取HTTP服务监听地址
	webAddr := system.WebAddr
	logrus.Infof("web addr run %s", webAddr)

	// 启动HTTP服务
	r.Run(webAddr)
}
