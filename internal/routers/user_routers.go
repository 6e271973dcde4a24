package routers

// File: honey_admin/routers/user_routers.go
// Description: 用户模块路由定义，注册用户相关API接口

import (
	"honey_admin/internal/api"
	"honey_admin/internal/api/user_api"
	"honey_admin/internal/middleware"

	"github.com/gin-gonic/gin"
)

// UserRouters 注册用户相关路由
func UserRouters(r *gin.RouterGroup) {
	app := api.App.UserApi

	// POST /api/login - 用户登录接口
	// 使用JSON参数绑定中间件解析登录请求参数
	r.POST("login", middleware.BindJsonMiddleware[user_api.LoginRequest], app.LoginView)
	// POST /api/logout - 用户注销接口
	r.POST("logout", middleware.AuthMiddleware, app.UserLogoutView)
	// POST /api/users - 创建用户接口（仅管理员）
	r.POST("users", middleware.AuthMiddleware, middleware.AdminMiddleware,
		middleware.BindJsonMiddleware[user_api.CreateRequest], app.CreateView)
	// GET /api/users - 用户列表查询接口（仅管理员）
	r.GET("users", middleware.AuthMiddleware, middleware.AdminMiddleware,
		middleware.BindQueryMiddleware[user_api.UserListRequest], app.UserListView)
	// DELETE /api/users - 用户删除接口（仅管理员）
	r.DELETE("users", middleware.AuthMiddleware, middleware.AdminMiddleware,
		middleware.BindJsonMiddleware[user_api.UserRemoveRequest], app.UserRemoveView)
	// GET /api/users/info - 当前用户信息查询接口
	r.GET("users/info", middleware.AuthMiddleware, app.UserInfoView)

	// 个人设置相关路由
	r.PUT("users/password", middleware.AuthMiddleware,
		middleware.BindJsonMiddleware[user_api.ChangePasswordRequest], app.ChangePasswordView)
	r.PUT("users/notifications", middleware.AuthMiddleware,
		middleware.BindJsonMiddleware[user_api.UpdateNotificationsRequest], app.UpdateNotificationsView)
	r.PUT("users/theme", middleware.AuthMiddleware,
		middleware.BindJsonMiddleware[user_api.ToggleThemeRequest], app.ToggleThemeView)
	r.DELETE("users/self", middleware.AuthMiddleware, app.DeleteAccountView)
}
