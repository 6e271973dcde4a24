package middleware

// File: honey_admin/middleware/auth_middleware.go
// Description: 认证中间件模块，提供JWT认证和管理员权限校验中间件
// 管理端登录态与捕获接口的HMAC签名是两套独立的信任域，互不复用

import (
	"honey_admin/internal/utils/jwts"
	"honey_admin/internal/utils/response"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware JWT认证中间件，验证请求头中的Token有效性
func AuthMiddleware(c *gin.Context) {
	// 从请求头获取token
	token := c.GetHeader("token")
	// 解析并验证token
	claims, err := jwts.ParseToken(token)
	if err != nil {
		// 认证失败，返回错误响应并终止请求链
		response.FailWithMsg("认证失败", c)
		c.Abort()
		return
	}
	// 将解析后的claims信息存储在请求上下文中
	c.Set("claims", claims)
	// 认证通过，继续处理请求
	c.Next()
}

// AdminMiddleware 管理员权限校验中间件，需在AuthMiddleware之后使用
func AdminMiddleware(c *gin.Context) {
	claims := GetAuth(c)
	if !claims.IsAdmin {
		// 非管理员用户，拒绝访问
		response.FailWithMsg("权限不足", c)
		c.Abort()
		return
	}
	c.Next()
}

// GetAuth 获取当前请求的认证信息
func GetAuth(c *gin.Context) *jwts.Claims {
	return c.MustGet("claims").(*jwts.Claims)
}
