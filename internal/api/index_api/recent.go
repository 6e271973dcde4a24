package index_api

// File: honey_admin/api/index_api/recent.go
// Description: 首页最近攻击事件滚动列表API接口

import (
	"honey_admin/internal/global"
	"honey_admin/internal/models"
	"honey_admin/internal/utils/response"

	"github.com/gin-gonic/gin"
)

// 首页滚动列表固定条数
const recentEventLimit = 20

// RecentView 最近攻击事件接口处理函数，固定返回最新20条
func (IndexApi) RecentView(c *gin.Context) {
	var list = make([]models.AttackEventModel, 0)
	global.DB.Order("timestamp desc").Limit(recentEventLimit).Find(&list)
	response.OkWithData(list, c)
}
