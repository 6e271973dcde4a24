package index_api

// File: honey_admin/api/index_api/database.go
// Description: 数据库概览API接口，列出全部数据表及行数
// 表清单通过迁移器获取，不依赖具体数据库方言

import (
	"fmt"

	"honey_admin/internal/global"
	"honey_admin/internal/middleware"
	"honey_admin/internal/utils/response"

	"github.com/gin-gonic/gin"
)

// TableInfo 单个数据表概览信息结构体
type TableInfo struct {
	Name  string `json:"name"`  // 表名
	Count string `json:"count"` // 行数，统计失败时为N/A
}

// DatabaseView 数据库概览接口处理函数
func (IndexApi) DatabaseView(c *gin.Context) {
	log := middleware.GetLog(c)

	// 清单获取失败时降级为空页面
	tables, err := global.DB.Migrator().GetTables()
	if err != nil {
		log.Errorf("数据表清单获取失败 %s", err)
	}

	var list = make([]TableInfo, 0, len(tables))
	for _, name := range tables {
		info := TableInfo{Name: name, Count: "N/A"}
		// 单表统计失败不影响整体响应
		var count int64
		if err := global.DB.Table(name).Count(&count).Error; err == nil {
			info.Count = fmt.Sprintf("%d", count)
		} else {
			log.Warnf("数据表行数统计失败 table=%s err=%s", name, err)
		}
		list = append(list, info)
	}

	response.OkWithData(list, c)
}
