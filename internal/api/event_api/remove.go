package event_api

// File: honey_admin/api/event_api/remove.go
// Description: 攻击事件批量删除API接口（管理端数据整理用，物理删除）

import (
	"fmt"

	"honey_admin/internal/middleware"
	"honey_admin/internal/models"
	"honey_admin/internal/service/common_service"
	"honey_admin/internal/utils/response"

	"github.com/gin-gonic/gin"
)

// RemoveView 攻击事件批量删除接口处理函数
func (EventApi) RemoveView(c *gin.Context) {
	cr := middleware.GetBind[models.IDListRequest](c)
	log := middleware.GetLog(c)

	// 调用通用删除服务执行批量物理删除
	successCount, err := common_service.Remove(models.AttackEventModel{}, common_service.RemoveRequest{
		IDList:   cr.IdList,  // 待删除的事件ID列表
		Log:      log,        // 操作日志实例
		Msg:      "攻击事件", // 操作对象描述
		Unscoped: true,       // 物理删除
	})
	if err != nil {
		msg := fmt.Sprintf("删除攻击事件失败 %s", err)
		response.FailWithMsg(msg, c)
		return
	}

	msg := fmt.Sprintf("删除成功 共%d个，成功%d个", len(cr.IdList), successCount)
	response.OkWithMsg(msg, c)
}
