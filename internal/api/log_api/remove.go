package log_api

// File: honey_admin/api/log_api/remove.go
// Description: 系统日志批量删除API接口

import (
	"fmt"

	"honey_admin/internal/middleware"
	"honey_admin/internal/models"
	"honey_admin/internal/service/common_service"
	"honey_admin/internal/utils/response"

	"github.com/gin-gonic/gin"
)

// RemoveView 日志批量删除接口处理函数
func (LogApi) RemoveView(c *gin.Context) {
	cr := middleware.GetBind[models.IDListRequest](c)
	log := middleware.GetLog(c)

	// 调用通用删除服务执行批量删除
	successCount, err := common_service.Remove(models.LogModel{}, common_service.RemoveRequest{
		IDList: cr.IdList, // 待删除的日志ID列表
		Log:    log,       // 操作日志实例
		Msg:    "系统日志", // 操作对象描述
	})
	if err != nil {
		msg := fmt.Sprintf("删除日志失败 %s", err)
		response.FailWithMsg(msg, c)
		return
	}

	msg := fmt.Sprintf("删除成功 共%d个，成功%d个", len(cr.IdList), successCount)
	response.OkWithMsg(msg, c)
}
