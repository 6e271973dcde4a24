package user_api

// File: honey_admin/api/user_api/remove.go
// Description: 用户删除API接口

import (
	"fmt"

	"honey_admin/internal/middleware"
	"honey_admin/internal/models"
	"honey_admin/internal/service/common_service"
	"honey_admin/internal/utils/response"

	"github.com/gin-gonic/gin"
)

// UserRemoveRequest 用户删除请求参数结构体
type UserRemoveRequest struct {
	models.IDListRequest // ID列表嵌套结构体
}

// UserRemoveView 用户删除接口处理函数
func (UserApi) UserRemoveView(c *gin.Context) {
	cr := middleware.GetBind[UserRemoveRequest](c)
	log := middleware.GetLog(c)
	claims := middleware.GetAuth(c)

	// 管理员不能删除自己
	for _, id := range cr.IdList {
		if id == claims.UserID {
			response.FailWithMsg("不能删除当前登录用户", c)
			return
		}
	}

	// 调用通用删除服务执行批量删除
	successCount, err := common_service.Remove(models.UserModel{}, common_service.RemoveRequest{
		IDList: cr.IdList, // 待删除的用户ID列表
		Log:    log,       // 操作日志实例
		Msg:    "用户",    // 操作对象描述
	})
	if err != nil {
		msg := fmt.Sprintf("删除用户失败 %s", err)
		response.FailWithMsg(msg, c)
		return
	}

	msg := fmt.Sprintf("删除成功 共%d个，成功%d个", len(cr.IdList), successCount)
	response.OkWithMsg(msg, c)
}
