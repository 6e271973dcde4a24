package index_api

// File: honey_admin/api/index_api/simulate.go
// Description: 模拟攻击生成API接口，管理端演示用

import (
	"honey_admin/internal/middleware"
	"honey_admin/internal/service/capture_service"
	"honey_admin/internal/utils/response"

	"github.com/gin-gonic/gin"
)

// SimulateRequest 模拟攻击生成请求参数结构体，字段均可缺省
type SimulateRequest struct {
	IP       string `json:"ip"`       // 模拟来源IP
	Ua       string `json:"ua"`       // 模拟UA
	Country  string `json:"country"`  // 模拟国家
	Severity string `json:"severity"` // 模拟严重级别
}

// SimulateView 模拟攻击生成接口处理函数
func (IndexApi) SimulateView(c *gin.Context) {
	cr := middleware.GetBind[SimulateRequest](c)
	log := middleware.GetLog(c)

	service := capture_service.NewCaptureService(log)
	eventID, err := service.Simulate(capture_service.SimulateRequest{
		IP:       cr.IP,
		Ua:       cr.Ua,
		Country:  cr.Country,
		Severity: cr.Severity,
	})
	if err != nil {
		response.FailWithMsg("模拟攻击生成失败", c)
		return
	}

	response.OkWithData(gin.H{"event_id": eventID}, c)
}
