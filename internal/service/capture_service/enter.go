package capture_service

// File: honey_admin/service/capture_service/enter.go
// Description: 捕获服务模块，封装攻击事件入库相关业务逻辑的核心服务实现

import "github.com/sirupsen/logrus"

// CaptureService 捕获服务结构体，承载攻击事件入库业务逻辑及日志实例
type CaptureService struct {
	log *logrus.Entry // 日志实例，用于业务日志记录
}

// NewCaptureService 创建CaptureService实例的构造函数
func NewCaptureService(log *logrus.Entry) *CaptureService {
	return &CaptureService{
		log: log,
	}
}
