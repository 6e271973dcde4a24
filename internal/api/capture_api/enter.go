package capture_api

// File: honey_admin/api/capture_api/enter.go
// Description: 捕获接口模块定义，接收外部上报的攻击事件

// CaptureApi 捕获接口处理结构体
type CaptureApi struct{}
