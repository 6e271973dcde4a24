package log_api

// File: honey_admin/api/log_api/enter.go
// Description: 系统日志模块API接口定义

// LogApi 系统日志模块API处理器结构体
type LogApi struct{}
