package event_api

// File: honey_admin/api/event_api/enter.go
// Description: 攻击事件模块API接口定义

// EventApi 攻击事件模块API处理器结构体
type EventApi struct{}
