package index_api

// File: honey_admin/api/index_api/enter.go
// Description: 首页大屏模块API接口定义

// IndexApi 首页大屏模块API处理器结构体
type IndexApi struct{}
