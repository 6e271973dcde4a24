package user_api

// File: honey_admin/api/user_api/enter.go
// Description: 用户模块API接口定义

// UserApi 用户模块API处理器结构体
type UserApi struct{}
