package attacker_api

// File: honey_admin/api/attacker_api/enter.go
// Description: 攻击者档案模块API接口定义

// AttackerApi 攻击者档案模块API处理器结构体
type AttackerApi struct{}
