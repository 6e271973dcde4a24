package api

// File: honey_admin/api/enter.go
// Description: 系统Api入口

import (
	"honey_admin/internal/api/attacker_api"
	"honey_admin/internal/api/captcha_api"
	"honey_admin/internal/api/capture_api"
	"honey_admin/internal/api/event_api"
	"honey_admin/internal/api/index_api"
	"honey_admin/internal/api/log_api"
	"honey_admin/internal/api/user_api"
)

// Api 全局Api定义
type Api struct {
	UserApi     user_api.UserApi
	CaptchaApi  captcha_api.CaptchaApi
	CaptureApi  capture_api.CaptureApi
	AttackerApi attacker_api.AttackerApi
	EventApi    event_api.EventApi
	IndexApi    index_api.IndexApi
	LogApi      log_api.LogApi
}

var App = Api{}
