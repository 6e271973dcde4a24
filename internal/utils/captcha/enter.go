package captcha

// File: honey_admin/utils/captcha/enter.go
// Description: 登录验证码存储模块

import (
	"time"

	"github.com/mojocn/base64Captcha"
)

// CaptchaStore 登录验证码的内存存储，验证码5分钟内有效，验证后即失效
var CaptchaStore = base64Captcha.NewMemoryStore(10240, 5*time.Minute)
