package validate

// File: honey_admin/utils/validate/enter.go
// Description: 参数校验错误翻译模块，将gin绑定校验错误转换为可读的中文提示

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// ValidateError 将参数绑定错误翻译为提示消息
func ValidateError(err error) string {
	// 类型断言为validator校验错误集合
	errs, ok := err.(validator.ValidationErrors)
	if !ok {
		// 非校验类错误（如JSON语法错误）统一返回绑定失败提示
		return "参数绑定错误"
	}

	// 取第一条校验错误生成提示
	for _, e := range errs {
		switch e.Tag() {
		case "required":
			return fmt.Sprintf("%s 为必填项", e.Field())
		case "oneof":
			return fmt.Sprintf("%s 取值不合法", e.Field())
		default:
			return fmt.Sprintf("%s 校验失败 %s", e.Field(), e.Tag())
		}
	}
	return "参数校验失败"
}
