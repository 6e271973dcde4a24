package pwd

// File: honey_admin/utils/pwd/enter.go
// Description: 管理员账号密码哈希模块，登录校验与用户创建共用

import "golang.org/x/crypto/bcrypt"

// GenerateFromPassword 对明文密码做bcrypt哈希，数据库只存哈希值
func GenerateFromPassword(password string) (string, error) {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashedPassword), nil
}

// CompareHashAndPassword 校验登录密码与存储的哈希是否匹配
func CompareHashAndPassword(hashedPassword string, password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password))
	return err == nil
}
