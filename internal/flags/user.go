package flags

// File: honey_admin/flags/user.go
// Description: 用户命令行操作模块，支持通过JSON参数或交互式方式创建管理员及查询用户列表

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"honey_admin/internal/global"
	"honey_admin/internal/models"
	"honey_admin/internal/service/user_service"

	"github.com/sirupsen/logrus"
)

// User 用户命令行操作结构体
type User struct {
}

// Create 创建用户，value为JSON参数（为空时进入交互式输入）
func (User) Create(value string) {
	var req user_service.UserCreateRequest

	if value != "" {
		// JSON参数方式创建
		err := json.Unmarshal([]byte(value), &req)
		if err != nil {
			logrus.Fatalf("用户参数解析失败 %s", err)
		}
	} else {
		// 交互式输入方式创建
		reader := bufio.NewReader(os.Stdin)
		fmt.Print("请输入用户名：")
		username, _ := reader.ReadString('\n')
		fmt.Print("请输入密码：")
		password, _ := reader.ReadString('\n')
		req.Username = strings.TrimSpace(username)
		req.Password = strings.TrimSpace(password)
		req.IsAdmin = true
	}

	service := user_service.NewUserService(global.Log)
	user, err := service.Create(req)
	if err != nil {
		logrus.Fatalf("%s", err)
	}
	logrus.Infof("用户 %s 创建成功 id=%d", user.Username, user.ID)
}

// List 查询并打印用户列表
func (User) List() {
	var userList []models.UserModel
	global.DB.Order("created_at desc").Find(&userList)
	for _, user := range userList {
		fmt.Printf("id: %d  username: %s  isAdmin: %v  createdAt: %s\n",
			user.ID, user.Username, user.IsAdmin, user.CreatedAt.Format("2006-01-02 15:04:05"))
	}
}
