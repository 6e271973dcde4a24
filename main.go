package main

import (
	"honey_admin/internal/core"
	"honey_admin/internal/flags"
	"honey_admin/internal/global"
	"honey_admin/internal/routers"
	"honey_admin/internal/service/cron_service"
	"honey_admin/internal/service/mq_service"
)

func main() {
	flags.Parse()                        // 解析命令行参数
	flags.ShowVersion()                  // 打印版本信息
	global.Config = core.ReadConfig()    // 读取配置文件
	core.SetLogDefault()                 // 设置默认日志配置
	global.Log = core.GetLogger()        // 获取日志实例
	global.DB = core.GetDB()             // 获取MySQL数据库实例
	global.Redis = core.GetRedisClient() // 获取Redis实例
	global.Queue = core.GetMqChannel()   // 获取消息队列通道
	flags.Run()                          // 运行命令行参数
	mq_service.Run()                     // 初始化消息队列交换机
	cron_service.Run()                   // 启动定时任务
	routers.Run()                        // 启动路由
}
