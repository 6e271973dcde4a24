package cron_service

// File: honey_admin/service/cron_service/enter.go
// Description: 定时任务服务模块，注册数据保留清理与每日报告定时任务并启动调度器

import (
	"time"

	"honey_admin/internal/global"

	"github.com/robfig/cron/v3"
)

// Run 启动定时任务调度器
func Run() {
	// 加载上海时区，确保定时任务按北京时间执行
	timezone, _ := time.LoadLocation("Asia/Shanghai")

	// 创建crontab实例：启用秒级调度精度，指定上海时区
	crontab := cron.New(cron.WithSeconds(), cron.WithLocation(timezone))

	cfg := global.Config.Cleanup
	cleanupSpec := cfg.Spec
	if cleanupSpec == "" {
		cleanupSpec = "0 0 3 * * *" // 默认每天凌晨3点执行数据清理
	}
	reportSpec := cfg.ReportSpec
	if reportSpec == "" {
		reportSpec = "0 10 0 * * *" // 默认每天0点10分生成前一日报告
	}

	// 注册定时任务
	crontab.AddFunc(cleanupSpec, Cleanup)    // 数据保留清理
	crontab.AddFunc(reportSpec, DailyReport) // 每日攻击报告

	// 启动定时任务调度器（非阻塞，后台运行）
	crontab.Start()
}
