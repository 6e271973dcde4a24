package mq_service

// File: honey_admin/service/mq_service/enter.go
// Description: 启动RabbitMQ服务，注册事件分发所需交换器

import (
	"honey_admin/internal/global"

	"github.com/sirupsen/logrus"
)

// Run 注册系统所需的所有RabbitMQ交换器
func Run() {
	// 未启用MQ时跳过注册
	if global.Queue == nil {
		return
	}
	cfg := global.Config.MQ
	// 声明攻击事件分发的交换器
	exchangeDeclare(cfg.EventExchangeName)
}

// exchangeDeclare 声明单个RabbitMQ交换器
func exchangeDeclare(name string) {
	// 调用AMQP接口声明交换器
	err := global.Queue.ExchangeDeclare(
		name,     // 交换器名称
		"direct", // 交换器类型：direct（直接交换器），根据路由键精确匹配队列
		true,     // 持久化：交换器在服务器重启后仍然存在
		false,    // 自动删除：当所有绑定队列都不再使用时，交换器不会自动删除
		false,    // 内部：是否为内部交换器
		false,    // 非阻塞：是否阻塞等待声明完成
		nil,      // 额外参数：无特殊配置
	)
	if err != nil {
		logrus.Fatalf("声明交换器 %s 失败 %s", name, err)
	}
	logrus.Infof("交换器 %s 注册成功", name)
}
