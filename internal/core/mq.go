package core

// File: honey_admin/core/mq.go
// Description: RabbitMQ核心模块，建立连接并提供全局Channel实例

import (
	"honey_admin/internal/global"

	"github.com/sirupsen/logrus"
	"github.com/streadway/amqp"
)

// GetMqChannel 建立RabbitMQ连接并返回Channel实例
// 未配置MQ地址时返回nil，事件分发功能自动降级
func GetMqChannel() *amqp.Channel {
	cfg := global.Config.MQ
	if cfg.Addr == "" {
		logrus.Warnf("未配置MQ地址，事件分发功能不可用")
		return nil
	}

	// 建立RabbitMQ连接
	conn, err := amqp.Dial(cfg.Addr)
	if err != nil {
		logrus.Fatalf("MQ连接失败 %s", err)
		return nil
	}

	// 创建信道
	channel, err := conn.Channel()
	if err != nil {
		logrus.Fatalf("MQ信道创建失败 %s", err)
		return nil
	}

	logrus.Infof("MQ连接成功")
	return channel
}
