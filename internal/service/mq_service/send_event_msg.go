package mq_service

// File: honey_admin/service/mq_service/send_event_msg.go
// Description: 攻击事件消息发送服务，将已入库的攻击事件发布到交换器供下游富化/处理消费
// 事件分发为尽力而为语义，发布失败不影响捕获请求的处理结果

import (
	"encoding/json"

	"honey_admin/internal/global"
	"honey_admin/internal/models"

	"github.com/sirupsen/logrus"
	"github.com/streadway/amqp"
)

// SendEventMsg 发送攻击事件消息到RabbitMQ
func SendEventMsg(event models.AttackEventModel) {
	// 未启用MQ时直接跳过
	if global.Queue == nil {
		return
	}

	// 将事件序列化为JSON字节数据
	byteData, _ := json.Marshal(event)
	cfg := global.Config.MQ // 获取MQ全局配置

	// 发布消息到攻击事件交换器
	err := global.Queue.Publish(
		cfg.EventExchangeName, // 目标交换器名称（攻击事件专用）
		cfg.RoutingKey,        // 路由键
		false,                 // mandatory：消息无法路由时不强制返回（直接丢弃）
		false,                 // immediate：消息无需立即投递（异步处理）
		amqp.Publishing{ // 消息内容配置
			ContentType: "application/json", // 消息内容类型
			Body:        byteData,           // 序列化后的事件消息体
		})

	// 记录消息发送结果
	if err != nil {
		logrus.Errorf("事件消息发送失败 %s eventID=%d", err, event.ID)
	} else {
		logrus.Infof("事件消息发送成功 eventID=%d", event.ID)
	}
}
