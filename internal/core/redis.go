package core

// File: honey_admin/core/redis.go
// Description: Redis客户端初始化模块，提供单例Redis客户端的创建与获取功能

import (
	"context"
	"sync"

	"honey_admin/internal/global"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// redisClient 全局Redis客户端实例，通过单例模式初始化
var redisClient *redis.Client

// InitRedis 初始化Redis客户端，建立连接并验证
func InitRedis() (client *redis.Client) {
	cfg := global.Config.Redis
	client = redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,     // Redis服务地址
		Password: cfg.Password, // Redis密码
		DB:       cfg.DB,       // Redis数据库索引
	})

	// 检测Redis连接有效性
	_, err := client.Ping(context.Background()).Result()
	if err != nil {
		logrus.Fatalf("Redis连接失败 %s", err)
		return
	}

	logrus.Infof("Redis连接成功")
	return
}

var onceRedis sync.Once

// GetRedisClient 获取Redis客户端实例（单例模式）
func GetRedisClient() *redis.Client {
	onceRedis.Do(func() {
		redisClient = InitRedis()
	})
	return redisClient
}
