package config

// File: honey_admin/config/enter.go
// Description: 配置模块，定义应用配置结构体及数据库连接配置相关方法

import "fmt"

// Config 应用整体配置结构体
type Config struct {
	DB      DB      `yaml:"db"`      // 数据库配置信息
	Logger  Logger  `yaml:"logger"`  // 日志配置信息
	Redis   Redis   `yaml:"redis"`   // redis配置信息
	System  System  `yaml:"system"`  // 系统配置信息
	Jwt     Jwt     `yaml:"jwt"`     // jwt配置信息
	Capture Capture `yaml:"capture"` // 捕获接口配置信息
	MQ      MQ      `yaml:"mq"`      // 消息队列配置信息
	Cleanup Cleanup `yaml:"cleanup"` // 数据清理配置信息
}

// DB 数据库连接配置结构体
type DB struct {
	DbName          string `yaml:"db_name"`         // 数据库名称
	Host            string `yaml:"host"`            // 数据库主机地址
	Port            int    `yaml:"port"`            // 数据库端口
	User            string `yaml:"user"`            // 数据库用户名
	Password        string `yaml:"password"`        // 数据库密码
	MaxIdleConns    int    `yaml:"maxIdleConns"`    // 数据库最大空闲连接数
	MaxOpenConns    int    `yaml:"maxOpenConns"`    // 数据库最大打开连接数
	ConnMaxLifetime int    `yaml:"connMaxLifetime"` // 数据库连接最大生命周期（秒）
}

// Dsn 生成数据库连接DSN字符串
func (cfg DB) Dsn() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		cfg.User,
		cfg.Password,
		cfg.Host,
		cfg.Port,
		cfg.DbName,
	)
}

// Logger 日志配置结构体
type Logger struct {
	Format  string `yaml:"format"`  // 日志格式 [json|text]
	Level   string `yaml:"level"`   // 日志级别
	AppName string `yaml:"appName"` // 应用名称
}

// Redis 配置结构体
type Redis struct {
	Addr     string `yaml:"addr"`     // Redis地址
	Password string `yaml:"password"` // Redis密码
	DB       int    `yaml:"db"`       // Redis数据库索引
}

// System 系统配置结构体
type System struct {
	WebAddr string `yaml:"webAddr"` // Web服务监听地址
	Mode    string `yaml:"mode"`    // 运行模式 [debug|release|test]
}

// Jwt 配置结构体
type Jwt struct {
	Expires int    `yaml:"expires"` // token过期时间,单位秒
	Issuer  string `yaml:"issuer"`  // token签发者
	Secret  string `yaml:"secret"`  // token密钥
}

// Capture 捕获接口配置结构体
type Capture struct {
	Secret    string `yaml:"secret"`    // 捕获接口HMAC共享密钥
	RateLimit int    `yaml:"rateLimit"` // 每个来源IP每分钟允许的请求数
	Timeout   int    `yaml:"timeout"`   // 单次捕获处理超时时间，单位秒
}

// MQ 消息队列配置结构体
type MQ struct {
	Addr              string `yaml:"addr"`              // RabbitMQ连接地址
	EventExchangeName string `yaml:"eventExchangeName"` // 攻击事件分发交换器名称
	RoutingKey        string `yaml:"routingKey"`        // 事件分发路由键
}

// Cleanup 数据清理配置结构体
type Cleanup struct {
	RetentionDays int    `yaml:"retentionDays"` // 数据保留天数
	Spec          string `yaml:"spec"`          // 清理任务cron表达式
	ReportSpec    string `yaml:"reportSpec"`    // 每日报告cron表达式
}
