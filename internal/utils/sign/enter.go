package sign

// File: honey_admin/utils/sign/enter.go
// Description: 捕获接口签名工具模块，实现基于HMAC-SHA256的请求签名生成与校验

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"strconv"
	"time"
)

// MaxSkewSeconds 签名时间戳允许的最大偏差（重放窗口），单位秒
const MaxSkewSeconds = 300

// Generate 计算时间戳字符串与请求体拼接后的HMAC-SHA256十六进制签名
func Generate(secret string, timestamp string, body []byte) string {
	h := hmac.New(sha256.New, []byte(secret))
	h.Write([]byte(timestamp))
	h.Write(body)
	return hex.EncodeToString(h.Sum(nil))
}

// Verify 校验捕获请求签名，任一步失败即拒绝
// 校验顺序：签名与时间戳非空 → 时间戳为整数秒 → 时间戳在重放窗口内 → HMAC恒定时间比对
func Verify(secret string, signature string, timestamp string, body []byte, now time.Time) bool {
	// 签名头或时间戳头缺失
	if signature == "" || timestamp == "" {
		return false
	}

	// 时间戳必须为十进制unix秒
	ts, err := strconv.ParseInt(timestamp, 10, 64)
	if err != nil {
		return false
	}

	// 时间戳超出重放窗口，拒绝过期或重放的请求
	diff := now.Unix() - ts
	if diff < 0 {
		diff = -diff
	}
	if diff > MaxSkewSeconds {
		return false
	}

	// 恒定时间比对签名，避免时序侧信道泄露密钥信息
	expected := Generate(secret, timestamp, body)
	return hmac.Equal([]byte(signature), []byte(expected))
}
