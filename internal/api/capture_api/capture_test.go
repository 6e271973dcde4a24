package capture_api_test

// File: honey_admin/api/capture_api/capture_test.go
// Description: 捕获接口端到端测试，覆盖签名校验、限流与入库链路

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"honey_admin/internal/api"
	"honey_admin/internal/config"
	"honey_admin/internal/global"
	"honey_admin/internal/middleware"
	"honey_admin/internal/models"
	"honey_admin/internal/utils/sign"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	redis "github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

const testSecret = "s3cret"

// setupRouter 构建与生产一致的捕获路由链并初始化测试环境
func setupRouter(t *testing.T) *gin.Engine {
	gin.SetMode(gin.TestMode)

	logger := logrus.New()
	logger.SetLevel(logrus.ErrorLevel)
	global.Log = logrus.NewEntry(logger)
	global.Redis = nil
	global.Queue = nil
	global.Config = &config.Config{
		Capture: config.Capture{Secret: testSecret, RateLimit: 100, Timeout: 5},
	}

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.AttackerModel{}, &models.AttackEventModel{}))
	global.DB = db

	r := gin.New()
	r.POST("/api/capture",
		middleware.LogMiddleware,
		middleware.RateLimitMiddleware,
		middleware.CaptureAuthMiddleware,
		api.App.CaptureApi.CaptureView)
	return r
}

// doCapture 发起一次带签名头的捕获请求
func doCapture(r *gin.Engine, body []byte, signature, timestamp, xff string) *httptest.ResponseRecorder {
	req := httptest.NewRequest("POST", "/api/capture", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if signature != "" {
		req.Header.Set("X-API-Signature", signature)
	}
	if timestamp != "" {
		req.Header.Set("X-API-Timestamp", timestamp)
	}
	if xff != "" {
		req.Header.Set("X-Forwarded-For", xff)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func signedHeaders(body []byte) (signature, timestamp string) {
	timestamp = fmt.Sprintf("%d", time.Now().Unix())
	return sign.Generate(testSecret, timestamp, body), timestamp
}

func TestCaptureViewOk(t *testing.T) {
	r := setupRouter(t)

	body := []byte(`{"service":"ssh","severity":"high","signature":"brute-force"}`)
	signature, timestamp := signedHeaders(body)
	w := doCapture(r, body, signature, timestamp, "203.0.113.50, 10.0.0.1")

	require.Equal(t, http.StatusOK, w.Code)
	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "ok", resp["status"])
	assert.Greater(t, resp["event_id"].(float64), float64(0))

	// 来源IP取X-Forwarded-For首个地址
	var event models.AttackEventModel
	require.NoError(t, global.DB.Take(&event, uint(resp["event_id"].(float64))).Error)
	assert.Equal(t, "203.0.113.50", event.IP)
	assert.Equal(t, "ssh", event.HoneypotService)
	assert.Equal(t, "brute-force", event.Signature)
}

func TestCaptureViewBadSignature(t *testing.T) {
	r := setupRouter(t)

	body := []byte(`{"service":"web"}`)
	_, timestamp := signedHeaders(body)
	w := doCapture(r, body, "deadbeef", timestamp, "")

	require.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"error": "Invalid signature"}`, w.Body.String())

	// 拒绝的请求不产生任何写入
	var attackerCount, eventCount int64
	global.DB.Model(models.AttackerModel{}).Count(&attackerCount)
	global.DB.Model(models.AttackEventModel{}).Count(&eventCount)
	assert.Zero(t, attackerCount)
	assert.Zero(t, eventCount)
}

func TestCaptureViewExpiredTimestamp(t *testing.T) {
	r := setupRouter(t)

	body := []byte(`{}`)
	// 有效签名但时间戳超出重放窗口
	timestamp := fmt.Sprintf("%d", time.Now().Add(-400*time.Second).Unix())
	signature := sign.Generate(testSecret, timestamp, body)
	w := doCapture(r, body, signature, timestamp, "")

	require.Equal(t, http.StatusUnauthorized, w.Code)

	var eventCount int64
	global.DB.Model(models.AttackEventModel{}).Count(&eventCount)
	assert.Zero(t, eventCount)
}

func TestCaptureViewMissingHeaders(t *testing.T) {
	r := setupRouter(t)

	w := doCapture(r, []byte(`{}`), "", "", "")
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestCaptureViewMalformedBody(t *testing.T) {
	r := setupRouter(t)

	// 非法JSON但签名有效：按空载荷处理并应用默认值
	body := []byte(`{not json`)
	signature, timestamp := signedHeaders(body)
	w := doCapture(r, body, signature, timestamp, "198.51.100.3")

	require.Equal(t, http.StatusOK, w.Code)
	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	var event models.AttackEventModel
	require.NoError(t, global.DB.Take(&event, uint(resp["event_id"].(float64))).Error)
	assert.Equal(t, "web", event.HoneypotService)
	assert.Equal(t, "low", event.Severity)
}

func TestCaptureViewRateLimit(t *testing.T) {
	r := setupRouter(t)

	// 接入miniredis作为限流计数存储
	mr := miniredis.RunT(t)
	global.Redis = redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer func() { global.Redis = nil }()
	global.Config.Capture.RateLimit = 2

	body := []byte(`{}`)
	for i := 0; i < 2; i++ {
		signature, timestamp := signedHeaders(body)
		w := doCapture(r, body, signature, timestamp, "203.0.113.77")
		require.Equal(t, http.StatusOK, w.Code)
	}

	// 超过窗口上限返回429
	signature, timestamp := signedHeaders(body)
	w := doCapture(r, body, signature, timestamp, "203.0.113.77")
	require.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.JSONEq(t, `{"error": "Too many requests"}`, w.Body.String())

	// 其他来源IP不受影响
	signature, timestamp = signedHeaders(body)
	w = doCapture(r, body, signature, timestamp, "203.0.113.78")
	require.Equal(t, http.StatusOK, w.Code)
}
