package index_api_test

// File: honey_admin/api/index_api/index_test.go
// Description: 首页大屏聚合接口测试

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"honey_admin/internal/api"
	"honey_admin/internal/config"
	"honey_admin/internal/global"
	"honey_admin/internal/middleware"
	"honey_admin/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupEnv(t *testing.T) {
	gin.SetMode(gin.TestMode)

	logger := logrus.New()
	logger.SetLevel(logrus.ErrorLevel)
	global.Log = logrus.NewEntry(logger)
	global.Config = &config.Config{}

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.AttackerModel{}, &models.AttackEventModel{}))
	global.DB = db
}

// seedCountry 写入指定国家的档案及其若干事件
func seedCountry(t *testing.T, ip, country string, eventCount int) {
	now := time.Now()
	attacker := models.AttackerModel{
		IP:        ip,
		Country:   country,
		FirstSeen: now,
		LastSeen:  now,
	}
	require.NoError(t, global.DB.Create(&attacker).Error)
	for i := 0; i < eventCount; i++ {
		event := models.AttackEventModel{
			Timestamp:       now,
			IP:              ip,
			Method:          "GET",
			Path:            "/",
			HoneypotService: "web",
			Severity:        "low",
			AttackerID:      attacker.ID,
		}
		require.NoError(t, global.DB.Create(&event).Error)
	}
}

// doGet 发起GET请求并解析统一响应封装中的data字段
func doGet(t *testing.T, r *gin.Engine, path string, data any) {
	req := httptest.NewRequest("GET", path, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Code int             `json:"code"`
		Data json.RawMessage `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Equal(t, 0, resp.Code)
	require.NoError(t, json.Unmarshal(resp.Data, data))
}

func TestCountryAggView(t *testing.T) {
	setupEnv(t)
	seedCountry(t, "203.0.113.1", "CN", 3)
	seedCountry(t, "203.0.113.2", "US", 2)
	seedCountry(t, "203.0.113.3", "", 1)

	r := gin.New()
	r.GET("/api/index/country_agg", middleware.LogMiddleware, api.App.IndexApi.CountryAggView)

	var list []struct {
		Label string `json:"label"`
		Count int64  `json:"count"`
	}
	doGet(t, r, "/api/index/country_agg", &list)

	// 空国家归入Unknown，按事件数降序
	counts := map[string]int64{}
	for _, item := range list {
		counts[item.Label] = item.Count
	}
	assert.Equal(t, map[string]int64{"CN": 3, "US": 2, "Unknown": 1}, counts)
	assert.Equal(t, "CN", list[0].Label)
}

func TestAttackCountView(t *testing.T) {
	setupEnv(t)
	seedCountry(t, "203.0.113.1", "CN", 2)
	seedCountry(t, "203.0.113.2", "US", 1)

	r := gin.New()
	r.GET("/api/index/count", middleware.LogMiddleware, api.App.IndexApi.AttackCountView)

	var data struct {
		EventCount    int64 `json:"eventCount"`
		AttackerCount int64 `json:"attackerCount"`
		TodayCount    int64 `json:"todayCount"`
	}
	doGet(t, r, "/api/index/count", &data)

	assert.Equal(t, int64(3), data.EventCount)
	assert.Equal(t, int64(2), data.AttackerCount)
	assert.Equal(t, int64(3), data.TodayCount)
}

func TestServiceAggView(t *testing.T) {
	setupEnv(t)
	seedCountry(t, "203.0.113.1", "CN", 2)

	r := gin.New()
	r.GET("/api/index/service_agg", middleware.LogMiddleware, api.App.IndexApi.ServiceAggView)

	var list []struct {
		Label string `json:"label"`
		Count int64  `json:"count"`
	}
	doGet(t, r, "/api/index/service_agg", &list)

	require.Len(t, list, 1)
	assert.Equal(t, "web", list[0].Label)
	assert.Equal(t, int64(2), list[0].Count)
}
