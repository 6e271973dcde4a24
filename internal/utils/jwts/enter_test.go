package jwts

// File: honey_admin/utils/jwts/enter_test.go
// Description: JWT工具单元测试

import (
	"testing"

	"honey_admin/internal/config"
	"honey_admin/internal/global"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupConfig() {
	global.Config = &config.Config{
		Jwt: config.Jwt{
			Expires: 3600,
			Issuer:  "honey_admin",
			Secret:  "test-secret",
		},
	}
}

func TestTokenRoundTrip(t *testing.T) {
	setupConfig()

	token, err := GetToken(ClaimsUserInfo{UserID: 7, IsAdmin: true})
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, uint(7), claims.UserID)
	assert.True(t, claims.IsAdmin)
	assert.Equal(t, "honey_admin", claims.Issuer)
}

func TestParseTokenBadSecret(t *testing.T) {
	setupConfig()
	token, err := GetToken(ClaimsUserInfo{UserID: 1})
	require.NoError(t, err)

	// 密钥变更后旧Token必须失效
	global.Config.Jwt.Secret = "rotated"
	_, err = ParseToken(token)
	assert.Error(t, err)
}

func TestParseTokenBadIssuer(t *testing.T) {
	setupConfig()
	token, err := GetToken(ClaimsUserInfo{UserID: 1})
	require.NoError(t, err)

	global.Config.Jwt.Issuer = "other"
	_, err = ParseToken(token)
	assert.Error(t, err)
}

func TestParseTokenGarbage(t *testing.T) {
	setupConfig()
	_, err := ParseToken("not.a.token")
	assert.Error(t, err)
}
