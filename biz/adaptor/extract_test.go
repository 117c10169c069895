package adaptor

import (
	"context"
	"edu-manage/biz/infrastructure/config"
	"edu-manage/biz/infrastructure/consts"
	"testing"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func testConfig() {
	config.SetConfig(&config.Config{
		Auth: config.Auth{
			SecretKey:    testSecret,
			AccessExpire: 3600,
		},
	})
}

func TestSignAndVerifyToken(t *testing.T) {
	token, exp, err := SignToken(testSecret, "alice@example.com", 3600)
	require.NoError(t, err)
	assert.NotZero(t, exp)

	meta, err := VerifyToken(testSecret, token)
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", meta.GetEmail())
}

func TestVerifyTokenWrongSecret(t *testing.T) {
	token, _, err := SignToken(testSecret, "alice@example.com", 3600)
	require.NoError(t, err)

	_, err = VerifyToken("another-secret", token)
	assert.Error(t, err)
}

func TestVerifyTokenExpired(t *testing.T) {
	token, _, err := SignToken(testSecret, "alice@example.com", -3600)
	require.NoError(t, err)

	_, err = VerifyToken(testSecret, token)
	assert.Error(t, err)
}

func TestVerifyTokenNoEmail(t *testing.T) {
	token, _, err := SignToken(testSecret, "", 3600)
	require.NoError(t, err)

	_, err = VerifyToken(testSecret, token)
	assert.Error(t, err)
}

func TestExtractUserMeta(t *testing.T) {
	testConfig()

	t.Run("missing hertz context", func(t *testing.T) {
		_, err := ExtractUserMeta(context.Background())
		assert.ErrorIs(t, err, consts.ErrNotAuthentication)
	})

	t.Run("missing header", func(t *testing.T) {
		c := &app.RequestContext{}
		_, err := ExtractUserMeta(InjectContext(context.Background(), c))
		assert.ErrorIs(t, err, consts.ErrNotAuthentication)
	})

	t.Run("invalid token", func(t *testing.T) {
		c := &app.RequestContext{}
		c.Request.Header.Set("Authorization", "Bearer not-a-token")
		_, err := ExtractUserMeta(InjectContext(context.Background(), c))
		assert.ErrorIs(t, err, consts.ErrForbidden)
	})

	t.Run("valid token", func(t *testing.T) {
		token, _, err := SignToken(testSecret, "bob@example.com", 3600)
		require.NoError(t, err)

		c := &app.RequestContext{}
		c.Request.Header.Set("Authorization", "Bearer "+token)
		meta, err := ExtractUserMeta(InjectContext(context.Background(), c))
		require.NoError(t, err)
		assert.Equal(t, "bob@example.com", meta.GetEmail())
	})
}
