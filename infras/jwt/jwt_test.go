package jwt_test

import (
	"tatzy/config"
	"tatzy/infras/jwt"
	"testing"
	"time"

	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newConfig() *config.Config {
	cfg := &config.Config{}
	cfg.JWT.AccessSecret = "test-secret"
	cfg.JWT.AccessExpireMin = 60
	cfg.JWT.Issuer = "tatzy"

	return cfg
}

func TestGenerateAndValidate(t *testing.T) {
	service := jwt.New(newConfig())

	token, err := service.GenerateAccessToken("dispatcher-1", "ops@tatzy.ca", "dispatcher")
	require.NoError(t, err)
	assert.Equal(t, "Bearer", token.TokenType)
	assert.True(t, token.ExpiresAt.After(time.Now()))

	claims, err := service.ValidateToken(token.Token)
	require.NoError(t, err)
	assert.Equal(t, "dispatcher-1", claims.DispatcherID)
	assert.Equal(t, "ops@tatzy.ca", claims.Email)
	assert.Equal(t, "dispatcher", claims.Role)
}

func TestValidateToken_Rejects(t *testing.T) {
	cfg := newConfig()
	service := jwt.New(cfg)

	_, err := service.ValidateToken("not.a.token")
	assert.ErrorIs(t, err, jwt.ErrInvalidToken)

	other := newConfig()
	other.JWT.AccessSecret = "another-secret"

	foreign, err := jwt.New(other).GenerateAccessToken("d", "e", "r")
	require.NoError(t, err)

	_, err = service.ValidateToken(foreign.Token)
	assert.ErrorIs(t, err, jwt.ErrInvalidToken)

	expired := gojwt.NewWithClaims(gojwt.SigningMethodHS256, jwt.Claims{
		DispatcherID: "d",
		RegisteredClaims: gojwt.RegisteredClaims{
			Issuer:    "tatzy",
			ExpiresAt: gojwt.NewNumericDate(time.Now().Add(-time.Hour)),
		},
	})
	signed, err := expired.SignedString([]byte(cfg.JWT.AccessSecret))
	require.NoError(t, err)

	_, err = service.ValidateToken(signed)
	assert.ErrorIs(t, err, jwt.ErrExpiredToken)
}

func TestMissingSecret(t *testing.T) {
	service := jwt.New(&config.Config{})

	_, err := service.GenerateAccessToken("d", "e", "r")
	assert.ErrorIs(t, err, jwt.ErrMissingSecret)

	_, err = service.ValidateToken("x")
	assert.ErrorIs(t, err, jwt.ErrMissingSecret)
}

func TestExtractTokenFromHeader(t *testing.T) {
	token, err := jwt.ExtractTokenFromHeader("Bearer abc.def")
	require.NoError(t, err)
	assert.Equal(t, "abc.def", token)

	_, err = jwt.ExtractTokenFromHeader("")
	assert.ErrorIs(t, err, jwt.ErrMissingHeader)

	_, err = jwt.ExtractTokenFromHeader("Basic abc")
	assert.ErrorIs(t, err, jwt.ErrMalformedBearer)
}
