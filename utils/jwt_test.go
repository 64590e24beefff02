package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"salonapi/config"
	"salonapi/models"
)

func TestTokenRoundTrip(t *testing.T) {
	config.AppConfig.JWTSecret = "test-secret"

	token, err := GenerateToken("64b0f00dd1e2aa34569fa1c2", models.RoleManager, time.Hour)
	require.NoError(t, err)

	user, err := ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, "64b0f00dd1e2aa34569fa1c2", user.ID)
	assert.Equal(t, models.RoleManager, user.Role)
}

func TestParseToken_Expired(t *testing.T) {
	config.AppConfig.JWTSecret = "test-secret"

	token, err := GenerateToken("64b0f00dd1e2aa34569fa1c2", models.RoleClient, -time.Minute)
	require.NoError(t, err)

	_, err = ParseToken(token)
	assert.Error(t, err)
}

func TestParseToken_Garbage(t *testing.T) {
	config.AppConfig.JWTSecret = "test-secret"

	_, err := ParseToken("not.a.token")
	assert.Error(t, err)
}
