package security

import (
	"testing"
	"time"

	"github.com/jobhunt/backend/internal/entities"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Token_RoundTrip(t *testing.T) {

	secret := []byte("secret")

	token, expiresAt, err := GenerateToken(7, entities.RoleHR, secret, time.Hour)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(time.Hour), expiresAt, time.Minute)

	userID, role, err := ParseToken(token, secret)
	require.NoError(t, err)
	assert.Equal(t, uint(7), userID)
	assert.Equal(t, entities.RoleHR, role)
}

func Test_ParseToken_RejectsWrongSecretAndExpiry(t *testing.T) {

	token, _, err := GenerateToken(7, entities.RoleHR, []byte("secret"), time.Hour)
	require.NoError(t, err)

	_, _, err = ParseToken(token, []byte("other"))
	assert.Error(t, err)

	expired, _, err := GenerateToken(7, entities.RoleHR, []byte("secret"), -time.Minute)
	require.NoError(t, err)

	_, _, err = ParseToken(expired, []byte("secret"))
	assert.Error(t, err)
}
