package services

import (
	"context"
	"testing"
	"time"

	"github.com/jobhunt/backend/internal/apperrors"
	"github.com/jobhunt/backend/internal/security"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testTokenTTL = time.Hour

func Test_RegisterAndLogin_RoundTrip(t *testing.T) {

	env := newTestEnv(t)

	registered, err := env.auth.Register(context.Background(), RegisterRequest{
		Username: "alice",
		Password: "s3cret",
		Sex:      "f",
		Role:     "hr",
	})
	require.NoError(t, err)
	assert.NotZero(t, registered.ID)
	assert.Equal(t, "hr", registered.Role)

	token, err := env.auth.Login(context.Background(), "alice", "s3cret")
	require.NoError(t, err)
	assert.NotEmpty(t, token.Token)
	assert.WithinDuration(t, time.Now().Add(testTokenTTL), token.ExpiresAt, time.Minute)

	userID, role, err := security.ParseToken(token.Token, []byte("test-secret"))
	require.NoError(t, err)
	assert.Equal(t, registered.ID, userID)
	assert.Equal(t, "hr", string(role))
}

func Test_Login_WrongPasswordIsUnauthorized(t *testing.T) {

	env := newTestEnv(t)

	_, err := env.auth.Register(context.Background(), RegisterRequest{
		Username: "bob", Password: "right", Role: "employee",
	})
	require.NoError(t, err)

	_, err = env.auth.Login(context.Background(), "bob", "wrong")
	assert.True(t, apperrors.IsCode(err, apperrors.CodeUnauthorized))

	_, err = env.auth.Login(context.Background(), "nobody", "right")
	assert.True(t, apperrors.IsCode(err, apperrors.CodeUnauthorized))
}

func Test_Register_DuplicateUsernameIsValidationError(t *testing.T) {

	env := newTestEnv(t)

	_, err := env.auth.Register(context.Background(), RegisterRequest{
		Username: "carol", Password: "pw", Role: "employee",
	})
	require.NoError(t, err)

	_, err = env.auth.Register(context.Background(), RegisterRequest{
		Username: "carol", Password: "pw2", Role: "hr",
	})

	require.Error(t, err)
	assert.True(t, apperrors.IsCode(err, apperrors.CodeValidation))
	assert.Equal(t, "username", apperrors.From(err).Field)
}

func Test_Register_RejectsUnknownRoleAndSex(t *testing.T) {

	env := newTestEnv(t)

	_, err := env.auth.Register(context.Background(), RegisterRequest{
		Username: "dave", Password: "pw", Role: "boss",
	})
	require.Error(t, err)
	assert.Equal(t, "role", apperrors.From(err).Field)

	_, err = env.auth.Register(context.Background(), RegisterRequest{
		Username: "dave", Password: "pw", Role: "hr", Sex: "x",
	})
	require.Error(t, err)
	assert.Equal(t, "sex", apperrors.From(err).Field)
}
