//go:build unit

package jwt_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/psu6810110220/StoreGame/internal/domain/user"
	"github.com/psu6810110220/StoreGame/internal/pkg/jwt"
)

func TestGenerateAndValidateToken(t *testing.T) {
	svc := jwt.NewService("test-secret", time.Hour)
	userID := uuid.New()

	token, err := svc.GenerateToken(userID, user.RoleAdmin)
	require.NoError(t, err)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, "admin", claims.Role)
}

func TestValidateTokenRejectsWrongSecret(t *testing.T) {
	token, err := jwt.NewService("secret-a", time.Hour).GenerateToken(uuid.New(), user.RoleUser)
	require.NoError(t, err)

	_, err = jwt.NewService("secret-b", time.Hour).ValidateToken(token)
	assert.ErrorIs(t, err, jwt.ErrInvalidToken)
}

func TestValidateTokenRejectsExpired(t *testing.T) {
	svc := jwt.NewService("test-secret", -time.Minute)
	token, err := svc.GenerateToken(uuid.New(), user.RoleUser)
	require.NoError(t, err)

	_, err = svc.ValidateToken(token)
	assert.ErrorIs(t, err, jwt.ErrExpiredToken)
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	_, err := jwt.NewService("test-secret", time.Hour).ValidateToken("not-a-token")
	assert.ErrorIs(t, err, jwt.ErrInvalidToken)
}
