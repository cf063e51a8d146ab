package helper

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"

	"github.com/endayshebocah/tckokuo/app/model"
	"github.com/endayshebocah/tckokuo/config"
)

func TestGenerateAndValidateToken(t *testing.T) {
	config.Env.JWTSecret = "test-secret"

	user := model.User{
		ID:   uuid.New(),
		Name: "Ana",
		Role: model.RoleTrainer,
		Permissions: datatypes.JSONMap{
			model.PermAttendance: true,
		},
	}

	token, err := GenerateToken(user)
	require.NoError(t, err)

	claims, err := ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, "Ana", claims.Name)
	assert.Equal(t, model.RoleTrainer, claims.Role)
	assert.Equal(t, "access", claims.Type)
	assert.Contains(t, claims.Permissions, model.PermAttendance)
}

func TestValidateTokenRejectsTampering(t *testing.T) {
	config.Env.JWTSecret = "test-secret"

	token, err := GenerateToken(model.User{ID: uuid.New(), Name: "Ana", Role: model.RoleAdmin})
	require.NoError(t, err)

	_, err = ValidateToken(token + "x")
	assert.Error(t, err)

	config.Env.JWTSecret = "different-secret"
	_, err = ValidateToken(token)
	assert.Error(t, err)
}
