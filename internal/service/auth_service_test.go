package service

import (
	"testing"

	"learnhub_backend/internal/model"
	"learnhub_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterCreatesInstructor(t *testing.T) {
	env := newTestEnv(t)

	user, err := env.auth.Register("张老师", "teacher@example.com", "password123")
	require.NoError(t, err)
	assert.Equal(t, model.Instructor, user.Role)
	assert.NotEmpty(t, user.ID)
	assert.NotEqual(t, "password123", user.Password)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.auth.Register("A", "dup@example.com", "password123")
	require.NoError(t, err)

	_, err = env.auth.Register("B", "dup@example.com", "password456")
	assert.ErrorIs(t, err, util.ErrDuplicateEmail)
}

func TestLogin(t *testing.T) {
	env := newTestEnv(t)
	user, err := env.auth.Register("张老师", "teacher@example.com", "password123")
	require.NoError(t, err)

	t.Run("valid credentials", func(t *testing.T) {
		token, err := env.auth.Login("teacher@example.com", "password123")
		require.NoError(t, err)

		claims, err := util.ParseJWT(token, env.auth.Cfg.JWT.Secret)
		require.NoError(t, err)
		assert.Equal(t, user.ID, claims.UserID)
		assert.Equal(t, model.Instructor, claims.Role)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := env.auth.Login("teacher@example.com", "nope")
		assert.ErrorIs(t, err, util.ErrInvalidCredentials)
	})

	t.Run("unknown email", func(t *testing.T) {
		_, err := env.auth.Login("ghost@example.com", "password123")
		assert.ErrorIs(t, err, util.ErrInvalidCredentials)
	})
}

func TestProfile(t *testing.T) {
	env := newTestEnv(t)
	actor := env.instructor(t, "teacher@example.com")

	user, err := env.auth.Profile(actor)
	require.NoError(t, err)
	assert.Equal(t, actor.ID, user.ID)

	_, err = env.auth.Profile(model.Actor{ID: "missing", Role: model.Instructor})
	assert.ErrorIs(t, err, util.ErrUnauthorized)
}
