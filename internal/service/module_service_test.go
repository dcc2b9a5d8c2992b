package service

import (
	"testing"

	"learnhub_backend/internal/model"
	"learnhub_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateModule(t *testing.T) {
	env := newTestEnv(t)
	owner := env.instructor(t, "teacher@example.com")
	course := env.course(t, owner, "课程")

	t.Run("order string parsed", func(t *testing.T) {
		module := env.module(t, owner, course.ID, "第三章", "3")
		assert.Equal(t, 3, module.Order)
	})

	t.Run("unparseable order falls back to zero", func(t *testing.T) {
		module := env.module(t, owner, course.ID, "垫底章", "abc")
		assert.Equal(t, 0, module.Order)
	})

	t.Run("parent owned by someone else", func(t *testing.T) {
		other := env.instructor(t, "other@example.com")
		_, err := env.modules.CreateModule(other, course.ID, CreateModuleInput{Title: "越权章"})
		assert.ErrorIs(t, err, util.ErrNotFound)
	})

	t.Run("missing course", func(t *testing.T) {
		_, err := env.modules.CreateModule(owner, "nope", CreateModuleInput{Title: "孤儿章"})
		assert.ErrorIs(t, err, util.ErrNotFound)
	})
}

func TestUpdateModuleMergesFields(t *testing.T) {
	env := newTestEnv(t)
	owner := env.instructor(t, "teacher@example.com")
	course := env.course(t, owner, "课程")
	module := env.module(t, owner, course.ID, "原名", "1")

	t.Run("only provided fields change", func(t *testing.T) {
		updated, err := env.modules.UpdateModule(owner, module.ID, UpdateModuleInput{
			Order: strPtr("7"),
		})
		require.NoError(t, err)
		assert.Equal(t, "原名", updated.Title)
		assert.Equal(t, 7, updated.Order)
	})

	t.Run("unparseable order keeps current value", func(t *testing.T) {
		updated, err := env.modules.UpdateModule(owner, module.ID, UpdateModuleInput{
			Title: strPtr("新名"),
			Order: strPtr("not-a-number"),
		})
		require.NoError(t, err)
		assert.Equal(t, "新名", updated.Title)
		assert.Equal(t, 7, updated.Order)
	})
}

func TestDeleteModuleCascadesLessons(t *testing.T) {
	env := newTestEnv(t)
	owner := env.instructor(t, "teacher@example.com")
	course := env.course(t, owner, "课程")
	module := env.module(t, owner, course.ID, "章节", "1")
	env.lesson(t, owner, module.ID, "课时A", "1")
	env.lesson(t, owner, module.ID, "课时B", "2")

	require.NoError(t, env.modules.DeleteModule(owner, module.ID))

	var lessons int64
	env.db.Model(&model.Lesson{}).Count(&lessons)
	assert.Zero(t, lessons)
}
