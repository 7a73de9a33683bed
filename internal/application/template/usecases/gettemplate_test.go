package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	domain "templar/internal/domain/template"
	"templar/internal/shared/errors"
)

func TestGetTemplateUseCase_Execute(t *testing.T) {
	t.Run("returns template with its versions", func(t *testing.T) {
		repo := new(mockRepository)
		uc := NewGetTemplateUseCase(repo, newNopLogger())

		now := time.Now()
		v1 := reconstructTestVersion(t, 1, "en", true)
		v2 := reconstructTestVersion(t, 2, "fr", false)
		tpl, err := domain.ReconstructTemplate(
			"a1b2c3d4-1234-4abc-8def-000000000002",
			"welcome-email",
			"Welcome message",
			[]*domain.Version{v1, v2},
			now, now,
		)
		require.NoError(t, err)

		repo.On("GetTemplateByKey", mock.Anything, "welcome-email").Return(tpl, nil)

		result, err := uc.Execute(context.Background(), GetTemplateCommand{TemplateKey: "welcome-email"})

		require.NoError(t, err)
		assert.Equal(t, "welcome-email", result.TemplateKey)
		require.Len(t, result.Versions, 2)
		assert.Equal(t, 1, result.Versions[0].Version)
		assert.True(t, result.Versions[0].IsActive)
		assert.Equal(t, "fr", result.Versions[1].Language)
	})

	t.Run("propagates not found", func(t *testing.T) {
		repo := new(mockRepository)
		uc := NewGetTemplateUseCase(repo, newNopLogger())

		repo.On("GetTemplateByKey", mock.Anything, "ghost").
			Return(nil, errors.NewNotFoundError("template with key 'ghost' not found"))

		result, err := uc.Execute(context.Background(), GetTemplateCommand{TemplateKey: "ghost"})

		require.Error(t, err)
		assert.Nil(t, result)
		assert.True(t, errors.IsNotFoundError(err))
	})

	t.Run("rejects blank key", func(t *testing.T) {
		repo := new(mockRepository)
		uc := NewGetTemplateUseCase(repo, newNopLogger())

		result, err := uc.Execute(context.Background(), GetTemplateCommand{TemplateKey: " "})

		require.Error(t, err)
		assert.Nil(t, result)
		assert.True(t, errors.IsValidationError(err))
	})
}

func TestDeleteVersionUseCase_Execute(t *testing.T) {
	versionID := "b3c1f0d2-1234-4abc-8def-000000000001"

	t.Run("deletes the version", func(t *testing.T) {
		repo := new(mockRepository)
		uc := NewDeleteVersionUseCase(repo, newNopLogger())

		repo.On("DeleteVersion", mock.Anything, "welcome-email", versionID).Return(nil)

		err := uc.Execute(context.Background(), DeleteVersionCommand{
			TemplateKey: "welcome-email",
			VersionID:   versionID,
		})

		require.NoError(t, err)
		repo.AssertExpectations(t)
	})

	t.Run("rejects blank version id", func(t *testing.T) {
		repo := new(mockRepository)
		uc := NewDeleteVersionUseCase(repo, newNopLogger())

		err := uc.Execute(context.Background(), DeleteVersionCommand{TemplateKey: "welcome-email"})

		require.Error(t, err)
		assert.True(t, errors.IsValidationError(err))
		repo.AssertNotCalled(t, "DeleteVersion", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("propagates not found", func(t *testing.T) {
		repo := new(mockRepository)
		uc := NewDeleteVersionUseCase(repo, newNopLogger())

		repo.On("DeleteVersion", mock.Anything, "welcome-email", versionID).
			Return(errors.NewNotFoundError("version not found"))

		err := uc.Execute(context.Background(), DeleteVersionCommand{
			TemplateKey: "welcome-email",
			VersionID:   versionID,
		})

		require.Error(t, err)
		assert.True(t, errors.IsNotFoundError(err))
	})
}

func TestDeleteTemplateUseCase_Execute(t *testing.T) {
	t.Run("deletes the template", func(t *testing.T) {
		repo := new(mockRepository)
		uc := NewDeleteTemplateUseCase(repo, newNopLogger())

		repo.On("DeleteTemplate", mock.Anything, "welcome-email").Return(nil)

		err := uc.Execute(context.Background(), DeleteTemplateCommand{TemplateKey: "welcome-email"})

		require.NoError(t, err)
		repo.AssertExpectations(t)
	})

	t.Run("rejects blank key", func(t *testing.T) {
		repo := new(mockRepository)
		uc := NewDeleteTemplateUseCase(repo, newNopLogger())

		err := uc.Execute(context.Background(), DeleteTemplateCommand{TemplateKey: "  "})

		require.Error(t, err)
		assert.True(t, errors.IsValidationError(err))
	})
}
