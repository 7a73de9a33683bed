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

func reconstructTestVersion(t *testing.T, number int, language string, active bool) *domain.Version {
	t.Helper()
	now := time.Now()
	version, err := domain.ReconstructVersion(
		"b3c1f0d2-1234-4abc-8def-000000000001",
		"a1b2c3d4-1234-4abc-8def-000000000002",
		"Hello {{.name}}!",
		language,
		number,
		active,
		now, now,
	)
	require.NoError(t, err)
	return version
}

func TestCreateVersionUseCase_Execute(t *testing.T) {
	t.Run("creates an inactive version", func(t *testing.T) {
		repo := new(mockRepository)
		uc := NewCreateVersionUseCase(repo, newNopLogger())

		repo.On("CreateVersion", mock.Anything, "welcome-email", "Hello {{.name}}!", "en").
			Return(reconstructTestVersion(t, 3, "en", false), nil)

		result, err := uc.Execute(context.Background(), CreateVersionCommand{
			TemplateKey: "welcome-email",
			Content:     "Hello {{.name}}!",
			Language:    "en",
		})

		require.NoError(t, err)
		assert.Equal(t, 3, result.Version)
		assert.Equal(t, "en", result.Language)
		assert.False(t, result.IsActive)
		repo.AssertExpectations(t)
	})

	t.Run("rejects blank content", func(t *testing.T) {
		repo := new(mockRepository)
		uc := NewCreateVersionUseCase(repo, newNopLogger())

		result, err := uc.Execute(context.Background(), CreateVersionCommand{
			TemplateKey: "welcome-email",
			Content:     "   ",
			Language:    "en",
		})

		require.Error(t, err)
		assert.Nil(t, result)
		assert.True(t, errors.IsValidationError(err))
		repo.AssertNotCalled(t, "CreateVersion", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("rejects blank language", func(t *testing.T) {
		repo := new(mockRepository)
		uc := NewCreateVersionUseCase(repo, newNopLogger())

		result, err := uc.Execute(context.Background(), CreateVersionCommand{
			TemplateKey: "welcome-email",
			Content:     "Hello!",
			Language:    " ",
		})

		require.Error(t, err)
		assert.Nil(t, result)
		assert.True(t, errors.IsValidationError(err))
	})

	t.Run("propagates not found for unknown template", func(t *testing.T) {
		repo := new(mockRepository)
		uc := NewCreateVersionUseCase(repo, newNopLogger())

		repo.On("CreateVersion", mock.Anything, "ghost", "Hello!", "en").
			Return(nil, errors.NewNotFoundError("template with key 'ghost' not found"))

		result, err := uc.Execute(context.Background(), CreateVersionCommand{
			TemplateKey: "ghost",
			Content:     "Hello!",
			Language:    "en",
		})

		require.Error(t, err)
		assert.Nil(t, result)
		assert.True(t, errors.IsNotFoundError(err))
	})
}
