package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	domain "templar/internal/domain/template"
	"templar/internal/shared/errors"
)

func TestCreateTemplateUseCase_Execute(t *testing.T) {
	t.Run("creates template with normalized key", func(t *testing.T) {
		repo := new(mockRepository)
		uc := NewCreateTemplateUseCase(repo, newNopLogger())

		repo.On("CreateTemplate", mock.Anything, mock.MatchedBy(func(tpl *domain.Template) bool {
			return tpl.Key() == "welcome-email"
		})).Return(nil)

		result, err := uc.Execute(context.Background(), CreateTemplateCommand{
			TemplateKey: "  Welcome-Email  ",
			Description: "Welcome message",
		})

		require.NoError(t, err)
		assert.Equal(t, "welcome-email", result.TemplateKey)
		assert.Equal(t, "welcome message", result.Description)
		assert.NotEmpty(t, result.ID)
		repo.AssertExpectations(t)
	})

	t.Run("rejects blank key without touching the store", func(t *testing.T) {
		repo := new(mockRepository)
		uc := NewCreateTemplateUseCase(repo, newNopLogger())

		result, err := uc.Execute(context.Background(), CreateTemplateCommand{TemplateKey: "   "})

		require.Error(t, err)
		assert.Nil(t, result)
		assert.True(t, errors.IsValidationError(err))
		repo.AssertNotCalled(t, "CreateTemplate", mock.Anything, mock.Anything)
	})

	t.Run("propagates conflict from the store", func(t *testing.T) {
		repo := new(mockRepository)
		uc := NewCreateTemplateUseCase(repo, newNopLogger())

		repo.On("CreateTemplate", mock.Anything, mock.Anything).
			Return(errors.NewConflictError("template with key 'welcome-email' already exists"))

		result, err := uc.Execute(context.Background(), CreateTemplateCommand{TemplateKey: "welcome-email"})

		require.Error(t, err)
		assert.Nil(t, result)
		assert.True(t, errors.IsConflictError(err))
	})
}
