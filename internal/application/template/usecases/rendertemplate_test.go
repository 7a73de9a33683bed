package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"templar/internal/shared/errors"
)

func TestRenderTemplateUseCase_Execute(t *testing.T) {
	variables := map[string]interface{}{"name": "Alice"}

	t.Run("renders from cache on hit without touching the store", func(t *testing.T) {
		repo := new(mockRepository)
		cache := new(mockCache)
		renderer := new(mockRenderer)
		uc := NewRenderTemplateUseCase(repo, cache, renderer, newNopLogger())

		cache.On("Get", mock.Anything, "welcome-email", "en").Return("Hello {{.name}}!", true, nil)
		renderer.On("Render", "Hello {{.name}}!", variables).Return("Hello Alice!", nil)

		result, err := uc.Execute(context.Background(), RenderTemplateCommand{
			TemplateKey: "welcome-email",
			Language:    "en",
			Variables:   variables,
		})

		require.NoError(t, err)
		assert.Equal(t, "Hello Alice!", result.RenderedContent)
		repo.AssertNotCalled(t, "GetActiveContent", mock.Anything, mock.Anything, mock.Anything)
		cache.AssertNotCalled(t, "Set", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("falls back to the store on miss and populates the cache", func(t *testing.T) {
		repo := new(mockRepository)
		cache := new(mockCache)
		renderer := new(mockRenderer)
		uc := NewRenderTemplateUseCase(repo, cache, renderer, newNopLogger())

		cache.On("Get", mock.Anything, "welcome-email", "en").Return("", false, nil)
		repo.On("GetActiveContent", mock.Anything, "welcome-email", "en").Return("Hello {{.name}}!", nil)
		cache.On("Set", mock.Anything, "welcome-email", "en", "Hello {{.name}}!").Return(nil)
		renderer.On("Render", "Hello {{.name}}!", variables).Return("Hello Alice!", nil)

		result, err := uc.Execute(context.Background(), RenderTemplateCommand{
			TemplateKey: "welcome-email",
			Language:    "en",
			Variables:   variables,
		})

		require.NoError(t, err)
		assert.Equal(t, "Hello Alice!", result.RenderedContent)
		repo.AssertExpectations(t)
		cache.AssertExpectations(t)
	})

	t.Run("treats cache errors as misses", func(t *testing.T) {
		repo := new(mockRepository)
		cache := new(mockCache)
		renderer := new(mockRenderer)
		uc := NewRenderTemplateUseCase(repo, cache, renderer, newNopLogger())

		cache.On("Get", mock.Anything, "welcome-email", "en").
			Return("", false, errors.NewUnavailableError("cache backend unreachable"))
		repo.On("GetActiveContent", mock.Anything, "welcome-email", "en").Return("Hello!", nil)
		cache.On("Set", mock.Anything, "welcome-email", "en", "Hello!").
			Return(errors.NewUnavailableError("cache backend unreachable"))
		renderer.On("Render", "Hello!", mock.Anything).Return("Hello!", nil)

		result, err := uc.Execute(context.Background(), RenderTemplateCommand{
			TemplateKey: "welcome-email",
			Language:    "en",
		})

		require.NoError(t, err)
		assert.Equal(t, "Hello!", result.RenderedContent)
	})

	t.Run("defaults language to en and normalizes the key", func(t *testing.T) {
		repo := new(mockRepository)
		cache := new(mockCache)
		renderer := new(mockRenderer)
		uc := NewRenderTemplateUseCase(repo, cache, renderer, newNopLogger())

		cache.On("Get", mock.Anything, "welcome-email", "en").Return("Hi!", true, nil)
		renderer.On("Render", "Hi!", mock.Anything).Return("Hi!", nil)

		result, err := uc.Execute(context.Background(), RenderTemplateCommand{
			TemplateKey: "  Welcome-Email  ",
		})

		require.NoError(t, err)
		assert.Equal(t, "Hi!", result.RenderedContent)
		cache.AssertExpectations(t)
	})

	t.Run("propagates not found when no active version exists", func(t *testing.T) {
		repo := new(mockRepository)
		cache := new(mockCache)
		renderer := new(mockRenderer)
		uc := NewRenderTemplateUseCase(repo, cache, renderer, newNopLogger())

		cache.On("Get", mock.Anything, "welcome-email", "de").Return("", false, nil)
		repo.On("GetActiveContent", mock.Anything, "welcome-email", "de").
			Return("", errors.NewNotFoundError("no active version for template 'welcome-email' and language 'de'"))

		result, err := uc.Execute(context.Background(), RenderTemplateCommand{
			TemplateKey: "welcome-email",
			Language:    "de",
		})

		require.Error(t, err)
		assert.Nil(t, result)
		assert.True(t, errors.IsNotFoundError(err))
		renderer.AssertNotCalled(t, "Render", mock.Anything, mock.Anything)
	})

	t.Run("propagates render failures", func(t *testing.T) {
		repo := new(mockRepository)
		cache := new(mockCache)
		renderer := new(mockRenderer)
		uc := NewRenderTemplateUseCase(repo, cache, renderer, newNopLogger())

		cache.On("Get", mock.Anything, "welcome-email", "en").Return("Hello {{.name}!", true, nil)
		renderer.On("Render", "Hello {{.name}!", mock.Anything).
			Return("", errors.NewBadRequestError("failed to render template"))

		result, err := uc.Execute(context.Background(), RenderTemplateCommand{
			TemplateKey: "welcome-email",
			Language:    "en",
		})

		require.Error(t, err)
		assert.Nil(t, result)
	})

	t.Run("rejects blank key", func(t *testing.T) {
		repo := new(mockRepository)
		cache := new(mockCache)
		renderer := new(mockRenderer)
		uc := NewRenderTemplateUseCase(repo, cache, renderer, newNopLogger())

		result, err := uc.Execute(context.Background(), RenderTemplateCommand{TemplateKey: "   "})

		require.Error(t, err)
		assert.Nil(t, result)
		assert.True(t, errors.IsValidationError(err))
	})
}
