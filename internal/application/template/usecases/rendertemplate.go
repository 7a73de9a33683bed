package usecases

import (
	"context"

	domain "templar/internal/domain/template"
	"templar/internal/shared/errors"
	"templar/internal/shared/logger"
)

const defaultRenderLanguage = "en"

type RenderTemplateCommand struct {
	TemplateKey string
	Language    string
	Variables   map[string]interface{}
}

type RenderTemplateResult struct {
	RenderedContent string
}

// RenderTemplateUseCase serves the hot read path: resolve the active
// content cache-aside, then substitute variables. Cache failures degrade to
// direct store reads; they never fail the request.
type RenderTemplateUseCase struct {
	repo     domain.Repository
	cache    domain.ActiveContentCache
	renderer Renderer
	logger   logger.Interface
}

func NewRenderTemplateUseCase(
	repo domain.Repository,
	cache domain.ActiveContentCache,
	renderer Renderer,
	logger logger.Interface,
) *RenderTemplateUseCase {
	return &RenderTemplateUseCase{
		repo:     repo,
		cache:    cache,
		renderer: renderer,
		logger:   logger,
	}
}

func (uc *RenderTemplateUseCase) Execute(ctx context.Context, cmd RenderTemplateCommand) (*RenderTemplateResult, error) {
	key := domain.NormalizeKey(cmd.TemplateKey)
	if key == "" {
		return nil, errors.NewValidationError("template_key cannot be empty or just whitespace")
	}

	language := domain.NormalizeLanguage(cmd.Language)
	if language == "" {
		language = defaultRenderLanguage
	}

	content, err := uc.resolveActiveContent(ctx, key, language)
	if err != nil {
		return nil, err
	}

	rendered, err := uc.renderer.Render(content, cmd.Variables)
	if err != nil {
		uc.logger.Warnw("failed to render template",
			"template_key", key,
			"language", language,
			"error", err)
		return nil, err
	}

	return &RenderTemplateResult{RenderedContent: rendered}, nil
}

// resolveActiveContent reads through the cache: hit returns immediately,
// miss falls back to the store and populates the entry. A cache error is
// treated as a miss so rendering never depends on cache availability.
func (uc *RenderTemplateUseCase) resolveActiveContent(ctx context.Context, key, language string) (string, error) {
	cached, ok, err := uc.cache.Get(ctx, key, language)
	if err != nil {
		uc.logger.Warnw("active content cache read failed, falling back to store",
			"template_key", key,
			"language", language,
			"error", err)
	} else if ok {
		return cached, nil
	}

	content, err := uc.repo.GetActiveContent(ctx, key, language)
	if err != nil {
		return "", err
	}

	if err := uc.cache.Set(ctx, key, language, content); err != nil {
		uc.logger.Warnw("failed to populate active content cache",
			"template_key", key,
			"language", language,
			"error", err)
	}

	return content, nil
}
