package usecases

import (
	"context"
	"fmt"
	"strings"

	domain "templar/internal/domain/template"
	"templar/internal/shared/errors"
	"templar/internal/shared/logger"
)

type ActivateVersionCommand struct {
	TemplateKey string
	VersionID   string
}

type ActivateVersionResult struct {
	Message string
}

// ActivateVersionUseCase is the activation engine: the only code path that
// changes which version is active. The store performs the swap atomically;
// the cache entry for the affected (template, language) pair is invalidated
// strictly after the transaction commits.
type ActivateVersionUseCase struct {
	repo   domain.Repository
	cache  domain.ActiveContentCache
	logger logger.Interface
}

func NewActivateVersionUseCase(
	repo domain.Repository,
	cache domain.ActiveContentCache,
	logger logger.Interface,
) *ActivateVersionUseCase {
	return &ActivateVersionUseCase{
		repo:   repo,
		cache:  cache,
		logger: logger,
	}
}

func (uc *ActivateVersionUseCase) Execute(ctx context.Context, cmd ActivateVersionCommand) (*ActivateVersionResult, error) {
	if strings.TrimSpace(cmd.VersionID) == "" {
		return nil, errors.NewValidationError("version id is required")
	}

	language, err := uc.repo.ActivateVersion(ctx, cmd.TemplateKey, cmd.VersionID)
	if err != nil {
		uc.logger.Warnw("failed to activate template version",
			"template_key", cmd.TemplateKey,
			"version_id", cmd.VersionID,
			"error", err)
		return nil, err
	}

	// Best effort: the activation is committed. If the cache backend is
	// unreachable the stale entry survives until its TTL expires, which is
	// the accepted bounded-staleness window.
	if err := uc.cache.Invalidate(ctx, domain.NormalizeKey(cmd.TemplateKey), language); err != nil {
		uc.logger.Warnw("failed to invalidate active content cache after activation",
			"template_key", cmd.TemplateKey,
			"language", language,
			"error", err)
	}

	uc.logger.Infow("template version activated",
		"template_key", cmd.TemplateKey,
		"version_id", cmd.VersionID,
		"language", language)

	return &ActivateVersionResult{
		Message: fmt.Sprintf("Template '%s' version '%s' activated successfully.",
			domain.NormalizeKey(cmd.TemplateKey), cmd.VersionID),
	}, nil
}
