package usecases

import (
	"context"
	"strings"

	domain "templar/internal/domain/template"
	"templar/internal/shared/errors"
	"templar/internal/shared/logger"
)

type DeleteTemplateCommand struct {
	TemplateKey string
}

type DeleteTemplateUseCase struct {
	repo   domain.Repository
	logger logger.Interface
}

func NewDeleteTemplateUseCase(repo domain.Repository, logger logger.Interface) *DeleteTemplateUseCase {
	return &DeleteTemplateUseCase{
		repo:   repo,
		logger: logger,
	}
}

// Execute removes the template and every version it owns as one cascading
// delete. Cache entries for its languages are left to expire; they key on
// (template key, language) and the template is gone from the store.
func (uc *DeleteTemplateUseCase) Execute(ctx context.Context, cmd DeleteTemplateCommand) error {
	if strings.TrimSpace(cmd.TemplateKey) == "" {
		return errors.NewValidationError("template_key cannot be empty or just whitespace")
	}

	if err := uc.repo.DeleteTemplate(ctx, cmd.TemplateKey); err != nil {
		uc.logger.Warnw("failed to delete template",
			"template_key", cmd.TemplateKey,
			"error", err)
		return err
	}

	uc.logger.Infow("template deleted", "template_key", cmd.TemplateKey)

	return nil
}
