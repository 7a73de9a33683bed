package usecases

import (
	"context"
	"strings"

	domain "templar/internal/domain/template"
	"templar/internal/shared/errors"
	"templar/internal/shared/logger"
)

type DeleteVersionCommand struct {
	TemplateKey string
	VersionID   string
}

type DeleteVersionUseCase struct {
	repo   domain.Repository
	logger logger.Interface
}

func NewDeleteVersionUseCase(repo domain.Repository, logger logger.Interface) *DeleteVersionUseCase {
	return &DeleteVersionUseCase{
		repo:   repo,
		logger: logger,
	}
}

func (uc *DeleteVersionUseCase) Execute(ctx context.Context, cmd DeleteVersionCommand) error {
	if strings.TrimSpace(cmd.VersionID) == "" {
		return errors.NewValidationError("version id is required")
	}

	if err := uc.repo.DeleteVersion(ctx, cmd.TemplateKey, cmd.VersionID); err != nil {
		uc.logger.Warnw("failed to delete template version",
			"template_key", cmd.TemplateKey,
			"version_id", cmd.VersionID,
			"error", err)
		return err
	}

	uc.logger.Infow("template version deleted",
		"template_key", cmd.TemplateKey,
		"version_id", cmd.VersionID)

	return nil
}
