package usecases

import (
	"context"
	"strings"
	"time"

	domain "templar/internal/domain/template"
	"templar/internal/shared/errors"
	"templar/internal/shared/logger"
)

type CreateVersionCommand struct {
	TemplateKey string
	Content     string
	Language    string
}

type VersionResult struct {
	ID         string
	TemplateID string
	Content    string
	Language   string
	Version    int
	IsActive   bool
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

type CreateVersionUseCase struct {
	repo   domain.Repository
	logger logger.Interface
}

func NewCreateVersionUseCase(repo domain.Repository, logger logger.Interface) *CreateVersionUseCase {
	return &CreateVersionUseCase{
		repo:   repo,
		logger: logger,
	}
}

func (uc *CreateVersionUseCase) Execute(ctx context.Context, cmd CreateVersionCommand) (*VersionResult, error) {
	if strings.TrimSpace(cmd.Content) == "" {
		return nil, errors.NewValidationError("content cannot be empty or just whitespace")
	}
	if strings.TrimSpace(cmd.Language) == "" {
		return nil, errors.NewValidationError("language cannot be empty or just whitespace")
	}

	version, err := uc.repo.CreateVersion(ctx, cmd.TemplateKey, cmd.Content, cmd.Language)
	if err != nil {
		uc.logger.Warnw("failed to create template version",
			"template_key", cmd.TemplateKey,
			"language", cmd.Language,
			"error", err)
		return nil, err
	}

	uc.logger.Infow("template version created",
		"template_key", cmd.TemplateKey,
		"version_id", version.ID(),
		"version", version.Number(),
		"language", version.Language())

	return newVersionResult(version), nil
}

func newVersionResult(version *domain.Version) *VersionResult {
	return &VersionResult{
		ID:         version.ID(),
		TemplateID: version.TemplateID(),
		Content:    version.Content(),
		Language:   version.Language(),
		Version:    version.Number(),
		IsActive:   version.Active(),
		CreatedAt:  version.CreatedAt(),
		UpdatedAt:  version.UpdatedAt(),
	}
}
