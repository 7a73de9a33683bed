// Package usecases contains one application use case per template service
// operation. Each use case validates its command, delegates to the domain
// ports, and maps outcomes onto the shared error taxonomy.
package usecases

import (
	"context"
	"strings"
	"time"

	domain "templar/internal/domain/template"
	"templar/internal/shared/errors"
	"templar/internal/shared/logger"
)

type CreateTemplateCommand struct {
	TemplateKey string
	Description string
}

type TemplateResult struct {
	ID          string
	TemplateKey string
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type CreateTemplateUseCase struct {
	repo   domain.Repository
	logger logger.Interface
}

func NewCreateTemplateUseCase(repo domain.Repository, logger logger.Interface) *CreateTemplateUseCase {
	return &CreateTemplateUseCase{
		repo:   repo,
		logger: logger,
	}
}

func (uc *CreateTemplateUseCase) Execute(ctx context.Context, cmd CreateTemplateCommand) (*TemplateResult, error) {
	if strings.TrimSpace(cmd.TemplateKey) == "" {
		return nil, errors.NewValidationError("template_key cannot be empty or just whitespace")
	}

	tpl, err := domain.NewTemplate(cmd.TemplateKey, cmd.Description)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.repo.CreateTemplate(ctx, tpl); err != nil {
		uc.logger.Warnw("failed to create template", "template_key", tpl.Key(), "error", err)
		return nil, err
	}

	uc.logger.Infow("template created", "template_key", tpl.Key(), "template_id", tpl.ID())

	return &TemplateResult{
		ID:          tpl.ID(),
		TemplateKey: tpl.Key(),
		Description: tpl.Description(),
		CreatedAt:   tpl.CreatedAt(),
		UpdatedAt:   tpl.UpdatedAt(),
	}, nil
}
