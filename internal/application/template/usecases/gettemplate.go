package usecases

import (
	"context"
	"strings"
	"time"

	domain "templar/internal/domain/template"
	"templar/internal/shared/errors"
	"templar/internal/shared/logger"
)

type GetTemplateCommand struct {
	TemplateKey string
}

type TemplateWithVersionsResult struct {
	ID          string
	TemplateKey string
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
	Versions    []*VersionResult
}

type GetTemplateUseCase struct {
	repo   domain.Repository
	logger logger.Interface
}

func NewGetTemplateUseCase(repo domain.Repository, logger logger.Interface) *GetTemplateUseCase {
	return &GetTemplateUseCase{
		repo:   repo,
		logger: logger,
	}
}

func (uc *GetTemplateUseCase) Execute(ctx context.Context, cmd GetTemplateCommand) (*TemplateWithVersionsResult, error) {
	if strings.TrimSpace(cmd.TemplateKey) == "" {
		return nil, errors.NewValidationError("template_key cannot be empty or just whitespace")
	}

	tpl, err := uc.repo.GetTemplateByKey(ctx, cmd.TemplateKey)
	if err != nil {
		return nil, err
	}

	versions := tpl.Versions()
	versionResults := make([]*VersionResult, 0, len(versions))
	for _, v := range versions {
		versionResults = append(versionResults, newVersionResult(v))
	}

	return &TemplateWithVersionsResult{
		ID:          tpl.ID(),
		TemplateKey: tpl.Key(),
		Description: tpl.Description(),
		CreatedAt:   tpl.CreatedAt(),
		UpdatedAt:   tpl.UpdatedAt(),
		Versions:    versionResults,
	}, nil
}
