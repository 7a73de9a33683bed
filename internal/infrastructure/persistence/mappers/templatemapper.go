package mappers

import (
	"fmt"

	domain "templar/internal/domain/template"
	"templar/internal/infrastructure/persistence/models"
)

type TemplateMapper interface {
	ToEntity(model *models.TemplateModel) (*domain.Template, error)
	ToModel(entity *domain.Template) (*models.TemplateModel, error)
}

type TemplateMapperImpl struct {
	versionMapper TemplateVersionMapper
}

func NewTemplateMapper() TemplateMapper {
	return &TemplateMapperImpl{
		versionMapper: NewTemplateVersionMapper(),
	}
}

func (m *TemplateMapperImpl) ToEntity(model *models.TemplateModel) (*domain.Template, error) {
	if model == nil {
		return nil, nil
	}

	versions := make([]*domain.Version, 0, len(model.Versions))
	for i := range model.Versions {
		version, err := m.versionMapper.ToEntity(&model.Versions[i])
		if err != nil {
			return nil, fmt.Errorf("failed to map template version model to entity: %w", err)
		}
		versions = append(versions, version)
	}

	entity, err := domain.ReconstructTemplate(
		model.ID,
		model.TemplateKey,
		model.Description,
		versions,
		model.CreatedAt,
		model.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct template entity: %w", err)
	}

	return entity, nil
}

func (m *TemplateMapperImpl) ToModel(entity *domain.Template) (*models.TemplateModel, error) {
	if entity == nil {
		return nil, nil
	}

	return &models.TemplateModel{
		ID:          entity.ID(),
		TemplateKey: entity.Key(),
		Description: entity.Description(),
		CreatedAt:   entity.CreatedAt(),
		UpdatedAt:   entity.UpdatedAt(),
	}, nil
}
