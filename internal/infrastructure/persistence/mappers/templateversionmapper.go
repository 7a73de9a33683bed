package mappers

import (
	"fmt"

	domain "templar/internal/domain/template"
	"templar/internal/infrastructure/persistence/models"
)

type TemplateVersionMapper interface {
	ToEntity(model *models.TemplateVersionModel) (*domain.Version, error)
	ToModel(entity *domain.Version) (*models.TemplateVersionModel, error)
	ToEntities(models []*models.TemplateVersionModel) ([]*domain.Version, error)
}

type TemplateVersionMapperImpl struct{}

func NewTemplateVersionMapper() TemplateVersionMapper {
	return &TemplateVersionMapperImpl{}
}

func (m *TemplateVersionMapperImpl) ToEntity(model *models.TemplateVersionModel) (*domain.Version, error) {
	if model == nil {
		return nil, nil
	}

	entity, err := domain.ReconstructVersion(
		model.ID,
		model.TemplateID,
		model.Content,
		model.Language,
		model.Version,
		model.IsActive,
		model.CreatedAt,
		model.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct template version entity: %w", err)
	}

	return entity, nil
}

func (m *TemplateVersionMapperImpl) ToModel(entity *domain.Version) (*models.TemplateVersionModel, error) {
	if entity == nil {
		return nil, nil
	}

	return &models.TemplateVersionModel{
		ID:         entity.ID(),
		TemplateID: entity.TemplateID(),
		Content:    entity.Content(),
		Language:   entity.Language(),
		Version:    entity.Number(),
		IsActive:   entity.Active(),
		CreatedAt:  entity.CreatedAt(),
		UpdatedAt:  entity.UpdatedAt(),
	}, nil
}

func (m *TemplateVersionMapperImpl) ToEntities(modelList []*models.TemplateVersionModel) ([]*domain.Version, error) {
	entities := make([]*domain.Version, 0, len(modelList))
	for _, model := range modelList {
		entity, err := m.ToEntity(model)
		if err != nil {
			return nil, err
		}
		entities = append(entities, entity)
	}
	return entities, nil
}
