package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "templar/internal/domain/template"
	"templar/internal/infrastructure/persistence/mappers"
	"templar/internal/infrastructure/persistence/models"
	apperrors "templar/internal/shared/errors"
)

type TemplateRepositoryImpl struct {
	db            *gorm.DB
	mapper        mappers.TemplateMapper
	versionMapper mappers.TemplateVersionMapper
}

func NewTemplateRepository(db *gorm.DB) domain.Repository {
	return &TemplateRepositoryImpl{
		db:            db,
		mapper:        mappers.NewTemplateMapper(),
		versionMapper: mappers.NewTemplateVersionMapper(),
	}
}

func (r *TemplateRepositoryImpl) CreateTemplate(ctx context.Context, tpl *domain.Template) error {
	model, err := r.mapper.ToModel(tpl)
	if err != nil {
		return fmt.Errorf("failed to map template entity to model: %w", err)
	}

	// Pre-check for a friendlier error; the unique index on template_key is
	// the authoritative guard against races.
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.TemplateModel{}).
		Where("template_key = ?", tpl.Key()).Count(&count).Error; err != nil {
		return r.wrapStoreError("failed to check template key", err)
	}
	if count > 0 {
		return apperrors.NewConflictError(fmt.Sprintf("template with key '%s' already exists", tpl.Key()))
	}

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		if apperrors.IsDuplicateError(err) {
			return apperrors.NewConflictError(fmt.Sprintf("template with key '%s' already exists", tpl.Key()))
		}
		return r.wrapStoreError("failed to create template", err)
	}

	return nil
}

func (r *TemplateRepositoryImpl) GetTemplateByKey(ctx context.Context, key string) (*domain.Template, error) {
	var model models.TemplateModel

	err := r.db.WithContext(ctx).
		Preload("Versions", func(db *gorm.DB) *gorm.DB {
			return db.Order("version ASC")
		}).
		Where("template_key = ?", domain.NormalizeKey(key)).
		First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError(fmt.Sprintf("template with key '%s' not found", key))
		}
		return nil, r.wrapStoreError("failed to get template by key", err)
	}

	entity, err := r.mapper.ToEntity(&model)
	if err != nil {
		return nil, fmt.Errorf("failed to map template model to entity: %w", err)
	}

	return entity, nil
}

func (r *TemplateRepositoryImpl) CreateVersion(ctx context.Context, templateKey, content, language string) (*domain.Version, error) {
	var created *domain.Version

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		tplModel, err := r.findTemplateForUpdate(tx, templateKey)
		if err != nil {
			return err
		}

		// The version counter is shared across all languages of the
		// template; the row lock on the template serializes assignment.
		var maxVersion int64
		if err := tx.Unscoped().Model(&models.TemplateVersionModel{}).
			Where("template_id = ?", tplModel.ID).
			Select("COALESCE(MAX(version), 0)").
			Scan(&maxVersion).Error; err != nil {
			return r.wrapStoreError("failed to read max version", err)
		}

		version, err := domain.NewVersion(tplModel.ID, content, language, int(maxVersion)+1)
		if err != nil {
			return apperrors.NewValidationError(err.Error())
		}

		model, err := r.versionMapper.ToModel(version)
		if err != nil {
			return fmt.Errorf("failed to map template version entity to model: %w", err)
		}

		if err := tx.Create(model).Error; err != nil {
			return r.wrapStoreError("failed to create template version", err)
		}

		created = version
		return nil
	})
	if err != nil {
		return nil, err
	}

	return created, nil
}

func (r *TemplateRepositoryImpl) GetActiveContent(ctx context.Context, templateKey, language string) (string, error) {
	key := domain.NormalizeKey(templateKey)
	lang := domain.NormalizeLanguage(language)

	tplModel, err := r.findTemplate(r.db.WithContext(ctx), key)
	if err != nil {
		if apperrors.IsNotFoundError(err) {
			return "", apperrors.NewNotFoundError(
				fmt.Sprintf("active template not found for key '%s' and language '%s'", key, lang))
		}
		return "", err
	}

	var versionModel models.TemplateVersionModel
	err = r.db.WithContext(ctx).
		Where("template_id = ? AND language = ? AND is_active = ?", tplModel.ID, lang, true).
		First(&versionModel).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", apperrors.NewNotFoundError(
				fmt.Sprintf("active template not found for key '%s' and language '%s'", key, lang))
		}
		return "", r.wrapStoreError("failed to get active content", err)
	}

	return versionModel.Content, nil
}

// ActivateVersion performs the deactivate-then-activate swap as one
// transaction. The template row is locked for the duration so concurrent
// activations of the same template serialize; a failure rolls everything
// back to the pre-transition state.
func (r *TemplateRepositoryImpl) ActivateVersion(ctx context.Context, templateKey, versionID string) (string, error) {
	var language string

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		tplModel, err := r.findTemplateForUpdate(tx, templateKey)
		if err != nil {
			return err
		}

		var versionModel models.TemplateVersionModel
		err = tx.Where("id = ? AND template_id = ?", versionID, tplModel.ID).
			First(&versionModel).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.NewNotFoundError(
					fmt.Sprintf("version '%s' for template '%s' not found", versionID, tplModel.TemplateKey))
			}
			return r.wrapStoreError("failed to get template version", err)
		}

		language = versionModel.Language

		if err := tx.Model(&models.TemplateVersionModel{}).
			Where("template_id = ? AND language = ? AND is_active = ? AND id <> ?",
				tplModel.ID, language, true, versionModel.ID).
			Update("is_active", false).Error; err != nil {
			return r.wrapStoreError("failed to deactivate versions", err)
		}

		// Re-asserting active on an already-active version keeps the
		// operation idempotent.
		if err := tx.Model(&models.TemplateVersionModel{}).
			Where("id = ?", versionModel.ID).
			Update("is_active", true).Error; err != nil {
			return r.wrapStoreError("failed to activate version", err)
		}

		return nil
	})
	if err != nil {
		return "", err
	}

	return language, nil
}

func (r *TemplateRepositoryImpl) DeleteVersion(ctx context.Context, templateKey, versionID string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		tplModel, err := r.findTemplate(tx, templateKey)
		if err != nil {
			return err
		}

		result := tx.Where("id = ? AND template_id = ?", versionID, tplModel.ID).
			Delete(&models.TemplateVersionModel{})
		if result.Error != nil {
			return r.wrapStoreError("failed to delete template version", result.Error)
		}
		if result.RowsAffected == 0 {
			return apperrors.NewNotFoundError(
				fmt.Sprintf("version '%s' for template '%s' not found", versionID, tplModel.TemplateKey))
		}

		return nil
	})
}

// DeleteTemplate removes the template and every version it owns. Rows are
// deleted for real: the version counter is scoped to the template and dies
// with it, and the unique index on template_key must free the key so it can
// be registered again.
func (r *TemplateRepositoryImpl) DeleteTemplate(ctx context.Context, templateKey string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		tplModel, err := r.findTemplate(tx, templateKey)
		if err != nil {
			return err
		}

		// Cascade: the template owns its versions.
		if err := tx.Unscoped().Where("template_id = ?", tplModel.ID).
			Delete(&models.TemplateVersionModel{}).Error; err != nil {
			return r.wrapStoreError("failed to delete template versions", err)
		}

		if err := tx.Delete(&models.TemplateModel{}, "id = ?", tplModel.ID).Error; err != nil {
			return r.wrapStoreError("failed to delete template", err)
		}

		return nil
	})
}

func (r *TemplateRepositoryImpl) findTemplate(tx *gorm.DB, templateKey string) (*models.TemplateModel, error) {
	var model models.TemplateModel
	err := tx.Where("template_key = ?", domain.NormalizeKey(templateKey)).First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError(
				fmt.Sprintf("template with key '%s' not found", domain.NormalizeKey(templateKey)))
		}
		return nil, r.wrapStoreError("failed to get template by key", err)
	}
	return &model, nil
}

// findTemplateForUpdate resolves the template row with a FOR UPDATE lock
// where the dialect supports it, serializing version numbering and
// activation per template. SQLite has no row locks; its single-writer
// transactions serialize anyway.
func (r *TemplateRepositoryImpl) findTemplateForUpdate(tx *gorm.DB, templateKey string) (*models.TemplateModel, error) {
	if tx.Dialector.Name() == "mysql" {
		tx = tx.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	return r.findTemplate(tx, templateKey)
}

// wrapStoreError classifies connectivity failures as transient so callers
// know the operation is retryable; everything else is wrapped unchanged.
func (r *TemplateRepositoryImpl) wrapStoreError(msg string, err error) error {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) || isConnectionError(err) {
		return apperrors.NewUnavailableError(msg, err.Error())
	}
	return fmt.Errorf("%s: %w", msg, err)
}

func isConnectionError(err error) bool {
	if err == nil {
		return false
	}
	errStr := strings.ToLower(err.Error())
	for _, s := range []string{"connection refused", "invalid connection", "broken pipe", "i/o timeout"} {
		if strings.Contains(errStr, s) {
			return true
		}
	}
	return false
}
