package migration

import (
	"templar/internal/infrastructure/persistence/models"
)

func AutoMigrateModels() []interface{} {
	return []interface{}{
		&models.TemplateModel{},
		&models.TemplateVersionModel{},
	}
}
