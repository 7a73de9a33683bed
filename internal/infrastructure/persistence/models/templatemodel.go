package models

import (
	"time"
)

// TemplateModel rows are deleted for real so the unique index on
// template_key frees the key for later re-registration.
type TemplateModel struct {
	ID          string `gorm:"type:char(36);primaryKey"`
	TemplateKey string `gorm:"size:255;not null;uniqueIndex"`
	Description string `gorm:"size:255"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Versions []TemplateVersionModel `gorm:"foreignKey:TemplateID;references:ID"`
}

func (TemplateModel) TableName() string {
	return "templates"
}
