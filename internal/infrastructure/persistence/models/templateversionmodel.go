package models

import (
	"time"

	"gorm.io/gorm"
)

// TemplateVersionModel rows are soft deleted so that MAX(version) keeps
// seeing removed versions; version numbers are never reused, even after
// deletions.
type TemplateVersionModel struct {
	ID         string `gorm:"type:char(36);primaryKey"`
	TemplateID string `gorm:"type:char(36);not null;index"`
	Content    string `gorm:"type:text;not null"`
	Language   string `gorm:"size:35;not null;index"`
	Version    int    `gorm:"not null;index"`
	IsActive   bool   `gorm:"not null;default:false;index"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
	DeletedAt  gorm.DeletedAt `gorm:"index"`
}

func (TemplateVersionModel) TableName() string {
	return "template_versions"
}
