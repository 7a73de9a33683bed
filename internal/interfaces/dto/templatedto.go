package dto

import (
	"time"

	"templar/internal/application/template/usecases"
)

// CreateTemplateRequest is the payload to register a new template key.
type CreateTemplateRequest struct {
	TemplateKey string `json:"template_key" binding:"required" validate:"required,min=1,max=255"`
	Description string `json:"description" validate:"max=255"`
}

// CreateVersionRequest is the payload to add content under a template key.
type CreateVersionRequest struct {
	Content  string `json:"content" binding:"required" validate:"required"`
	Language string `json:"language" binding:"required" validate:"required,min=2,max=35"`
}

// RenderRequest is the payload to render the active version of a template.
// Language defaults to "en" when omitted.
type RenderRequest struct {
	Language  string                 `json:"language" validate:"omitempty,min=2,max=35"`
	Variables map[string]interface{} `json:"variables"`
}

type TemplateResponse struct {
	ID          string    `json:"id"`
	TemplateKey string    `json:"template_key"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type VersionResponse struct {
	ID         string    `json:"id"`
	TemplateID string    `json:"template_id"`
	Content    string    `json:"content"`
	Language   string    `json:"language"`
	Version    int       `json:"version"`
	IsActive   bool      `json:"is_active"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

type TemplateWithVersionsResponse struct {
	ID          string             `json:"id"`
	TemplateKey string             `json:"template_key"`
	Description string             `json:"description,omitempty"`
	CreatedAt   time.Time          `json:"created_at"`
	UpdatedAt   time.Time          `json:"updated_at"`
	Versions    []*VersionResponse `json:"versions"`
}

type ActivationResponse struct {
	Message string `json:"message"`
}

type RenderResponse struct {
	RenderedContent string `json:"rendered_content"`
}

func NewTemplateResponse(result *usecases.TemplateResult) *TemplateResponse {
	return &TemplateResponse{
		ID:          result.ID,
		TemplateKey: result.TemplateKey,
		Description: result.Description,
		CreatedAt:   result.CreatedAt,
		UpdatedAt:   result.UpdatedAt,
	}
}

func NewVersionResponse(result *usecases.VersionResult) *VersionResponse {
	return &VersionResponse{
		ID:         result.ID,
		TemplateID: result.TemplateID,
		Content:    result.Content,
		Language:   result.Language,
		Version:    result.Version,
		IsActive:   result.IsActive,
		CreatedAt:  result.CreatedAt,
		UpdatedAt:  result.UpdatedAt,
	}
}

func NewTemplateWithVersionsResponse(result *usecases.TemplateWithVersionsResult) *TemplateWithVersionsResponse {
	versions := make([]*VersionResponse, 0, len(result.Versions))
	for _, v := range result.Versions {
		versions = append(versions, NewVersionResponse(v))
	}

	return &TemplateWithVersionsResponse{
		ID:          result.ID,
		TemplateKey: result.TemplateKey,
		Description: result.Description,
		CreatedAt:   result.CreatedAt,
		UpdatedAt:   result.UpdatedAt,
		Versions:    versions,
	}
}
