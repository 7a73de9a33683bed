package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"templar/internal/application/template/usecases"
	"templar/internal/interfaces/dto"
	"templar/internal/shared/errors"
	"templar/internal/shared/logger"
	"templar/internal/shared/utils"
)

type TemplateHandler struct {
	createTemplate  *usecases.CreateTemplateUseCase
	createVersion   *usecases.CreateVersionUseCase
	getTemplate     *usecases.GetTemplateUseCase
	activateVersion *usecases.ActivateVersionUseCase
	renderTemplate  *usecases.RenderTemplateUseCase
	deleteVersion   *usecases.DeleteVersionUseCase
	deleteTemplate  *usecases.DeleteTemplateUseCase
	logger          logger.Interface
}

func NewTemplateHandler(
	createTemplate *usecases.CreateTemplateUseCase,
	createVersion *usecases.CreateVersionUseCase,
	getTemplate *usecases.GetTemplateUseCase,
	activateVersion *usecases.ActivateVersionUseCase,
	renderTemplate *usecases.RenderTemplateUseCase,
	deleteVersion *usecases.DeleteVersionUseCase,
	deleteTemplate *usecases.DeleteTemplateUseCase,
	logger logger.Interface,
) *TemplateHandler {
	return &TemplateHandler{
		createTemplate:  createTemplate,
		createVersion:   createVersion,
		getTemplate:     getTemplate,
		activateVersion: activateVersion,
		renderTemplate:  renderTemplate,
		deleteVersion:   deleteVersion,
		deleteTemplate:  deleteTemplate,
		logger:          logger,
	}
}

// CreateTemplate handles POST /api/v1/templates.
func (h *TemplateHandler) CreateTemplate(c *gin.Context) {
	var req dto.CreateTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create template", "error", err)
		utils.ErrorResponseWithError(c, errors.NewBadRequestError("Invalid request body", err.Error()))
		return
	}

	if err := utils.ValidateStruct(&req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.createTemplate.Execute(c.Request.Context(), usecases.CreateTemplateCommand{
		TemplateKey: req.TemplateKey,
		Description: req.Description,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, dto.NewTemplateResponse(result), "Template created successfully")
}

// CreateVersion handles POST /api/v1/templates/versions/:template_key.
func (h *TemplateHandler) CreateVersion(c *gin.Context) {
	templateKey := c.Param("template_key")

	var req dto.CreateVersionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create version",
			"template_key", templateKey,
			"error", err)
		utils.ErrorResponseWithError(c, errors.NewBadRequestError("Invalid request body", err.Error()))
		return
	}

	if err := utils.ValidateStruct(&req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.createVersion.Execute(c.Request.Context(), usecases.CreateVersionCommand{
		TemplateKey: templateKey,
		Content:     req.Content,
		Language:    req.Language,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, dto.NewVersionResponse(result), "Template version created successfully")
}

// GetTemplate handles GET /api/v1/templates/:template_key.
func (h *TemplateHandler) GetTemplate(c *gin.Context) {
	result, err := h.getTemplate.Execute(c.Request.Context(), usecases.GetTemplateCommand{
		TemplateKey: c.Param("template_key"),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", dto.NewTemplateWithVersionsResponse(result))
}

// ActivateVersion handles PUT /api/v1/templates/versions/:template_key.
// The version to activate is passed as the "version" query parameter.
func (h *TemplateHandler) ActivateVersion(c *gin.Context) {
	result, err := h.activateVersion.Execute(c.Request.Context(), usecases.ActivateVersionCommand{
		TemplateKey: c.Param("template_key"),
		VersionID:   c.Query("version"),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, result.Message, dto.ActivationResponse{Message: result.Message})
}

// RenderTemplate handles POST /api/v1/render/:template_key.
func (h *TemplateHandler) RenderTemplate(c *gin.Context) {
	templateKey := c.Param("template_key")

	var req dto.RenderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for render template",
			"template_key", templateKey,
			"error", err)
		utils.ErrorResponseWithError(c, errors.NewBadRequestError("Invalid request body", err.Error()))
		return
	}

	if err := utils.ValidateStruct(&req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.renderTemplate.Execute(c.Request.Context(), usecases.RenderTemplateCommand{
		TemplateKey: templateKey,
		Language:    req.Language,
		Variables:   req.Variables,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", dto.RenderResponse{RenderedContent: result.RenderedContent})
}

// DeleteVersion handles DELETE /api/v1/templates/versions/:template_key.
// The version to delete is passed as the "version" query parameter.
func (h *TemplateHandler) DeleteVersion(c *gin.Context) {
	err := h.deleteVersion.Execute(c.Request.Context(), usecases.DeleteVersionCommand{
		TemplateKey: c.Param("template_key"),
		VersionID:   c.Query("version"),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}

// DeleteTemplate handles DELETE /api/v1/templates/:template_key.
func (h *TemplateHandler) DeleteTemplate(c *gin.Context) {
	err := h.deleteTemplate.Execute(c.Request.Context(), usecases.DeleteTemplateCommand{
		TemplateKey: c.Param("template_key"),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}
