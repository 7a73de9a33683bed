package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"templar/internal/interfaces/http/handlers"
)

type TemplateRouteConfig struct {
	TemplateHandler *handlers.TemplateHandler
}

func SetupTemplateRoutes(engine *gin.Engine, config *TemplateRouteConfig) {
	engine.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	v1 := engine.Group("/api/v1")
	{
		templates := v1.Group("/templates")
		{
			templates.POST("", config.TemplateHandler.CreateTemplate)

			// Version routes are registered before the parameterized
			// template routes so "versions" is never read as a key.
			templates.POST("/versions/:template_key", config.TemplateHandler.CreateVersion)
			templates.PUT("/versions/:template_key", config.TemplateHandler.ActivateVersion)
			templates.DELETE("/versions/:template_key", config.TemplateHandler.DeleteVersion)

			templates.GET("/:template_key", config.TemplateHandler.GetTemplate)
			templates.DELETE("/:template_key", config.TemplateHandler.DeleteTemplate)
		}

		v1.POST("/render/:template_key", config.TemplateHandler.RenderTemplate)
	}
}
