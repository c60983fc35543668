package app

import (
	"recruit_backend/docs"
	"recruit_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers) {
	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	api := router.Group("/api")
	{
		api.GET("/health", c.health.HealthCheck)
		api.GET("/questions", c.question.ListQuestions)
	}

	a.registerAssessmentRoutes(api, c)
}

func (a *App) registerAssessmentRoutes(api *gin.RouterGroup, c *controllers) {
	assessments := api.Group("/assessments")
	{
		assessments.POST("", c.assessment.CreateAssessment)
		assessments.GET("", c.assessment.ListAssessments)
		assessments.GET("/:id", c.assessment.GetAssessment)
		assessments.DELETE("/:id", c.assessment.DeleteAssessment)
		assessments.GET("/:id/questions", c.assessment.GetQuestions)
		assessments.POST("/:id/responses", c.assessment.SubmitResponse)
		assessments.POST("/:id/complete", c.assessment.CompleteAssessment)
		assessments.POST("/:id/abandon", c.assessment.AbandonAssessment)
	}
}
