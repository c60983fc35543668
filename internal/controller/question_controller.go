package controller

import (
	"recruit_backend/internal/service"
	"recruit_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type QuestionController struct {
	Service *service.QuestionService
}

func NewQuestionController(svc *service.QuestionService) *QuestionController {
	return &QuestionController{Service: svc}
}

// @Summary List the stored question bank
// @Tags Questions
// @Produce json
// @Success 200 {object} util.Response{data=[]model.Question}
// @Router /questions [get]
func (c *QuestionController) ListQuestions(ctx *gin.Context) {
	qs, err := c.Service.ListActive()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, qs)
}
