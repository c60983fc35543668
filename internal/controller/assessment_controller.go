package controller

import (
	"errors"
	"net/http"
	"recruit_backend/internal/model"
	"recruit_backend/internal/psych"
	"recruit_backend/internal/service"
	"recruit_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type AssessmentController struct {
	Service *service.AssessmentService
}

func NewAssessmentController(svc *service.AssessmentService) *AssessmentController {
	return &AssessmentController{Service: svc}
}

// @Summary Start an assessment
// @Tags Assessments
// @Accept json
// @Produce json
// @Param body body service.CreateAssessmentRequest true "Subject and optional test type"
// @Success 201 {object} util.Response{data=service.AssessmentView}
// @Failure 400 {object} util.Response
// @Router /assessments [post]
func (c *AssessmentController) CreateAssessment(ctx *gin.Context) {
	var req service.CreateAssessmentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	v, err := c.Service.Create(ctx.Request.Context(), req)
	if err != nil {
		respondError(ctx, err)
		return
	}

	util.Created(ctx, v)
}

// @Summary List assessments
// @Tags Assessments
// @Produce json
// @Param subjectId query int false "Subject ID"
// @Param status query string false "started, in_progress, completed or abandoned"
// @Param page query int false "Page" default(1)
// @Param limit query int false "Page size" default(20)
// @Success 200 {object} util.Response{data=util.PageResponse}
// @Router /assessments [get]
func (c *AssessmentController) ListAssessments(ctx *gin.Context) {
	page, limit := util.ParsePage(ctx)

	status := model.AssessmentStatus(ctx.Query("status"))
	if status != "" && !status.Valid() {
		util.BadRequest(ctx, "invalid status")
		return
	}

	views, total, err := c.Service.List(service.ListAssessmentsRequest{
		SubjectID: util.MustParseUint(ctx.Query("subjectId")),
		Status:    status,
		Page:      page,
		Limit:     limit,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	util.Success(ctx, util.PageResponse{
		List:  views,
		Total: total,
		Page:  page,
		Limit: limit,
	})
}

// @Summary Get an assessment
// @Description Results are present once the assessment is completed
// @Tags Assessments
// @Produce json
// @Param id path string true "Assessment ID"
// @Param include query string false "responses"
// @Success 200 {object} util.Response{data=service.AssessmentView}
// @Failure 404 {object} util.Response
// @Router /assessments/{id} [get]
func (c *AssessmentController) GetAssessment(ctx *gin.Context) {
	v, err := c.Service.Get(ctx.Request.Context(), ctx.Param("id"), ctx.Query("include") == "responses")
	if err != nil {
		respondError(ctx, err)
		return
	}

	util.Success(ctx, v)
}

// @Summary Question bank for an assessment
// @Tags Assessments
// @Produce json
// @Param id path string true "Assessment ID"
// @Param instrument query string false "disc, big5 or leadership"
// @Success 200 {object} util.Response{data=[]psych.QuestionDefinition}
// @Failure 404 {object} util.Response
// @Router /assessments/{id}/questions [get]
func (c *AssessmentController) GetQuestions(ctx *gin.Context) {
	qs, err := c.Service.Questions(ctx.Param("id"), psych.Instrument(ctx.Query("instrument")))
	if err != nil {
		respondError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{
		"questions": qs,
		"total":     len(qs),
	})
}

// @Summary Record an answer
// @Description Re-submitting a question overwrites the earlier answer
// @Tags Assessments
// @Accept json
// @Produce json
// @Param id path string true "Assessment ID"
// @Param body body service.SubmitResponseRequest true "Answer"
// @Success 200 {object} util.Response{data=service.Progress}
// @Failure 400 {object} util.Response
// @Failure 404 {object} util.Response
// @Failure 409 {object} util.Response
// @Router /assessments/{id}/responses [post]
func (c *AssessmentController) SubmitResponse(ctx *gin.Context) {
	var req service.SubmitResponseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	p, err := c.Service.SubmitResponse(ctx.Request.Context(), ctx.Param("id"), req)
	if err != nil {
		respondError(ctx, err)
		return
	}

	util.Success(ctx, p)
}

// @Summary Complete an assessment
// @Description Scores every answer and freezes the results
// @Tags Assessments
// @Produce json
// @Param id path string true "Assessment ID"
// @Success 200 {object} util.Response{data=service.AssessmentView}
// @Failure 400 {object} util.Response
// @Failure 404 {object} util.Response
// @Failure 409 {object} util.Response
// @Router /assessments/{id}/complete [post]
func (c *AssessmentController) CompleteAssessment(ctx *gin.Context) {
	v, err := c.Service.Complete(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		respondError(ctx, err)
		return
	}

	util.Success(ctx, v)
}

// @Summary Abandon an assessment
// @Tags Assessments
// @Produce json
// @Param id path string true "Assessment ID"
// @Success 200 {object} util.Response{data=service.AssessmentView}
// @Failure 404 {object} util.Response
// @Failure 409 {object} util.Response
// @Router /assessments/{id}/abandon [post]
func (c *AssessmentController) AbandonAssessment(ctx *gin.Context) {
	v, err := c.Service.Abandon(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		respondError(ctx, err)
		return
	}

	util.Success(ctx, v)
}

// @Summary Delete an assessment
// @Description Removes the assessment and all of its responses
// @Tags Assessments
// @Produce json
// @Param id path string true "Assessment ID"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /assessments/{id} [delete]
func (c *AssessmentController) DeleteAssessment(ctx *gin.Context) {
	if err := c.Service.Delete(ctx.Request.Context(), ctx.Param("id")); err != nil {
		respondError(ctx, err)
		return
	}

	util.Success(ctx, nil)
}

func respondError(ctx *gin.Context, err error) {
	var incomplete *util.IncompleteAssessmentError

	switch {
	case errors.As(err, &incomplete):
		util.ErrorWithData(ctx, http.StatusBadRequest, err.Error(), gin.H{
			"answeredCount":  incomplete.Answered,
			"totalQuestions": incomplete.Total,
			"missing":        incomplete.Shortfall(),
		})
	case errors.Is(err, util.ErrUnknownAssessment), errors.Is(err, util.ErrUnknownQuestion):
		util.NotFound(ctx, err.Error())
	case errors.Is(err, util.ErrInvalidAnswerValue),
		errors.Is(err, util.ErrInvalidTestType),
		errors.Is(err, util.ErrUnknownInstrument):
		util.BadRequest(ctx, err.Error())
	case errors.Is(err, util.ErrAlreadyCompleted), errors.Is(err, util.ErrInvalidTransition):
		util.Conflict(ctx, err.Error())
	default:
		util.LogInternalError(ctx, err)
	}
}
