package service

import (
	"context"
	"fmt"
	"recruit_backend/internal/model"
	"recruit_backend/internal/psych"
	"recruit_backend/internal/repository"
	"recruit_backend/internal/util"
	"recruit_backend/pkg/logger"
	"recruit_backend/pkg/monitoring"
	"recruit_backend/pkg/tracing"
	"time"

	"go.uber.org/zap"
)

type AssessmentService struct {
	Catalog     *psych.Catalog
	Repo        *repository.AssessmentRepository
	Cache       ResultCache
	DefaultType model.TestType

	locks *KeyedMutex
	now   func() time.Time
}

func NewAssessmentService(catalog *psych.Catalog, repo *repository.AssessmentRepository, cache ResultCache, defaultType model.TestType) *AssessmentService {
	if cache == nil {
		cache = NopResultCache{}
	}
	if !defaultType.Valid() {
		defaultType = model.TestTypeFull
	}
	return &AssessmentService{
		Catalog:     catalog,
		Repo:        repo,
		Cache:       cache,
		DefaultType: defaultType,
		locks:       NewKeyedMutex(),
		now:         time.Now,
	}
}

type CreateAssessmentRequest struct {
	SubjectID uint   `json:"subjectId" binding:"required"`
	Type      string `json:"type"`
}

type SubmitResponseRequest struct {
	QuestionNumber      *int   `json:"questionNumber" binding:"required"`
	Value               int    `json:"value" binding:"required"`
	AnswerText          string `json:"answerText" binding:"max=200"`
	ResponseTimeSeconds int    `json:"responseTimeSeconds" binding:"gte=0"`
}

type ListAssessmentsRequest struct {
	SubjectID uint
	Status    model.AssessmentStatus
	Page      int
	Limit     int
}

func (s *AssessmentService) Create(ctx context.Context, req CreateAssessmentRequest) (*AssessmentView, error) {
	testType := s.DefaultType
	if req.Type != "" {
		testType = model.TestType(req.Type)
	}
	if !testType.Valid() {
		return nil, fmt.Errorf("%q: %w", req.Type, util.ErrInvalidTestType)
	}

	a := &model.Assessment{
		SubjectID:      req.SubjectID,
		TestType:       testType,
		Status:         model.StatusStarted,
		TotalQuestions: s.Catalog.Len(),
		StartedAt:      s.now(),
	}
	if err := s.Repo.Create(a); err != nil {
		return nil, fmt.Errorf("create assessment: %w", err)
	}

	monitoring.AssessmentsStarted.WithLabelValues(string(testType)).Inc()
	logger.Log.Info("Assessment created",
		zap.String("assessmentId", a.ID),
		zap.Uint("subjectId", a.SubjectID),
		zap.String("testType", string(testType)),
	)
	return NewAssessmentView(a, s.Catalog), nil
}

// Questions returns the ordered question bank for an existing assessment,
// optionally restricted to one instrument.
func (s *AssessmentService) Questions(id string, instrument psych.Instrument) ([]psych.QuestionDefinition, error) {
	if instrument != "" && !instrument.Valid() {
		return nil, fmt.Errorf("%q: %w", instrument, util.ErrUnknownInstrument)
	}
	if _, err := s.Repo.FindByID(id); err != nil {
		return nil, err
	}
	return s.Catalog.Questions(instrument), nil
}

// SubmitResponse records or overwrites one answer and returns the progress
// recomputed from the stored responses.
func (s *AssessmentService) SubmitResponse(ctx context.Context, id string, req SubmitResponseRequest) (p *Progress, err error) {
	_, span := tracing.StartAssessmentSpan(ctx, "assessment.submit_response", id)
	defer func() { tracing.End(span, err) }()

	if req.QuestionNumber == nil {
		return nil, fmt.Errorf("question number missing: %w", util.ErrUnknownQuestion)
	}
	if err := s.Catalog.ValidateAnswer(*req.QuestionNumber, req.Value); err != nil {
		return nil, err
	}
	q, _ := s.Catalog.ByNumber(*req.QuestionNumber)

	answerText := req.AnswerText
	if answerText == "" {
		answerText = q.LabelFor(req.Value)
	}

	unlock := s.locks.Lock(id)
	defer unlock()

	resp := &model.Response{
		AssessmentID:        id,
		QuestionNumber:      q.Number,
		Instrument:          string(q.Instrument),
		Trait:               string(q.Trait),
		Value:               req.Value,
		AnswerText:          answerText,
		ResponseTimeSeconds: req.ResponseTimeSeconds,
	}
	a, err := s.Repo.UpsertResponse(resp, acceptsAnswers)
	if err != nil {
		return nil, err
	}

	monitoring.ResponsesSubmitted.WithLabelValues(string(q.Instrument)).Inc()
	logger.Log.Debug("Response recorded",
		zap.String("assessmentId", id),
		zap.Int("questionNumber", q.Number),
		zap.Int("answeredCount", a.AnsweredCount),
	)

	return &Progress{
		AnsweredCount:        a.AnsweredCount,
		TotalQuestions:       a.TotalQuestions,
		CompletionPercentage: a.CompletionPercentage,
		Status:               a.Status,
	}, nil
}

// Complete scores the stored responses and freezes the results. Scores are
// computed inside the same transaction that marks the assessment completed.
func (s *AssessmentService) Complete(ctx context.Context, id string) (v *AssessmentView, err error) {
	ctx, span := tracing.StartAssessmentSpan(ctx, "assessment.complete", id)
	defer func() { tracing.End(span, err) }()

	unlock := s.locks.Lock(id)
	defer unlock()

	var result *psych.Result
	a, err := s.Repo.CommitResults(id, func(a *model.Assessment, responses []model.Response) error {
		if err := acceptsAnswers(a); err != nil {
			return err
		}

		answers := make(map[int]int, len(responses))
		for _, r := range responses {
			answers[r.QuestionNumber] = r.Value
		}
		res, err := psych.Score(s.Catalog, answers)
		if err != nil {
			return err
		}

		applyResult(a, res, s.now())
		result = res
		return nil
	})
	if err != nil {
		return nil, err
	}

	observeResult(result)
	monitoring.AssessmentsFinished.WithLabelValues(string(model.StatusCompleted)).Inc()
	logger.Log.Info("Assessment completed",
		zap.String("assessmentId", id),
		zap.String("summary", a.PersonalitySummary),
		zap.Int("timeSpentMinutes", a.TimeSpentMinutes),
	)

	v = NewAssessmentView(a, s.Catalog)
	s.cacheView(ctx, v)
	return v, nil
}

// Get returns the assessment representation. Completed assessments are served
// from the result cache when possible. The store read and the cache fill hold
// the assessment lock, ordering them against Delete.
func (s *AssessmentService) Get(ctx context.Context, id string, includeResponses bool) (*AssessmentView, error) {
	if !includeResponses {
		cached, ok, err := s.Cache.Get(ctx, id)
		if err != nil {
			logger.Log.Warn("Result cache read failed", zap.String("assessmentId", id), zap.Error(err))
		}
		if ok {
			return cached, nil
		}
	}

	unlock := s.locks.Lock(id)
	defer unlock()

	a, err := s.Repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	v := NewAssessmentView(a, s.Catalog)

	if includeResponses {
		rs, err := s.Repo.ListResponses(id)
		if err != nil {
			return nil, fmt.Errorf("list responses: %w", err)
		}
		v.Responses = newResponseViews(rs)
		return v, nil
	}

	if a.IsCompleted() {
		s.cacheView(ctx, v)
	}
	return v, nil
}

func (s *AssessmentService) List(req ListAssessmentsRequest) ([]*AssessmentView, int64, error) {
	if req.Page <= 0 {
		req.Page = util.DefaultPage
	}
	if req.Limit <= 0 {
		req.Limit = util.DefaultLimit
	}

	as, total, err := s.Repo.List(repository.AssessmentFilter{
		SubjectID: req.SubjectID,
		Status:    req.Status,
	}, req.Page, req.Limit)
	if err != nil {
		return nil, 0, fmt.Errorf("list assessments: %w", err)
	}

	views := make([]*AssessmentView, 0, len(as))
	for i := range as {
		views = append(views, NewAssessmentView(&as[i], s.Catalog))
	}
	return views, total, nil
}

// Abandon moves a started or in-progress assessment to abandoned.
func (s *AssessmentService) Abandon(ctx context.Context, id string) (*AssessmentView, error) {
	unlock := s.locks.Lock(id)
	defer unlock()

	a, err := s.Repo.UpdateStatus(id, model.StatusAbandoned, acceptsAnswers)
	if err != nil {
		return nil, err
	}

	monitoring.AssessmentsFinished.WithLabelValues(string(model.StatusAbandoned)).Inc()
	logger.Log.Info("Assessment abandoned",
		zap.String("assessmentId", id),
		zap.Int("answeredCount", a.AnsweredCount),
	)
	return NewAssessmentView(a, s.Catalog), nil
}

// Delete removes the assessment, its responses and any cached result.
func (s *AssessmentService) Delete(ctx context.Context, id string) error {
	unlock := s.locks.Lock(id)
	defer unlock()

	if err := s.Repo.Delete(id); err != nil {
		return err
	}
	if err := s.Cache.Delete(ctx, id); err != nil {
		logger.Log.Warn("Result cache delete failed", zap.String("assessmentId", id), zap.Error(err))
	}

	logger.Log.Info("Assessment deleted", zap.String("assessmentId", id))
	return nil
}

func (s *AssessmentService) cacheView(ctx context.Context, v *AssessmentView) {
	if err := s.Cache.Set(ctx, v); err != nil {
		logger.Log.Warn("Result cache write failed", zap.String("assessmentId", v.ID), zap.Error(err))
	}
}

// acceptsAnswers rejects changes to completed or abandoned assessments.
func acceptsAnswers(a *model.Assessment) error {
	switch a.Status {
	case model.StatusCompleted:
		return util.ErrAlreadyCompleted
	case model.StatusAbandoned:
		return fmt.Errorf("assessment is abandoned: %w", util.ErrInvalidTransition)
	}
	return nil
}

func observeResult(res *psych.Result) {
	observe := func(instrument psych.Instrument, trait psych.Trait, score float64) {
		monitoring.TraitScores.WithLabelValues(string(instrument), string(trait)).Observe(score)
	}
	if d := res.Disc; d != nil {
		observe(psych.DISC, psych.Dominance, d.D)
		observe(psych.DISC, psych.Influence, d.I)
		observe(psych.DISC, psych.Steadiness, d.S)
		observe(psych.DISC, psych.Conscientiousness, d.C)
	}
	if b := res.BigFive; b != nil {
		observe(psych.BigFive, psych.Openness, b.Openness)
		observe(psych.BigFive, psych.Conscientiousness, b.Conscientiousness)
		observe(psych.BigFive, psych.Extraversion, b.Extraversion)
		observe(psych.BigFive, psych.Agreeableness, b.Agreeableness)
		observe(psych.BigFive, psych.Neuroticism, b.Neuroticism)
	}
	if l := res.Leadership; l != nil {
		observe(psych.Leadership, psych.Autocratic, l.Autocratic)
		observe(psych.Leadership, psych.Democratic, l.Democratic)
		observe(psych.Leadership, psych.Transformational, l.Transformational)
		observe(psych.Leadership, psych.Transactional, l.Transactional)
		observe(psych.Leadership, psych.LaissezFaire, l.LaissezFaire)
	}
}
