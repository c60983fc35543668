package controller

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"recruit_backend/internal/config"
	"recruit_backend/internal/model"
	"recruit_backend/internal/psych"
	"recruit_backend/internal/repository"
	"recruit_backend/internal/service"
	"recruit_backend/pkg/database"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type envelope struct {
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

type testServer struct {
	t      *testing.T
	db     *gorm.DB
	router *gin.Engine
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := database.Open(&config.DatabaseConfig{
		Driver: config.DriverSQLite,
		Path:   filepath.Join(t.TempDir(), "test.db"),
	}, "release")
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})

	catalog := psych.DefaultCatalog()
	questions := service.NewQuestionService(catalog, repository.NewQuestionRepository(db))
	require.NoError(t, questions.SeedQuestionBank())

	ac := NewAssessmentController(service.NewAssessmentService(catalog, repository.NewAssessmentRepository(db), nil, model.TestTypeFull))
	qc := NewQuestionController(questions)
	hc := NewHealthController(db, nil)

	r := gin.New()
	api := r.Group("/api")
	api.GET("/health", hc.HealthCheck)
	api.GET("/questions", qc.ListQuestions)
	api.POST("/assessments", ac.CreateAssessment)
	api.GET("/assessments", ac.ListAssessments)
	api.GET("/assessments/:id", ac.GetAssessment)
	api.DELETE("/assessments/:id", ac.DeleteAssessment)
	api.GET("/assessments/:id/questions", ac.GetQuestions)
	api.POST("/assessments/:id/responses", ac.SubmitResponse)
	api.POST("/assessments/:id/complete", ac.CompleteAssessment)
	api.POST("/assessments/:id/abandon", ac.AbandonAssessment)

	return &testServer{t: t, db: db, router: r}
}

func (s *testServer) do(method, path string, body interface{}) (int, envelope) {
	s.t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(s.t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)

	var env envelope
	require.NoError(s.t, json.Unmarshal(w.Body.Bytes(), &env), w.Body.String())
	return w.Code, env
}

func (s *testServer) create() string {
	s.t.Helper()
	code, env := s.do(http.MethodPost, "/api/assessments", gin.H{"subjectId": 3})
	require.Equal(s.t, http.StatusCreated, code)
	var v service.AssessmentView
	require.NoError(s.t, json.Unmarshal(env.Data, &v))
	return v.ID
}

func (s *testServer) answer(id string, n, value int) (int, envelope) {
	return s.do(http.MethodPost, "/api/assessments/"+id+"/responses", gin.H{"questionNumber": n, "value": value})
}

func TestAssessmentController_FullFlow(t *testing.T) {
	s := newTestServer(t)
	id := s.create()

	code, env := s.do(http.MethodGet, "/api/assessments/"+id+"/questions", nil)
	require.Equal(t, http.StatusOK, code)
	var qs struct {
		Questions []psych.QuestionDefinition `json:"questions"`
		Total     int                        `json:"total"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &qs))
	assert.Equal(t, 25, qs.Total)
	assert.Equal(t, 1, qs.Questions[0].Number)

	for n := 1; n <= 25; n++ {
		code, env = s.answer(id, n, 4)
		require.Equal(t, http.StatusOK, code, env.Message)
	}
	var p service.Progress
	require.NoError(t, json.Unmarshal(env.Data, &p))
	assert.Equal(t, 25, p.AnsweredCount)
	assert.Equal(t, 100.0, p.CompletionPercentage)

	code, env = s.do(http.MethodPost, "/api/assessments/"+id+"/complete", nil)
	require.Equal(t, http.StatusOK, code, env.Message)

	var raw map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(env.Data, &raw))
	assert.Contains(t, raw, "disc_results")
	assert.Contains(t, raw, "big5_results")
	assert.Contains(t, raw, "leadership_results")

	var v service.AssessmentView
	require.NoError(t, json.Unmarshal(env.Data, &v))
	assert.Equal(t, model.StatusCompleted, v.Status)
	assert.Equal(t, "D", v.DiscResults.Primary)
	assert.Equal(t, "I", v.DiscResults.Secondary)
	assert.Equal(t, 95.0, *v.Metadata.ConfidenceScore)

	code, _ = s.do(http.MethodPost, "/api/assessments/"+id+"/complete", nil)
	assert.Equal(t, http.StatusConflict, code)

	code, _ = s.answer(id, 1, 2)
	assert.Equal(t, http.StatusConflict, code)

	code, env = s.do(http.MethodGet, "/api/assessments/"+id+"?include=responses", nil)
	require.Equal(t, http.StatusOK, code)
	require.NoError(t, json.Unmarshal(env.Data, &v))
	assert.Len(t, v.Responses, 25)
}

func TestAssessmentController_IncompleteCompletion(t *testing.T) {
	s := newTestServer(t)
	id := s.create()
	for n := 1; n <= 24; n++ {
		code, _ := s.answer(id, n, 2)
		require.Equal(t, http.StatusOK, code)
	}

	code, env := s.do(http.MethodPost, "/api/assessments/"+id+"/complete", nil)
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Contains(t, env.Message, "24/25")

	var detail map[string]int
	require.NoError(t, json.Unmarshal(env.Data, &detail))
	assert.Equal(t, 24, detail["answeredCount"])
	assert.Equal(t, 25, detail["totalQuestions"])
	assert.Equal(t, 1, detail["missing"])
}

func TestAssessmentController_ErrorMapping(t *testing.T) {
	s := newTestServer(t)
	id := s.create()

	tests := []struct {
		name   string
		method string
		path   string
		body   interface{}
		want   int
	}{
		{"unknown assessment", http.MethodGet, "/api/assessments/nope", nil, http.StatusNotFound},
		{"unknown assessment questions", http.MethodGet, "/api/assessments/nope/questions", nil, http.StatusNotFound},
		{"unknown instrument", http.MethodGet, "/api/assessments/" + id + "/questions?instrument=mbti", nil, http.StatusBadRequest},
		{"unknown question", http.MethodPost, "/api/assessments/" + id + "/responses", gin.H{"questionNumber": 99, "value": 2}, http.StatusNotFound},
		{"question zero", http.MethodPost, "/api/assessments/" + id + "/responses", gin.H{"questionNumber": 0, "value": 2}, http.StatusNotFound},
		{"negative question", http.MethodPost, "/api/assessments/" + id + "/responses", gin.H{"questionNumber": -1, "value": 2}, http.StatusNotFound},
		{"missing question", http.MethodPost, "/api/assessments/" + id + "/responses", gin.H{"value": 2}, http.StatusBadRequest},
		{"value out of range", http.MethodPost, "/api/assessments/" + id + "/responses", gin.H{"questionNumber": 1, "value": 9}, http.StatusBadRequest},
		{"missing value", http.MethodPost, "/api/assessments/" + id + "/responses", gin.H{"questionNumber": 1}, http.StatusBadRequest},
		{"missing subject", http.MethodPost, "/api/assessments", gin.H{}, http.StatusBadRequest},
		{"bad test type", http.MethodPost, "/api/assessments", gin.H{"subjectId": 1, "type": "mbti"}, http.StatusBadRequest},
		{"bad status filter", http.MethodGet, "/api/assessments?status=done", nil, http.StatusBadRequest},
		{"delete unknown", http.MethodDelete, "/api/assessments/nope", nil, http.StatusNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, _ := s.do(tt.method, tt.path, tt.body)
			assert.Equal(t, tt.want, code)
		})
	}
}

func TestAssessmentController_AbandonListDelete(t *testing.T) {
	s := newTestServer(t)
	id := s.create()
	s.create()

	code, env := s.do(http.MethodPost, "/api/assessments/"+id+"/abandon", nil)
	require.Equal(t, http.StatusOK, code)
	var v service.AssessmentView
	require.NoError(t, json.Unmarshal(env.Data, &v))
	assert.Equal(t, model.StatusAbandoned, v.Status)

	code, _ = s.do(http.MethodPost, "/api/assessments/"+id+"/abandon", nil)
	assert.Equal(t, http.StatusConflict, code)

	code, env = s.do(http.MethodGet, "/api/assessments?subjectId=3&status=abandoned", nil)
	require.Equal(t, http.StatusOK, code)
	var page struct {
		List  []service.AssessmentView `json:"list"`
		Total int64                    `json:"total"`
		Page  int                      `json:"page"`
		Limit int                      `json:"limit"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &page))
	assert.Equal(t, int64(1), page.Total)
	assert.Equal(t, 1, page.Page)
	assert.Equal(t, 20, page.Limit)

	code, _ = s.do(http.MethodDelete, "/api/assessments/"+id, nil)
	assert.Equal(t, http.StatusOK, code)
	code, _ = s.do(http.MethodGet, "/api/assessments/"+id, nil)
	assert.Equal(t, http.StatusNotFound, code)
}

func TestQuestionController_ListQuestions(t *testing.T) {
	s := newTestServer(t)

	code, env := s.do(http.MethodGet, "/api/questions", nil)
	require.Equal(t, http.StatusOK, code)
	var qs []model.Question
	require.NoError(t, json.Unmarshal(env.Data, &qs))
	require.Len(t, qs, 25)
	assert.Equal(t, "leadership", qs[24].Category)
}

func TestHealthController(t *testing.T) {
	s := newTestServer(t)

	code, env := s.do(http.MethodGet, "/api/health", nil)
	require.Equal(t, http.StatusOK, code)
	assert.Contains(t, string(env.Data), `"database":"up"`)
	assert.Contains(t, string(env.Data), `"resultCache":"disabled"`)

	sqlDB, err := s.db.DB()
	require.NoError(t, err)
	require.NoError(t, sqlDB.Close())

	code, _ = s.do(http.MethodGet, "/api/health", nil)
	assert.Equal(t, http.StatusServiceUnavailable, code)
}

func TestHealthController_ResultCache(t *testing.T) {
	s := newTestServer(t)
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { rdb.Close() })

	hc := NewHealthController(s.db, rdb)
	s.router.GET("/api/health/full", hc.HealthCheck)

	code, env := s.do(http.MethodGet, "/api/health/full", nil)
	require.Equal(t, http.StatusOK, code)
	assert.Contains(t, string(env.Data), `"resultCache":"up"`)
	assert.Contains(t, string(env.Data), `"status":"ok"`)

	mr.Close()
	code, env = s.do(http.MethodGet, "/api/health/full", nil)
	require.Equal(t, http.StatusOK, code)
	assert.Contains(t, string(env.Data), `"resultCache":"down"`)
	assert.Contains(t, string(env.Data), `"status":"degraded"`)
}
