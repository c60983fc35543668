package service

import (
	"recruit_backend/internal/model"
	"recruit_backend/internal/psych"
	"recruit_backend/internal/repository"
	"recruit_backend/pkg/logger"

	"go.uber.org/zap"
)

// QuestionService exposes the persisted copy of the question bank.
type QuestionService struct {
	Catalog *psych.Catalog
	Repo    *repository.QuestionRepository
}

func NewQuestionService(catalog *psych.Catalog, repo *repository.QuestionRepository) *QuestionService {
	return &QuestionService{Catalog: catalog, Repo: repo}
}

// SeedQuestionBank stores the catalog if the table is still empty. Safe to
// call from several processes at once.
func (s *QuestionService) SeedQuestionBank() error {
	inserted, err := s.Repo.Seed(s.Catalog)
	if err != nil {
		return err
	}
	if inserted > 0 {
		logger.Log.Info("Question bank seeded", zap.Int64("inserted", inserted))
	}
	return nil
}

func (s *QuestionService) ListActive() ([]model.Question, error) {
	return s.Repo.ListActive()
}
