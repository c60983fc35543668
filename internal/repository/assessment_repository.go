package repository

import (
	"errors"
	"recruit_backend/internal/model"
	"recruit_backend/internal/psych"
	"recruit_backend/internal/util"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type AssessmentRepository struct {
	DB *gorm.DB
}

func NewAssessmentRepository(db *gorm.DB) *AssessmentRepository {
	return &AssessmentRepository{DB: db}
}

type AssessmentFilter struct {
	SubjectID uint
	Status    model.AssessmentStatus
}

// Guard inspects a locked assessment and vetoes the pending change by
// returning an error.
type Guard func(a *model.Assessment) error

func (r *AssessmentRepository) Create(a *model.Assessment) error {
	return r.DB.Create(a).Error
}

func (r *AssessmentRepository) FindByID(id string) (*model.Assessment, error) {
	var a model.Assessment
	if err := r.DB.First(&a, "id = ?", id).Error; err != nil {
		return nil, notFound(err)
	}
	return &a, nil
}

func (r *AssessmentRepository) List(filter AssessmentFilter, page, limit int) ([]model.Assessment, int64, error) {
	var as []model.Assessment
	var total int64

	query := r.DB.Model(&model.Assessment{})
	if filter.SubjectID > 0 {
		query = query.Where("subject_id = ?", filter.SubjectID)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * limit
	err := query.Order("created_at desc").Offset(offset).Limit(limit).Find(&as).Error
	return as, total, err
}

// Delete removes the assessment together with its responses.
func (r *AssessmentRepository) Delete(id string) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		res := tx.Delete(&model.Assessment{}, "id = ?", id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return util.ErrUnknownAssessment
		}
		return tx.Where("assessment_id = ?", id).Delete(&model.Response{}).Error
	})
}

// UpsertResponse records the answer and recomputes progress from the stored
// responses, all under a row lock on the owning assessment.
func (r *AssessmentRepository) UpsertResponse(resp *model.Response, guard Guard) (*model.Assessment, error) {
	return r.mutate(resp.AssessmentID, func(tx *gorm.DB, a *model.Assessment) error {
		if guard != nil {
			if err := guard(a); err != nil {
				return err
			}
		}

		err := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "assessment_id"}, {Name: "question_number"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "answer_text", "response_time_seconds", "updated_at"}),
		}).Create(resp).Error
		if err != nil {
			return err
		}

		var count int64
		if err := tx.Model(&model.Response{}).Where("assessment_id = ?", a.ID).Count(&count).Error; err != nil {
			return err
		}

		a.AnsweredCount = int(count)
		a.CompletionPercentage = psych.Completion(a.AnsweredCount, a.TotalQuestions)
		if a.Status == model.StatusStarted {
			a.Status = model.StatusInProgress
		}
		return nil
	})
}

// CommitResults loads the responses under the row lock and lets score fill in the
// results. Nothing is written unless score succeeds.
func (r *AssessmentRepository) CommitResults(id string, score func(a *model.Assessment, responses []model.Response) error) (*model.Assessment, error) {
	return r.mutate(id, func(tx *gorm.DB, a *model.Assessment) error {
		var responses []model.Response
		if err := tx.Where("assessment_id = ?", id).Order("question_number asc").Find(&responses).Error; err != nil {
			return err
		}
		return score(a, responses)
	})
}

// UpdateStatus moves the assessment to the given status if guard allows it.
func (r *AssessmentRepository) UpdateStatus(id string, to model.AssessmentStatus, guard Guard) (*model.Assessment, error) {
	return r.mutate(id, func(tx *gorm.DB, a *model.Assessment) error {
		if guard != nil {
			if err := guard(a); err != nil {
				return err
			}
		}
		a.Status = to
		return nil
	})
}

func (r *AssessmentRepository) ListResponses(id string) ([]model.Response, error) {
	var rs []model.Response
	err := r.DB.Where("assessment_id = ?", id).Order("question_number asc").Find(&rs).Error
	return rs, err
}

func (r *AssessmentRepository) CountResponses(id string) (int64, error) {
	var count int64
	err := r.DB.Model(&model.Response{}).Where("assessment_id = ?", id).Count(&count).Error
	return count, err
}

func (r *AssessmentRepository) mutate(id string, fn func(tx *gorm.DB, a *model.Assessment) error) (*model.Assessment, error) {
	var out model.Assessment
	err := r.DB.Transaction(func(tx *gorm.DB) error {
		var a model.Assessment
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&a, "id = ?", id).Error
		if err != nil {
			return notFound(err)
		}
		if err := fn(tx, &a); err != nil {
			return err
		}
		if err := tx.Save(&a).Error; err != nil {
			return err
		}
		out = a
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func notFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return util.ErrUnknownAssessment
	}
	return err
}
