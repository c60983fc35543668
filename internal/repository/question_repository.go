package repository

import (
	"recruit_backend/internal/model"
	"recruit_backend/internal/psych"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type QuestionRepository struct {
	DB *gorm.DB
}

func NewQuestionRepository(db *gorm.DB) *QuestionRepository {
	return &QuestionRepository{DB: db}
}

// Seed stores the catalog once. A non-empty table is left untouched, and
// concurrent seeders racing past the count are absorbed by the unique index
// on number.
func (r *QuestionRepository) Seed(c *psych.Catalog) (int64, error) {
	var count int64
	if err := r.DB.Model(&model.Question{}).Count(&count).Error; err != nil {
		return 0, err
	}
	if count > 0 {
		return 0, nil
	}

	rows := QuestionsFromCatalog(c)
	res := r.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "number"}},
		DoNothing: true,
	}).Create(&rows)
	return res.RowsAffected, res.Error
}

func (r *QuestionRepository) ListActive() ([]model.Question, error) {
	var qs []model.Question
	err := r.DB.Where("is_active = ?", true).Order("number asc").Find(&qs).Error
	return qs, err
}

func (r *QuestionRepository) Count() (int64, error) {
	var count int64
	err := r.DB.Model(&model.Question{}).Count(&count).Error
	return count, err
}

func QuestionsFromCatalog(c *psych.Catalog) []model.Question {
	defs := c.Questions("")
	rows := make([]model.Question, 0, len(defs))
	for _, d := range defs {
		opts := make([]model.QuestionOption, len(d.Options))
		for i, o := range d.Options {
			opts[i] = model.QuestionOption{Value: o.Value, Text: o.Label}
		}
		rows = append(rows, model.Question{
			Number:          d.Number,
			Text:            d.Text,
			Category:        string(d.Instrument),
			Subcategory:     string(d.Trait),
			Options:         opts,
			ScaleType:       string(d.Scale),
			Weight:          d.Weight,
			IsReverseScored: d.ReverseScored,
			IsActive:        true,
		})
	}
	return rows
}
