package model

import (
	"time"

	"gorm.io/datatypes"
)

type QuestionOption struct {
	Value int    `json:"value"`
	Text  string `json:"text"`
}

// Question is the persisted copy of the question bank. It is seeded once and
// never edited; scoring reads the in-memory catalog.
// swagger:model Question
type Question struct {
	ID              uint                                `gorm:"primaryKey;autoIncrement" json:"id"`
	Number          int                                 `gorm:"not null;uniqueIndex" json:"questionNumber"`
	Text            string                              `gorm:"type:text;not null" json:"questionText"`
	Category        string                              `gorm:"size:20;not null" json:"category"`
	Subcategory     string                              `gorm:"size:50;not null" json:"subcategory"`
	Options         datatypes.JSONSlice[QuestionOption] `json:"options"`
	ScaleType       string                              `gorm:"size:20;default:'likert_4'" json:"scaleType"`
	Weight          float64                             `gorm:"type:decimal(3,2);default:1" json:"weight"`
	IsReverseScored bool                                `gorm:"default:false" json:"isReverseScored"`
	IsActive        bool                                `gorm:"default:true" json:"isActive"`
	CreatedAt       time.Time                           `json:"createdAt"`
	UpdatedAt       time.Time                           `json:"updatedAt"`
}

func (Question) TableName() string {
	return "assessment_questions"
}
